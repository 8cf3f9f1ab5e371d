// Package game runs the shooter simulation: the phase state machine, the
// per-frame population update, collision outcomes and wave progression.
//
// A Game is single-threaded. Hosts call Step once per frame at
// config.TargetFPS and read World and Session between calls.
package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/starstrike/internal/game/config"
	"github.com/tomz197/starstrike/internal/input"
	"github.com/tomz197/starstrike/internal/object"
	"github.com/tomz197/starstrike/internal/score"
)

// Options configures a Game. The zero value plays the classic variant with
// an in-memory best score and no logging.
type Options struct {
	Variant config.Variant
	Rand    *rand.Rand
	Logger  *log.Logger
	Store   score.Store

	// OnShare is called with the final score when the player asks to share
	// it from the game-over screen.
	OnShare func(score int)
}

// Game is one running instance of the shooter.
type Game struct {
	variant config.Variant
	rng     *rand.Rand
	logger  *log.Logger
	store   score.Store
	onShare func(int)

	session Session
	world   *World
}

// New creates a game on the title screen. The best score is read from the
// store; a failed read is logged and treated as zero.
func New(opts Options) *Game {
	if opts.Variant.Name == "" {
		opts.Variant = config.Classic
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Store == nil {
		opts.Store = &score.Memory{}
	}

	g := &Game{
		variant: opts.Variant,
		rng:     opts.Rand,
		logger:  opts.Logger.With("variant", opts.Variant.Name),
		store:   opts.Store,
		onShare: opts.OnShare,
	}

	best, err := g.store.Load()
	if err != nil {
		g.logger.Warn("could not load best score", "err", err)
		best = 0
	}

	bounds := object.Bounds{Width: config.FieldWidth, Height: config.FieldHeight}
	g.world = NewWorld(bounds, g.rng)
	g.session = Session{
		Level:  config.InitialLevel,
		Health: config.InitialHealth,
		Best:   best,
		Phase:  PhaseStart,
	}
	return g
}

// World returns the live populations for drawing. The returned value is
// owned by the game and only valid until the next Step.
func (g *Game) World() *World {
	return g.world
}

// Session returns a copy of the session counters.
func (g *Game) Session() Session {
	return g.session
}

// Variant returns the preset the game was created with.
func (g *Game) Variant() config.Variant {
	return g.variant
}

// Step consumes one frame of input and advances the game by one frame.
func (g *Game) Step(in input.Input) {
	if g.session.Phase != PhasePaused {
		g.updateStars()
	}

	switch g.session.Phase {
	case PhaseStart:
		g.updateStartState(in)
	case PhaseInstructions:
		g.updateInstructionsState(in)
	case PhaseLevelAnnounce:
		g.updateAnnounceState(in)
	case PhasePlay:
		if in.Pause {
			g.setPhase(PhasePaused)
			return
		}
		g.updatePlaying(in)
	case PhasePaused:
		if in.Pause {
			g.setPhase(PhasePlay)
		}
	case PhaseOver:
		g.updateOverState(in)
	}
}

// StartGame resets the session and spawns the first wave. Best score survives.
func (g *Game) StartGame() {
	g.world.Clear()
	g.world.Player = object.NewPlayer(g.world.Bounds, g.variant.FireEvery, g.variant.AutoFire)

	g.session = Session{
		Level:  config.InitialLevel,
		Health: config.InitialHealth,
		Best:   g.session.Best,
		Phase:  g.session.Phase,
	}
	g.spawnWave()
	g.setPhase(PhasePlay)
}

// updateStartState handles the title screen.
func (g *Game) updateStartState(in input.Input) {
	switch {
	case in.Start:
		g.StartGame()
	case in.Info:
		g.setPhase(PhaseInstructions)
	}
}

// updateInstructionsState handles the how-to-play overlay.
func (g *Game) updateInstructionsState(in input.Input) {
	if in.Back || in.Dismiss || in.Info {
		g.setPhase(PhaseStart)
	}
}

// updateAnnounceState counts down the level banner, then releases the wave.
func (g *Game) updateAnnounceState(in input.Input) {
	g.session.AnnounceLeft--
	if in.Dismiss || g.session.AnnounceLeft <= 0 {
		g.session.AnnounceLeft = 0
		g.spawnWave()
		g.setPhase(PhasePlay)
	}
}

// updateOverState handles the game-over screen.
func (g *Game) updateOverState(in input.Input) {
	switch {
	case in.Start:
		g.StartGame()
	case in.Share:
		if g.onShare != nil {
			g.onShare(g.session.Score)
		}
	}
}

// gameOver freezes the session and records a new best score.
func (g *Game) gameOver() {
	s := &g.session
	g.setPhase(PhaseOver)

	if s.Score <= s.Best {
		g.logger.Info("game over", "score", s.Score, "level", s.Level, "best", s.Best)
		return
	}
	s.Best = s.Score
	g.logger.Info("game over, new best", "score", s.Score, "level", s.Level)
	if err := g.store.Save(s.Best); err != nil {
		g.logger.Error("could not save best score", "err", err)
	}
}

// setPhase switches phase and logs the transition.
func (g *Game) setPhase(p Phase) {
	if g.session.Phase == p {
		return
	}
	g.logger.Debug("phase", "from", g.session.Phase, "to", p)
	g.session.Phase = p
}

// ShareText is the message hosts hand to the share target for a final score.
func ShareText(score, level int) string {
	return fmt.Sprintf("I scored %d points and reached level %d in Starstrike!", score, level)
}
