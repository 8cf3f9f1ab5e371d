// Command window runs the game in a desktop window.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tomz197/starstrike/internal/config"
	"github.com/tomz197/starstrike/internal/game"
	gameconfig "github.com/tomz197/starstrike/internal/game/config"
	"github.com/tomz197/starstrike/internal/input"
	"github.com/tomz197/starstrike/internal/score"
)

// window adapts a game to ebiten's Update/Draw/Layout cycle.
type window struct {
	game   *game.Game
	logger *log.Logger

	touchIDs []ebiten.TouchID
}

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "starstrike: %v\n", err)
		os.Exit(1)
	}

	logOut := os.Stderr
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "starstrike: open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := settings.NewLogger(logOut)

	w := &window{logger: logger}
	w.game = game.New(game.Options{
		Variant: settings.Variant,
		Rand:    settings.Rand(),
		Logger:  logger,
		Store:   score.NewFileStore(settings.ScoreFile),
		OnShare: func(s int) {
			logger.Info("share", "text", game.ShareText(s, w.game.Session().Level))
		},
	})

	ebiten.SetWindowSize(gameconfig.FieldWidth, gameconfig.FieldHeight)
	ebiten.SetWindowTitle("Starstrike")
	ebiten.SetWindowResizable(true)
	ebiten.SetFullscreen(settings.Fullscreen)
	ebiten.SetTPS(gameconfig.TargetFPS)

	if err := ebiten.RunGame(w); err != nil {
		logger.Error("window closed", "err", err)
		os.Exit(1)
	}
}

// Update reads input and advances the game one frame.
func (w *window) Update() error {
	in := w.readInput()
	if in.Quit {
		return ebiten.Termination
	}
	w.game.Step(in)
	return nil
}

// readInput maps keyboard, mouse and touch state to one frame of input.
func (w *window) readInput() input.Input {
	in := input.Input{
		Left:  pressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: pressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Fire:  pressed(ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW),

		Pause:   justPressed(ebiten.KeyP),
		Start:   justPressed(ebiten.KeyEnter, ebiten.KeyR),
		Dismiss: justPressed(ebiten.KeyEnter, ebiten.KeyEscape),
		Info:    justPressed(ebiten.KeyI),
		Back:    justPressed(ebiten.KeyB, ebiten.KeyEscape, ebiten.KeyBackspace),
		Share:   justPressed(ebiten.KeyS),
		Quit:    justPressed(ebiten.KeyQ),
	}

	// A click or tap starts, restarts and dismisses; holding it steers.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		in.Start = true
		in.Dismiss = true
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		in.MoveToward(float64(x))
	}
	w.touchIDs = ebiten.AppendTouchIDs(w.touchIDs[:0])
	if len(w.touchIDs) > 0 {
		x, _ := ebiten.TouchPosition(w.touchIDs[0])
		in.MoveToward(float64(x))
	}

	return in
}

// Draw renders the current frame.
func (w *window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	drawWorld(screen, w.game.World())
	drawOverlay(screen, w.game)
}

// Layout keeps the logical field size; ebiten scales it to the window.
func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return gameconfig.FieldWidth, gameconfig.FieldHeight
}

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
