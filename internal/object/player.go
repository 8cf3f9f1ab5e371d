package object

import (
	"github.com/tomz197/starstrike/internal/game/config"
	"github.com/tomz197/starstrike/internal/physics"
)

// Player is the ship at the bottom of the field.
type Player struct {
	X, Y      float64 // Top-left corner
	Size      float64 // Width and height of the ship's box
	Speed     float64 // Pixels per frame on left/right input
	Smoothing float64 // Fraction of the gap to a drag target closed per frame

	// Shooting
	FireEvery    int  // Minimum frames between shots
	AutoFire     bool // Fire whenever the cooldown allows
	fireCooldown int  // Frames until next shot allowed
}

// NewPlayer creates a ship centred horizontally near the bottom of the field.
func NewPlayer(b Bounds, fireEvery int, autoFire bool) *Player {
	return &Player{
		X:         b.Width/2 - config.PlayerSize/2,
		Y:         b.Height - config.PlayerBottomGap,
		Size:      config.PlayerSize,
		Speed:     config.PlayerSpeed,
		Smoothing: config.PlayerSmoothing,
		FireEvery: fireEvery,
		AutoFire:  autoFire,
	}
}

// Advance handles movement, clamping and shooting.
func (p *Player) Advance(ctx UpdateContext) {
	if ctx.Input.Left {
		p.X -= p.Speed
	}
	if ctx.Input.Right {
		p.X += p.Speed
	}

	// Pointer drag: ease the ship centre toward the target
	if ctx.Input.HasTarget {
		dx := ctx.Input.TargetX - p.Size/2 - p.X
		p.X += dx * p.Smoothing
	}

	p.X = physics.Clamp(p.X, 0, ctx.Bounds.Width-p.Size)

	if p.fireCooldown > 0 {
		p.fireCooldown--
	}
	if (p.AutoFire || ctx.Input.Fire) && p.fireCooldown <= 0 && ctx.Spawner != nil {
		p.fireCooldown = p.FireEvery
		noseX, noseY := p.Nose()
		ctx.Spawner.Spawn(NewBullet(noseX, noseY))
	}
}

// Expired is always false; the player leaves only through the game phase.
func (p *Player) Expired(_ Bounds) bool {
	return false
}

// Nose returns the tip of the ship, where bullets leave.
func (p *Player) Nose() (float64, float64) {
	return p.X + p.Size/2, p.Y
}

// Box returns the player's collision box.
func (p *Player) Box() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.Size, H: p.Size}
}

// Center returns the centre of the ship.
func (p *Player) Center() (float64, float64) {
	return p.Box().Center()
}

// Radius returns the player's collision radius for circle tests.
func (p *Player) Radius() float64 {
	return p.Size / 2
}
