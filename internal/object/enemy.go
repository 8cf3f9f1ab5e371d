package object

import (
	"fmt"
	"image/color"
	"math"

	"github.com/tomz197/starstrike/internal/game/config"
	"github.com/tomz197/starstrike/internal/physics"
)

// Pattern is an enemy's lateral movement rule.
type Pattern int

const (
	PatternLinear Pattern = iota // Straight down
	PatternZigzag                // Sine sway
	PatternSwoop                 // Sine sway with a looping vertical component
)

func (p Pattern) String() string {
	switch p {
	case PatternLinear:
		return "linear"
	case PatternZigzag:
		return "zigzag"
	case PatternSwoop:
		return "swoop"
	default:
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
}

// Tier describes one enemy type.
type Tier struct {
	Level    int
	Name     string
	Color    color.RGBA
	Size     float64
	Points   int
	Speed    float64
	CanShoot bool
	Pattern  Pattern
}

// Tiers lists the enemy types in unlock order.
var Tiers = []Tier{
	{Level: 1, Name: "basic", Color: color.RGBA{255, 100, 100, 255}, Size: 30, Points: 10, Speed: 1, Pattern: PatternLinear},
	{Level: 2, Name: "scout", Color: color.RGBA{100, 255, 100, 255}, Size: 35, Points: 20, Speed: 1.5, Pattern: PatternZigzag},
	{Level: 3, Name: "bomber", Color: color.RGBA{100, 100, 255, 255}, Size: 40, Points: 30, Speed: 1.2, CanShoot: true, Pattern: PatternSwoop},
}

// TierFor returns the tier for a level, capped at the highest defined tier.
func TierFor(level int) Tier {
	return Tiers[UnlockedTiers(level)-1]
}

// UnlockedTiers returns how many tiers are available at a level.
func UnlockedTiers(level int) int {
	return max(1, min(level, len(Tiers)))
}

// Enemy is an alien ship descending toward the player.
type Enemy struct {
	destroyable
	X, Y  float64 // Top-left corner
	Tier  Tier
	Speed float64 // Vertical speed, tier speed plus level scaling

	angle         float64 // Pattern phase
	shootCooldown int     // Frames since last shot
}

// NewEnemy creates an enemy of the given tier at (x, y).
func NewEnemy(x, y float64, tier Tier, speed float64) *Enemy {
	return &Enemy{
		X:     x,
		Y:     y,
		Tier:  tier,
		Speed: speed,
	}
}

// Advance moves the enemy along its pattern and fires when ready.
func (e *Enemy) Advance(ctx UpdateContext) {
	switch e.Tier.Pattern {
	case PatternLinear:
		e.Y += e.Speed
	case PatternZigzag:
		e.X += math.Sin(e.angle) * 2 * e.Speed
		e.Y += e.Speed
		e.angle += config.ZigzagStep
	case PatternSwoop:
		e.X += math.Sin(e.angle) * 3 * e.Speed
		e.Y += math.Cos(e.angle)*2*e.Speed + e.Speed
		e.angle += config.SwoopStep
	}

	if !e.Tier.CanShoot {
		return
	}
	e.shootCooldown++
	if e.shootCooldown > config.EnemyShootFrames && ctx.Spawner != nil {
		ctx.Spawner.Spawn(NewEnemyBullet(e.X+e.Tier.Size/2, e.Y+e.Tier.Size))
		e.shootCooldown = 0
	}
}

// Expired reports whether the enemy has slipped past the bottom of the field.
func (e *Enemy) Expired(b Bounds) bool {
	return e.Y > b.Height+e.Tier.Size
}

// Box returns the enemy's collision box.
func (e *Enemy) Box() physics.Rect {
	return physics.Rect{X: e.X, Y: e.Y, W: e.Tier.Size, H: e.Tier.Size}
}

// Center returns the centre of the enemy.
func (e *Enemy) Center() (float64, float64) {
	return e.Box().Center()
}
