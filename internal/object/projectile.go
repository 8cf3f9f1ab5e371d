package object

import (
	"github.com/tomz197/starstrike/internal/game/config"
	"github.com/tomz197/starstrike/internal/physics"
)

// Bullet is a shot fired upward by the player.
type Bullet struct {
	destroyable
	X, Y   float64 // X is the centre line, Y the top edge
	Width  float64
	Height float64
	VY     float64
}

// NewBullet creates a bullet whose top-centre is at (x, y).
func NewBullet(x, y float64) *Bullet {
	return &Bullet{
		X:      x,
		Y:      y,
		Width:  config.BulletWidth,
		Height: config.BulletHeight,
		VY:     -config.BulletSpeed,
	}
}

// Advance moves the bullet.
func (b *Bullet) Advance(_ UpdateContext) {
	b.Y += b.VY
}

// Expired reports whether the bullet has fully left the top of the field.
func (b *Bullet) Expired(_ Bounds) bool {
	return b.Y+b.Height < 0
}

// Box returns the bullet's collision box.
func (b *Bullet) Box() physics.Rect {
	return physics.Rect{X: b.X - b.Width/2, Y: b.Y, W: b.Width, H: b.Height}
}

// Center returns the middle of the bullet.
func (b *Bullet) Center() (float64, float64) {
	return b.X, b.Y + b.Height/2
}

// Radius returns the bullet's collision radius for circle tests.
func (b *Bullet) Radius() float64 {
	return b.Height / 2
}

// EnemyBullet is a shot fired downward by an enemy.
type EnemyBullet struct {
	destroyable
	X, Y float64 // X is the centre line, Y the top edge
	Size float64
	VY   float64
}

// NewEnemyBullet creates an enemy bullet whose top-centre is at (x, y).
func NewEnemyBullet(x, y float64) *EnemyBullet {
	return &EnemyBullet{
		X:    x,
		Y:    y,
		Size: config.EnemyBulletSize,
		VY:   config.EnemyBulletSpeed,
	}
}

// Advance moves the bullet.
func (b *EnemyBullet) Advance(_ UpdateContext) {
	b.Y += b.VY
}

// Expired reports whether the bullet has passed the bottom of the field.
func (b *EnemyBullet) Expired(bounds Bounds) bool {
	return b.Y > bounds.Height
}

// Box returns the bullet's collision box.
func (b *EnemyBullet) Box() physics.Rect {
	return physics.Rect{X: b.X - b.Size/2, Y: b.Y, W: b.Size, H: b.Size}
}
