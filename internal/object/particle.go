package object

import (
	"image/color"
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/starstrike/internal/game/config"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect with no gameplay effect.
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity
	Life   float64 // Remaining lifespan; also the draw alpha
	Color  color.RGBA
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy float64, clr color.RGBA) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Life = config.ParticleLife
	p.Color = clr
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnBurst creates config.BurstSize particles flying out from (x, y) in
// random directions.
func SpawnBurst(x, y float64, clr color.RGBA, rng *rand.Rand, spawner Spawner) {
	if spawner == nil {
		return
	}

	for i := 0; i < config.BurstSize; i++ {
		angle := rng.Float64() * 2 * math.Pi
		spd := randRange(rng, config.ParticleMinSpeed, config.ParticleMaxSpeed)
		spawner.Spawn(NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, clr))
	}
}

// Advance applies gravity, moves the particle and burns lifespan.
func (p *Particle) Advance(_ UpdateContext) {
	p.VY += config.ParticleGravity
	p.X += p.VX
	p.Y += p.VY
	p.Life -= config.ParticleDecay
}

// Expired reports whether the particle has faded out.
func (p *Particle) Expired(_ Bounds) bool {
	return p.Life <= 0
}

// Alpha returns the remaining lifespan as an 8-bit alpha.
func (p *Particle) Alpha() uint8 {
	return uint8(max(0, min(255, p.Life)))
}
