package game

import (
	"github.com/tomz197/starstrike/internal/input"
	"github.com/tomz197/starstrike/internal/object"
)

// updatePlaying runs one frame of the simulation.
//
// Populations are processed in a fixed order: player, bullets, enemies,
// enemy bullets, asteroids, particles. Objects spawned during the pass join
// their population afterwards and first move on the next frame.
func (g *Game) updatePlaying(in input.Input) {
	g.session.Frame++
	ctx := g.updateContext(in)

	g.world.Player.Advance(ctx)
	g.updateBullets(ctx)
	g.updateEnemies(ctx)
	g.updateEnemyBullets(ctx)
	g.updateAsteroids(ctx)
	g.updateParticles(ctx)

	// Bullets consumed by enemies or asteroids above.
	g.world.Bullets = compact(g.world.Bullets, g.world.Bounds)

	g.spawnAsteroids()
	g.world.FlushSpawned()

	g.checkWave()
}

// updateContext creates an UpdateContext from the current state.
func (g *Game) updateContext(in input.Input) object.UpdateContext {
	return object.UpdateContext{
		Frame:   g.session.Frame,
		Input:   in,
		Bounds:  g.world.Bounds,
		Spawner: g.world,
		Rand:    g.rng,
	}
}

// updateBullets moves player bullets and drops the ones that left the field.
func (g *Game) updateBullets(ctx object.UpdateContext) {
	for _, b := range g.world.Bullets {
		b.Advance(ctx)
	}
	g.world.Bullets = compact(g.world.Bullets, g.world.Bounds)
}

// updateParticles moves particles and returns faded ones to the pool.
func (g *Game) updateParticles(ctx object.UpdateContext) {
	w := g.world
	kept := w.Particles[:0]
	for _, p := range w.Particles {
		p.Advance(ctx)
		if p.Expired(w.Bounds) {
			p.Release()
			continue
		}
		kept = append(kept, p)
	}
	clear(w.Particles[len(kept):])
	w.Particles = kept
}

// updateStars scrolls the backdrop.
func (g *Game) updateStars() {
	ctx := object.UpdateContext{Bounds: g.world.Bounds, Rand: g.rng}
	for _, s := range g.world.Stars {
		s.Advance(ctx)
	}
}
