package game

import (
	"github.com/tomz197/starstrike/internal/object"
	"github.com/tomz197/starstrike/internal/physics"
)

// live reports whether collision outcomes still apply this frame. It turns
// false the moment health runs out, so later hazards in the same frame
// neither damage the player again nor change the score.
func (g *Game) live() bool {
	return g.session.Phase == PhasePlay
}

// updateEnemies moves enemies and resolves their hits against bullets and the player.
func (g *Game) updateEnemies(ctx object.UpdateContext) {
	w := g.world
	for _, e := range w.Enemies {
		e.Advance(ctx)

		if !g.live() {
			continue
		}

		if b := g.bulletHittingBox(e.Box()); b != nil {
			b.MarkDestroyed()
			e.MarkDestroyed()
			g.session.Score += e.Tier.Points
			x, y := e.Center()
			object.SpawnBurst(x, y, e.Tier.Color, g.rng, w)
			continue
		}

		if physics.RectsOverlap(e.Box(), w.Player.Box()) || e.Expired(w.Bounds) {
			e.MarkDestroyed()
			g.damagePlayer()
		}
	}
	w.Enemies = compact(w.Enemies, w.Bounds)
}

// updateEnemyBullets moves enemy bullets and resolves their hits on the player.
func (g *Game) updateEnemyBullets(ctx object.UpdateContext) {
	w := g.world
	for _, eb := range w.EnemyBullets {
		eb.Advance(ctx)

		if eb.Expired(w.Bounds) || !g.live() {
			continue
		}

		if physics.RectsOverlap(eb.Box(), w.Player.Box()) {
			eb.MarkDestroyed()
			x, y := w.Player.Center()
			object.SpawnBurst(x, y, object.HitColor, g.rng, w)
			g.damagePlayer()
		}
	}
	w.EnemyBullets = compact(w.EnemyBullets, w.Bounds)
}

// updateAsteroids moves asteroids and resolves their hits against bullets and the player.
func (g *Game) updateAsteroids(ctx object.UpdateContext) {
	w := g.world
	for _, a := range w.Asteroids {
		a.Advance(ctx)

		if a.Expired(w.Bounds) || !g.live() {
			continue
		}

		if b := g.bulletHittingCircle(a.X, a.Y, a.Radius); b != nil {
			b.MarkDestroyed()
			a.MarkDestroyed()
			g.session.Score += a.Points
			object.SpawnBurst(a.X, a.Y, object.AsteroidColor, g.rng, w)
			continue
		}

		px, py := w.Player.Center()
		if physics.CirclesOverlap(a.X, a.Y, a.Radius, px, py, w.Player.Radius()) {
			a.MarkDestroyed()
			g.damagePlayer()
		}
	}
	w.Asteroids = compact(w.Asteroids, w.Bounds)
}

// bulletHittingBox returns the first live bullet overlapping box, or nil.
func (g *Game) bulletHittingBox(box physics.Rect) *object.Bullet {
	for _, b := range g.world.Bullets {
		if b.IsDestroyed() {
			continue
		}
		if physics.RectsOverlap(b.Box(), box) {
			return b
		}
	}
	return nil
}

// bulletHittingCircle returns the first live bullet overlapping the circle, or nil.
func (g *Game) bulletHittingCircle(cx, cy, r float64) *object.Bullet {
	for _, b := range g.world.Bullets {
		if b.IsDestroyed() {
			continue
		}
		bx, by := b.Center()
		if physics.CirclesOverlap(bx, by, b.Radius(), cx, cy, r) {
			return b
		}
	}
	return nil
}

// damagePlayer takes one point of health and ends the session when none is left.
func (g *Game) damagePlayer() {
	if !g.live() {
		return
	}
	g.session.Health--
	g.logger.Debug("player hit", "health", g.session.Health, "frame", g.session.Frame)
	if g.session.Health <= 0 {
		g.session.Health = 0
		g.gameOver()
	}
}
