package game

import (
	"github.com/tomz197/starstrike/internal/game/config"
	"github.com/tomz197/starstrike/internal/object"
)

// checkWave advances the level once the last enemy of the wave is gone.
func (g *Game) checkWave() {
	if !g.live() || len(g.world.Enemies) > 0 {
		return
	}
	g.advanceLevel()
}

// advanceLevel moves to the next level and either spawns its wave right away
// or puts up the level banner first.
func (g *Game) advanceLevel() {
	s := &g.session
	s.Level++
	g.world.EnemyBullets = g.world.EnemyBullets[:0]

	g.logger.Info("level cleared", "level", s.Level-1, "score", s.Score)

	if g.variant.AnnounceFrames > 0 {
		s.AnnounceLeft = g.variant.AnnounceFrames
		g.setPhase(PhaseLevelAnnounce)
		return
	}
	g.spawnWave()
}

// spawnWave adds the current level's wave above the top of the field.
func (g *Game) spawnWave() {
	level := g.session.Level
	count := g.variant.WaveSize(level)
	speedBonus := g.speedBonus()
	w := g.world.Bounds.Width

	for i := 0; i < count; i++ {
		tier := g.pickTier(level)
		x := g.randRange(w*0.1, w*0.9-tier.Size)
		y := g.randRange(config.SpawnTopMin, config.SpawnTopMax)
		g.world.Enemies = append(g.world.Enemies, object.NewEnemy(x, y, tier, tier.Speed+speedBonus))
	}

	g.logger.Debug("wave spawned", "level", level, "enemies", count, "policy", g.variant.Policy)
}

// pickTier selects an enemy tier according to the variant's policy.
func (g *Game) pickTier(level int) object.Tier {
	switch g.variant.Policy {
	case config.TierRandom:
		return object.Tiers[g.rng.Intn(object.UnlockedTiers(level))]
	default:
		return object.TierFor(level)
	}
}

// spawnAsteroids drops one asteroid every AsteroidEvery play frames.
func (g *Game) spawnAsteroids() {
	every := g.variant.AsteroidEvery
	if every <= 0 || g.session.Frame%every != 0 {
		return
	}
	g.world.Spawn(object.NewAsteroid(g.rng, g.world.Bounds, g.speedBonus()))
}

// speedBonus is the extra speed enemies and asteroids get at the current level.
func (g *Game) speedBonus() float64 {
	return g.variant.SpeedPerLevel * float64(g.session.Level-1)
}

// randRange returns a uniform value in [lo, hi), or lo when the range is empty.
func (g *Game) randRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Float64()*(hi-lo)
}

// WaveTiers returns the tiers the current level's wave can contain, for the
// level banner.
func (g *Game) WaveTiers() []object.Tier {
	if g.variant.Policy == config.TierRandom {
		return object.Tiers[:object.UnlockedTiers(g.session.Level)]
	}
	return []object.Tier{object.TierFor(g.session.Level)}
}
