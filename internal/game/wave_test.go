package game

import (
	"testing"

	"github.com/tomz197/starstrike/internal/game/config"
	"github.com/tomz197/starstrike/internal/input"
	"github.com/tomz197/starstrike/internal/object"
)

func TestWaveClearedSpawnsNextImmediately(t *testing.T) {
	g, _ := newTestGame(t, config.Swarm)
	g.StartGame()
	g.world.Enemies = nil
	g.world.EnemyBullets = []*object.EnemyBullet{object.NewEnemyBullet(10, 10)}

	g.Step(input.Input{})

	s := g.Session()
	if s.Level != 2 || s.Phase != PhasePlay {
		t.Fatalf("session = %+v, want level 2 in play", s)
	}
	if got, want := len(g.world.Enemies), config.Swarm.WaveSize(2); got != want {
		t.Fatalf("enemies = %d, want %d", got, want)
	}
	if len(g.world.EnemyBullets) != 0 {
		t.Fatalf("enemy bullets should be cleared between levels")
	}
}

func TestWaveAnnounceCountdown(t *testing.T) {
	g, _ := newTestGame(t, config.Classic)
	g.StartGame()
	g.world.Enemies = nil

	g.Step(input.Input{})

	s := g.Session()
	if s.Phase != PhaseLevelAnnounce || s.Level != 2 {
		t.Fatalf("session = %+v, want level 2 announcement", s)
	}
	if s.AnnounceLeft != config.Classic.AnnounceFrames {
		t.Fatalf("announce left = %d, want %d", s.AnnounceLeft, config.Classic.AnnounceFrames)
	}
	if len(g.world.Enemies) != 0 {
		t.Fatalf("wave spawned before the announcement finished")
	}

	for i := 0; i < config.Classic.AnnounceFrames-1; i++ {
		g.Step(input.Input{Fire: true, Pause: true})
	}
	if g.Session().Phase != PhaseLevelAnnounce {
		t.Fatalf("announcement ended early: phase = %s", g.Session().Phase)
	}

	g.Step(input.Input{})
	if g.Session().Phase != PhasePlay {
		t.Fatalf("phase = %s, want play", g.Session().Phase)
	}
	if got, want := len(g.world.Enemies), config.Classic.WaveSize(2); got != want {
		t.Fatalf("enemies = %d, want %d", got, want)
	}
	for _, e := range g.world.Enemies {
		if e.Tier.Name != "scout" {
			t.Fatalf("level 2 enemy tier = %s, want scout", e.Tier.Name)
		}
	}
}

func TestWaveAnnounceDismiss(t *testing.T) {
	g, _ := newTestGame(t, config.Meteor)
	g.StartGame()
	g.world.Enemies = nil
	g.Step(input.Input{})

	g.Step(input.Input{Dismiss: true})

	if g.Session().Phase != PhasePlay {
		t.Fatalf("phase = %s, want play after dismiss", g.Session().Phase)
	}
	if len(g.world.Enemies) != config.Meteor.WaveSize(2) {
		t.Fatalf("enemies = %d, want %d", len(g.world.Enemies), config.Meteor.WaveSize(2))
	}
}

func TestSpawnWavePlacement(t *testing.T) {
	g, _ := newTestGame(t, config.Swarm)
	g.StartGame()
	g.world.Enemies = nil
	g.session.Level = 3

	g.spawnWave()

	w := float64(config.FieldWidth)
	bonus := config.Swarm.SpeedPerLevel * 2
	if len(g.world.Enemies) != config.Swarm.WaveSize(3) {
		t.Fatalf("enemies = %d, want %d", len(g.world.Enemies), config.Swarm.WaveSize(3))
	}
	for i, e := range g.world.Enemies {
		if e.X < w*0.1 || e.X >= w*0.9-e.Tier.Size {
			t.Errorf("enemy %d x = %v outside [%v, %v)", i, e.X, w*0.1, w*0.9-e.Tier.Size)
		}
		if e.Y < config.SpawnTopMin || e.Y >= config.SpawnTopMax {
			t.Errorf("enemy %d y = %v outside [%v, %v)", i, e.Y, config.SpawnTopMin, config.SpawnTopMax)
		}
		if e.Speed != e.Tier.Speed+bonus {
			t.Errorf("enemy %d speed = %v, want %v", i, e.Speed, e.Tier.Speed+bonus)
		}
	}
}

func TestTierByLevelCapsAtLastTier(t *testing.T) {
	g, _ := newTestGame(t, config.Classic)
	for _, level := range []int{3, 4, 9} {
		if got := g.pickTier(level).Name; got != "bomber" {
			t.Fatalf("pickTier(%d) = %s, want bomber", level, got)
		}
	}
	if got := g.pickTier(1).Name; got != "basic" {
		t.Fatalf("pickTier(1) = %s, want basic", got)
	}
}

func TestTierRandomStaysWithinUnlocked(t *testing.T) {
	g, _ := newTestGame(t, config.Swarm)

	seen := map[string]int{}
	for i := 0; i < 200; i++ {
		seen[g.pickTier(2).Name]++
	}
	if seen["bomber"] != 0 {
		t.Fatalf("bomber picked before it was unlocked")
	}
	if seen["basic"] == 0 || seen["scout"] == 0 {
		t.Fatalf("want both unlocked tiers, got %v", seen)
	}

	for i := 0; i < 50; i++ {
		if got := g.pickTier(1).Name; got != "basic" {
			t.Fatalf("level 1 picked %s", got)
		}
	}
}

func TestAsteroidStream(t *testing.T) {
	g, _ := newTestGame(t, config.Meteor)
	startQuiet(t, g)

	every := config.Meteor.AsteroidEvery
	for i := 0; i < every-1; i++ {
		g.Step(input.Input{})
	}
	if len(g.world.Asteroids) != 0 {
		t.Fatalf("asteroids = %d before frame %d", len(g.world.Asteroids), every)
	}

	g.Step(input.Input{})
	if len(g.world.Asteroids) != 1 {
		t.Fatalf("asteroids = %d at frame %d, want 1", len(g.world.Asteroids), every)
	}
	if a := g.world.Asteroids[0]; a.Y != -a.Radius {
		t.Fatalf("new asteroid y = %v, want just above the field", a.Y)
	}
}

func TestNoAsteroidsWithoutStream(t *testing.T) {
	g, _ := newTestGame(t, config.Swarm)
	startQuiet(t, g)
	for i := 0; i < 300; i++ {
		g.Step(input.Input{})
	}
	if len(g.world.Asteroids) != 0 {
		t.Fatalf("swarm spawned %d asteroids", len(g.world.Asteroids))
	}
}

func TestWaveTiers(t *testing.T) {
	g, _ := newTestGame(t, config.Classic)
	g.session.Level = 2
	if got := g.WaveTiers(); len(got) != 1 || got[0].Name != "scout" {
		t.Fatalf("classic level 2 tiers = %v, want [scout]", got)
	}

	g, _ = newTestGame(t, config.Swarm)
	g.session.Level = 5
	if got := g.WaveTiers(); len(got) != len(object.Tiers) {
		t.Fatalf("swarm level 5 tiers = %d, want all %d", len(got), len(object.Tiers))
	}
}
