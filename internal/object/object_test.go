package object

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/starstrike/internal/game/config"
)

var testBounds = Bounds{Width: config.FieldWidth, Height: config.FieldHeight}

type spawnRecorder struct {
	spawned []Entity
}

func (s *spawnRecorder) Spawn(obj Entity) {
	s.spawned = append(s.spawned, obj)
}

func newCtx(sp Spawner) UpdateContext {
	return UpdateContext{
		Bounds:  testBounds,
		Spawner: sp,
		Rand:    rand.New(rand.NewSource(1)),
	}
}

func TestPlayerDiscreteMovementAndClamp(t *testing.T) {
	p := NewPlayer(testBounds, 20, false)
	start := p.X

	ctx := newCtx(nil)
	ctx.Input.Left = true
	p.Advance(ctx)
	if p.X != start-config.PlayerSpeed {
		t.Fatalf("left: X = %f, want %f", p.X, start-config.PlayerSpeed)
	}

	for i := 0; i < 200; i++ {
		p.Advance(ctx)
	}
	if p.X != 0 {
		t.Fatalf("left clamp: X = %f, want 0", p.X)
	}

	ctx.Input.Left = false
	ctx.Input.Right = true
	for i := 0; i < 200; i++ {
		p.Advance(ctx)
	}
	if want := testBounds.Width - p.Size; p.X != want {
		t.Fatalf("right clamp: X = %f, want %f", p.X, want)
	}
}

func TestPlayerConvergesOnDragTarget(t *testing.T) {
	p := NewPlayer(testBounds, 20, false)
	p.X = 0

	ctx := newCtx(nil)
	ctx.Input.MoveToward(300)
	p.Advance(ctx)

	want := (300 - p.Size/2) * config.PlayerSmoothing
	if math.Abs(p.X-want) > 1e-9 {
		t.Fatalf("first step X = %f, want %f", p.X, want)
	}

	for i := 0; i < 300; i++ {
		p.Advance(ctx)
	}
	cx, _ := p.Center()
	if math.Abs(cx-300) > 0.5 {
		t.Fatalf("ship centre = %f, want ≈300", cx)
	}
}

func TestPlayerFireCooldown(t *testing.T) {
	rec := &spawnRecorder{}
	p := NewPlayer(testBounds, 10, false)
	ctx := newCtx(rec)
	ctx.Input.Fire = true

	for i := 0; i < 25; i++ {
		p.Advance(ctx)
	}
	// Fires on frames 0, 10 and 20.
	if len(rec.spawned) != 3 {
		t.Fatalf("spawned %d bullets, want 3", len(rec.spawned))
	}
	b, ok := rec.spawned[0].(*Bullet)
	if !ok {
		t.Fatalf("spawned %T, want *Bullet", rec.spawned[0])
	}
	noseX, noseY := p.Nose()
	if b.X != noseX || b.Y != noseY {
		t.Fatalf("bullet at (%f,%f), want nose (%f,%f)", b.X, b.Y, noseX, noseY)
	}
}

func TestPlayerAutoFire(t *testing.T) {
	rec := &spawnRecorder{}
	p := NewPlayer(testBounds, 20, true)
	ctx := newCtx(rec)
	for i := 0; i < 41; i++ {
		p.Advance(ctx)
	}
	if len(rec.spawned) != 3 {
		t.Fatalf("auto-fire spawned %d bullets, want 3", len(rec.spawned))
	}
}

func TestBulletsMoveAndExpire(t *testing.T) {
	b := NewBullet(100, 5)
	b.Advance(newCtx(nil))
	if b.Y != 5-config.BulletSpeed {
		t.Fatalf("bullet Y = %f", b.Y)
	}
	if b.Expired(testBounds) {
		t.Fatalf("bullet still partly on field should not expire")
	}
	b.Y = -b.Height - 1
	if !b.Expired(testBounds) {
		t.Fatalf("bullet above the field should expire")
	}

	eb := NewEnemyBullet(100, testBounds.Height-1)
	eb.Advance(newCtx(nil))
	if eb.Y != testBounds.Height-1+config.EnemyBulletSpeed {
		t.Fatalf("enemy bullet Y = %f", eb.Y)
	}
	if !eb.Expired(testBounds) {
		t.Fatalf("enemy bullet below the field should expire")
	}
}

func TestEnemyPatterns(t *testing.T) {
	linear := NewEnemy(100, 0, Tiers[0], 2)
	linear.Advance(newCtx(nil))
	if linear.X != 100 || linear.Y != 2 {
		t.Fatalf("linear moved to (%f,%f)", linear.X, linear.Y)
	}

	zig := NewEnemy(100, 0, Tiers[1], 1.5)
	ctx := newCtx(nil)
	zig.Advance(ctx) // sin(0) = 0
	zig.Advance(ctx) // sin(0.1)
	wantX := 100 + math.Sin(config.ZigzagStep)*2*1.5
	if math.Abs(zig.X-wantX) > 1e-9 || zig.Y != 3 {
		t.Fatalf("zigzag at (%f,%f), want (%f,3)", zig.X, zig.Y, wantX)
	}

	swoop := NewEnemy(100, 0, Tiers[2], 1)
	swoop.Advance(ctx) // cos(0) = 1: y += 2 + 1
	if swoop.Y != 3 {
		t.Fatalf("swoop first step Y = %f, want 3", swoop.Y)
	}
}

func TestEnemyShootsOnCooldown(t *testing.T) {
	rec := &spawnRecorder{}
	e := NewEnemy(100, 0, Tiers[2], 0)
	ctx := newCtx(rec)
	for i := 0; i < config.EnemyShootFrames; i++ {
		e.Advance(ctx)
	}
	if len(rec.spawned) != 0 {
		t.Fatalf("enemy fired before the cooldown threshold")
	}
	e.Advance(ctx)
	if len(rec.spawned) != 1 {
		t.Fatalf("enemy fired %d shots, want 1", len(rec.spawned))
	}
	if _, ok := rec.spawned[0].(*EnemyBullet); !ok {
		t.Fatalf("spawned %T, want *EnemyBullet", rec.spawned[0])
	}

	before := len(rec.spawned)
	passive := NewEnemy(100, 0, Tiers[0], 1)
	for i := 0; i < 500; i++ {
		passive.Advance(ctx)
	}
	if len(rec.spawned) != before {
		t.Fatalf("non-shooting tier fired %d shots", len(rec.spawned)-before)
	}
}

func TestEnemyExpiresBelowField(t *testing.T) {
	e := NewEnemy(0, testBounds.Height+Tiers[0].Size, Tiers[0], 1)
	if e.Expired(testBounds) {
		t.Fatalf("enemy exactly at the limit should not expire")
	}
	e.Advance(newCtx(nil))
	if !e.Expired(testBounds) {
		t.Fatalf("enemy past the limit should expire")
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "basic"},
		{1, "basic"},
		{2, "scout"},
		{3, "bomber"},
		{9, "bomber"},
	}
	for _, tt := range tests {
		if got := TierFor(tt.level).Name; got != tt.want {
			t.Errorf("TierFor(%d) = %s, want %s", tt.level, got, tt.want)
		}
	}
	if PatternSwoop.String() != "swoop" {
		t.Errorf("PatternSwoop.String() = %q", PatternSwoop.String())
	}
}

func TestAsteroidSpawnAndDrift(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := NewAsteroid(rng, testBounds, 0)
	if a.Radius < config.AsteroidMinRadius || a.Radius >= config.AsteroidMaxRadius {
		t.Fatalf("radius %f out of range", a.Radius)
	}
	if math.Abs(a.VX) > config.AsteroidMaxDrift {
		t.Fatalf("drift %f out of range", a.VX)
	}
	x, y, vx := a.X, a.Y, a.VX
	a.Advance(newCtx(nil))
	a.Advance(newCtx(nil))
	if a.VX != vx {
		t.Fatalf("drift must stay constant")
	}
	if math.Abs(a.X-(x+2*vx)) > 1e-9 || math.Abs(a.Y-(y+2*a.VY)) > 1e-9 {
		t.Fatalf("asteroid did not move by its velocity")
	}
	if len(a.Outline()) != len(a.Vertices) {
		t.Fatalf("outline has %d points, want %d", len(a.Outline()), len(a.Vertices))
	}

	a.Y = testBounds.Height + a.Radius + 1
	if !a.Expired(testBounds) {
		t.Fatalf("asteroid below the field should expire")
	}
}

func TestParticleDecay(t *testing.T) {
	p := NewParticle(0, 0, 1, 0, color.RGBA{255, 0, 0, 255})
	defer p.Release()

	p.Advance(newCtx(nil))
	if p.VY != config.ParticleGravity || p.Y != config.ParticleGravity || p.X != 1 {
		t.Fatalf("particle after one frame: %+v", p)
	}
	frames := 1
	for !p.Expired(testBounds) {
		p.Advance(newCtx(nil))
		frames++
	}
	if want := int(math.Ceil(config.ParticleLife / config.ParticleDecay)); frames != want {
		t.Fatalf("particle lived %d frames, want %d", frames, want)
	}
	if p.Alpha() != 0 {
		t.Fatalf("expired particle alpha = %d", p.Alpha())
	}
}

func TestSpawnBurst(t *testing.T) {
	rec := &spawnRecorder{}
	clr := color.RGBA{1, 2, 3, 255}
	SpawnBurst(10, 20, clr, rand.New(rand.NewSource(3)), rec)
	if len(rec.spawned) != config.BurstSize {
		t.Fatalf("burst spawned %d, want %d", len(rec.spawned), config.BurstSize)
	}
	for _, obj := range rec.spawned {
		p := obj.(*Particle)
		if p.X != 10 || p.Y != 20 || p.Color != clr {
			t.Fatalf("particle %+v not at burst origin", p)
		}
		speed := math.Hypot(p.VX, p.VY)
		if speed < config.ParticleMinSpeed-1e-9 || speed >= config.ParticleMaxSpeed {
			t.Fatalf("particle speed %f out of range", speed)
		}
	}

	SpawnBurst(0, 0, clr, rand.New(rand.NewSource(3)), nil)
}

func TestStarWraps(t *testing.T) {
	stars := NewStarfield(rand.New(rand.NewSource(5)), testBounds)
	if len(stars) != config.StarLayers*config.StarsPerLayer {
		t.Fatalf("starfield has %d stars", len(stars))
	}

	s := stars[len(stars)-1]
	if s.Speed != config.StarMaxSpeed {
		t.Fatalf("nearest layer speed = %f, want %f", s.Speed, config.StarMaxSpeed)
	}
	s.Y = testBounds.Height
	s.Advance(newCtx(nil))
	if s.Y != 0 {
		t.Fatalf("star did not wrap, Y = %f", s.Y)
	}
	if s.X < 0 || s.X >= testBounds.Width {
		t.Fatalf("wrapped star X = %f out of field", s.X)
	}
	if s.Expired(testBounds) {
		t.Fatalf("stars never expire")
	}
}

func TestGone(t *testing.T) {
	b := NewBullet(10, 100)
	if Gone(b, testBounds) {
		t.Fatalf("fresh bullet is not gone")
	}
	b.MarkDestroyed()
	if !Gone(b, testBounds) {
		t.Fatalf("destroyed bullet is gone")
	}
}
