// Package config centralizes all tunable game parameters.
package config

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// Frame timing. Every in-game timer is a frame count at this rate.
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Playfield dimensions in logical pixels. Hosts scale to their surface.
const (
	FieldWidth  = 480
	FieldHeight = 640
)

// Session
const (
	InitialLevel  = 1
	InitialHealth = 3
)

// Player
const (
	PlayerSize      = 40.0
	PlayerSpeed     = 8.0  // Pixels per frame on discrete left/right input
	PlayerSmoothing = 0.1  // Fraction of the gap to a drag target closed per frame
	PlayerBottomGap = 60.0 // Distance from the bottom of the field to the ship's top
)

// Projectiles
const (
	BulletWidth      = 4.0
	BulletHeight     = 12.0
	BulletSpeed      = 10.0
	EnemyBulletSize  = 8.0
	EnemyBulletSpeed = 5.0
)

// Enemies
const (
	EnemyShootFrames = 120  // Frames between shots for shooting tiers
	ZigzagStep       = 0.1  // Phase increment per frame
	SwoopStep        = 0.05 // Phase increment per frame
	SpawnTopMin      = -100.0
	SpawnTopMax      = -20.0
)

// Asteroids
const (
	AsteroidPoints    = 15
	AsteroidMinRadius = 15.0
	AsteroidMaxRadius = 35.0
	AsteroidMinSpeed  = 1.5
	AsteroidMaxSpeed  = 3.0
	AsteroidMaxDrift  = 0.5
)

// Particles
const (
	BurstSize        = 12
	ParticleLife     = 255.0
	ParticleDecay    = 6.0
	ParticleGravity  = 0.1
	ParticleMinSpeed = 2.0
	ParticleMaxSpeed = 5.0
)

// Starfield
const (
	StarLayers        = 3
	StarsPerLayer     = 50
	StarMinSpeed      = 0.5
	StarMaxSpeed      = 2.0
	StarMinBrightness = 100.0
	StarMaxBrightness = 255.0
)

// TierPolicy selects which enemy tier each unit of a wave gets.
type TierPolicy int

const (
	// TierByLevel gives every unit the tier matching the level, capped at the
	// highest defined tier.
	TierByLevel TierPolicy = iota
	// TierRandom picks uniformly among the tiers unlocked so far.
	TierRandom
)

func (p TierPolicy) String() string {
	switch p {
	case TierByLevel:
		return "by-level"
	case TierRandom:
		return "random"
	default:
		return fmt.Sprintf("TierPolicy(%d)", int(p))
	}
}

// Variant is a named preset of wave, fire and hazard tunables.
type Variant struct {
	Name string

	// Wave size is WaveBase + floor(level * WavePerLevel).
	WaveBase     int
	WavePerLevel float64
	Policy       TierPolicy

	// AnnounceFrames is how long the level announcement stays up before the
	// next wave spawns. Zero spawns the next wave immediately.
	AnnounceFrames int

	// SpeedPerLevel is added to enemy and asteroid speed for each level past the first.
	SpeedPerLevel float64

	// AutoFire fires whenever the cooldown allows, without a fire input.
	AutoFire  bool
	FireEvery int // Frames between player shots

	// AsteroidEvery spawns one asteroid every N play frames. Zero disables asteroids.
	AsteroidEvery int
}

// WaveSize returns the number of enemies spawned for a level.
func (v Variant) WaveSize(level int) int {
	return v.WaveBase + int(float64(level)*v.WavePerLevel)
}

// Built-in variants.
var (
	Classic = Variant{
		Name:           "classic",
		WaveBase:       5,
		WavePerLevel:   1.5,
		Policy:         TierByLevel,
		AnnounceFrames: 180,
		AutoFire:       true,
		FireEvery:      20,
	}
	Swarm = Variant{
		Name:          "swarm",
		WaveBase:      5,
		WavePerLevel:  1,
		Policy:        TierRandom,
		SpeedPerLevel: 0.5,
		FireEvery:     12,
	}
	Meteor = Variant{
		Name:           "meteor",
		WaveBase:       5,
		WavePerLevel:   1,
		Policy:         TierRandom,
		AnnounceFrames: 120,
		SpeedPerLevel:  0.5,
		FireEvery:      12,
		AsteroidEvery:  90,
	}
)

// ErrUnknownVariant is returned by Lookup for names with no preset.
var ErrUnknownVariant = errors.New("unknown variant")

var variants = map[string]Variant{
	Classic.Name: Classic,
	Swarm.Name:   Swarm,
	Meteor.Name:  Meteor,
}

// Lookup resolves a variant preset by name.
func Lookup(name string) (Variant, error) {
	v, ok := variants[name]
	if !ok {
		return Variant{}, fmt.Errorf("%w %q (have %v)", ErrUnknownVariant, name, Names())
	}
	return v, nil
}

// Names returns the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
