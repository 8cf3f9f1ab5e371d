package game

import (
	"math/rand"

	"github.com/tomz197/starstrike/internal/object"
)

// World owns every live population. Membership is lifetime: an entity
// dropped from its slice is gone.
type World struct {
	Bounds object.Bounds

	Player       *object.Player
	Bullets      []*object.Bullet
	EnemyBullets []*object.EnemyBullet
	Enemies      []*object.Enemy
	Asteroids    []*object.Asteroid
	Particles    []*object.Particle
	Stars        []*object.Star

	toSpawn []object.Entity // Objects to add after current update cycle
}

// NewWorld creates an empty world with a starfield backdrop.
func NewWorld(b object.Bounds, rng *rand.Rand) *World {
	return &World{
		Bounds: b,
		Stars:  object.NewStarfield(rng, b),
	}
}

// Spawn queues an object to be added after the current update cycle.
// Implements object.Spawner interface.
func (w *World) Spawn(obj object.Entity) {
	w.toSpawn = append(w.toSpawn, obj)
}

// FlushSpawned adds all queued objects to their populations and clears the queue.
func (w *World) FlushSpawned() {
	for _, obj := range w.toSpawn {
		switch o := obj.(type) {
		case *object.Bullet:
			w.Bullets = append(w.Bullets, o)
		case *object.EnemyBullet:
			w.EnemyBullets = append(w.EnemyBullets, o)
		case *object.Enemy:
			w.Enemies = append(w.Enemies, o)
		case *object.Asteroid:
			w.Asteroids = append(w.Asteroids, o)
		case *object.Particle:
			w.Particles = append(w.Particles, o)
		}
	}
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
}

// Clear empties every population except the starfield.
func (w *World) Clear() {
	for _, p := range w.Particles {
		p.Release()
	}
	for _, obj := range w.toSpawn {
		object.ReleaseObject(obj)
	}
	w.Player = nil
	w.Bullets = w.Bullets[:0]
	w.EnemyBullets = w.EnemyBullets[:0]
	w.Enemies = w.Enemies[:0]
	w.Asteroids = w.Asteroids[:0]
	w.Particles = w.Particles[:0]
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
}

// Len returns the number of live entities across the destructible populations.
func (w *World) Len() int {
	return len(w.Bullets) + len(w.EnemyBullets) + len(w.Enemies) + len(w.Asteroids) + len(w.Particles)
}

// compact drops every entity that was destroyed or has expired, keeping order.
// Reuses the backing array, so survivors are visited exactly once and no
// removed slot is read again.
func compact[T interface {
	object.Entity
	object.Destructible
}](items []T, b object.Bounds) []T {
	kept := items[:0]
	for _, e := range items {
		if !object.Gone(e, b) {
			kept = append(kept, e)
		}
	}
	clear(items[len(kept):])
	return kept
}
