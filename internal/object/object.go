package object

import (
	"math/rand"

	"github.com/tomz197/starstrike/internal/input"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Entity)
}

// Input is an alias for the input package's Input type.
type Input = input.Input

// Bounds is the playable extent. The origin is the top-left corner and y
// grows downward.
type Bounds struct {
	Width  float64
	Height float64
}

// UpdateContext provides all the information an object needs during one frame.
type UpdateContext struct {
	Frame   int // Frames simulated since the session started
	Input   Input
	Bounds  Bounds
	Spawner Spawner
	Rand    *rand.Rand
}

// Entity is a moving simulation object.
type Entity interface {
	// Advance moves the entity and its timers forward by exactly one frame.
	Advance(ctx UpdateContext)

	// Expired reports whether the entity has left the playable extent or
	// run out of lifespan.
	Expired(b Bounds) bool
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal at the end of the current pass.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Entity) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// destroyable implements Destructible for embedding.
type destroyable struct {
	destroyed bool
}

// MarkDestroyed marks the object for removal.
func (d *destroyable) MarkDestroyed() {
	d.destroyed = true
}

// IsDestroyed returns true if the object is marked for destruction.
func (d *destroyable) IsDestroyed() bool {
	return d.destroyed
}

// Gone reports whether an entity should be dropped from its population:
// either destroyed by a collision or expired.
func Gone[T interface {
	Entity
	Destructible
}](e T, b Bounds) bool {
	return e.IsDestroyed() || e.Expired(b)
}

// randRange returns a uniform value in [lo, hi).
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
