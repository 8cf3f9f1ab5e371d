package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/starstrike/internal/game/config"
)

// Asteroid is a destructible space rock falling through the field.
type Asteroid struct {
	destroyable
	X, Y     float64   // Position (center)
	VX, VY   float64   // Velocity; VX is a small drift fixed at spawn
	Radius   float64   // Collision/draw radius
	Points   int       // Score for shooting it down
	Angle    float64   // Current rotation angle
	Spin     float64   // Radians per frame
	Vertices []float64 // Vertex distances from center (for irregular shape)
}

// NewAsteroid creates an asteroid just above the field at a random column.
// speedBonus is added to the sampled fall speed.
func NewAsteroid(rng *rand.Rand, b Bounds, speedBonus float64) *Asteroid {
	radius := randRange(rng, config.AsteroidMinRadius, config.AsteroidMaxRadius)

	// Generate irregular polygon vertices (8-12 vertices)
	numVerts := 8 + rng.Intn(5)
	vertices := make([]float64, numVerts)
	for i := range vertices {
		// Vary radius by ±30% for irregular shape
		vertices[i] = radius * (0.7 + rng.Float64()*0.6)
	}

	return &Asteroid{
		X:        rng.Float64() * b.Width,
		Y:        -radius,
		VX:       randRange(rng, -config.AsteroidMaxDrift, config.AsteroidMaxDrift),
		VY:       randRange(rng, config.AsteroidMinSpeed, config.AsteroidMaxSpeed) + speedBonus,
		Radius:   radius,
		Points:   config.AsteroidPoints,
		Angle:    rng.Float64() * 2 * math.Pi,
		Spin:     (rng.Float64() - 0.5) * 0.05,
		Vertices: vertices,
	}
}

// Advance moves and rotates the asteroid.
func (a *Asteroid) Advance(_ UpdateContext) {
	a.X += a.VX
	a.Y += a.VY
	a.Angle += a.Spin
}

// Expired reports whether the asteroid has fully passed the bottom of the field.
func (a *Asteroid) Expired(b Bounds) bool {
	return a.Y-a.Radius > b.Height
}

// Outline returns the polygon points of the asteroid's irregular shape.
func (a *Asteroid) Outline() [][2]float64 {
	n := len(a.Vertices)
	points := make([][2]float64, n)
	for i, dist := range a.Vertices {
		vertAngle := a.Angle + float64(i)*2*math.Pi/float64(n)
		points[i] = [2]float64{
			a.X + math.Cos(vertAngle)*dist,
			a.Y + math.Sin(vertAngle)*dist,
		}
	}
	return points
}
