package object

import (
	"math/rand"

	"github.com/tomz197/starstrike/internal/game/config"
)

// Star is one point of the scrolling backdrop. Stars never expire.
type Star struct {
	X, Y       float64
	Size       float64
	Speed      float64
	Brightness float64
	Layer      int // 0 is the farthest, slowest layer
}

// NewStarfield scatters config.StarLayers layers of stars over the field.
// Nearer layers move faster and shine brighter.
func NewStarfield(rng *rand.Rand, b Bounds) []*Star {
	stars := make([]*Star, 0, config.StarLayers*config.StarsPerLayer)
	for layer := 0; layer < config.StarLayers; layer++ {
		t := float64(layer) / float64(config.StarLayers-1)
		for j := 0; j < config.StarsPerLayer; j++ {
			stars = append(stars, &Star{
				X:          rng.Float64() * b.Width,
				Y:          rng.Float64() * b.Height,
				Size:       randRange(rng, 1, 3),
				Speed:      config.StarMinSpeed + t*(config.StarMaxSpeed-config.StarMinSpeed),
				Brightness: config.StarMinBrightness + t*(config.StarMaxBrightness-config.StarMinBrightness),
				Layer:      layer,
			})
		}
	}
	return stars
}

// Advance scrolls the star down, wrapping to the top at a new column.
func (s *Star) Advance(ctx UpdateContext) {
	s.Y += s.Speed
	if s.Y > ctx.Bounds.Height {
		s.Y = 0
		s.X = ctx.Rand.Float64() * ctx.Bounds.Width
	}
}

// Expired is always false.
func (s *Star) Expired(_ Bounds) bool {
	return false
}
