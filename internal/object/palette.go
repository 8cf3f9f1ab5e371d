package object

import "image/color"

// Colours shared by the hosts. Enemy colours come from their Tier.
var (
	PlayerColor      = color.RGBA{0, 255, 200, 255}
	CockpitColor     = color.RGBA{100, 200, 255, 255}
	BulletColor      = color.RGBA{255, 255, 120, 255}
	EnemyBulletColor = color.RGBA{255, 0, 0, 255}
	EnemyEyeColor    = color.RGBA{255, 255, 255, 255}
	AsteroidColor    = color.RGBA{180, 180, 180, 255}
	HitColor         = color.RGBA{255, 0, 0, 255} // Burst when the player is hit
)

// StarColor returns the grey a star is drawn with.
func StarColor(s *Star) color.RGBA {
	v := uint8(max(0, min(255, s.Brightness)))
	return color.RGBA{v, v, v, 255}
}

// Faded returns the particle colour scaled toward black by its remaining life.
func Faded(p *Particle) color.RGBA {
	a := float64(p.Alpha()) / 255
	return color.RGBA{
		R: uint8(float64(p.Color.R) * a),
		G: uint8(float64(p.Color.G) * a),
		B: uint8(float64(p.Color.B) * a),
		A: 255,
	}
}
