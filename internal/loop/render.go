package loop

import (
	"image/color"

	"github.com/tomz197/starstrike/internal/draw"
	"github.com/tomz197/starstrike/internal/game"
	"github.com/tomz197/starstrike/internal/object"
)

const particleRadius = 2

// renderer draws the world onto a canvas, reusing one point buffer.
type renderer struct {
	pts []draw.Point
}

// drawWorld draws every population, back to front.
func (r *renderer) drawWorld(c *draw.Canvas, w *game.World) {
	for _, s := range w.Stars {
		c.FillRect(s.X, s.Y, s.Size, s.Size, object.StarColor(s))
	}

	for _, a := range w.Asteroids {
		r.pts = r.pts[:0]
		for _, v := range a.Outline() {
			r.pts = append(r.pts, draw.Point{X: v[0], Y: v[1]})
		}
		c.DrawPolygon(r.pts, object.AsteroidColor, false)
	}

	for _, e := range w.Enemies {
		r.drawShip(c, e.X, e.Y, e.Tier.Size, e.Tier.Color)
		eye := e.Tier.Size / 3
		c.FillCircle(e.X+eye, e.Y+e.Tier.Size/2, 4, object.EnemyEyeColor)
		c.FillCircle(e.X+2*eye, e.Y+e.Tier.Size/2, 4, object.EnemyEyeColor)
	}

	for _, b := range w.EnemyBullets {
		r.pts = append(r.pts[:0],
			draw.Point{X: b.X, Y: b.Y},
			draw.Point{X: b.X - b.Size/2, Y: b.Y + b.Size},
			draw.Point{X: b.X + b.Size/2, Y: b.Y + b.Size},
		)
		c.DrawPolygon(r.pts, object.EnemyBulletColor, true)
	}

	for _, b := range w.Bullets {
		c.FillRect(b.X-b.Width/2, b.Y, b.Width, b.Height, object.BulletColor)
	}

	if p := w.Player; p != nil {
		r.drawShip(c, p.X, p.Y, p.Size, object.PlayerColor)
		cx, cy := p.Center()
		c.FillCircle(cx, cy, p.Size/6, object.CockpitColor)
	}

	for _, p := range w.Particles {
		c.FillCircle(p.X, p.Y, particleRadius, object.Faded(p))
	}
}

// drawShip draws the upward triangle inscribed in the size×size box at (x, y).
func (r *renderer) drawShip(c *draw.Canvas, x, y, size float64, clr color.RGBA) {
	r.pts = append(r.pts[:0],
		draw.Point{X: x + size/2, Y: y},
		draw.Point{X: x, Y: y + size},
		draw.Point{X: x + size, Y: y + size},
	)
	c.DrawPolygon(r.pts, clr, true)
}
