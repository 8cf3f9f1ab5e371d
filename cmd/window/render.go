package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/starstrike/internal/game"
	gameconfig "github.com/tomz197/starstrike/internal/game/config"
	"github.com/tomz197/starstrike/internal/object"
	"github.com/tomz197/starstrike/internal/overlay"
)

var backgroundColor = color.RGBA{0, 0, 0, 255}

// The debug font is a fixed 6×16 grid.
const (
	glyphWidth = 6
	lineHeight = 18
)

// drawWorld draws every population, back to front.
func drawWorld(screen *ebiten.Image, w *game.World) {
	for _, s := range w.Stars {
		vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), float32(s.Size/2), object.StarColor(s), true)
	}

	for _, a := range w.Asteroids {
		pts := a.Outline()
		for i := range pts {
			p, q := pts[i], pts[(i+1)%len(pts)]
			vector.StrokeLine(screen, float32(p[0]), float32(p[1]), float32(q[0]), float32(q[1]), 2, object.AsteroidColor, true)
		}
	}

	for _, e := range w.Enemies {
		size := e.Tier.Size
		drawTriangle(screen, e.X+size/2, e.Y, e.X, e.Y+size, e.X+size, e.Y+size, e.Tier.Color)
		vector.DrawFilledCircle(screen, float32(e.X+size/3), float32(e.Y+size/2), 4, object.EnemyEyeColor, true)
		vector.DrawFilledCircle(screen, float32(e.X+size*2/3), float32(e.Y+size/2), 4, object.EnemyEyeColor, true)
	}

	for _, b := range w.EnemyBullets {
		drawTriangle(screen, b.X, b.Y, b.X-b.Size/2, b.Y+b.Size, b.X+b.Size/2, b.Y+b.Size, object.EnemyBulletColor)
	}

	for _, b := range w.Bullets {
		vector.DrawFilledRect(screen, float32(b.X-b.Width/2), float32(b.Y), float32(b.Width), float32(b.Height), object.BulletColor, true)
	}

	if p := w.Player; p != nil {
		drawTriangle(screen, p.X+p.Size/2, p.Y, p.X, p.Y+p.Size, p.X+p.Size, p.Y+p.Size, object.PlayerColor)
		cx, cy := p.Center()
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(p.Size/6), object.CockpitColor, true)
	}

	for _, p := range w.Particles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 2, object.Faded(p), true)
	}
}

// drawTriangle strokes a closed triangle.
func drawTriangle(screen *ebiten.Image, x1, y1, x2, y2, x3, y3 float64, clr color.RGBA) {
	vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 2, clr, true)
	vector.StrokeLine(screen, float32(x2), float32(y2), float32(x3), float32(y3), 2, clr, true)
	vector.StrokeLine(screen, float32(x3), float32(y3), float32(x1), float32(y1), 2, clr, true)
}

// drawOverlay prints the HUD and the phase's text with the debug font.
func drawOverlay(screen *ebiten.Image, g *game.Game) {
	s := g.Session()
	if overlay.ShowHUD(s.Phase) {
		h := overlay.NewHUD(s)
		ebitenutil.DebugPrintAt(screen, h.Score, 8, 4)
		ebitenutil.DebugPrintAt(screen, h.Best, 8, 4+lineHeight)
		printCentered(screen, h.Level, 4)

		for i := 0; i < h.Health; i++ {
			x := float32(gameconfig.FieldWidth - 16 - i*16)
			vector.DrawFilledCircle(screen, x, 12, 5, object.HitColor, true)
		}
	}

	mid := gameconfig.FieldHeight / 2
	for _, l := range overlay.Screen(g) {
		printCentered(screen, l.Text, mid+l.Row*lineHeight)
	}
}

func printCentered(screen *ebiten.Image, text string, y int) {
	x := (gameconfig.FieldWidth - len(text)*glyphWidth) / 2
	ebitenutil.DebugPrintAt(screen, text, x, y)
}
