package loop

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tomz197/starstrike/internal/draw"
	"github.com/tomz197/starstrike/internal/game"
	"github.com/tomz197/starstrike/internal/overlay"
)

var styles = map[overlay.Style]lipgloss.Style{
	overlay.StyleText:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")),
	overlay.StyleTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFC8")),
	overlay.StyleDim:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A")),
	overlay.StyleAlert: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF4040")),
}

// drawOverlay draws the HUD and the text screen for the current phase.
func drawOverlay(f *draw.Frame, g *game.Game) {
	s := g.Session()
	if overlay.ShowHUD(s.Phase) {
		drawHUD(f, overlay.NewHUD(s))
	}

	mid := f.Area().Rows / 2
	for _, l := range overlay.Screen(g) {
		style := styles[l.Style]
		if l.Style == overlay.StyleTier {
			style = lipgloss.NewStyle().Foreground(hexColour(l.Color))
		}
		out := style.Render(l.Text)
		f.WriteCentered(mid+l.Row, lipgloss.Width(out), out)
	}
}

// drawHUD draws score, level and health along the top of the field.
func drawHUD(f *draw.Frame, h overlay.HUD) {
	cols := f.Area().Cols

	f.WriteAt(2, 1, styles[overlay.StyleText].Render(h.Score))
	f.WriteAt(2, 2, styles[overlay.StyleDim].Render(h.Best))

	level := styles[overlay.StyleText].Render(h.Level)
	f.WriteCentered(1, lipgloss.Width(level), level)

	hearts := styles[overlay.StyleAlert].Render(strings.Repeat("♥", h.Health))
	f.WriteAt(max(1, cols-lipgloss.Width(hearts)), 1, hearts)
}

func hexColour(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}
