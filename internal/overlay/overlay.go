// Package overlay describes the text drawn over the playfield in each phase,
// leaving fonts and placement to the host.
package overlay

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/tomz197/starstrike/internal/game"
	"github.com/tomz197/starstrike/internal/game/config"
	"github.com/tomz197/starstrike/internal/object"
)

// Style is the role of a line; hosts map it to colours and weight.
type Style int

const (
	StyleText  Style = iota // Plain white
	StyleTitle              // Headings
	StyleDim                // Hints and secondary values
	StyleAlert              // Warnings, pause and game over
	StyleTier               // Uses Line.Color
)

// Line is one centred line of text. Row is relative to the vertical middle
// of the field, in text rows.
type Line struct {
	Row   int
	Text  string
	Style Style
	Color color.RGBA // Only for StyleTier
}

// HUD holds the values shown along the top of the field.
type HUD struct {
	Score  string
	Best   string
	Level  string
	Health int
}

// Screen returns the centred lines for the game's current phase.
func Screen(g *game.Game) []Line {
	s := g.Session()
	switch s.Phase {
	case game.PhaseStart:
		return startScreen(g)
	case game.PhaseInstructions:
		return instructions(g.Variant())
	case game.PhaseLevelAnnounce:
		return announcement(g)
	case game.PhasePaused:
		return []Line{
			{Row: -1, Text: "PAUSED", Style: StyleAlert},
			{Row: 1, Text: "P to resume", Style: StyleDim},
		}
	case game.PhaseOver:
		return overScreen(s)
	default:
		return nil
	}
}

// ShowHUD reports whether the phase draws the HUD.
func ShowHUD(p game.Phase) bool {
	return p != game.PhaseStart && p != game.PhaseInstructions
}

// NewHUD formats the session counters.
func NewHUD(s game.Session) HUD {
	return HUD{
		Score:  fmt.Sprintf("Score %d", s.Score),
		Best:   fmt.Sprintf("Best %d", max(s.Best, s.Score)),
		Level:  fmt.Sprintf("Level %d", s.Level),
		Health: s.Health,
	}
}

func startScreen(g *game.Game) []Line {
	return []Line{
		{Row: -4, Text: "S T A R S T R I K E", Style: StyleTitle},
		{Row: -2, Text: g.Variant().Name + " mode", Style: StyleDim},
		{Row: 1, Text: "Press ENTER to start", Style: StyleText},
		{Row: 3, Text: "I instructions   Q quit", Style: StyleDim},
		{Row: 5, Text: fmt.Sprintf("Best %d", g.Session().Best), Style: StyleDim},
	}
}

func instructions(v config.Variant) []Line {
	fire := "SPACE or UP fires"
	if v.AutoFire {
		fire = "Your ship fires on its own"
	}

	row := -6
	lines := []Line{{Row: row, Text: "HOW TO PLAY", Style: StyleTitle}}
	row += 2
	for _, text := range []string{"LEFT/RIGHT or A/D move the ship", fire, "Drag to steer   P pauses   Q quits"} {
		lines = append(lines, Line{Row: row, Text: text, Style: StyleText})
		row++
	}

	row++
	for _, t := range object.Tiers {
		lines = append(lines, Line{Row: row, Text: fmt.Sprintf("%-8s %3d pts", t.Name, t.Points), Style: StyleTier, Color: t.Color})
		row++
	}
	if v.AsteroidEvery > 0 {
		lines = append(lines, Line{Row: row, Text: fmt.Sprintf("%-8s %3d pts", "asteroid", config.AsteroidPoints), Style: StyleTier, Color: object.AsteroidColor})
		row++
	}

	return append(lines, Line{Row: row + 1, Text: "B or ESC to go back", Style: StyleDim})
}

func announcement(g *game.Game) []Line {
	tiers := g.WaveTiers()
	names := make([]string, len(tiers))
	for i, t := range tiers {
		names[i] = t.Name
	}
	label := "Enemy Type: "
	if len(names) > 1 {
		label = "Enemy Types: "
	}

	return []Line{
		{Row: -1, Text: fmt.Sprintf("LEVEL %d", g.Session().Level), Style: StyleTitle},
		{Row: 1, Text: label + strings.Join(names, ", "), Style: StyleText},
		{Row: 3, Text: "ENTER to skip", Style: StyleDim},
	}
}

func overScreen(s game.Session) []Line {
	lines := []Line{
		{Row: -2, Text: "GAME OVER", Style: StyleAlert},
		{Row: 0, Text: fmt.Sprintf("Score %d", s.Score), Style: StyleText},
	}
	if s.Score > 0 && s.Score == s.Best {
		lines = append(lines, Line{Row: 1, Text: "New best!", Style: StyleTitle})
	}
	return append(lines, Line{Row: 3, Text: "ENTER restart   S share   Q quit", Style: StyleDim})
}
