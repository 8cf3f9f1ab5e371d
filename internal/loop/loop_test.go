package loop

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/tomz197/starstrike/internal/draw"
	"github.com/tomz197/starstrike/internal/game"
	"github.com/tomz197/starstrike/internal/game/config"
	"github.com/tomz197/starstrike/internal/input"
	"github.com/tomz197/starstrike/internal/object"
)

func fixedSize(cols, rows int) draw.TermSizeFunc {
	return func() (int, int, error) { return cols, rows, nil }
}

func newGame(v config.Variant) *game.Game {
	return game.New(game.Options{Variant: v, Rand: rand.New(rand.NewSource(3))})
}

func TestRunQuitsOnQ(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("q"))

	err := Run(context.Background(), r, &out, newGame(config.Classic), Options{SizeFunc: fixedSize(60, 40)})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.HasPrefix(out.String(), "\033[?1049h\033[?25l") {
		t.Fatalf("alternate screen not entered, output starts %q", out.String()[:min(16, out.Len())])
	}
	if !strings.HasSuffix(out.String(), "\033[?25h\033[0m\033[?1049l") {
		t.Fatalf("terminal not restored, output ends %q", out.String()[max(0, out.Len()-32):])
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, bufio.NewReader(pr), io.Discard, newGame(config.Classic), Options{SizeFunc: fixedSize(60, 40)})
	if err != nil {
		t.Fatalf("Run after cancel: %v", err)
	}
}

func TestRunReportsSizeError(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	errNoTTY := errors.New("not a terminal")
	sizeFunc := func() (int, int, error) { return 0, 0, errNoTTY }

	err := Run(context.Background(), bufio.NewReader(pr), io.Discard, newGame(config.Classic), Options{SizeFunc: sizeFunc})
	if !errors.Is(err, errNoTTY) {
		t.Fatalf("Run err = %v, want %v", err, errNoTTY)
	}
}

func TestDrawWorldPlayer(t *testing.T) {
	g := newGame(config.Swarm)
	g.StartGame()

	c := draw.NewCanvas(draw.Area{Cols: 48, Rows: 32}, config.FieldWidth, config.FieldHeight)
	(&renderer{}).drawWorld(c, g.World())

	// Lower body of the ship, below the cockpit.
	if got := c.At(24, 61); got != object.PlayerColor {
		t.Fatalf("ship body pixel = %v, want %v", got, object.PlayerColor)
	}
	if got := c.At(24, 60); got != object.CockpitColor {
		t.Fatalf("cockpit pixel = %v, want %v", got, object.CockpitColor)
	}
}

func TestOverlayAnnouncement(t *testing.T) {
	g := newGame(config.Classic)
	g.StartGame()
	g.World().Enemies = nil
	g.Step(input.Input{})
	if g.Session().Phase != game.PhaseLevelAnnounce {
		t.Fatalf("setup: phase = %s", g.Session().Phase)
	}

	var out bytes.Buffer
	f := draw.NewFrame(&out)
	f.SetArea(draw.Fit(60, 40, config.FieldWidth, config.FieldHeight))
	drawOverlay(f, g)
	if err := f.Flush(); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"LEVEL 2", "Enemy Type: scout", "Score 0", "♥♥♥"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("overlay missing %q", want)
		}
	}
}

func TestOverlayInstructionsListsTiers(t *testing.T) {
	g := newGame(config.Meteor)
	g.Step(input.Input{Info: true})

	var out bytes.Buffer
	f := draw.NewFrame(&out)
	f.SetArea(draw.Fit(60, 40, config.FieldWidth, config.FieldHeight))
	drawOverlay(f, g)
	if err := f.Flush(); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"HOW TO PLAY", "basic", "scout", "bomber", "asteroid"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("instructions missing %q", want)
		}
	}
}
