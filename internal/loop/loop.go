// Package loop runs a game in a raw-mode ANSI terminal with the standard
// Input → Update → Draw cycle.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/starstrike/internal/draw"
	"github.com/tomz197/starstrike/internal/game"
	"github.com/tomz197/starstrike/internal/game/config"
	"github.com/tomz197/starstrike/internal/input"
)

// Options configures the terminal loop. The zero value reads the size of
// os.Stdout and does not log.
type Options struct {
	Logger   *log.Logger
	SizeFunc draw.TermSizeFunc
}

// Run drives g until the player quits or ctx is cancelled. The terminal must
// already be in raw mode.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, g *game.Game, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.SizeFunc == nil {
		opts.SizeFunc = draw.DefaultTermSizeFunc
	}

	stream := input.StartStream(r)
	out := draw.NewFrame(w)
	canvas := draw.NewCanvas(draw.Area{}, config.FieldWidth, config.FieldHeight)
	rend := &renderer{}

	draw.EnterAltScreen(out)
	draw.HideCursor(out)
	draw.ClearScreen(out)
	if err := out.Flush(); err != nil {
		return fmt.Errorf("prepare terminal: %w", err)
	}
	defer func() {
		draw.ShowCursor(out)
		draw.ExitAltScreen(out)
		_ = out.Flush()
	}()

	for {
		frameStart := time.Now()

		select {
		case <-ctx.Done():
			opts.Logger.Info("loop cancelled", "err", ctx.Err())
			return nil
		default:
		}

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		if in.Quit {
			opts.Logger.Info("quit", "score", g.Session().Score)
			return nil
		}

		// ===== UPDATE PHASE =====
		if err := updateScreen(canvas, out, opts); err != nil {
			return err
		}

		before := g.Session().Phase
		g.Step(in)
		if g.Session().Phase != before {
			// Keys held on one screen must not carry into the next.
			stream.Reset()
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(out, canvas, rend, g); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}
}

// updateScreen checks for terminal resize and refits the drawing area.
func updateScreen(canvas *draw.Canvas, out *draw.Frame, opts Options) error {
	cols, rows, err := opts.SizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	area := draw.Fit(cols, rows, config.FieldWidth, config.FieldHeight)
	if area == canvas.Area() {
		return nil
	}
	canvas.Resize(area)
	out.SetArea(area)
	opts.Logger.Debug("terminal resized", "cols", cols, "rows", rows, "area", fmt.Sprintf("%dx%d", area.Cols, area.Rows))
	return nil
}

// drawFrame clears the screen, draws the playfield and the overlay, and
// flushes everything as one write.
func drawFrame(out *draw.Frame, canvas *draw.Canvas, rend *renderer, g *game.Game) error {
	draw.ClearScreen(out)
	canvas.Clear()

	rend.drawWorld(canvas, g.World())
	if err := canvas.Render(out); err != nil {
		return err
	}

	// Text goes after the canvas so it is on top
	drawOverlay(out, g)

	return out.Flush()
}
