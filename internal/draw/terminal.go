package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Frame accumulates one frame of terminal output and writes it in a single
// flush, so the terminal never shows a half-drawn frame. Text positions are
// relative to the drawing area set with SetArea.
type Frame struct {
	buf    strings.Builder
	bufw   *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
	numBuf [20]byte      // Scratch buffer for allocation-free integer formatting
	area   Area
}

// NewFrame creates a Frame that writes to w.
func NewFrame(w io.Writer) *Frame {
	return &Frame{bufw: bufio.NewWriterSize(w, 16384)}
}

// SetArea updates the drawing area (e.g. after terminal resize).
func (f *Frame) SetArea(a Area) {
	f.area = a
}

// Area returns the current drawing area.
func (f *Frame) Area() Area {
	return f.area
}

// MoveCursor appends an ANSI cursor position sequence. col and row are
// 1-based area coordinates.
func (f *Frame) MoveCursor(col, row int) {
	f.buf.WriteString("\033[")
	f.buf.Write(strconv.AppendInt(f.numBuf[:0], int64(row+f.area.OffRow), 10))
	f.buf.WriteByte(';')
	f.buf.Write(strconv.AppendInt(f.numBuf[:0], int64(col+f.area.OffCol), 10))
	f.buf.WriteByte('H')
}

// Write implements io.Writer for use with Canvas.Render.
func (f *Frame) Write(p []byte) (n int, err error) {
	return f.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (f *Frame) WriteString(s string) {
	f.buf.WriteString(s)
}

// WriteAt writes a string at a 1-based area position.
func (f *Frame) WriteAt(col, row int, s string) {
	f.MoveCursor(col, row)
	f.buf.WriteString(s)
}

// WriteCentered writes s centred horizontally on row. width is the printable
// width of s, which differs from len(s) when s carries escape sequences.
func (f *Frame) WriteCentered(row, width int, s string) {
	col := max(1, (f.area.Cols-width)/2+1)
	f.WriteAt(col, row, s)
}

// Ensure Frame satisfies io.Writer.
var _ io.Writer = (*Frame)(nil)

// Flush writes the accumulated frame to the underlying writer and resets the buffer.
func (f *Frame) Flush() error {
	if _, err := f.bufw.WriteString(f.buf.String()); err != nil {
		return err
	}
	f.buf.Reset()
	return f.bufw.Flush()
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Terminal control sequences.
const (
	seqClear       = "\033[H\033[2J"
	seqHideCursor  = "\033[?25l"
	seqShowCursor  = "\033[?25h"
	seqEnterAlt    = "\033[?1049h"
	seqExitAlt     = "\033[?1049l"
	seqResetColour = "\033[0m"
)

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	io.WriteString(w, seqClear)
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	io.WriteString(w, seqHideCursor)
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	io.WriteString(w, seqShowCursor)
}

// EnterAltScreen switches to the alternate screen buffer so the shell
// scrollback is restored on exit.
func EnterAltScreen(w io.Writer) {
	io.WriteString(w, seqEnterAlt)
}

// ExitAltScreen leaves the alternate screen buffer and resets colours.
func ExitAltScreen(w io.Writer) {
	io.WriteString(w, seqResetColour+seqExitAlt)
}
