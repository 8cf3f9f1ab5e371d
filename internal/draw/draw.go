// Package draw renders the playfield to an ANSI terminal using half-block
// characters, two colour pixels per character cell.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Area is the part of the terminal the playfield is drawn into.
type Area struct {
	Cols, Rows int // Size in character cells
	OffCol     int // Columns skipped on the left (0-based)
	OffRow     int // Rows skipped at the top (0-based)
}

// Fit returns the largest area of a cols×rows terminal that keeps the
// aspect ratio of a logicalW×logicalH field, centred. Each cell holds two
// square-ish pixels stacked vertically.
func Fit(cols, rows int, logicalW, logicalH float64) Area {
	if cols <= 0 || rows <= 0 || logicalW <= 0 || logicalH <= 0 {
		return Area{}
	}

	a := Area{Rows: rows}
	a.Cols = int(float64(rows*2) * logicalW / logicalH)
	if a.Cols > cols {
		a.Cols = cols
		a.Rows = int(float64(cols) * logicalH / logicalW / 2)
	}
	a.Cols = max(a.Cols, 1)
	a.Rows = max(a.Rows, 1)
	a.OffCol = (cols - a.Cols) / 2
	a.OffRow = (rows - a.Rows) / 2
	return a
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
