package draw

import (
	"image/color"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Canvas is a colour drawing buffer with 2x vertical resolution using
// half-block characters. Drawing calls take logical playfield coordinates and
// are scaled to terminal pixels.
type Canvas struct {
	cols      int          // Terminal columns covered
	rows      int          // Terminal rows covered
	subHeight int          // rows * 2
	pixels    []color.RGBA // Flat slice: [y * cols + x]; A == 0 means unset

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // cols / logicalWidth
	scaleY        float64 // subHeight / logicalHeight

	offCol int // 0-based terminal offset of the drawing area
	offRow int

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	numBuf          [20]byte
	scaledBuf       []Point
	intersectionBuf []float64
}

// NewCanvas creates a canvas covering area that maps a logicalW×logicalH
// field onto it.
func NewCanvas(area Area, logicalW, logicalH float64) *Canvas {
	c := &Canvas{logicalWidth: logicalW, logicalHeight: logicalH}
	c.Resize(area)
	return c
}

// Resize updates the canvas for a new drawing area while keeping logical size.
func (c *Canvas) Resize(area Area) {
	if area.Cols != c.cols || area.Rows != c.rows {
		c.cols = area.Cols
		c.rows = area.Rows
		c.subHeight = area.Rows * 2
		c.pixels = make([]color.RGBA, c.subHeight*c.cols)
	}
	c.offCol = area.OffCol
	c.offRow = area.OffRow
	c.scaleX = float64(c.cols) / c.logicalWidth
	c.scaleY = float64(c.subHeight) / c.logicalHeight
}

// Area returns the terminal area the canvas covers.
func (c *Canvas) Area() Area {
	return Area{Cols: c.cols, Rows: c.rows, OffCol: c.offCol, OffRow: c.offRow}
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// At returns the pixel at terminal pixel coordinates, or the zero colour
// outside the canvas.
func (c *Canvas) At(px, py int) color.RGBA {
	if px < 0 || px >= c.cols || py < 0 || py >= c.subHeight {
		return color.RGBA{}
	}
	return c.pixels[py*c.cols+px]
}

// setPixel sets a pixel at terminal pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, clr color.RGBA) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.subHeight {
		clr.A = 255
		c.pixels[y*c.cols+x] = clr
	}
}

func (c *Canvas) toPixel(x, y float64) (int, int) {
	return int(math.Round(x * c.scaleX)), int(math.Round(y * c.scaleY))
}

// Plot sets a single pixel at logical coordinates.
func (c *Canvas) Plot(x, y float64, clr color.RGBA) {
	px, py := c.toPixel(x, y)
	c.setPixel(px, py, clr)
}

// FillRect fills the logical rectangle with top-left (x, y). At least one
// pixel is set for any rectangle inside the canvas.
func (c *Canvas) FillRect(x, y, w, h float64, clr color.RGBA) {
	x0, y0 := c.toPixel(x, y)
	x1, y1 := c.toPixel(x+w, y+h)
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)
	for py := max(y0, 0); py < min(y1, c.subHeight); py++ {
		for px := max(x0, 0); px < min(x1, c.cols); px++ {
			c.setPixel(px, py, clr)
		}
	}
}

// FillCircle fills a circle of logical radius r centred at (cx, cy). The
// centre pixel is always set, so small circles stay visible.
func (c *Canvas) FillCircle(cx, cy, r float64, clr color.RGBA) {
	pcx, pcy := cx*c.scaleX, cy*c.scaleY
	rx, ry := r*c.scaleX, r*c.scaleY
	c.Plot(cx, cy, clr)
	if rx < 0.5 || ry < 0.5 {
		return
	}

	for py := int(math.Floor(pcy - ry)); py <= int(math.Ceil(pcy+ry)); py++ {
		dy := (float64(py) + 0.5 - pcy) / ry
		if dy*dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		for px := int(math.Ceil(pcx - half - 0.5)); px <= int(math.Floor(pcx+half-0.5)); px++ {
			c.setPixel(px, py, clr)
		}
	}
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, clr color.RGBA) {
	x1, y1 := c.toPixel(p1.X, p1.Y)
	x2, y2 := c.toPixel(p2.X, p2.Y)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, clr)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon on the canvas.
// If filled is true, the interior is filled using scanline algorithm.
func (c *Canvas) DrawPolygon(points []Point, clr color.RGBA, filled bool) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points, clr)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], clr)
	}
}

// fillPolygon fills a polygon using scanline algorithm in pixel space.
func (c *Canvas) fillPolygon(points []Point, clr color.RGBA) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
		minY = math.Min(minY, scaled[i].Y)
		maxY = math.Max(maxY, scaled[i].Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)
		for i := 0; i+1 < len(intersections); i += 2 {
			for x := int(math.Ceil(intersections[i])); x <= int(math.Floor(intersections[i+1])); x++ {
				c.setPixel(x, y, clr)
			}
		}
	}
}

// Render writes the canvas to w as positioned, 24-bit coloured half blocks.
// Empty cells are skipped so they keep whatever the terminal shows.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.cols * c.rows * 8)

	for row := 0; row < c.rows; row++ {
		topOffset := row * 2 * c.cols
		bottomOffset := topOffset + c.cols

		for col := 0; col < c.cols; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			if top.A == 0 && bottom.A == 0 {
				continue
			}

			c.moveCursor(col+1+c.offCol, row+1+c.offRow)
			switch {
			case top.A != 0 && bottom.A != 0 && top == bottom:
				c.setFG(top)
				c.renderBuf.WriteRune(BlockFull)
			case top.A != 0 && bottom.A != 0:
				c.setFG(top)
				c.setBG(bottom)
				c.renderBuf.WriteRune(BlockUpperHalf)
			case top.A != 0:
				c.setFG(top)
				c.renderBuf.WriteRune(BlockUpperHalf)
			default:
				c.setFG(bottom)
				c.renderBuf.WriteRune(BlockLowerHalf)
			}
			c.renderBuf.WriteString("\033[0m")
		}
	}

	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

func (c *Canvas) setFG(clr color.RGBA) { c.writeColour("\033[38;2;", clr) }
func (c *Canvas) setBG(clr color.RGBA) { c.writeColour("\033[48;2;", clr) }

func (c *Canvas) writeColour(prefix string, clr color.RGBA) {
	c.renderBuf.WriteString(prefix)
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(clr.R), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(clr.G), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(clr.B), 10))
	c.renderBuf.WriteByte('m')
}

// LogicalToTerminal converts logical coordinates to a 1-based (col, row)
// position inside the drawing area, for text overlays next to drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px, py := c.toPixel(x, y)
	return px + 1, py/2 + 1
}
