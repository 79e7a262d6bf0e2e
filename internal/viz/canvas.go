package viz

import (
	"math"
	"strings"

	"github.com/san-kum/collatz/internal/playback"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a braille dot grid. Coordinates are in sub-pixels: the grid is
// (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// MarkColumn fills the sub-pixel column x top to bottom.
func (c *Canvas) MarkColumn(x int) {
	for y := 0; y < c.Height*4; y++ {
		c.Set(x, y)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		b.WriteString(string(row))
		if i < len(c.Grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// PlotOverview draws the whole trajectory scaled to the canvas, with a
// vertical marker at cursor.
func (c *Canvas) PlotOverview(values []float64, scale playback.ScaleMode, cursor int) {
	c.Clear()
	if len(values) == 0 {
		return
	}
	pw, ph := c.Width*2, c.Height*4

	ys := make([]float64, len(values))
	maxY := 0.0
	for i, v := range values {
		if scale == playback.Logarithmic {
			v = math.Log10(v)
		}
		ys[i] = v
		if v > maxY {
			maxY = v
		}
	}
	if maxY == 0 {
		maxY = 1
	}

	px, py := -1, -1
	for i, y := range ys {
		x := OverviewColumn(i, len(values), pw)
		yy := ph - 1 - int(math.Round(y/maxY*float64(ph-1)))
		if px >= 0 {
			c.DrawLine(px, py, x, yy)
		} else {
			c.Set(x, yy)
		}
		px, py = x, yy
	}
	if cursor >= 0 && cursor < len(values) {
		c.MarkColumn(OverviewColumn(cursor, len(values), pw))
	}
}

// OverviewColumn maps step i of n to a sub-pixel column in [0, pw).
func OverviewColumn(i, n, pw int) int {
	if n <= 1 || pw <= 1 {
		return 0
	}
	return int(math.Round(float64(i) * float64(pw-1) / float64(n-1)))
}

// OverviewStep maps a character column of a canvas width cells wide back
// to a step.
func OverviewStep(col, n, width int) int {
	if n <= 1 || width <= 1 {
		return 0
	}
	if col < 0 {
		col = 0
	}
	if col > width-1 {
		col = width - 1
	}
	return int(math.Round(float64(col) * float64(n-1) / float64(width-1)))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
