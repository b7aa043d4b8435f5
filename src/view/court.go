package view

import (
	"math"
	"strings"

	"pong/src/arena"
)

const (
	fillRune = '█'
	ballRune = '●'
)

type cell struct {
	r rune
	c arena.Color
}

//court rasterizes the draw calls onto a character grid
//field coordinates are scaled to the grid size, each cell covers 1/sx x 1/sy field units
type court struct {
	width  int
	height int
	sx     float64
	sy     float64
	cells  []cell
}

func newCourt(f arena.Field, width int, height int) *court {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &court{
		width:  width,
		height: height,
		sx:     float64(width) / f.Width,
		sy:     float64(height) / f.Height,
		cells:  make([]cell, width*height),
	}
}

func (c *court) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{' ', ""}
	}
}

func (c *court) DrawRect(x, y, w, h float64, color arena.Color) {
	x0, y0 := c.col(x), c.row(y)
	x1 := clampInt(int(math.Ceil((x+w)*c.sx))-1, x0, c.width-1)
	y1 := clampInt(int(math.Ceil((y+h)*c.sy))-1, y0, c.height-1)
	for j := y0; j <= y1; j++ {
		for i := x0; i <= x1; i++ {
			c.set(i, j, fillRune, color)
		}
	}
}

//DrawCircle fills the cells whose centers are inside the circle
//a circle smaller than a cell takes the cell under its center
func (c *court) DrawCircle(x, y, r float64, color arena.Color) {
	filled := false
	for j := c.row(y - r); j <= c.row(y+r); j++ {
		for i := c.col(x - r); i <= c.col(x+r); i++ {
			cx := (float64(i) + 0.5) / c.sx
			cy := (float64(j) + 0.5) / c.sy
			if math.Hypot(cx-x, cy-y) <= r {
				c.set(i, j, fillRune, color)
				filled = true
			}
		}
	}
	if !filled {
		c.set(c.col(x), c.row(y), ballRune, color)
	}
}

//DrawText writes the text with its vertical middle at y-TextSize/2, y is the text baseline
func (c *court) DrawText(text string, x, y float64, color arena.Color) {
	i, j := c.col(x), c.row(y-arena.TextSize/2)
	for _, r := range text {
		c.set(i, j, r, color)
		i++
	}
}

//fieldY converts the grid row to the field y of the row center
func (c *court) fieldY(row int) float64 {
	return (float64(row) + 0.5) / c.sy
}

//String renders the grid line by line, colorize is called for every run of the same color
func (c *court) String(colorize func(s string, color arena.Color) string) string {
	var b strings.Builder
	for j := 0; j < c.height; j++ {
		if j != 0 {
			b.WriteByte('\n')
		}
		line := c.cells[j*c.width : (j+1)*c.width]
		start := 0
		for i := 1; i <= len(line); i++ {
			if i < len(line) && line[i].c == line[start].c {
				continue
			}
			var run strings.Builder
			for _, cl := range line[start:i] {
				run.WriteRune(cl.r)
			}
			if line[start].c == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(colorize(run.String(), line[start].c))
			}
			start = i
		}
	}
	return b.String()
}

func (c *court) col(x float64) int {
	return clampInt(int(math.Floor(x*c.sx)), 0, c.width-1)
}

func (c *court) row(y float64) int {
	return clampInt(int(math.Floor(y*c.sy)), 0, c.height-1)
}

func (c *court) set(x int, y int, r rune, color arena.Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = cell{r, color}
}

func clampInt(v int, lo int, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
