package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// strokeRune marks outline cells; the stroke color is its foreground.
const strokeRune = '▒'

// Canvas implements render.Surface as a grid of terminal cells. Each cell
// covers cellWidth×cellHeight surface units and takes the paint of the last
// rectangle covering its center.
type Canvas struct {
	width, height         int
	cellWidth, cellHeight float64
	cols, rows            int
	runes                 []rune
	styles                []tcell.Style
}

// NewCanvas creates a canvas for a width×height surface.
func NewCanvas(width, height int, cellWidth, cellHeight float64) *Canvas {
	cols := int(math.Ceil(float64(width) / cellWidth))
	rows := int(math.Ceil(float64(height) / cellHeight))
	c := &Canvas{
		width: width, height: height,
		cellWidth: cellWidth, cellHeight: cellHeight,
		cols: cols, rows: rows,
		runes:  make([]rune, cols*rows),
		styles: make([]tcell.Style, cols*rows),
	}
	c.Clear()
	return c
}

// Size returns the surface dimensions in surface units.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Grid returns the canvas dimensions in cells.
func (c *Canvas) Grid() (cols, rows int) {
	return c.cols, c.rows
}

// Clear resets every cell to the default style.
func (c *Canvas) Clear() {
	for i := range c.runes {
		c.runes[i] = ' '
		c.styles[i] = tcell.StyleDefault
	}
}

// FillRect paints the background of every cell whose center lies in the
// rectangle.
func (c *Canvas) FillRect(x, y, width, height float64, clr color.Color) {
	style := tcell.StyleDefault.Background(toTcellColor(clr))
	c0, c1 := cellSpan(x, width, c.cellWidth, c.cols)
	r0, r1 := cellSpan(y, height, c.cellHeight, c.rows)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			i := row*c.cols + col
			c.runes[i] = ' '
			c.styles[i] = style
		}
	}
}

// StrokeRect marks the outermost covered cells of the rectangle, keeping
// their background. Stroke width is below cell resolution and is ignored.
func (c *Canvas) StrokeRect(x, y, width, height, strokeWidth float64, clr color.Color) {
	fg := toTcellColor(clr)
	c0, c1 := cellSpan(x, width, c.cellWidth, c.cols)
	r0, r1 := cellSpan(y, height, c.cellHeight, c.rows)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if row != r0 && row != r1 && col != c0 && col != c1 {
				continue
			}
			i := row*c.cols + col
			c.runes[i] = strokeRune
			c.styles[i] = c.styles[i].Foreground(fg)
		}
	}
}

// Cell returns the content of a cell.
func (c *Canvas) Cell(col, row int) (rune, tcell.Style) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return ' ', tcell.StyleDefault
	}
	i := row*c.cols + col
	return c.runes[i], c.styles[i]
}

// Flush copies the canvas onto the screen with its top-left cell at
// (originX, originY).
func (c *Canvas) Flush(screen tcell.Screen, originX, originY int) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			i := row*c.cols + col
			screen.SetContent(originX+col, originY+row, c.runes[i], nil, c.styles[i])
		}
	}
}

// cellSpan returns the inclusive range of cells whose centers lie in
// [start, start+length]. An empty range has lo > hi.
func cellSpan(start, length, cell float64, n int) (lo, hi int) {
	lo = int(math.Ceil(start/cell - 0.5))
	hi = int(math.Floor((start+length)/cell - 0.5))
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	return lo, hi
}

// toTcellColor converts any color to a 24-bit terminal color. Fully
// transparent colors map to the terminal default.
func toTcellColor(clr color.Color) tcell.Color {
	c, ok := colorful.MakeColor(clr)
	if !ok {
		return tcell.ColorDefault
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
