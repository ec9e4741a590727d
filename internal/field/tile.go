package field

import (
	"chosenoffset.com/tilefield/internal/palette"
	"chosenoffset.com/tilefield/internal/render"
)

// HoverStrokeWidth is the outline width drawn around a hovered tile.
const HoverStrokeWidth = 3

// Tile is an axis-aligned colored rectangle that can be recolored by a click
// and outlined while the pointer is over it.
type Tile struct {
	X, Y          float64
	Width, Height float64
	Color         string // "#rrggbb"
	Hovered       bool
}

// NewTile creates an unhovered tile.
func NewTile(x, y, width, height float64, color string) *Tile {
	return &Tile{X: x, Y: y, Width: width, Height: height, Color: color}
}

// Draw paints the tile, plus a black outline when hovered.
func (t *Tile) Draw(s render.Surface) {
	s.FillRect(t.X, t.Y, t.Width, t.Height, palette.MustParseHex(t.Color))
	if t.Hovered {
		s.StrokeRect(t.X, t.Y, t.Width, t.Height, HoverStrokeWidth, render.Black)
	}
}

// ContainsPoint reports whether (px, py) lies inside the tile.
// Points on the edge are considered inside.
func (t *Tile) ContainsPoint(px, py float64) bool {
	return px >= t.X && px <= t.X+t.Width &&
		py >= t.Y && py <= t.Y+t.Height
}

// Recolor assigns a fresh random color and redraws the tile immediately.
func (t *Tile) Recolor(gen *palette.Generator, s render.Surface) {
	t.Color = gen.RandomHexColor()
	t.Draw(s)
}
