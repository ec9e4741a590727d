// Package field manages the collection of interactive tiles: random
// placement at startup, click-to-recolor and hover outlines.
package field

import (
	"errors"
	"fmt"
	"math"

	"chosenoffset.com/tilefield/internal/palette"
	"chosenoffset.com/tilefield/internal/render"
)

// Defaults used when populating a field.
const (
	DefaultTileCount = 100
	DefaultTileSize  = 50
)

// ErrTileTooLarge is returned when a tile cannot fit inside the surface.
var ErrTileTooLarge = errors.New("tile does not fit the surface")

// Field is the ordered collection of tiles drawn on a surface. Later tiles
// draw on top of earlier ones.
type Field struct {
	surface render.Surface
	gen     *palette.Generator
	tiles   []*Tile
}

// New creates an empty field drawing on s and taking colors and positions
// from gen.
func New(s render.Surface, gen *palette.Generator) *Field {
	return &Field{surface: s, gen: gen}
}

// Populate appends count tiles of tileSize×tileSize at random positions that
// keep each tile fully inside the surface, drawing each as it is created.
func (f *Field) Populate(count int, tileSize float64) error {
	if count < 0 {
		return fmt.Errorf("populate: negative tile count %d", count)
	}
	w, h := f.surface.Size()
	maxX := int(math.Floor(float64(w) - tileSize))
	maxY := int(math.Floor(float64(h) - tileSize))
	if tileSize <= 0 || maxX < 0 || maxY < 0 {
		return fmt.Errorf("populate: size %g on %dx%d surface: %w", tileSize, w, h, ErrTileTooLarge)
	}

	for i := 0; i < count; i++ {
		x := f.gen.RandomInteger(maxX)
		y := f.gen.RandomInteger(maxY)
		tile := NewTile(float64(x), float64(y), tileSize, tileSize, f.gen.RandomHexColor())
		f.tiles = append(f.tiles, tile)
		tile.Draw(f.surface)
	}
	return nil
}

// Add appends an existing tile without drawing it.
func (f *Field) Add(t *Tile) {
	f.tiles = append(f.tiles, t)
}

// Tiles returns the tiles in draw order. The returned slice MUST NOT be
// mutated.
func (f *Field) Tiles() []*Tile {
	return f.tiles
}

// Len returns the number of tiles.
func (f *Field) Len() int {
	return len(f.tiles)
}

// TileAt returns the topmost tile containing (x, y), or nil.
func (f *Field) TileAt(x, y float64) *Tile {
	for i := len(f.tiles) - 1; i >= 0; i-- {
		if f.tiles[i].ContainsPoint(x, y) {
			return f.tiles[i]
		}
	}
	return nil
}

// HandleClick recolors every tile containing the surface-local point (x, y)
// and returns how many were recolored.
func (f *Field) HandleClick(x, y float64) int {
	n := 0
	for _, t := range f.tiles {
		if t.ContainsPoint(x, y) {
			t.Recolor(f.gen, f.surface)
			n++
		}
	}
	return n
}

// UpdateHover recomputes every tile's hovered flag for the surface-local
// point (x, y) and reports whether any flag changed.
func (f *Field) UpdateHover(x, y float64) (changed bool) {
	for _, t := range f.tiles {
		hovered := t.ContainsPoint(x, y)
		if hovered != t.Hovered {
			t.Hovered = hovered
			changed = true
		}
	}
	return changed
}

// HandleHover updates hover flags and, only if one changed, clears the
// surface and redraws every tile.
func (f *Field) HandleHover(x, y float64) bool {
	if !f.UpdateHover(x, y) {
		return false
	}
	f.surface.Clear()
	f.Draw()
	return true
}

// Draw paints all tiles in collection order.
func (f *Field) Draw() {
	for _, t := range f.tiles {
		t.Draw(f.surface)
	}
}
