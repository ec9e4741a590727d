package field

import (
	"testing"

	"chosenoffset.com/tilefield/internal/palette"
	"chosenoffset.com/tilefield/internal/render"
)

func TestTileContainsPoint(t *testing.T) {
	tile := NewTile(100, 200, 50, 40, "#123456")

	inside := [][2]float64{
		{100, 200}, {150, 200}, {100, 240}, {150, 240}, // corners
		{125, 220}, // center
	}
	for _, p := range inside {
		if !tile.ContainsPoint(p[0], p[1]) {
			t.Errorf("Expected (%g, %g) to be inside", p[0], p[1])
		}
	}

	outside := [][2]float64{
		{99, 200}, {151, 200}, {100, 199}, {100, 241},
	}
	for _, p := range outside {
		if tile.ContainsPoint(p[0], p[1]) {
			t.Errorf("Expected (%g, %g) to be outside", p[0], p[1])
		}
	}
}

func TestTileDraw(t *testing.T) {
	rec := render.NewRecorder(500, 500)
	tile := NewTile(10, 20, 50, 50, "#ff0000")

	tile.Draw(rec)
	if len(rec.Ops) != 1 || rec.Ops[0].Kind != render.OpFill {
		t.Fatalf("Expected a single fill, got %v", rec.Ops)
	}
	if rec.Ops[0].Color != palette.MustParseHex("#ff0000") {
		t.Errorf("Expected fill in tile color, got %v", rec.Ops[0].Color)
	}

	rec.Reset()
	tile.Hovered = true
	tile.Draw(rec)
	if len(rec.Ops) != 2 {
		t.Fatalf("Expected fill and stroke, got %v", rec.Ops)
	}
	stroke := rec.Ops[1]
	if stroke.Kind != render.OpStroke || stroke.StrokeWidth != HoverStrokeWidth || stroke.Color != render.Black {
		t.Errorf("Expected black 3-wide stroke, got %v", stroke)
	}
	if stroke.X != 10 || stroke.Y != 20 || stroke.Width != 50 || stroke.Height != 50 {
		t.Errorf("Expected stroke on tile bounds, got %v", stroke)
	}
}

func TestTileRecolorRedraws(t *testing.T) {
	rec := render.NewRecorder(500, 500)
	gen := palette.NewSeededGenerator(7)
	tile := NewTile(0, 0, 50, 50, "#000000")

	changed := false
	for i := 0; i < 20; i++ {
		before := tile.Color
		rec.Reset()
		tile.Recolor(gen, rec)
		if !palette.IsHexColor(tile.Color) {
			t.Fatalf("Expected valid hex color, got %q", tile.Color)
		}
		if tile.Color != before {
			changed = true
		}
		if rec.Count(render.OpFill) != 1 {
			t.Fatalf("Expected recolor to redraw the tile, got %v", rec.Ops)
		}
	}
	if !changed {
		t.Error("Expected recolor to change the color at least once in 20 draws")
	}
	if tile.X != 0 || tile.Y != 0 || tile.Width != 50 || tile.Height != 50 {
		t.Errorf("Recolor must not move or resize the tile, got %+v", tile)
	}
}
