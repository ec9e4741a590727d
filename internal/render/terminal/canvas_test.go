package terminal

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/tilefield/internal/render"
)

func TestCanvasGrid(t *testing.T) {
	c := NewCanvas(500, 500, 10, 25)
	cols, rows := c.Grid()
	if cols != 50 || rows != 20 {
		t.Errorf("Expected 50x20 cells, got %dx%d", cols, rows)
	}
	w, h := c.Size()
	if w != 500 || h != 500 {
		t.Errorf("Expected surface size 500x500, got %dx%d", w, h)
	}
}

func TestCellSpan(t *testing.T) {
	tests := []struct {
		start, length float64
		lo, hi        int
	}{
		{0, 50, 0, 4},      // centers 5..45
		{5, 10, 0, 1},      // centers on both edges
		{0, 4, 0, -1},      // no center covered
		{-20, 40, 0, 1},    // clipped at the left
		{480, 100, 48, 49}, // clipped at the right
	}
	for _, tt := range tests {
		lo, hi := cellSpan(tt.start, tt.length, 10, 50)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("cellSpan(%g, %g): expected [%d, %d], got [%d, %d]", tt.start, tt.length, tt.lo, tt.hi, lo, hi)
		}
	}
}

func TestCanvasFillStrokeClear(t *testing.T) {
	c := NewCanvas(100, 100, 10, 10)
	red := color.RGBA{0xff, 0, 0, 0xff}
	c.FillRect(0, 0, 50, 50, red)

	want := tcell.StyleDefault.Background(tcell.NewRGBColor(255, 0, 0))
	if _, style := c.Cell(2, 2); style != want {
		t.Errorf("Expected filled cell style %v, got %v", want, style)
	}
	if _, style := c.Cell(6, 6); style != tcell.StyleDefault {
		t.Errorf("Expected untouched cell, got %v", style)
	}

	c.StrokeRect(0, 0, 50, 50, 3, render.Black)
	if r, _ := c.Cell(0, 2); r != strokeRune {
		t.Errorf("Expected stroke on the left edge, got %q", r)
	}
	if r, _ := c.Cell(4, 4); r != strokeRune {
		t.Errorf("Expected stroke on the corner, got %q", r)
	}
	r, style := c.Cell(2, 2)
	if r != ' ' || style != want {
		t.Errorf("Expected interior untouched by stroke, got %q %v", r, style)
	}

	c.Clear()
	if r, style := c.Cell(0, 0); r != ' ' || style != tcell.StyleDefault {
		t.Errorf("Expected cleared cell, got %q %v", r, style)
	}
}

func TestToTcellColorTransparent(t *testing.T) {
	if got := toTcellColor(color.RGBA{}); got != tcell.ColorDefault {
		t.Errorf("Expected default color for transparent input, got %v", got)
	}
}
