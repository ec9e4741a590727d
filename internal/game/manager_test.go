package game

import (
	"testing"

	"chosenoffset.com/tilefield/internal/actor"
	"chosenoffset.com/tilefield/internal/config"
	"chosenoffset.com/tilefield/internal/field"
	"chosenoffset.com/tilefield/internal/palette"
	"chosenoffset.com/tilefield/internal/render"
)

func TestManagerRunsScriptedSession(t *testing.T) {
	cfg := config.DefaultConfig()
	eng := render.NewHeadless(cfg.Surface.Width, cfg.Surface.Height)
	eng.Frames = 60

	m, err := NewManager(cfg, eng, palette.NewSeededGenerator(5))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	if m.Sound != nil {
		t.Error("Expected no audio with defaults")
	}

	// Hold right for 30 frames, then release.
	eng.Events = make([][]render.Event, 31)
	eng.Events[0] = []render.Event{{Kind: render.EventKeyDown, Key: "ArrowRight"}}
	eng.Events[30] = []render.Event{{Kind: render.EventKeyUp, Key: "ArrowRight"}}
	startX := m.Game.Actor.X

	if err := m.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if eng.Title != cfg.Surface.Title {
		t.Errorf("Expected title %q, got %q", cfg.Surface.Title, eng.Title)
	}
	if m.Game.FrameCount != 60 {
		t.Errorf("Expected 60 frames, got %d", m.Game.FrameCount)
	}
	if m.Game.Actor.X <= startX {
		t.Errorf("Expected actor to move right, got %g from %g", m.Game.Actor.X, startX)
	}
	if m.Game.Actor.Held(actor.Right) {
		t.Error("Expected no keys held at the end")
	}
}

// End-to-end: 500x500 surface, tile at [0,50]x[0,50], click (10, 10).
func TestManagerClickScenario(t *testing.T) {
	cfg := config.DefaultConfig()
	eng := render.NewHeadless(500, 500)
	eng.Frames = 2

	m, err := NewManager(cfg, eng, palette.NewSeededGenerator(9))
	if err != nil {
		t.Fatal(err)
	}
	corner := field.NewTile(0, 0, 50, 50, "#000000")
	m.Game.Field.Add(corner)
	eng.Events = [][]render.Event{
		{{Kind: render.EventClick, X: 10, Y: 10}},
	}

	if err := m.Run(); err != nil {
		t.Fatal(err)
	}
	if m.Game.Field.Len() != 101 {
		t.Fatalf("Expected the 100 generated tiles plus the corner tile, got %d", m.Game.Field.Len())
	}
	if corner.X != 0 || corner.Y != 0 || corner.Width != 50 || corner.Height != 50 {
		t.Errorf("Corner tile moved or resized: %+v", corner)
	}
	if !palette.IsHexColor(corner.Color) {
		t.Errorf("Expected a valid color, got %q", corner.Color)
	}
}

func TestManagerRejectsMissingSurface(t *testing.T) {
	if _, err := NewManager(config.DefaultConfig(), &render.Headless{}, nil); err == nil {
		t.Error("Expected error without a surface")
	}
}
