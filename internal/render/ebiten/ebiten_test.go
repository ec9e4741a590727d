package ebiten

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/tilefield/internal/render"
)

func TestKeyName(t *testing.T) {
	tests := map[ebiten.Key]string{
		ebiten.KeyArrowUp:    "ArrowUp",
		ebiten.KeyArrowDown:  "ArrowDown",
		ebiten.KeyArrowLeft:  "ArrowLeft",
		ebiten.KeyArrowRight: "ArrowRight",
	}
	for k, want := range tests {
		if got := keyName(k); got != want {
			t.Errorf("keyName(%v): expected %q, got %q", k, want, got)
		}
	}
	if keyName(ebiten.KeyA) == "" {
		t.Error("Expected a name for non-arrow keys")
	}
}

func TestCenteredOffset(t *testing.T) {
	x, y := centeredOffset(540, 540, 500, 500)
	if x != 20 || y != 20 {
		t.Errorf("Expected (20, 20), got (%g, %g)", x, y)
	}
	x, y = centeredOffset(400, 300, 500, 500)
	if x != 0 || y != 0 {
		t.Errorf("Expected oversized canvas pinned at origin, got (%g, %g)", x, y)
	}
}

func TestAppendPointerEvents(t *testing.T) {
	events := appendPointerEvents(nil, 30, 40, false, false)
	if len(events) != 0 {
		t.Errorf("Expected no events for a still pointer, got %v", events)
	}

	events = appendPointerEvents(nil, 30, 40, true, true)
	if len(events) != 2 {
		t.Fatalf("Expected move and click, got %v", events)
	}
	if events[0].Kind != render.EventPointerMove || events[1].Kind != render.EventClick {
		t.Errorf("Expected move before click, got %v", events)
	}
	if events[1].X != 30 || events[1].Y != 40 {
		t.Errorf("Expected click at (30, 40), got (%g, %g)", events[1].X, events[1].Y)
	}
}

func TestAppendFocusEvents(t *testing.T) {
	if events := appendFocusEvents(nil, true, true); len(events) != 0 {
		t.Errorf("Expected no events while focused, got %v", events)
	}
	if events := appendFocusEvents(nil, false, false); len(events) != 0 {
		t.Errorf("Expected no events while unfocused, got %v", events)
	}
	events := appendFocusEvents(nil, true, false)
	if len(events) != 1 || events[0].Kind != render.EventFocusLost {
		t.Errorf("Expected focus-lost event, got %v", events)
	}
}
