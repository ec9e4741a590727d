// Package render defines the backend-neutral drawing surface, input events
// and frame clock that the game logic is written against. Concrete backends
// live in the ebiten and terminal sub-packages.
package render

import (
	"image/color"
)

// Surface is a fixed-size drawing area that accepts rectangle paint commands.
// Coordinates are surface-local, with the origin at the top-left corner and
// Y increasing downward.
type Surface interface {
	// Size returns the surface dimensions in surface units.
	Size() (width, height int)

	// Clear erases the whole surface.
	Clear()

	// FillRect paints a filled axis-aligned rectangle.
	FillRect(x, y, width, height float64, clr color.Color)

	// StrokeRect paints the border of an axis-aligned rectangle.
	StrokeRect(x, y, width, height, strokeWidth float64, clr color.Color)
}

// EventKind identifies the kind of an input event.
type EventKind int

// Event kinds delivered by a backend.
const (
	EventClick EventKind = iota
	EventPointerMove
	EventKeyDown
	EventKeyUp
	EventFocusLost
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventClick:
		return "click"
	case EventPointerMove:
		return "pointermove"
	case EventKeyDown:
		return "keydown"
	case EventKeyUp:
		return "keyup"
	case EventFocusLost:
		return "focuslost"
	default:
		return "unknown"
	}
}

// Event is a single input event. Pointer events carry viewport-absolute
// coordinates; use Engine.SurfaceOffset to translate them into surface-local
// coordinates. Key events carry a key identifier such as "ArrowUp".
type Event struct {
	Kind EventKind
	X, Y float64
	Key  string
}

// Host receives input events from a backend. Each call runs to completion
// before the next event or frame callback is delivered.
type Host interface {
	HandleEvent(ev Event)
}

// FrameClock schedules a callback to run once on the next display refresh.
type FrameClock interface {
	RequestFrame(fn func())
}

// Engine owns the window (or terminal), the drawing surface and the frame
// clock, and runs the event loop.
type Engine interface {
	// Surface returns the drawing surface, or nil if it could not be created.
	Surface() Surface

	// SurfaceOffset returns the on-screen position of the surface's top-left
	// corner in viewport coordinates.
	SurfaceOffset() (x, y float64)

	// Clock returns the frame clock driven by this engine.
	Clock() FrameClock

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// Run delivers events to host and drives the frame clock until the
	// session ends. This is a blocking call.
	Run(host Host) error
}

// Black is the outline color used for hovered tiles.
var Black color.Color = color.RGBA{0, 0, 0, 0xff}
