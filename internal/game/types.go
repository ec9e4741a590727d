package game

import "errors"

// ErrNoSurface is returned when the engine has no usable drawing surface.
var ErrNoSurface = errors.New("no drawing surface")

// Sounder plays feedback for a recolor.
type Sounder interface {
	Blip()
}
