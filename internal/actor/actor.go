// Package actor implements the keyboard-controlled rectangle and its
// velocity/friction integrator.
package actor

import (
	"chosenoffset.com/tilefield/internal/palette"
	"chosenoffset.com/tilefield/internal/render"
)

// Direction is one of the four arrow-key directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	numDirections
)

// String returns the key identifier bound to d.
func (d Direction) String() string {
	switch d {
	case Up:
		return "ArrowUp"
	case Down:
		return "ArrowDown"
	case Left:
		return "ArrowLeft"
	case Right:
		return "ArrowRight"
	default:
		return "unknown"
	}
}

// DirectionForKey maps a key identifier to a direction.
func DirectionForKey(id string) (Direction, bool) {
	switch id {
	case "ArrowUp":
		return Up, true
	case "ArrowDown":
		return Down, true
	case "ArrowLeft":
		return Left, true
	case "ArrowRight":
		return Right, true
	}
	return 0, false
}

// Actor is the single player-controlled rectangle.
type Actor struct {
	X, Y          float64
	Width, Height float64
	Color         string
	VX, VY        float64
	Speed         float64 // velocity added per frame while a key is held
	Friction      float64 // per-frame velocity multiplier, 0 < Friction < 1

	held [numDirections]bool
}

// New creates an actor at rest.
func New(x, y, width, height float64, color string, speed, friction float64) *Actor {
	return &Actor{
		X: x, Y: y,
		Width: width, Height: height,
		Color:    color,
		Speed:    speed,
		Friction: friction,
	}
}

// SetKey records a key-down (held=true) or key-up (held=false). Keys other
// than the four arrows are ignored.
func (a *Actor) SetKey(id string, held bool) {
	if d, ok := DirectionForKey(id); ok {
		a.held[d] = held
	}
}

// Held reports whether the key for d is currently down.
func (a *Actor) Held(d Direction) bool {
	if d < 0 || d >= numDirections {
		return false
	}
	return a.held[d]
}

// ReleaseAll marks every direction as released.
func (a *Actor) ReleaseAll() {
	a.held = [numDirections]bool{}
}

// Update advances the actor by one frame inside a surfaceW×surfaceH area.
// Velocity is not reset when the actor is clamped against a wall.
func (a *Actor) Update(surfaceW, surfaceH float64) {
	if a.held[Up] {
		a.VY -= a.Speed
	}
	if a.held[Down] {
		a.VY += a.Speed
	}
	if a.held[Left] {
		a.VX -= a.Speed
	}
	if a.held[Right] {
		a.VX += a.Speed
	}

	a.VX *= a.Friction
	a.VY *= a.Friction

	a.X += a.VX
	a.Y += a.VY

	a.X = clamp(a.X, 0, surfaceW-a.Width)
	a.Y = clamp(a.Y, 0, surfaceH-a.Height)
}

// Draw paints the actor at its current position.
func (a *Actor) Draw(s render.Surface) {
	s.FillRect(a.X, a.Y, a.Width, a.Height, palette.MustParseHex(a.Color))
}

// Step updates the actor against the surface bounds and draws it.
func (a *Actor) Step(s render.Surface) {
	w, h := s.Size()
	a.Update(float64(w), float64(h))
	a.Draw(s)
}

// TerminalVelocity is the speed approached while a key is held:
// the limit of v = (v + Speed) * Friction.
func (a *Actor) TerminalVelocity() float64 {
	if a.Friction >= 1 {
		return 0
	}
	return a.Speed * a.Friction / (1 - a.Friction)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
