package render

import (
	"fmt"
	"image/color"
)

// OpKind identifies a recorded paint command.
type OpKind int

// Recorded paint commands.
const (
	OpClear OpKind = iota
	OpFill
	OpStroke
)

// Op is one paint command captured by a Recorder.
type Op struct {
	Kind                OpKind
	X, Y, Width, Height float64
	StrokeWidth         float64
	Color               color.Color
}

// String formats the op for test failure messages.
func (o Op) String() string {
	switch o.Kind {
	case OpClear:
		return "clear"
	case OpFill:
		return fmt.Sprintf("fill(%g,%g,%g,%g,%v)", o.X, o.Y, o.Width, o.Height, o.Color)
	case OpStroke:
		return fmt.Sprintf("stroke(%g,%g,%g,%g,w=%g,%v)", o.X, o.Y, o.Width, o.Height, o.StrokeWidth, o.Color)
	}
	return "unknown"
}

// Recorder is an in-memory Surface that records every paint command.
type Recorder struct {
	Width, Height int
	Ops           []Op
}

// NewRecorder creates a recording surface of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Size returns the surface dimensions.
func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

// Clear records a clear command.
func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear})
}

// FillRect records a fill command.
func (r *Recorder) FillRect(x, y, width, height float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, X: x, Y: y, Width: width, Height: height, Color: clr})
}

// StrokeRect records a stroke command.
func (r *Recorder) StrokeRect(x, y, width, height, strokeWidth float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStroke, X: x, Y: y, Width: width, Height: height, StrokeWidth: strokeWidth, Color: clr})
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count returns how many commands of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
