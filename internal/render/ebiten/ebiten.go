// Package ebiten implements the render interfaces with Ebitengine: the
// drawing surface is an offscreen canvas shown centered in the window, input
// is polled once per tick and the frame clock runs on ebiten's Update.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/tilefield/internal/render"
)

// Margin is the gap in pixels between the window edge and the canvas.
const Margin = 20

// backdrop fills the window area around the canvas.
var backdrop = color.RGBA{0x30, 0x30, 0x30, 0xff}

// Canvas implements render.Surface on an offscreen ebiten.Image that keeps
// its contents between frames.
type Canvas struct {
	img           *ebiten.Image
	width, height int
}

// NewCanvas creates a width×height canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:    ebiten.NewImage(width, height),
		width:  width,
		height: height,
	}
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Clear clears the canvas to transparent.
func (c *Canvas) Clear() {
	c.img.Clear()
}

// FillRect draws a filled rectangle on the canvas.
func (c *Canvas) FillRect(x, y, width, height float64, clr color.Color) {
	vector.DrawFilledRect(c.img, float32(x), float32(y), float32(width), float32(height), clr, false)
}

// StrokeRect draws a rectangle outline on the canvas.
func (c *Canvas) StrokeRect(x, y, width, height, strokeWidth float64, clr color.Color) {
	vector.StrokeRect(c.img, float32(x), float32(y), float32(width), float32(height), float32(strokeWidth), clr, false)
}

// EbitenEngine implements render.Engine with an Ebitengine window.
type EbitenEngine struct {
	canvas *Canvas
	queue  render.FrameQueue
	host   render.Host

	outsideWidth, outsideHeight int

	cursorX, cursorY int
	cursorKnown      bool
	focused          bool
	keys             []ebiten.Key
	events           []render.Event
}

// NewEngine creates an engine with a width×height canvas and sizes the
// window to hold it with a margin on each side.
func NewEngine(width, height int) *EbitenEngine {
	e := &EbitenEngine{
		outsideWidth:  width + 2*Margin,
		outsideHeight: height + 2*Margin,
		focused:       true,
	}
	if width > 0 && height > 0 {
		e.canvas = NewCanvas(width, height)
	}
	ebiten.SetWindowSize(e.outsideWidth, e.outsideHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return e
}

// Surface returns the canvas, or nil if it could not be created.
func (e *EbitenEngine) Surface() render.Surface {
	if e.canvas == nil {
		return nil
	}
	return e.canvas
}

// SurfaceOffset returns the canvas position inside the window.
func (e *EbitenEngine) SurfaceOffset() (float64, float64) {
	if e.canvas == nil {
		return 0, 0
	}
	return centeredOffset(e.outsideWidth, e.outsideHeight, e.canvas.width, e.canvas.height)
}

// Clock returns the frame clock, advanced once per tick.
func (e *EbitenEngine) Clock() render.FrameClock {
	return &e.queue
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// Run runs the ebiten game loop until the window is closed or Escape is
// pressed.
func (e *EbitenEngine) Run(host render.Host) error {
	e.host = host
	return ebiten.RunGame(&gameAdapter{engine: e})
}

// pollEvents converts this tick's input state into events, pointer events
// first.
func (e *EbitenEngine) pollEvents() []render.Event {
	e.events = e.events[:0]

	x, y := ebiten.CursorPosition()
	moved := !e.cursorKnown || x != e.cursorX || y != e.cursorY
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	e.events = appendPointerEvents(e.events, float64(x), float64(y), moved, released)
	e.cursorX, e.cursorY, e.cursorKnown = x, y, true

	focused := ebiten.IsFocused()
	e.events = appendFocusEvents(e.events, e.focused, focused)
	e.focused = focused

	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	for _, k := range e.keys {
		e.events = append(e.events, render.Event{Kind: render.EventKeyDown, Key: keyName(k)})
	}
	e.keys = inpututil.AppendJustReleasedKeys(e.keys[:0])
	for _, k := range e.keys {
		e.events = append(e.events, render.Event{Kind: render.EventKeyUp, Key: keyName(k)})
	}
	return e.events
}

// appendPointerEvents appends a move event if the cursor moved and a click
// event if the left button was released this tick.
func appendPointerEvents(events []render.Event, x, y float64, moved, released bool) []render.Event {
	if moved {
		events = append(events, render.Event{Kind: render.EventPointerMove, X: x, Y: y})
	}
	if released {
		events = append(events, render.Event{Kind: render.EventClick, X: x, Y: y})
	}
	return events
}

// appendFocusEvents appends a focus-lost event when the window stops being
// focused. Key releases are not reported while unfocused.
func appendFocusEvents(events []render.Event, wasFocused, focused bool) []render.Event {
	if wasFocused && !focused {
		events = append(events, render.Event{Kind: render.EventFocusLost})
	}
	return events
}

// centeredOffset returns the top-left corner of an inner rectangle centered
// in an outer one. Inner rectangles larger than the outer pin to the origin.
func centeredOffset(outerW, outerH, innerW, innerH int) (float64, float64) {
	x := (outerW - innerW) / 2
	y := (outerH - innerH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return float64(x), float64(y)
}

// keyName returns the key identifier for k.
func keyName(k ebiten.Key) string {
	switch k {
	case ebiten.KeyArrowUp:
		return "ArrowUp"
	case ebiten.KeyArrowDown:
		return "ArrowDown"
	case ebiten.KeyArrowLeft:
		return "ArrowLeft"
	case ebiten.KeyArrowRight:
		return "ArrowRight"
	default:
		return k.String()
	}
}

// gameAdapter adapts an EbitenEngine to the ebiten.Game interface.
type gameAdapter struct {
	engine *EbitenEngine
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, ev := range a.engine.pollEvents() {
		a.engine.host.HandleEvent(ev)
	}
	a.engine.queue.RunFrame()
	return nil
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)
	if a.engine.canvas == nil {
		return
	}
	ox, oy := a.engine.SurfaceOffset()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ox, oy)
	screen.DrawImage(a.engine.canvas.img, op)
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.engine.outsideWidth = outsideWidth
	a.engine.outsideHeight = outsideHeight
	return outsideWidth, outsideHeight
}
