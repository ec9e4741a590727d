// Package terminal implements the render interfaces on a tcell screen. The
// surface is rasterized into terminal cells inside a one-cell border, mouse
// and key events are translated to render events, and the frame clock is
// driven by a ticker.
package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/tilefield/internal/render"
)

// Options configures the terminal engine.
type Options struct {
	CellWidth        float64       // surface units per column
	CellHeight       float64       // surface units per row
	KeyReleaseFrames int           // frames without a repeat before a held key is released
	FrameDelay       time.Duration // time between frames
}

// DefaultOptions returns options suitable for a 500×500 surface on an 80×24
// terminal.
func DefaultOptions() Options {
	return Options{
		CellWidth:        10,
		CellHeight:       25,
		KeyReleaseFrames: 30,
		FrameDelay:       time.Second / 60,
	}
}

// heldKey tracks a key for which no key-up is reported by the terminal.
type heldKey struct {
	name string
	age  int
}

// Engine implements render.Engine on a tcell screen.
type Engine struct {
	screen tcell.Screen
	canvas *Canvas
	opts   Options
	queue  render.FrameQueue
	title  string

	// origin is the screen cell of the canvas' top-left corner.
	originX, originY int

	held        []heldKey
	buttonDown  bool
	lastX       int
	lastY       int
	cursorKnown bool
}

// NewEngine initializes screen and creates a width×height surface on it.
func NewEngine(screen tcell.Screen, width, height int, opts Options) (*Engine, error) {
	if opts.CellWidth <= 0 || opts.CellHeight <= 0 {
		return nil, fmt.Errorf("terminal cell %gx%g must be positive", opts.CellWidth, opts.CellHeight)
	}
	if opts.KeyReleaseFrames < 1 {
		opts.KeyReleaseFrames = 1
	}
	if opts.FrameDelay <= 0 {
		opts.FrameDelay = time.Second / 60
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	e := &Engine{
		screen:  screen,
		opts:    opts,
		originX: 1,
		originY: 1,
	}
	if width > 0 && height > 0 {
		e.canvas = NewCanvas(width, height, opts.CellWidth, opts.CellHeight)
	}
	return e, nil
}

// Surface returns the cell canvas, or nil if it could not be created.
func (e *Engine) Surface() render.Surface {
	if e.canvas == nil {
		return nil
	}
	return e.canvas
}

// SurfaceOffset returns the border offset in viewport units.
func (e *Engine) SurfaceOffset() (float64, float64) {
	return float64(e.originX) * e.opts.CellWidth, float64(e.originY) * e.opts.CellHeight
}

// Clock returns the frame clock.
func (e *Engine) Clock() render.FrameClock {
	return &e.queue
}

// SetWindowTitle sets the title shown in the top border.
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// Run processes terminal events and frames until Escape or Ctrl-C.
// The screen is finalized on return.
func (e *Engine) Run(host render.Host) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	defer e.screen.Fini()

	go func() {
		for {
			ev := e.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(e.opts.FrameDelay)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !e.handleEvent(host, ev) {
				return nil
			}
		case <-ticker.C:
			e.tick(host)
		}
	}
}

// handleEvent translates one terminal event. It returns false when the
// session should end.
func (e *Engine) handleEvent(host render.Host, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		e.press(host, keyName(ev))
	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := e.viewportPoint(col, row)
		if !e.cursorKnown || col != e.lastX || row != e.lastY {
			host.HandleEvent(render.Event{Kind: render.EventPointerMove, X: x, Y: y})
			e.lastX, e.lastY, e.cursorKnown = col, row, true
		}
		down := ev.Buttons()&tcell.Button1 != 0
		if e.buttonDown && !down {
			host.HandleEvent(render.Event{Kind: render.EventClick, X: x, Y: y})
		}
		e.buttonDown = down
	case *tcell.EventResize:
		e.screen.Sync()
	}
	return true
}

// press delivers a key-down the first time a key is seen and restarts its
// release countdown on every repeat.
func (e *Engine) press(host render.Host, name string) {
	if name == "" {
		return
	}
	for i := range e.held {
		if e.held[i].name == name {
			e.held[i].age = 0
			return
		}
	}
	e.held = append(e.held, heldKey{name: name})
	host.HandleEvent(render.Event{Kind: render.EventKeyDown, Key: name})
}

// tick releases stale keys, runs one frame and presents the canvas.
func (e *Engine) tick(host render.Host) {
	kept := e.held[:0]
	for _, k := range e.held {
		k.age++
		if k.age >= e.opts.KeyReleaseFrames {
			host.HandleEvent(render.Event{Kind: render.EventKeyUp, Key: k.name})
			continue
		}
		kept = append(kept, k)
	}
	e.held = kept

	e.queue.RunFrame()
	e.present()
}

// present draws the border, title and canvas and shows the screen.
func (e *Engine) present() {
	e.screen.Clear()
	if e.canvas != nil {
		cols, rows := e.canvas.Grid()
		e.drawBorder(cols+2, rows+2)
		e.canvas.Flush(e.screen, e.originX, e.originY)
	}
	e.screen.Show()
}

func (e *Engine) drawBorder(w, h int) {
	style := tcell.StyleDefault
	for x := 1; x < w-1; x++ {
		e.screen.SetContent(x, 0, tcell.RuneHLine, nil, style)
		e.screen.SetContent(x, h-1, tcell.RuneHLine, nil, style)
	}
	for y := 1; y < h-1; y++ {
		e.screen.SetContent(0, y, tcell.RuneVLine, nil, style)
		e.screen.SetContent(w-1, y, tcell.RuneVLine, nil, style)
	}
	e.screen.SetContent(0, 0, tcell.RuneULCorner, nil, style)
	e.screen.SetContent(w-1, 0, tcell.RuneURCorner, nil, style)
	e.screen.SetContent(0, h-1, tcell.RuneLLCorner, nil, style)
	e.screen.SetContent(w-1, h-1, tcell.RuneLRCorner, nil, style)

	for i, r := range []rune(e.title) {
		if 2+i >= w-2 {
			break
		}
		e.screen.SetContent(2+i, 0, r, nil, style)
	}
}

// viewportPoint returns the viewport coordinates of a cell's center.
func (e *Engine) viewportPoint(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * e.opts.CellWidth, (float64(row) + 0.5) * e.opts.CellHeight
}

// keyName returns the key identifier for a terminal key event.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "ArrowUp"
	case tcell.KeyDown:
		return "ArrowDown"
	case tcell.KeyLeft:
		return "ArrowLeft"
	case tcell.KeyRight:
		return "ArrowRight"
	case tcell.KeyRune:
		return string(ev.Rune())
	default:
		return ev.Name()
	}
}
