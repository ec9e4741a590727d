// Package game wires the tile field and the actor to a render engine. The
// Game owns all session state; the engine delivers input events to it and
// drives its frame loop.
package game

import (
	"fmt"
	"log"

	"chosenoffset.com/tilefield/internal/actor"
	"chosenoffset.com/tilefield/internal/config"
	"chosenoffset.com/tilefield/internal/field"
	"chosenoffset.com/tilefield/internal/palette"
	"chosenoffset.com/tilefield/internal/render"
)

// Game holds all session state.
type Game struct {
	Surface render.Surface
	Clock   render.FrameClock
	Field   *field.Field
	Actor   *actor.Actor

	engine    render.Engine
	tileCount int
	tileSize  float64
	sound     Sounder
	logger    *log.Logger

	// Debug
	FrameCount int
}

// New creates a game on the engine's surface. Tiles are not generated until
// Start is called.
func New(eng render.Engine, gen *palette.Generator, cfg *config.Config) (*Game, error) {
	surface := eng.Surface()
	if surface == nil {
		return nil, ErrNoSurface
	}
	w, h := surface.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("surface size %dx%d: %w", w, h, ErrNoSurface)
	}
	if gen == nil {
		gen = palette.NewGenerator(nil)
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	ac := cfg.Actor
	player := actor.New(
		(float64(w)-ac.Width)/2, (float64(h)-ac.Height)/2,
		ac.Width, ac.Height, ac.Color, ac.Speed, ac.Friction,
	)

	return &Game{
		Surface:   surface,
		Clock:     eng.Clock(),
		Field:     field.New(surface, gen),
		Actor:     player,
		engine:    eng,
		tileCount: cfg.Field.TileCount,
		tileSize:  cfg.Field.TileSize,
	}, nil
}

// SetSound sets the recolor feedback. Nil disables it.
func (g *Game) SetSound(s Sounder) {
	g.sound = s
}

// SetLogger enables per-event debug logging. Nil disables it.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
}

// Start generates the tiles and schedules the first frame.
func (g *Game) Start() error {
	if err := g.Field.Populate(g.tileCount, g.tileSize); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	g.debugf("populated %d tiles", g.Field.Len())
	g.Clock.RequestFrame(g.Frame)
	return nil
}

// HandleEvent implements render.Host.
func (g *Game) HandleEvent(ev render.Event) {
	switch ev.Kind {
	case render.EventClick:
		x, y := g.toSurface(ev.X, ev.Y)
		n := g.Field.HandleClick(x, y)
		if n > 0 && g.sound != nil {
			g.sound.Blip()
		}
		if g.logger != nil {
			if top := g.Field.TileAt(x, y); top != nil {
				g.debugf("click (%g, %g): %d recolored, top now %s", x, y, n, top.Color)
			}
		}
	case render.EventPointerMove:
		x, y := g.toSurface(ev.X, ev.Y)
		if g.Field.HandleHover(x, y) {
			g.debugf("hover changed at (%g, %g)", x, y)
		}
	case render.EventKeyDown:
		g.Actor.SetKey(ev.Key, true)
	case render.EventKeyUp:
		g.Actor.SetKey(ev.Key, false)
	case render.EventFocusLost:
		g.Actor.ReleaseAll()
	}
}

// toSurface converts viewport coordinates to surface-local coordinates.
func (g *Game) toSurface(x, y float64) (float64, float64) {
	ox, oy := g.engine.SurfaceOffset()
	return x - ox, y - oy
}

func (g *Game) debugf(format string, v ...interface{}) {
	if g.logger != nil {
		g.logger.Printf(format, v...)
	}
}
