// Package config provides the tunable settings for the tile field demo.
// Settings are read from an optional JSON file layered over the defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"chosenoffset.com/tilefield/internal/palette"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all settings for a session
type Config struct {
	// Drawing surface
	Surface SurfaceConfig `json:"surface"`

	// Tile field
	Field FieldConfig `json:"field"`

	// Player-controlled rectangle
	Actor ActorConfig `json:"actor"`

	// Terminal backend
	Terminal TerminalConfig `json:"terminal"`

	// Recolor sound
	Audio AudioConfig `json:"audio"`
}

// SurfaceConfig defines the drawing surface
type SurfaceConfig struct {
	Width  int    `json:"width"`  // Surface width in pixels (e.g., 500)
	Height int    `json:"height"` // Surface height in pixels (e.g., 500)
	Title  string `json:"title"`  // Window title
}

// FieldConfig defines how tiles are generated
type FieldConfig struct {
	TileCount int     `json:"tile_count"` // Number of tiles created at startup
	TileSize  float64 `json:"tile_size"`  // Edge length of each square tile
}

// ActorConfig defines the controllable rectangle and its physics
type ActorConfig struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Color    string  `json:"color"`    // "#rrggbb"
	Speed    float64 `json:"speed"`    // Velocity added per frame per held key
	Friction float64 `json:"friction"` // Per-frame damping, 0 < friction < 1
}

// TerminalConfig defines how the surface maps onto terminal cells
type TerminalConfig struct {
	CellWidth        float64 `json:"cell_width"`         // Surface units per column
	CellHeight       float64 `json:"cell_height"`        // Surface units per row
	KeyReleaseFrames int     `json:"key_release_frames"` // Frames without a repeat before a key counts as released
}

// AudioConfig defines the optional recolor blip
type AudioConfig struct {
	Enabled    bool    `json:"enabled"`
	Frequency  float64 `json:"frequency"`   // Tone frequency in Hz
	DurationMs int     `json:"duration_ms"` // Tone length
}

// DefaultConfig returns the settings of the original demo
func DefaultConfig() *Config {
	return &Config{
		Surface: SurfaceConfig{
			Width:  500,
			Height: 500,
			Title:  "Tile Field",
		},
		Field: FieldConfig{
			TileCount: 100,
			TileSize:  50,
		},
		Actor: ActorConfig{
			Width:    30,
			Height:   30,
			Color:    "#222222",
			Speed:    1,
			Friction: 0.9,
		},
		Terminal: TerminalConfig{
			CellWidth:        10,
			CellHeight:       25,
			KeyReleaseFrames: 30,
		},
		Audio: AudioConfig{
			Enabled:    false,
			Frequency:  880,
			DurationMs: 50,
		},
	}
}

// LoadConfig loads settings from a JSON file. A missing file yields the
// defaults; fields absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that the settings describe a playable session
func (c *Config) Validate() error {
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return fmt.Errorf("%w: surface size %dx%d", ErrInvalid, c.Surface.Width, c.Surface.Height)
	}
	if c.Field.TileCount < 0 {
		return fmt.Errorf("%w: tile_count %d", ErrInvalid, c.Field.TileCount)
	}
	if c.Field.TileSize <= 0 ||
		c.Field.TileSize > float64(c.Surface.Width) || c.Field.TileSize > float64(c.Surface.Height) {
		return fmt.Errorf("%w: tile_size %g does not fit %dx%d", ErrInvalid, c.Field.TileSize, c.Surface.Width, c.Surface.Height)
	}
	if c.Actor.Width <= 0 || c.Actor.Height <= 0 ||
		c.Actor.Width > float64(c.Surface.Width) || c.Actor.Height > float64(c.Surface.Height) {
		return fmt.Errorf("%w: actor size %gx%g", ErrInvalid, c.Actor.Width, c.Actor.Height)
	}
	if !palette.IsHexColor(c.Actor.Color) {
		return fmt.Errorf("%w: actor color %q", ErrInvalid, c.Actor.Color)
	}
	if c.Actor.Speed < 0 {
		return fmt.Errorf("%w: actor speed %g", ErrInvalid, c.Actor.Speed)
	}
	if c.Actor.Friction <= 0 || c.Actor.Friction >= 1 {
		return fmt.Errorf("%w: friction %g must be in (0, 1)", ErrInvalid, c.Actor.Friction)
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("%w: terminal cell %gx%g", ErrInvalid, c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	if c.Terminal.KeyReleaseFrames < 1 {
		return fmt.Errorf("%w: key_release_frames %d", ErrInvalid, c.Terminal.KeyReleaseFrames)
	}
	if c.Audio.Enabled && (c.Audio.Frequency <= 0 || c.Audio.DurationMs <= 0) {
		return fmt.Errorf("%w: audio tone %gHz for %dms", ErrInvalid, c.Audio.Frequency, c.Audio.DurationMs)
	}
	return nil
}
