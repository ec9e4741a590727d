package game

import (
	"fmt"
	"log"
	"time"

	"chosenoffset.com/tilefield/internal/audio"
	"chosenoffset.com/tilefield/internal/config"
	"chosenoffset.com/tilefield/internal/palette"
	"chosenoffset.com/tilefield/internal/render"
)

// Manager owns a session: the engine, the game built on it and the optional
// audio player.
type Manager struct {
	Config *config.Config
	Engine render.Engine
	Game   *Game
	Sound  *audio.Player
}

// NewManager builds a game for cfg on the given engine. A failing speaker is
// logged and the session continues without sound.
func NewManager(cfg *config.Config, eng render.Engine, gen *palette.Generator) (*Manager, error) {
	g, err := New(eng, gen, cfg)
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}

	m := &Manager{
		Config: cfg,
		Engine: eng,
		Game:   g,
	}

	if cfg.Audio.Enabled {
		player := audio.NewPlayer(cfg.Audio.Frequency, time.Duration(cfg.Audio.DurationMs)*time.Millisecond)
		if err := player.Init(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		} else {
			m.Sound = player
			g.SetSound(player)
		}
	}

	return m, nil
}

// Run starts the game and blocks until the engine stops.
func (m *Manager) Run() error {
	if m.Sound != nil {
		defer m.Sound.Close()
	}

	m.Engine.SetWindowTitle(m.Config.Surface.Title)
	if err := m.Game.Start(); err != nil {
		return err
	}
	return m.Engine.Run(m.Game)
}
