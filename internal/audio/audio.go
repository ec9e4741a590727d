// Package audio plays a short synthesized tone when a tile is recolored.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the output rate used for the speaker and generated tones.
const SampleRate = beep.SampleRate(44100)

// Player synthesizes and plays the recolor blip.
type Player struct {
	freq     float64
	duration time.Duration
	volume   float64
	ready    bool
}

// NewPlayer creates a player for a sine tone of the given frequency and
// length. Call Init before Blip produces sound.
func NewPlayer(freq float64, duration time.Duration) *Player {
	return &Player{freq: freq, duration: duration, volume: -1}
}

// Init opens the speaker. On failure the player stays silent.
func (p *Player) Init() error {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.ready = true
	return nil
}

// Tone builds a fresh streamer for one blip.
func (p *Player) Tone() (beep.Streamer, error) {
	sine, err := generators.SineTone(SampleRate, p.freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %gHz: %w", p.freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(SampleRate.N(p.duration), sine),
		Base:     2,
		Volume:   p.volume,
	}, nil
}

// Blip plays one tone without blocking. It does nothing if the speaker is
// not open.
func (p *Player) Blip() {
	if !p.ready {
		return
	}
	tone, err := p.Tone()
	if err != nil {
		return
	}
	speaker.Play(tone)
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}
