// Package palette generates random integers and random RGB colors encoded as
// lowercase "#rrggbb" strings, and decodes those strings back into colors for
// the render backends.
package palette

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Generator draws random values from a configurable random source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator backed by rng. A nil rng is replaced by a
// time-seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// NewSeededGenerator creates a Generator with a deterministic seed.
func NewSeededGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

// RandomInteger returns a uniformly distributed integer in [0, max].
// Negative max yields 0.
func (g *Generator) RandomInteger(max int) int {
	if max <= 0 {
		return 0
	}
	return g.rng.Intn(max + 1)
}

// RandomRGB returns three independent channel values in [0, 255].
func (g *Generator) RandomRGB() (r, gr, b uint8) {
	return uint8(g.RandomInteger(255)), uint8(g.RandomInteger(255)), uint8(g.RandomInteger(255))
}

// RandomHexColor returns a random color as "#rrggbb" with lowercase,
// zero-padded hex digits.
func (g *Generator) RandomHexColor() string {
	r, gr, b := g.RandomRGB()
	return HexFromRGB(r, gr, b)
}

// HexFromRGB encodes 8-bit channels as "#rrggbb".
func HexFromRGB(r, g, b uint8) string {
	c := colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
	return c.Hex()
}

// ParseHex decodes a "#rrggbb" string into an opaque color.
func ParseHex(s string) (color.Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return nil, fmt.Errorf("invalid hex color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustParseHex is like ParseHex but falls back to opaque black on malformed
// input. Colors produced by RandomHexColor always parse.
func MustParseHex(s string) color.Color {
	c, err := ParseHex(s)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return c
}

// IsHexColor reports whether s is a "#rrggbb" string with lowercase digits.
func IsHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

var defaultGenerator = NewGenerator(nil)

// RandomInteger returns a uniformly distributed integer in [0, max] using the
// package-level generator.
func RandomInteger(max int) int {
	return defaultGenerator.RandomInteger(max)
}

// RandomHexColor returns a random "#rrggbb" color using the package-level
// generator.
func RandomHexColor() string {
	return defaultGenerator.RandomHexColor()
}
