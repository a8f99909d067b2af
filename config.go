package octasphere

import (
	"errors"
	"fmt"
)

// ManyColors keeps the color of the octahedron face each triangle descends from.
const ManyColors = -1

var (
	ErrInvalidScale = errors.New("scale must be positive")
	ErrInvalidColor = errors.New("unknown color index")
	ErrInvalidDepth = errors.New("recursion depth must not be negative")
)

// Config is a struct that holds all configuration options for the sphere generation.
type Config struct {
	Scale          float64 // Uniform scale applied to the unit sphere
	RecursionDepth int     // Number of subdivision steps
	Color          int     // Color index of all triangles, or ManyColors
	TextureURL     string  // Texture handed through to the renderer
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Scale:          250,
		RecursionDepth: 3,
		Color:          9,
		TextureURL:     "",
	}
}

// Validate rejects options the generator cannot honor.
func (cfg *Config) Validate() error {
	if cfg.RecursionDepth < 0 {
		return fmt.Errorf("%d: %w", cfg.RecursionDepth, ErrInvalidDepth)
	}
	if !(cfg.Scale > 0) {
		return fmt.Errorf("%v: %w", cfg.Scale, ErrInvalidScale)
	}
	if cfg.Color != ManyColors && (cfg.Color < 0 || cfg.Color >= NumColors) {
		return fmt.Errorf("%d: %w", cfg.Color, ErrInvalidColor)
	}
	return nil
}
