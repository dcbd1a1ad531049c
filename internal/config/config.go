// Package config provides the runtime settings for the ray caster.
// Settings are loaded from an optional JSON file and fall back to defaults.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/mode"
)

// Config holds all runtime settings
type Config struct {
	// Window
	ScreenWidth  int `json:"screen_width"`
	ScreenHeight int `json:"screen_height"`

	// Scene selection
	Mode  string `json:"mode"`  // box, sbox, line or bline
	Level string `json:"level"` // Optional level file replacing the mode's layout
	Seed  int64  `json:"seed"`  // 0 picks a seed from the clock

	// Ray overrides; zero keeps the mode preset
	Resolution  float64 `json:"resolution"`   // Degrees between rays
	MarchStep   float64 `json:"march_step"`   // Marching increment
	MaxDistance float64 `json:"max_distance"` // Marching cap

	// Drawing
	ShowFPS        bool `json:"show_fps"`
	ObstaclesFirst bool `json:"obstacles_first"` // Draw obstacles under the rays
}

// DefaultConfig returns a full HD window in box mode
func DefaultConfig() *Config {
	return &Config{
		ScreenWidth:  1920,
		ScreenHeight: 1080,
		Mode:         mode.Box.String(),
		ShowFPS:      true,
	}
}

// LoadConfig loads settings from a JSON file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks value ranges. Zero ray overrides are allowed.
func (c *Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size: %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if !(c.Resolution >= 0) {
		return fmt.Errorf("resolution out of range: %f", c.Resolution)
	}
	if c.Resolution > 0 {
		if err := raycast.CheckResolution(c.Resolution); err != nil {
			return err
		}
	}
	if !(c.MarchStep >= 0) {
		return fmt.Errorf("negative march step: %f", c.MarchStep)
	}
	if !(c.MaxDistance >= 0) || math.IsInf(c.MaxDistance, 0) {
		return fmt.Errorf("invalid max distance: %f", c.MaxDistance)
	}
	if c.MarchStep > 0 {
		maxDistance := c.MaxDistance
		if maxDistance == 0 {
			maxDistance = raycast.DefaultConfig().MaxDistance
		}
		if err := raycast.CheckMarch(c.MarchStep, maxDistance); err != nil {
			return err
		}
	}
	return nil
}

// StartMode returns the configured mode.
func (c *Config) StartMode() mode.Mode {
	return mode.Parse(c.Mode)
}

// Bounds returns the screen area as layout bounds.
func (c *Config) Bounds() mode.Bounds {
	return mode.Bounds{Width: float64(c.ScreenWidth), Height: float64(c.ScreenHeight)}
}

// ApplyTo copies the non-zero ray overrides onto a preset.
func (c *Config) ApplyTo(rc *raycast.Config) {
	if c.Resolution > 0 {
		rc.Resolution = c.Resolution
	}
	if c.MarchStep > 0 {
		rc.Step = c.MarchStep
	}
	if c.MaxDistance > 0 {
		rc.MaxDistance = c.MaxDistance
	}
}
