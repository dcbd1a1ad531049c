package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"chosenoffset.com/raycaster/internal/config"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/core/scene"
	"chosenoffset.com/raycaster/internal/mode"
)

// Manager builds the scene and caster for whichever mode is selected.
type Manager struct {
	Config *config.Config
	Level  *scene.LevelData // Replaces the mode layout when set

	seed int64
	rng  *rand.Rand
}

// NewManager creates a manager seeded from cfg.Seed, or from the clock when
// the seed is zero.
func NewManager(cfg *config.Config, level *scene.LevelData) *Manager {
	m := &Manager{Config: cfg, Level: level}
	m.Reseed(cfg.Seed)
	return m
}

// Reseed restarts the random layout generator.
func (m *Manager) Reseed(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m.seed = seed
	m.rng = rand.New(rand.NewSource(seed))
}

// Seed returns the seed currently in use.
func (m *Manager) Seed() int64 {
	return m.seed
}

// Build creates the setup for md, applying the configured ray overrides.
func (m *Manager) Build(md mode.Mode) (*mode.Setup, error) {
	override := func(rc *raycast.Config) { m.Config.ApplyTo(rc) }

	if m.Level != nil {
		s := m.Level.Build(float64(m.Config.ScreenWidth), float64(m.Config.ScreenHeight))
		setup, err := mode.BuildWithScene(md, s, override)
		if err != nil {
			return nil, fmt.Errorf("level %q: %w", m.Level.Name, err)
		}
		m.applyStyle(setup)
		return setup, nil
	}

	setup, err := mode.Build(md, m.Config.Bounds(), m.rng, override)
	if err != nil {
		return nil, err
	}
	m.applyStyle(setup)
	log.Printf("Built %s scene: %d obstacles, %d rays per frame (seed %d)",
		md, setup.Scene.Len(), setup.Caster.Samples(), m.seed)
	return setup, nil
}

func (m *Manager) applyStyle(setup *mode.Setup) {
	if m.Config.ObstaclesFirst {
		setup.Style.ObstaclesFirst = true
	}
}
