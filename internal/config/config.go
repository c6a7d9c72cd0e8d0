// Package config provides YAML-based configuration loading for torsnake:
// grid dimensions, simulation rates, and the terminal color theme.
package config

import (
	"fmt"

	"github.com/nvoronin/torsnake/internal/core"
)

// Config is the full startup configuration.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Simulation SimulationConfig `yaml:"simulation"`
	Theme      ThemeConfig      `yaml:"theme"`
}

// GridConfig defines the torus dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SimulationConfig defines the two independent rates: how often the game
// logic advances and how often the terminal redraws.
type SimulationConfig struct {
	UpdatesPerSecond int `yaml:"updates_per_second"`
	FrameRate        int `yaml:"frame_rate"`
}

// ThemeConfig names the colors for the board elements. Names resolve via
// core.ColorFromName.
type ThemeConfig struct {
	Head   string `yaml:"head"`
	Body   string `yaml:"body"`
	Food   string `yaml:"food"`
	Border string `yaml:"border"`
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Grid.Width < 4 || c.Grid.Height < 4 {
		return fmt.Errorf("config: grid %dx%d too small, need at least 4x4", c.Grid.Width, c.Grid.Height)
	}
	if c.Simulation.UpdatesPerSecond < 1 {
		return fmt.Errorf("config: updates_per_second must be positive, got %d", c.Simulation.UpdatesPerSecond)
	}
	if c.Simulation.FrameRate < c.Simulation.UpdatesPerSecond {
		return fmt.Errorf("config: frame_rate %d below updates_per_second %d; frames gate logical updates",
			c.Simulation.FrameRate, c.Simulation.UpdatesPerSecond)
	}
	for field, name := range map[string]string{
		"head":   c.Theme.Head,
		"body":   c.Theme.Body,
		"food":   c.Theme.Food,
		"border": c.Theme.Border,
	} {
		if name == "" {
			continue // empty falls back to the default theme color
		}
		if _, ok := core.ColorFromName(name); !ok {
			return fmt.Errorf("config: unknown theme color %q for %s", name, field)
		}
	}
	return nil
}
