package config

import (
	_ "embed"
)

//go:embed defaults/torsnake.yaml
var defaultYAML []byte

// Default returns the built-in configuration: the classic 30x20 board at 8
// logical updates per second.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  30,
			Height: 20,
		},
		Simulation: SimulationConfig{
			UpdatesPerSecond: 8,
			FrameRate:        60,
		},
		Theme: ThemeConfig{
			Head:   "bright_red",
			Body:   "orange",
			Food:   "bright_blue",
			Border: "green",
		},
	}
}
