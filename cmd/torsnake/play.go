package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nvoronin/torsnake/internal/config"
	"github.com/nvoronin/torsnake/internal/platform/tui"
)

var (
	flagConfig string
	flagWidth  int
	flagHeight int
	flagUPS    int
	flagDebug  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a game.

Controls:
  Arrows/WASD - Steer
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Examples:
  torsnake play
  torsnake play --ups 12
  torsnake play --config ./my-board.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in cells (0 = from config)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in cells (0 = from config)")
	playCmd.Flags().IntVar(&flagUPS, "ups", 0, "Snake moves per second (0 = from config)")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Write a debug log to ~/.torsnake/debug.log")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags override the config file.
	if flagWidth > 0 {
		cfg.Grid.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Grid.Height = flagHeight
	}
	if flagUPS > 0 {
		cfg.Simulation.UpdatesPerSecond = flagUPS
	}
	if flagFPS > 0 {
		cfg.Simulation.FrameRate = flagFPS
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The board needs its border plus one help line.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < cfg.Grid.Width+2 || h < cfg.Grid.Height+3 {
			fmt.Fprintf(os.Stderr, "Error: terminal %dx%d too small for a %dx%d board\n",
				w, h, cfg.Grid.Width, cfg.Grid.Height)
			os.Exit(1)
		}
	}

	var logger *log.Logger
	if flagDebug {
		logger, err = debugLogger()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open debug log: %v\n", err)
			// Continue without logging - game still works
		}
	}
	if logger != nil {
		logger.Info("starting session",
			"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
			"ups", cfg.Simulation.UpdatesPerSecond,
			"fps", cfg.Simulation.FrameRate,
			"seed", flagSeed)
	}

	model := tui.NewModel(cfg, flagSeed, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// debugLogger opens ~/.torsnake/debug.log and builds a structured logger on
// it. The TUI owns the terminal, so logs cannot go to stderr.
func debugLogger() (*log.Logger, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".torsnake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		Prefix:          "torsnake",
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	return logger, nil
}
