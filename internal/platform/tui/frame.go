// Package tui adapts the snake simulation to the terminal using Bubble Tea.
// It owns the frame heartbeat, key routing, and lipgloss rendering; all game
// rules live in internal/game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is the render heartbeat. Each frame polls the session clock, so
// the terminal redraws at the frame rate while the snake advances at the
// slower logical rate.
type FrameMsg struct {
	At time.Time
}

// frameCmd schedules the next frame at the given frames-per-second rate.
func frameCmd(fps int) tea.Cmd {
	if fps < 1 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return FrameMsg{At: t}
	})
}
