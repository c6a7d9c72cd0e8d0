package tui

import (
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvoronin/torsnake/internal/config"
	"github.com/nvoronin/torsnake/internal/core"
	"github.com/nvoronin/torsnake/internal/game"
)

var modelBase = time.Unix(2000, 0)

// testModel builds a model around a session with a controlled clock so frame
// messages can drive updates deterministically.
func testModel() Model {
	cfg := config.Default()
	session := game.New(game.Options{
		Width:            cfg.Grid.Width,
		Height:           cfg.Grid.Height,
		UpdatesPerSecond: cfg.Simulation.UpdatesPerSecond,
		Rand:             rand.New(rand.NewSource(7)),
		Now:              modelBase,
	})
	return Model{
		session: session,
		screen:  core.NewScreen(cfg.Grid.Width+2, cfg.Grid.Height+2),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		theme:   themeFromConfig(cfg.Theme),
		cfg:     cfg,
		seed:    7,
		lastLen: session.State().Len(),
	}
}

func TestFrameAdvancesSessionOnClock(t *testing.T) {
	m := testModel()
	start := m.session.State().Head

	// Half an interval in: nothing moves yet.
	next, _ := m.Update(FrameMsg{At: modelBase.Add(62 * time.Millisecond)})
	m = next.(Model)
	if got := m.session.State().Head; got != start {
		t.Errorf("head moved to %+v before the update interval", got)
	}

	next, cmd := m.Update(FrameMsg{At: modelBase.Add(125 * time.Millisecond)})
	m = next.(Model)
	want := game.Position{X: start.X + 1, Y: start.Y}
	if got := m.session.State().Head; got != want {
		t.Errorf("head = %+v after one interval, expected %+v", got, want)
	}
	if cmd == nil {
		t.Error("frame handling should schedule the next frame")
	}
}

func TestMovementKeysReachSession(t *testing.T) {
	m := testModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	next, _ = m.Update(FrameMsg{At: modelBase.Add(125 * time.Millisecond)})
	m = next.(Model)

	start := game.Position{X: 7, Y: 10}
	want := game.Position{X: start.X, Y: start.Y - 1}
	if got := m.session.State().Head; got != want {
		t.Errorf("head = %+v after pressing up, expected %+v", got, want)
	}
}

func TestQuitKeyQuits(t *testing.T) {
	m := testModel()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if !m.quitting {
		t.Error("quit key should mark the model as quitting")
	}
	if m.View() != "" {
		t.Error("quitting model should render an empty view")
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	m := testModel()
	before := m.session

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = next.(Model)

	if m.session != before {
		t.Error("restart should do nothing while the game is still running")
	}
}

func TestViewShowsBoard(t *testing.T) {
	m := testModel()
	out := m.View()

	if out == "" {
		t.Fatal("View returned an empty board")
	}
	// Head glyph and border must both be present.
	if !containsRune(out, headRune) {
		t.Errorf("view missing head glyph %q", headRune)
	}
	if !containsRune(out, '┌') {
		t.Error("view missing board border")
	}
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}
