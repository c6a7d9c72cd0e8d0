package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nvoronin/torsnake/internal/config"
	"github.com/nvoronin/torsnake/internal/core"
	"github.com/nvoronin/torsnake/internal/game"
)

// Model is the Bubble Tea model driving one snake session.
type Model struct {
	session *game.Session
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	theme   Theme
	cfg     config.Config
	logger  *log.Logger

	seed     int64
	termW    int
	termH    int
	wasOver  bool
	lastLen  int
	quitting bool
}

// Theme holds the resolved board colors.
type Theme struct {
	Head   core.Color
	Body   core.Color
	Food   core.Color
	Border core.Color
}

// themeFromConfig resolves color names, falling back to the built-in palette
// for names Validate let through as empty.
func themeFromConfig(tc config.ThemeConfig) Theme {
	resolve := func(name string, fallback core.Color) core.Color {
		if c, ok := core.ColorFromName(name); ok {
			return c
		}
		return fallback
	}
	return Theme{
		Head:   resolve(tc.Head, core.ColorBrightRed),
		Body:   resolve(tc.Body, core.ColorOrange),
		Food:   resolve(tc.Food, core.ColorBrightBlue),
		Border: resolve(tc.Border, core.ColorGreen),
	}
}

// NewModel builds a model around a fresh session. seed selects the food
// sequence; pass 0 to derive one from the wall clock. logger may be nil.
func NewModel(cfg config.Config, seed int64, logger *log.Logger) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session := newSession(cfg, seed)

	return Model{
		session: session,
		screen:  core.NewScreen(cfg.Grid.Width+2, cfg.Grid.Height+2),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		theme:   themeFromConfig(cfg.Theme),
		cfg:     cfg,
		logger:  logger,
		seed:    seed,
		lastLen: session.State().Len(),
	}
}

func newSession(cfg config.Config, seed int64) *game.Session {
	return game.New(game.Options{
		Width:            cfg.Grid.Width,
		Height:           cfg.Grid.Height,
		UpdatesPerSecond: cfg.Simulation.UpdatesPerSecond,
		Rand:             rand.New(rand.NewSource(seed)),
		Now:              time.Now(),
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.cfg.Simulation.FrameRate)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Restart):
			if m.session.Over() {
				m.restart()
			}
			return m, nil
		default:
			m.session.HandleKey(msg.String())
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.termW = msg.Width
		m.termH = msg.Height
		return m, nil

	case FrameMsg:
		state := m.session.Tick(msg.At)
		m.observe(state)
		return m, frameCmd(m.cfg.Simulation.FrameRate)
	}

	return m, nil
}

// restart replaces the session, reseeding so each run gets a different food
// sequence.
func (m *Model) restart() {
	m.seed++
	m.session = newSession(m.cfg, m.seed)
	m.wasOver = false
	m.lastLen = m.session.State().Len()
	if m.logger != nil {
		m.logger.Info("session restarted", "seed", m.seed)
	}
}

// observe logs the two interesting transitions: growth and game over.
func (m *Model) observe(state game.State) {
	if m.logger == nil {
		m.wasOver = state.Over
		m.lastLen = state.Len()
		return
	}
	if n := state.Len(); n > m.lastLen {
		m.logger.Debug("food eaten", "len", n, "food", state.Food)
		m.lastLen = n
	}
	if state.Over && !m.wasOver {
		m.logger.Info("game over", "len", state.Len())
		m.wasOver = true
	}
}
