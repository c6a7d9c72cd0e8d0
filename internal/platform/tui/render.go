package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nvoronin/torsnake/internal/core"
	"github.com/nvoronin/torsnake/internal/game"
)

// Board glyphs.
const (
	headRune = 'O'
	bodyRune = 'o'
	foodRune = '*'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	boardW := m.cfg.Grid.Width + 2
	boardH := m.cfg.Grid.Height + 2
	if m.termW > 0 && (m.termW < boardW || m.termH < boardH+1) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d.\nPress q to quit.",
			boardW, boardH+1, m.termW, m.termH)
	}

	drawBoard(m.screen, m.session.State(), m.theme)
	board := RenderScreen(m.screen)

	var sb strings.Builder
	sb.WriteString(board)
	sb.WriteRune('\n')
	sb.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return sb.String()
}

// drawBoard renders one frame of state into the screen buffer. The playfield
// sits inside a one-cell border, so grid cell (x, y) lands at (x+1, y+1).
func drawBoard(screen *core.Screen, state game.State, theme Theme) {
	screen.Clear()
	screen.DrawBox(0, 0, state.Width+2, state.Height+2, theme.Border)

	for _, p := range state.Body {
		screen.SetCell(p.X+1, p.Y+1, bodyRune, theme.Body)
	}
	screen.SetCell(state.Food.X+1, state.Food.Y+1, foodRune, theme.Food)
	screen.SetCell(state.Head.X+1, state.Head.Y+1, headRune, theme.Head)

	if state.Over {
		drawGameOver(screen, state)
	}
}

// drawGameOver overlays the terminal-state banner in the middle of the board.
func drawGameOver(screen *core.Screen, state game.State) {
	lines := []string{
		" GAME OVER ",
		fmt.Sprintf(" length %-3d ", state.Len()),
		" r restart ",
	}
	boxW := len(lines[0]) + 2
	boxH := len(lines) + 2
	x := (screen.Width() - boxW) / 2
	y := (screen.Height() - boxH) / 2

	for j := y; j < y+boxH; j++ {
		for i := x; i < x+boxW; i++ {
			screen.SetCell(i, j, ' ', core.ColorDefault)
		}
	}
	screen.DrawBox(x, y, boxW, boxH, core.ColorBrightWhite)
	for i, line := range lines {
		screen.DrawTextColor(x+1, y+1+i, line, core.ColorBrightWhite)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
