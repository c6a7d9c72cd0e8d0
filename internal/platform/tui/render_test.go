package tui

import (
	"strings"
	"testing"

	"github.com/nvoronin/torsnake/internal/core"
	"github.com/nvoronin/torsnake/internal/game"
)

func testTheme() Theme {
	return Theme{
		Head:   core.ColorBrightRed,
		Body:   core.ColorOrange,
		Food:   core.ColorBrightBlue,
		Border: core.ColorGreen,
	}
}

func TestDrawBoardPlacesGlyphs(t *testing.T) {
	state := game.State{
		Head:   game.Position{X: 7, Y: 10},
		Body:   []game.Position{{X: 6, Y: 10}},
		Food:   game.Position{X: 20, Y: 5},
		Width:  30,
		Height: 20,
	}
	screen := core.NewScreen(state.Width+2, state.Height+2)

	drawBoard(screen, state, testTheme())

	if got := screen.GetCell(8, 11); got.Rune != headRune || got.Color != core.ColorBrightRed {
		t.Errorf("head cell = %+v, expected {%q bright_red}", got, headRune)
	}
	if got := screen.GetCell(7, 11); got.Rune != bodyRune || got.Color != core.ColorOrange {
		t.Errorf("body cell = %+v, expected {%q orange}", got, bodyRune)
	}
	if got := screen.GetCell(21, 6); got.Rune != foodRune || got.Color != core.ColorBrightBlue {
		t.Errorf("food cell = %+v, expected {%q bright_blue}", got, foodRune)
	}
	if got := screen.GetCell(0, 0); got.Rune != '┌' || got.Color != core.ColorGreen {
		t.Errorf("border corner = %+v, expected {┌ green}", got)
	}
}

func TestDrawBoardHeadCoversFood(t *testing.T) {
	state := game.State{
		Head:   game.Position{X: 5, Y: 5},
		Food:   game.Position{X: 5, Y: 5},
		Width:  30,
		Height: 20,
	}
	screen := core.NewScreen(state.Width+2, state.Height+2)

	drawBoard(screen, state, testTheme())

	if got := screen.Get(6, 6); got != headRune {
		t.Errorf("overlapping cell = %q, head should draw over food", got)
	}
}

func TestDrawBoardGameOverOverlay(t *testing.T) {
	state := game.State{
		Head:   game.Position{X: 7, Y: 10},
		Body:   []game.Position{{X: 6, Y: 10}, {X: 5, Y: 10}},
		Food:   game.Position{X: 20, Y: 5},
		Over:   true,
		Width:  30,
		Height: 20,
	}
	screen := core.NewScreen(state.Width+2, state.Height+2)

	drawBoard(screen, state, testTheme())

	out := screen.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("terminal state should show the GAME OVER banner")
	}
	if !strings.Contains(out, "length 3") {
		t.Errorf("banner should report length 3, got:\n%s", out)
	}
	if !strings.Contains(out, "r restart") {
		t.Error("banner should mention the restart key")
	}
}

func TestRenderScreenKeepsRunes(t *testing.T) {
	screen := core.NewScreen(5, 2)
	screen.DrawTextColor(0, 0, "abcde", core.ColorGreen)
	screen.DrawText(0, 1, "12345")

	out := RenderScreen(screen)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "abcde") {
		t.Errorf("line 0 = %q, expected to contain abcde", lines[0])
	}
	if lines[1] != "12345" {
		t.Errorf("line 1 = %q, expected plain 12345", lines[1])
	}
}
