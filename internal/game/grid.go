// Package game implements the snake simulation core: a single organism on a
// wrapped toroidal grid, a fixed-rate update clock, and the session state
// machine that ties them together. It contains no TUI dependencies so the
// logic stays pure and testable; the platform layer renders whatever state
// the session exposes.
package game

// Position is a cell on the torus. Value type; equality is structural.
type Position struct {
	X, Y int
}

// Wrap maps v into [0, n) using true mathematical modulo. Go's % operator
// returns negative results for negative dividends, so stepping off the left
// or top edge needs the shift-and-remod form to reenter on the far side.
func Wrap(v, n int) int {
	return (v%n + n) % n
}

// Step returns the neighboring cell one move in d on a w×h torus.
func (p Position) Step(d Direction, w, h int) Position {
	switch d {
	case DirUp:
		return Position{X: p.X, Y: Wrap(p.Y-1, h)}
	case DirDown:
		return Position{X: p.X, Y: Wrap(p.Y+1, h)}
	case DirLeft:
		return Position{X: Wrap(p.X-1, w), Y: p.Y}
	case DirRight:
		return Position{X: Wrap(p.X+1, w), Y: p.Y}
	}
	return p
}
