package game

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reversing direction. Involutive:
// d.Opposite().Opposite() == d for all four values.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionFromKey maps a raw key code to a direction. Arrow keys and their
// WASD aliases are recognized; any other code returns ok=false and callers
// treat the input as a no-op.
func DirectionFromKey(code string) (Direction, bool) {
	switch code {
	case "up", "w":
		return DirUp, true
	case "down", "s":
		return DirDown, true
	case "left", "a":
		return DirLeft, true
	case "right", "d":
		return DirRight, true
	}
	return 0, false
}
