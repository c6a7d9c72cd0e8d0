package game

// Outcome records what the snake ate during its most recent update.
type Outcome int

const (
	AteNothing Outcome = iota
	AteFood
	AteSelf
)

func (o Outcome) String() string {
	switch o {
	case AteNothing:
		return "nothing"
	case AteFood:
		return "food"
	case AteSelf:
		return "self"
	default:
		return "unknown"
	}
}

// Segment is one cell of the snake's body. A plain value over a Position;
// it exists so the body reads as a sequence of body parts rather than bare
// coordinates.
type Segment struct {
	Pos Position
}

// Snake holds the organism state. The body slice is ordered front to back:
// body[0] is the segment nearest the head. Moving prepends the old head and
// drops the tail, so the slice serves as both a stack (growth) and a queue
// (steady translation).
type Snake struct {
	head Segment
	body []Segment
	dir  Direction

	// lastMoveDir is the direction consumed by the most recent Update, as
	// opposed to the latest requested direction. The reversal guard checks
	// against this so a burst of key presses inside one tick window cannot
	// turn the snake back into its own neck.
	lastMoveDir Direction

	ate Outcome
}

// NewSnake places a snake of total length two: the head at pos and one body
// segment directly to its left, moving Right.
func NewSnake(pos Position) *Snake {
	return &Snake{
		head:        Segment{Pos: pos},
		body:        []Segment{{Pos: Position{X: pos.X - 1, Y: pos.Y}}},
		dir:         DirRight,
		lastMoveDir: DirRight,
	}
}

// Head returns the head cell.
func (s *Snake) Head() Position {
	return s.head.Pos
}

// Body returns a copy of the body positions, nearest-to-head first.
func (s *Snake) Body() []Position {
	out := make([]Position, len(s.body))
	for i, seg := range s.body {
		out[i] = seg.Pos
	}
	return out
}

// Len returns the total length including the head.
func (s *Snake) Len() int {
	return 1 + len(s.body)
}

// Direction returns the direction the next update will use.
func (s *Snake) Direction() Direction {
	return s.dir
}

// Ate reports the outcome of the most recent update.
func (s *Snake) Ate() Outcome {
	return s.ate
}

// SetDirection applies a requested direction change. The change takes
// effect immediately unless it reverses the direction used by the last
// completed update. Several requests may land within one tick window; each
// is validated against the committed direction, not against the previous
// request, and the last accepted one wins.
func (s *Snake) SetDirection(d Direction) {
	if d.Opposite() == s.lastMoveDir {
		return
	}
	s.dir = d
}

// Update advances the snake one cell on a w×h torus and records what it
// ate. Order matters: the old head joins the body before any collision
// check, self-collision is tested before the food check, and the tail is
// removed only on a plain move. On an eat the tail stays put, growing the
// body by one; that holds on the self-collision tick too, which is harmless
// since the session ends the game there.
func (s *Snake) Update(food Position, w, h int) {
	newHead := Segment{Pos: s.head.Pos.Step(s.dir, w, h)}
	s.body = append([]Segment{s.head}, s.body...)
	s.head = newHead

	switch {
	case s.eatsSelf():
		s.ate = AteSelf
	case s.head.Pos == food:
		s.ate = AteFood
	default:
		s.ate = AteNothing
	}

	if s.ate == AteNothing {
		s.body = s.body[:len(s.body)-1]
	}

	s.lastMoveDir = s.dir
}

func (s *Snake) eatsSelf() bool {
	for _, seg := range s.body {
		if s.head.Pos == seg.Pos {
			return true
		}
	}
	return false
}
