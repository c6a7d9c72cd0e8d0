package game

import (
	"math/rand"
	"time"
)

// Defaults for a session when Options leaves a field zero.
const (
	DefaultWidth            = 30
	DefaultHeight           = 20
	DefaultUpdatesPerSecond = 8
)

// Options configures a new session.
type Options struct {
	Width            int
	Height           int
	UpdatesPerSecond int

	// Rand is the food placement source. Nil means a math/rand source
	// seeded from Now.
	Rand Rand

	// Now anchors the update clock and seeds the default Rand. Zero means
	// time.Now().
	Now time.Time
}

// State is the renderable view of a session that the drawing collaborator
// reads each frame.
type State struct {
	Head   Position
	Body   []Position // nearest-to-head first
	Food   Position
	Over   bool
	Width  int
	Height int
}

// Len returns the snake length including the head.
func (st State) Len() int {
	return 1 + len(st.Body)
}

// Session owns one game: the snake, the food, the update clock and the
// terminal game-over flag. All mutation happens on the caller's goroutine;
// the render loop is expected to be the single owner.
type Session struct {
	w, h    int
	snake   *Snake
	spawner *Spawner
	food    Position
	clock   *Clock
	over    bool
}

// New builds a session with the snake a quarter of the way across and
// halfway down the grid, moving Right, and food at a random cell.
func New(opts Options) *Session {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.UpdatesPerSecond <= 0 {
		opts.UpdatesPerSecond = DefaultUpdatesPerSecond
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(opts.Now.UnixNano()))
	}

	spawner := NewSpawner(rng, opts.Width, opts.Height)
	s := &Session{
		w:       opts.Width,
		h:       opts.Height,
		snake:   NewSnake(Position{X: opts.Width / 4, Y: opts.Height / 2}),
		spawner: spawner,
		clock:   NewClock(opts.UpdatesPerSecond, opts.Now),
	}
	s.food = spawner.Position()
	return s
}

// Tick runs at most one logical update if the clock is due and returns the
// resulting state. A finished session never mutates again; it keeps
// answering with its final state so the last frame can stay on screen.
func (s *Session) Tick(now time.Time) State {
	if s.over {
		return s.State()
	}

	if s.clock.Due(now) {
		s.snake.Update(s.food, s.w, s.h)
		switch s.snake.Ate() {
		case AteFood:
			s.food = s.spawner.Position()
		case AteSelf:
			s.over = true
		}
	}

	return s.State()
}

// HandleKey feeds a raw key code from the input collaborator. Codes that do
// not name a direction are ignored.
func (s *Session) HandleKey(code string) {
	if d, ok := DirectionFromKey(code); ok {
		s.HandleDirection(d)
	}
}

// HandleDirection applies the guarded direction-change contract: the
// request lands immediately unless it reverses the direction of the last
// completed update.
func (s *Session) HandleDirection(d Direction) {
	if s.over {
		return
	}
	s.snake.SetDirection(d)
}

// Over reports whether the session has reached its terminal state.
func (s *Session) Over() bool {
	return s.over
}

// Size returns the grid dimensions.
func (s *Session) Size() (w, h int) {
	return s.w, s.h
}

// State returns the current renderable state.
func (s *Session) State() State {
	return State{
		Head:   s.snake.Head(),
		Body:   s.snake.Body(),
		Food:   s.food,
		Over:   s.over,
		Width:  s.w,
		Height: s.h,
	}
}
