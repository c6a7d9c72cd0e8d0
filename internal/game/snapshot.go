package game

// Snapshot captures the comparable session state for determinism checks:
// two sessions fed the same seed and inputs must produce equal snapshots.
type Snapshot struct {
	HeadX, HeadY int
	Len          int
	Dir          Direction
	FoodX, FoodY int
	Over         bool
}

// Snapshot returns the current snapshot.
func (s *Session) Snapshot() Snapshot {
	head := s.snake.Head()
	return Snapshot{
		HeadX: head.X,
		HeadY: head.Y,
		Len:   s.snake.Len(),
		Dir:   s.snake.Direction(),
		FoodX: s.food.X,
		FoodY: s.food.Y,
		Over:  s.over,
	}
}
