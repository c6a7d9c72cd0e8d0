package game

// Rand is the random source used for food placement. *math/rand.Rand
// satisfies it; tests inject fixed sequences for deterministic placement.
type Rand interface {
	Intn(n int) int
}

// Spawner places food on a w×h grid.
type Spawner struct {
	rng  Rand
	w, h int
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng Rand, w, h int) *Spawner {
	return &Spawner{rng: rng, w: w, h: h}
}

// Position draws X uniformly from [0, w) and Y uniformly from [0, h),
// independently. The draw does not exclude cells currently occupied by the
// snake: an overlapping spawn is simply eaten the next time the head
// reaches that cell. This matches the historical behavior and is pinned by
// tests; do not add an exclusion scan here.
func (s *Spawner) Position() Position {
	return Position{X: s.rng.Intn(s.w), Y: s.rng.Intn(s.h)}
}
