package game

import "testing"

func TestWrapRange(t *testing.T) {
	values := []int{-1000000, -31, -30, -29, -1, 0, 1, 15, 29, 30, 31, 1000000}
	sizes := []int{1, 2, 20, 30}

	for _, n := range sizes {
		for _, v := range values {
			got := Wrap(v, n)
			if got < 0 || got >= n {
				t.Errorf("Wrap(%d, %d) = %d, out of [0, %d)", v, n, got, n)
			}
		}
	}
}

func TestWrapIdempotent(t *testing.T) {
	for _, v := range []int{-61, -30, -1, 0, 29, 30, 59, 123456} {
		once := Wrap(v, 30)
		twice := Wrap(once, 30)
		if once != twice {
			t.Errorf("Wrap(Wrap(%d, 30), 30) = %d, expected %d", v, twice, once)
		}
	}
}

func TestWrapNegatives(t *testing.T) {
	tests := []struct {
		v, n, expected int
	}{
		{-1, 30, 29},
		{-30, 30, 0},
		{-31, 30, 29},
		{-1, 20, 19},
		{30, 30, 0},
		{31, 30, 1},
	}

	for _, tc := range tests {
		if got := Wrap(tc.v, tc.n); got != tc.expected {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.v, tc.n, got, tc.expected)
		}
	}
}

func TestStepWrapsEdges(t *testing.T) {
	const w, h = 30, 20

	tests := []struct {
		name     string
		from     Position
		dir      Direction
		expected Position
	}{
		{"right edge", Position{29, 10}, DirRight, Position{0, 10}},
		{"left edge", Position{0, 10}, DirLeft, Position{29, 10}},
		{"top edge", Position{5, 0}, DirUp, Position{5, 19}},
		{"bottom edge", Position{5, 19}, DirDown, Position{5, 0}},
		{"interior right", Position{7, 10}, DirRight, Position{8, 10}},
		{"interior up", Position{7, 10}, DirUp, Position{7, 9}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.Step(tc.dir, w, h); got != tc.expected {
				t.Errorf("Step(%v) from %v = %v, expected %v", tc.dir, tc.from, got, tc.expected)
			}
		})
	}
}
