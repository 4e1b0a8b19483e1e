package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Rand is the uniform integer source used for food placement.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// GenFood picks a grid-aligned position strictly inside (lo, hi) on both
// axes, one cell away from every wall, with an independent uniform draw per
// axis. The snake body is not excluded: food may spawn underneath it.
func GenFood(rng Rand, lo, hi core.Point, square int) core.Point {
	return core.Pt(
		randCell(rng, lo.X, hi.X, square)*square,
		randCell(rng, lo.Y, hi.Y, square)*square,
	)
}

// randCell returns a cell index c with lo < c*square < hi.
func randCell(rng Rand, lo, hi, square int) int {
	first := lo/square + 1
	last := (hi+square-1)/square - 1
	if last < first {
		return first
	}
	return first + rng.Intn(last-first+1)
}
