package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now float64
}

func (c *fakeClock) Now() float64 { return c.now }

// constRand always picks the same offset, clamped to the range.
type constRand struct {
	v int
}

func (r constRand) Intn(n int) int {
	return min(r.v, n-1)
}

// keys builds an input frame holding the given actions.
func keys(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// newTestGame creates a default-layout game whose food lands at (20, 30),
// away from the starting row.
func newTestGame() (*Game, *fakeClock) {
	clock := &fakeClock{}
	return New(config.Default(), clock, constRand{}), clock
}

// seqRand returns its values in order, clamped to the range, then repeats the last.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[min(r.i, len(r.vals)-1)]
	r.i++
	return min(v, n-1)
}
