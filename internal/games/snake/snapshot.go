package snake

import (
	"fmt"
	"strings"
)

// Snapshot captures the observable game state for determinism testing and debugging.
type Snapshot struct {
	Tick     uint64
	Phase    Phase
	Score    int
	Count    int
	BodyLen  int
	HeadX    int
	HeadY    int
	Dir      Direction
	FoodX    int
	FoodY    int
	Interval float64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Phase:    g.phase,
		Score:    g.snake.Score(),
		Count:    g.snake.Count,
		BodyLen:  g.snake.Body.Len(),
		HeadX:    g.snake.Head.X,
		HeadY:    g.snake.Head.Y,
		Dir:      g.snake.Direction,
		FoodX:    g.food.X,
		FoodY:    g.food.Y,
		Interval: g.speed,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Phase: %s\n", s.Tick, s.Score, s.Phase)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Interval: %gs\n", s.BodyLen+1, s.Dir, s.Interval)
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", s.HeadX, s.HeadY, s.FoodX, s.FoodY)
	return b.String()
}
