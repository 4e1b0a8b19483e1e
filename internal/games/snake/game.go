// Package snake implements the snake game: a grid snake that grows by eating
// food, dies on walls or itself, and speeds up as it eats.
//
// The package holds no I/O. Hosts inject a Clock, a Rand, an Input per frame
// and a Canvas to draw on, and call Game.Frame once per rendered frame.
package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// ID is the identifier used for score storage.
const ID = "snake"

// Clock reports monotonic time in seconds.
type Clock interface {
	Now() float64
}

// Phase is the state of the game's two-state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "playing"
}

// FrameResult describes what a call to Frame did.
type FrameResult struct {
	Ticked bool  // a game tick ran this frame
	Ended  bool  // this frame moved the game from Playing to GameOver
	Phase  Phase // phase after the frame
	Score  int   // displayed score after the frame
}

// Game is the snake state machine.
type Game struct {
	layout config.WindowConfig
	speeds *config.SpeedSchedule
	clock  Clock
	rng    Rand

	snake    *Snake
	food     core.Point
	lo, hi   core.Point // wall bounds
	lastTick float64    // clock time of the previous tick
	speed    float64    // seconds between ticks
	phase    Phase
	tick     uint64
}

// New creates a game in the Playing phase. cfg must be valid.
func New(cfg config.Config, clock Clock, rng Rand) *Game {
	g := &Game{
		layout: cfg.Window,
		speeds: config.NewSpeedSchedule(cfg.Speed),
		clock:  clock,
		rng:    rng,
	}
	g.lo, g.hi = cfg.Window.Bounds()
	g.lastTick = clock.Now()
	g.Reset()
	return g
}

// Reset restores the starting state: a fresh snake, new food, the initial
// speed and the Playing phase. The tick timer is left running.
func (g *Game) Reset() {
	g.snake = NewSnake(g.layout.Start(), g.layout.Square, g.layout.PlayableCells())
	g.food = GenFood(g.rng, g.lo, g.hi, g.layout.Square)
	g.speed = g.speeds.Initial()
	g.phase = PhasePlaying
	g.tick = 0
}

// Frame runs the per-frame logic. While playing it runs one tick once more
// than the current interval has passed since the previous one. After game
// over it waits for the restart action.
func (g *Game) Frame(in Input) FrameResult {
	res := FrameResult{}

	switch g.phase {
	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.Reset()
		}
	case PhasePlaying:
		now := g.clock.Now()
		if now-g.lastTick > g.speed {
			g.lastTick = now
			res.Ticked = true
			res.Ended = g.Tick(in)
		}
	}

	res.Phase = g.phase
	res.Score = g.snake.Score()
	return res
}

// Tick runs one game step regardless of the clock: read input, move, eat,
// check collision and rescale the speed. It reports whether the snake died.
// Calling Tick after game over does nothing.
func (g *Game) Tick(in Input) bool {
	if g.phase != PhasePlaying {
		return false
	}
	g.tick++

	g.snake.HandleInput(in)
	g.snake.MoveTo()
	if g.snake.HasEatenFood(g.food) {
		g.food = GenFood(g.rng, g.lo, g.hi, g.layout.Square)
	}

	died := g.snake.IsCollision(g.lo, g.hi)
	if died {
		g.phase = PhaseGameOver
	}
	g.speed = g.speeds.Rescale(g.snake.Count, g.speed)
	return died
}

// Snake returns the player entity.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the current food position.
func (g *Game) Food() core.Point {
	return g.food
}

// Speed returns the current tick interval in seconds.
func (g *Game) Speed() float64 {
	return g.speed
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// GameOver reports whether the snake has crashed.
func (g *Game) GameOver() bool {
	return g.phase == PhaseGameOver
}

// Score returns the displayed score.
func (g *Game) Score() int {
	return g.snake.Score()
}
