package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Input reports which actions are held during the current poll.
// core.InputFrame satisfies it.
type Input interface {
	Has(a core.Action) bool
}

// Snake is the player entity. Body[0] is the cell the head left most recently.
type Snake struct {
	Head      core.Point
	Body      *Body
	Direction Direction
	Count     int // food eaten

	square int
}

// NewSnake creates a snake at start heading left with an empty body.
// capacity sizes the body buffer; pass the number of playable cells.
func NewSnake(start core.Point, square, capacity int) *Snake {
	return &Snake{
		Head:      start,
		Body:      NewBody(capacity),
		Direction: DirLeft,
		square:    square,
	}
}

// Score returns the displayed score: ten points per food.
func (s *Snake) Score() int {
	return s.Count * 10
}

// Len returns the number of cells occupied, head included.
func (s *Snake) Len() int {
	return s.Body.Len() + 1
}

// SetDirection turns the snake unless d points straight back into its neck.
// It reports whether the direction was accepted.
func (s *Snake) SetDirection(d Direction) bool {
	if d.IsOpposite(s.Direction) {
		return false
	}
	s.Direction = d
	return true
}

// HandleInput applies the first held direction key, in Up, Down, Left,
// Right priority, that is not a reversal. A held reversal key falls through
// to the next one.
func (s *Snake) HandleInput(in Input) {
	for _, d := range Directions {
		if in.Has(d.Action()) && s.SetDirection(d) {
			return
		}
	}
}

// MoveTo pushes the head onto the front of the body and advances it one
// square in the current direction. The body is trimmed by HasEatenFood.
func (s *Snake) MoveTo() {
	s.Body.PushFront(s.Head)
	s.Head = s.Head.Add(s.Direction.Step().Mul(s.square))
}

// HasEatenFood grows the snake when the head is on food and reports it.
// Otherwise the body is truncated back to Count segments.
func (s *Snake) HasEatenFood(food core.Point) bool {
	if s.Head == food {
		s.Count++
		return true
	}
	s.Body.Truncate(s.Count)
	return false
}

// IsCollision reports whether the head touches or passes a wall, or lies on
// the body. Walls are inclusive: head.X == lo.X is already a collision.
func (s *Snake) IsCollision(lo, hi core.Point) bool {
	if s.Head.X <= lo.X || s.Head.X >= hi.X {
		return true
	}
	if s.Head.Y <= lo.Y || s.Head.Y >= hi.Y {
		return true
	}
	return s.Body.Contains(s.Head)
}
