package snake

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestMoveTo(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected core.Point
	}{
		{DirUp, core.Pt(400, 290)},
		{DirDown, core.Pt(400, 310)},
		{DirLeft, core.Pt(390, 300)},
		{DirRight, core.Pt(410, 300)},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			s := NewSnake(core.Pt(400, 300), 10, 16)
			s.Direction = tc.dir
			s.MoveTo()

			if s.Head != tc.expected {
				t.Errorf("head = %v, expected %v", s.Head, tc.expected)
			}
			if s.Body.Len() != 1 || s.Body.At(0) != core.Pt(400, 300) {
				t.Errorf("old head should become body[0], body = %v", s.Body.Slice())
			}
		})
	}
}

func TestHasEatenFoodTruncates(t *testing.T) {
	s := NewSnake(core.Pt(400, 300), 10, 16)
	s.Count = 2
	for i := 0; i < 4; i++ {
		s.MoveTo()
	}
	// body: 370, 380, 390, 400 (neck first)

	if s.HasEatenFood(core.Pt(0, 0)) {
		t.Fatal("HasEatenFood should be false away from food")
	}
	want := []core.Point{core.Pt(370, 300), core.Pt(380, 300)}
	if got := s.Body.Slice(); !slices.Equal(got, want) {
		t.Errorf("body = %v, expected %v (tail-most dropped)", got, want)
	}
	if s.Count != 2 {
		t.Errorf("count changed to %d", s.Count)
	}
}

func TestHasEatenFoodGrows(t *testing.T) {
	s := NewSnake(core.Pt(400, 300), 10, 16)
	s.MoveTo()
	s.MoveTo()

	if !s.HasEatenFood(core.Pt(380, 300)) {
		t.Fatal("HasEatenFood should be true when head is on food")
	}
	if s.Count != 1 {
		t.Errorf("count = %d, expected 1", s.Count)
	}
	if s.Body.Len() != 2 {
		t.Errorf("body should not be truncated on the eating tick, len = %d", s.Body.Len())
	}
	if s.Score() != 10 {
		t.Errorf("Score() = %d, expected 10", s.Score())
	}

	// Next non-eating tick settles the body at Count
	s.MoveTo()
	s.HasEatenFood(core.Pt(0, 0))
	if s.Body.Len() != 1 {
		t.Errorf("body len = %d, expected 1", s.Body.Len())
	}
}

func TestIsCollision(t *testing.T) {
	lo, hi := core.Pt(10, 20), core.Pt(790, 610)

	tests := []struct {
		name     string
		head     core.Point
		body     []core.Point
		expected bool
	}{
		{"inside", core.Pt(400, 300), nil, false},
		{"one cell from left wall", core.Pt(20, 300), nil, false},
		{"on left wall", core.Pt(10, 300), nil, true},
		{"past left wall", core.Pt(0, 300), nil, true},
		{"on right wall", core.Pt(790, 300), nil, true},
		{"one cell from right wall", core.Pt(780, 300), nil, false},
		{"on top wall", core.Pt(400, 20), nil, true},
		{"on bottom wall", core.Pt(400, 610), nil, true},
		{"one cell from bottom", core.Pt(400, 600), nil, false},
		{"on body", core.Pt(400, 300), []core.Point{core.Pt(410, 300), core.Pt(400, 300)}, true},
		{"next to body", core.Pt(400, 300), []core.Point{core.Pt(410, 300)}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(tc.head, 10, 16)
			for i := len(tc.body) - 1; i >= 0; i-- {
				s.Body.PushFront(tc.body[i])
			}
			before := s.Body.Slice()

			if got := s.IsCollision(lo, hi); got != tc.expected {
				t.Errorf("IsCollision() = %v, expected %v", got, tc.expected)
			}
			if !slices.Equal(s.Body.Slice(), before) {
				t.Error("IsCollision must not mutate the body")
			}
		})
	}
}

func TestHandleInputPriority(t *testing.T) {
	tests := []struct {
		name     string
		current  Direction
		held     []core.Action
		expected Direction
	}{
		{"no keys", DirLeft, nil, DirLeft},
		{"up wins over everything", DirLeft, []core.Action{core.ActionRight, core.ActionDown, core.ActionUp}, DirUp},
		{"down wins over left", DirLeft, []core.Action{core.ActionLeft, core.ActionDown}, DirDown},
		{"reversal ignored", DirLeft, []core.Action{core.ActionRight}, DirLeft},
		{"held reversal falls through", DirDown, []core.Action{core.ActionUp, core.ActionLeft}, DirLeft},
		{"same direction", DirUp, []core.Action{core.ActionUp}, DirUp},
		{"non-direction keys ignored", DirUp, []core.Action{core.ActionRestart}, DirUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(core.Pt(400, 300), 10, 16)
			s.Direction = tc.current
			s.HandleInput(keys(tc.held...))
			if s.Direction != tc.expected {
				t.Errorf("direction = %s, expected %s", s.Direction, tc.expected)
			}
		})
	}
}
