package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in input priority order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// IsOpposite checks if two directions are opposite.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

// Step returns the unit vector of the direction in grid cells.
// Y grows downwards.
func (d Direction) Step() core.Point {
	switch d {
	case DirUp:
		return core.Pt(0, -1)
	case DirDown:
		return core.Pt(0, 1)
	case DirLeft:
		return core.Pt(-1, 0)
	default:
		return core.Pt(1, 0)
	}
}

// Action returns the input action that steers towards d.
func (d Direction) Action() core.Action {
	switch d {
	case DirUp:
		return core.ActionUp
	case DirDown:
		return core.ActionDown
	case DirLeft:
		return core.ActionLeft
	default:
		return core.ActionRight
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
