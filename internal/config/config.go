// Package config provides YAML-based configuration loading for the snake
// arcade: window layout and the speed schedule.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config contains all configuration for the snake game.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Speed  SpeedConfig  `yaml:"speed"`
}

// WindowConfig describes the grid. All game coordinates are pixels and
// always a multiple of Square.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Square    int    `yaml:"square"`
	CellsW    int    `yaml:"cells_w"`
	CellsH    int    `yaml:"cells_h"`
	MapCellsH int    `yaml:"map_cells_h"`
}

// SpeedConfig defines the tick interval schedule.
type SpeedConfig struct {
	Initial float64     `yaml:"initial"`
	Steps   []SpeedStep `yaml:"steps"`
}

// SpeedStep applies Interval once the food count is strictly above Above.
type SpeedStep struct {
	Above    int     `yaml:"above"`
	Interval float64 `yaml:"interval"`
}

// Width returns the window width in pixels.
func (w WindowConfig) Width() int { return w.CellsW * w.Square }

// Height returns the window height in pixels.
func (w WindowConfig) Height() int { return w.CellsH * w.Square }

// MapWidth returns the map width in pixels. The map spans the whole window width.
func (w WindowConfig) MapWidth() int { return w.CellsW * w.Square }

// MapHeight returns the map height in pixels.
func (w WindowConfig) MapHeight() int { return w.MapCellsH * w.Square }

// Bounds returns the exclusive wall coordinates: a head at or beyond either
// point on any axis has hit a wall.
func (w WindowConfig) Bounds() (lo, hi core.Point) {
	lo = core.Pt(w.Square, w.Height()-w.MapHeight())
	hi = core.Pt(w.MapWidth()-w.Square, w.Height()-w.Square)
	return lo, hi
}

// Field returns the drawn play-field rectangle in pixels.
func (w WindowConfig) Field() core.Rect {
	return core.NewRect(
		w.Square,
		w.Height()-w.MapHeight()+w.Square,
		w.MapWidth()-2*w.Square,
		w.MapHeight()-2*w.Square,
	)
}

// Start returns the initial head position: the map centre snapped to the grid.
func (w WindowConfig) Start() core.Point {
	x := w.MapWidth() / 2 / w.Square * w.Square
	y := w.MapHeight() / 2 / w.Square * w.Square
	return core.Pt(x, y)
}

// PlayableCells returns the number of cells a head may occupy without
// colliding with a wall. It bounds the length of the snake.
func (w WindowConfig) PlayableCells() int {
	lo, hi := w.Bounds()
	cols := (hi.X-lo.X)/w.Square - 1
	rows := (hi.Y-lo.Y)/w.Square - 1
	if cols <= 0 || rows <= 0 {
		return 0
	}
	return cols * rows
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	w := c.Window
	if w.Square <= 0 {
		return fmt.Errorf("%w: window.square must be positive, got %d", ErrInvalid, w.Square)
	}
	if w.MapCellsH > w.CellsH {
		return fmt.Errorf("%w: window.map_cells_h (%d) exceeds window.cells_h (%d)", ErrInvalid, w.MapCellsH, w.CellsH)
	}
	lo, hi := w.Bounds()
	if (hi.X-lo.X)/w.Square < 4 || (hi.Y-lo.Y)/w.Square < 4 {
		return fmt.Errorf("%w: play-field must hold at least 3x3 cells, got %dx%d",
			ErrInvalid, (hi.X-lo.X)/w.Square-1, (hi.Y-lo.Y)/w.Square-1)
	}
	start := w.Start()
	if start.X <= lo.X || start.X >= hi.X || start.Y <= lo.Y || start.Y >= hi.Y {
		return fmt.Errorf("%w: start position (%d, %d) is not inside the play-field", ErrInvalid, start.X, start.Y)
	}
	return c.Speed.Validate()
}

// Validate checks that every interval is positive and that intervals never
// grow as thresholds rise.
func (s SpeedConfig) Validate() error {
	if s.Initial <= 0 {
		return fmt.Errorf("%w: speed.initial must be positive, got %g", ErrInvalid, s.Initial)
	}
	sched := NewSpeedSchedule(s)
	prev := s.Initial
	for _, step := range sched.steps {
		if step.Interval <= 0 {
			return fmt.Errorf("%w: speed step above %d has non-positive interval %g", ErrInvalid, step.Above, step.Interval)
		}
		if step.Interval > prev {
			return fmt.Errorf("%w: speed step above %d slows the game down (%g > %g)", ErrInvalid, step.Above, step.Interval, prev)
		}
		prev = step.Interval
	}
	return nil
}
