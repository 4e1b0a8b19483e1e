package config

import "sort"

// SpeedSchedule maps the number of food eaten to a tick interval in seconds.
type SpeedSchedule struct {
	initial float64
	steps   []SpeedStep // sorted by Above, ascending
}

// NewSpeedSchedule creates a schedule from the speed config.
// The config's step slice is not retained.
func NewSpeedSchedule(cfg SpeedConfig) *SpeedSchedule {
	steps := make([]SpeedStep, len(cfg.Steps))
	copy(steps, cfg.Steps)
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].Above < steps[j].Above
	})
	return &SpeedSchedule{
		initial: cfg.Initial,
		steps:   steps,
	}
}

// Initial returns the interval used before any threshold is passed.
func (s *SpeedSchedule) Initial() float64 {
	return s.initial
}

// Interval returns the tick interval for the given food count: the interval
// of the highest threshold strictly below count, or the initial interval.
func (s *SpeedSchedule) Interval(count int) float64 {
	for i := len(s.steps) - 1; i >= 0; i-- {
		if count > s.steps[i].Above {
			return s.steps[i].Interval
		}
	}
	return s.initial
}

// Rescale returns the interval to use after a tick. It never returns more
// than current, so the game only ever speeds up until it is restarted.
func (s *SpeedSchedule) Rescale(count int, current float64) float64 {
	return min(current, s.Interval(count))
}
