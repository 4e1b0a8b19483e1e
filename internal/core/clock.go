package core

import "time"

// WallClock reports seconds elapsed since it was created.
type WallClock struct {
	start time.Time
}

// NewWallClock creates a clock starting at zero now.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns the elapsed time in seconds. It uses the monotonic reading of time.Time.
func (c *WallClock) Now() float64 {
	return time.Since(c.start).Seconds()
}
