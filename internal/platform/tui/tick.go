// Package tui provides the Bubble Tea frontend for the snake game.
// It handles the terminal UI loop, input mapping, rendering and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Frame rate limits in frames per second.
const (
	defaultFrameRate = 60
	maxFrameRate     = 240
)

// TickMsg asks the model to run one game frame.
type TickMsg time.Time

// frameInterval converts a frame rate into the delay between frames.
// Non-positive rates use the default; rates are capped at maxFrameRate.
func frameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = defaultFrameRate
	}
	return time.Second / time.Duration(core.Clamp(rate, 1, maxFrameRate))
}

// tickCmd schedules the next frame.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(frameInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
