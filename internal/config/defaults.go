package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: an 80x62 grid of 10px cells
// and the classic speed thresholds.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:     "Go Snake",
			Square:    10,
			CellsW:    80,
			CellsH:    62,
			MapCellsH: 60,
		},
		Speed: SpeedConfig{
			Initial: 0.15,
			Steps: []SpeedStep{
				{Above: 10, Interval: 0.1},
				{Above: 30, Interval: 0.075},
				{Above: 60, Interval: 0.05},
				{Above: 100, Interval: 0.03},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
