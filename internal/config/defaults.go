package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultConfig returns the built-in configuration. It matches the
// embedded defaults/tetris.yaml.
func DefaultConfig() Config {
	return Config{
		Timing: TimingConfig{
			TickRate: 30,
			Speed:    SpeedNormal,
		},
		Input: InputConfig{
			QueueSize: 32,
		},
		Keys: KeysConfig{
			MoveLeft:   []string{"a", "left"},
			MoveRight:  []string{"d", "right"},
			SoftDrop:   []string{"s", "down"},
			Rotate:     []string{"w", "up"},
			Quit:       []string{"esc"},
			Pause:      []string{"p"},
			Restart:    []string{"r"},
			Back:       []string{"b"},
			Screenshot: []string{"ctrl+s"},
		},
		Theme: ThemeConfig{
			Locked:  "██",
			Falling: "▓▓",
			Empty:   "  ",
			Border:  "gray",
			Pieces: map[string]string{
				"I": "cyan",
				"O": "yellow",
				"T": "magenta",
				"S": "green",
				"Z": "red",
				"J": "blue",
				"L": "orange",
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
