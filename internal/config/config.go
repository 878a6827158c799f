// Package config provides YAML-based game configuration loading and
// fall-speed policy for the tetris platform.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Config contains all configuration for the tetris game and its driver.
type Config struct {
	Timing  TimingConfig  `yaml:"timing"`
	Input   InputConfig   `yaml:"input"`
	Keys    KeysConfig    `yaml:"keys"`
	Theme   ThemeConfig   `yaml:"theme"`
	Logging LoggingConfig `yaml:"logging"`
}

// TimingConfig defines the frame loop and gravity speed.
type TimingConfig struct {
	TickRate int         `yaml:"tick_rate"` // Frames per second
	Speed    SpeedPreset `yaml:"speed"`
}

// InputConfig defines input buffering.
type InputConfig struct {
	QueueSize int `yaml:"queue_size"` // Pending actions held between frames
}

// KeysConfig lists the keys bound to each action, in Bubble Tea key
// notation ("left", "ctrl+s", "a").
type KeysConfig struct {
	MoveLeft   []string `yaml:"move_left"`
	MoveRight  []string `yaml:"move_right"`
	SoftDrop   []string `yaml:"soft_drop"`
	Rotate     []string `yaml:"rotate"`
	Quit       []string `yaml:"quit"`
	Pause      []string `yaml:"pause"`
	Restart    []string `yaml:"restart"`
	Back       []string `yaml:"back"`
	Screenshot []string `yaml:"screenshot"`
}

// ThemeConfig defines how the well is drawn. Glyphs are two columns wide
// so that cells look square.
type ThemeConfig struct {
	Locked  string            `yaml:"locked"`
	Falling string            `yaml:"falling"`
	Empty   string            `yaml:"empty"`
	Border  string            `yaml:"border"` // Color name
	Pieces  map[string]string `yaml:"pieces"` // Shape letter -> color name
}

// LoggingConfig defines the debug log.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error; empty disables
	File  string `yaml:"file"`  // Empty means ~/.tetris/tetris.log
}

// glyphWidth measures theme glyphs as a non-CJK terminal draws them,
// whatever the locale says.
var glyphWidth = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// ReservedKeys always exit the program and cannot be rebound.
var ReservedKeys = []string{"ctrl+c", "q"}

// bindings returns every key list with its YAML name, in a stable order.
func (k KeysConfig) bindings() []struct {
	name string
	keys []string
} {
	return []struct {
		name string
		keys []string
	}{
		{"move_left", k.MoveLeft},
		{"move_right", k.MoveRight},
		{"soft_drop", k.SoftDrop},
		{"rotate", k.Rotate},
		{"quit", k.Quit},
		{"pause", k.Pause},
		{"restart", k.Restart},
		{"back", k.Back},
		{"screenshot", k.Screenshot},
	}
}

// Validate reports every problem in the configuration at once.
func (c Config) Validate() error {
	var errs []error

	if c.Timing.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_rate must be positive, got %d", c.Timing.TickRate))
	}
	if !c.Timing.Speed.Valid() {
		errs = append(errs, fmt.Errorf("timing.speed: unknown preset %q", c.Timing.Speed))
	}
	if c.Input.QueueSize <= 0 {
		errs = append(errs, fmt.Errorf("input.queue_size must be positive, got %d", c.Input.QueueSize))
	}

	seen := make(map[string]string, len(ReservedKeys))
	for _, k := range ReservedKeys {
		seen[k] = "exit (reserved)"
	}
	for _, b := range c.Keys.bindings() {
		if len(b.keys) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s: no keys bound", b.name))
			continue
		}
		for _, k := range b.keys {
			if prev, dup := seen[k]; dup {
				errs = append(errs, fmt.Errorf("keys.%s: %q already bound to %s", b.name, k, prev))
				continue
			}
			seen[k] = b.name
		}
	}

	for name, glyph := range map[string]string{
		"locked":  c.Theme.Locked,
		"falling": c.Theme.Falling,
		"empty":   c.Theme.Empty,
	} {
		if w := glyphWidth.StringWidth(glyph); w != 2 {
			errs = append(errs, fmt.Errorf("theme.%s: glyph %q is %d columns wide, want 2", name, glyph, w))
		}
	}
	if c.Theme.Border != "" {
		if _, ok := core.ParseColor(c.Theme.Border); !ok {
			errs = append(errs, fmt.Errorf("theme.border: unknown color %q", c.Theme.Border))
		}
	}
	for letter, color := range c.Theme.Pieces {
		if _, ok := engine.ParseShape(letter); !ok {
			errs = append(errs, fmt.Errorf("theme.pieces: unknown shape %q", letter))
		}
		if _, ok := core.ParseColor(color); !ok {
			errs = append(errs, fmt.Errorf("theme.pieces.%s: unknown color %q", letter, color))
		}
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level: unknown level %q", c.Logging.Level))
	}

	return errors.Join(errs...)
}

// PieceColor returns the configured color for a shape, or the default color.
func (t ThemeConfig) PieceColor(s engine.Shape) core.Color {
	for letter, name := range t.Pieces {
		if !strings.EqualFold(letter, s.String()) {
			continue
		}
		if c, ok := core.ParseColor(name); ok {
			return c
		}
	}
	return core.ColorDefault
}

// BorderColor returns the configured border color.
func (t ThemeConfig) BorderColor() core.Color {
	c, _ := core.ParseColor(t.Border)
	return c
}
