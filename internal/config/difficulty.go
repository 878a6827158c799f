package config

import (
	"fmt"
	"strings"
	"time"
)

// SpeedPreset represents a named fall-speed setting.
type SpeedPreset string

const (
	SpeedEasy   SpeedPreset = "easy"
	SpeedNormal SpeedPreset = "normal"
	SpeedHard   SpeedPreset = "hard"
	SpeedFixed  SpeedPreset = "fixed"
)

// MinFallInterval is the shortest gravity period any preset produces.
const MinFallInterval = 50 * time.Millisecond

// SpeedPresets lists the presets in menu order.
func SpeedPresets() []SpeedPreset {
	return []SpeedPreset{SpeedEasy, SpeedNormal, SpeedHard, SpeedFixed}
}

// Valid reports whether p names a known preset.
func (p SpeedPreset) Valid() bool {
	switch p {
	case SpeedEasy, SpeedNormal, SpeedHard, SpeedFixed:
		return true
	}
	return false
}

// ParseSpeedPreset parses a preset name (case-insensitive).
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	p := SpeedPreset(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown speed preset %q (want easy, normal, hard or fixed)", s)
	}
	return p, nil
}

// multiplier scales the engine's suggested interval. Longer is slower.
func (p SpeedPreset) multiplier() float64 {
	switch p {
	case SpeedEasy:
		return 1.25
	case SpeedHard:
		return 0.75
	default:
		return 1.0
	}
}

// SpeedPolicy turns the engine's advisory fall interval into the period
// the driver actually uses.
type SpeedPolicy struct {
	preset SpeedPreset
	base   func(level int) time.Duration
}

// NewSpeedPolicy creates a policy for the preset. base is the engine's
// level-to-interval curve.
func NewSpeedPolicy(preset SpeedPreset, base func(level int) time.Duration) *SpeedPolicy {
	if !preset.Valid() {
		preset = SpeedNormal
	}
	return &SpeedPolicy{preset: preset, base: base}
}

// Preset returns the active preset.
func (s *SpeedPolicy) Preset() SpeedPreset {
	return s.preset
}

// IsFixed returns true if the preset ignores level progression.
func (s *SpeedPolicy) IsFixed() bool {
	return s.preset == SpeedFixed
}

// Interval returns the gravity period for the given level.
func (s *SpeedPolicy) Interval(level int) time.Duration {
	if s.IsFixed() {
		level = 1
	}
	d := time.Duration(float64(s.base(level)) * s.preset.multiplier())
	if d < MinFallInterval {
		return MinFallInterval
	}
	return d
}
