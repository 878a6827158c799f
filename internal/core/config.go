package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second; input is drained once per frame
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the game status the platform needs to drive the loop.
type GameState struct {
	Score    int
	Lines    int
	Level    int
	GameOver bool
	Paused   bool
}

// StepResult is returned after each frame or gravity step.
type StepResult struct {
	State  GameState
	Events []Event
}

// EventKind classifies notable things that happened during a step.
type EventKind int

const (
	EventLocked EventKind = iota + 1
	EventLinesCleared
	EventLevelUp
	EventGameOver
	EventPaused
	EventResumed
)

// String returns a short name for logs.
func (k EventKind) String() string {
	switch k {
	case EventLocked:
		return "locked"
	case EventLinesCleared:
		return "lines_cleared"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	default:
		return "unknown"
	}
}

// Event is a single step notification. Fields not relevant to Kind are zero.
type Event struct {
	Kind   EventKind
	Detail string // e.g. the locked piece
	Count  int    // rows cleared
	Points int
	Level  int
}
