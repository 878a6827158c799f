package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateQuit        GameStateType = "quit"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	Drops  uint64
	Score  int
	Lines  int
	Level  int
	Pieces int
	Active engine.Piece
	Next   engine.Shape
	Grid   engine.Grid
	State  GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.quit:
		state = StateQuit
	case g.eng.GameOver():
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	v := g.eng.View()
	return Snapshot{
		Tick:   g.tick,
		Drops:  g.drops,
		Score:  v.Score,
		Lines:  v.Lines,
		Level:  v.Level,
		Pieces: v.Pieces,
		Active: v.Active,
		Next:   v.Next.Shape,
		Grid:   v.Grid,
		State:  state,
	}
}
