// Package tetris adapts the falling-block engine to the platform's game
// contract: frame input, gravity steps, and screen rendering.
package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Screen area required for the well, the side panel and their borders.
const (
	minScreenW = 42
	minScreenH = 22
)

// Game implements Tetris on top of engine.Engine.
type Game struct {
	eng   *engine.Engine
	theme config.ThemeConfig

	tick     uint64 // frames stepped
	drops    uint64 // gravity steps applied
	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
	quit     bool // ended by the player rather than by topping out
}

// New creates a game drawn with the given theme. Call Reset before use.
func New(theme config.ThemeConfig) *Game {
	return &Game{theme: theme}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Reset starts a new game. The seed fully determines the piece sequence.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.eng = engine.New(rand.New(rand.NewSource(cfg.Seed)))
	g.tick = 0
	g.drops = 0
	g.paused = false
	g.quit = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the drawing area without touching game state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// actionIntents maps platform actions onto engine intents.
var actionIntents = map[core.Action]engine.Intent{
	core.ActionMoveLeft:  engine.IntentMoveLeft,
	core.ActionMoveRight: engine.IntentMoveRight,
	core.ActionSoftDrop:  engine.IntentSoftDrop,
	core.ActionRotate:    engine.IntentRotate,
	core.ActionQuit:      engine.IntentQuit,
}

// Step applies one frame of input. Pause toggles first; while paused, too
// small, or over, movement input is dropped.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var events []core.Event

	if in.Has(core.ActionPause) && !g.eng.GameOver() {
		g.paused = !g.paused
		kind := core.EventResumed
		if g.paused {
			kind = core.EventPaused
		}
		events = append(events, core.Event{Kind: kind})
	}

	if g.paused || g.tooSmall || g.eng.GameOver() {
		return core.StepResult{State: g.State(), Events: events}
	}

	intents := make([]engine.Intent, 0, in.Len())
	for _, a := range in.Actions() {
		if it, ok := actionIntents[a]; ok {
			intents = append(intents, it)
		}
	}
	g.eng.ApplyAll(intents)

	if g.eng.GameOver() {
		g.quit = true
		events = append(events, g.gameOverEvent("quit"))
	}
	return core.StepResult{State: g.State(), Events: events}
}

// Gravity runs one engine tick. The platform calls it whenever the fall
// interval has elapsed.
func (g *Game) Gravity() core.StepResult {
	if g.paused || g.tooSmall || g.eng.GameOver() {
		return core.StepResult{State: g.State()}
	}
	g.drops++

	res := g.eng.Tick()
	var events []core.Event
	if res.Locked {
		events = append(events, core.Event{Kind: core.EventLocked, Detail: res.Piece.String()})
	}
	if res.Cleared > 0 {
		events = append(events, core.Event{
			Kind:   core.EventLinesCleared,
			Count:  res.Cleared,
			Points: res.Points,
			Level:  g.eng.Level(),
		})
	}
	if res.LevelUp {
		events = append(events, core.Event{Kind: core.EventLevelUp, Level: g.eng.Level()})
	}
	if res.GameOver {
		events = append(events, g.gameOverEvent("topped out"))
	}
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) gameOverEvent(reason string) core.Event {
	return core.Event{
		Kind:   core.EventGameOver,
		Detail: reason,
		Count:  g.eng.Lines(),
		Points: g.eng.Score(),
		Level:  g.eng.Level(),
	}
}

// FallInterval is the engine's suggested gravity period.
func (g *Game) FallInterval() time.Duration {
	return g.eng.FallInterval()
}

// Level returns the current level.
func (g *Game) Level() int {
	return g.eng.Level()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.eng.Score(),
		Lines:    g.eng.Lines(),
		Level:    g.eng.Level(),
		GameOver: g.eng.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}
