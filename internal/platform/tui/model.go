package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/logging"
)

// footerHeight is the number of rows reserved below the game screen.
const footerHeight = 1

// Options configures a game session.
type Options struct {
	Runtime core.RuntimeConfig
	Config  config.Config
	Logger  *log.Logger // nil disables logging
}

// Outcome reports how a game session ended.
type Outcome struct {
	State      core.GameState
	BackToMenu bool // Player asked for the title screen rather than exiting
}

// Model is the Bubble Tea model for running a game.
//
// Every frame it drains the input queue into one InputFrame, steps the
// game with it, then advances gravity once the fall interval has elapsed.
type Model struct {
	game      *tetris.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	queue     *core.InputQueue
	speed     *config.SpeedPolicy
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	gameState core.GameState

	lastFrame time.Time
	sinceFall time.Duration

	shotDir    string
	lastShot   string
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for a tetris session.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = opts.Config.Timing.TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	game := tetris.New(opts.Config.Theme)
	game.Reset(cfg)

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerHeight),
		config:  cfg,
		queue:   core.NewInputQueue(opts.Config.Input.QueueSize),
		speed:   config.NewSpeedPolicy(opts.Config.Timing.Speed, engine.FallInterval),
		keys:    NewKeyMap(opts.Config.Keys),
		help:    help.New(),
		logger:  logger,
		shotDir: screenshotDir(),
	}
	m.help.Width = cfg.ScreenW
	m.gameState = game.State()
	m.game.Resize(cfg.ScreenW, cfg.ScreenH-footerHeight)
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started",
		"seed", m.config.Seed,
		"fps", m.config.TickRate,
		"speed", m.speed.Preset(),
	)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Game actions are queued and only
// reach the game on the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isExit := m.keys.MapKey(msg)
	if isExit {
		m.quitting = true
		return m, tea.Quit
	}
	if m.keys.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	if m.gameState.GameOver {
		switch action {
		case core.ActionRestart:
			m.restart()
			return m, nil
		case core.ActionBack, core.ActionQuit:
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	}

	if !m.queue.Push(action) && action != core.ActionNone {
		m.logger.Debug("input dropped, queue full", "action", action, "cap", m.queue.Cap())
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps its state;
// a too-small window pauses it until it grows again.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-footerHeight)
	m.game.Resize(msg.Width, msg.Height-footerHeight)
	m.help.Width = msg.Width
	m.gameState = m.game.State()
	return m, nil
}

// handleTick runs one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.advance(now)
	return m, tickCmd(m.config.TickRate)
}

// advance drains input, steps the game, and applies gravity when due.
// At most one gravity step runs per frame.
func (m *Model) advance(now time.Time) {
	elapsed := frameInterval(m.config.TickRate)
	if !m.lastFrame.IsZero() {
		elapsed = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	res := m.game.Step(m.queue.Drain())
	m.logEvents(res.Events)
	m.gameState = res.State
	if res.State.Paused || res.State.GameOver {
		return
	}

	m.sinceFall += elapsed
	if m.sinceFall < m.speed.Interval(m.game.Level()) {
		return
	}
	m.sinceFall = 0

	res = m.game.Gravity()
	m.logEvents(res.Events)
	m.gameState = res.State
}

// restart begins a new game with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH-footerHeight)
	m.queue.Drain()
	m.sinceFall = 0
	m.gameState = m.game.State()
	m.logger.Info("game restarted", "seed", m.config.Seed)
}

// logEvents writes step events to the debug log.
func (m *Model) logEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventLocked:
			m.logger.Debug("piece locked", "piece", ev.Detail)
		case core.EventLinesCleared:
			m.logger.Info("lines cleared", "count", ev.Count, "points", ev.Points)
		case core.EventLevelUp:
			m.logger.Info("level up", "level", ev.Level, "interval", m.speed.Interval(ev.Level))
		case core.EventGameOver:
			m.logger.Info("game over",
				"reason", ev.Detail,
				"score", ev.Points,
				"lines", ev.Count,
				"level", ev.Level,
			)
		case core.EventPaused, core.EventResumed:
			m.logger.Debug(ev.Kind.String())
		}
	}
}

// screenshotDir returns ~/.tetris/screenshots, or empty if home is unavailable.
func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "screenshots")
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.lastShot = path
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)

	var footer string
	if m.gameState.GameOver {
		footer = m.help.View(gameOverHelp(m.keys))
	} else {
		footer = m.help.View(m.keys)
	}
	if m.lastShot != "" {
		footer += "  saved " + filepath.Base(m.lastShot)
	}
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// Outcome returns how the session ended.
func (m Model) Outcome() Outcome {
	return Outcome{State: m.gameState, BackToMenu: m.backToMenu}
}

// Run starts the Bubble Tea program for one session.
func Run(opts Options) (Outcome, error) {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return Outcome{}, fmt.Errorf("run game: %w", err)
	}
	m, ok := finalModel.(Model)
	if !ok {
		return Outcome{}, nil
	}

	out := m.Outcome()
	model.logger.Info("session ended",
		"score", out.State.Score,
		"lines", out.State.Lines,
		"level", out.State.Level,
		"back", out.BackToMenu,
	)
	return out, nil
}
