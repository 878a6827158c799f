package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap holds the gameplay key bindings. It translates Bubble Tea key
// messages to game actions and doubles as the help footer's key list.
type KeyMap struct {
	MoveLeft   key.Binding
	MoveRight  key.Binding
	SoftDrop   key.Binding
	Rotate     key.Binding
	Quit       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Exit       key.Binding
}

// NewKeyMap builds bindings from the configured key lists.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	return KeyMap{
		MoveLeft:   binding(keys.MoveLeft, "move left"),
		MoveRight:  binding(keys.MoveRight, "move right"),
		SoftDrop:   binding(keys.SoftDrop, "soft drop"),
		Rotate:     binding(keys.Rotate, "rotate"),
		Quit:       binding(keys.Quit, "end game"),
		Pause:      binding(keys.Pause, "pause"),
		Restart:    binding(keys.Restart, "restart"),
		Back:       binding(keys.Back, "back"),
		Screenshot: binding(keys.Screenshot, "screenshot"),
		Exit:       binding(config.ReservedKeys, "exit"),
	}
}

// DefaultKeyMap returns the bindings for the default configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultConfig().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys renders a key list the way the footer shows it: "a/left".
func helpKeys(keys []string) string {
	return strings.Join(keys, "/")
}

// actionBindings pairs each gameplay action with its binding, in the
// order MapKey checks them.
func (km KeyMap) actionBindings() []struct {
	action  core.Action
	binding key.Binding
} {
	return []struct {
		action  core.Action
		binding key.Binding
	}{
		{core.ActionMoveLeft, km.MoveLeft},
		{core.ActionMoveRight, km.MoveRight},
		{core.ActionSoftDrop, km.SoftDrop},
		{core.ActionRotate, km.Rotate},
		{core.ActionQuit, km.Quit},
		{core.ActionPause, km.Pause},
		{core.ActionRestart, km.Restart},
		{core.ActionBack, km.Back},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's an exit request.
func (km KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isExit bool) {
	if key.Matches(msg, km.Exit) {
		return core.ActionNone, true
	}
	for _, ab := range km.actionBindings() {
		if key.Matches(msg, ab.binding) {
			return ab.action, false
		}
	}
	return core.ActionNone, false
}

// IsScreenshot reports whether the key requests a screenshot.
func (km KeyMap) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.Screenshot)
}

// ShortHelp returns key bindings for the in-game footer.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.MoveLeft, km.MoveRight, km.Rotate, km.SoftDrop, km.Pause, km.Quit}
}

// FullHelp returns key bindings for the full help view.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.MoveLeft, km.MoveRight, km.Rotate, km.SoftDrop},
		{km.Pause, km.Quit, km.Restart, km.Back},
		{km.Screenshot, km.Exit},
	}
}

// gameOverHelp is the footer shown once the game has ended.
type gameOverHelp KeyMap

func (h gameOverHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.Restart, h.Back, h.Screenshot, h.Exit}
}

func (h gameOverHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
