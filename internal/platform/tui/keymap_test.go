package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapDefaults(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		exit   bool
	}{
		{"a", runeKey("a"), core.ActionMoveLeft, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft, false},
		{"d", runeKey("d"), core.ActionMoveRight, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop, false},
		{"w", runeKey("w"), core.ActionRotate, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"b", runeKey("b"), core.ActionBack, false},
		{"q", runeKey("q"), core.ActionNone, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionNone, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, exit := km.MapKey(tc.msg)
			if action != tc.action || exit != tc.exit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), action, exit, tc.action, tc.exit)
			}
		})
	}
}

func TestKeyMapFromConfig(t *testing.T) {
	keys := config.DefaultConfig().Keys
	keys.Rotate = []string{"k"}
	km := NewKeyMap(keys)

	if action, _ := km.MapKey(runeKey("k")); action != core.ActionRotate {
		t.Errorf("k mapped to %v, expected Rotate", action)
	}
	if action, _ := km.MapKey(runeKey("w")); action != core.ActionNone {
		t.Errorf("w mapped to %v after rebinding, expected None", action)
	}
	if !km.IsScreenshot(tea.KeyMsg{Type: tea.KeyCtrlS}) {
		t.Error("ctrl+s should request a screenshot")
	}
	if got := km.Rotate.Help().Key; got != "k" {
		t.Errorf("help key = %q, expected k", got)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{runeKey("h"), MenuActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}
	for _, tc := range tests {
		if got := MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestControlRows(t *testing.T) {
	rows := ControlRows(DefaultKeyMap())
	if len(rows) != 10 {
		t.Fatalf("ControlRows() len = %d, expected 10", len(rows))
	}
	if rows[0][0] != "a/left" || rows[0][1] != "move left" {
		t.Errorf("first row = %v, expected [a/left move left]", rows[0])
	}
}
