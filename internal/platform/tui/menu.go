package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// MenuChoice is what the player picked on the title screen.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuControls
	MenuQuit
)

// menuItem is one line of the title screen.
type menuItem struct {
	label  string
	choice MenuChoice // MenuNone for the speed selector
}

var menuItems = []menuItem{
	{label: "Play", choice: MenuPlay},
	{label: "Speed"},
	{label: "Controls", choice: MenuControls},
	{label: "Quit", choice: MenuQuit},
}

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	speeds   []config.SpeedPreset
	speedIdx int
	choice   MenuChoice
}

// NewMenuModel creates a title screen with the given speed preselected.
func NewMenuModel(speed config.SpeedPreset, width, height int) MenuModel {
	m := MenuModel{
		width:  width,
		height: height,
		speeds: config.SpeedPresets(),
	}
	for i, p := range m.speeds {
		if p == speed {
			m.speedIdx = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	onSpeed := menuItems[m.cursor].choice == MenuNone

	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = MenuQuit
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, len(menuItems)-1)

	case MenuActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, len(menuItems)-1)

	case MenuActionLeft:
		if onSpeed {
			m.speedIdx = (m.speedIdx + len(m.speeds) - 1) % len(m.speeds)
		}

	case MenuActionRight:
		if onSpeed {
			m.speedIdx = (m.speedIdx + 1) % len(m.speeds)
		}

	case MenuActionSelect:
		if onSpeed {
			m.speedIdx = (m.speedIdx + 1) % len(m.speeds)
			return m, nil
		}
		m.choice = menuItems[m.cursor].choice
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuNone {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("T E T R I S"))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("Press Enter to start"))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		label := item.label
		if item.choice == MenuNone {
			label = fmt.Sprintf("%s: < %s >", item.label, m.Speed())
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + label + " "))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Up/Down: Navigate  |  Left/Right: Speed  |  Enter: Select  |  Q: Quit"))

	block := lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
	return centered(m.width, m.height, block)
}

// Choice returns the selected item, or MenuNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Speed returns the selected speed preset.
func (m MenuModel) Speed() config.SpeedPreset {
	return m.speeds[m.speedIdx]
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Speed  config.SpeedPreset
	Width  int
	Height int
}

// RunMenu runs the title screen and returns the selection result.
func RunMenu(speed config.SpeedPreset, width, height int) (MenuResult, error) {
	model := NewMenuModel(speed, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuQuit, Speed: speed}, fmt.Errorf("run menu: %w", err)
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == MenuNone {
		return MenuResult{Choice: MenuQuit, Speed: speed}, nil
	}

	return MenuResult{
		Choice: m.Choice(),
		Speed:  m.Speed(),
		Width:  m.width,
		Height: m.height,
	}, nil
}
