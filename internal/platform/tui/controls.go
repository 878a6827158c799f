package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ControlsKeyMap defines the key bindings for the controls screen.
type ControlsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ControlsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ControlsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultControlsKeyMap returns default key bindings.
func DefaultControlsKeyMap() ControlsKeyMap {
	return ControlsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "enter"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ControlRows lists every gameplay binding as (keys, action) pairs.
func ControlRows(km KeyMap) []table.Row {
	bindings := []key.Binding{
		km.MoveLeft, km.MoveRight, km.Rotate, km.SoftDrop,
		km.Pause, km.Quit, km.Restart, km.Back, km.Screenshot, km.Exit,
	}
	rows := make([]table.Row, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		rows = append(rows, table.Row{h.Key, h.Desc})
	}
	return rows
}

// ControlsModel is the Bubble Tea model for the controls screen.
type ControlsModel struct {
	table     table.Model
	help      help.Model
	keys      ControlsKeyMap
	rows      []table.Row
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewControlsModel creates the controls screen for a key map.
func NewControlsModel(km KeyMap, width, height int) ControlsModel {
	m := ControlsModel{
		help:   help.New(),
		keys:   DefaultControlsKeyMap(),
		rows:   ControlRows(km),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates the bindings table sized to the window.
func (m *ControlsModel) createTable() table.Model {
	keyWidth := 8
	for _, r := range m.rows {
		keyWidth = max(keyWidth, lipgloss.Width(r[0])+2)
	}
	columns := []table.Column{
		{Title: "Keys", Width: keyWidth},
		{Title: "Action", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(m.rows),
		table.WithFocused(true),
		table.WithHeight(min(len(m.rows)+1, max(m.height-8, 3))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the controls model.
func (m ControlsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the controls screen.
func (m ControlsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the controls screen.
func (m ControlsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("CONTROLS"))
	b.WriteString("\n\n")
	b.WriteString(panelStyle.Render(m.table.View()))
	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))

	block := lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
	return centered(m.width, m.height, block)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ControlsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ControlsModel) IsQuitting() bool {
	return m.quitting
}

// RunControls runs the controls screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunControls(km KeyMap, width, height int) (goBack bool, err error) {
	model := NewControlsModel(km, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ControlsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
