package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is an entry on the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceStart
	ChoiceScores
	ChoiceQuit
)

// String returns the label shown on the menu.
func (c MenuChoice) String() string {
	switch c {
	case ChoiceStart:
		return "Start Game"
	case ChoiceScores:
		return "High Scores"
	case ChoiceQuit:
		return "Quit"
	default:
		return ""
	}
}

var menuChoices = []MenuChoice{ChoiceStart, ChoiceScores, ChoiceQuit}

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))
	menuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor    int
	width     int
	height    int
	highScore int
	status    string
	keyMapper *KeyMapper
	chosen    MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(width, height, highScore int) MenuModel {
	return MenuModel{
		width:     width,
		height:    height,
		highScore: highScore,
		keyMapper: NewKeyMapper(),
	}
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
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.chosen = ChoiceQuit

	case MenuActionUp:
		m.cursor = (m.cursor + len(menuChoices) - 1) % len(menuChoices)

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(menuChoices)

	case MenuActionSelect:
		m.chosen = menuChoices[m.cursor]
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString(menuTitleStyle.Render("B L O C K   B R E A K"))
	b.WriteString("\n\n")

	for i, c := range menuChoices {
		if i == m.cursor {
			b.WriteString(menuSelectedStyle.Render(fmt.Sprintf(" > %-12s", c)))
		} else {
			b.WriteString(fmt.Sprintf("   %-12s", c))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("High Score: %d", m.highScore))
	b.WriteString("\n\n")
	b.WriteString(menuHintStyle.Render("↑/↓ Navigate  Enter Select  Q Quit"))

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(menuStatusStyle.Render(m.status))
	}

	content := lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Chosen returns the confirmed choice, or ChoiceNone.
func (m MenuModel) Chosen() MenuChoice {
	return m.chosen
}

// WithStatus returns a copy of the menu showing a one-line notice.
func (m MenuModel) WithStatus(status string) MenuModel {
	m.status = status
	return m
}
