package session

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("white")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// menuModel is the bubbletea model for a single-choice menu.
type menuModel struct {
	title       string
	choices     []string
	cursor      int
	selected    int // index into choices, -1 while undecided
	interrupted bool
}

func newMenuModel(title string, choices []string) menuModel {
	return menuModel{
		title:    title,
		choices:  choices,
		selected: -1,
	}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.interrupted = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}

		case "enter":
			m.selected = m.cursor
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m menuModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(mutedStyle.Render("  [↑/↓] Navigate    [Enter] Select    [Esc] Back") + "\n\n")

	for i, choice := range m.choices {
		if m.cursor == i {
			b.WriteString("  " + selectedStyle.Render("> "+choice) + "\n")
		} else {
			b.WriteString("    " + choice + "\n")
		}
	}

	return b.String()
}
