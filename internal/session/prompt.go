package session

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptModel is the bubbletea model for a free-text prompt.
type promptModel struct {
	prompt      string
	input       textinput.Model
	done        bool
	interrupted bool
}

func newPromptModel(prompt string) promptModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Focus()

	return promptModel{
		prompt: prompt,
		input:  ti,
	}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.interrupted = true
			return m, tea.Quit

		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	return titleStyle.Render(m.prompt) + "\n" + m.input.View() + "\n"
}
