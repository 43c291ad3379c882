package session

import (
	"fmt"
)

// Terminal is the real Session implementation: menus and prompts are
// bubbletea programs, views print straight to stdout.
type Terminal struct{}

// NewTerminal creates a terminal-backed session.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Ask presents a menu when choices are given, a free-text prompt otherwise.
func (t *Terminal) Ask(prompt string, choices []string) (string, error) {
	if len(choices) > 0 {
		return t.menu(prompt, choices)
	}
	return t.text(prompt)
}

// Confirm presents a yes/no menu.
func (t *Terminal) Confirm(prompt string) (bool, error) {
	answer, err := t.menu(prompt, []string{"Yes", "No"})
	if err != nil {
		return false, err
	}
	return answer == "Yes", nil
}

// Render prints a pre-rendered view.
func (t *Terminal) Render(view string) {
	fmt.Println(view)
}

func (t *Terminal) menu(title string, choices []string) (string, error) {
	final, err := runProgram(newMenuModel(title, choices))
	if err != nil {
		return "", fmt.Errorf("failed to show menu: %w", err)
	}

	m := final.(menuModel)
	if m.interrupted || m.selected < 0 {
		return "", ErrInterrupted
	}

	return m.choices[m.selected], nil
}

func (t *Terminal) text(prompt string) (string, error) {
	final, err := runProgram(newPromptModel(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to show prompt: %w", err)
	}

	m := final.(promptModel)
	if m.interrupted || !m.done {
		return "", ErrInterrupted
	}

	return m.input.Value(), nil
}
