package session

import tea "github.com/charmbracelet/bubbletea"

// runProgram runs a bubbletea model to completion and returns the final
// model. Split out so terminal prompts stay one-liners.
func runProgram(model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model).Run()
}
