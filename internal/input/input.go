// Package input provides plain line-oriented terminal input. The interactive
// session uses richer bubbletea prompts; this package covers the simple
// prompts that happen before a session starts.
package input

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Prompt asks the user for text input with an optional default value.
// If the user presses Enter without typing anything, the default is returned.
//
// Example:
//
//	name := input.Prompt("Project name", "project1")
//	// Displays: Project name (project1): _
func Prompt(message, defaultValue string) string {
	reader := bufio.NewReader(os.Stdin)

	if defaultValue != "" {
		fmt.Print(promptStyle.Render(message) + " " +
			hintStyle.Render(fmt.Sprintf("(%s)", defaultValue)) + ": ")
	} else {
		fmt.Print(promptStyle.Render(message) + ": ")
	}

	input, err := reader.ReadString('\n')
	if err != nil {
		return defaultValue
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue
	}

	return input
}
