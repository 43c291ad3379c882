// Package session drives the interactive editing of a project tree. The
// Navigator is a small state machine over an abstract Session port, so the
// whole menu flow is testable without a terminal; the Terminal type provides
// the real bubbletea-backed implementation.
package session

import "errors"

// ErrInterrupted is returned by a Session when the user interrupts a prompt
// (ctrl+c or escape). The navigator treats it as navigation: a request to
// exit at the project level, a silent step back anywhere deeper.
var ErrInterrupted = errors.New("session interrupted")

// Session is the interactive I/O boundary. The navigator never performs raw
// terminal I/O; it only calls these.
//
// Ask with a non-empty choice set presents a menu and returns one of the
// choices. Ask with a nil choice set reads free text.
type Session interface {
	Ask(prompt string, choices []string) (string, error)
	Confirm(prompt string) (bool, error)
	Render(view string)
}
