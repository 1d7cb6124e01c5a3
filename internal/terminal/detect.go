// Package terminal provides terminal detection utilities.
package terminal

import (
	"os"

	"golang.org/x/term"
)

var isTerminalFD = term.IsTerminal

// IsInteractive reports whether stdin and stdout are both interactive terminals.
// Prompts are only shown when this returns true.
func IsInteractive() bool {
	return isTerminalFD(int(os.Stdin.Fd())) && isTerminalFD(int(os.Stdout.Fd()))
}
