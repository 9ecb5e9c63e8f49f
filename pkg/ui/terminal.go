package ui

import (
	"os"

	"golang.org/x/term"
)

// StderrIsTerminal reports whether stderr is attached to a terminal.
// The banner is suppressed when stderr is redirected so log captures
// stay clean.
func StderrIsTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// StdoutIsTerminal reports whether stdout is attached to a terminal.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
