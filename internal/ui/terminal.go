package ui

import (
	"os"

	"golang.org/x/term"
)

// GetTerminalWidth returns the current terminal width in columns, or a
// default of 120 when stdout is not a terminal (pipes, CI logs).
func GetTerminalWidth() int {
	fd := int(os.Stdout.Fd())

	if !term.IsTerminal(fd) {
		return 120
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 120
	}

	return width
}
