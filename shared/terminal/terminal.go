// Package terminal reports what the attached console supports.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// DefaultWidth is used when stdout has no size, e.g. when piped.
const DefaultWidth = 80

// IsInteractive reports whether stdout is a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Width returns the column count of stdout, or DefaultWidth.
func Width() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}

// blueBackground parses a COLORFGBG value such as "15;4".
// ANSI backgrounds 4 and 12 are blue and bright blue.
func blueBackground(colorfgbg string) bool {
	parts := strings.Split(colorfgbg, ";")
	bg := strings.TrimSpace(parts[len(parts)-1])
	return bg == "4" || bg == "12"
}
