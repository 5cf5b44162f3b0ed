// Package terminal probes the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// IsInteractive reports whether stdin is attached to a terminal, which is
// required for raw keypress input.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// FitWidth clamps the preferred UI width to what the terminal can show,
// leaving room for the two-column indent the UI draws with.
func FitWidth(preferred int) int {
	avail := GetWidth() - 2
	if avail < preferred && avail > 20 {
		return avail
	}
	return preferred
}
