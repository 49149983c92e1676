package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// fder is implemented by *os.File and anything else backed by a descriptor.
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w is backed by an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the column count of the terminal behind w, or 0 when w is
// not a terminal or its size cannot be queried.
func Width(w io.Writer) int {
	if !IsTerminal(w) {
		return 0
	}
	f := w.(fder)
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return 0
	}
	return cols
}

// Stderr returns the default status line sink.
func Stderr() io.Writer {
	return os.Stderr
}
