package frame

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Erase appends the sequence that moves the cursor back to the first column of
// a frame spanning rows line breaks and clears everything from there to the
// end of the screen.
func Erase(buf *bytes.Buffer, rows int) {
	if rows > 0 {
		fmt.Fprintf(buf, termenv.CSI+termenv.CursorPreviousLineSeq, rows)
	} else {
		buf.WriteByte('\r')
	}
	fmt.Fprintf(buf, termenv.CSI+termenv.EraseDisplaySeq, 0)
}

// Rows returns how many line breaks the terminal performs while printing text,
// i.e. how far below the frame's first row the cursor ends up.
//
// Every '\n' counts once. When width is positive, lines wider than the
// terminal also count the soft wraps they cause. A line that exactly fills
// the width does not wrap on its own: the cursor stays in the pending-wrap
// column until the next byte arrives.
func Rows(text string, width int) int {
	rows := strings.Count(text, "\n")
	if width <= 0 {
		return rows
	}
	for line := range strings.SplitSeq(text, "\n") {
		w := ansi.StringWidth(strings.TrimSuffix(line, "\r"))
		if w > 0 {
			rows += (w - 1) / width
		}
	}
	return rows
}
