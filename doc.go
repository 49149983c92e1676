/*
Package statusline displays a small, periodically refreshed piece of text in a
terminal and erases it when you are done, the way progress bars are drawn.

A status line is a generalization of a progress bar. It does not impose a
template or data format: you own the data model and decide how it prints by
implementing fmt.Stringer. The text may span several lines.

# Concept

Updates to the data can happen at any rate, millions per second if needed.
Redraws happen on a background goroutine at a fixed, low rate (DefaultInterval
unless configured). Each redraw reads the current state of the data, so
intermediate updates between two redraws are never shown. Every frame
overwrites the previous one in place, and Close erases the last frame so the
terminal looks as it did before the status line appeared.

# Usage

	// The data model must be safe for concurrent reads and writes.
	type Progress struct{ done atomic.Uint64 }

	func (p *Progress) String() string {
		return fmt.Sprintf("%d%%", p.done.Load())
	}

	sl, err := statusline.New(&Progress{}) // shows 0%
	if err != nil {
		log.Fatal(err)
	}
	defer sl.Close() // hides the status line

	sl.Data().done.Add(1) // shows 1% on the next redraw

# Limitations

The output uses ECMA-48 cursor movement and erase sequences. There is no
capability detection and no fallback: on a sink that is not a terminal the
sequences appear literally. Lines wider than the terminal are accounted for
only when the width is known (see WithWidth).
*/
package statusline
