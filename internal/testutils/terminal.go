package testutils

import (
	"bytes"
	"errors"
	"sync"
)

// ErrBrokenPipe is returned by a Terminal configured to fail.
var ErrBrokenPipe = errors.New("broken pipe")

// Terminal is a fake status line sink for tests.
// It records every Write as a separate frame and counts Flush calls.
type Terminal struct {
	mu       sync.Mutex
	buf      bytes.Buffer
	writes   []string
	flushes  int
	failNext int
}

// Write appends p to the output unless a failure is pending.
func (t *Terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.failNext > 0 {
		t.failNext--
		return 0, ErrBrokenPipe
	}
	t.writes = append(t.writes, string(p))
	return t.buf.Write(p)
}

// Flush records a flush.
func (t *Terminal) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.flushes++
	return nil
}

// FailWrites makes the next n writes return ErrBrokenPipe.
func (t *Terminal) FailWrites(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.failNext = n
}

// Output returns everything written so far.
func (t *Terminal) Output() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.buf.String()
}

// Writes returns each successful Write call in order.
func (t *Terminal) Writes() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]string(nil), t.writes...)
}

// Flushes returns how many times Flush was called.
func (t *Terminal) Flushes() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.flushes
}

// Screen replays the output on a minimal line-oriented terminal model and
// returns the visible lines. It understands '\r', '\n', CSI n F and CSI 0 J,
// which is all a status line emits.
func (t *Terminal) Screen() []string {
	return Replay(t.Output())
}

// Replay is Screen for an arbitrary byte string.
func Replay(out string) []string {
	lines := []string{""}
	row, col := 0, 0

	put := func(r rune) {
		line := []rune(lines[row])
		for len(line) < col {
			line = append(line, ' ')
		}
		if col < len(line) {
			line[col] = r
		} else {
			line = append(line, r)
		}
		lines[row] = string(line)
		col++
	}

	rs := []rune(out)
	for i := 0; i < len(rs); i++ {
		switch r := rs[i]; r {
		case '\r':
			col = 0
		case '\n':
			row++
			col = 0
			if row == len(lines) {
				lines = append(lines, "")
			}
		case '\x1b':
			// ESC [ <digits> <final>
			j := i + 2
			n := 0
			for j < len(rs) && rs[j] >= '0' && rs[j] <= '9' {
				n = n*10 + int(rs[j]-'0')
				j++
			}
			if j >= len(rs) {
				i = j
				continue
			}
			switch rs[j] {
			case 'F':
				row -= n
				if row < 0 {
					row = 0
				}
				col = 0
			case 'J':
				line := []rune(lines[row])
				if col < len(line) {
					lines[row] = string(line[:col])
				}
				lines = lines[:row+1]
			}
			i = j
		default:
			put(r)
		}
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil
	}
	return lines
}
