package statusline

import "errors"

// ErrInvalidInterval is returned by New when the redraw interval is zero or negative.
var ErrInvalidInterval = errors.New("redraw interval must be positive")

// ErrNilWriter is returned by New when WithWriter is given a nil writer.
var ErrNilWriter = errors.New("writer is nil")

// ErrClosed is returned by Close when the status line has already been closed.
var ErrClosed = errors.New("status line closed")
