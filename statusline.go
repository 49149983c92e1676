package statusline

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aretw0/statusline/internal/frame"
	"github.com/aretw0/statusline/internal/logging"
	"github.com/aretw0/statusline/internal/terminal"
	"github.com/aretw0/statusline/pkg/observability"
)

// State is the lifecycle state of a StatusLine.
type State int32

const (
	StateRunning State = iota
	StateShuttingDown
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateShuttingDown:
		return "shutting_down"
	case StateStopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// Func adapts a plain function to fmt.Stringer.
type Func func() string

func (f Func) String() string { return f() }

type flusher interface {
	Flush() error
}

// StatusLine keeps the text of a value on the terminal, redrawing it in place
// every interval until Close erases it.
//
// The value is read from a background goroutine while the caller mutates it,
// so D must be safe for concurrent use (atomics, a mutex, etc).
type StatusLine[D fmt.Stringer] struct {
	data D

	interval time.Duration
	out      io.Writer
	width    func() int
	logger   *slog.Logger
	metrics  *observability.Metrics

	// Render state. Owned by New, then the loop goroutine, then Close.
	buf    bytes.Buffer
	rows   int
	shown  bool
	frames int

	state     atomic.Int32
	stop      chan struct{}
	refresh   chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// New draws the first frame of data immediately and starts redrawing it in
// the background. Call Close, typically deferred, to stop and erase it.
func New[D fmt.Stringer](data D, opts ...Option) (*StatusLine[D], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.interval <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInterval, cfg.interval)
	}
	if cfg.writer == nil {
		return nil, ErrNilWriter
	}
	if cfg.logger == nil {
		cfg.logger = logging.NewNop()
	}

	s := &StatusLine[D]{
		data:     data,
		interval: cfg.interval,
		out:      cfg.writer,
		width:    widthFunc(cfg),
		logger:   cfg.logger,
		metrics:  cfg.metrics,
		stop:     make(chan struct{}),
		refresh:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	s.state.Store(int32(StateRunning))

	s.render()
	s.logger.Debug("statusline started", "interval", s.interval)

	go s.loop()
	return s, nil
}

func widthFunc(cfg config) func() int {
	if cfg.widthSet {
		w := cfg.width
		return func() int { return w }
	}
	if terminal.IsTerminal(cfg.writer) {
		out := cfg.writer
		return func() int { return terminal.Width(out) }
	}
	return func() int { return 0 }
}

// Data returns the value being displayed. Mutate it directly; the next
// redraw picks up whatever state it has at that moment.
func (s *StatusLine[D]) Data() D {
	return s.data
}

// Interval returns the redraw period.
func (s *StatusLine[D]) Interval() time.Duration {
	return s.interval
}

// State reports where the status line is in its lifecycle.
func (s *StatusLine[D]) State() State {
	return State(s.state.Load())
}

// Refresh asks for a redraw without waiting for the next tick.
// Requests made before the background goroutine gets to them are merged.
func (s *StatusLine[D]) Refresh() {
	if s.State() != StateRunning {
		return
	}
	select {
	case s.refresh <- struct{}{}:
	default:
	}
}

// Close stops the background redraw, erases the status text and flushes the
// writer. Nothing is written after Close returns. Calling it again returns
// ErrClosed.
func (s *StatusLine[D]) Close() error {
	err := ErrClosed
	s.closeOnce.Do(func() {
		s.state.Store(int32(StateShuttingDown))
		close(s.stop)
		<-s.done

		err = s.erase()
		s.state.Store(int32(StateStopped))
		s.logger.Debug("statusline stopped", "frames", s.frames)
	})
	return err
}

func (s *StatusLine[D]) loop() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
		case <-s.refresh:
		}
		s.render()
	}
}

// render replaces the frame on screen with the current text of data.
// A failed write leaves rows untouched so the next attempt erases the
// frame that is still visible.
func (s *StatusLine[D]) render() {
	start := time.Now()
	text := s.data.String()

	s.buf.Reset()
	if s.shown {
		frame.Erase(&s.buf, s.rows)
	}
	s.buf.WriteString(text)

	if err := s.emit(); err != nil {
		s.logger.Warn("frame render failed", "error", err)
		s.metrics.ObserveError()
		return
	}

	s.rows = frame.Rows(text, s.width())
	s.shown = true
	s.frames++
	s.metrics.ObserveFrame(time.Since(start), s.rows)
}

func (s *StatusLine[D]) erase() error {
	if !s.shown {
		if f, ok := s.out.(flusher); ok {
			if err := f.Flush(); err != nil {
				return fmt.Errorf("erasing status line: flush: %w", err)
			}
		}
		return nil
	}
	s.buf.Reset()
	frame.Erase(&s.buf, s.rows)
	if err := s.emit(); err != nil {
		s.logger.Warn("final erase failed", "error", err)
		s.metrics.ObserveError()
		return fmt.Errorf("erasing status line: %w", err)
	}
	s.rows = 0
	s.shown = false
	s.metrics.ObserveErase()
	return nil
}

func (s *StatusLine[D]) emit() error {
	if _, err := s.out.Write(s.buf.Bytes()); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if f, ok := s.out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
	}
	return nil
}
