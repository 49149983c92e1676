package statusline

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/statusline/internal/logging"
	"github.com/aretw0/statusline/internal/terminal"
	"github.com/aretw0/statusline/pkg/observability"
)

// DefaultInterval is the redraw period used when WithInterval is not given.
const DefaultInterval = 100 * time.Millisecond

// Option defines a functional option for configuring a StatusLine.
type Option func(*config)

type config struct {
	interval time.Duration
	writer   io.Writer
	logger   *slog.Logger
	metrics  *observability.Metrics
	width    int
	widthSet bool
}

func defaultConfig() config {
	return config{
		interval: DefaultInterval,
		writer:   terminal.Stderr(),
		logger:   logging.NewNop(),
	}
}

// WithInterval sets the time between two redraws.
// It must be positive; New rejects anything else with ErrInvalidInterval.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		c.interval = d
	}
}

// WithWriter sets the terminal sink (default os.Stderr).
// If w has a Flush() error method it is called after every frame.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		c.writer = w
	}
}

// WithLogger configures the structured logger used for render failures and
// lifecycle events. If nil, a no-op logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics records frames, failures and render latency.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithWidth sets the terminal width used to account for soft-wrapped lines.
// Zero disables wrap accounting. When not set, the width is read from the
// writer if it is a terminal.
func WithWidth(columns int) Option {
	return func(c *config) {
		c.width = columns
		c.widthSet = true
	}
}
