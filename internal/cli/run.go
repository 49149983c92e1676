package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/statusline"
	"github.com/aretw0/statusline/internal/config"
	"github.com/aretw0/statusline/internal/demo"
	"github.com/aretw0/statusline/internal/logging"
	"github.com/aretw0/statusline/internal/terminal"
	statushttp "github.com/aretw0/statusline/pkg/adapters/http"
	"github.com/aretw0/statusline/pkg/observability"
	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
)

// RunOptions contains all the configuration for a demo command.
// Zero values mean "use the config file (or its defaults)".
type RunOptions struct {
	ConfigPath  string
	Interval    time.Duration
	Width       int
	Debug       bool
	MetricsAddr string

	// Progress demo
	Total   uint64
	Workers int

	// Counter demo
	Increments int64

	// Out receives the status line (default os.Stderr).
	Out io.Writer
	// Summary receives the one-line result printed after the status line is gone (default os.Stdout).
	Summary io.Writer
}

// Demo names accepted by Execute.
const (
	DemoProgress = "progress"
	DemoCounter  = "counter"
)

type job struct {
	model   fmt.Stringer
	work    func(ctx context.Context) error
	summary func() string
}

// Execute runs the named demo behind a status line.
func Execute(ctx context.Context, name string, opts RunOptions) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	logger, err := createLogger(cfg.LogLevel, opts.Debug)
	if err != nil {
		return err
	}

	j, err := newJob(name, cfg)
	if err != nil {
		return err
	}

	if opts.Out == nil {
		opts.Out = os.Stderr
	}
	if opts.Summary == nil {
		opts.Summary = os.Stdout
	}
	if !terminal.IsTerminal(opts.Out) {
		logger.Debug("output is not a terminal, control sequences will be printed literally")
	}

	return run(ctx, cfg, j, opts, logger)
}

func resolveConfig(opts RunOptions) (config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if opts.Interval != 0 {
		cfg.Interval = opts.Interval
	}
	if opts.Width != 0 {
		cfg.Width = opts.Width
	}
	if opts.MetricsAddr != "" {
		cfg.MetricsAddr = opts.MetricsAddr
	}
	if opts.Total != 0 {
		cfg.Progress.Total = opts.Total
	}
	if opts.Workers != 0 {
		cfg.Progress.Workers = opts.Workers
	}
	if opts.Increments != 0 {
		cfg.Counter.Increments = opts.Increments
	}
	return cfg, cfg.Validate()
}

// createLogger configures the application logger.
// In debug mode everything is logged, which will interleave with the status line.
func createLogger(level string, debug bool) (*slog.Logger, error) {
	if debug {
		return logging.New(slog.LevelDebug), nil
	}
	l, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(l), nil
}

func newJob(name string, cfg config.Config) (job, error) {
	switch name {
	case DemoProgress:
		p := demo.NewProgress(cfg.Progress.Total, cfg.Progress.BarWidth)
		return job{
			model: p,
			work: func(ctx context.Context) error {
				return demo.RunProgress(ctx, p, cfg.Progress.Workers)
			},
			summary: func() string {
				return fmt.Sprintf("processed %s of %s items", humanize.Comma(int64(p.Pos())), humanize.Comma(int64(p.Total())))
			},
		}, nil
	case DemoCounter:
		c := &demo.Counter{}
		return job{
			model: c,
			work: func(ctx context.Context) error {
				return demo.RunCounter(ctx, c, cfg.Counter.Increments)
			},
			summary: c.String,
		}, nil
	}
	return job{}, fmt.Errorf("unknown demo %q", name)
}

func run(ctx context.Context, cfg config.Config, j job, opts RunOptions, logger *slog.Logger) error {
	sc := NewSignalContext(ctx)
	defer sc.Cancel()

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg, "")

	serverDone := make(chan error, 1)
	if cfg.MetricsAddr != "" {
		serveCtx, stopServer := context.WithCancel(context.Background())
		defer func() {
			stopServer()
			if err := <-serverDone; err != nil {
				logger.Warn("metrics server failed", "error", err)
			}
		}()
		go func() {
			serverDone <- statushttp.Serve(serveCtx, cfg.MetricsAddr, statushttp.NewHandler(reg, j.model), logger, nil)
		}()
	}

	slOpts := []statusline.Option{
		statusline.WithInterval(cfg.Interval),
		statusline.WithWriter(opts.Out),
		statusline.WithLogger(logger),
		statusline.WithMetrics(metrics),
	}
	if cfg.Width > 0 {
		slOpts = append(slOpts, statusline.WithWidth(cfg.Width))
	}

	sl, err := statusline.New(j.model, slOpts...)
	if err != nil {
		return fmt.Errorf("failed to start status line: %w", err)
	}

	workErr := j.work(sc)
	if workErr == nil {
		// Leave the final state on screen for one frame.
		sl.Refresh()
		select {
		case <-time.After(cfg.Interval):
		case <-sc.Done():
		}
	}
	closeErr := sl.Close()

	if sig := sc.Signal(); sig != nil {
		logger.Debug("interrupted", "signal", sig.String())
	}
	fmt.Fprintln(opts.Summary, j.summary())

	return errors.Join(handleExecutionError(workErr), closeErr)
}
