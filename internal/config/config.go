package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "statusline.yaml"

// Config holds the settings of the statusline command.
type Config struct {
	Interval    time.Duration  `mapstructure:"interval"`
	Width       int            `mapstructure:"width"`
	LogLevel    string         `mapstructure:"log_level"`
	MetricsAddr string         `mapstructure:"metrics_addr"`
	Progress    ProgressConfig `mapstructure:"progress"`
	Counter     CounterConfig  `mapstructure:"counter"`
}

// ProgressConfig configures the progress bar demo.
type ProgressConfig struct {
	Total    uint64 `mapstructure:"total"`
	Workers  int    `mapstructure:"workers"`
	BarWidth int    `mapstructure:"bar_width"`
}

// CounterConfig configures the counter demo.
type CounterConfig struct {
	Increments int64 `mapstructure:"increments"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Interval: 100 * time.Millisecond,
		LogLevel: "warn",
		Progress: ProgressConfig{
			Total:    1_000_000_000,
			Workers:  1,
			BarWidth: 80,
		},
		Counter: CounterConfig{
			Increments: 1_000_000,
		},
	}
}

// Load reads a YAML (or JSON, by extension) file over the defaults.
// A missing file is not an error: the defaults are returned as is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := Decode(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", filepath.Base(path), err)
	}
	return cfg, cfg.Validate()
}

// Decode applies the keys present in raw onto cfg.
// Durations may be given as strings ("250ms") or integer nanoseconds.
func Decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// Validate checks the values that would otherwise fail later at runtime.
func (c Config) Validate() error {
	var errs []error
	if c.Interval <= 0 {
		errs = append(errs, fmt.Errorf("interval must be positive, got %s", c.Interval))
	}
	if c.Width < 0 {
		errs = append(errs, fmt.Errorf("width must not be negative, got %d", c.Width))
	}
	if c.Progress.Workers < 1 {
		errs = append(errs, fmt.Errorf("progress.workers must be at least 1, got %d", c.Progress.Workers))
	}
	if c.Progress.BarWidth < 1 {
		errs = append(errs, fmt.Errorf("progress.bar_width must be at least 1, got %d", c.Progress.BarWidth))
	}
	if c.Counter.Increments < 0 {
		errs = append(errs, fmt.Errorf("counter.increments must not be negative, got %d", c.Counter.Increments))
	}
	return errors.Join(errs...)
}
