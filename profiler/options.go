package profiler

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/arloliu/opprof/internal/options"
	"github.com/arloliu/opprof/report"
)

// DefaultSessionName is used when a session is created or reset with an empty name.
const DefaultSessionName = "default"

type config struct {
	logger   *slog.Logger
	now      func() time.Time
	output   io.Writer
	renderer report.Renderer
	runID    func() string
}

// Option configures a Profiler.
type Option = options.Option[*config]

// WithLogger sets the logger used for debug records. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return options.New(func(cfg *config) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger

		return nil
	})
}

// WithClock replaces time.Now as the timer clock.
func WithClock(now func() time.Time) Option {
	return options.New(func(cfg *config) error {
		if now == nil {
			return errors.New("clock cannot be nil")
		}
		cfg.now = now

		return nil
	})
}

// WithOutput sets the writer of the default text renderer used by ShowReport.
// Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return options.New(func(cfg *config) error {
		if w == nil {
			return errors.New("output writer cannot be nil")
		}
		cfg.output = w

		return nil
	})
}

// WithRenderer sets the renderer used by ShowReport, overriding WithOutput.
func WithRenderer(r report.Renderer) Option {
	return options.NoError(func(cfg *config) {
		cfg.renderer = r
	})
}

// WithRunID sets the generator of per-session run identifiers.
// Defaults to random UUIDs.
func WithRunID(gen func() string) Option {
	return options.New(func(cfg *config) error {
		if gen == nil {
			return errors.New("run ID generator cannot be nil")
		}
		cfg.runID = gen

		return nil
	})
}
