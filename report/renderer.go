package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/arloliu/opprof/format"
	"github.com/arloliu/opprof/internal/options"
)

// Renderer turns a finished report into output.
type Renderer interface {
	Render(rep *Report) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(rep *Report) error

// Render calls f(rep).
func (f RendererFunc) Render(rep *Report) error {
	return f(rep)
}

// Multi returns a renderer that runs every renderer in order and stops at the
// first error.
func Multi(renderers ...Renderer) Renderer {
	return RendererFunc(func(rep *Report) error {
		for _, r := range renderers {
			if err := r.Render(rep); err != nil {
				return err
			}
		}

		return nil
	})
}

type renderConfig struct {
	durationUnit time.Duration
	emptyCell    string
}

func defaultRenderConfig() renderConfig {
	return renderConfig{
		durationUnit: time.Microsecond,
		emptyCell:    "-",
	}
}

// RenderOption configures the text and CSV renderers.
type RenderOption = options.Option[*renderConfig]

// WithDurationUnit rounds duration values to unit before printing.
// Non-positive units print durations unrounded.
func WithDurationUnit(unit time.Duration) RenderOption {
	return options.NoError(func(cfg *renderConfig) {
		cfg.durationUnit = unit
	})
}

// WithEmptyCell sets the placeholder printed where a series has no value at a size.
func WithEmptyCell(s string) RenderOption {
	return options.NoError(func(cfg *renderConfig) {
		cfg.emptyCell = s
	})
}

func newRenderConfig(opts []RenderOption) (renderConfig, error) {
	cfg := defaultRenderConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (cfg renderConfig) formatValue(pt Point) string {
	if pt.Kind != format.KindDuration {
		return strconv.FormatInt(pt.Value, 10)
	}

	d := pt.Duration()
	if cfg.durationUnit > 0 {
		d = d.Round(cfg.durationUnit)
	}

	return d.String()
}

// writeErr records the first write error so rendering code can stay linear.
type writeErr struct {
	w   io.Writer
	err error
}

func (we *writeErr) printf(f string, args ...any) {
	if we.err != nil {
		return
	}
	_, we.err = fmt.Fprintf(we.w, f, args...)
}
