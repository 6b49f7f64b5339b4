package profiler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/arloliu/opprof/errs"
	"github.com/arloliu/opprof/format"
)

// StartTimer starts timing (name, size). Starting again before StopTimer replaces
// the start time; timers do not nest.
func (p *Profiler) StartTimer(name string, size int) error {
	if name == "" {
		return errs.ErrInvalidSeriesName
	}
	if size < 0 {
		return fmt.Errorf("%w: %d for series %q", errs.ErrInvalidSize, size, name)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.sess.timers[timerKey{series: name, size: size}] = p.cfg.now()

	return nil
}

// StopTimer stores the time elapsed since the matching StartTimer at (name, size),
// replacing any previous value, and returns it. The start is consumed: stopping
// again without a new start returns errs.ErrTimerNotStarted.
func (p *Profiler) StopTimer(name string, size int) (time.Duration, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.cfg.now()

	key := timerKey{series: name, size: size}
	start, ok := p.sess.timers[key]
	if !ok {
		p.cfg.logger.Debug("timer stopped without start",
			slog.String("session", p.sess.name),
			slog.String("series", name),
			slog.Int("size", size),
		)

		return 0, fmt.Errorf("%w: series %q size %d", errs.ErrTimerNotStarted, name, size)
	}
	delete(p.sess.timers, key)

	elapsed := max(now.Sub(start), 0)

	if err := p.sess.store.Set(name, size, int64(elapsed), format.KindDuration); err != nil {
		return 0, err
	}
	p.noteWrite(name, size)

	return elapsed, nil
}

// Time runs fn trials times between StartTimer and StopTimer and returns the total
// elapsed time of the batch.
func (p *Profiler) Time(name string, size int, trials int, fn func()) (time.Duration, error) {
	if err := p.StartTimer(name, size); err != nil {
		return 0, err
	}
	for range trials {
		fn()
	}

	return p.StopTimer(name, size)
}
