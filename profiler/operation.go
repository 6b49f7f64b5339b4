package profiler

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/arloliu/opprof/errs"
	"github.com/arloliu/opprof/format"
)

// Operation counts the operations of one instrumented call for one
// (series, size) key. It is created by CreateOperation and finalized by Close,
// typically deferred right after creation.
//
// Every count is written through to the session immediately. Once the profiler
// has been reset, or after Close, counting has no effect on stored data.
type Operation struct {
	p      *Profiler
	series string
	size   int
	gen    uint64

	mu     sync.Mutex
	count  int64
	closed bool
	stale  bool
	err    error
}

// CreateOperation binds a new zero counter to (name, size) and stores the zero
// immediately, so the key is defined even if nothing is ever counted. An existing
// value at that key is replaced.
func (p *Profiler) CreateOperation(name string, size int) (*Operation, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.sess.store.Set(name, size, 0, format.KindCount); err != nil {
		return nil, fmt.Errorf("create operation: %w", err)
	}
	p.noteWrite(name, size)

	return &Operation{
		p:      p,
		series: name,
		size:   size,
		gen:    p.sess.generation,
	}, nil
}

// Series returns the series name the operation counts for.
func (o *Operation) Series() string {
	return o.series
}

// Size returns the input size the operation counts for.
func (o *Operation) Size() int {
	return o.size
}

// Value returns the number of operations counted so far.
func (o *Operation) Value() int64 {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.count
}

// Count records one operation. A failed write is kept and returned by Close.
func (o *Operation) Count() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.add(1)
}

// CountN records delta operations in a single write, e.g. two multiplications
// performed together. It is equivalent to calling Count delta times.
func (o *Operation) CountN(delta int64) error {
	if delta <= 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidDelta, delta)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.add(delta)

	return o.err
}

// add must be called with o.mu held.
func (o *Operation) add(delta int64) {
	if o.closed {
		return
	}
	o.count += delta
	o.flush()
}

// flush writes the running count through to the session. The first write that
// finds the session reset marks the handle stale; later writes are skipped.
// Caller must hold o.mu.
func (o *Operation) flush() {
	if o.stale {
		return
	}

	current, err := o.p.writeCurrent(o.gen, o.series, o.size, o.count)
	if !current {
		o.stale = true
		o.p.cfg.logger.Debug("dropping writes of stale operation",
			slog.String("series", o.series),
			slog.Int("size", o.size),
			slog.Uint64("handle_generation", o.gen),
		)

		return
	}
	if err != nil && o.err == nil {
		o.err = fmt.Errorf("record operation %q size %d: %w", o.series, o.size, err)
	}
}

// Close writes the final count and releases the handle. It returns the first
// write error seen by the handle. It is safe to call more than once. A handle
// whose session has been reset writes nothing.
func (o *Operation) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return nil
	}
	o.closed = true
	o.flush()

	return o.err
}

// Stale reports whether the session the operation was created in has been reset.
func (o *Operation) Stale() bool {
	return o.p.Generation() != o.gen
}
