package profiler

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arloliu/opprof/errs"
	"github.com/arloliu/opprof/format"
	"github.com/arloliu/opprof/group"
	"github.com/arloliu/opprof/internal/options"
	"github.com/arloliu/opprof/report"
	"github.com/arloliu/opprof/series"
)

// State is the lifecycle state of a session.
type State uint8

const (
	// StateActive accepts writes.
	StateActive State = iota + 1
	// StateReported has been rendered by ShowReport. Writes are still accepted.
	StateReported
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateReported:
		return "reported"
	default:
		return "unknown"
	}
}

type timerKey struct {
	series string
	size   int
}

type session struct {
	name       string
	generation uint64
	runID      string
	state      State
	store      *series.Store
	groups     *group.Registry
	timers     map[timerKey]time.Time
	lateWrite  bool
}

// Profiler is the entry point of the instrumentation API. It owns the active
// session.
type Profiler struct {
	mu         sync.Mutex
	cfg        config
	generation uint64
	sess       *session
}

// New creates a profiler with an active session called name. An empty name selects
// DefaultSessionName.
func New(name string, opts ...Option) (*Profiler, error) {
	cfg := config{
		logger: slog.Default(),
		now:    time.Now,
		output: os.Stdout,
		runID:  uuid.NewString,
	}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, fmt.Errorf("invalid profiler option: %w", err)
	}

	p := &Profiler{cfg: cfg}
	p.sess = p.newSession(name, series.NewStore(), group.NewRegistry())

	return p, nil
}

// newSession builds the next session on top of an empty store and registry.
// Caller must hold p.mu or own p exclusively.
func (p *Profiler) newSession(name string, store *series.Store, groups *group.Registry) *session {
	if name == "" {
		name = DefaultSessionName
	}
	p.generation++

	return &session{
		name:       name,
		generation: p.generation,
		runID:      p.cfg.runID(),
		state:      StateActive,
		store:      store,
		groups:     groups,
		timers:     make(map[timerKey]time.Time),
	}
}

// Name returns the name of the active session.
func (p *Profiler) Name() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.sess.name
}

// Generation returns the generation of the active session. It starts at 1 and
// grows by one on every Reset.
func (p *Profiler) Generation() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.sess.generation
}

// RunID returns the unique identifier of the active session.
func (p *Profiler) RunID() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.sess.runID
}

// State returns the lifecycle state of the active session.
func (p *Profiler) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.sess.state
}

// Reset discards every series, group and pending timer and starts a new session
// called name. Operations created before the reset become stale.
func (p *Profiler) Reset(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	old := p.sess
	discardedSeries, discardedGroups := old.store.Len(), old.groups.Len()

	old.store.Reset()
	old.groups.Reset()
	p.sess = p.newSession(name, old.store, old.groups)

	p.cfg.logger.Debug("profiler session reset",
		slog.String("previous", old.name),
		slog.Uint64("previous_generation", old.generation),
		slog.Int("discarded_series", discardedSeries),
		slog.Int("discarded_groups", discardedGroups),
		slog.Int("discarded_timers", len(old.timers)),
		slog.String("session", p.sess.name),
		slog.Uint64("generation", p.sess.generation),
	)
}

// CreateGroup registers a comparison group listing members in order. The series do
// not need to exist. Re-creating a group replaces it.
func (p *Profiler) CreateGroup(name string, members ...string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.sess.groups.Create(name, members...); err != nil {
		return fmt.Errorf("create group %q: %w", name, err)
	}

	return nil
}

// Members returns the series listed by the group name in the active session.
func (p *Profiler) Members(name string) ([]string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.sess.groups.Members(name)
}

// Value returns the value recorded at (name, size) in the active session.
// Absent values are normal: not every size is measured for every series.
func (p *Profiler) Value(name string, size int) (report.Point, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pt, ok := p.sess.store.Value(name, size)
	if !ok {
		return report.Point{}, false
	}

	return report.Point{Size: pt.Size, Value: pt.Value, Kind: pt.Kind}, true
}

// SeriesNames returns the series of the active session in first-write order.
func (p *Profiler) SeriesNames() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.sess.store.Names()
}

// CountOperation records exactly one operation at (name, size) without a handle.
// See CountOperationN.
func (p *Profiler) CountOperation(name string, size int) error {
	return p.CountOperationN(name, size, 1)
}

// CountOperationN sets the value at (name, size) to delta. Repeated calls for the
// same key do not add up; each call is a fresh measurement. Use
// AccumulateOperation to add to the stored value instead.
func (p *Profiler) CountOperationN(name string, size int, delta int64) error {
	if delta <= 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidDelta, delta)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.sess.store.Set(name, size, delta, format.KindCount); err != nil {
		return err
	}
	p.noteWrite(name, size)

	return nil
}

// AccumulateOperation adds delta operations to the value at (name, size), treating
// an absent value as zero. It suits recursive code that counts at every level of
// the recursion.
func (p *Profiler) AccumulateOperation(name string, size int, delta int64) error {
	if delta <= 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidDelta, delta)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := p.sess.store.Add(name, size, delta, format.KindCount); err != nil {
		return err
	}
	p.noteWrite(name, size)

	return nil
}

// noteWrite logs the first accepted write to a session that was already
// reported. Caller must hold p.mu.
func (p *Profiler) noteWrite(name string, size int) {
	if p.sess.state != StateReported || p.sess.lateWrite {
		return
	}
	p.sess.lateWrite = true

	p.cfg.logger.Debug("write after report",
		slog.String("session", p.sess.name),
		slog.String("series", name),
		slog.Int("size", size),
	)
}

// writeCurrent stores value at (name, size) if gen is still the active
// generation. The first result is false when the session has been reset since;
// nothing is written then.
func (p *Profiler) writeCurrent(gen uint64, name string, size int, value int64) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sess.generation != gen {
		return false, nil
	}

	if err := p.sess.store.Set(name, size, value, format.KindCount); err != nil {
		return true, err
	}
	p.noteWrite(name, size)

	return true, nil
}
