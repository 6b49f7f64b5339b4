package series

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/arloliu/opprof/errs"
	"github.com/arloliu/opprof/format"
)

// Point is a single measured value of a series.
type Point struct {
	Size  int
	Value int64
	Kind  format.ValueKind
}

// Duration returns the value as a time.Duration. Only meaningful for KindDuration.
func (p Point) Duration() time.Duration {
	return time.Duration(p.Value)
}

// Series is a named, size-ordered list of points.
type Series struct {
	Name   string
	Points []Point
}

type entry struct {
	points map[int]Point
}

// Store holds every series of one profiling session.
type Store struct {
	mu    sync.Mutex
	index map[string]*entry
	order []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		index: make(map[string]*entry),
	}
}

func validateKey(name string, size int) error {
	if name == "" {
		return errs.ErrInvalidSeriesName
	}
	if size < 0 {
		return fmt.Errorf("%w: %d for series %q", errs.ErrInvalidSize, size, name)
	}

	return nil
}

// lookup returns the entry for name, creating it when create is true.
// Caller must hold s.mu.
func (s *Store) lookup(name string, create bool) *entry {
	e, ok := s.index[name]
	if !ok && create {
		e = &entry{points: make(map[int]Point)}
		s.index[name] = e
		s.order = append(s.order, name)
	}

	return e
}

// Set stores value at (name, size), replacing any previous value.
func (s *Store) Set(name string, size int, value int64, kind format.ValueKind) error {
	if err := validateKey(name, size); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lookup(name, true).points[size] = Point{Size: size, Value: value, Kind: kind}

	return nil
}

// Add adds delta to the value at (name, size), treating an absent value as zero,
// and returns the new total.
func (s *Store) Add(name string, size int, delta int64, kind format.ValueKind) (int64, error) {
	if err := validateKey(name, size); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.lookup(name, true)
	pt := e.points[size]
	pt.Size = size
	pt.Value += delta
	pt.Kind = kind
	e.points[size] = pt

	return pt.Value, nil
}

// Value returns the point stored at (name, size). The second result is false when
// nothing was recorded there, which is a normal outcome.
func (s *Store) Value(name string, size int) (Point, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.lookup(name, false)
	if e == nil {
		return Point{}, false
	}
	pt, ok := e.points[size]

	return pt, ok
}

// Names returns series names in first-write order.
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.order)
}

// All returns every series in first-write order with size-ascending points.
func (s *Store) All() []Series {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Series, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, Series{Name: name, Points: s.index[name].sorted()})
	}

	return out
}

// Len returns the number of series.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.order)
}

// Reset discards every series.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.index)
	s.order = s.order[:0]
}

func (e *entry) sorted() []Point {
	pts := make([]Point, 0, len(e.points))
	for _, pt := range e.points {
		pts = append(pts, pt)
	}
	slices.SortFunc(pts, func(a, b Point) int {
		return cmp.Compare(a.Size, b.Size)
	})

	return pts
}
