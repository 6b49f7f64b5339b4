// Package collision tracks series names added to a snapshot and detects
// xxHash64 ID collisions between distinct names.
package collision

import (
	"fmt"

	"github.com/arloliu/opprof/errs"
)

// Tracker records which series IDs have been used by a snapshot encoder.
type Tracker struct {
	names        map[uint64]string
	hasCollision bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names: make(map[uint64]string),
	}
}

// Track records name under id.
//
// Adding the same name twice returns errs.ErrSeriesAlreadyAdded. Two different
// names with the same id are not an error: the collision flag is raised and the
// snapshot falls back to name-based lookup.
func (t *Tracker) Track(name string, id uint64) error {
	if name == "" {
		return errs.ErrInvalidSeriesName
	}

	if existing, ok := t.names[id]; ok {
		if existing == name {
			return fmt.Errorf("%w: %q", errs.ErrSeriesAlreadyAdded, name)
		}
		t.hasCollision = true
	}

	t.names[id] = name

	return nil
}

// HasCollision reports whether two tracked names share an ID.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Reset clears the tracker for reuse.
func (t *Tracker) Reset() {
	clear(t.names)
	t.hasCollision = false
}
