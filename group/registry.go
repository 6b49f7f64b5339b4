// Package group keeps named groups of series that should be displayed together.
//
// Groups are presentation metadata only. Listed series are not validated: a group
// may name a series that was never written and the report shows it empty.
package group

import (
	"slices"
	"sync"

	"github.com/arloliu/opprof/errs"
)

// Group is a named, ordered list of series names.
type Group struct {
	Name   string
	Series []string
}

// Registry stores groups in creation order.
type Registry struct {
	mu     sync.Mutex
	groups map[string][]string
	order  []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		groups: make(map[string][]string),
	}
}

// Create registers a group listing members in the given order. Re-creating an
// existing group replaces its members but keeps its original position.
func (r *Registry) Create(name string, members ...string) error {
	if name == "" {
		return errs.ErrInvalidGroupName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.groups[name]; !ok {
		r.order = append(r.order, name)
	}
	r.groups[name] = slices.Clone(members)

	return nil
}

// Members returns the series listed by group name.
func (r *Registry) Members(name string) ([]string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.groups[name]
	if !ok {
		return nil, false
	}

	return slices.Clone(members), true
}

// All returns every group in creation order.
func (r *Registry) All() []Group {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Group, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, Group{Name: name, Series: slices.Clone(r.groups[name])})
	}

	return out
}

// Len returns the number of groups.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.order)
}

// Reset removes every group.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.groups)
	r.order = r.order[:0]
}
