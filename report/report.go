package report

import (
	"cmp"
	"slices"
	"time"

	"github.com/arloliu/opprof/format"
	"github.com/arloliu/opprof/group"
	"github.com/arloliu/opprof/series"
)

// Point is one (size, value) pair of a series.
type Point struct {
	Size  int              `json:"size" yaml:"size"`
	Value int64            `json:"value" yaml:"value"`
	Kind  format.ValueKind `json:"kind" yaml:"kind"`
}

// Duration returns the value as a time.Duration.
func (p Point) Duration() time.Duration {
	return time.Duration(p.Value)
}

// PerTrial divides the value by the number of repetitions measured in one batch.
// It returns 0 when trials is not positive.
func (p Point) PerTrial(trials int) float64 {
	if trials <= 0 {
		return 0
	}

	return float64(p.Value) / float64(trials)
}

// Series is a named, size-ordered list of points.
type Series struct {
	Name   string  `json:"name" yaml:"name"`
	Points []Point `json:"points" yaml:"points"`
}

// Group names series that are displayed together.
type Group struct {
	Name   string   `json:"name" yaml:"name"`
	Series []string `json:"series" yaml:"series"`
}

// Meta identifies the session a report was taken from.
type Meta struct {
	Session    string `json:"session" yaml:"session"`
	Generation uint64 `json:"generation" yaml:"generation"`
	RunID      string `json:"run_id,omitempty" yaml:"run_id,omitempty"`
}

// Report is the deterministic result of one session.
type Report struct {
	Meta      `yaml:",inline"`
	Series    []Series `json:"series" yaml:"series"`
	Groups    []Group  `json:"groups" yaml:"groups"`
	Ungrouped []string `json:"ungrouped" yaml:"ungrouped"`
}

// Section is one block of rendered output: a group, or a single ungrouped series.
type Section struct {
	Title  string
	Group  bool
	Series []Series
}

// Build assembles a report from store and registry contents.
func Build(meta Meta, all []series.Series, groups []group.Group) *Report {
	rep := &Report{
		Meta:      meta,
		Series:    make([]Series, 0, len(all)),
		Groups:    make([]Group, 0, len(groups)),
		Ungrouped: make([]string, 0),
	}

	grouped := make(map[string]struct{})
	for _, g := range groups {
		rep.Groups = append(rep.Groups, Group{Name: g.Name, Series: slices.Clone(g.Series)})
		for _, name := range g.Series {
			grouped[name] = struct{}{}
		}
	}

	for _, s := range all {
		pts := make([]Point, len(s.Points))
		for i, pt := range s.Points {
			pts[i] = Point{Size: pt.Size, Value: pt.Value, Kind: pt.Kind}
		}
		rep.Series = append(rep.Series, Series{Name: s.Name, Points: pts})
		if _, ok := grouped[s.Name]; !ok {
			rep.Ungrouped = append(rep.Ungrouped, s.Name)
		}
	}

	return rep
}

// Lookup returns the series called name.
func (r *Report) Lookup(name string) (Series, bool) {
	for _, s := range r.Series {
		if s.Name == name {
			return s, true
		}
	}

	return Series{}, false
}

// IsEmpty reports whether the report holds neither series nor groups.
func (r *Report) IsEmpty() bool {
	return len(r.Series) == 0 && len(r.Groups) == 0
}

// Sections arranges the report for display: groups first, in creation order,
// then each ungrouped series on its own.
func (r *Report) Sections() []Section {
	sections := make([]Section, 0, len(r.Groups)+len(r.Ungrouped))

	for _, g := range r.Groups {
		sec := Section{Title: g.Name, Group: true, Series: make([]Series, 0, len(g.Series))}
		for _, name := range g.Series {
			s, ok := r.Lookup(name)
			if !ok {
				s = Series{Name: name, Points: []Point{}}
			}
			sec.Series = append(sec.Series, s)
		}
		sections = append(sections, sec)
	}

	for _, name := range r.Ungrouped {
		s, _ := r.Lookup(name)
		sections = append(sections, Section{Title: name, Series: []Series{s}})
	}

	return sections
}

// Sizes returns the sorted union of sizes measured by any series of the section.
func (s Section) Sizes() []int {
	var sizes []int
	for _, ser := range s.Series {
		for _, pt := range ser.Points {
			sizes = append(sizes, pt.Size)
		}
	}
	slices.Sort(sizes)

	return slices.Compact(sizes)
}

// At returns the point of the series at size.
func (s Series) At(size int) (Point, bool) {
	i, ok := slices.BinarySearchFunc(s.Points, size, func(pt Point, size int) int {
		return cmp.Compare(pt.Size, size)
	})
	if !ok {
		return Point{}, false
	}

	return s.Points[i], true
}
