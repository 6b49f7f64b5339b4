package profiler

import (
	"fmt"

	"github.com/arloliu/opprof/report"
)

// Report returns the data of the active session: every series in first-write
// order with points sorted by size, every group, and the ungrouped series.
func (p *Profiler) Report() *report.Report {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.snapshotLocked()
}

func (p *Profiler) snapshotLocked() *report.Report {
	meta := report.Meta{
		Session:    p.sess.name,
		Generation: p.sess.generation,
		RunID:      p.sess.runID,
	}

	return report.Build(meta, p.sess.store.All(), p.sess.groups.All())
}

// ShowReport renders the active session with the configured renderer (a text
// table on the configured output by default) and marks the session reported.
// Empty sessions and groups naming missing series render as empty sections.
func (p *Profiler) ShowReport() error {
	r := p.cfg.renderer
	if r == nil {
		r = report.NewTextRenderer(p.cfg.output)
	}

	return p.ShowReportTo(r)
}

// ShowReportTo renders the active session with r and marks the session reported.
func (p *Profiler) ShowReportTo(r report.Renderer) error {
	p.mu.Lock()
	rep := p.snapshotLocked()
	sess := p.sess
	p.mu.Unlock()

	if err := r.Render(rep); err != nil {
		return fmt.Errorf("render report for session %q: %w", rep.Session, err)
	}

	p.mu.Lock()
	sess.state = StateReported
	p.mu.Unlock()

	return nil
}
