package report

import (
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

// TextRenderer prints each section as an aligned table keyed by size, one column
// per series.
type TextRenderer struct {
	w   io.Writer
	cfg renderConfig
}

var _ Renderer = (*TextRenderer)(nil)

// NewTextRenderer creates a text renderer writing to w. Invalid options fall back
// to the defaults.
func NewTextRenderer(w io.Writer, opts ...RenderOption) *TextRenderer {
	cfg, err := newRenderConfig(opts)
	if err != nil {
		cfg = defaultRenderConfig()
	}

	return &TextRenderer{w: w, cfg: cfg}
}

// Render writes rep as text tables.
func (t *TextRenderer) Render(rep *Report) error {
	tw := tabwriter.NewWriter(t.w, 0, 4, 2, ' ', 0)
	out := &writeErr{w: tw}

	out.printf("=== Session %s (generation %d) ===\n", rep.Session, rep.Generation)
	if rep.IsEmpty() {
		out.printf("(no series recorded)\n")
	}

	for _, sec := range rep.Sections() {
		t.renderSection(out, sec)
	}

	if out.err != nil {
		return out.err
	}

	return tw.Flush()
}

func (t *TextRenderer) renderSection(out *writeErr, sec Section) {
	title := sec.Title
	if sec.Group {
		title += " (group)"
	}
	out.printf("\n--- %s ---\n", title)

	sizes := sec.Sizes()
	if len(sizes) == 0 {
		out.printf("(no data)\n")
		return
	}

	header := make([]string, 0, len(sec.Series)+1)
	header = append(header, "size")
	for _, s := range sec.Series {
		header = append(header, s.Name)
	}
	out.printf("%s\n", strings.Join(header, "\t"))

	row := make([]string, 0, len(sec.Series)+1)
	for _, size := range sizes {
		row = append(row[:0], strconv.Itoa(size))
		for _, s := range sec.Series {
			pt, ok := s.At(size)
			if !ok {
				row = append(row, t.cfg.emptyCell)
				continue
			}
			row = append(row, t.cfg.formatValue(pt))
		}
		out.printf("%s\n", strings.Join(row, "\t"))
	}
}
