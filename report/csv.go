package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{"session", "generation", "series", "size", "kind", "value"}

// CSVRenderer writes one row per point, series in report order.
type CSVRenderer struct {
	w   io.Writer
	cfg renderConfig
}

var _ Renderer = (*CSVRenderer)(nil)

// NewCSVRenderer creates a CSV renderer writing to w.
func NewCSVRenderer(w io.Writer, opts ...RenderOption) *CSVRenderer {
	cfg, err := newRenderConfig(opts)
	if err != nil {
		cfg = defaultRenderConfig()
	}

	return &CSVRenderer{w: w, cfg: cfg}
}

// Render writes the header and every point of rep. Duration values are written
// in nanoseconds so the file stays machine readable.
func (c *CSVRenderer) Render(rep *Report) error {
	cw := csv.NewWriter(c.w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	gen := strconv.FormatUint(rep.Generation, 10)
	for _, s := range rep.Series {
		for _, pt := range s.Points {
			record := []string{
				rep.Session,
				gen,
				s.Name,
				strconv.Itoa(pt.Size),
				pt.Kind.String(),
				strconv.FormatInt(pt.Value, 10),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()

	return cw.Error()
}
