// Package report holds the structured result of a profiling session and the
// renderers that turn it into output.
//
// A Report lists every series in first-write order with points sorted by size,
// every group in creation order, and the series that belong to no group. Sections
// arranges that data for display: one section per group (its members side by side),
// followed by one section per ungrouped series. A group member that was never
// recorded appears as an empty series rather than an error.
//
// Renderers consume a finished Report:
//
//	rep := p.Report()
//	_ = report.NewTextRenderer(os.Stdout).Render(rep)
//
// Available renderers are TextRenderer, CSVRenderer, JSONRenderer, YAMLRenderer and
// PrometheusExporter.
package report
