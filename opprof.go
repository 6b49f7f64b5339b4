// Package opprof counts the operations performed by instrumented algorithms and
// times them over growing input sizes, so that variants of an algorithm can be
// compared side by side.
//
// Measurements are organized into series: a series is named after the algorithm
// or variant being measured (e.g. "slow_pow") and maps each input size to a
// measured value, either a number of counted operations or an elapsed time.
// Related series are collected into groups for combined display, and the whole
// session is rendered as a report at the end of the run.
//
// # Core Features
//
//   - Operation handles that write through on every count
//   - Fire-and-forget counting for code without a loop of its own
//   - Start/stop timers for batches of repeated trials
//   - Comparison groups for side-by-side reports
//   - Resettable sessions with stale-handle protection
//   - Text, CSV, JSON, YAML and Prometheus renderers
//   - Compact binary snapshots with optional Zstd, S2 or LZ4 compression
//
// # Basic Usage
//
//	p, _ := opprof.New("demo-power")
//
//	slowPow := func(x, n int) int {
//	    op, _ := p.CreateOperation("slow_pow", n)
//	    defer op.Close()
//
//	    res := 1
//	    for range n {
//	        op.Count()
//	        res *= x
//	    }
//	    return res
//	}
//
//	for n := 0; n < 200; n += 10 {
//	    slowPow(5, n)
//	}
//	_ = p.CreateGroup("power", "slow_pow", "fast_pow")
//	_ = p.ShowReport()
//
// # Package Structure
//
// This package offers top-level shortcuts. The profiler, report and snapshot
// packages expose the full API.
package opprof

import (
	"github.com/arloliu/opprof/format"
	"github.com/arloliu/opprof/internal/hash"
	"github.com/arloliu/opprof/profiler"
	"github.com/arloliu/opprof/report"
	"github.com/arloliu/opprof/snapshot"
)

// New creates a profiler whose active session is called name.
//
// Available options:
//   - profiler.WithLogger(*slog.Logger)
//   - profiler.WithClock(func() time.Time)
//   - profiler.WithOutput(io.Writer)
//   - profiler.WithRenderer(report.Renderer)
//   - profiler.WithRunID(func() string)
func New(name string, opts ...profiler.Option) (*profiler.Profiler, error) {
	return profiler.New(name, opts...)
}

// SeriesID returns the 64-bit identifier a snapshot assigns to a series name.
func SeriesID(name string) uint64 {
	return hash.ID(name)
}

// EncodeSnapshot encodes rep with Zstd payload compression.
func EncodeSnapshot(rep *report.Report) ([]byte, error) {
	return snapshot.Encode(rep, snapshot.WithCompression(format.CompressionZstd))
}

// DecodeSnapshot decodes a snapshot produced by EncodeSnapshot or snapshot.Encode.
func DecodeSnapshot(data []byte) (*snapshot.Snapshot, error) {
	return snapshot.Decode(data)
}
