// Package profiler counts operations and measures wall-clock time of
// instrumented code, keyed by series name and input size.
//
// A Profiler owns exactly one active session. A session holds the measured
// series, the comparison groups and any pending timers. Reset discards all of it
// and starts a new session under a new name.
//
// # Counting operations
//
// An Operation is bound to one (series, size) key. It stores zero as soon as it is
// created and writes its running total on every count, so the stored value is
// always current:
//
//	func slowPow(p *profiler.Profiler, x, n int) int {
//		op, _ := p.CreateOperation("slow_pow", n)
//		defer op.Close()
//
//		res := 1
//		for range n {
//			op.Count()
//			res *= x
//		}
//		return res
//	}
//
// CountOperation records a single measurement without a handle and always
// overwrites the stored value. AccumulateOperation adds to it instead.
//
// # Timing
//
// StartTimer and StopTimer bracket a batch of work. The elapsed time of the whole
// batch is stored; dividing by the number of repetitions is left to the report
// consumer (see report.Point.PerTrial).
//
// # Sessions and stale handles
//
// Every session has a generation number. An Operation remembers the generation it
// was created in and silently drops its writes once the profiler has been reset,
// so a handle that outlives its session can never corrupt the next one.
//
// A Profiler is safe for concurrent use, although instrumented code usually calls
// it from a single goroutine.
package profiler
