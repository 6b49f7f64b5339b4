// Package series implements the store of measured series.
//
// A series is a named mapping from input size to a measured value. Each
// (series, size) key holds at most one value: a later write replaces the earlier
// one. Series are created lazily on first write and are reported in the order they
// were first written, with points sorted by ascending size.
//
//	store := series.NewStore()
//	_ = store.Set("slow_pow", 10, 10, format.KindCount)
//	pt, ok := store.Value("slow_pow", 10)
//
// Store is safe for concurrent use; every call is serialized by an internal mutex.
package series
