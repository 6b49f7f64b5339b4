// Package snapshot encodes a finished report into a compact binary form that can
// be handed to an out-of-process renderer, and decodes it back.
//
// # Layout
//
// A snapshot is a fixed 20-byte header followed by the (optionally compressed)
// payload:
//
//	offset size field
//	0      4    magic "OPRF"
//	4      1    format version (1)
//	5      1    compression type (format.CompressionType)
//	6      1    flags (FlagBigEndian, FlagHashCollision)
//	7      1    reserved, zero
//	8      4    uncompressed payload length
//	12     8    xxHash64 checksum of the uncompressed payload
//
// The payload holds, in order: session name, generation and run ID; the series,
// each as its 64-bit ID, name and points (size deltas in ascending order, kind,
// value); the groups; and the names of ungrouped series. Strings are
// uvarint-length-prefixed, counts and sizes are uvarints, values are zig-zag
// varints and IDs use the header's byte order.
//
// Series IDs are xxHash64 of the series name. When two names in one snapshot
// share an ID, FlagHashCollision is set and lookups by ID are refused; look up by
// name instead.
package snapshot
