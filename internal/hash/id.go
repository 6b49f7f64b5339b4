// Package hash computes the 64-bit identifiers and checksums used by snapshots.
package hash

import "github.com/cespare/xxhash/v2"

// ID returns the xxHash64 of a series name. Snapshots index series by this value.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// Checksum returns the xxHash64 of a snapshot payload.
func Checksum(payload []byte) uint64 {
	return xxhash.Sum64(payload)
}
