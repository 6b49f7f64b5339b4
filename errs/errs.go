// Package errs defines the sentinel errors returned by opprof packages.
//
// Errors are wrapped with call-site context using fmt.Errorf("%w: ..."), so callers
// should match them with errors.Is.
package errs

import "errors"

// Instrumentation errors.
var (
	// ErrInvalidSeriesName is returned when a series name is empty.
	ErrInvalidSeriesName = errors.New("invalid series name")
	// ErrInvalidSize is returned when an input size is negative.
	ErrInvalidSize = errors.New("invalid input size")
	// ErrInvalidDelta is returned when an operation delta is not positive.
	ErrInvalidDelta = errors.New("invalid operation delta")
	// ErrInvalidGroupName is returned when a group name is empty.
	ErrInvalidGroupName = errors.New("invalid group name")
	// ErrTimerNotStarted is returned when a timer is stopped without a matching start.
	ErrTimerNotStarted = errors.New("timer not started")
)

// Snapshot errors.
var (
	ErrInvalidMagicNumber = errors.New("invalid snapshot magic number")
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	ErrChecksumMismatch   = errors.New("snapshot checksum mismatch")
	ErrTruncatedSnapshot  = errors.New("truncated snapshot")
	ErrPayloadTooLarge    = errors.New("decompressed payload exceeds declared length")
	ErrSeriesAlreadyAdded = errors.New("series already added")
	ErrHashCollision      = errors.New("series ID hash collision")
	ErrSeriesNotFound     = errors.New("series not found")
	ErrNameTooLong        = errors.New("name too long")
)
