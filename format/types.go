package format

import (
	"fmt"
	"strings"
)

type (
	ValueKind       uint8
	CompressionType uint8
)

const (
	KindCount    ValueKind = 0x1 // KindCount is a number of counted operations.
	KindDuration ValueKind = 0x2 // KindDuration is an elapsed wall-clock time in nanoseconds.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k ValueKind) String() string {
	switch k {
	case KindCount:
		return "count"
	case KindDuration:
		return "duration"
	default:
		return "unknown"
	}
}

// IsValid reports whether k is a known value kind.
func (k ValueKind) IsValid() bool {
	return k == KindCount || k == KindDuration
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a case-insensitive name to a CompressionType.
// It returns false for unknown names.
func ParseCompression(name string) (CompressionType, bool) {
	switch strings.ToLower(name) {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

// MarshalText encodes k by name.
func (k ValueKind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("invalid value kind: %d", uint8(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name produced by MarshalText.
func (k *ValueKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "count":
		*k = KindCount
	case "duration":
		*k = KindDuration
	default:
		return fmt.Errorf("invalid value kind: %q", text)
	}

	return nil
}
