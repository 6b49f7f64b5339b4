package snapshot

import (
	"fmt"

	"github.com/arloliu/opprof/endian"
	"github.com/arloliu/opprof/format"
	"github.com/arloliu/opprof/internal/options"
)

type config struct {
	engine      endian.EndianEngine
	compression format.CompressionType
}

func defaultConfig() config {
	return config{
		engine:      endian.GetLittleEndianEngine(),
		compression: format.CompressionNone,
	}
}

// Option configures an Encoder.
type Option = options.Option[*config]

// WithLittleEndian writes fixed-width fields little-endian (default).
func WithLittleEndian() Option {
	return options.NoError(func(cfg *config) {
		cfg.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes fixed-width fields big-endian.
func WithBigEndian() Option {
	return options.NoError(func(cfg *config) {
		cfg.engine = endian.GetBigEndianEngine()
	})
}

// WithCompression compresses the payload with the given algorithm.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(cfg *config) error {
		switch ct {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			cfg.compression = ct
			return nil
		default:
			return fmt.Errorf("invalid snapshot compression: %s", ct)
		}
	})
}
