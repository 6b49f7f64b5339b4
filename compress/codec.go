package compress

import (
	"fmt"

	"github.com/arloliu/opprof/errs"
	"github.com/arloliu/opprof/format"
)

// Compressor compresses an encoded payload. The returned slice is owned by the
// caller and the input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm. It returns an error if
// the data is corrupted or was produced by another algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
	// DecompressLimit is Decompress for untrusted input. It fails with
	// errs.ErrPayloadTooLarge instead of producing more than limit bytes.
	DecompressLimit(data []byte, limit int) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

func errTooLarge(limit int) error {
	return fmt.Errorf("%w: output exceeds %d bytes", errs.ErrPayloadTooLarge, limit)
}
