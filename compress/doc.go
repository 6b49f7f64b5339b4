// Package compress provides the codecs applied to encoded snapshot payloads.
//
// Supported algorithms, selected by format.CompressionType:
//   - None: payload stored as-is
//   - Zstd: best ratio, suited to snapshots that are archived or shipped over a network
//   - S2: fast with a good ratio
//   - LZ4: fastest decompression
//
// Every codec is stateless and safe for concurrent use. Zstd and LZ4 keep pooled
// encoder state internally.
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	packed, err := codec.Compress(payload)
//	payload, err = codec.Decompress(packed)
//
// Empty input compresses and decompresses to nil for every codec. Untrusted
// input should go through DecompressLimit, which never produces more output than
// the caller expects.
package compress
