package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/arloliu/opprof/compress"
	"github.com/arloliu/opprof/endian"
	"github.com/arloliu/opprof/errs"
	"github.com/arloliu/opprof/internal/collision"
	"github.com/arloliu/opprof/internal/hash"
	"github.com/arloliu/opprof/internal/options"
	"github.com/arloliu/opprof/internal/pool"
	"github.com/arloliu/opprof/report"
)

const (
	// Version is the snapshot format version written by this package.
	Version uint8 = 1
	// HeaderSize is the size of the fixed snapshot header in bytes.
	HeaderSize = 20
	// MaxNameLength bounds every encoded string.
	MaxNameLength = 4096
)

// Header flags.
const (
	FlagBigEndian     uint8 = 1 << 0
	FlagHashCollision uint8 = 1 << 1
)

var magic = [4]byte{'O', 'P', 'R', 'F'}

// Encoder turns reports into snapshots. An Encoder is not safe for concurrent use.
type Encoder struct {
	cfg     config
	codec   compress.Codec
	tracker *collision.Tracker
}

// NewEncoder creates an encoder.
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	return &Encoder{
		cfg:     cfg,
		codec:   codec,
		tracker: collision.NewTracker(),
	}, nil
}

// Encode is shorthand for NewEncoder(opts...).Encode(rep).
func Encode(rep *report.Report, opts ...Option) ([]byte, error) {
	enc, err := NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(rep)
}

// Encode serializes rep. Series names must be unique within the report.
func (e *Encoder) Encode(rep *report.Report) ([]byte, error) {
	e.tracker.Reset()

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	if err := e.writePayload(buf, rep); err != nil {
		return nil, err
	}
	payload := buf.Bytes()
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, fmt.Errorf("snapshot payload too large: %d bytes", len(payload))
	}

	packed, err := e.codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress snapshot payload: %w", err)
	}

	var flags uint8
	if !endian.IsLittleEndian(e.cfg.engine) {
		flags |= FlagBigEndian
	}
	if e.tracker.HasCollision() {
		flags |= FlagHashCollision
	}

	out := make([]byte, 0, HeaderSize+len(packed))
	out = append(out, magic[:]...)
	out = append(out, Version, uint8(e.cfg.compression), flags, 0)
	out = e.cfg.engine.AppendUint32(out, uint32(len(payload))) //nolint:gosec
	out = e.cfg.engine.AppendUint64(out, hash.Checksum(payload))
	out = append(out, packed...)

	return out, nil
}

func (e *Encoder) writePayload(buf *pool.ByteBuffer, rep *report.Report) error {
	w := &payloadWriter{buf: buf, engine: e.cfg.engine}

	w.str(rep.Session)
	w.uvarint(rep.Generation)
	w.str(rep.RunID)

	w.uvarint(uint64(len(rep.Series)))
	for _, s := range rep.Series {
		id := hash.ID(s.Name)
		if err := e.tracker.Track(s.Name, id); err != nil {
			return err
		}
		w.u64(id)
		w.str(s.Name)
		w.points(s.Points)
	}

	w.uvarint(uint64(len(rep.Groups)))
	for _, g := range rep.Groups {
		w.str(g.Name)
		w.strs(g.Series)
	}

	w.strs(rep.Ungrouped)

	return w.err
}

type payloadWriter struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	err    error
}

func (w *payloadWriter) uvarint(v uint64) {
	w.buf.B = binary.AppendUvarint(w.buf.B, v)
}

func (w *payloadWriter) varint(v int64) {
	w.buf.B = binary.AppendVarint(w.buf.B, v)
}

func (w *payloadWriter) u64(v uint64) {
	w.buf.B = w.engine.AppendUint64(w.buf.B, v)
}

func (w *payloadWriter) str(s string) {
	if w.err != nil {
		return
	}
	if len(s) > MaxNameLength {
		w.err = fmt.Errorf("%w: %d bytes, max %d", errs.ErrNameTooLong, len(s), MaxNameLength)
		return
	}
	w.buf.Grow(binary.MaxVarintLen16 + len(s))
	w.uvarint(uint64(len(s)))
	w.buf.B = append(w.buf.B, s...)
}

func (w *payloadWriter) strs(list []string) {
	w.uvarint(uint64(len(list)))
	for _, s := range list {
		w.str(s)
	}
}

// points writes sizes as deltas from the previous size. Points must be sorted by
// ascending size, as report.Build guarantees.
func (w *payloadWriter) points(pts []report.Point) {
	w.uvarint(uint64(len(pts)))
	prev := 0
	for _, pt := range pts {
		if w.err != nil {
			return
		}
		if pt.Size < prev {
			w.err = fmt.Errorf("%w: points not sorted by size (%d after %d)", errs.ErrInvalidSize, pt.Size, prev)
			return
		}
		w.uvarint(uint64(pt.Size - prev))
		_ = w.buf.WriteByte(uint8(pt.Kind))
		w.varint(pt.Value)
		prev = pt.Size
	}
}

// Writer is a report.Renderer that writes each rendered report as a snapshot.
type Writer struct {
	w   io.Writer
	enc *Encoder
}

var _ report.Renderer = (*Writer)(nil)

// NewWriter creates a snapshot renderer writing to w.
func NewWriter(w io.Writer, opts ...Option) (*Writer, error) {
	enc, err := NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return &Writer{w: w, enc: enc}, nil
}

// Render encodes rep and writes it.
func (sw *Writer) Render(rep *report.Report) error {
	data, err := sw.enc.Encode(rep)
	if err != nil {
		return err
	}
	_, err = sw.w.Write(data)

	return err
}
