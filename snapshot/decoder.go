package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/opprof/compress"
	"github.com/arloliu/opprof/endian"
	"github.com/arloliu/opprof/errs"
	"github.com/arloliu/opprof/format"
	"github.com/arloliu/opprof/internal/hash"
	"github.com/arloliu/opprof/report"
)

// Snapshot is a decoded snapshot.
type Snapshot struct {
	// Report is the decoded report.
	Report *report.Report
	// Compression is the payload compression the snapshot was written with.
	Compression format.CompressionType

	flags uint8
	byID  map[uint64]int
}

// HasCollision reports whether two series of the snapshot share an ID.
func (s *Snapshot) HasCollision() bool {
	return s.flags&FlagHashCollision != 0
}

// SeriesByID returns the series whose name hashes to id. It fails with
// errs.ErrHashCollision when the snapshot contains colliding IDs.
func (s *Snapshot) SeriesByID(id uint64) (report.Series, error) {
	if s.HasCollision() {
		return report.Series{}, fmt.Errorf("%w: look up series by name", errs.ErrHashCollision)
	}

	i, ok := s.byID[id]
	if !ok {
		return report.Series{}, fmt.Errorf("%w: id 0x%016x", errs.ErrSeriesNotFound, id)
	}

	return s.Report.Series[i], nil
}

// SeriesByName returns the series called name.
func (s *Snapshot) SeriesByName(name string) (report.Series, error) {
	ser, ok := s.Report.Lookup(name)
	if !ok {
		return report.Series{}, fmt.Errorf("%w: %q", errs.ErrSeriesNotFound, name)
	}

	return ser, nil
}

// Decode parses a snapshot produced by Encode and verifies its checksum.
func Decode(data []byte) (*Snapshot, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: header needs %d bytes, got %d", errs.ErrTruncatedSnapshot, HeaderSize, len(data))
	}
	if !bytes.Equal(data[:4], magic[:]) {
		return nil, errs.ErrInvalidMagicNumber
	}
	if data[4] != Version {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, data[4])
	}

	ct := format.CompressionType(data[5])
	flags := data[6]

	engine := endian.GetLittleEndianEngine()
	if flags&FlagBigEndian != 0 {
		engine = endian.GetBigEndianEngine()
	}
	payloadLen := engine.Uint32(data[8:12])
	checksum := engine.Uint64(data[12:20])

	if uint64(payloadLen) > math.MaxInt {
		return nil, fmt.Errorf("%w: declared payload of %d bytes", errs.ErrPayloadTooLarge, payloadLen)
	}

	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}
	payload, err := codec.DecompressLimit(data[HeaderSize:], int(payloadLen))
	if err != nil {
		return nil, fmt.Errorf("decompress snapshot payload: %w", err)
	}
	if uint64(len(payload)) != uint64(payloadLen) {
		return nil, fmt.Errorf("%w: payload is %d bytes, header says %d", errs.ErrTruncatedSnapshot, len(payload), payloadLen)
	}
	if hash.Checksum(payload) != checksum {
		return nil, errs.ErrChecksumMismatch
	}

	r := &payloadReader{data: payload, engine: engine}
	rep, byID := r.report()
	if r.err != nil {
		return nil, r.err
	}

	return &Snapshot{Report: rep, Compression: ct, flags: flags, byID: byID}, nil
}

type payloadReader struct {
	data   []byte
	off    int
	engine endian.EndianEngine
	err    error
}

func (r *payloadReader) fail(what string) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: reading %s at offset %d", errs.ErrTruncatedSnapshot, what, r.off)
	}
}

func (r *payloadReader) uvarint(what string) uint64 {
	if r.err != nil {
		return 0
	}
	v, n := binary.Uvarint(r.data[r.off:])
	if n <= 0 {
		r.fail(what)
		return 0
	}
	r.off += n

	return v
}

func (r *payloadReader) varint(what string) int64 {
	if r.err != nil {
		return 0
	}
	v, n := binary.Varint(r.data[r.off:])
	if n <= 0 {
		r.fail(what)
		return 0
	}
	r.off += n

	return v
}

func (r *payloadReader) u64(what string) uint64 {
	if r.err != nil {
		return 0
	}
	if len(r.data)-r.off < 8 {
		r.fail(what)
		return 0
	}
	v := r.engine.Uint64(r.data[r.off:])
	r.off += 8

	return v
}

func (r *payloadReader) u8(what string) uint8 {
	if r.err != nil {
		return 0
	}
	if r.off >= len(r.data) {
		r.fail(what)
		return 0
	}
	b := r.data[r.off]
	r.off++

	return b
}

func (r *payloadReader) str(what string) string {
	n := r.uvarint(what)
	if r.err != nil {
		return ""
	}
	if n > MaxNameLength || uint64(len(r.data)-r.off) < n {
		r.fail(what)
		return ""
	}
	s := string(r.data[r.off : r.off+int(n)])
	r.off += int(n)

	return s
}

// count reads a list length and rejects lengths that cannot fit in the remaining
// payload, each element taking at least one byte.
func (r *payloadReader) count(what string) int {
	n := r.uvarint(what)
	if r.err != nil {
		return 0
	}
	if n > uint64(len(r.data)-r.off) {
		r.fail(what)
		return 0
	}

	return int(n)
}

func (r *payloadReader) strs(what string) []string {
	n := r.count(what)
	out := make([]string, 0, n)
	for range n {
		out = append(out, r.str(what))
		if r.err != nil {
			return nil
		}
	}

	return out
}

func (r *payloadReader) report() (*report.Report, map[uint64]int) {
	rep := &report.Report{}
	rep.Session = r.str("session name")
	rep.Generation = r.uvarint("generation")
	rep.RunID = r.str("run id")

	n := r.count("series count")
	rep.Series = make([]report.Series, 0, n)
	byID := make(map[uint64]int, n)
	for i := range n {
		id := r.u64("series id")
		s := report.Series{Name: r.str("series name")}
		s.Points = r.points()
		if r.err != nil {
			return nil, nil
		}
		rep.Series = append(rep.Series, s)
		byID[id] = i
	}

	n = r.count("group count")
	rep.Groups = make([]report.Group, 0, n)
	for range n {
		g := report.Group{Name: r.str("group name")}
		g.Series = r.strs("group members")
		if r.err != nil {
			return nil, nil
		}
		rep.Groups = append(rep.Groups, g)
	}

	rep.Ungrouped = r.strs("ungrouped series")
	if r.err == nil && r.off != len(r.data) {
		r.err = fmt.Errorf("%w: %d trailing bytes", errs.ErrTruncatedSnapshot, len(r.data)-r.off)
	}

	return rep, byID
}

func (r *payloadReader) points() []report.Point {
	n := r.count("point count")
	pts := make([]report.Point, 0, n)
	size := 0
	for range n {
		delta := r.uvarint("point size")
		kind := format.ValueKind(r.u8("point kind"))
		value := r.varint("point value")
		if r.err != nil {
			return nil
		}
		if delta > uint64(math.MaxInt-size) {
			r.err = fmt.Errorf("%w: point size overflows after %d", errs.ErrInvalidSize, size)
			return nil
		}
		size += int(delta)
		if !kind.IsValid() {
			r.err = fmt.Errorf("%w: invalid point kind %d", errs.ErrTruncatedSnapshot, kind)
			return nil
		}
		pts = append(pts, report.Point{Size: size, Value: value, Kind: kind})
	}

	return pts
}
