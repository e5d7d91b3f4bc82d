package encoding

import (
	"bufio"
	"fmt"
	"math"

	"github.com/arloliu/metablob/endian"
	"github.com/arloliu/metablob/errs"
	"github.com/arloliu/metablob/format"
	"github.com/arloliu/metablob/point"
)

// MaxRecordWidth bounds the size in bytes of one binary record.
const MaxRecordWidth = 1 << 24

// Layout describes the shape and encoding of the records of one blob.
type Layout struct {
	// ElementType is the numeric kind of every value.
	ElementType format.ElementType
	// Dim is the number of coordinates per record, at least 1.
	Dim int
	// Aux is the number of auxiliary values per record.
	Aux int
	// Binary selects fixed-width binary records instead of text lines.
	Binary bool
	// Engine is the byte order of binary values. Nil means the host's order.
	Engine endian.EndianEngine
}

// RecordCodec encodes and decodes the records of one blob layout.
type RecordCodec struct {
	engine   endian.EndianEngine
	elemType format.ElementType
	dim      int
	aux      int
	binary   bool
}

// NewRecordCodec creates a codec for the given layout.
//
// Returns errs.ErrInvalidElementType, errs.ErrInvalidDimension or
// errs.ErrInvalidArgument for an unusable layout, including one whose binary
// record would exceed MaxRecordWidth bytes.
func NewRecordCodec(l Layout) (RecordCodec, error) {
	if !l.ElementType.IsValid() {
		return RecordCodec{}, fmt.Errorf("%w: %d", errs.ErrInvalidElementType, l.ElementType)
	}

	if l.Dim < 1 {
		return RecordCodec{}, fmt.Errorf("%w: got %d", errs.ErrInvalidDimension, l.Dim)
	}

	if l.Aux < 0 {
		return RecordCodec{}, fmt.Errorf("%w: negative auxiliary count %d", errs.ErrInvalidArgument, l.Aux)
	}

	if l.Dim > MaxRecordWidth || l.Aux > MaxRecordWidth ||
		(l.Dim+l.Aux)*l.ElementType.Size() > MaxRecordWidth {
		return RecordCodec{}, fmt.Errorf("%w: %d+%d %s values exceed the %d byte record limit",
			errs.ErrInvalidArgument, l.Dim, l.Aux, l.ElementType, MaxRecordWidth)
	}

	engine := l.Engine
	if engine == nil {
		engine = endian.GetNativeEngine()
	}

	return RecordCodec{
		engine:   engine,
		elemType: l.ElementType,
		dim:      l.Dim,
		aux:      l.Aux,
		binary:   l.Binary,
	}, nil
}

// ElementType returns the element type of encoded values.
func (c RecordCodec) ElementType() format.ElementType {
	return c.elemType
}

// IsBinary reports whether Append and ReadRecords use the binary layout.
func (c RecordCodec) IsBinary() bool {
	return c.binary
}

// Fields returns the number of values per record.
func (c RecordCodec) Fields() int {
	return c.dim + c.aux
}

// RecordWidth returns the size of one binary record in bytes.
func (c RecordCodec) RecordWidth() int {
	return c.Fields() * c.elemType.Size()
}

// Append encodes r with the codec's layout and appends it to dst.
//
// Returns errs.ErrRecordMismatch if r does not have the codec's shape and
// errs.ErrValueOutOfRange if a value cannot be stored in the element type.
// On error dst is returned unchanged.
func (c RecordCodec) Append(dst []byte, r *point.Record) ([]byte, error) {
	if c.binary {
		return c.AppendBinary(dst, r)
	}

	return c.AppendText(dst, r)
}

// ReadRecords decodes exactly n records from r into list using the codec's layout.
// See ReadBinary and ReadText for the error conditions.
func (c RecordCodec) ReadRecords(r *bufio.Reader, n int, list *point.List) error {
	if c.binary {
		return c.ReadBinary(r, n, list)
	}

	return c.ReadText(r, n, list)
}

func (c RecordCodec) checkShape(r *point.Record) error {
	if r == nil {
		return fmt.Errorf("%w: nil record", errs.ErrRecordMismatch)
	}

	if len(r.Coords) != c.dim || len(r.Aux) != c.aux {
		return fmt.Errorf("%w: got %d+%d values, want %d+%d",
			errs.ErrRecordMismatch, len(r.Coords), len(r.Aux), c.dim, c.aux)
	}

	return nil
}

func (c RecordCodec) checkValue(v float64) error {
	if !c.elemType.Represents(v) {
		return fmt.Errorf("%w: %v as %s", errs.ErrValueOutOfRange, v, c.elemType)
	}

	return nil
}

// putValue appends the fixed-width form of v. v must be representable.
func (c RecordCodec) putValue(dst []byte, v float64) []byte {
	switch c.elemType {
	case format.TypeChar:
		return append(dst, byte(int8(v)))
	case format.TypeUChar:
		return append(dst, uint8(v))
	case format.TypeShort:
		return c.engine.AppendUint16(dst, uint16(int16(v)))
	case format.TypeUShort:
		return c.engine.AppendUint16(dst, uint16(v))
	case format.TypeInt:
		return c.engine.AppendUint32(dst, uint32(int32(v)))
	case format.TypeUInt:
		return c.engine.AppendUint32(dst, uint32(v))
	case format.TypeFloat:
		return c.engine.AppendUint32(dst, math.Float32bits(float32(v)))
	default:
		return c.engine.AppendUint64(dst, math.Float64bits(v))
	}
}

// value decodes one fixed-width value from the start of src.
func (c RecordCodec) value(src []byte) float64 {
	switch c.elemType {
	case format.TypeChar:
		return float64(int8(src[0]))
	case format.TypeUChar:
		return float64(src[0])
	case format.TypeShort:
		return float64(int16(c.engine.Uint16(src)))
	case format.TypeUShort:
		return float64(c.engine.Uint16(src))
	case format.TypeInt:
		return float64(int32(c.engine.Uint32(src)))
	case format.TypeUInt:
		return float64(c.engine.Uint32(src))
	case format.TypeFloat:
		return float64(math.Float32frombits(c.engine.Uint32(src)))
	default:
		return math.Float64frombits(c.engine.Uint64(src))
	}
}
