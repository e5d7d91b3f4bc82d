package encoding

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/metablob/errs"
	"github.com/arloliu/metablob/point"
)

// AppendBinary appends the fixed-width encoding of r to dst.
func (c RecordCodec) AppendBinary(dst []byte, r *point.Record) ([]byte, error) {
	if err := c.checkShape(r); err != nil {
		return dst, err
	}

	start := len(dst)
	for _, vals := range [2][]float64{r.Coords, r.Aux} {
		for _, v := range vals {
			if err := c.checkValue(v); err != nil {
				return dst[:start], err
			}
			dst = c.putValue(dst, v)
		}
	}

	return dst, nil
}

// DecodeBinary decodes one record from src, which must hold exactly RecordWidth bytes.
//
// Returns errs.ErrTruncatedData if src is shorter and errs.ErrFieldCount if longer.
func (c RecordCodec) DecodeBinary(src []byte) (*point.Record, error) {
	width := c.RecordWidth()
	if len(src) < width {
		return nil, fmt.Errorf("%w: %d of %d record bytes", errs.ErrTruncatedData, len(src), width)
	}

	if len(src) > width {
		return nil, fmt.Errorf("%w: %d bytes for a %d byte record", errs.ErrFieldCount, len(src), width)
	}

	return c.decodeBinary(src), nil
}

func (c RecordCodec) decodeBinary(src []byte) *point.Record {
	size := c.elemType.Size()
	rec := point.NewRecord(c.dim, c.aux)

	for i := range rec.Coords {
		rec.Coords[i] = c.value(src[i*size:])
	}

	src = src[c.dim*size:]
	for i := range rec.Aux {
		rec.Aux[i] = c.value(src[i*size:])
	}

	return rec
}

// ReadBinary reads n fixed-width records from r and appends them to list.
//
// Bytes following the last record are left unread. A stream ending before
// n * RecordWidth bytes is errs.ErrTruncatedData; any other read failure is
// errs.ErrIO.
func (c RecordCodec) ReadBinary(r io.Reader, n int, list *point.List) error {
	buf := make([]byte, c.RecordWidth())

	for i := range n {
		if _, err := io.ReadFull(r, buf); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return fmt.Errorf("%w: record %d of %d", errs.ErrTruncatedData, i, n)
			}

			return fmt.Errorf("%w: reading record %d: %w", errs.ErrIO, i, err)
		}

		if err := list.Append(c.decodeBinary(buf)); err != nil {
			return err
		}
	}

	return nil
}
