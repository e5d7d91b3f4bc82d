package encoding

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/metablob/errs"
	"github.com/arloliu/metablob/format"
	"github.com/arloliu/metablob/point"
)

// AppendText appends r as one text line, newline included, to dst.
//
// Integer kinds are written in base 10, MET_FLOAT and MET_DOUBLE in the
// shortest form that parses back to the same float32 or float64 value.
func (c RecordCodec) AppendText(dst []byte, r *point.Record) ([]byte, error) {
	if err := c.checkShape(r); err != nil {
		return dst, err
	}

	start := len(dst)
	first := true
	for _, vals := range [2][]float64{r.Coords, r.Aux} {
		for _, v := range vals {
			if err := c.checkValue(v); err != nil {
				return dst[:start], err
			}

			if !first {
				dst = append(dst, ' ')
			}
			first = false
			dst = c.appendToken(dst, v)
		}
	}

	return append(dst, '\n'), nil
}

func (c RecordCodec) appendToken(dst []byte, v float64) []byte {
	switch c.elemType {
	case format.TypeFloat:
		return strconv.AppendFloat(dst, v, 'g', -1, 32)
	case format.TypeDouble:
		return strconv.AppendFloat(dst, v, 'g', -1, 64)
	default:
		return strconv.AppendInt(dst, int64(v), 10)
	}
}

// DecodeText decodes one record from a text line.
//
// The line is split on whitespace. Returns errs.ErrFieldCount if the number of
// tokens differs from Fields and errs.ErrInvalidValue if a token does not
// parse as the element type.
func (c RecordCodec) DecodeText(line string) (*point.Record, error) {
	tokens := strings.Fields(line)
	if len(tokens) != c.Fields() {
		return nil, fmt.Errorf("%w: got %d values, want %d", errs.ErrFieldCount, len(tokens), c.Fields())
	}

	rec := point.NewRecord(c.dim, c.aux)
	for i, tok := range tokens {
		v, err := c.parseToken(tok)
		if err != nil {
			return nil, err
		}

		if i < c.dim {
			rec.Coords[i] = v
		} else {
			rec.Aux[i-c.dim] = v
		}
	}

	return rec, nil
}

func (c RecordCodec) parseToken(tok string) (float64, error) {
	bitSize := 64
	if c.elemType == format.TypeFloat {
		bitSize = 32
	}

	v, err := strconv.ParseFloat(tok, bitSize)
	if err != nil || !c.elemType.Represents(v) {
		return 0, fmt.Errorf("%w: %q as %s", errs.ErrInvalidValue, tok, c.elemType)
	}

	return v, nil
}

// ReadText reads n text records from r and appends them to list.
//
// Blank lines are skipped. The stream is consumed to its end: fewer than n
// records, or non-blank lines after the n-th record, are errs.ErrRecordCount.
// Read failures other than io.EOF are errs.ErrIO.
func (c RecordCodec) ReadText(r *bufio.Reader, n int, list *point.List) error {
	read := 0
	lineNo := 0

	for {
		line, readErr := r.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("%w: reading record %d: %w", errs.ErrIO, read, readErr)
		}

		if strings.TrimSpace(line) != "" {
			if read == n {
				return fmt.Errorf("%w: more than %d records", errs.ErrRecordCount, n)
			}

			rec, err := c.DecodeText(line)
			if err != nil {
				return fmt.Errorf("record %d (data line %d): %w", read, lineNo+1, err)
			}

			if err := list.Append(rec); err != nil {
				return err
			}
			read++
		}
		lineNo++

		if readErr != nil {
			break
		}
	}

	if read != n {
		return fmt.Errorf("%w: got %d records, want %d", errs.ErrRecordCount, read, n)
	}

	return nil
}
