package section

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/arloliu/metablob/endian"
	"github.com/arloliu/metablob/errs"
	"github.com/arloliu/metablob/format"
)

// Header holds the metadata of a blob file.
type Header struct {
	// Comment is free text emitted only when non-empty. Must be a single line.
	Comment string
	// Name is the object name emitted only when non-empty. Must be a single line.
	Name string
	// PointDim names every field of a record: NDims coordinate names followed
	// by the auxiliary field names. Empty means coordinates only.
	PointDim []string

	// ID is the object identifier.
	ID int
	// NDims is the number of coordinates per point, at least 1.
	NDims int
	// NPoints is the number of records following the header.
	NPoints int

	// ElementType is the numeric kind of every encoded value.
	ElementType format.ElementType
	// BinaryData selects fixed-width binary records instead of text lines.
	BinaryData bool
	// ByteOrderMSB records big-endian binary values. Only emitted in binary mode.
	ByteOrderMSB bool
}

// NewHeader returns a header with default ID, host byte order and MET_FLOAT values.
func NewHeader(dim int) *Header {
	return &Header{
		ID:           DefaultID,
		NDims:        dim,
		ElementType:  format.TypeFloat,
		ByteOrderMSB: endian.IsNativeBigEndian(),
	}
}

// AuxCount returns the number of auxiliary values per record.
func (h *Header) AuxCount() int {
	if len(h.PointDim) <= h.NDims {
		return 0
	}

	return len(h.PointDim) - h.NDims
}

// AuxFields returns the auxiliary field names, or nil if there are none.
func (h *Header) AuxFields() []string {
	if h.AuxCount() == 0 {
		return nil
	}

	return h.PointDim[h.NDims:]
}

// Engine returns the byte order engine for binary values.
func (h *Header) Engine() endian.EndianEngine {
	return endian.EngineFor(h.ByteOrderMSB)
}

// Validate checks that the header can be emitted and parsed back.
func (h *Header) Validate() error {
	if h.NDims < 1 || h.NDims > MaxDimension {
		return fmt.Errorf("%w: NDims = %d, must be in [1, %d]", errs.ErrInvalidDimension, h.NDims, MaxDimension)
	}

	if h.NPoints < 0 {
		return fmt.Errorf("%w: NPoints = %d", errs.ErrInvalidPointCount, h.NPoints)
	}

	if !h.ElementType.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidElementType, h.ElementType)
	}

	if len(h.PointDim) > 0 && len(h.PointDim) < h.NDims {
		return fmt.Errorf("%w: PointDim names %d fields, NDims is %d",
			errs.ErrInvalidFieldName, len(h.PointDim), h.NDims)
	}

	for _, name := range h.PointDim {
		if err := ValidateFieldName(name); err != nil {
			return err
		}
	}

	for _, v := range [2]string{h.Comment, h.Name} {
		if strings.ContainsAny(v, "\r\n") {
			return fmt.Errorf("%w: Comment and Name must be single-line", errs.ErrInvalidArgument)
		}

		if strings.TrimSpace(v) != v {
			return fmt.Errorf("%w: Comment and Name must not start or end with whitespace: %q", errs.ErrInvalidArgument, v)
		}
	}

	return nil
}

// ValidateFieldName checks that name can appear in the PointDim list.
func ValidateFieldName(name string) error {
	if name == "" || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q", errs.ErrInvalidFieldName, name)
	}

	return nil
}

// AppendTo appends the textual header, terminated by the data marker line, to dst.
// The header must be valid; see Validate.
func (h *Header) AppendTo(dst []byte) []byte {
	dst = appendLine(dst, KeyObjectType, ObjectTypeBlob)
	if h.Comment != "" {
		dst = appendLine(dst, KeyComment, h.Comment)
	}
	dst = appendLine(dst, KeyID, strconv.Itoa(h.ID))
	if h.Name != "" {
		dst = appendLine(dst, KeyName, h.Name)
	}
	dst = appendLine(dst, KeyNDims, strconv.Itoa(h.NDims))
	dst = appendLine(dst, KeyBinaryData, formatBool(h.BinaryData))
	if h.BinaryData {
		dst = appendLine(dst, KeyByteOrderMSB, formatBool(h.ByteOrderMSB))
	}
	dst = appendLine(dst, KeyElementType, h.ElementType.String())
	dst = appendLine(dst, KeyPointDim, strings.Join(h.pointDimOrDefault(), " "))
	dst = appendLine(dst, KeyNPoints, strconv.Itoa(h.NPoints))
	dst = appendLine(dst, KeyElementDataFile, DataFileLocal)

	return dst
}

// Bytes returns the textual header.
func (h *Header) Bytes() []byte {
	return h.AppendTo(nil)
}

func (h *Header) pointDimOrDefault() []string {
	if len(h.PointDim) > 0 {
		return h.PointDim
	}

	return CoordinateNames(h.NDims)
}

// CoordinateNames returns the default names of dim coordinates:
// "x y z" for up to three dimensions, "x0 x1 ..." beyond.
func CoordinateNames(dim int) []string {
	if dim <= 3 {
		return []string{"x", "y", "z"}[:max(dim, 0)]
	}

	names := make([]string, dim)
	for i := range names {
		names[i] = "x" + strconv.Itoa(i)
	}

	return names
}

// ParseHeader reads header lines from r up to and including the data marker.
//
// On success r is positioned at the first byte of record data and the number
// of header bytes consumed is returned. Read failures of r are reported as
// errs.ErrIO, everything else as errs.ErrFormat.
func ParseHeader(r *bufio.Reader) (*Header, int, error) {
	h := NewHeader(0)
	p := headerParser{h: h}

	consumed := 0
	for {
		line, readErr := readLine(r, MaxHeaderSize-consumed)
		consumed += len(line)
		if errors.Is(readErr, errs.ErrHeaderTooLarge) {
			return nil, consumed, readErr
		}

		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, consumed, fmt.Errorf("%w: reading header: %w", errs.ErrIO, readErr)
		}

		if trimmed := strings.TrimSpace(string(line)); trimmed != "" {
			key, value, ok := strings.Cut(trimmed, "=")
			if !ok {
				return nil, consumed, fmt.Errorf("%w: line %q has no '='", errs.ErrMalformedHeader, trimmed)
			}

			key = strings.TrimSpace(key)
			if err := p.set(key, strings.TrimSpace(value)); err != nil {
				return nil, consumed, err
			}

			if key == KeyElementDataFile {
				if err := p.finish(); err != nil {
					return nil, consumed, err
				}

				return h, consumed, nil
			}
		}

		if readErr != nil {
			return nil, consumed, errs.ErrMissingDataMarker
		}
	}
}

// readLine reads up to and including the next newline. It fails with
// errs.ErrHeaderTooLarge once the line exceeds limit bytes, so at most one
// buffer of r beyond the limit is ever held.
func readLine(r *bufio.Reader, limit int) ([]byte, error) {
	var line []byte
	for {
		chunk, err := r.ReadSlice('\n')
		if len(line)+len(chunk) > limit {
			return line, fmt.Errorf("%w: more than %d bytes", errs.ErrHeaderTooLarge, MaxHeaderSize)
		}

		line = append(line, chunk...)
		if !errors.Is(err, bufio.ErrBufferFull) {
			return line, err
		}
	}
}

type headerParser struct {
	h        *Header
	hasDims  bool
	hasCount bool
	hasType  bool
}

func (p *headerParser) set(key, value string) error {
	var err error

	switch key {
	case KeyObjectType:
		if !strings.EqualFold(value, ObjectTypeBlob) {
			return fmt.Errorf("%w: %q", errs.ErrUnsupportedObject, value)
		}
	case KeyComment:
		p.h.Comment = value
	case KeyName:
		p.h.Name = value
	case KeyID:
		p.h.ID, err = parseInt(key, value)
	case KeyNDims:
		p.h.NDims, err = parseInt(key, value)
		if err == nil && (p.h.NDims < 1 || p.h.NDims > MaxDimension) {
			err = fmt.Errorf("%w: NDims = %d, must be in [1, %d]", errs.ErrInvalidPointDim, p.h.NDims, MaxDimension)
		}
		p.hasDims = true
	case KeyNPoints:
		p.h.NPoints, err = parseInt(key, value)
		if err == nil && p.h.NPoints < 0 {
			err = fmt.Errorf("%w: NPoints = %d", errs.ErrInvalidPointCount, p.h.NPoints)
		}
		p.hasCount = true
	case KeyBinaryData:
		p.h.BinaryData, err = parseBool(key, value)
	case KeyByteOrderMSB, keyLegacyByteOrderMSB:
		p.h.ByteOrderMSB, err = parseBool(key, value)
	case KeyElementType:
		var ok bool
		if p.h.ElementType, ok = format.ParseElementType(value); !ok {
			err = fmt.Errorf("%w: %q", errs.ErrUnknownElementType, value)
		}
		p.hasType = true
	case KeyPointDim:
		p.h.PointDim = strings.Fields(value)
	case KeyElementDataFile:
		if !strings.EqualFold(value, DataFileLocal) {
			err = fmt.Errorf("%w: %q", errs.ErrUnsupportedData, value)
		}
	}

	return err
}

func (p *headerParser) finish() error {
	switch {
	case !p.hasDims:
		return fmt.Errorf("%w: %s", errs.ErrMissingHeaderKey, KeyNDims)
	case !p.hasCount:
		return fmt.Errorf("%w: %s", errs.ErrMissingHeaderKey, KeyNPoints)
	case !p.hasType:
		return fmt.Errorf("%w: %s", errs.ErrMissingHeaderKey, KeyElementType)
	}

	if n := len(p.h.PointDim); n > 0 && n < p.h.NDims {
		return fmt.Errorf("%w: PointDim names %d fields, NDims is %d", errs.ErrInvalidPointDim, n, p.h.NDims)
	}

	return nil
}

func appendLine(dst []byte, key, value string) []byte {
	dst = append(dst, key...)
	dst = append(dst, " = "...)
	dst = append(dst, value...)

	return append(dst, '\n')
}

func formatBool(b bool) string {
	if b {
		return "True"
	}

	return "False"
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s = %q is not a boolean", errs.ErrMalformedHeader, key, value)
	}

	return b, nil
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s = %q is not an integer", errs.ErrMalformedHeader, key, value)
	}

	return n, nil
}
