package blob

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/arloliu/metablob/errs"
	"github.com/arloliu/metablob/format"
	"github.com/arloliu/metablob/internal/options"
	"github.com/arloliu/metablob/point"
	"github.com/arloliu/metablob/section"
)

const (
	// DefaultDimension is the dimension of a blob created by Open before its
	// header has been read.
	DefaultDimension = 3

	// DefaultElementType is the element type of a new blob.
	DefaultElementType = format.TypeFloat
)

// Blob is a typed, variable-length collection of points persisted as one file.
//
// A Blob owns its point list exclusively. Once the list holds a point, the
// dimension, element type and auxiliary fields are fixed: changing them
// returns errs.ErrInvalidState until the list is cleared.
//
// Blob is not safe for concurrent use.
type Blob struct {
	logger   zerolog.Logger
	points   *point.List
	name     string
	comment  string
	auxNames []string
	id       int
	dim      int
	elemType format.ElementType
	binary   bool
}

// New creates an empty blob of the given dimension.
//
// The blob starts in ASCII mode with DefaultElementType and identifier -1.
//
// Parameters:
//   - dim: Number of coordinates per point, at least 1
//   - opts: Optional configuration (element type, binary mode, auxiliary fields, logger, ...)
//
// Returns:
//   - *Blob: The created blob
//   - error: errs.ErrInvalidDimension if dim is outside [1, section.MaxDimension],
//     or the first failing option's error
func New(dim int, opts ...Option) (*Blob, error) {
	if err := checkDimension(dim); err != nil {
		return nil, err
	}

	b := &Blob{
		logger:   zerolog.Nop(),
		points:   point.NewList(dim, 0),
		id:       section.DefaultID,
		dim:      dim,
		elemType: DefaultElementType,
	}

	if err := options.Apply(b, opts...); err != nil {
		return nil, err
	}

	return b, nil
}

// Open creates a blob and reads it from the file at path.
//
// It is equivalent to New(DefaultDimension, opts...) followed by Read(path);
// the dimension and metadata are then taken from the file.
func Open(path string, opts ...Option) (*Blob, error) {
	b, err := New(DefaultDimension, opts...)
	if err != nil {
		return nil, err
	}

	if err := b.Read(path); err != nil {
		return nil, err
	}

	return b, nil
}

// Clone returns a deep copy of b. The copy shares no points with b.
func (b *Blob) Clone() *Blob {
	c := *b
	c.points = b.points.Clone()
	c.auxNames = slices.Clone(b.auxNames)

	return &c
}

// ID returns the object identifier.
func (b *Blob) ID() int {
	return b.id
}

// SetID sets the object identifier.
func (b *Blob) SetID(id int) {
	b.id = id
}

// Name returns the object name.
func (b *Blob) Name() string {
	return b.name
}

// SetName sets the object name. To be written it must be a single line
// without leading or trailing whitespace.
func (b *Blob) SetName(name string) {
	b.name = name
}

// Comment returns the free text comment.
func (b *Blob) Comment() string {
	return b.comment
}

// SetComment sets the free text comment. To be written it must be a single
// line without leading or trailing whitespace.
func (b *Blob) SetComment(comment string) {
	b.comment = comment
}

// IsBinaryMode reports whether Write encodes records in binary.
func (b *Blob) IsBinaryMode() bool {
	return b.binary
}

// SetBinaryMode selects binary (true) or ASCII (false) records for subsequent
// writes. Read detects the mode from the file header.
func (b *Blob) SetBinaryMode(binary bool) {
	b.binary = binary
}

// ElementType returns the numeric kind of coordinates and auxiliary values.
func (b *Blob) ElementType() format.ElementType {
	return b.elemType
}

// SetElementType declares the numeric kind of coordinates and auxiliary values.
//
// Returns errs.ErrInvalidElementType for an unsupported type, and
// errs.ErrPointsExist when changing the type of a non-empty blob.
func (b *Blob) SetElementType(t format.ElementType) error {
	if !t.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidElementType, t)
	}

	if t == b.elemType {
		return nil
	}

	if b.points.Len() > 0 {
		return fmt.Errorf("%w: cannot change element type from %s to %s", errs.ErrPointsExist, b.elemType, t)
	}

	b.elemType = t

	return nil
}

// Dimension returns the number of coordinates per point.
func (b *Blob) Dimension() int {
	return b.dim
}

// SetDimension changes the number of coordinates per point.
//
// The empty point list is replaced by one of the new shape; handles obtained
// from Points before the call must be refreshed.
//
// Returns errs.ErrInvalidDimension if dim is outside [1, section.MaxDimension]
// and errs.ErrPointsExist when changing the dimension of a non-empty blob.
func (b *Blob) SetDimension(dim int) error {
	if err := checkDimension(dim); err != nil {
		return err
	}

	if dim == b.dim {
		return nil
	}

	if err := b.reshape(dim, len(b.auxNames)); err != nil {
		return fmt.Errorf("cannot change dimension from %d to %d: %w", b.dim, dim, err)
	}
	b.dim = dim

	return nil
}

func checkDimension(dim int) error {
	if dim < 1 || dim > section.MaxDimension {
		return fmt.Errorf("%w: got %d, must be in [1, %d]", errs.ErrInvalidDimension, dim, section.MaxDimension)
	}

	return nil
}

// reshape replaces the empty point list with one accepting the given shape.
func (b *Blob) reshape(dim, aux int) error {
	if b.points.Len() != 0 {
		return errs.ErrPointsExist
	}

	b.points = point.NewList(dim, aux)

	return nil
}

// AuxFields returns the names of the auxiliary per-point values.
func (b *Blob) AuxFields() []string {
	return slices.Clone(b.auxNames)
}

// SetAuxFields names the auxiliary values every point carries after its
// coordinates, e.g. "red", "green", "blue", "alpha". No names means none.
//
// Returns errs.ErrInvalidFieldName for an empty name or one containing
// whitespace, and errs.ErrPointsExist when changing the fields of a non-empty blob.
// Like SetDimension, a successful change replaces the empty point list.
func (b *Blob) SetAuxFields(names ...string) error {
	for _, name := range names {
		if err := section.ValidateFieldName(name); err != nil {
			return err
		}
	}

	if slices.Equal(names, b.auxNames) {
		return nil
	}

	if err := b.reshape(b.dim, len(names)); err != nil {
		return fmt.Errorf("cannot change auxiliary fields: %w", err)
	}
	b.auxNames = slices.Clone(names)

	return nil
}

// PointCount returns the number of points.
func (b *Blob) PointCount() int {
	return b.points.Len()
}

// Points returns the point list owned by b. Callers may append to and
// iterate over it; it remains owned by b. A successful Read replaces the list,
// so handles obtained before it keep referring to the old points.
func (b *Blob) Points() *point.List {
	return b.points
}

// NewPoint returns a zeroed record shaped for this blob. It is not added to the list.
func (b *Blob) NewPoint() *point.Record {
	return point.NewRecord(b.dim, len(b.auxNames))
}

// AddPoint appends a point with the given coordinates and auxiliary values.
// The values are copied.
//
// Returns errs.ErrShapeMismatch if the number of values does not match the blob.
func (b *Blob) AddPoint(coords []float64, aux ...float64) error {
	return b.points.Append(&point.Record{
		Coords: slices.Clone(coords),
		Aux:    slices.Clone(aux),
	})
}

// header builds the file header describing the current state.
func (b *Blob) header() *section.Header {
	h := section.NewHeader(b.dim)
	h.ID = b.id
	h.Name = b.name
	h.Comment = b.comment
	h.BinaryData = b.binary
	h.ElementType = b.elemType
	h.NPoints = b.points.Len()

	if len(b.auxNames) > 0 {
		h.PointDim = append(section.CoordinateNames(b.dim), b.auxNames...)
	}

	return h
}

// commit replaces the state of b with a parsed header and its points.
func (b *Blob) commit(h *section.Header, list *point.List) {
	b.id = h.ID
	b.name = h.Name
	b.comment = h.Comment
	b.dim = h.NDims
	b.elemType = h.ElementType
	b.binary = h.BinaryData
	b.auxNames = slices.Clone(h.AuxFields())
	b.points = list
}
