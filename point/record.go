// Package point provides the in-memory point records of a blob and the
// ordered list that owns them.
package point

import (
	"slices"

	"github.com/arloliu/metablob/vector"
)

// Record is one point of a blob: its coordinates followed by optional
// auxiliary per-point values such as colour channels.
//
// Values are held as float64, which represents every supported element type
// exactly. The element type of the owning blob decides how they are encoded.
type Record struct {
	Coords []float64
	Aux    []float64
}

// NewRecord returns a zeroed record with dim coordinates and aux auxiliary values.
func NewRecord(dim, aux int) *Record {
	return &Record{
		Coords: make([]float64, dim),
		Aux:    make([]float64, aux),
	}
}

// FromVector returns a record whose coordinates are the components of v.
func FromVector(v vector.Vector, aux ...float64) *Record {
	return &Record{
		Coords: v.Components(),
		Aux:    slices.Clone(aux),
	}
}

// Dim returns the number of coordinates.
func (r *Record) Dim() int {
	return len(r.Coords)
}

// Fields returns the number of encoded values, coordinates plus auxiliary.
func (r *Record) Fields() int {
	return len(r.Coords) + len(r.Aux)
}

// Position returns the coordinates as a vector. The vector does not share
// storage with the record.
func (r *Record) Position() vector.Vector {
	return vector.Of(r.Coords...)
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	return &Record{
		Coords: slices.Clone(r.Coords),
		Aux:    slices.Clone(r.Aux),
	}
}

// Equal reports whether r and o hold the same values. NaN never equals NaN.
func (r *Record) Equal(o *Record) bool {
	if r == nil || o == nil {
		return r == o
	}

	return slices.Equal(r.Coords, o.Coords) && slices.Equal(r.Aux, o.Aux)
}
