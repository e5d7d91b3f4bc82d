package point

import (
	"fmt"
	"iter"

	"github.com/arloliu/metablob/errs"
)

// List is an ordered collection of records sharing one shape.
//
// Insertion order is preserved and defines the on-disk record order. The list
// owns its records: Append stores the given pointer, Clone copies every record.
// List is not safe for concurrent use.
type List struct {
	dim   int
	aux   int
	items []*Record
}

// NewList returns an empty list accepting records with dim coordinates and
// aux auxiliary values.
func NewList(dim, aux int) *List {
	return &List{dim: dim, aux: aux}
}

// Dim returns the number of coordinates every record must hold.
func (l *List) Dim() int {
	return l.dim
}

// AuxCount returns the number of auxiliary values every record must hold.
func (l *List) AuxCount() int {
	return l.aux
}

// Len returns the number of records.
func (l *List) Len() int {
	return len(l.items)
}

// Append adds r to the end of the list.
//
// Returns errs.ErrShapeMismatch if r is nil or its coordinate or auxiliary
// count differs from the list's shape.
func (l *List) Append(r *Record) error {
	if r == nil {
		return fmt.Errorf("%w: nil record", errs.ErrShapeMismatch)
	}

	if len(r.Coords) != l.dim || len(r.Aux) != l.aux {
		return fmt.Errorf("%w: got %d+%d values, want %d+%d",
			errs.ErrShapeMismatch, len(r.Coords), len(r.Aux), l.dim, l.aux)
	}

	l.items = append(l.items, r)

	return nil
}

// At returns the i-th record. It panics if i is out of range.
func (l *List) At(i int) *Record {
	return l.items[i]
}

// All returns an iterator over the records in insertion order.
// The iterator may be ranged over any number of times.
func (l *List) All() iter.Seq2[int, *Record] {
	return func(yield func(int, *Record) bool) {
		for i, r := range l.items {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Clear removes every record and releases them.
func (l *List) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}

// Clone returns a deep copy of the list.
func (l *List) Clone() *List {
	c := &List{dim: l.dim, aux: l.aux, items: make([]*Record, len(l.items))}
	for i, r := range l.items {
		c.items[i] = r.Clone()
	}

	return c
}
