// Package metablob reads and writes blob files: typed, variable-length
// collections of N-dimensional points stored as a textual "Key = Value"
// header followed by ASCII or binary point records in the same file.
//
// # Basic Usage
//
// Creating and writing a blob:
//
//	import "github.com/arloliu/metablob"
//
//	b, _ := metablob.NewBinary(3, format.TypeFloat)
//	for i := 0; i < 10; i++ {
//	    b.AddPoint([]float64{0.2, float64(i), float64(i)})
//	}
//	if err := b.Write("points.mhd"); err != nil {
//	    log.Fatal(err)
//	}
//
// Reading it back:
//
//	b, err := metablob.Open("points.mhd")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range b.Points().All() {
//	    fmt.Println(p.Coords)
//	}
//
// Errors are classified by the kinds in package errs; use errors.Is to tell
// an unreadable file (errs.ErrIO) from a file with inconsistent content
// (errs.ErrFormat).
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the blob package,
// simplifying the most common use cases. For advanced usage and fine-grained
// control, use the blob package directly.
package metablob

import (
	"github.com/arloliu/metablob/blob"
	"github.com/arloliu/metablob/format"
	"github.com/arloliu/metablob/internal/hash"
)

// Blob is a typed collection of points persisted as one file.
type Blob = blob.Blob

// New creates an empty ASCII blob of the given dimension with MET_FLOAT values.
//
// Parameters:
//   - dim: Number of coordinates per point, at least 1
//   - opts: Optional configuration (see blob.Option)
//
// Returns:
//   - *Blob: The created blob
//   - error: errs.ErrInvalidDimension if dim is outside [1, section.MaxDimension], or the first failing option's error
//
// Example:
//
//	b, err := metablob.New(3, blob.WithAuxFields("red", "green", "blue", "alpha"))
func New(dim int, opts ...blob.Option) (*Blob, error) {
	return blob.New(dim, opts...)
}

// NewBinary creates an empty blob that writes fixed-width binary records of
// the given element type.
//
// It is a shorthand for New with blob.WithBinaryMode(true) and
// blob.WithElementType(elemType); additional options are applied afterwards.
func NewBinary(dim int, elemType format.ElementType, opts ...blob.Option) (*Blob, error) {
	allOpts := append([]blob.Option{blob.WithBinaryMode(true), blob.WithElementType(elemType)}, opts...)
	return blob.New(dim, allOpts...)
}

// Open reads the blob stored in the file at path.
//
// Dimension, element type, encoding mode, byte order and auxiliary fields are
// all taken from the file header.
//
// Returns an error wrapping errs.ErrIO if the file cannot be read, or
// errs.ErrFormat if its content is inconsistent.
func Open(path string, opts ...blob.Option) (*Blob, error) {
	return blob.Open(path, opts...)
}

// Fingerprint returns the 64-bit xxHash of data, as reported by
// Blob.Fingerprint for the file image of a blob.
func Fingerprint(data []byte) uint64 {
	return hash.Fingerprint(data)
}
