// Package blob reads and writes point sets ("blobs") as self-describing files.
//
// A blob file combines a textual header with either ASCII or binary point
// records. Every point carries the same number of coordinates and, optionally,
// the same auxiliary values (colour channels, labels, ...), all stored with
// one element type.
//
// # Writing
//
//	b, err := blob.New(3,
//	    blob.WithElementType(format.TypeFloat),
//	    blob.WithBinaryMode(true),
//	)
//	for i := range 10 {
//	    b.AddPoint([]float64{0.2, float64(i), float64(i)})
//	}
//	err = b.Write("points.meta")
//
// # Reading
//
// The dimension, element type and encoding are discovered from the header:
//
//	b, err := blob.Open("points.meta")
//	for i, p := range b.Points().All() {
//	    fmt.Println(i, p.Position())
//	}
//
// Read is all-or-nothing. When it fails the blob keeps its previous content,
// and the error can be classified with errors.Is against errs.ErrIO (the file
// could not be opened or read) or errs.ErrFormat (its content is inconsistent).
//
// # Round trips
//
// Binary files read back bit-for-bit. ASCII files read back value-for-value:
// MET_FLOAT values are written with the shortest text that parses back to the
// same float32. In both modes a value stored in a MET_FLOAT blob reads back as
// format.TypeFloat.Quantize(v).
package blob
