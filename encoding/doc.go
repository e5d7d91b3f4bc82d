// Package encoding implements the record codec of blob files.
//
// A record is one point: its coordinates followed by its auxiliary values,
// every value encoded with the blob's element type. Two layouts exist:
//
//   - Binary: values are written as fixed-width integers or IEEE 754 floats in
//     the byte order recorded by the header, concatenated without padding or
//     delimiters. Record i starts at i * RecordWidth() bytes after the header.
//   - Text: values are written in their canonical decimal form separated by a
//     single space, one record per line.
//
// The codec is parametric on the element type, the dimension and the number
// of auxiliary values, so the same code serves MET_UCHAR labels and
// MET_DOUBLE coordinates alike:
//
//	codec, err := encoding.NewRecordCodec(encoding.Layout{
//	    ElementType: format.TypeFloat,
//	    Dim:         3,
//	    Binary:      true,
//	    Engine:      endian.GetNativeEngine(),
//	})
//	buf, err = codec.Append(buf, record)
//
// RecordCodec is an immutable value and safe for concurrent use.
package encoding
