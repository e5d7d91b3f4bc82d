// Package section defines the textual header block of a blob file.
//
// A blob file starts with "Key = Value" lines describing the object, followed
// immediately by the point records:
//
//	ObjectType = Blob
//	ID = 0
//	NDims = 3
//	BinaryData = True
//	ByteOrderMSB = False
//	ElementType = MET_FLOAT
//	PointDim = x y z
//	NPoints = 10
//	ElementDataFile = LOCAL
//	<record data>
//
// Emission order is fixed. Parsing accepts the keys in any order and ignores
// keys it does not know, but the ElementDataFile line always terminates the
// header: the record data starts at the byte following its newline.
package section
