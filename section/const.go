package section

// Header keys.
const (
	KeyObjectType      = "ObjectType"
	KeyComment         = "Comment"
	KeyID              = "ID"
	KeyName            = "Name"
	KeyNDims           = "NDims"
	KeyBinaryData      = "BinaryData"
	KeyByteOrderMSB    = "ByteOrderMSB"
	KeyElementType     = "ElementType"
	KeyPointDim        = "PointDim"
	KeyNPoints         = "NPoints"
	KeyElementDataFile = "ElementDataFile" // terminal marker, data follows

	// keyLegacyByteOrderMSB is the spelling used by other MetaIO writers.
	keyLegacyByteOrderMSB = "BinaryDataByteOrderMSB"
)

// Fixed header values.
const (
	ObjectTypeBlob = "Blob"
	DataFileLocal  = "LOCAL"

	// DefaultID is the identifier of an object that was never assigned one.
	DefaultID = -1

	// MaxHeaderSize bounds the number of bytes read before the data marker.
	MaxHeaderSize = 64 * 1024

	// MaxDimension bounds NDims.
	MaxDimension = 1 << 16
)
