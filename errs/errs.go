// Package errs defines the sentinel errors returned by metablob.
//
// Every error belongs to exactly one of four kinds: ErrInvalidArgument,
// ErrInvalidState, ErrIO and ErrFormat. The more specific sentinels wrap their
// kind, so callers may classify any returned error with errors.Is:
//
//	if errors.Is(err, errs.ErrFormat) {
//	    // the file opened fine but its content is inconsistent
//	}
package errs

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
	ErrIO              = errors.New("i/o error")
	ErrFormat          = errors.New("format error")
)

// Invalid argument errors.
var (
	ErrInvalidDimension   = fmt.Errorf("%w: dimension must be at least 1", ErrInvalidArgument)
	ErrInvalidElementType = fmt.Errorf("%w: unsupported element type", ErrInvalidArgument)
	ErrInvalidFieldName   = fmt.Errorf("%w: invalid field name", ErrInvalidArgument)
	ErrValueOutOfRange    = fmt.Errorf("%w: value not representable in element type", ErrInvalidArgument)
	ErrShapeMismatch      = fmt.Errorf("%w: record shape does not match point list", ErrInvalidArgument)
)

// Invalid state errors.
var (
	ErrPointsExist    = fmt.Errorf("%w: point list is not empty", ErrInvalidState)
	ErrRecordMismatch = fmt.Errorf("%w: record shape does not match codec", ErrInvalidState)
)

// Format errors.
var (
	ErrMalformedHeader    = fmt.Errorf("%w: malformed header", ErrFormat)
	ErrMissingHeaderKey   = fmt.Errorf("%w: missing mandatory header key", ErrFormat)
	ErrMissingDataMarker  = fmt.Errorf("%w: missing data marker", ErrFormat)
	ErrHeaderTooLarge     = fmt.Errorf("%w: header too large", ErrFormat)
	ErrUnsupportedObject  = fmt.Errorf("%w: unsupported object type", ErrFormat)
	ErrUnsupportedData    = fmt.Errorf("%w: unsupported element data file", ErrFormat)
	ErrInvalidPointDim    = fmt.Errorf("%w: invalid point dimension", ErrFormat)
	ErrInvalidPointCount  = fmt.Errorf("%w: invalid point count", ErrFormat)
	ErrUnknownElementType = fmt.Errorf("%w: unknown element type", ErrFormat)
	ErrTruncatedData      = fmt.Errorf("%w: truncated binary data", ErrFormat)
	ErrRecordCount        = fmt.Errorf("%w: record count does not match header", ErrFormat)
	ErrFieldCount         = fmt.Errorf("%w: field count does not match record width", ErrFormat)
	ErrInvalidValue       = fmt.Errorf("%w: invalid value", ErrFormat)
)
