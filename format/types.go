package format

import (
	"math"
	"strings"
)

// ElementType identifies the numeric kind used to encode every coordinate and
// auxiliary value of a blob.
type ElementType uint8

const (
	TypeUnknown ElementType = 0x0 // TypeUnknown is the zero value and never valid.
	TypeChar    ElementType = 0x1 // TypeChar represents a signed 8-bit integer (MET_CHAR).
	TypeUChar   ElementType = 0x2 // TypeUChar represents an unsigned 8-bit integer (MET_UCHAR).
	TypeShort   ElementType = 0x3 // TypeShort represents a signed 16-bit integer (MET_SHORT).
	TypeUShort  ElementType = 0x4 // TypeUShort represents an unsigned 16-bit integer (MET_USHORT).
	TypeInt     ElementType = 0x5 // TypeInt represents a signed 32-bit integer (MET_INT).
	TypeUInt    ElementType = 0x6 // TypeUInt represents an unsigned 32-bit integer (MET_UINT).
	TypeFloat   ElementType = 0x7 // TypeFloat represents an IEEE 754 binary32 value (MET_FLOAT).
	TypeDouble  ElementType = 0x8 // TypeDouble represents an IEEE 754 binary64 value (MET_DOUBLE).
)

// ElementTypes lists every supported element type in tag order.
var ElementTypes = []ElementType{
	TypeChar, TypeUChar, TypeShort, TypeUShort, TypeInt, TypeUInt, TypeFloat, TypeDouble,
}

// String returns the header tag of the element type, e.g. "MET_FLOAT".
func (t ElementType) String() string {
	switch t {
	case TypeChar:
		return "MET_CHAR"
	case TypeUChar:
		return "MET_UCHAR"
	case TypeShort:
		return "MET_SHORT"
	case TypeUShort:
		return "MET_USHORT"
	case TypeInt:
		return "MET_INT"
	case TypeUInt:
		return "MET_UINT"
	case TypeFloat:
		return "MET_FLOAT"
	case TypeDouble:
		return "MET_DOUBLE"
	default:
		return "MET_OTHER"
	}
}

// ParseElementType returns the element type for a header tag.
// The match is case-insensitive and ignores surrounding spaces.
func ParseElementType(tag string) (ElementType, bool) {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	for _, t := range ElementTypes {
		if t.String() == tag {
			return t, true
		}
	}

	return TypeUnknown, false
}

// IsValid reports whether t is one of the supported element types.
func (t ElementType) IsValid() bool {
	return t >= TypeChar && t <= TypeDouble
}

// Size returns the encoded width of one value in bytes, or 0 for an invalid type.
func (t ElementType) Size() int {
	switch t {
	case TypeChar, TypeUChar:
		return 1
	case TypeShort, TypeUShort:
		return 2
	case TypeInt, TypeUInt, TypeFloat:
		return 4
	case TypeDouble:
		return 8
	default:
		return 0
	}
}

// IsInteger reports whether t is an integer kind.
func (t ElementType) IsInteger() bool {
	return t.IsValid() && t != TypeFloat && t != TypeDouble
}

// Range returns the inclusive value range of an integer kind.
// For floating point kinds it returns the finite range.
func (t ElementType) Range() (lo, hi float64) {
	switch t {
	case TypeChar:
		return math.MinInt8, math.MaxInt8
	case TypeUChar:
		return 0, math.MaxUint8
	case TypeShort:
		return math.MinInt16, math.MaxInt16
	case TypeUShort:
		return 0, math.MaxUint16
	case TypeInt:
		return math.MinInt32, math.MaxInt32
	case TypeUInt:
		return 0, math.MaxUint32
	case TypeFloat:
		return -math.MaxFloat32, math.MaxFloat32
	default:
		return -math.MaxFloat64, math.MaxFloat64
	}
}

// Represents reports whether v can be stored in t without loss beyond the
// rounding inherent to t. Integer kinds require an integral value within range.
// MET_FLOAT accepts NaN, infinities and finite values inside the float32 range.
func (t ElementType) Represents(v float64) bool {
	if !t.IsValid() {
		return false
	}

	if t == TypeDouble {
		return true
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return t == TypeFloat
	}

	lo, hi := t.Range()
	if v < lo || v > hi {
		return false
	}

	return !t.IsInteger() || v == math.Trunc(v)
}

// Quantize returns v as it reads back after being stored in t.
// Callers should check Represents first; out of range values are not clamped.
func (t ElementType) Quantize(v float64) float64 {
	switch t {
	case TypeFloat:
		return float64(float32(v))
	case TypeDouble:
		return v
	default:
		return math.Trunc(v)
	}
}
