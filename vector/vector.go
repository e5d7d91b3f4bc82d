// Package vector provides a fixed-length numeric tuple with elementary
// arithmetic, used to interpret and produce point coordinates.
//
// A Vector never changes length after creation. Binary operations panic when
// the operands have different dimensions, the same way indexing out of range
// panics.
package vector

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Vector is an n-dimensional tuple of float64 components.
type Vector struct {
	c []float64
}

// New returns the zero vector of the given dimension.
func New(dim int) Vector {
	if dim < 0 {
		panic("vector: negative dimension")
	}

	return Vector{c: make([]float64, dim)}
}

// Of returns a vector holding a copy of the given components.
func Of(components ...float64) Vector {
	c := make([]float64, len(components))
	copy(c, components)

	return Vector{c: c}
}

// Dim returns the number of components.
func (v Vector) Dim() int {
	return len(v.c)
}

// At returns the i-th component.
func (v Vector) At(i int) float64 {
	return v.c[i]
}

// Set assigns the i-th component. The receiver shares storage with its copies
// made by assignment; use Clone for an independent vector.
func (v Vector) Set(i int, x float64) {
	v.c[i] = x
}

// Components returns a copy of the components.
func (v Vector) Components() []float64 {
	out := make([]float64, len(v.c))
	copy(out, v.c)

	return out
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	return Of(v.c...)
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	v.mustMatch(o)
	out := New(len(v.c))
	for i := range v.c {
		out.c[i] = v.c[i] + o.c[i]
	}

	return out
}

// Subtract returns v - o.
func (v Vector) Subtract(o Vector) Vector {
	v.mustMatch(o)
	out := New(len(v.c))
	for i := range v.c {
		out.c[i] = v.c[i] - o.c[i]
	}

	return out
}

// ScaleBy returns v multiplied by s.
func (v Vector) ScaleBy(s float64) Vector {
	out := New(len(v.c))
	for i := range v.c {
		out.c[i] = v.c[i] * s
	}

	return out
}

// DivideBy returns v divided by s. Division by zero follows IEEE 754.
func (v Vector) DivideBy(s float64) Vector {
	out := New(len(v.c))
	for i := range v.c {
		out.c[i] = v.c[i] / s
	}

	return out
}

// Dot returns the inner product of v and o.
func (v Vector) Dot(o Vector) float64 {
	v.mustMatch(o)
	var sum float64
	for i := range v.c {
		sum += v.c[i] * o.c[i]
	}

	return sum
}

// SquaredNorm returns the squared Euclidean norm.
func (v Vector) SquaredNorm() float64 {
	return v.Dot(v)
}

// Norm returns the Euclidean norm.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.SquaredNorm())
}

// Equal reports whether v and o have the same dimension and components.
func (v Vector) Equal(o Vector) bool {
	if len(v.c) != len(o.c) {
		return false
	}

	for i := range v.c {
		if v.c[i] != o.c[i] {
			return false
		}
	}

	return true
}

// String formats the vector as "[x y z]".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.c {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte(']')

	return sb.String()
}

func (v Vector) mustMatch(o Vector) {
	if len(v.c) != len(o.c) {
		panic(fmt.Sprintf("vector: dimension mismatch %d != %d", len(v.c), len(o.c)))
	}
}
