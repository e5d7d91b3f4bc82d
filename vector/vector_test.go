package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	v := New(3)
	require.Equal(t, 3, v.Dim())
	require.Equal(t, []float64{0, 0, 0}, v.Components())

	require.Panics(t, func() { New(-1) })
}

func TestOf_CopiesInput(t *testing.T) {
	in := []float64{1, 2, 3}
	v := Of(in...)
	in[0] = 100

	require.Equal(t, 1.0, v.At(0))

	out := v.Components()
	out[1] = 100
	require.Equal(t, 2.0, v.At(1))
}

func TestArithmetic(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(4, 5, 6)

	require.True(t, a.Add(b).Equal(Of(5, 7, 9)))
	require.True(t, b.Subtract(a).Equal(Of(3, 3, 3)))
	require.True(t, a.ScaleBy(2).Equal(Of(2, 4, 6)))
	require.True(t, b.DivideBy(2).Equal(Of(2, 2.5, 3)))
	require.Equal(t, 32.0, a.Dot(b))

	// operands are left untouched
	require.True(t, a.Equal(Of(1, 2, 3)))
}

func TestNorm(t *testing.T) {
	v := Of(3, 4)
	require.Equal(t, 25.0, v.SquaredNorm())
	require.Equal(t, 5.0, v.Norm())
	require.Equal(t, 0.0, New(4).Norm())
	require.InDelta(t, math.Sqrt(3), Of(1, 1, 1).Norm(), 1e-12)
}

func TestDimensionMismatchPanics(t *testing.T) {
	a := Of(1, 2)
	b := Of(1, 2, 3)

	require.Panics(t, func() { a.Add(b) })
	require.Panics(t, func() { a.Subtract(b) })
	require.Panics(t, func() { a.Dot(b) })
	require.False(t, a.Equal(b))
}

func TestSetAndClone(t *testing.T) {
	v := Of(1, 2)
	c := v.Clone()
	v.Set(0, 9)

	require.Equal(t, 9.0, v.At(0))
	require.Equal(t, 1.0, c.At(0))
	require.Equal(t, "[9 2]", v.String())
}
