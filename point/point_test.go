package point

import (
	"math"
	"testing"

	"github.com/arloliu/metablob/errs"
	"github.com/arloliu/metablob/vector"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	t.Run("NewRecord is zeroed", func(t *testing.T) {
		r := NewRecord(3, 4)
		require.Equal(t, 3, r.Dim())
		require.Equal(t, 7, r.Fields())
		require.Equal(t, []float64{0, 0, 0}, r.Coords)
		require.Len(t, r.Aux, 4)
	})

	t.Run("Clone is deep", func(t *testing.T) {
		r := &Record{Coords: []float64{1, 2}, Aux: []float64{255}}
		c := r.Clone()
		c.Coords[0] = 9
		c.Aux[0] = 0

		require.Equal(t, []float64{1, 2}, r.Coords)
		require.Equal(t, []float64{255}, r.Aux)
		require.False(t, r.Equal(c))
	})

	t.Run("Equal", func(t *testing.T) {
		a := &Record{Coords: []float64{1, 2}}
		b := &Record{Coords: []float64{1, 2}, Aux: []float64{}}
		require.True(t, a.Equal(b))
		require.False(t, a.Equal(nil))
		require.True(t, (*Record)(nil).Equal(nil))

		nan := &Record{Coords: []float64{math.NaN()}}
		require.False(t, nan.Equal(nan.Clone()))
	})

	t.Run("vector bridge", func(t *testing.T) {
		v := vector.Of(0.2, 1, 1)
		r := FromVector(v, 1, 0, 0, 1)
		require.Equal(t, []float64{0.2, 1, 1}, r.Coords)
		require.Equal(t, []float64{1, 0, 0, 1}, r.Aux)

		p := r.Position()
		require.True(t, p.Equal(v))
		p.Set(0, 5)
		require.Equal(t, 0.2, r.Coords[0], "Position must not share storage")
	})
}

func TestList_Append(t *testing.T) {
	l := NewList(2, 1)
	require.Equal(t, 2, l.Dim())
	require.Equal(t, 1, l.AuxCount())

	require.NoError(t, l.Append(&Record{Coords: []float64{1, 2}, Aux: []float64{3}}))
	require.Equal(t, 1, l.Len())

	err := l.Append(&Record{Coords: []float64{1, 2, 3}, Aux: []float64{3}})
	require.ErrorIs(t, err, errs.ErrShapeMismatch)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	err = l.Append(&Record{Coords: []float64{1, 2}})
	require.ErrorIs(t, err, errs.ErrShapeMismatch)

	require.ErrorIs(t, l.Append(nil), errs.ErrShapeMismatch)
	require.Equal(t, 1, l.Len())
}

func TestList_OrderAndIteration(t *testing.T) {
	l := NewList(1, 0)
	for i := range 5 {
		require.NoError(t, l.Append(&Record{Coords: []float64{float64(i)}}))
	}

	// iterate twice to check the sequence is restartable
	for range 2 {
		var got []float64
		for i, r := range l.All() {
			require.Same(t, l.At(i), r)
			got = append(got, r.Coords[0])
		}
		require.Equal(t, []float64{0, 1, 2, 3, 4}, got)
	}

	// early break
	n := 0
	for range l.All() {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)
}

func TestList_Clear(t *testing.T) {
	l := NewList(3, 0)
	require.NoError(t, l.Append(NewRecord(3, 0)))
	require.NoError(t, l.Append(NewRecord(3, 0)))

	l.Clear()
	require.Equal(t, 0, l.Len())
	require.Equal(t, 3, l.Dim(), "clearing keeps the shape")
	require.NoError(t, l.Append(NewRecord(3, 0)))
	require.Equal(t, 1, l.Len())
}

func TestList_Clone(t *testing.T) {
	l := NewList(2, 0)
	require.NoError(t, l.Append(&Record{Coords: []float64{1, 1}}))

	c := l.Clone()
	require.NoError(t, c.Append(&Record{Coords: []float64{2, 2}}))
	c.At(0).Coords[0] = 42

	require.Equal(t, 1, l.Len())
	require.Equal(t, 1.0, l.At(0).Coords[0])
	require.Equal(t, 2, c.Len())
}
