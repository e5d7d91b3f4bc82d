package metablob

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/metablob/blob"
	"github.com/arloliu/metablob/errs"
	"github.com/arloliu/metablob/format"
)

// TestNew verifies the default blob settings
func TestNew(t *testing.T) {
	b, err := New(3)
	require.NoError(t, err)
	require.NotNil(t, b)
	require.False(t, b.IsBinaryMode())
	require.Equal(t, format.TypeFloat, b.ElementType())

	_, err = New(0)
	require.ErrorIs(t, err, errs.ErrInvalidDimension)
}

// TestNewBinary verifies the binary shorthand and option ordering
func TestNewBinary(t *testing.T) {
	b, err := NewBinary(2, format.TypeDouble, blob.WithID(9))
	require.NoError(t, err)
	require.True(t, b.IsBinaryMode())
	require.Equal(t, format.TypeDouble, b.ElementType())
	require.Equal(t, 9, b.ID())

	b, err = NewBinary(2, format.TypeDouble, blob.WithBinaryMode(false))
	require.NoError(t, err)
	require.False(t, b.IsBinaryMode(), "caller options override the shorthand")

	_, err = NewBinary(2, format.TypeUnknown)
	require.ErrorIs(t, err, errs.ErrInvalidElementType)
}

// TestOpen verifies a write/open cycle through the top-level wrappers
func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.mhd")

	b, err := NewBinary(3, format.TypeFloat)
	require.NoError(t, err)
	for i := range 10 {
		require.NoError(t, b.AddPoint([]float64{0.2, float64(i), float64(i)}))
	}
	require.NoError(t, b.Write(path))

	got, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, 10, got.PointCount())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	fp, err := got.Fingerprint()
	require.NoError(t, err)
	require.Equal(t, Fingerprint(data), fp)

	_, err = Open(filepath.Join(t.TempDir(), "missing.mhd"))
	require.True(t, errors.Is(err, errs.ErrIO))
}
