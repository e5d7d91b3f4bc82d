package blob

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/metablob/format"
)

func TestBlob_WriteInfo(t *testing.T) {
	t.Run("minimal", func(t *testing.T) {
		b, err := New(3)
		require.NoError(t, err)

		var out bytes.Buffer
		b.WriteInfo(&out)

		want := "ObjectType  = Blob\n" +
			"ID          = -1\n" +
			"NDims       = 3\n" +
			"NPoints     = 0\n" +
			"ElementType = MET_FLOAT\n" +
			"Encoding    = ASCII\n" +
			"AuxFields   = none\n"
		require.Equal(t, want, out.String())
	})

	t.Run("full", func(t *testing.T) {
		b, err := New(2,
			WithID(3),
			WithName("vessels"),
			WithComment("centerline"),
			WithBinaryMode(true),
			WithElementType(format.TypeUShort),
			WithAuxFields("radius"),
		)
		require.NoError(t, err)
		require.NoError(t, b.AddPoint([]float64{1, 2}, 3))

		var out bytes.Buffer
		b.WriteInfo(&out)

		s := out.String()
		require.Contains(t, s, "Name        = vessels\n")
		require.Contains(t, s, "Comment     = centerline\n")
		require.Contains(t, s, "NPoints     = 1\n")
		require.Contains(t, s, "ElementType = MET_USHORT\n")
		require.Contains(t, s, "Encoding    = Binary\n")
		require.Contains(t, s, "AuxFields   = radius\n")
		require.Equal(t, 1, b.PointCount(), "printing does not modify the blob")
	})
}
