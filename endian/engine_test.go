package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestGetNativeEngine(t *testing.T) {
	require := require.New(t)

	result := GetNativeEngine()

	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(binary.BigEndian, result, "GetNativeEngine() should return BigEndian")
		require.True(IsNativeBigEndian())
	case 0x02:
		require.Equal(binary.LittleEndian, result, "GetNativeEngine() should return LittleEndian")
		require.False(IsNativeBigEndian())
	default:
		require.Failf("Unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestEngineFor(t *testing.T) {
	require.Equal(t, binary.BigEndian, EngineFor(true))
	require.Equal(t, binary.LittleEndian, EngineFor(false))
}

func TestIsMSB(t *testing.T) {
	for _, msb := range []bool{true, false} {
		require.Equal(t, msb, IsMSB(EngineFor(msb)))
	}
}

func TestEngineByteLayout(t *testing.T) {
	t.Run("little endian puts LSB first", func(t *testing.T) {
		engine := EngineFor(false)
		require.Implements(t, (*EndianEngine)(nil), engine)

		buf := engine.AppendUint32(nil, 0x01020304)
		require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
		require.Equal(t, uint32(0x01020304), engine.Uint32(buf))
	})

	t.Run("big endian puts MSB first", func(t *testing.T) {
		engine := EngineFor(true)
		require.Implements(t, (*EndianEngine)(nil), engine)

		buf := engine.AppendUint32(nil, 0x01020304)
		require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)
		require.Equal(t, uint32(0x01020304), engine.Uint32(buf))
	})

	t.Run("uint64 round trip", func(t *testing.T) {
		var v uint64 = 0x0102030405060708
		little := EngineFor(false).AppendUint64(nil, v)
		big := EngineFor(true).AppendUint64(nil, v)

		require.NotEqual(t, little, big)
		require.Equal(t, v, EngineFor(false).Uint64(little))
		require.Equal(t, v, EngineFor(true).Uint64(big))
	})
}
