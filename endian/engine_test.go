package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDFEngine(t *testing.T) {
	engine := IDFEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.LittleEndian, engine)

	// A section size of 18 is stored as 12 00 00 00.
	require.Equal(t, uint32(18), engine.Uint32([]byte{0x12, 0x00, 0x00, 0x00}))
	require.Equal(t, []byte{0x12, 0x00, 0x00, 0x00}, engine.AppendUint32(nil, 18))
}

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	var value uint32 = 0x01020304
	encoded := engine.AppendUint32(nil, value)

	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, encoded)
	require.Equal(t, value, engine.Uint32(encoded))
}
