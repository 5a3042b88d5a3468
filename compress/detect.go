package compress

import (
	"bytes"

	"github.com/arloliu/idf/format"
)

var (
	zstdMagic      = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4FrameMagic  = []byte{0x04, 0x22, 0x4D, 0x18}
	s2StreamID     = []byte{0xFF, 0x06, 0x00, 0x00, 'S', '2', 's', 'T', 'w', 'O'}
	snappyStreamID = []byte{0xFF, 0x06, 0x00, 0x00, 's', 'N', 'a', 'P', 'p', 'Y'}
)

// Detect identifies the compression of a container image by its leading bytes.
//
// Recognized formats:
//   - Zstandard frame: 28 B5 2F FD
//   - LZ4 frame: 04 22 4D 18
//   - S2 or Snappy stream identifier chunk
//
// Anything else, including a plain IDF container, is CompressionNone.
func Detect(data []byte) format.CompressionType {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return format.CompressionZstd
	case bytes.HasPrefix(data, lz4FrameMagic):
		return format.CompressionLZ4
	case bytes.HasPrefix(data, s2StreamID), bytes.HasPrefix(data, snappyStreamID):
		return format.CompressionS2
	default:
		return format.CompressionNone
	}
}
