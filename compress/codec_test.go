package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/idf/errs"
	"github.com/arloliu/idf/format"
)

// sampleContainer mimics a plain IDF container image: a data section header
// followed by repetitive record bytes.
func sampleContainer() []byte {
	data := []byte{0x74, 0x61, 0x44, 0x49, 0x00, 0x10, 0x00, 0x00}
	return append(data, bytes.Repeat([]byte("record\x00"), 512)...)
}

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		compression format.CompressionType
		want        string
	}{
		{format.CompressionAuto, "Auto"},
		{format.CompressionNone, "None"},
		{format.CompressionZstd, "Zstd"},
		{format.CompressionS2, "S2"},
		{format.CompressionLZ4, "LZ4"},
		{format.CompressionType(0xFF), "Unknown"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.compression.String())
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	original := sampleContainer()

	for _, compression := range types {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			compressed, err := codec.Compress(original)
			require.NoError(t, err)
			require.Equal(t, compression, Detect(compressed))

			if compression != format.CompressionNone {
				require.Less(t, len(compressed), len(original))
			}

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, original, restored)
		})
	}
}

func TestCodecs_ReuseFromPool(t *testing.T) {
	for _, codec := range []Codec{NewZstdCompressor(), NewLZ4Compressor()} {
		for i := 0; i < 5; i++ {
			input := bytes.Repeat([]byte{byte('a' + i)}, 1000+i)

			compressed, err := codec.Compress(input)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, input, restored)
		}
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, codec := range []Codec{NewZstdCompressor(), NewS2Compressor(), NewLZ4Compressor()} {
		out, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, out)
	}
}

func TestCodecs_CorruptInput(t *testing.T) {
	tests := []struct {
		name  string
		codec Codec
		data  []byte
	}{
		{"zstd", NewZstdCompressor(), append([]byte{0x28, 0xB5, 0x2F, 0xFD}, bytes.Repeat([]byte{0xFF}, 32)...)},
		{"s2", NewS2Compressor(), append([]byte{0xFF, 0x06, 0x00, 0x00, 'S', '2', 's', 'T', 'w', 'O'}, 0x00, 0xFF, 0xFF, 0x00, 0x01)},
		{"lz4", NewLZ4Compressor(), append([]byte{0x04, 0x22, 0x4D, 0x18}, 0xFF, 0xFF, 0xFF)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.codec.Decompress(tt.data)
			require.ErrorIs(t, err, errs.ErrDecompress)
		})
	}
}

func TestLZ4Compressor_TruncatedFrame(t *testing.T) {
	compressed, err := NewLZ4Compressor().Compress(sampleContainer())
	require.NoError(t, err)

	// 7 bytes is a complete frame header without any block or end mark.
	for _, cut := range []int{5, 7} {
		_, err := NewLZ4Compressor().Decompress(compressed[:cut])
		require.ErrorIs(t, err, errs.ErrDecompress, "cut at %d", cut)
	}
}

func TestLZ4Compressor_EmptyFrame(t *testing.T) {
	// magic, FLG (version 01, block independence), BD (64KB blocks), HC, end mark
	frame := []byte{0x04, 0x22, 0x4D, 0x18, 0x60, 0x40, 0x82, 0x00, 0x00, 0x00, 0x00}
	require.True(t, lz4EmptyFrame(frame))

	out, err := NewLZ4Compressor().Decompress(frame)
	require.NoError(t, err)
	require.Empty(t, out)

	require.False(t, lz4EmptyFrame(frame[:7]))
}

func TestDecompressLimit(t *testing.T) {
	original := sampleContainer()

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			codec, err := GetCodec(compression)
			require.NoError(t, err)

			compressed, err := codec.Compress(original)
			require.NoError(t, err)

			out, used, err := DecompressLimit(compressed, format.CompressionAuto, int64(len(original)))
			require.NoError(t, err)
			require.Equal(t, compression, used)
			require.Equal(t, original, out)

			_, _, err = DecompressLimit(compressed, format.CompressionAuto, int64(len(original)-1))
			if compression == format.CompressionNone {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, errs.ErrBlockTooLarge)
				require.NotErrorIs(t, err, errs.ErrDecompress)
			}

			out, _, err = DecompressLimit(compressed, compression, 0)
			require.NoError(t, err)
			require.Equal(t, original, out)
		})
	}
}

func TestGetCodec(t *testing.T) {
	codec, err := GetCodec(format.CompressionNone)
	require.NoError(t, err)
	require.IsType(t, NoOpCompressor{}, codec)

	_, err = GetCodec(format.CompressionAuto)
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	_, err = GetCodec(format.CompressionType(0x9))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestDecompress(t *testing.T) {
	original := sampleContainer()

	t.Run("auto detects compression", func(t *testing.T) {
		compressed, err := NewLZ4Compressor().Compress(original)
		require.NoError(t, err)

		out, used, err := Decompress(compressed, format.CompressionAuto)
		require.NoError(t, err)
		require.Equal(t, format.CompressionLZ4, used)
		require.Equal(t, original, out)
	})

	t.Run("auto on plain container", func(t *testing.T) {
		out, used, err := Decompress(original, format.CompressionAuto)
		require.NoError(t, err)
		require.Equal(t, format.CompressionNone, used)
		require.Equal(t, original, out)
	})

	t.Run("forced type mismatch", func(t *testing.T) {
		_, used, err := Decompress(original, format.CompressionZstd)
		require.ErrorIs(t, err, errs.ErrDecompress)
		require.Equal(t, format.CompressionZstd, used)
	})

	t.Run("invalid type", func(t *testing.T) {
		_, _, err := Decompress(original, format.CompressionType(0x7))
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want format.CompressionType
	}{
		{"empty", nil, format.CompressionNone},
		{"data section", []byte{0x74, 0x61, 0x44, 0x49, 0x08, 0x00, 0x00, 0x00}, format.CompressionNone},
		{"offsets section", []byte{0x54, 0x4c, 0x44, 0x49, 0x08, 0x00, 0x00, 0x00}, format.CompressionNone},
		{"zstd", []byte{0x28, 0xB5, 0x2F, 0xFD, 0x00}, format.CompressionZstd},
		{"lz4", []byte{0x04, 0x22, 0x4D, 0x18, 0x64}, format.CompressionLZ4},
		{"s2 stream", []byte{0xFF, 0x06, 0x00, 0x00, 'S', '2', 's', 'T', 'w', 'O'}, format.CompressionS2},
		{"snappy stream", []byte{0xFF, 0x06, 0x00, 0x00, 's', 'N', 'a', 'P', 'p', 'Y'}, format.CompressionS2},
		{"truncated zstd magic", []byte{0x28, 0xB5, 0x2F}, format.CompressionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Detect(tt.data))
		})
	}
}
