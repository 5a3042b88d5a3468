package compress

import (
	"fmt"
	"io"

	"github.com/arloliu/idf/errs"
	"github.com/arloliu/idf/format"
)

// Compressor compresses a whole IDF container image.
//
// Memory management:
//   - Returned slice is owned by the caller
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a container image produced by the matching Compressor.
//
// Decompress returns an error wrapping errs.ErrDecompress if the input is
// corrupted or was produced by a different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// limitDecompressor is implemented by codecs that decompress incrementally and
// can stop once the output exceeds limit bytes. A limit <= 0 means no limit.
type limitDecompressor interface {
	decompressLimit(data []byte, limit int64) ([]byte, error)
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// CompressionAuto is not a codec; resolve it with Detect first.
//
// Returns:
//   - Codec: Shared codec instance, safe for concurrent use
//   - error: ErrInvalidCompression for unknown types
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}

// Decompress decompresses data with the given compression type.
// CompressionAuto detects the type from the leading bytes of data.
//
// Returns:
//   - []byte: Decompressed data (data itself for CompressionNone)
//   - format.CompressionType: The type actually used
//   - error: ErrInvalidCompression or a decompression error
func Decompress(data []byte, compressionType format.CompressionType) ([]byte, format.CompressionType, error) {
	return DecompressLimit(data, compressionType, 0)
}

// DecompressLimit is Decompress with a ceiling on the decompressed size.
//
// Parameters:
//   - data: Compressed input
//   - compressionType: Compression of data, or CompressionAuto to detect it
//   - limit: Maximum decompressed size in bytes; <= 0 disables the check.
//     CompressionNone input is returned as-is regardless of limit
//
// Returns:
//   - []byte: Decompressed data
//   - format.CompressionType: The type actually used
//   - error: ErrInvalidCompression, ErrBlockTooLarge when the output exceeds limit,
//     or an error wrapping ErrDecompress
func DecompressLimit(data []byte, compressionType format.CompressionType, limit int64) ([]byte, format.CompressionType, error) {
	if compressionType == format.CompressionAuto {
		compressionType = Detect(data)
	}

	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, compressionType, err
	}

	var out []byte
	if ld, ok := codec.(limitDecompressor); ok && limit > 0 {
		out, err = ld.decompressLimit(data, limit)
	} else {
		out, err = codec.Decompress(data)
	}

	if err != nil {
		return nil, compressionType, err
	}

	return out, compressionType, nil
}

// readAllLimit reads r to the end, or to one byte past limit when limit > 0.
func readAllLimit(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}

	return io.ReadAll(io.LimitReader(r, limit+1))
}

func checkLimit(out []byte, limit int64) error {
	if limit > 0 && int64(len(out)) > limit {
		return fmt.Errorf("%w: decompressed size exceeds %d bytes", errs.ErrBlockTooLarge, limit)
	}

	return nil
}
