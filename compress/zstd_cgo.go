//go:build gozstd

package compress

import (
	"bytes"
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/arloliu/idf/errs"
)

// Compress compresses the input data into a single zstd frame.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decompresses zstd framed data.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", errs.ErrDecompress, err)
	}

	return out, nil
}

func (c ZstdCompressor) decompressLimit(data []byte, limit int64) ([]byte, error) {
	if limit <= 0 {
		return c.Decompress(data)
	}

	if len(data) == 0 {
		return nil, nil
	}

	zr := gozstd.NewReader(bytes.NewReader(data))
	defer zr.Release()

	out, err := readAllLimit(zr, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", errs.ErrDecompress, err)
	}

	if err := checkLimit(out, limit); err != nil {
		return nil, err
	}

	return out, nil
}
