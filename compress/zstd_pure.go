//go:build !gozstd

package compress

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/idf/errs"
)

// zstdDecoderPool pools zstd decoders; klauspost decoders run allocation free after warmup.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// Compress compresses the input data into a single zstd frame.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses zstd framed data.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", errs.ErrDecompress, err)
	}

	return out, nil
}

// decompressLimit streams the frame through a dedicated decoder so reading can
// stop past limit; pooled decoders only expose DecodeAll.
func (c ZstdCompressor) decompressLimit(data []byte, limit int64) ([]byte, error) {
	if limit <= 0 {
		return c.Decompress(data)
	}

	if len(data) == 0 {
		return nil, nil
	}

	decoder, err := zstd.NewReader(bytes.NewReader(data), zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", errs.ErrDecompress, err)
	}
	defer decoder.Close()

	out, err := readAllLimit(decoder, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", errs.ErrDecompress, err)
	}

	if err := checkLimit(out, limit); err != nil {
		return nil, err
	}

	return out, nil
}
