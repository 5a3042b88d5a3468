package compress

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/idf/errs"
)

// S2Compressor handles S2 stream files. Snappy framed streams are accepted on
// decompression as well, since S2 readers understand them.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 stream codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data into an S2 stream.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w := s2.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress decompresses an S2 or Snappy stream.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	return c.decompressLimit(data, 0)
}

func (c S2Compressor) decompressLimit(data []byte, limit int64) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := readAllLimit(s2.NewReader(bytes.NewReader(data)), limit)
	if err != nil {
		return nil, fmt.Errorf("%w: s2: %w", errs.ErrDecompress, err)
	}

	if err := checkLimit(out, limit); err != nil {
		return nil, err
	}

	return out, nil
}
