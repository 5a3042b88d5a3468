package compress

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/idf/endian"
	"github.com/arloliu/idf/errs"
)

// LZ4 frame descriptor layout: magic(4) FLG(1) BD(1) [content size(8)] [dict id(4)] HC(1).
const (
	lz4MinHeaderSize   = 7
	lz4FlagContentSize = 0x08
	lz4FlagDictID      = 0x01
)

// lz4WriterPool pools lz4 frame writers; a writer is Reset onto a new buffer for each use.
var lz4WriterPool = sync.Pool{
	New: func() any {
		return lz4.NewWriter(nil)
	},
}

// LZ4Compressor handles LZ4 frame files.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 frame codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data into an LZ4 frame.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, _ := lz4WriterPool.Get().(*lz4.Writer)
	defer lz4WriterPool.Put(w)
	w.Reset(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress decompresses an LZ4 frame.
//
// The frame header is validated up front, and a frame cut off before its first
// block is reported as corrupt rather than as empty output.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	return c.decompressLimit(data, 0)
}

func (c LZ4Compressor) decompressLimit(data []byte, limit int64) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	if ok, err := lz4.ValidFrameHeader(data); !ok || err != nil {
		if err == nil {
			err = lz4.ErrInvalidFrame
		}

		return nil, fmt.Errorf("%w: lz4: %w", errs.ErrDecompress, err)
	}

	out, err := readAllLimit(lz4.NewReader(bytes.NewReader(data)), limit)
	if err != nil {
		return nil, fmt.Errorf("%w: lz4: %w", errs.ErrDecompress, err)
	}

	if len(out) == 0 && !lz4EmptyFrame(data) {
		return nil, fmt.Errorf("%w: lz4: frame ends before end mark", errs.ErrDecompress)
	}

	if err := checkLimit(out, limit); err != nil {
		return nil, err
	}

	return out, nil
}

// lz4EmptyFrame reports whether data is a frame header directly followed by the
// end mark, the encoding of empty content.
func lz4EmptyFrame(data []byte) bool {
	if len(data) < lz4MinHeaderSize {
		return false
	}

	flg := data[4]
	headerSize := lz4MinHeaderSize
	if flg&lz4FlagContentSize != 0 {
		headerSize += 8
	}
	if flg&lz4FlagDictID != 0 {
		headerSize += 4
	}

	if len(data) < headerSize+4 {
		return false
	}

	return endian.GetLittleEndianEngine().Uint32(data[headerSize:headerSize+4]) == 0
}
