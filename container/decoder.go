package container

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/arloliu/idf/compress"
	"github.com/arloliu/idf/errs"
	"github.com/arloliu/idf/format"
	"github.com/arloliu/idf/internal/options"
	"github.com/arloliu/idf/section"
)

type decodeState uint8

const (
	stateAwaitingData decodeState = iota
	stateAwaitingOffsets
	stateDone
)

func (s decodeState) String() string {
	switch s {
	case stateAwaitingData:
		return "AwaitingDataBlock"
	case stateAwaitingOffsets:
		return "AwaitingOffsetsBlock"
	default:
		return "Done"
	}
}

// Decoder decodes an IDF container into its records.
//
// The decoder walks a fixed state machine: it reads the Data section, then the
// Offsets section, then splits the Data payload using the offset table.
//
// Note: The Decoder is NOT thread-safe and NOT reusable. After one Decode,
// DecodeBytes or DecodeFile call every further call returns errs.ErrDecoderUsed.
type Decoder struct {
	cfg   *DecoderConfig
	state decodeState
}

// NewDecoder creates a Decoder with the given options.
//
// Returns:
//   - *Decoder: New decoder ready for a single decode
//   - error: Invalid option values, e.g. errs.ErrInvalidCompression
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	cfg := NewDecoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Decoder{cfg: cfg, state: stateAwaitingData}, nil
}

// Decode reads a plain (uncompressed) container from r and returns its records.
//
// Returns:
//   - Records: Records in offset table order (empty, not nil, for an empty table)
//   - error: errs.ErrMissingDataBlock, errs.ErrMissingOffsetsBlock,
//     errs.ErrUnexpectedSectionOrder, or a section read error
//     (errs.ErrMalformedHeader, errs.ErrTruncatedPayload, errs.ErrBlockTooLarge)
func (d *Decoder) Decode(r io.Reader) (Records, error) {
	if d.state != stateAwaitingData {
		return nil, errs.ErrDecoderUsed
	}
	defer func() { d.state = stateDone }()

	dataBlock, err := d.readSection(r, errs.ErrMissingDataBlock)
	if err != nil {
		return nil, err
	}
	d.state = stateAwaitingOffsets

	offsetsBlock, err := d.readSection(r, errs.ErrMissingOffsetsBlock)
	if err != nil {
		return nil, err
	}

	if dataBlock.Kind() != format.KindData || offsetsBlock.Kind() != format.KindOffsets {
		if !d.cfg.lenientOrder {
			return nil, fmt.Errorf("%w: got %s then %s, want %s then %s", errs.ErrUnexpectedSectionOrder,
				dataBlock.Kind(), offsetsBlock.Kind(), format.KindData, format.KindOffsets)
		}

		d.cfg.logger.Warn("unexpected section order, no records extracted",
			zap.Stringer("first", dataBlock.Kind()),
			zap.Stringer("second", offsetsBlock.Kind()),
		)

		return Records{}, nil
	}

	offsets, leftover := section.ParseOffsetTable(offsetsBlock.Payload())
	if leftover > 0 {
		d.cfg.logger.Warn("ignoring trailing bytes in offset table", zap.Int("bytes", leftover))
	}

	payloadSize := dataBlock.PayloadSize()
	records := SplitRecordsFunc(dataBlock.Payload(), offsets, func(index int, offset uint32) {
		d.cfg.logger.Warn("record offset out of range, clamped",
			zap.Int("record", index),
			zap.Uint32("offset", offset),
			zap.Int("payload_size", payloadSize),
		)
	})

	d.cfg.logger.Debug("container decoded", zap.Int("records", len(records)))

	return records, nil
}

// DecodeBytes decodes a container image held in memory.
//
// The outer compression is resolved according to WithCompression (detected by
// default) before the sections are parsed. With WithMaxBlockSize set, the
// decompressed image may not exceed twice the limit.
//
// A section magic may coincide with a compression magic. When a detected
// compression fails to decompress, data is decoded as a plain container; if
// that does not yield two sections the decompression error is returned.
func (d *Decoder) DecodeBytes(data []byte) (Records, error) {
	if d.state != stateAwaitingData {
		return nil, errs.ErrDecoderUsed
	}

	plain, used, err := compress.DecompressLimit(data, d.cfg.compression, d.cfg.decompressLimit())
	if err != nil {
		if d.cfg.compression == format.CompressionAuto && errors.Is(err, errs.ErrDecompress) {
			return d.decodeUndetected(data, used, err)
		}

		d.state = stateDone

		return nil, err
	}

	if used != format.CompressionNone {
		d.cfg.logger.Debug("decompressed container",
			zap.Stringer("compression", used),
			zap.Int("compressed_size", len(data)),
			zap.Int("size", len(plain)),
		)
	}

	return d.Decode(bytes.NewReader(plain))
}

// decodeUndetected decodes data as a plain container after a detected
// compression failed with decompressErr.
func (d *Decoder) decodeUndetected(data []byte, detected format.CompressionType, decompressErr error) (Records, error) {
	d.cfg.logger.Debug("input did not decompress, decoding as plain container",
		zap.Stringer("detected", detected),
		zap.Error(decompressErr),
	)

	records, err := d.Decode(bytes.NewReader(data))
	if err != nil && !errors.Is(err, errs.ErrUnexpectedSectionOrder) {
		return nil, decompressErr
	}

	return records, err
}

// readSection reads the section expected in the current state and maps end of
// input to missing.
func (d *Decoder) readSection(r io.Reader, missing error) (section.Block, error) {
	block, err := section.ReadBlock(r, d.cfg.readOptions()...)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return section.Block{}, missing
		}

		return section.Block{}, fmt.Errorf("%s: %w", d.state, err)
	}

	if ce := d.cfg.logger.Check(zap.DebugLevel, "read section"); ce != nil {
		ce.Write(
			zap.Stringer("state", d.state),
			zap.Stringer("kind", block.Kind()),
			zap.Uint32("total_size", block.TotalSize()),
			zap.Uint64("digest", block.Digest()),
		)
	}

	return block, nil
}
