package section

import (
	"fmt"
	"math"

	"github.com/arloliu/idf/endian"
	"github.com/arloliu/idf/errs"
	"github.com/arloliu/idf/format"
)

// Header is the fixed 8-byte header at the start of every IDF section.
//
//	Bytes | Field     | Type   | Description
//	------|-----------|--------|-------------------------------------
//	0-3   | Magic     | [4]u8  | Section tag
//	4-7   | TotalSize | uint32 | Section size including this header
type Header struct {
	Magic     [MagicSize]byte
	TotalSize uint32
}

// NewHeader returns the header of a section with the given magic and payload length.
func NewHeader(magic [MagicSize]byte, payloadLen int) Header {
	return Header{
		Magic:     magic,
		TotalSize: uint32(payloadLen + HeaderSize), //nolint: gosec
	}
}

// Kind classifies the header by its magic number.
func (h Header) Kind() format.SectionKind {
	return Classify(h.Magic)
}

// PayloadSize returns the payload length declared by the header.
//
// It returns ErrMalformedHeader when TotalSize is smaller than the header itself,
// and ErrBlockTooLarge when the payload size overflows int (32-bit platforms).
func (h Header) PayloadSize() (int, error) {
	if h.TotalSize < HeaderSize {
		return 0, fmt.Errorf("%w: total size %d is smaller than header size %d",
			errs.ErrMalformedHeader, h.TotalSize, HeaderSize)
	}

	payloadSize := h.TotalSize - HeaderSize
	if uint64(payloadSize) > math.MaxInt {
		return 0, fmt.Errorf("%w: payload size %d does not fit in int", errs.ErrBlockTooLarge, payloadSize)
	}

	return int(payloadSize), nil
}

// Bytes serializes the header into an 8-byte slice.
func (h Header) Bytes() []byte {
	b := make([]byte, 0, HeaderSize)
	b = append(b, h.Magic[:]...)

	return endian.IDFEngine().AppendUint32(b, h.TotalSize)
}

// ParseHeader parses a section header from the start of data.
//
// Returns:
//   - Header: Parsed header
//   - error: ErrMalformedHeader if data is shorter than HeaderSize or the declared
//     total size is smaller than HeaderSize
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrMalformedHeader, HeaderSize, len(data))
	}

	var h Header
	copy(h.Magic[:], data[:MagicSize])
	h.TotalSize = endian.IDFEngine().Uint32(data[MagicSize:HeaderSize])

	if _, err := h.PayloadSize(); err != nil {
		return Header{}, err
	}

	return h, nil
}

// Classify maps a magic number to its section kind.
// Unrecognized magic numbers yield KindUnknown; this is not an error.
func Classify(magic [MagicSize]byte) format.SectionKind {
	switch magic {
	case MagicData:
		return format.KindData
	case MagicOffsets:
		return format.KindOffsets
	default:
		return format.KindUnknown
	}
}
