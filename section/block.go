package section

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/idf/errs"
	"github.com/arloliu/idf/format"
	"github.com/arloliu/idf/internal/hash"
	"github.com/arloliu/idf/internal/options"
)

// payloadChunk caps the initial payload buffer so an untrusted total_size
// cannot force a large allocation before the bytes actually arrive.
const payloadChunk = 64 * 1024

// Block is one decoded IDF section: its header, classification and payload.
//
// A Block is immutable once returned by ReadBlock or NewBlock.
type Block struct {
	header  Header
	kind    format.SectionKind
	payload []byte
}

// NewBlock builds a Block from a magic number and payload.
// The payload is referenced, not copied.
func NewBlock(magic [MagicSize]byte, payload []byte) Block {
	return Block{
		header:  NewHeader(magic, len(payload)),
		kind:    Classify(magic),
		payload: payload,
	}
}

// Header returns the section header.
func (b Block) Header() Header {
	return b.header
}

// Magic returns the 4-byte section tag.
func (b Block) Magic() [MagicSize]byte {
	return b.header.Magic
}

// TotalSize returns the declared section size, header included.
func (b Block) TotalSize() uint32 {
	return b.header.TotalSize
}

// Kind returns the section classification.
func (b Block) Kind() format.SectionKind {
	return b.kind
}

// Payload returns the section payload. Callers must not modify it.
func (b Block) Payload() []byte {
	return b.payload
}

// PayloadSize returns the payload length in bytes.
func (b Block) PayloadSize() int {
	return len(b.payload)
}

// Digest returns the xxHash64 of the payload.
func (b Block) Digest() uint64 {
	return hash.Digest(b.payload)
}

func (b Block) String() string {
	return fmt.Sprintf("Block(kind=%s, magic=% x, size=%d)", b.kind, b.header.Magic, b.header.TotalSize)
}

type readConfig struct {
	maxBlockSize uint32
}

// ReadOption configures ReadBlock.
type ReadOption = options.Option[*readConfig]

// WithMaxBlockSize rejects sections whose declared total size exceeds limit.
// A limit of 0 disables the check, which is the default.
func WithMaxBlockSize(limit uint32) ReadOption {
	return options.NoError(func(cfg *readConfig) {
		cfg.maxBlockSize = limit
	})
}

// ReadBlock reads exactly one section from r.
//
// On success r has advanced by the section's total size. When r is already
// exhausted, ReadBlock returns io.EOF; callers reading sections in a loop treat
// that as normal termination.
//
// Returns:
//   - Block: The decoded section (Unknown kind is not an error)
//   - error: io.EOF at end of input, ErrMalformedHeader for a short or inconsistent
//     header, ErrTruncatedPayload for a short payload, ErrBlockTooLarge when
//     WithMaxBlockSize is exceeded, or the underlying read error
func ReadBlock(r io.Reader, opts ...ReadOption) (Block, error) {
	cfg := &readConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return Block{}, err
	}

	var raw [HeaderSize]byte

	n, err := io.ReadFull(r, raw[:MagicSize])
	if err != nil {
		if errors.Is(err, io.EOF) && n == 0 {
			return Block{}, io.EOF
		}

		return Block{}, headerReadError("magic", n, MagicSize, err)
	}

	n, err = io.ReadFull(r, raw[MagicSize:])
	if err != nil {
		return Block{}, headerReadError("size field", n, SizeFieldSize, err)
	}

	header, err := ParseHeader(raw[:])
	if err != nil {
		return Block{}, err
	}

	if cfg.maxBlockSize > 0 && header.TotalSize > cfg.maxBlockSize {
		return Block{}, fmt.Errorf("%w: total size %d, limit %d",
			errs.ErrBlockTooLarge, header.TotalSize, cfg.maxBlockSize)
	}

	payloadLen, _ := header.PayloadSize()

	payload, err := readPayload(r, payloadLen)
	if err != nil {
		return Block{}, err
	}

	return Block{
		header:  header,
		kind:    header.Kind(),
		payload: payload,
	}, nil
}

// readPayload reads exactly n bytes, growing the buffer as data arrives.
func readPayload(r io.Reader, n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}

	buf := bytes.NewBuffer(make([]byte, 0, min(n, payloadChunk)))

	copied, err := io.CopyN(buf, r, int64(n))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: expected %d bytes, got %d", errs.ErrTruncatedPayload, n, copied)
		}

		return nil, fmt.Errorf("read section payload: %w", err)
	}

	payload := buf.Bytes()

	return payload[:n:n], nil
}

func headerReadError(field string, got, want int, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s has %d of %d bytes", errs.ErrMalformedHeader, field, got, want)
	}

	return fmt.Errorf("read section %s: %w", field, err)
}
