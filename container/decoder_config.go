package container

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/idf/errs"
	"github.com/arloliu/idf/format"
	"github.com/arloliu/idf/internal/options"
	"github.com/arloliu/idf/section"
)

// DecoderConfig holds the settings of a Decoder.
type DecoderConfig struct {
	logger       *zap.Logger
	compression  format.CompressionType
	maxBlockSize uint32
	lenientOrder bool
	memoryMap    bool
}

// NewDecoderConfig returns the default configuration: no logging, strict
// section order, automatic compression detection, no block size limit and
// plain file reads.
func NewDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		logger:      zap.NewNop(),
		compression: format.CompressionAuto,
	}
}

// Logger returns the configured logger.
func (c *DecoderConfig) Logger() *zap.Logger {
	return c.logger
}

// Compression returns the configured compression type.
func (c *DecoderConfig) Compression() format.CompressionType {
	return c.compression
}

func (c *DecoderConfig) setCompression(comp format.CompressionType) error {
	switch comp {
	case format.CompressionAuto, format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		c.compression = comp
		return nil
	default:
		return fmt.Errorf("%w: %s (0x%x)", errs.ErrInvalidCompression, comp, uint8(comp))
	}
}

func (c *DecoderConfig) readOptions() []section.ReadOption {
	if c.maxBlockSize == 0 {
		return nil
	}

	return []section.ReadOption{section.WithMaxBlockSize(c.maxBlockSize)}
}

// decompressLimit caps the decompressed image at two sections of the maximum
// block size. 0 means no limit.
func (c *DecoderConfig) decompressLimit() int64 {
	return 2 * int64(c.maxBlockSize)
}

// DecoderOption is a functional option for configuring Decoder.
type DecoderOption = options.Option[*DecoderConfig]

// WithLogger sets the logger used for section and clamping diagnostics.
// A nil logger disables logging. Default is a no-op logger.
func WithLogger(logger *zap.Logger) DecoderOption {
	return options.NoError(func(cfg *DecoderConfig) {
		if logger == nil {
			logger = zap.NewNop()
		}
		cfg.logger = logger
	})
}

// WithLenientSectionOrder makes a container whose sections are not Data then
// Offsets decode to zero records instead of failing with
// errs.ErrUnexpectedSectionOrder. Default is strict.
func WithLenientSectionOrder() DecoderOption {
	return options.NoError(func(cfg *DecoderConfig) {
		cfg.lenientOrder = true
	})
}

// WithMaxBlockSize rejects any section whose declared total size exceeds limit
// with errs.ErrBlockTooLarge. DecodeBytes and DecodeFile also reject compressed
// input that expands beyond twice the limit. 0 disables the limit, which is the
// default.
func WithMaxBlockSize(limit uint32) DecoderOption {
	return options.NoError(func(cfg *DecoderConfig) {
		cfg.maxBlockSize = limit
	})
}

// WithCompression sets the outer compression of the input.
//
// Available types: format.CompressionAuto, format.CompressionNone,
// format.CompressionZstd, format.CompressionS2, format.CompressionLZ4.
// Default is format.CompressionAuto. Only DecodeBytes and DecodeFile honor it;
// Decode always reads a plain container stream.
func WithCompression(comp format.CompressionType) DecoderOption {
	return options.New(func(cfg *DecoderConfig) error {
		return cfg.setCompression(comp)
	})
}

// WithMemoryMap makes DecodeFile map the file read-only instead of reading it
// into a heap buffer. Decoded records never reference the mapping.
func WithMemoryMap() DecoderOption {
	return options.NoError(func(cfg *DecoderConfig) {
		cfg.memoryMap = true
	})
}
