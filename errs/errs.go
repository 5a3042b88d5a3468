// Package errs defines the sentinel errors returned by the idf packages.
//
// Errors are wrapped with context using fmt.Errorf and the %w verb, so callers
// should match them with errors.Is rather than comparing directly.
package errs

import "errors"

// Block reader errors.
var (
	// ErrMalformedHeader is returned when a section header cannot be read in full
	// or declares a total size smaller than the header itself.
	ErrMalformedHeader = errors.New("malformed section header")
	// ErrTruncatedPayload is returned when the source ends before the declared payload.
	ErrTruncatedPayload = errors.New("truncated section payload")
	// ErrBlockTooLarge is returned when a section declares a size above the configured limit.
	ErrBlockTooLarge = errors.New("section exceeds maximum block size")
)

// Container decoder errors.
var (
	ErrMissingDataBlock       = errors.New("missing data section")
	ErrMissingOffsetsBlock    = errors.New("missing offsets section")
	ErrUnexpectedSectionOrder = errors.New("unexpected section order")
	ErrDecoderUsed            = errors.New("decoder already used")
)

// Configuration and compression errors.
var (
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrDecompress         = errors.New("decompression failed")
)
