// Package idf decodes IDF container files into the byte records they were built from.
//
// An IDF container is two self-describing sections: a Data section holding the
// concatenated records and an Offsets section holding the table of record
// boundaries. Decoding reads both sections, validates their headers and sizes,
// and slices the Data payload at each boundary.
//
// # Core Features
//
//   - Strict structural validation: short headers, undersized or truncated
//     sections abort the decode with a typed error
//   - Explicit section order check (Data then Offsets), with an opt-in lenient mode
//   - Permissive record boundaries: out-of-range offsets are clamped, not fatal
//   - Transparent handling of zstd, S2 and LZ4 compressed container files
//   - Optional memory-mapped file input and structured logging via zap
//
// # Basic Usage
//
// Decoding a file:
//
//	import "github.com/arloliu/idf"
//
//	records, err := idf.DecodeFile("capture.idf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i, rec := range records {
//	    fmt.Printf("record %d: %q\n", i, rec)
//	}
//
// Decoding from memory or any reader:
//
//	records, err := idf.DecodeBytes(data)
//	records, err := idf.Decode(r)
//
// Errors are matched with errors.Is against the sentinels in the errs package:
//
//	if errors.Is(err, errs.ErrTruncatedPayload) {
//	    // the file was cut short
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the container
// package. Use container directly for single-use decoders with options, and
// section for reading individual sections.
package idf

import (
	"io"

	"github.com/arloliu/idf/container"
)

// Decode reads a plain IDF container from r and returns its records.
//
// Parameters:
//   - r: Source positioned at the start of the Data section
//   - opts: Optional decoder configuration (see container.DecoderOption)
//
// Returns:
//   - container.Records: Decoded records in offset table order
//   - error: Invalid options or any decode error
func Decode(r io.Reader, opts ...container.DecoderOption) (container.Records, error) {
	decoder, err := container.NewDecoder(opts...)
	if err != nil {
		return nil, err
	}

	return decoder.Decode(r)
}

// DecodeBytes decodes an IDF container held in memory. A zstd, S2 or LZ4
// compressed image is detected and decompressed first unless
// container.WithCompression says otherwise.
func DecodeBytes(data []byte, opts ...container.DecoderOption) (container.Records, error) {
	decoder, err := container.NewDecoder(opts...)
	if err != nil {
		return nil, err
	}

	return decoder.DecodeBytes(data)
}

// DecodeFile decodes the IDF container file at path.
//
// Example:
//
//	records, err := idf.DecodeFile("capture.idf.zst",
//	    container.WithMemoryMap(),
//	    container.WithLogger(logger),
//	)
func DecodeFile(path string, opts ...container.DecoderOption) (container.Records, error) {
	decoder, err := container.NewDecoder(opts...)
	if err != nil {
		return nil, err
	}

	return decoder.DecodeFile(path)
}
