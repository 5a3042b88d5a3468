// Package section reads the self-describing sections of an IDF container.
//
// An IDF container is a sequence of sections. Every section starts with an
// 8-byte header followed by its payload:
//
//	┌──────────────────────────────────────────────┐
//	│ Magic (4 bytes)                              │
//	│  - 74 61 44 49: Data section                 │
//	│  - 54 4c 44 49: Offsets section              │
//	│  - anything else: Unknown                    │
//	├──────────────────────────────────────────────┤
//	│ TotalSize (4 bytes, uint32 little-endian)    │
//	│  - includes the 8 header bytes               │
//	├──────────────────────────────────────────────┤
//	│ Payload (TotalSize - 8 bytes)                │
//	└──────────────────────────────────────────────┘
//
// The payload of an Offsets section is itself structured:
//
//	┌──────────────────────────────────────────────┐
//	│ Reserved (12 bytes)                          │
//	├──────────────────────────────────────────────┤
//	│ Entry 0 (8 bytes)                            │
//	│  - Offset (uint32 little-endian)             │
//	│  - Reserved (4 bytes)                        │
//	├──────────────────────────────────────────────┤
//	│ Entry 1 ... Entry N-1                        │
//	└──────────────────────────────────────────────┘
//
// # Reading Sections
//
// ReadBlock consumes exactly one section from an io.Reader:
//
//	block, err := section.ReadBlock(r)
//	if errors.Is(err, io.EOF) {
//	    // no more sections
//	}
//
// A section with an unrecognized magic number is still read successfully and
// reported with format.KindUnknown. Structural problems are fatal:
//   - errs.ErrMalformedHeader: fewer than 8 header bytes, or TotalSize < 8
//   - errs.ErrTruncatedPayload: fewer payload bytes than TotalSize declares
//
// The payload is never silently truncated or padded.
//
// # Offset Table
//
// ParseOffsetTable turns an Offsets payload into the list of record boundaries
// consumed by the container package.
//
// # Thread Safety
//
// Block and Header are immutable values and are safe for concurrent use.
// ReadBlock itself is as safe as the reader passed to it.
package section
