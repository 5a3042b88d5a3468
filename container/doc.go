// Package container decodes IDF container files into their records.
//
// An IDF container holds exactly two sections, always in this order:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Data section                                        │
//	│  - header: 74 61 44 49 | total_size (u32 LE)        │
//	│  - payload: record bytes, each followed by 1 byte   │
//	│    terminator                                       │
//	├─────────────────────────────────────────────────────┤
//	│ Offsets section                                     │
//	│  - header: 54 4c 44 49 | total_size (u32 LE)        │
//	│  - payload: 12 reserved bytes, then 8-byte entries  │
//	│    whose first 4 bytes are the record end offsets   │
//	└─────────────────────────────────────────────────────┘
//
// # Decoding Workflow
//
//	decoder, err := container.NewDecoder(
//	    container.WithLogger(logger),
//	    container.WithMaxBlockSize(64<<20),
//	)
//	if err != nil {
//	    return err
//	}
//
//	records, err := decoder.DecodeFile("capture.idf.zst")
//	if err != nil {
//	    return err
//	}
//
//	for _, rec := range records {
//	    // use rec
//	}
//
// Decode reads a plain container from any io.Reader. DecodeBytes and
// DecodeFile additionally strip an outer zstd, S2 or LZ4 layer, detected from
// the leading bytes unless WithCompression forces a type.
//
// # Record Boundaries
//
// Given offsets o[0..n), record i is payload[o[i-1] : o[i]-1] with o[-1] = 0.
// The byte at o[i]-1 is the record terminator and is dropped. Offsets that fall
// outside the payload or go backwards are clamped, producing a short or empty
// record, and reported as a warning through the configured logger.
//
// # Errors
//
// Structural failures abort the whole decode; no partial result is returned:
//   - errs.ErrMissingDataBlock / errs.ErrMissingOffsetsBlock: input ended early
//   - errs.ErrUnexpectedSectionOrder: sections were not Data then Offsets
//     (suppressed by WithLenientSectionOrder, which yields zero records)
//   - errs.ErrMalformedHeader, errs.ErrTruncatedPayload, errs.ErrBlockTooLarge
//     from the section reader
package container
