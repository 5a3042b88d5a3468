package container

import (
	"github.com/arloliu/idf/internal/hash"
	"github.com/arloliu/idf/section"
)

// Records is the ordered sequence of byte records decoded from a container.
//
// Each record is a sub-slice of the Data section payload with its capacity
// capped at its length, so appending to one record never overwrites the next.
type Records [][]byte

// Len returns the number of records.
func (r Records) Len() int {
	return len(r)
}

// Strings returns the records converted to strings.
func (r Records) Strings() []string {
	out := make([]string, len(r))
	for i, rec := range r {
		out[i] = string(rec)
	}

	return out
}

// Digests returns the xxHash64 of each record, in record order.
func (r Records) Digests() []uint64 {
	out := make([]uint64, len(r))
	for i, rec := range r {
		out[i] = hash.Digest(rec)
	}

	return out
}

// SplitRecords cuts payload into one record per offset.
//
// Record i spans payload[start:end] where start is the previous offset (0 for the
// first record) and end is offsets[i]-1: the byte just before each recorded
// offset is a terminator and is not part of the record. Both bounds are clamped
// into the payload and end is never below start, so malformed offsets produce
// short or empty records instead of an error.
func SplitRecords(payload []byte, offsets section.OffsetTable) Records {
	return SplitRecordsFunc(payload, offsets, nil)
}

// SplitRecordsFunc is SplitRecords with a callback invoked for every record whose
// bounds had to be clamped. onClamp may be nil.
func SplitRecordsFunc(payload []byte, offsets section.OffsetTable, onClamp func(index int, offset uint32)) Records {
	records := make(Records, 0, len(offsets))

	size := int64(len(payload))
	last := int64(0)

	for i, off := range offsets {
		start := min(last, size)
		end := int64(off) - 1

		clamped := last > size
		switch {
		case end < start:
			end = start
			clamped = true
		case end > size:
			end = size
			clamped = true
		}

		if clamped && onClamp != nil {
			onClamp(i, off)
		}

		records = append(records, payload[start:end:end])
		last = int64(off)
	}

	return records
}
