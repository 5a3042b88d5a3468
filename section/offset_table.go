package section

import "github.com/arloliu/idf/endian"

// OffsetTable is the ordered list of record boundaries read from an Offsets section.
type OffsetTable []uint32

// ParseOffsetTable extracts the record offsets from an Offsets section payload.
//
// Layout of the payload:
//
//	Bytes      | Field    | Description
//	-----------|----------|------------------------------------
//	0-11       | Reserved | Table header, ignored
//	12+8i-15+8i| Offset   | uint32, end boundary of record i
//	16+8i-19+8i| Reserved | Ignored
//
// An entry yields an offset as long as its first 4 bytes are present, so a final
// half entry still counts. The number of trailing bytes too short to hold an
// offset is returned as leftover; they are otherwise ignored.
//
// Returns:
//   - OffsetTable: Offsets in file order (empty when the payload has no entries)
//   - int: Trailing bytes that did not form an offset
func ParseOffsetTable(payload []byte) (OffsetTable, int) {
	if len(payload) <= OffsetTableReserve {
		return OffsetTable{}, 0
	}

	table := payload[OffsetTableReserve:]
	engine := endian.IDFEngine()

	offsets := make(OffsetTable, 0, (len(table)+OffsetEntrySize-1)/OffsetEntrySize)

	pos := 0
	for ; pos+OffsetValueSize <= len(table); pos += OffsetEntrySize {
		offsets = append(offsets, engine.Uint32(table[pos:pos+OffsetValueSize]))
	}

	leftover := 0
	if pos < len(table) {
		leftover = len(table) - pos
	}

	return offsets, leftover
}

// Len returns the number of offsets in the table.
func (t OffsetTable) Len() int {
	return len(t)
}
