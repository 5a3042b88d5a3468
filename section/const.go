package section

// Magic numbers, as the 4 bytes appear in the file.
var (
	MagicData    = [MagicSize]byte{0x74, 0x61, 0x44, 0x49} // tag of the Data section
	MagicOffsets = [MagicSize]byte{0x54, 0x4c, 0x44, 0x49} // tag of the Offsets section
)

// offset and section sizes in the container file
const (
	MagicSize          = 4                         // magic tag size in bytes
	SizeFieldSize      = 4                         // total_size field size in bytes
	HeaderSize         = MagicSize + SizeFieldSize // fixed section header size in bytes
	OffsetTableReserve = 12                        // reserved bytes at the start of an Offsets payload
	OffsetEntrySize    = 8                         // stride of one offset table entry
	OffsetValueSize    = 4                         // meaningful leading bytes of an offset table entry
)
