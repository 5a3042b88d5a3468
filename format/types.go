package format

type (
	SectionKind     uint8
	CompressionType uint8
)

const (
	KindUnknown SectionKind = 0x0 // KindUnknown is any section whose magic is not recognized.
	KindData    SectionKind = 0x1 // KindData is the section holding the raw record bytes.
	KindOffsets SectionKind = 0x2 // KindOffsets is the section holding the record offset table.

	CompressionAuto CompressionType = 0x0 // CompressionAuto detects the compression from the input bytes.
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 stream compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 frame compression.
)

func (k SectionKind) String() string {
	switch k {
	case KindData:
		return "Data"
	case KindOffsets:
		return "Offsets"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionAuto:
		return "Auto"
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
