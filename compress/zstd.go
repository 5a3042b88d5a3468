package compress

// ZstdCompressor handles Zstandard framed files.
//
// The default build uses the pure Go klauspost/compress implementation. Building
// with the gozstd tag switches to the cgo valyala/gozstd bindings.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
