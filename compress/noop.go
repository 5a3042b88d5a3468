package compress

// NoOpCompressor passes data through unchanged. It is used for plain,
// uncompressed container files.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as-is. The result shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is. The result shares memory with the input.
// Nothing expands, so DecompressLimit does not apply its limit here.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
