// Package compress provides the codecs used to read compressed IDF container files.
//
// IDF containers are frequently archived with a general-purpose compressor. The
// container package detects and removes that outer layer before parsing
// sections, so callers can hand over a .idf, .idf.zst, .idf.lz4 or .idf.s2 file
// without caring which it is.
//
// # Supported Algorithms
//
//	Type                   | Wire format             | Library
//	-----------------------|-------------------------|-----------------------------
//	format.CompressionNone | plain container         | -
//	format.CompressionZstd | Zstandard frame         | klauspost/compress/zstd (gozstd tag: valyala/gozstd)
//	format.CompressionS2   | S2 / Snappy stream      | klauspost/compress/s2
//	format.CompressionLZ4  | LZ4 frame               | pierrec/lz4/v4
//
// # Detection
//
// Detect inspects the leading bytes:
//
//	compression := compress.Detect(data)
//	codec, err := compress.GetCodec(compression)
//	plain, err := codec.Decompress(data)
//
// or in one step:
//
//	plain, used, err := compress.Decompress(data, format.CompressionAuto)
//
// The Data and Offsets section magics never collide with the recognized
// compression magics. A container whose first section carries some other magic
// can still look compressed; the container decoder retries such input as a plain
// container when decompression fails.
//
// # Output Limit
//
// DecompressLimit stops reading once the output grows past a limit and returns
// errs.ErrBlockTooLarge, so a small compressed file cannot expand without bound:
//
//	plain, used, err := compress.DecompressLimit(data, format.CompressionAuto, 64<<20)
//
// # Thread Safety
//
// All codecs are stateless values backed by sync.Pool and are safe for concurrent use.
package compress
