// Package endian provides the byte order used to read and write IDF structures.
//
// Every multi-byte integer in an IDF container (section sizes and offset table
// entries) is stored little-endian. Code in this module goes through an
// EndianEngine instead of naming binary.LittleEndian directly, so the header and
// offset table parsers share a single definition of the wire byte order.
//
//	engine := endian.IDFEngine()
//	size := engine.Uint32(hdr[4:8])
//	buf = engine.AppendUint32(buf, size)
//
// All functions in this package are safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// IDFEngine returns the byte order of the IDF container format.
func IDFEngine() EndianEngine {
	return GetLittleEndianEngine()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
