// Package endian provides byte order utilities for serializing multi-byte
// integers that travel alongside a packed bit stream.
//
// The packed stream itself defines its own sub-byte ordering (LSB-first) and
// never depends on host byte order. Byte order only matters for the
// out-of-band values varbit emits next to a stream, such as a checksum
// digest appended by sink.Checksum.AppendSum.
//
// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface so append-style serialization does not need a
// scratch buffer:
//
//	engine := endian.GetLittleEndianEngine()
//	footer = engine.AppendUint64(footer, digest)
//
// The returned engines are the immutable binary.LittleEndian and
// binary.BigEndian values and are safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary. It is satisfied by binary.LittleEndian and
// binary.BigEndian, so any existing code holding one of those works
// unchanged.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
// Little-endian is the varbit default, matching the LSB-first orientation of
// the packed stream.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
// It rarely needs to be used unless interoperability with big-endian
// consumers is required.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
