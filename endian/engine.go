// Package endian provides the byte order engine used for fixed-width fields.
//
// The rank code blob header and the persisted game records are always written
// little-endian. The engine type still combines ByteOrder and AppendByteOrder so
// encoders can either patch fields in place or append them:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, bitCount)
//	engine.PutUint32(buf[0:4], bitCount)
//
// All functions in this package are safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
