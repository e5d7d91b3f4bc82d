// Package endian provides byte order utilities for the binary record codec.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine interface.
//
// Blob files record the byte order of their binary payload in the ByteOrderMSB
// header key. Writers always use the host's native order:
//
//	engine := endian.GetNativeEngine()
//	msb := endian.IsMSB(engine)
//
// Readers select the engine from the recorded flag:
//
//	engine := endian.EngineFor(header.ByteOrderMSB)
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

var nativeEngine = detectNative()

// detectNative uses a fixed integer value to determine the host's byte order.
func detectNative() EndianEngine {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// GetNativeEngine returns the engine matching the host's byte order.
func GetNativeEngine() EndianEngine {
	return nativeEngine
}

// IsNativeBigEndian reports whether the host stores the most significant byte first.
func IsNativeBigEndian() bool {
	return IsMSB(nativeEngine)
}

// EngineFor returns the big-endian engine when msb is true, little-endian otherwise.
func EngineFor(msb bool) EndianEngine {
	if msb {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsMSB reports whether engine writes the most significant byte first.
func IsMSB(engine EndianEngine) bool {
	return engine == binary.BigEndian
}
