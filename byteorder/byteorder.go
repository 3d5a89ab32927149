// Package byteorder implements the fixed-width integer (de)serialisation
// contract of spec.md §6.4. It is one of the few concerns in this module
// built on the standard library rather than a third-party dependency: no
// example repo in the retrieved corpus wraps encoding/binary's fixed-width
// integer codec in anything beyond direct calls, so there is no idiom to
// import instead of stdlib here (see DESIGN.md).
package byteorder

import "encoding/binary"

// Order selects big- or little-endian encoding.
type Order int

const (
	LittleEndian Order = iota
	BigEndian
)

func impl(o Order) binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// WriteU8 appends a single byte.
func WriteU8(buf []byte, v uint8) []byte { return append(buf, v) }

// WriteU16 appends a 16-bit integer in the given order.
func WriteU16(buf []byte, o Order, v uint16) []byte {
	var tmp [2]byte
	impl(o).PutUint16(tmp[:], v)
	return append(buf, tmp[:]...)
}

// WriteU32 appends a 32-bit integer in the given order.
func WriteU32(buf []byte, o Order, v uint32) []byte {
	var tmp [4]byte
	impl(o).PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

// WriteU64 appends a 64-bit integer in the given order.
func WriteU64(buf []byte, o Order, v uint64) []byte {
	var tmp [8]byte
	impl(o).PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}

// ReadU16 reads a 16-bit integer from the front of p.
func ReadU16(p []byte, o Order) uint16 { return impl(o).Uint16(p) }

// ReadU32 reads a 32-bit integer from the front of p.
func ReadU32(p []byte, o Order) uint32 { return impl(o).Uint32(p) }

// ReadU64 reads a 64-bit integer from the front of p.
func ReadU64(p []byte, o Order) uint64 { return impl(o).Uint64(p) }
