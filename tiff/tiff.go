// Package tiff provides the low level pieces of the TIFF container format
// shared by the EXIF decoder and encoder: header signatures and bounds
// checked reads of fixed width values from untrusted byte slices.
package tiff

import "encoding/binary"

const (
	// HeaderSize is the size of the TIFF header: byte order mark, magic
	// number and the offset to the first IFD.
	HeaderSize = 8
	// EntrySize is the size of a single IFD record:
	// tag(2) | format(2) | count(4) | value or offset(4).
	EntrySize = 12
	// ValueSize is the size of the value/offset field of an IFD record.
	// Values that fit in it are stored in place.
	ValueSize = 4
	// Magic is the number following the byte order mark.
	Magic = 42
)

var (
	// LittleEndianSignature starts an Intel ordered TIFF stream.
	LittleEndianSignature = [4]byte{'I', 'I', Magic, 0}
	// BigEndianSignature starts a Motorola ordered TIFF stream.
	BigEndianSignature = [4]byte{'M', 'M', 0, Magic}
)

// Signature returns the 4 byte TIFF signature for order.
func Signature(order binary.ByteOrder) [4]byte {
	if order == binary.LittleEndian {
		return LittleEndianSignature
	}
	return BigEndianSignature
}

// SignatureOrder returns the byte order selected by the first 4 bytes of b.
// ok is false if b is shorter than 4 bytes or does not start with a TIFF signature.
func SignatureOrder(b []byte) (order binary.ByteOrder, ok bool) {
	if len(b) < 4 {
		return nil, false
	}
	switch [4]byte{b[0], b[1], b[2], b[3]} {
	case LittleEndianSignature:
		return binary.LittleEndian, true
	case BigEndianSignature:
		return binary.BigEndian, true
	}
	return nil, false
}

// AppendHeader appends a TIFF header for order whose first IFD follows
// immediately after the header.
func AppendHeader(b []byte, order binary.ByteOrder) []byte {
	sig := Signature(order)
	b = append(b, sig[:]...)
	return AppendU32(b, order, HeaderSize)
}

// AppendU16 appends v to b in the given byte order.
func AppendU16(b []byte, order binary.ByteOrder, v uint16) []byte {
	var buf [2]byte
	order.PutUint16(buf[:], v)
	return append(b, buf[:]...)
}

// AppendU32 appends v to b in the given byte order.
func AppendU32(b []byte, order binary.ByteOrder, v uint32) []byte {
	var buf [4]byte
	order.PutUint32(buf[:], v)
	return append(b, buf[:]...)
}
