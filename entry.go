package exif

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/soypat/exifrw/tiff"
)

// IFDEntry is a single 12 byte IFD record plus the data it refers to.
type IFDEntry struct {
	Namespace Namespace
	ID        ID
	Type      Type
	Count     uint32
	// IFDData is the value/offset field as found in the record. It holds the
	// data itself when InIFD is true and an offset into the TIFF stream otherwise.
	IFDData [tiff.ValueSize]byte
	// Data is the resolved data of the entry, see ResolveData.
	Data  []byte
	Order binary.ByteOrder
}

// Length returns the size in bytes of the entry's data.
func (e *IFDEntry) Length() uint64 {
	return uint64(e.Type.Size()) * uint64(e.Count)
}

// InIFD reports whether the data fits in the record's value field.
func (e *IFDEntry) InIFD() bool {
	return e.Length() <= tiff.ValueSize
}

// DataOffset interprets the value field as an offset into the TIFF stream.
func (e *IFDEntry) DataOffset() uint32 {
	return e.order().Uint32(e.IFDData[:])
}

// ResolveData sets Data from the value field or, for out of line data,
// from the TIFF stream container. It returns false if the data lies
// outside container.
func (e *IFDEntry) ResolveData(container []byte) bool {
	if e.InIFD() {
		e.Data = append(e.Data[:0], e.IFDData[:]...)
		return true
	}
	start := uint64(e.DataOffset())
	end := start + e.Length()
	if end > uint64(len(container)) {
		return false
	}
	e.Data = append(e.Data[:0], container[start:end]...)
	return true
}

// Equal reports whether e and other describe the same record. The value
// field is not compared since out of line data may live at any offset, and
// the data of sub-IFD pointers is ignored altogether.
func (e *IFDEntry) Equal(other *IFDEntry) bool {
	if e.Namespace != other.Namespace || e.ID != other.ID || e.Type != other.Type ||
		e.Count != other.Count || e.order() != other.order() {
		return false
	}
	return e.isSubIFDPointer() || bytes.Equal(e.Data, other.Data)
}

func (e *IFDEntry) isSubIFDPointer() bool {
	return e.Namespace == NamespaceStandard && (e.ID == idExifOffset || e.ID == idGPSOffset)
}

func (e *IFDEntry) order() binary.ByteOrder {
	if e.Order == nil {
		return binary.BigEndian
	}
	return e.Order
}

// patch is a pending write of an out of line payload. The 4 bytes at pos
// are backfilled with the payload's final offset.
type patch struct {
	pos     int
	payload []byte
}

// appendTo appends the 12 byte record of e to out in the stream byte order.
// Out of line data is not written: a zero placeholder is appended in its
// place and a patch carrying the data is added to patches.
func (e *IFDEntry) appendTo(out []byte, order binary.ByteOrder, patches []patch) ([]byte, []patch, error) {
	if e.Namespace != NamespaceStandard {
		return out, patches, ErrUnsupportedNamespace
	}
	out = tiff.AppendU16(out, order, uint16(e.ID))
	out = tiff.AppendU16(out, order, uint16(e.Type))
	out = tiff.AppendU32(out, order, e.Count)
	if e.InIFD() {
		var field [tiff.ValueSize]byte
		copy(field[:], e.Data)
		return append(out, field[:]...), patches, nil
	}
	if e.Length() > math.MaxUint32 {
		return out, patches, fmt.Errorf("exif: %s data length %d overflows TIFF offsets", e.ID, e.Length())
	}
	payload := make([]byte, e.Length())
	copy(payload, e.Data)
	out = append(out, 0, 0, 0, 0)
	patches = append(patches, patch{pos: len(out) - tiff.ValueSize, payload: payload})
	return out, patches, nil
}
