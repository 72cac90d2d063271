package exif

import (
	"encoding/binary"
	"math"

	"github.com/soypat/exifrw/rational"
	"github.com/soypat/exifrw/tiff"
)

// rec is a record for building test TIFF streams. Data longer than 4 bytes
// is laid out after the directory. count defaults to the number of
// elements data holds.
type rec struct {
	id    ID
	tp    Type
	count uint32
	data  []byte
}

func (r rec) elements() uint32 {
	if r.count != 0 {
		return r.count
	}
	return uint32(len(r.data) / int(r.tp.Size()))
}

// appendDir appends a directory of recs and its out of line data to b.
// ptrs maps record indices to sub-IFD offsets written in their value field.
func appendDir(b []byte, order binary.ByteOrder, recs []rec, ptrs map[int]uint32) []byte {
	b = tiff.AppendU16(b, order, uint16(len(recs)))
	dataStart := len(b) + len(recs)*tiff.EntrySize + 4
	var data []byte
	for i, r := range recs {
		b = tiff.AppendU16(b, order, uint16(r.id))
		b = tiff.AppendU16(b, order, uint16(r.tp))
		b = tiff.AppendU32(b, order, r.elements())
		switch off, isPtr := ptrs[i]; {
		case isPtr:
			b = tiff.AppendU32(b, order, off)
		case len(r.data) <= 4:
			var field [4]byte
			copy(field[:], r.data)
			b = append(b, field[:]...)
		default:
			b = tiff.AppendU32(b, order, uint32(dataStart+len(data)))
			data = append(data, r.data...)
		}
	}
	b = append(b, 0, 0, 0, 0)
	return append(b, data...)
}

// dirSize returns the encoded size of appendDir's output for recs.
func dirSize(recs []rec) int {
	n := 2 + len(recs)*tiff.EntrySize + 4
	for _, r := range recs {
		if len(r.data) > 4 {
			n += len(r.data)
		}
	}
	return n
}

// buildTIFF lays out a TIFF stream with IFD0 followed by optional Exif and
// GPS sub-IFDs. Pointer records to non-nil sub-IFDs are appended to IFD0.
func buildTIFF(order binary.ByteOrder, ifd0, exif, gps []rec) []byte {
	ifd0 = append([]rec(nil), ifd0...)
	ptrs := make(map[int]uint32)
	var subs [][]rec
	if exif != nil {
		ptrs[len(ifd0)] = 0
		ifd0 = append(ifd0, rec{id: idExifOffset, tp: TypeUint32, count: 1})
		subs = append(subs, exif)
	}
	if gps != nil {
		ptrs[len(ifd0)] = 0
		ifd0 = append(ifd0, rec{id: idGPSOffset, tp: TypeUint32, count: 1})
		subs = append(subs, gps)
	}
	next := uint32(tiff.HeaderSize + dirSize(ifd0))
	i := len(ifd0) - len(subs)
	for _, sub := range subs {
		ptrs[i] = next
		next += uint32(dirSize(sub))
		i++
	}
	b := tiff.AppendHeader(nil, order)
	b = appendDir(b, order, ifd0, ptrs)
	for _, sub := range subs {
		b = appendDir(b, order, sub, nil)
	}
	return b
}

// frameJPEG wraps an Exif APP1 payload in a minimal JPEG file.
func frameJPEG(app1 []byte) []byte {
	b := []byte{0xff, markerSOI, 0xff, markerAPP1}
	b = tiff.AppendU16(b, binary.BigEndian, uint16(len(app1)+2))
	b = append(b, app1...)
	return append(b, 0xff, markerEOI)
}

func jpegWithTIFF(t []byte) []byte {
	return frameJPEG(append(append([]byte(nil), exifHeader...), t...))
}

func u16s(order binary.ByteOrder, v ...uint16) []byte {
	var b []byte
	for _, x := range v {
		b = tiff.AppendU16(b, order, x)
	}
	return b
}

func u32s(order binary.ByteOrder, v ...uint32) []byte {
	var b []byte
	for _, x := range v {
		b = tiff.AppendU32(b, order, x)
	}
	return b
}

func urats(order binary.ByteOrder, v ...uint32) []byte {
	var b []byte
	for i := 0; i+1 < len(v); i += 2 {
		b = rational.AppendU(b, order, rational.URational{Numerator: v[i], Denominator: v[i+1]})
	}
	return b
}

func irats(order binary.ByteOrder, v ...int32) []byte {
	var b []byte
	for i := 0; i+1 < len(v); i += 2 {
		b = rational.AppendI(b, order, rational.IRational{Numerator: v[i], Denominator: v[i+1]})
	}
	return b
}

func f64s(v ...float64) []byte {
	var b []byte
	for _, x := range v {
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(x))
	}
	return b
}

func ascii(s string) []byte { return append([]byte(s), 0) }

// sampleTIFF exercises every group and both inline and out of line data.
func sampleTIFF(order binary.ByteOrder) []byte {
	ifd0 := []rec{
		{id: 0x010f, tp: TypeString, data: ascii("Acme Cameras")},
		{id: idOrientation, tp: TypeUint16, count: 1, data: u16s(order, 6)},
		{id: idXResolution, tp: TypeURational64, data: urats(order, 72, 1)},
		{id: idYResolution, tp: TypeURational64, data: urats(order, 72, 1)},
		{id: idResolutionUnit, tp: TypeUint16, count: 1, data: u16s(order, 2)},
		{id: 0xc4a5, tp: TypeUndefined, data: []byte("private data")},
	}
	exif := []rec{
		{id: 0x829a, tp: TypeURational64, data: urats(order, 1, 250)},
		{id: 0x829d, tp: TypeURational64, data: urats(order, 28, 10)},
		{id: 0x9000, tp: TypeUndefined, data: []byte("0232")},
		{id: 0x9203, tp: TypeRational64, data: irats(order, -1, 1)},
		{id: 0x9209, tp: TypeUint16, count: 1, data: u16s(order, 0x19)},
		{id: 0xa432, tp: TypeURational64, data: urats(order, 24, 1, 70, 1, 28, 10, 0, 0)},
		{id: 0x9286, tp: TypeUndefined, data: append([]byte("ASCII\x00\x00\x00"), "hello"...)},
	}
	gps := []rec{
		{id: idGPSLatitudeRef, tp: TypeString, data: ascii("N")},
		{id: idGPSLatitude, tp: TypeURational64, data: urats(order, 37, 1, 46, 1, 2964, 100)},
		{id: idGPSLongitudeRef, tp: TypeString, data: ascii("W")},
		{id: idGPSLongitude, tp: TypeURational64, data: urats(order, 122, 1, 25, 1, 984, 100)},
		{id: idGPSAltitudeRef, tp: TypeUint8, data: []byte{1}},
		{id: idGPSAltitude, tp: TypeURational64, data: urats(order, 15, 10)},
		{id: 0x0007, tp: TypeURational64, data: urats(order, 14, 1, 5, 1, 305, 10)},
	}
	return buildTIFF(order, ifd0, exif, gps)
}
