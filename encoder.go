package exif

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/soypat/exifrw/tiff"
)

// Layout of the serialized TIFF stream:
//
//	header(8) | IFD0 | IFD0 data | Exif IFD | Exif data | GPS IFD | GPS data
//
// Each IFD is count(2) | records(12*count) | next(4). Out of line data is
// written after the directory that refers to it.

// Serialize encodes m as a TIFF stream, prefixed with the Exif APP1 header
// when m.MIME is MIMEJPEG. Wrapping the result in a JPEG segment is left to
// the caller.
//
// Entries of IFD0, Exif and GPS groups are written. Makernote and Interop
// entries are skipped. Serialize fails with ErrThumbnailUnsupported if any
// entry belongs to IFD1.
func (m *Metadata) Serialize() ([]byte, error) {
	order := m.order()
	var ifd0, exif, gps []*Entry
	for i := range m.Entries {
		e := &m.Entries[i]
		switch e.Group {
		case GroupIFD0:
			ifd0 = append(ifd0, e)
		case GroupIFD1:
			return nil, ErrThumbnailUnsupported
		case GroupExif:
			exif = append(exif, e)
		case GroupGPS:
			gps = append(gps, e)
		}
	}

	out := tiff.AppendHeader(nil, order)
	out, pointers, err := serializeIFD(out, order, ifd0)
	if err != nil {
		return nil, err
	}
	for _, sub := range []struct {
		group   Group
		entries []*Entry
	}{
		{group: GroupExif, entries: exif},
		{group: GroupGPS, entries: gps},
	} {
		slots := pointers[sub.group]
		if len(sub.entries) == 0 && len(slots) == 0 {
			continue
		}
		if len(slots) == 0 {
			return nil, fmt.Errorf("%w: %d %s entries", ErrMissingExifOffset, len(sub.entries), sub.group)
		}
		start := uint32(len(out))
		out, _, err = serializeIFD(out, order, sub.entries)
		if err != nil {
			return nil, err
		}
		for _, pos := range slots {
			order.PutUint32(out[pos:], start)
		}
	}
	if uint64(len(out)) > math.MaxUint32 {
		return nil, fmt.Errorf("exif: serialized size %d overflows TIFF offsets", len(out))
	}
	if m.MIME == MIMEJPEG {
		return append(append(make([]byte, 0, len(exifHeader)+len(out)), exifHeader...), out...), nil
	}
	return out, nil
}

// serializeIFD appends a directory holding entries to out, followed by the
// out of line data of its records. It returns the positions of the value
// fields of inline ExifOffset and GPSOffset records, keyed by the group
// they point to.
func serializeIFD(out []byte, order binary.ByteOrder, entries []*Entry) ([]byte, map[Group][]int, error) {
	if len(entries) > math.MaxUint16 {
		return out, nil, fmt.Errorf("exif: %d entries overflow IFD entry count", len(entries))
	}
	out = tiff.AppendU16(out, order, uint16(len(entries)))
	var (
		patches  []patch
		pointers map[Group][]int
		err      error
	)
	for _, e := range entries {
		out, patches, err = e.IFD.appendTo(out, order, patches)
		if err != nil {
			return out, nil, err
		}
		if e.Group != GroupIFD0 || !e.IFD.InIFD() {
			continue
		}
		var target Group
		switch {
		case e.IFD.Namespace != NamespaceStandard:
			continue
		case e.IFD.ID == idExifOffset:
			target = GroupExif
		case e.IFD.ID == idGPSOffset:
			target = GroupGPS
		default:
			continue
		}
		if pointers == nil {
			pointers = make(map[Group][]int)
		}
		pointers[target] = append(pointers[target], len(out)-tiff.ValueSize)
	}
	// No IFD1 chain.
	out = append(out, 0, 0, 0, 0)
	for _, p := range patches {
		order.PutUint32(out[p.pos:], uint32(len(out)))
		out = append(out, p.payload...)
	}
	return out, pointers, nil
}
