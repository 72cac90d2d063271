package exif

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/dsoprea/go-logging"
	"github.com/soypat/exifrw/tiff"
)

var decoderLogger = log.NewLogger("exif.decoder")

// exifHeader starts the APP1 payload of JPEG files carrying EXIF data.
var exifHeader = []byte("Exif\x00\x00")

const (
	markerSOI  = 0xd8
	markerEOI  = 0xd9
	markerSOS  = 0xda
	markerAPP1 = 0xe1
)

// Decode parses the EXIF metadata of a TIFF stream or a JPEG file.
// Anomalies that do not prevent decoding, such as a tag with an unexpected
// type or count, are returned as warnings alongside the result.
// Decode does not retain b.
func Decode(b []byte) (*Metadata, []string, error) {
	var d decoder
	md, err := d.decode(b)
	return md, d.warnings, err
}

// DecodeFile reads the named file and decodes it with Decode.
// Read failures are returned as *IOError.
func DecodeFile(name string) (*Metadata, []string, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, nil, &IOError{Name: name, Err: err}
	}
	return Decode(b)
}

// DecodeReader reads r to EOF and decodes the result with Decode.
func DecodeReader(r io.Reader) (*Metadata, []string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, &IOError{Name: "<reader>", Err: err}
	}
	return Decode(b)
}

type fileType uint8

const (
	fileUnknown fileType = iota
	fileTIFF
	fileJPEG
)

// detectType sniffs the container format from its first bytes.
func detectType(b []byte) fileType {
	if _, ok := tiff.SignatureOrder(b); ok {
		return fileTIFF
	}
	if len(b) >= 2 && b[0] == 0xff && b[1] == markerSOI {
		return fileJPEG
	}
	return fileUnknown
}

// findEmbeddedTIFF walks the marker segments of a JPEG file and returns the
// TIFF stream held by the first APP1 segment starting with the Exif header.
// The walk stops at the start of scan, where image data begins.
func findEmbeddedTIFF(b []byte) ([]byte, error) {
	pos := 2 // Skip SOI.
	for {
		if pos+2 > len(b) {
			return nil, errors.New("no EXIF segment before end of file")
		}
		if b[pos] != 0xff {
			return nil, fmt.Errorf("expected marker at offset %d, found %#02x", pos, b[pos])
		}
		marker := b[pos+1]
		switch {
		case marker == 0xff:
			pos++ // Fill byte.
			continue
		case marker == markerSOS || marker == markerEOI:
			return nil, errors.New("no EXIF segment before image data")
		case marker == 0x01 || (marker >= 0xd0 && marker <= 0xd7):
			pos += 2 // Standalone markers carry no length.
			continue
		}
		size, ok := tiff.ReadU16(binary.BigEndian, b[pos+2:])
		if !ok {
			return nil, fmt.Errorf("segment %#02x length truncated", marker)
		}
		if size < 2 {
			return nil, fmt.Errorf("segment %#02x has bad length %d", marker, size)
		}
		start, end := pos+4, pos+2+int(size)
		if end > len(b) {
			return nil, fmt.Errorf("segment %#02x truncated (%d < %d)", marker, len(b), end)
		}
		if marker == markerAPP1 && bytes.HasPrefix(b[start:end], exifHeader) {
			decoderLogger.Debugf(nil, "EXIF APP1 segment at offset %d, %d bytes", pos, size)
			return b[start+len(exifHeader) : end], nil
		}
		pos = end
	}
}

type decoder struct {
	order binary.ByteOrder
	// contents is the TIFF stream. Offsets in IFD records are relative to its start.
	contents []byte
	entries  []Entry
	warnings []string
}

func (d *decoder) decode(b []byte) (*Metadata, error) {
	var mime string
	switch detectType(b) {
	case fileTIFF:
		mime = MIMETIFF
	case fileJPEG:
		mime = MIMEJPEG
		tiffData, err := findEmbeddedTIFF(b)
		if err != nil {
			return nil, fmt.Errorf("%w: JPEG without EXIF section: %s", ErrFileTypeUnknown, err)
		}
		b = tiffData
	default:
		return nil, ErrFileTypeUnknown
	}
	if err := d.parseTIFF(b); err != nil {
		return nil, err
	}
	return &Metadata{MIME: mime, Entries: d.entries, Order: d.order}, nil
}

// parseTIFF validates the TIFF header and walks the directories.
func (d *decoder) parseTIFF(b []byte) error {
	if len(b) < tiff.HeaderSize {
		return ErrTiffTruncated
	}
	order, ok := tiff.SignatureOrder(b)
	if !ok {
		return fmt.Errorf("%w: preamble is %x %x %x %x", ErrTiffBadPreamble, b[0], b[1], b[2], b[3])
	}
	d.order = order
	d.contents = b
	ifd0, _ := tiff.ReadU32(order, b[4:])
	return d.parseIFDs(ifd0)
}

// parseIFD reads count raw records from b. Top level directories are
// followed by the offset of the next directory in the chain, which is
// returned as next.
func parseIFD(sub bool, order binary.ByteOrder, count uint16, b []byte) (entries []IFDEntry, next uint32, ok bool) {
	tableSize := int(count) * tiff.EntrySize
	if len(b) < tableSize {
		return nil, 0, false
	}
	entries = make([]IFDEntry, count)
	for i := range entries {
		rec := b[i*tiff.EntrySize:]
		e := &entries[i]
		e.Namespace = NamespaceStandard
		e.Order = order
		e.ID = ID(order.Uint16(rec))
		e.Type = Type(order.Uint16(rec[2:]))
		e.Count = order.Uint32(rec[4:])
		copy(e.IFDData[:], rec[8:12])
	}
	if !sub {
		next, ok = tiff.ReadU32(order, b[tableSize:])
		if !ok {
			return nil, 0, false
		}
	}
	return entries, next, true
}

// parseExifIFD parses the directory at offset, resolves the data of its
// records and appends them as entries of group. Records whose data lies
// outside the stream are dropped. The resolved records are returned.
func (d *decoder) parseExifIFD(offset uint32, group Group) ([]IFDEntry, error) {
	size := uint64(len(d.contents))
	start := uint64(offset) + 2
	if size < start {
		return nil, fmt.Errorf("%w: truncated %s at dir entry count (%d < %d)", ErrExifIfdTruncated, group, size, start)
	}
	count := d.order.Uint16(d.contents[offset:])
	end := start + uint64(count)*tiff.EntrySize
	if size < end {
		return nil, fmt.Errorf("%w: truncated %s at dir listing (%d < %d)", ErrExifIfdTruncated, group, size, end)
	}
	raw, _, ok := parseIFD(true, d.order, count, d.contents[start:end])
	if !ok {
		return nil, ErrIfdTruncated
	}
	decoderLogger.Debugf(nil, "%s: %d records at offset %d", group, count, offset)
	resolved := raw[:0]
	for _, ifdEntry := range raw {
		if !ifdEntry.ResolveData(d.contents) {
			d.warnings = append(d.warnings, fmt.Sprintf("EXIF tag %x in %s dropped: %d bytes at offset %d go past end of data (%d bytes)",
				uint16(ifdEntry.ID), group, ifdEntry.Length(), ifdEntry.DataOffset(), size))
			continue
		}
		resolved = append(resolved, ifdEntry)
		d.entries = append(d.entries, d.parseEntry(ifdEntry, group))
	}
	return resolved, nil
}

// parseIFDs walks IFD0 and the Exif and GPS sub-IFDs it points to, then
// runs postprocessing over the complete entry list.
func (d *decoder) parseIFDs(ifd0Offset uint32) error {
	ifd0, err := d.parseExifIFD(ifd0Offset, GroupIFD0)
	if err != nil {
		return err
	}
	// IFD0 is a top level directory: it must be followed by a next pointer.
	count := d.order.Uint16(d.contents[ifd0Offset:])
	recordsStart := uint64(ifd0Offset) + 2
	if _, _, ok := parseIFD(false, d.order, count, d.contents[recordsStart:]); !ok {
		return ErrIfdTruncated
	}

	var followed [2]bool
	for i := range ifd0 {
		ptr := &ifd0[i]
		var group Group
		var kind int
		switch ptr.ID {
		case idExifOffset:
			group, kind = GroupExif, 0
		case idGPSOffset:
			group, kind = GroupGPS, 1
		default:
			continue
		}
		if followed[kind] || !ptr.InIFD() {
			continue
		}
		followed[kind] = true
		offset := ptr.DataOffset()
		if uint64(offset) > uint64(len(d.contents)) {
			return fmt.Errorf("%w: %s sub-IFD offset %d goes past end of data (%d bytes)",
				ErrExifIfdTruncated, group, offset, len(d.contents))
		}
		if _, err := d.parseExifIFD(offset, group); err != nil {
			return err
		}
	}
	postprocess(d.entries)
	return nil
}

// parseEntry decodes the value of a resolved record and looks it up in the
// tag dictionary. Mismatches against the dictionary are recorded as warnings.
func (d *decoder) parseEntry(ifdEntry IFDEntry, group Group) Entry {
	value := NewValue(ifdEntry)
	e := Entry{
		Namespace: ifdEntry.Namespace,
		IFD:       ifdEntry,
		Tag:       TagUnknownToMe,
		Value:     value,
		Group:     group,
	}
	def, ok := tags[ifdEntry.ID]
	if !ok {
		e.Readable = value.String()
		return e
	}
	e.Tag = MakeTag(ifdEntry.Namespace, ifdEntry.ID)
	e.Unit = def.Unit
	e.Readable, _ = def.readable(value)

	if def.Type != ifdEntry.Type {
		d.warnings = append(d.warnings, fmt.Sprintf("EXIF tag %x %d (%s), expected format %d (%s), found %d (%s)",
			uint16(ifdEntry.ID), uint16(ifdEntry.ID), def.Description, def.Type, def.Type, ifdEntry.Type, ifdEntry.Type))
	}
	if ifdEntry.Count < def.count[0] || ifdEntry.Count > def.count[1] {
		d.warnings = append(d.warnings, fmt.Sprintf("EXIF tag %x %d (%s), format %d, expected count %d..%d found %d",
			uint16(ifdEntry.ID), uint16(ifdEntry.ID), def.Name, def.Type, def.count[0], def.count[1], ifdEntry.Count))
	}
	return e
}
