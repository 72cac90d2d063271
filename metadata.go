package exif

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/soypat/exifrw/rational"
)

// Entry is a decoded EXIF field.
type Entry struct {
	Namespace Namespace
	// IFD is the raw record the entry was decoded from. Callers may inspect
	// it to interpret entries whose Tag is TagUnknownToMe.
	IFD   IFDEntry
	Tag   Tag
	Value Value
	// Unit of Value, "none" for unitless known tags and empty for unknown ones.
	Unit string
	// Readable is Value rendered for humans, with enumerations named and
	// related tags combined. Empty if the value has an unexpected shape.
	Readable string
	Group    Group
}

// String returns a human readable representation of the entry and its value.
func (e *Entry) String() string {
	return fmt.Sprintf("%s (%s): %s", e.Tag.String(), e.IFD.Type.String(), e.Readable)
}

// Equal reports whether e and other are the same entry. The values of
// ExifOffset and GPSOffset entries are not compared: their stored offset
// only says a sub-IFD exists.
func (e *Entry) Equal(other *Entry) bool {
	if e.Namespace != other.Namespace || e.Tag != other.Tag || e.Group != other.Group ||
		e.Unit != other.Unit || !e.IFD.Equal(&other.IFD) {
		return false
	}
	if e.IFD.isSubIFDPointer() {
		return true
	}
	return e.Readable == other.Readable && ValuesEqual(e.Value, other.Value)
}

// Int returns the first element of an integer valued entry.
func (e *Entry) Int() (int64, error) {
	if e.Value == nil {
		return 0, errors.New("nil entry value")
	}
	v, ok := Int(e.Value, 0)
	if !ok {
		return 0, fmt.Errorf("entry %s did not contain integer type: %T", e.Tag, e.Value)
	}
	return v, nil
}

// Float returns the first element of a float, rational or integer valued entry.
func (e *Entry) Float() (float64, error) {
	if e.Value == nil {
		return 0, errors.New("nil entry value")
	}
	v, ok := Float(e.Value, 0)
	if !ok {
		return 0, fmt.Errorf("entry %s did not contain numeric type: %T", e.Tag, e.Value)
	}
	return v, nil
}

// Rational returns the first element of a rational valued entry.
func (e *Entry) Rational() (rational.Rational, error) {
	switch v := e.Value.(type) {
	case URationals:
		if len(v) > 0 {
			return v[0], nil
		}
	case IRationals:
		if len(v) > 0 {
			return v[0], nil
		}
	case nil:
		return nil, errors.New("nil entry value")
	default:
		return nil, fmt.Errorf("entry %s did not contain a rational type: %T", e.Tag, e.Value)
	}
	return nil, fmt.Errorf("entry %s is empty", e.Tag)
}

// Metadata is the EXIF content of a container. It owns its entries.
type Metadata struct {
	// MIME is MIMEJPEG or MIMETIFF and selects the Serialize output framing.
	MIME    string
	Entries []Entry
	// Order is the byte order of the TIFF stream.
	Order binary.ByteOrder
}

// NewMetadata returns metadata for serializing entries. A nil order
// defaults to big endian.
func NewMetadata(mime string, entries []Entry, order binary.ByteOrder) *Metadata {
	if order == nil {
		order = binary.BigEndian
	}
	return &Metadata{MIME: mime, Entries: entries, Order: order}
}

// Get returns the first entry with the given tag.
func (m *Metadata) Get(tag Tag) (*Entry, bool) {
	for i := range m.Entries {
		if m.Entries[i].Tag == tag {
			return &m.Entries[i], true
		}
	}
	return nil, false
}

// Equal reports whether m and other have the same MIME type, byte order
// and pairwise equal entries.
func (m *Metadata) Equal(other *Metadata) bool {
	if m.MIME != other.MIME || m.order() != other.order() || len(m.Entries) != len(other.Entries) {
		return false
	}
	for i := range m.Entries {
		if !m.Entries[i].Equal(&other.Entries[i]) {
			return false
		}
	}
	return true
}

func (m *Metadata) order() binary.ByteOrder {
	if m.Order == nil {
		return binary.BigEndian
	}
	return m.Order
}
