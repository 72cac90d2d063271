// Package exif decodes and re-encodes EXIF metadata stored in TIFF image
// file directories (IFDs), either as a bare TIFF stream or embedded in the
// APP1 segment of a JPEG file.
//
// Decoding walks IFD0 and the Exif and GPS sub-IFDs it points to and returns
// a flat list of entries. Serializing that list produces a TIFF stream which
// decodes back to equal entries.
package exif

import (
	"fmt"
	"strconv"

	"github.com/soypat/exifrw/rational"
)

//go:generate go run ./cmd/codegen -o exifid/exifid.go

// MIME types of the containers understood by Decode and produced by Serialize.
const (
	MIMETIFF = "image/tiff"
	MIMEJPEG = "image/jpeg"
)

// Type is the set of all types one may encounter when parsing EXIF data.
// Values are the TIFF field type codes. Codes outside 1..12 are kept as is
// and treated as opaque bytes.
type Type uint16

const (
	TypeUnknown Type = iota
	// TypeUint8 can be found as Byte type in EXIF spec.
	TypeUint8
	// TypeString a.k.a. ASCII.
	TypeString
	TypeUint16
	TypeUint32
	// Unsigned rational type.
	TypeURational64
	TypeInt8
	TypeUndefined
	TypeInt16
	TypeInt32
	// Signed rational type.
	TypeRational64
	TypeFloat32
	// TypeFloat64 can be found as the double type in EXIF spec.
	TypeFloat64
)

// Size returns the size in bytes of a single element of the type:
// 1, 2, 4 or 8. Unrecognized types are sized as bytes.
func (tp Type) Size() (s uint8) {
	switch tp {
	case TypeUint16, TypeInt16:
		s = 2
	case TypeUint32, TypeInt32, TypeFloat32:
		s = 4
	case TypeRational64, TypeFloat64, TypeURational64:
		s = rational.Size
	default:
		s = 1
	}
	return s
}

// IsValid reports whether tp is one of the twelve TIFF field types.
func (tp Type) IsValid() bool {
	return tp >= TypeUint8 && tp <= TypeFloat64
}

// String returns a Go-like representation of the type.
func (tp Type) String() (s string) {
	switch tp {
	case TypeUint8:
		s = "uint8"
	case TypeString:
		s = "string"
	case TypeUint16:
		s = "uint16"
	case TypeUint32:
		s = "uint32"
	case TypeUndefined:
		s = "undefined"
	case TypeInt16:
		s = "int16"
	case TypeInt32:
		s = "int32"
	case TypeInt8:
		s = "int8"
	case TypeFloat32:
		s = "float32"
	case TypeFloat64:
		s = "float64"
	case TypeRational64:
		s = "rational"
	case TypeURational64:
		s = "urational"
	default:
		s = "unknown(" + strconv.Itoa(int(tp)) + ")"
	}
	return s
}

// IsInt returns true if tp is a signed or unsigned integer type.
func (tp Type) IsInt() bool {
	return tp == TypeInt8 || tp == TypeInt16 || tp == TypeInt32 ||
		tp == TypeUint8 || tp == TypeUint16 || tp == TypeUint32
}

// IsFloat returns true if tp is of float32 (single) or float64 (double) type.
func (tp Type) IsFloat() bool {
	return tp == TypeFloat32 || tp == TypeFloat64
}

// IsRational returns true if tp is of unsigned or signed rational type.
func (tp Type) IsRational() bool {
	return tp == TypeRational64 || tp == TypeURational64
}

// Group represents the IFD an entry was read from.
type Group uint8

const (
	GroupNone Group = iota
	// IFD of the main image. Usually contains ExifOffset tag which points to the Exif IFD.
	GroupIFD0
	// IFD of the thumbnail.
	GroupIFD1
	// IFD containing digicam's information such as shutter speed, focal length etc.
	GroupExif
	GroupGPS
	GroupMakernote
	GroupInterop
)

// String returns a human readable representation of the IFD group. i.e: IFD0, IFD1, Exif.
func (g Group) String() (s string) {
	switch g {
	case GroupIFD0:
		s = "IFD0"
	case GroupIFD1:
		s = "IFD1"
	case GroupExif:
		s = "Exif"
	case GroupGPS:
		s = "GPS"
	case GroupMakernote:
		s = "Makernote"
	case GroupInterop:
		s = "Interop"
	default:
		s = "<unknown IFD group>"
	}
	return s
}

// Namespace groups tag codes. Only the standard namespace is decoded and
// serialized; the others are reserved for manufacturer MakerNote tags.
type Namespace uint16

const (
	NamespaceStandard Namespace = iota
	NamespaceNikon
	NamespaceCanon
)

func (ns Namespace) String() string {
	switch ns {
	case NamespaceStandard:
		return "Standard"
	case NamespaceNikon:
		return "Nikon"
	case NamespaceCanon:
		return "Canon"
	}
	return "Namespace(" + strconv.Itoa(int(ns)) + ")"
}

// ID is the 16 bit tag code of an IFD record.
type ID uint16

// String returns a camel case human readable representation of the ID.
func (id ID) String() string {
	tag, ok := tags[id]
	if !ok {
		return "<unknown EXIF ID>"
	}
	return tag.Name
}

// Type returns the type of data the ID field is expected to contain.
// TypeUnknown is returned for IDs missing from the tag dictionary.
func (id ID) Type() Type {
	return tags[id].Type
}

// IsStaticSize returns true if the ID's element count is fixed.
func (id ID) IsStaticSize() bool {
	def, ok := tags[id]
	return ok && def.count[0] == def.count[1]
}

// Tag returns the standard namespace tag for id or TagUnknownToMe
// if the dictionary does not know it.
func (id ID) Tag() Tag {
	if _, ok := tags[id]; !ok {
		return TagUnknownToMe
	}
	return Tag(id)
}

// Tag is the semantic identity of an entry: its namespace in the upper
// 16 bits and the tag code in the lower 16 bits.
type Tag uint32

// TagUnknownToMe marks entries whose code is not in the tag dictionary.
// Their raw IFDEntry is still available.
const TagUnknownToMe Tag = 0xffff

// MakeTag returns the semantic tag of id within ns.
func MakeTag(ns Namespace, id ID) Tag { return Tag(ns)<<16 | Tag(id) }

func (t Tag) ID() ID               { return ID(t) }
func (t Tag) Namespace() Namespace { return Namespace(t >> 16) }

// String returns the camel case name of the tag.
func (t Tag) String() string {
	if t == TagUnknownToMe {
		return "UnknownToMe"
	}
	if t.Namespace() != NamespaceStandard {
		return fmt.Sprintf("%s:0x%04x", t.Namespace(), uint16(t))
	}
	return t.ID().String()
}

// Description returns an English label for the tag.
func (t Tag) Description() string {
	def, ok := tags[t.ID()]
	if t == TagUnknownToMe || !ok || t.Namespace() != NamespaceStandard {
		return "Unknown to this library, or manufacturer-specific"
	}
	return def.Description
}
