package exif

import (
	"bytes"
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/soypat/exifrw/rational"
	"github.com/soypat/exifrw/tiff"
)

// Value is the decoded content of an IFD entry. It is always a vector,
// scalar tags decode to a single element. The concrete type is one of
//
//	U8, I8, U16, I16, U32, I32, F32, F64, URationals, IRationals,
//	ASCII, Undefined, Unknown, Invalid
//
// Type switches over Value should handle all of them.
type Value interface {
	// String renders the value with elements separated by ", ".
	String() string
	// Len returns the number of elements. For ASCII it is the string length.
	Len() int
	value()
}

type (
	U8         []uint8
	I8         []int8
	U16        []uint16
	I16        []int16
	U32        []uint32
	I32        []int32
	F32        []float32
	F64        []float64
	URationals []rational.URational
	IRationals []rational.IRational
	// ASCII is a string with its NUL padding removed. Invalid UTF-8 is
	// replaced with U+FFFD.
	ASCII string
)

// Undefined holds the bytes of a TypeUndefined entry, whose interpretation
// depends on the tag.
type Undefined struct {
	Data  []byte
	Order binary.ByteOrder
}

// Unknown holds the bytes of an entry with an unrecognized type code.
type Unknown struct {
	Data  []byte
	Order binary.ByteOrder
}

// Invalid holds the bytes of an entry whose data is shorter than its
// type and count call for.
type Invalid struct {
	Data   []byte
	Order  binary.ByteOrder
	Format Type
	Count  uint32
}

func (U8) value()         {}
func (I8) value()         {}
func (U16) value()        {}
func (I16) value()        {}
func (U32) value()        {}
func (I32) value()        {}
func (F32) value()        {}
func (F64) value()        {}
func (URationals) value() {}
func (IRationals) value() {}
func (ASCII) value()      {}
func (Undefined) value()  {}
func (Unknown) value()    {}
func (Invalid) value()    {}

func (v U8) Len() int         { return len(v) }
func (v I8) Len() int         { return len(v) }
func (v U16) Len() int        { return len(v) }
func (v I16) Len() int        { return len(v) }
func (v U32) Len() int        { return len(v) }
func (v I32) Len() int        { return len(v) }
func (v F32) Len() int        { return len(v) }
func (v F64) Len() int        { return len(v) }
func (v URationals) Len() int { return len(v) }
func (v IRationals) Len() int { return len(v) }
func (v ASCII) Len() int      { return len(v) }
func (v Undefined) Len() int  { return len(v.Data) }
func (v Unknown) Len() int    { return len(v.Data) }
func (v Invalid) Len() int    { return len(v.Data) }

func (v U8) String() string  { return joinNumbers(v, func(x uint8) string { return strconv.FormatUint(uint64(x), 10) }) }
func (v I8) String() string  { return joinNumbers(v, func(x int8) string { return strconv.FormatInt(int64(x), 10) }) }
func (v U16) String() string { return joinNumbers(v, func(x uint16) string { return strconv.FormatUint(uint64(x), 10) }) }
func (v I16) String() string { return joinNumbers(v, func(x int16) string { return strconv.FormatInt(int64(x), 10) }) }
func (v U32) String() string { return joinNumbers(v, func(x uint32) string { return strconv.FormatUint(uint64(x), 10) }) }
func (v I32) String() string { return joinNumbers(v, func(x int32) string { return strconv.FormatInt(int64(x), 10) }) }
func (v F32) String() string {
	return joinNumbers(v, func(x float32) string { return strconv.FormatFloat(float64(x), 'f', -1, 32) })
}
func (v F64) String() string        { return joinNumbers(v, ftoa) }
func (v URationals) String() string { return joinNumbers(v, rational.URational.String) }
func (v IRationals) String() string { return joinNumbers(v, rational.IRational.String) }
func (v ASCII) String() string      { return string(v) }
func (v Undefined) String() string  { return U8(v.Data).String() }
func (v Unknown) String() string    { return "<unknown blob>" }
func (v Invalid) String() string    { return "Invalid" }

func joinNumbers[T any](v []T, format func(T) string) string {
	var sb strings.Builder
	for i := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(format(v[i]))
	}
	return sb.String()
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// NewValue decodes the resolved data of e according to its type and count.
// It never fails: data too short for the declared count yields Invalid and
// an unrecognized type yields Unknown.
func NewValue(e IFDEntry) Value {
	data := e.Data
	invalid := Invalid{Data: cloneBytes(data), Order: e.Order, Format: e.Type, Count: e.Count}
	var (
		v  Value
		ok bool
	)
	switch e.Type {
	case TypeString:
		n := len(data)
		if l := e.Length(); l < uint64(n) {
			n = int(l)
		}
		return ASCII(strings.ToValidUTF8(string(bytes.TrimRight(data[:n], "\x00")), "\uFFFD"))
	case TypeUndefined:
		n := len(data)
		if l := e.Length(); l < uint64(n) {
			n = int(l)
		}
		return Undefined{Data: cloneBytes(data[:n]), Order: e.Order}
	case TypeUint8:
		if uint64(e.Count) > uint64(len(data)) {
			return invalid
		}
		return U8(cloneBytes(data[:e.Count]))
	case TypeInt8:
		var a []int8
		a, ok = tiff.ReadI8s(e.Count, data)
		v = I8(a)
	case TypeUint16:
		var a []uint16
		a, ok = tiff.ReadU16s(e.Order, e.Count, data)
		v = U16(a)
	case TypeInt16:
		var a []int16
		a, ok = tiff.ReadI16s(e.Order, e.Count, data)
		v = I16(a)
	case TypeUint32:
		var a []uint32
		a, ok = tiff.ReadU32s(e.Order, e.Count, data)
		v = U32(a)
	case TypeInt32:
		var a []int32
		a, ok = tiff.ReadI32s(e.Order, e.Count, data)
		v = I32(a)
	case TypeFloat32:
		var a []float32
		a, ok = tiff.ReadF32s(e.Count, data)
		v = F32(a)
	case TypeFloat64:
		var a []float64
		a, ok = tiff.ReadF64s(e.Count, data)
		v = F64(a)
	case TypeURational64:
		var a []rational.URational
		a, ok = rational.DecodeUs(e.Order, e.Count, data)
		v = URationals(a)
	case TypeRational64:
		var a []rational.IRational
		a, ok = rational.DecodeIs(e.Order, e.Count, data)
		v = IRationals(a)
	default:
		return Unknown{Data: cloneBytes(data), Order: e.Order}
	}
	if !ok {
		return invalid
	}
	return v
}

// ValuesEqual reports whether a and b hold the same variant and elements.
// Floating point elements compare equal when both are NaN.
func ValuesEqual(a, b Value) bool {
	switch av := a.(type) {
	case U8:
		bv, ok := b.(U8)
		return ok && bytes.Equal(av, bv)
	case I8:
		bv, ok := b.(I8)
		return ok && slicesEqual(av, bv)
	case U16:
		bv, ok := b.(U16)
		return ok && slicesEqual(av, bv)
	case I16:
		bv, ok := b.(I16)
		return ok && slicesEqual(av, bv)
	case U32:
		bv, ok := b.(U32)
		return ok && slicesEqual(av, bv)
	case I32:
		bv, ok := b.(I32)
		return ok && slicesEqual(av, bv)
	case URationals:
		bv, ok := b.(URationals)
		return ok && slicesEqual(av, bv)
	case IRationals:
		bv, ok := b.(IRationals)
		return ok && slicesEqual(av, bv)
	case F32:
		bv, ok := b.(F32)
		return ok && floatsEqual(av, bv)
	case F64:
		bv, ok := b.(F64)
		return ok && floatsEqual(av, bv)
	case ASCII:
		bv, ok := b.(ASCII)
		return ok && av == bv
	case Undefined:
		bv, ok := b.(Undefined)
		return ok && av.Order == bv.Order && bytes.Equal(av.Data, bv.Data)
	case Unknown:
		bv, ok := b.(Unknown)
		return ok && av.Order == bv.Order && bytes.Equal(av.Data, bv.Data)
	case Invalid:
		bv, ok := b.(Invalid)
		return ok && av.Order == bv.Order && av.Format == bv.Format &&
			av.Count == bv.Count && bytes.Equal(av.Data, bv.Data)
	}
	return a == nil && b == nil
}

func slicesEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func floatsEqual[T float32 | float64](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		if x != y && !(math.IsNaN(x) && math.IsNaN(y)) {
			return false
		}
	}
	return true
}

// Int returns element i of an integer value.
func Int(v Value, i int) (int64, bool) {
	if i < 0 || i >= v.Len() {
		return 0, false
	}
	switch c := v.(type) {
	case U8:
		return int64(c[i]), true
	case I8:
		return int64(c[i]), true
	case U16:
		return int64(c[i]), true
	case I16:
		return int64(c[i]), true
	case U32:
		return int64(c[i]), true
	case I32:
		return int64(c[i]), true
	}
	return 0, false
}

// Float returns element i of a numeric value converted to float64.
// Rationals are divided out.
func Float(v Value, i int) (float64, bool) {
	if n, ok := Int(v, i); ok {
		return float64(n), true
	}
	if i < 0 || i >= v.Len() {
		return 0, false
	}
	switch c := v.(type) {
	case F32:
		return float64(c[i]), true
	case F64:
		return c[i], true
	case URationals:
		return c[i].Value(), true
	case IRationals:
		return c[i].Value(), true
	}
	return 0, false
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append(make([]byte, 0, len(b)), b...)
}
