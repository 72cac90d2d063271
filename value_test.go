package exif

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/soypat/exifrw/rational"
)

func TestNewValue(t *testing.T) {
	be, le := binary.BigEndian, binary.LittleEndian
	testCases := []struct {
		desc     string
		entry    IFDEntry
		expected Value
	}{
		{
			desc:     "uint8 inline keeps count elements",
			entry:    IFDEntry{Type: TypeUint8, Count: 2, Data: []byte{7, 8, 0, 0}, Order: be},
			expected: U8{7, 8},
		},
		{
			desc:     "int8",
			entry:    IFDEntry{Type: TypeInt8, Count: 1, Data: []byte{0xff, 0, 0, 0}, Order: be},
			expected: I8{-1},
		},
		{
			desc:     "uint16 big endian",
			entry:    IFDEntry{Type: TypeUint16, Count: 2, Data: []byte{0, 1, 0xfe, 0xed}, Order: be},
			expected: U16{1, 0xfeed},
		},
		{
			desc:     "int16 little endian",
			entry:    IFDEntry{Type: TypeInt16, Count: 1, Data: []byte{0xfe, 0xff, 0, 0}, Order: le},
			expected: I16{-2},
		},
		{
			desc:     "uint32",
			entry:    IFDEntry{Type: TypeUint32, Count: 1, Data: []byte{0xfe, 0xed, 0xbe, 0xad}, Order: be},
			expected: U32{0xfeedbead},
		},
		{
			desc:     "int32",
			entry:    IFDEntry{Type: TypeInt32, Count: 1, Data: []byte{0xff, 0xff, 0xff, 0xfd}, Order: be},
			expected: I32{-3},
		},
		{
			desc:     "float64 read little endian in big endian directory",
			entry:    IFDEntry{Type: TypeFloat64, Count: 1, Data: f64s(0.5), Order: be},
			expected: F64{0.5},
		},
		{
			desc:     "urational",
			entry:    IFDEntry{Type: TypeURational64, Count: 1, Data: urats(be, 1, 250), Order: be},
			expected: URationals{{Numerator: 1, Denominator: 250}},
		},
		{
			desc:     "rational",
			entry:    IFDEntry{Type: TypeRational64, Count: 2, Data: irats(le, -1, 3, 5, -7), Order: le},
			expected: IRationals{{Numerator: -1, Denominator: 3}, {Numerator: 5, Denominator: -7}},
		},
		{
			desc:     "ascii strips NUL padding",
			entry:    IFDEntry{Type: TypeString, Count: 6, Data: []byte("Acme\x00\x00"), Order: be},
			expected: ASCII("Acme"),
		},
		{
			desc:     "ascii replaces invalid utf-8",
			entry:    IFDEntry{Type: TypeString, Count: 3, Data: []byte{'a', 0xff, 0, 0}, Order: be},
			expected: ASCII("a\uFFFD"),
		},
		{
			desc:     "undefined",
			entry:    IFDEntry{Type: TypeUndefined, Count: 4, Data: []byte("0232"), Order: le},
			expected: Undefined{Data: []byte("0232"), Order: le},
		},
		{
			desc:     "unknown format",
			entry:    IFDEntry{Type: 13, Count: 2, Data: []byte{1, 2, 0, 0}, Order: be},
			expected: Unknown{Data: []byte{1, 2, 0, 0}, Order: be},
		},
		{
			desc:     "short data is invalid",
			entry:    IFDEntry{Type: TypeUint16, Count: 4, Data: []byte{0, 1, 0, 2}, Order: be},
			expected: Invalid{Data: []byte{0, 1, 0, 2}, Order: be, Format: TypeUint16, Count: 4},
		},
		{
			desc:     "short uint8 data is invalid",
			entry:    IFDEntry{Type: TypeUint8, Count: 5, Data: []byte{1, 2, 3, 4}, Order: le},
			expected: Invalid{Data: []byte{1, 2, 3, 4}, Order: le, Format: TypeUint8, Count: 5},
		},
		{
			desc:     "huge count is invalid",
			entry:    IFDEntry{Type: TypeURational64, Count: math.MaxUint32, Data: urats(be, 1, 2), Order: be},
			expected: Invalid{Data: urats(be, 1, 2), Order: be, Format: TypeURational64, Count: math.MaxUint32},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			got := NewValue(tC.entry)
			if !ValuesEqual(got, tC.expected) {
				t.Errorf("got %#v, want %#v", got, tC.expected)
			}
		})
	}
}

func TestValuesEqualNaN(t *testing.T) {
	nan := math.NaN()
	if !ValuesEqual(F64{1, nan, 3}, F64{1, nan, 3}) {
		t.Error("F64 vectors with NaN at the same position should be equal")
	}
	if !ValuesEqual(F32{float32(nan)}, F32{float32(nan)}) {
		t.Error("F32 NaN vectors should be equal")
	}
	if ValuesEqual(F64{nan, 1}, F64{1, nan}) {
		t.Error("NaN at different positions should not be equal")
	}
	if ValuesEqual(F64{1}, F64{1, 1}) {
		t.Error("different lengths should not be equal")
	}
	if ValuesEqual(U16{1}, U32{1}) {
		t.Error("different variants should not be equal")
	}
	if ValuesEqual(Undefined{Data: []byte{1}, Order: binary.BigEndian}, Undefined{Data: []byte{1}, Order: binary.LittleEndian}) {
		t.Error("different byte order should not be equal")
	}
	// A 0/0 rational has a NaN value but compares by its fields.
	zero := URationals{{}}
	if !ValuesEqual(zero, URationals{{}}) {
		t.Error("0/0 rationals should be equal")
	}
}

func TestValueString(t *testing.T) {
	testCases := []struct {
		v        Value
		expected string
	}{
		{v: U16{1, 2, 3}, expected: "1, 2, 3"},
		{v: I8{-1}, expected: "-1"},
		{v: URationals{{Numerator: 1, Denominator: 3}, {Numerator: 2, Denominator: 1}}, expected: "1/3, 2/1"},
		{v: IRationals{{Numerator: -1, Denominator: 3}}, expected: "-1/3"},
		{v: F64{0.25, 2}, expected: "0.25, 2"},
		{v: ASCII("hi"), expected: "hi"},
		{v: Undefined{Data: []byte{48, 50}}, expected: "48, 50"},
		{v: Unknown{Data: []byte{1}}, expected: "<unknown blob>"},
		{v: Invalid{}, expected: "Invalid"},
	}
	for _, tC := range testCases {
		if got := tC.v.String(); got != tC.expected {
			t.Errorf("%T: got %q, want %q", tC.v, got, tC.expected)
		}
	}
}

func TestIntFloat(t *testing.T) {
	if v, ok := Int(U16{5, 6}, 1); !ok || v != 6 {
		t.Errorf("got %v %v", v, ok)
	}
	if _, ok := Int(U16{5}, 1); ok {
		t.Error("out of range index")
	}
	if _, ok := Int(ASCII("5"), 0); ok {
		t.Error("ascii is not an integer")
	}
	if v, ok := Float(URationals{{Numerator: 1, Denominator: 4}}, 0); !ok || v != 0.25 {
		t.Errorf("got %v %v", v, ok)
	}
	if v, ok := Float(I32{-2}, 0); !ok || v != -2 {
		t.Errorf("got %v %v", v, ok)
	}
	r := IRationals{rational.IRational{Numerator: 1}}
	if v, ok := Float(r, 0); !ok || !math.IsInf(v, 1) {
		t.Errorf("got %v %v", v, ok)
	}
}
