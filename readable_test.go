package exif

import (
	"encoding/binary"
	"testing"

	"github.com/soypat/exifrw/rational"
)

func urs(v ...uint32) URationals {
	var r URationals
	for i := 0; i+1 < len(v); i += 2 {
		r = append(r, rational.URational{Numerator: v[i], Denominator: v[i+1]})
	}
	return r
}

func TestReadable(t *testing.T) {
	testCases := []struct {
		desc     string
		fn       func(Value) (string, bool)
		v        Value
		expected string
	}{
		{desc: "exposure unit fraction", fn: exposureTime, v: urs(1, 250), expected: "1/250 s"},
		{desc: "exposure short", fn: exposureTime, v: urs(10, 2000), expected: "1/200 s"},
		{desc: "exposure under a second", fn: exposureTime, v: urs(3, 10), expected: "1/3.3 s"},
		{desc: "exposure long", fn: exposureTime, v: urs(2, 1), expected: "2.0 s"},
		{desc: "dms", fn: dms, v: urs(37, 1, 46, 1, 2964, 100), expected: `37°46'29.64"`},
		{desc: "dms decimal minutes", fn: dms, v: urs(37, 1, 4650, 100, 0, 1), expected: `37°46.5000'`},
		{desc: "dms decimal degrees", fn: dms, v: urs(3775, 100, 0, 1, 0, 1), expected: "37.7500000°"},
		{desc: "no flash", fn: flash, v: U16{0x20}, expected: "Does not have a flash."},
		{desc: "flash off", fn: flash, v: U16{0}, expected: "Did not fire. "},
		{desc: "flash suppressed", fn: flash, v: U16{0x10}, expected: "Did not fire. Forced suppression. "},
		{desc: "flash everything", fn: flash, v: U16{0x4f}, expected: "Fired. Strobe ret detected. Forced fire. Redeye reduction. "},
		{desc: "prime lens", fn: lensSpec, v: urs(50, 1, 50, 1, 18, 10, 18, 10), expected: "50 mm f/1.8"},
		{desc: "prime lens unknown aperture", fn: lensSpec, v: urs(50, 1, 50, 1, 0, 0, 0, 0), expected: "50 mm f/unknown"},
		{desc: "zoom lens", fn: lensSpec, v: urs(24, 1, 70, 1, 28, 10, 40, 10), expected: "24-70 mm f/2.8-4.0"},
		{desc: "iso", fn: isoSpeeds, v: U16{200}, expected: "ISO 200"},
		{desc: "iso latitude", fn: isoSpeeds, v: U16{100, 5}, expected: "ISO 100 latitude 5"},
		{desc: "altitude ref unknown", fn: gpsAltRef, v: U8{7}, expected: "Unknown, assumed below sea level (7)"},
		{desc: "brightness", fn: apexBrightness, v: IRationals{{Numerator: 5, Denominator: 2}}, expected: "2.5 APEX"},
		{desc: "color space", fn: colorSpace, v: U16{0xffff}, expected: "Uncalibrated"},
		{desc: "unnamed enum", fn: meteringMode, v: U16{42}, expected: "Unknown (42)"},
		{desc: "speed ref", fn: gpsSpeedRef, v: ASCII("K"), expected: "km/h"},
		{desc: "speed ref unknown", fn: gpsSpeedRef, v: ASCII("X"), expected: "Unknown (X)"},
		{desc: "timestamp", fn: gpsTimestamp, v: urs(9, 1, 30, 1, 0, 1), expected: "09:30:00.0 UTC"},
		{desc: "subject area", fn: subjectArea, v: U16{10, 20, 5}, expected: "at center 10,20 radius 5"},
		{desc: "version", fn: undefinedAsASCII, v: Undefined{Data: []byte("0100")}, expected: "0100"},
		{desc: "blob", fn: undefinedAsBlob, v: Undefined{Data: make([]byte, 300)}, expected: "Blob of 300 bytes"},
		{desc: "scene type", fn: sceneType, v: Undefined{Data: []byte{1}}, expected: "Directly photographed image"},
		{desc: "comment ascii", fn: undefinedAsEncodedString, v: Undefined{Data: []byte("ASCII\x00\x00\x00hi")}, expected: "hi"},
		{desc: "comment jis", fn: undefinedAsEncodedString, v: Undefined{Data: []byte("JIS\x00\x00\x00\x00\x00\x01\x02")}, expected: "JIS string 1, 2"},
		{
			desc:     "comment unicode",
			fn:       undefinedAsEncodedString,
			v:        Undefined{Data: []byte("UNICODE\x00h\x00i\x00"), Order: binary.LittleEndian},
			expected: "hi",
		},
		{desc: "comment short", fn: undefinedAsEncodedString, v: Undefined{Data: []byte("AB")}, expected: "String w/ truncated preamble 65, 66"},
		{
			desc:     "comment undefined encoding",
			fn:       undefinedAsEncodedString,
			v:        Undefined{Data: []byte("\x00\x00\x00\x00\x00\x00\x00\x00a")},
			expected: "String w/ undefined encoding 0, 0, 0, 0, 0, 0, 0, 0, 97",
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			got, ok := tC.fn(tC.v)
			if !ok {
				t.Fatal("value rejected")
			}
			if got != tC.expected {
				t.Errorf("got %q, want %q", got, tC.expected)
			}
		})
	}
}

func TestReadableWrongShape(t *testing.T) {
	testCases := []struct {
		desc string
		fn   func(Value) (string, bool)
		v    Value
	}{
		{desc: "enum of u32", fn: orientation, v: U32{1}},
		{desc: "dms too short", fn: dms, v: urs(37, 1)},
		{desc: "exposure of signed", fn: exposureTime, v: IRationals{{Numerator: 1, Denominator: 2}}},
		{desc: "flash empty", fn: flash, v: U16{}},
		{desc: "comment of ascii", fn: undefinedAsEncodedString, v: ASCII("hi")},
		{desc: "lens of invalid", fn: lensSpec, v: Invalid{}},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			if got, ok := tC.fn(tC.v); ok || got != "" {
				t.Errorf("got (%q, %v)", got, ok)
			}
		})
	}
}

func TestPostprocess(t *testing.T) {
	order := binary.BigEndian
	tiffData := buildTIFF(order, []rec{
		{id: idFocalPlaneXResolution, tp: TypeURational64, data: urats(order, 4000, 1)},
		{id: idFocalPlaneResolutionUnit, tp: TypeUint16, count: 1, data: u16s(order, 3)},
	}, nil, []rec{
		{id: idGPSAltitudeRef, tp: TypeUint8, data: []byte{0}},
		{id: idGPSAltitude, tp: TypeURational64, data: urats(order, 15, 10)},
		{id: idGPSSpeedRef, tp: TypeString, data: ascii("K")},
		{id: idGPSSpeed, tp: TypeURational64, data: urats(order, 50, 1)},
		{id: idGPSDestDistanceRef, tp: TypeString, data: ascii("M")},
		{id: idGPSDestDistance, tp: TypeURational64, data: urats(order, 1500, 1000)},
		// Latitude without its reference.
		{id: idGPSDestLatitude, tp: TypeURational64, data: urats(order, 1, 1, 2, 1, 3, 1)},
	})
	md, _, err := Decode(tiffData)
	if err != nil {
		t.Fatal(err)
	}
	testCases := []struct {
		id       ID
		readable string
		unit     string
	}{
		{id: idFocalPlaneXResolution, readable: "4000 pixels per cm", unit: "cm"},
		{id: idFocalPlaneResolutionUnit, readable: "cm", unit: "none"},
		{id: idGPSAltitude, readable: "1.5 m", unit: "m"},
		{id: idGPSSpeed, readable: "50.0 km/h", unit: "km/h"},
		{id: idGPSSpeedRef, readable: "km/h", unit: "none"},
		{id: idGPSDestDistance, readable: "1.500 mi", unit: "mi"},
		{id: idGPSDestLatitude, readable: `1°2'3.00"`, unit: "D/M/S"},
	}
	for _, tC := range testCases {
		t.Run(tC.id.String(), func(t *testing.T) {
			e, ok := md.Get(tC.id.Tag())
			if !ok {
				t.Fatal("missing entry")
			}
			if e.Readable != tC.readable || e.Unit != tC.unit {
				t.Errorf("got (%q, %q), want (%q, %q)", e.Readable, e.Unit, tC.readable, tC.unit)
			}
		})
	}
}
