package exif

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"unicode/utf16"

	"github.com/soypat/exifrw/rational"
	"github.com/soypat/exifrw/tiff"
)

// Display functions turn a decoded value into the Readable string of an
// entry. They return false when the value does not have the shape the
// tag calls for.

func strpass(v Value) (string, bool) { return v.String(), true }

func unknownCode(n uint64) string { return "Unknown (" + strconv.FormatUint(n, 10) + ")" }

// enumU16 names the first element of a U16 value using names.
func enumU16(v Value, names map[uint16]string) (string, bool) {
	u, ok := v.(U16)
	if !ok || len(u) == 0 {
		return "", false
	}
	if s, ok := names[u[0]]; ok {
		return s, true
	}
	return unknownCode(uint64(u[0])), true
}

func firstURational(v Value) (float64, bool) {
	u, ok := v.(URationals)
	if !ok || len(u) == 0 {
		return 0, false
	}
	return u[0].Value(), true
}

func firstIRational(v Value) (float64, bool) {
	u, ok := v.(IRationals)
	if !ok || len(u) == 0 {
		return 0, false
	}
	return u[0].Value(), true
}

func asciiValue(v Value) (string, bool) {
	s, ok := v.(ASCII)
	return string(s), ok
}

func sensitivityType(v Value) (string, bool) {
	return enumU16(v, map[uint16]string{
		0: "Unknown",
		1: "Standard output sensitivity (SOS)",
		2: "Recommended exposure index (REI)",
		3: "ISO speed",
		4: "Standard output sensitivity (SOS) and recommended exposure index (REI)",
		5: "Standard output sensitivity (SOS) and ISO speed",
		6: "Recommended exposure index (REI) and ISO speed",
		7: "Standard output sensitivity (SOS) and recommended exposure index (REI) and ISO speed",
	})
}

func orientation(v Value) (string, bool) {
	return enumU16(v, map[uint16]string{
		1: "Straight",
		3: "Upside down",
		6: "Rotated to left",
		8: "Rotated to right",
		9: "Undefined",
	})
}

func rationalValue(v Value) (string, bool) {
	if f, ok := firstURational(v); ok {
		return ftoa(f), true
	}
	if f, ok := firstIRational(v); ok {
		return ftoa(f), true
	}
	return "", false
}

func rationalValues(v Value) (string, bool) {
	u, ok := v.(URationals)
	if !ok {
		return "", false
	}
	return joinNumbers(u, func(r rational.URational) string { return ftoa(r.Value()) }), true
}

func resolutionUnit(v Value) (string, bool) {
	return enumU16(v, map[uint16]string{1: "Unitless", 2: "in", 3: "cm"})
}

func exposureTime(v Value) (string, bool) {
	u, ok := v.(URationals)
	if !ok || len(u) == 0 {
		return "", false
	}
	r := u[0]
	f := r.Value()
	switch {
	case r.Numerator == 1 && r.Denominator > 1:
		return r.String() + " s", true
	case f < 0.1:
		return fmt.Sprintf("1/%.0f s", 1/f), true
	case f < 1:
		return fmt.Sprintf("1/%.1f s", 1/f), true
	}
	return fmt.Sprintf("%.1f s", f), true
}

func fNumber(v Value) (string, bool) {
	f, ok := firstURational(v)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("f/%.1f", f), true
}

func exposureProgram(v Value) (string, bool) {
	return enumU16(v, map[uint16]string{
		1: "Manual control",
		2: "Program control",
		3: "Aperture priority",
		4: "Shutter priority",
		5: "Program creative (slow program)",
		6: "Program creative (high-speed program)",
		7: "Portrait mode",
		8: "Landscape mode",
	})
}

func focalLength(v Value) (string, bool) {
	f, ok := firstURational(v)
	if !ok {
		return "", false
	}
	return ftoa(f) + " mm", true
}

func focalLength35(v Value) (string, bool) {
	u, ok := v.(U16)
	if !ok || len(u) == 0 {
		return "", false
	}
	return strconv.Itoa(int(u[0])) + " mm", true
}

func meters(v Value) (string, bool) {
	f, ok := firstURational(v)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%.1f m", f), true
}

func isoSpeeds(v Value) (string, bool) {
	u, ok := v.(U16)
	if !ok {
		return "", false
	}
	switch len(u) {
	case 1:
		return fmt.Sprintf("ISO %d", u[0]), true
	case 2, 3:
		return fmt.Sprintf("ISO %d latitude %d", u[0], u[1]), true
	}
	return "Unknown (" + u.String() + ")", true
}

func dms(v Value) (string, bool) {
	u, ok := v.(URationals)
	if !ok || len(u) < 3 {
		return "", false
	}
	deg, mins, sec := u[0], u[1], u[2]
	switch {
	case deg.Denominator == 1 && mins.Denominator == 1:
		return fmt.Sprintf("%s°%s'%.2f\"", ftoa(deg.Value()), ftoa(mins.Value()), sec.Value()), true
	case deg.Denominator == 1:
		return fmt.Sprintf("%s°%.4f'", ftoa(deg.Value()), mins.Value()+sec.Value()/60), true
	}
	return fmt.Sprintf("%.7f°", deg.Value()+mins.Value()/60+sec.Value()/3600), true
}

func gpsAltRef(v Value) (string, bool) {
	u, ok := v.(U8)
	if !ok || len(u) == 0 {
		return "", false
	}
	switch u[0] {
	case 0:
		return "Above sea level", true
	case 1:
		return "Below sea level", true
	}
	return fmt.Sprintf("Unknown, assumed below sea level (%d)", u[0]), true
}

// asciiEnum names an ASCII value using names.
func asciiEnum(v Value, names map[string]string) (string, bool) {
	s, ok := asciiValue(v)
	if !ok {
		return "", false
	}
	if name, ok := names[s]; ok {
		return name, true
	}
	return "Unknown (" + s + ")", true
}

func gpsDestDistanceRef(v Value) (string, bool) {
	return asciiEnum(v, map[string]string{"N": "kn", "K": "km", "M": "mi"})
}

func gpsDestDistance(v Value) (string, bool) {
	f, ok := firstURational(v)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%.3f", f), true
}

func gpsSpeedRef(v Value) (string, bool) {
	return asciiEnum(v, map[string]string{"N": "kn", "K": "km/h", "M": "mi/h"})
}

func gpsSpeed(v Value) (string, bool) {
	f, ok := firstURational(v)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%.1f", f), true
}

func gpsBearingRef(v Value) (string, bool) {
	return asciiEnum(v, map[string]string{"T": "True bearing", "M": "Magnetic bearing"})
}

func gpsBearing(v Value) (string, bool) {
	f, ok := firstURational(v)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%.2f°", f), true
}

func gpsTimestamp(v Value) (string, bool) {
	u, ok := v.(URationals)
	if !ok || len(u) < 3 {
		return "", false
	}
	return fmt.Sprintf("%02.0f:%02.0f:%04.1f UTC", u[0].Value(), u[1].Value(), u[2].Value()), true
}

func gpsDifferential(v Value) (string, bool) {
	return enumU16(v, map[uint16]string{
		0: "Measurement without differential correction",
		1: "Differential correction applied",
	})
}

func gpsStatus(v Value) (string, bool) {
	return asciiEnum(v, map[string]string{"A": "Measurement in progress", "V": "Measurement is interoperability"})
}

func gpsMeasureMode(v Value) (string, bool) {
	return asciiEnum(v, map[string]string{"2": "2-dimension", "3": "3-dimension"})
}

// undefinedAsASCII is for Undefined tags guaranteed to hold ASCII, such as versions.
func undefinedAsASCII(v Value) (string, bool) {
	u, ok := v.(Undefined)
	if !ok {
		return "", false
	}
	return string(bytes.ToValidUTF8(u.Data, []byte("\uFFFD"))), true
}

// undefinedAsU8 is for short opaque Undefined tags.
func undefinedAsU8(v Value) (string, bool) {
	u, ok := v.(Undefined)
	if !ok {
		return "", false
	}
	return U8(u.Data).String(), true
}

var (
	encodingASCII   = []byte("ASCII\x00\x00\x00")
	encodingJIS     = []byte("JIS\x00\x00\x00\x00\x00")
	encodingUnicode = []byte("UNICODE\x00")
)

// undefinedAsEncodedString decodes comment-like tags whose first 8 bytes
// name the character code.
func undefinedAsEncodedString(v Value) (string, bool) {
	u, ok := v.(Undefined)
	if !ok {
		return "", false
	}
	data := u.Data
	if len(data) < 8 {
		return "String w/ truncated preamble " + U8(data).String(), true
	}
	preamble, text := data[:8], data[8:]
	switch {
	case bytes.Equal(preamble, encodingASCII):
		return string(bytes.ToValidUTF8(text, []byte("\uFFFD"))), true
	case bytes.Equal(preamble, encodingJIS):
		return "JIS string " + U8(text).String(), true
	case bytes.Equal(preamble, encodingUnicode):
		order := u.Order
		if order == nil {
			return "", false
		}
		u16, ok := tiff.ReadU16s(order, uint32(len(text)/2), text)
		if !ok {
			return "", false
		}
		return string(utf16.Decode(u16)), true
	}
	return "String w/ undefined encoding " + U8(data).String(), true
}

// undefinedAsBlob is for long opaque Undefined tags.
func undefinedAsBlob(v Value) (string, bool) {
	u, ok := v.(Undefined)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("Blob of %d bytes", len(u.Data)), true
}

func apexTv(v Value) (string, bool) {
	f, ok := firstIRational(v)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%.1f Tv APEX", f), true
}

func apexAv(v Value) (string, bool) {
	f, ok := firstURational(v)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%.1f Av APEX", f), true
}

func apexBrightness(v Value) (string, bool) {
	u, ok := v.(IRationals)
	if !ok || len(u) == 0 {
		return "", false
	}
	// A numerator of 0xffffffff means unknown.
	if u[0].Numerator == -1 {
		return "Unknown", true
	}
	return fmt.Sprintf("%.1f APEX", u[0].Value()), true
}

func apexEV(v Value) (string, bool) {
	f, ok := firstIRational(v)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%.2f EV APEX", f), true
}

func fileSource(v Value) (string, bool) {
	u, ok := v.(Undefined)
	if !ok {
		return "", false
	}
	if len(u.Data) > 0 && u.Data[0] == 3 {
		return "DSC", true
	}
	return "Unknown", true
}

func flashEnergy(v Value) (string, bool) {
	f, ok := firstURational(v)
	if !ok {
		return "", false
	}
	return ftoa(f) + " BCPS", true
}

func meteringMode(v Value) (string, bool) {
	return enumU16(v, map[uint16]string{
		0:   "Unknown",
		1:   "Average",
		2:   "Center-weighted average",
		3:   "Spot",
		4:   "Multi-spot",
		5:   "Pattern",
		6:   "Partial",
		255: "Other",
	})
}

func lightSource(v Value) (string, bool) {
	return enumU16(v, map[uint16]string{
		0:   "Unknown",
		1:   "Daylight",
		2:   "Fluorescent",
		3:   "Tungsten",
		4:   "Flash",
		9:   "Fine weather",
		10:  "Cloudy weather",
		11:  "Shade",
		12:  "Daylight fluorescent (D)",
		13:  "Day white fluorescent (N)",
		14:  "Cool white fluorescent (W)",
		15:  "White fluorescent (WW)",
		17:  "Standard light A",
		18:  "Standard light B",
		19:  "Standard light C",
		20:  "D55",
		21:  "D65",
		22:  "D75",
		23:  "D50",
		24:  "ISO studio tungsten",
		255: "Other",
	})
}

func colorSpace(v Value) (string, bool) {
	return enumU16(v, map[uint16]string{1: "sRGB", math.MaxUint16: "Uncalibrated"})
}

func flash(v Value) (string, bool) {
	u, ok := v.(U16)
	if !ok || len(u) == 0 {
		return "", false
	}
	n := u[0]
	if n&(1<<5) != 0 {
		return "Does not have a flash.", true
	}
	fired, strobe, mode, redeye := "Did not fire. ", "", "", ""
	if n&1 != 0 {
		fired = "Fired. "
		if n&(1<<6) != 0 {
			redeye = "Redeye reduction. "
		} else {
			redeye = "No redeye reduction. "
		}
		switch (n >> 1) & 3 {
		case 2:
			strobe = "Strobe ret not detected. "
		case 3:
			strobe = "Strobe ret detected. "
		}
	}
	switch (n >> 3) & 3 {
	case 1:
		mode = "Forced fire. "
	case 2:
		mode = "Forced suppression. "
	case 3:
		mode = "Auto mode. "
	}
	return fired + strobe + mode + redeye, true
}

func subjectArea(v Value) (string, bool) {
	u, ok := v.(U16)
	if !ok {
		return "", false
	}
	switch len(u) {
	case 2:
		return fmt.Sprintf("at pixel %d,%d", u[0], u[1]), true
	case 3:
		return fmt.Sprintf("at center %d,%d radius %d", u[0], u[1], u[2]), true
	case 4:
		return fmt.Sprintf("at rectangle %d,%d width %d height %d", u[0], u[1], u[2], u[3]), true
	}
	return "Unknown (" + u.String() + ")", true
}

func subjectLocation(v Value) (string, bool) {
	u, ok := v.(U16)
	if !ok || len(u) < 2 {
		return "", false
	}
	return fmt.Sprintf("at pixel %d,%d", u[0], u[1]), true
}

func sharpness(v Value) (string, bool) {
	return enumU16(v, map[uint16]string{0: "Normal", 1: "Soft", 2: "Hard"})
}

func saturation(v Value) (string, bool) {
	return enumU16(v, map[uint16]string{0: "Normal", 1: "Low", 2: "High"})
}

func contrast(v Value) (string, bool) {
	return enumU16(v, map[uint16]string{0: "Normal", 1: "Soft", 2: "Hard"})
}

func gainControl(v Value) (string, bool) {
	return enumU16(v, map[uint16]string{
		0: "None",
		1: "Low gain up",
		2: "High gain up",
		3: "Low gain down",
		4: "High gain down",
	})
}

func exposureMode(v Value) (string, bool) {
	return enumU16(v, map[uint16]string{0: "Auto exposure", 1: "Manual exposure", 2: "Auto bracket"})
}

func sceneCaptureType(v Value) (string, bool) {
	return enumU16(v, map[uint16]string{0: "Standard", 1: "Landscape", 2: "Portrait", 3: "Night scene"})
}

func sceneType(v Value) (string, bool) {
	u, ok := v.(Undefined)
	if !ok || len(u.Data) == 0 {
		return "", false
	}
	if u.Data[0] == 1 {
		return "Directly photographed image", true
	}
	return unknownCode(uint64(u.Data[0])), true
}

func whiteBalanceMode(v Value) (string, bool) {
	return enumU16(v, map[uint16]string{0: "Auto", 1: "Manual"})
}

func sensingMethod(v Value) (string, bool) {
	return enumU16(v, map[uint16]string{
		1: "Not defined",
		2: "One-chip color area sensor",
		3: "Two-chip color area sensor",
		4: "Three-chip color area sensor",
		5: "Color sequential area sensor",
		7: "Trilinear sensor",
		8: "Color sequential linear sensor",
	})
}

func customRendered(v Value) (string, bool) {
	return enumU16(v, map[uint16]string{0: "Normal", 1: "Custom"})
}

func subjectDistanceRange(v Value) (string, bool) {
	return enumU16(v, map[uint16]string{0: "Unknown", 1: "Macro", 2: "Close view", 3: "Distant view"})
}

func lensSpec(v Value) (string, bool) {
	u, ok := v.(URationals)
	if !ok || len(u) < 4 {
		return "", false
	}
	f0, f1 := u[0].Value(), u[1].Value()
	a0, a1 := u[2].Value(), u[3].Value()
	finite := func(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }
	switch {
	case u[0] == u[1] && finite(a0):
		return fmt.Sprintf("%s mm f/%.1f", ftoa(f0), a0), true
	case u[0] == u[1]:
		return ftoa(f0) + " mm f/unknown", true
	case finite(a0) && finite(a1):
		return fmt.Sprintf("%s-%s mm f/%.1f-%.1f", ftoa(f0), ftoa(f1), a0, a1), true
	}
	return fmt.Sprintf("%s-%s mm f/unknown", ftoa(f0), ftoa(f1)), true
}
