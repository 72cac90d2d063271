package app1

import (
	"bytes"
	"errors"
	"testing"
)

func segment(marker byte, data string) []byte {
	n := len(data) + 2
	return append([]byte{0xff, marker, byte(n >> 8), byte(n)}, data...)
}

func jpeg(segs ...[]byte) []byte {
	b := []byte{0xff, 0xd8}
	for _, s := range segs {
		b = append(b, s...)
	}
	// Start of scan header followed by entropy coded data and EOI.
	b = append(b, segment(0xda, "\x01\x01\x00\x00\x3f\x00")...)
	return append(b, 0x12, 0x34, 0xff, 0x00, 0x56, 0xff, 0xd9)
}

func TestReplace(t *testing.T) {
	payload := "Exif\x00\x00new"
	jfif := segment(0xe0, "JFIF\x00")
	dqt := segment(0xdb, "\x00\x01")
	xmp := segment(0xe1, "http://ns.adobe.com/xap/1.0/\x00")
	testCases := []struct {
		desc     string
		in       []byte
		expected []byte
	}{
		{
			desc:     "replace in place",
			in:       jpeg(jfif, segment(0xe1, "Exif\x00\x00old"), dqt),
			expected: jpeg(jfif, segment(0xe1, payload), dqt),
		},
		{
			desc:     "insert after APP0",
			in:       jpeg(jfif, dqt),
			expected: jpeg(jfif, segment(0xe1, payload), dqt),
		},
		{
			desc:     "keep other APP1",
			in:       jpeg(jfif, xmp, segment(0xe1, "Exif\x00\x00old")),
			expected: jpeg(jfif, xmp, segment(0xe1, payload)),
		},
		{
			desc:     "drop duplicates",
			in:       jpeg(segment(0xe1, "Exif\x00\x00one"), segment(0xe1, "Exif\x00\x00two"), dqt),
			expected: jpeg(segment(0xe1, payload), dqt),
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			var out bytes.Buffer
			err := Replace(&out, bytes.NewReader(tC.in), []byte(payload))
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(out.Bytes(), tC.expected) {
				t.Errorf("got  %x\nwant %x", out.Bytes(), tC.expected)
			}
		})
	}
}

func TestReplaceErrors(t *testing.T) {
	var out bytes.Buffer
	if err := Replace(&out, bytes.NewReader(jpeg()), []byte("JFIF")); !errors.Is(err, ErrNotExif) {
		t.Errorf("got %v", err)
	}
	if err := Replace(&out, bytes.NewReader([]byte("II*\x00")), []byte("Exif\x00\x00")); err == nil {
		t.Error("expected error for non JPEG input")
	}
	badLength := jpeg([]byte{0xff, 0xe2, 0x00, 0x01})
	if err := Replace(&out, bytes.NewReader(badLength), []byte("Exif\x00\x00")); err == nil {
		t.Error("expected error for segment length below 2")
	}
}
