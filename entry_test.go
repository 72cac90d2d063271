package exif

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestIFDEntryResolveData(t *testing.T) {
	be := binary.BigEndian
	container := append(make([]byte, 16), urats(be, 72, 1)...)
	testCases := []struct {
		desc     string
		entry    IFDEntry
		ok       bool
		expected []byte
	}{
		{
			desc:     "inline",
			entry:    IFDEntry{Type: TypeUint16, Count: 2, IFDData: [4]byte{0, 1, 0, 2}, Order: be},
			ok:       true,
			expected: []byte{0, 1, 0, 2},
		},
		{
			desc:     "out of line",
			entry:    IFDEntry{Type: TypeURational64, Count: 1, IFDData: [4]byte{0, 0, 0, 16}, Order: be},
			ok:       true,
			expected: urats(be, 72, 1),
		},
		{
			desc:  "past end",
			entry: IFDEntry{Type: TypeURational64, Count: 1, IFDData: [4]byte{0, 0, 0, 17}, Order: be},
		},
		{
			desc:  "offset near max uint32",
			entry: IFDEntry{Type: TypeURational64, Count: 1, IFDData: [4]byte{0xff, 0xff, 0xff, 0xfc}, Order: be},
		},
		{
			desc:  "huge count",
			entry: IFDEntry{Type: TypeFloat64, Count: 0xffffffff, IFDData: [4]byte{0, 0, 0, 0}, Order: be},
		},
		{
			desc:     "unknown format sized as bytes",
			entry:    IFDEntry{Type: 99, Count: 8, IFDData: [4]byte{0, 0, 0, 16}, Order: be},
			ok:       true,
			expected: urats(be, 72, 1),
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			e := tC.entry
			ok := e.ResolveData(container)
			if ok != tC.ok {
				t.Fatalf("got ok=%v", ok)
			}
			if ok && !bytes.Equal(e.Data, tC.expected) {
				t.Errorf("got data %v, want %v", e.Data, tC.expected)
			}
		})
	}
}

func TestIFDEntryAppendTo(t *testing.T) {
	le := binary.LittleEndian
	inline := IFDEntry{ID: idOrientation, Type: TypeUint16, Count: 1, Data: []byte{1, 0, 0, 0}, Order: le}
	out, patches, err := inline.appendTo([]byte{0xaa}, le, nil)
	if err != nil {
		t.Fatal(err)
	}
	expected := []byte{0xaa, 0x12, 0x01, 0x03, 0x00, 0x01, 0, 0, 0, 1, 0, 0, 0}
	if !bytes.Equal(out, expected) || len(patches) != 0 {
		t.Fatalf("got %x, %d patches", out, len(patches))
	}

	outOfLine := IFDEntry{ID: idXResolution, Type: TypeURational64, Count: 1, Data: urats(le, 300, 1), Order: le}
	out, patches, err = outOfLine.appendTo(out, le, patches)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(expected)+12 {
		t.Fatalf("record length %d", len(out)-len(expected))
	}
	if !bytes.Equal(out[len(out)-4:], []byte{0, 0, 0, 0}) {
		t.Error("placeholder not zero")
	}
	if len(patches) != 1 || patches[0].pos != len(out)-4 || !bytes.Equal(patches[0].payload, urats(le, 300, 1)) {
		t.Errorf("bad patch %+v", patches)
	}

	maker := IFDEntry{Namespace: NamespaceCanon, ID: 1, Type: TypeUint16, Count: 1, Order: le}
	if _, _, err := maker.appendTo(nil, le, nil); !errors.Is(err, ErrUnsupportedNamespace) {
		t.Errorf("got %v, want ErrUnsupportedNamespace", err)
	}
}

func TestIFDEntryEqualIgnoresOffset(t *testing.T) {
	be := binary.BigEndian
	a := IFDEntry{ID: idXResolution, Type: TypeURational64, Count: 1, IFDData: [4]byte{0, 0, 0, 8}, Data: urats(be, 72, 1), Order: be}
	b := a
	b.IFDData = [4]byte{0, 0, 1, 0}
	if !a.Equal(&b) {
		t.Error("entries with same data at different offsets should be equal")
	}
	b.Data = urats(be, 96, 1)
	if a.Equal(&b) {
		t.Error("entries with different data should differ")
	}

	ptrA := IFDEntry{ID: idExifOffset, Type: TypeUint32, Count: 1, IFDData: [4]byte{0, 0, 0, 26}, Data: []byte{0, 0, 0, 26}, Order: be}
	ptrB := ptrA
	ptrB.IFDData, ptrB.Data = [4]byte{0, 0, 2, 0}, []byte{0, 0, 2, 0}
	if !ptrA.Equal(&ptrB) {
		t.Error("sub-IFD pointers to different offsets should be equal")
	}
	ptrB.Count = 2
	if ptrA.Equal(&ptrB) {
		t.Error("pointer count is still compared")
	}
}

func TestEntryEqualPointer(t *testing.T) {
	be := binary.BigEndian
	a := Entry{
		IFD:      IFDEntry{ID: idGPSOffset, Type: TypeUint32, Count: 1, Data: []byte{0, 0, 0, 8}, Order: be},
		Tag:      idGPSOffset.Tag(),
		Value:    U32{8},
		Unit:     "byte offset",
		Readable: "8",
		Group:    GroupIFD0,
	}
	b := a
	b.IFD.Data = []byte{0, 0, 4, 0}
	b.Value, b.Readable = U32{1024}, "1024"
	if !a.Equal(&b) {
		t.Error("GPSOffset entries should ignore value")
	}
	b.Group = GroupExif
	if a.Equal(&b) {
		t.Error("group should be compared")
	}
}
