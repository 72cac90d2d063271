package tiff

import (
	"encoding/binary"
	"math"
)

// The Read functions decode a single value from the start of b. They
// return false instead of panicking when b is too short, since lengths
// and offsets come from the (untrusted) container being parsed.

func ReadU16(order binary.ByteOrder, b []byte) (uint16, bool) {
	if len(b) < 2 {
		return 0, false
	}
	return order.Uint16(b), true
}

func ReadI16(order binary.ByteOrder, b []byte) (int16, bool) {
	v, ok := ReadU16(order, b)
	return int16(v), ok
}

func ReadU32(order binary.ByteOrder, b []byte) (uint32, bool) {
	if len(b) < 4 {
		return 0, false
	}
	return order.Uint32(b), true
}

func ReadI32(order binary.ByteOrder, b []byte) (int32, bool) {
	v, ok := ReadU32(order, b)
	return int32(v), ok
}

// ReadF32 reads an IEEE-754 single. Floats are always stored little endian
// here, whatever the byte order of the surrounding directory.
func ReadF32(b []byte) (float32, bool) {
	if len(b) < 4 {
		return 0, false
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), true
}

// ReadF64 reads an IEEE-754 double, little endian. See ReadF32.
func ReadF64(b []byte) (float64, bool) {
	if len(b) < 8 {
		return 0, false
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), true
}

// window returns the first count*size bytes of b or false if b is shorter.
// count is untrusted so the product is computed in 64 bits.
func window(count uint32, size int, b []byte) ([]byte, bool) {
	n := uint64(count) * uint64(size)
	if n > uint64(len(b)) {
		return nil, false
	}
	return b[:n], true
}

// ReadI8s reinterprets the first count bytes of b as signed bytes.
func ReadI8s(count uint32, b []byte) ([]int8, bool) {
	w, ok := window(count, 1, b)
	if !ok {
		return nil, false
	}
	v := make([]int8, len(w))
	for i := range w {
		v[i] = int8(w[i])
	}
	return v, true
}

func ReadU16s(order binary.ByteOrder, count uint32, b []byte) ([]uint16, bool) {
	w, ok := window(count, 2, b)
	if !ok {
		return nil, false
	}
	v := make([]uint16, count)
	for i := range v {
		v[i] = order.Uint16(w[2*i:])
	}
	return v, true
}

func ReadI16s(order binary.ByteOrder, count uint32, b []byte) ([]int16, bool) {
	w, ok := window(count, 2, b)
	if !ok {
		return nil, false
	}
	v := make([]int16, count)
	for i := range v {
		v[i] = int16(order.Uint16(w[2*i:]))
	}
	return v, true
}

func ReadU32s(order binary.ByteOrder, count uint32, b []byte) ([]uint32, bool) {
	w, ok := window(count, 4, b)
	if !ok {
		return nil, false
	}
	v := make([]uint32, count)
	for i := range v {
		v[i] = order.Uint32(w[4*i:])
	}
	return v, true
}

func ReadI32s(order binary.ByteOrder, count uint32, b []byte) ([]int32, bool) {
	w, ok := window(count, 4, b)
	if !ok {
		return nil, false
	}
	v := make([]int32, count)
	for i := range v {
		v[i] = int32(order.Uint32(w[4*i:]))
	}
	return v, true
}

func ReadF32s(count uint32, b []byte) ([]float32, bool) {
	w, ok := window(count, 4, b)
	if !ok {
		return nil, false
	}
	v := make([]float32, count)
	for i := range v {
		v[i], _ = ReadF32(w[4*i:])
	}
	return v, true
}

func ReadF64s(count uint32, b []byte) ([]float64, bool) {
	w, ok := window(count, 8, b)
	if !ok {
		return nil, false
	}
	v := make([]float64, count)
	for i := range v {
		v[i], _ = ReadF64(w[8*i:])
	}
	return v, true
}
