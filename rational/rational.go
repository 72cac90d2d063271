// Package rational implements the two rational number types found in
// TIFF/EXIF directories: a pair of 32 bit unsigned integers and a pair
// of 32 bit signed integers.
package rational

import (
	"encoding/binary"
	"strconv"
)

// Size is the encoded size of a rational: numerator followed by denominator.
const Size = 8

// Rational is implemented by rational numbers in this package.
type Rational interface {
	Fraction() (numerator, denominator int64)
	Value() float64
}

var (
	_ Rational = URational{}
	_ Rational = IRational{}
)

// URational is the EXIF RATIONAL type. A zero denominator is legal: cameras
// use 0/0 to mean "unknown".
type URational struct {
	Numerator   uint32
	Denominator uint32
}

// IRational is the EXIF SRATIONAL type.
type IRational struct {
	Numerator   int32
	Denominator int32
}

// Value returns the quotient as a float. Division by zero follows IEEE-754,
// so 1/0 is +Inf and 0/0 is NaN.
func (u URational) Value() float64 {
	return float64(u.Numerator) / float64(u.Denominator)
}

// Value returns the quotient as a float. See [URational.Value].
func (i IRational) Value() float64 {
	return float64(i.Numerator) / float64(i.Denominator)
}

func (u URational) Fraction() (numerator, denominator int64) {
	return int64(u.Numerator), int64(u.Denominator)
}

func (i IRational) Fraction() (numerator, denominator int64) {
	return int64(i.Numerator), int64(i.Denominator)
}

func (u URational) String() string {
	return strconv.FormatUint(uint64(u.Numerator), 10) + "/" + strconv.FormatUint(uint64(u.Denominator), 10)
}

func (i IRational) String() string {
	return strconv.FormatInt(int64(i.Numerator), 10) + "/" + strconv.FormatInt(int64(i.Denominator), 10)
}

// AppendU appends the encoded form of u to b.
func AppendU(b []byte, order binary.ByteOrder, u URational) []byte {
	var buf [Size]byte
	order.PutUint32(buf[:], u.Numerator)
	order.PutUint32(buf[4:], u.Denominator)
	return append(b, buf[:]...)
}

// AppendI appends the encoded form of i to b.
func AppendI(b []byte, order binary.ByteOrder, i IRational) []byte {
	var buf [Size]byte
	order.PutUint32(buf[:], uint32(i.Numerator))
	order.PutUint32(buf[4:], uint32(i.Denominator))
	return append(b, buf[:]...)
}

// DecodeU decodes an unsigned rational from the first 8 bytes of b.
func DecodeU(order binary.ByteOrder, b []byte) (URational, bool) {
	if len(b) < Size {
		return URational{}, false
	}
	return URational{Numerator: order.Uint32(b), Denominator: order.Uint32(b[4:])}, true
}

// DecodeI decodes a signed rational from the first 8 bytes of b.
func DecodeI(order binary.ByteOrder, b []byte) (IRational, bool) {
	if len(b) < Size {
		return IRational{}, false
	}
	return IRational{Numerator: int32(order.Uint32(b)), Denominator: int32(order.Uint32(b[4:]))}, true
}

// DecodeUs decodes count unsigned rationals from b. count is untrusted.
func DecodeUs(order binary.ByteOrder, count uint32, b []byte) ([]URational, bool) {
	if uint64(count)*Size > uint64(len(b)) {
		return nil, false
	}
	v := make([]URational, count)
	for i := range v {
		v[i], _ = DecodeU(order, b[Size*i:])
	}
	return v, true
}

// DecodeIs decodes count signed rationals from b. count is untrusted.
func DecodeIs(order binary.ByteOrder, count uint32, b []byte) ([]IRational, bool) {
	if uint64(count)*Size > uint64(len(b)) {
		return nil, false
	}
	v := make([]IRational, count)
	for i := range v {
		v[i], _ = DecodeI(order, b[Size*i:])
	}
	return v, true
}
