// Package hwy exposes SSSE3 packed byte operations over a typed 128-bit
// vector.
//
// Vec16x8 holds 16 byte lanes that can be read as signed or unsigned
// integers. AbsPackedBytes (PABSB) and ShuffleBytes (PSHUFB) are only
// compiled into amd64 builds, and must only be called once HasSSSE3 has
// reported true:
//
//	import "github.com/ajroetker/go-highway-ssse3/hwy"
//
//	if hwy.HasSSSE3() {
//		a := hwy.Set16x8[int8](-5)
//		r := hwy.AbsPackedBytes(a) // every lane is 5
//	}
package hwy

import "unsafe"

// Lanes8 is a constraint for the byte-sized lane types of Vec16x8.
type Lanes8 interface {
	~int8 | ~uint8
}

// Vec16x8 is a 128-bit vector of 16 byte lanes.
//
// Lane 0 is the least-significant byte of the register, which is also the
// first byte in memory order. The signed and unsigned views share the same
// bits; switching views never changes them.
//
// Vec16x8 is a plain value: operations take it by copy and return a new one.
type Vec16x8 struct {
	b [16]byte
}

// Zero16x8 returns a vector with all lanes set to zero.
func Zero16x8() Vec16x8 {
	return Vec16x8{}
}

// FromInt8x16 builds a vector from 16 signed lanes.
func FromInt8x16(lanes [16]int8) Vec16x8 {
	return Vec16x8{b: *(*[16]byte)(unsafe.Pointer(&lanes))}
}

// FromUint8x16 builds a vector from 16 unsigned lanes.
func FromUint8x16(lanes [16]uint8) Vec16x8 {
	return Vec16x8{b: lanes}
}

// Load16x8 loads up to 16 lanes from src. Lanes past len(src) are zero.
func Load16x8[T Lanes8](src []T) Vec16x8 {
	var v Vec16x8
	n := min(len(src), 16)
	for i := 0; i < n; i++ {
		v.b[i] = byte(src[i])
	}
	return v
}

// Set16x8 returns a vector with every lane set to value.
func Set16x8[T Lanes8](value T) Vec16x8 {
	var v Vec16x8
	for i := range v.b {
		v.b[i] = byte(value)
	}
	return v
}

// Store16x8 writes up to 16 lanes of v to dst and returns how many were written.
func Store16x8[T Lanes8](v Vec16x8, dst []T) int {
	n := min(len(dst), 16)
	for i := 0; i < n; i++ {
		dst[i] = T(v.b[i])
	}
	return n
}

// GetLane16x8 extracts lane idx of v.
// Returns zero value if index is out of bounds.
func GetLane16x8[T Lanes8](v Vec16x8, idx int) T {
	if idx < 0 || idx >= 16 {
		var zero T
		return zero
	}
	return T(v.b[idx])
}

// InsertLane16x8 returns a copy of v with lane idx set to val.
// Returns v unchanged if index is out of bounds.
func InsertLane16x8[T Lanes8](v Vec16x8, idx int, val T) Vec16x8 {
	if idx < 0 || idx >= 16 {
		return v
	}
	v.b[idx] = byte(val)
	return v
}

// Int8s returns the signed view of v.
func (v Vec16x8) Int8s() [16]int8 {
	return *(*[16]int8)(unsafe.Pointer(&v.b))
}

// Uint8s returns the unsigned view of v.
func (v Vec16x8) Uint8s() [16]uint8 {
	return v.b
}

// NumLanes returns the number of lanes, always 16.
func (v Vec16x8) NumLanes() int {
	return len(v.b)
}
