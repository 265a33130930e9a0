// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build !noasm && amd64

package hwy

import "github.com/ajroetker/go-highway-ssse3/hwy/asm"

// This file provides the SSSE3 byte operations. There is no scalar
// fallback: the functions only exist in amd64 builds, and the CPU must
// support SSSE3 (see HasSSSE3). Calling them on a CPU without SSSE3 is
// undefined and typically faults with SIGILL.

// AbsPackedBytes computes the lane-wise absolute value of a, read through
// its signed view, and returns the result to be read through the unsigned
// view (PABSB).
//
// -128 has no positive 8-bit counterpart and maps to 128, i.e. each lane is
// (-a[i]) mod 256 for negative inputs.
//
//	AbsPackedBytes(Set16x8[int8](-5)) == Set16x8[uint8](5)
func AbsPackedBytes(a Vec16x8) Vec16x8 {
	return FromUint8x16(asm.AbsInt8x16(a.Int8s()))
}

// ShuffleBytes rearranges the bytes of a using the control bytes in b
// (PSHUFB). Both operands and the result use the unsigned view.
//
// For each lane i:
//   - if b[i]&0x80 != 0, result[i] = 0
//   - otherwise result[i] = a[b[i]&0x0f]
//
// Bits 4-6 of a control byte take no part in addressing, so 24 selects
// lane 8 exactly like 8 does. Every output lane picks independently, so one
// call can permute, duplicate or zero any combination of lanes.
//
//	a := [1, 2, ..., 16]
//	b := [4, 128, 4, 3, 24, 12, 6, 19, 12, 5, 5, 10, 4, 1, 8, 0]
//	ShuffleBytes(a, b) == [5, 0, 5, 4, 9, 13, 7, 4, 13, 6, 6, 11, 5, 2, 9, 1]
func ShuffleBytes(a, b Vec16x8) Vec16x8 {
	return FromUint8x16(asm.ShuffleUint8x16(a.Uint8s(), b.Uint8s()))
}

// AbsBytes applies AbsPackedBytes across a slice: dst[i] = |src[i]|.
// Processes min(len(dst), len(src)) elements and returns that count.
func AbsBytes(dst []uint8, src []int8) int {
	n := min(len(dst), len(src))
	asm.AbsInt8(dst[:n], src[:n])
	return n
}
