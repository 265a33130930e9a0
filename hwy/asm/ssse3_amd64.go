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

package asm

// SSSE3 kernels, defined in ssse3_amd64.s.
//
// None of these check for SSSE3 support. Executing them on a CPU without
// SSSE3 raises SIGILL; callers gate on hwy.HasSSSE3.

//go:noescape
func pabsb128(dst *[16]uint8, src *[16]int8)

//go:noescape
func pshufb128(dst *[16]uint8, a *[16]uint8, b *[16]uint8)

//go:noescape
func absInt8Blocks(dst *uint8, src *int8, blocks int)

//go:noescape
func shuffleUint8Blocks(dst *uint8, src *uint8, table *[16]uint8, blocks int)

// AbsInt8x16 computes the absolute value of each signed lane of a (PABSB).
// A lane holding -128 yields 128.
func AbsInt8x16(a [16]int8) [16]uint8 {
	var r [16]uint8
	pabsb128(&r, &a)
	return r
}

// ShuffleUint8x16 permutes the bytes of a according to the control bytes in b
// (PSHUFB). Lane i of the result is 0 when b[i]&0x80 is set, and a[b[i]&0x0f]
// otherwise.
func ShuffleUint8x16(a, b [16]uint8) [16]uint8 {
	var r [16]uint8
	pshufb128(&r, &a, &b)
	return r
}

// AbsInt8 performs element-wise absolute value: dst[i] = |src[i]|.
// Processes min(len(dst), len(src)) elements.
func AbsInt8(dst []uint8, src []int8) {
	n := min(len(dst), len(src))
	blocks := n / 16
	if blocks > 0 {
		absInt8Blocks(&dst[0], &src[0], blocks)
	}
	done := blocks * 16
	if done == n {
		return
	}
	var in [16]int8
	copy(in[:], src[done:n])
	out := AbsInt8x16(in)
	copy(dst[done:n], out[:n-done])
}

// ShuffleUint8 replaces every byte of src with the table entry it selects
// under the PSHUFB rule: dst[i] = 0 if src[i] >= 0x80, else table[src[i]&0x0f].
// Processes min(len(dst), len(src)) elements.
func ShuffleUint8(dst, src []uint8, table *[16]uint8) {
	n := min(len(dst), len(src))
	blocks := n / 16
	if blocks > 0 {
		shuffleUint8Blocks(&dst[0], &src[0], table, blocks)
	}
	done := blocks * 16
	if done == n {
		return
	}
	// Zero padding selects table[0]; those lanes are discarded.
	var in [16]uint8
	copy(in[:], src[done:n])
	out := ShuffleUint8x16(*table, in)
	copy(dst[done:n], out[:n-done])
}
