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

// NibbleLookupTable is a 16-entry byte substitution f where
//
//	f(b) = table[b & 15] for b <= 127
//	f(b) = 0             for b > 127
//
// which is exactly the ShuffleBytes rule with the table as the source
// vector and the input bytes as controls. Only the bottom nibble of an
// input byte indexes the table.
type NibbleLookupTable struct {
	table Vec16x8
}

// NewNibbleLookupTable returns a lookup table with the given 16 entries.
func NewNibbleLookupTable(entries [16]byte) *NibbleLookupTable {
	return &NibbleLookupTable{table: FromUint8x16(entries)}
}

// Table returns the table entries as a vector.
func (t *NibbleLookupTable) Table() Vec16x8 {
	return t.table
}

// Get applies the substitution to a single byte.
func (t *NibbleLookupTable) Get(b byte) byte {
	if b&0x80 != 0 {
		return 0
	}
	return t.table.b[b&0x0f]
}

// Lookup16 applies the substitution to every lane of v.
func (t *NibbleLookupTable) Lookup16(v Vec16x8) Vec16x8 {
	return ShuffleBytes(t.table, v)
}

// LookupBytes applies t to every byte of src, writing to dst.
// Processes min(len(dst), len(src)) bytes and returns that count.
// dst and src may be the same slice.
func LookupBytes(dst, src []byte, t *NibbleLookupTable) int {
	n := min(len(dst), len(src))
	table := t.table.Uint8s()
	asm.ShuffleUint8(dst[:n], src[:n], &table)
	return n
}
