// Copyright 2025 go-simdutils Authors
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

//go:build amd64.v2

package m128

// INSERTPS helpers. They have no SSE2 or SSSE3 form and exist only in SSE4.1
// and higher builds.
//
// The control byte c of XIM32 is laid out as:
//
//	bits 7:6  source element of v2
//	bits 5:4  destination element in v1
//	bits 3:0  elements of the result to zero
//
// The copy happens before the zeroing.

// XIM32 copies a 32-bit element of v2 into v1 and zeroes elements of the
// result, as selected by c.
func XIM32(v1, v2 M128, c uint8) M128 {
	return insertPs(v1, v2, c)
}

// Insert32 returns v with 32-bit element i replaced by x.
func Insert32(v M128, x uint32, i int) M128 {
	return insertPs(v, Mov32(x), uint8(i&3)<<4)
}

// Extract32 returns 32-bit element i of v.
func Extract32(v M128, i int) uint32 {
	return U32(insertPs(v, v, uint8(i&3)<<6))
}

// Mask32 zeroes the 32-bit elements of v selected by the low four bits of m.
func Mask32(v M128, m uint8) M128 {
	return insertPs(v, v, m&0xf)
}

// ShufMov32 returns v1 with element i1 replaced by element i2 of v2.
func ShufMov32(v1 M128, i1 int, v2 M128, i2 int) M128 {
	return insertPs(v1, v2, uint8(i1&3)<<4|uint8(i2&3)<<6)
}
