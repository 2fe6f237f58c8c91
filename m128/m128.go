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

package m128

import "encoding/binary"

// M128 is a 128-bit vector. Word 0 holds bits 0 to 63 and word 1 holds bits
// 64 to 127; byte j of the vector is bits 8j to 8j+7.
type M128 [2]uint64

// Elem is the set of element types an M128 can be viewed as.
type Elem interface {
	uint8 | uint16 | uint32 | uint64
}

// Load reads a vector from the first 16 bytes of b, little endian.
func Load(b []byte) M128 {
	_ = b[15]
	return M128{binary.LittleEndian.Uint64(b), binary.LittleEndian.Uint64(b[8:])}
}

// Store writes v to the first 16 bytes of b, little endian.
func Store(b []byte, v M128) {
	_ = b[15]
	binary.LittleEndian.PutUint64(b, v[0])
	binary.LittleEndian.PutUint64(b[8:], v[1])
}

// Get64 returns 64-bit element i of v.
func Get64(v M128, i int) uint64 {
	return v[i&1]
}

// Get32 returns 32-bit element i of v.
func Get32(v M128, i int) uint32 {
	return uint32(v[(i>>1)&1] >> (32 * uint(i&1)))
}

// Get16 returns 16-bit element i of v.
func Get16(v M128, i int) uint16 {
	return uint16(v[(i>>2)&1] >> (16 * uint(i&3)))
}

// Get8 returns byte i of v.
func Get8(v M128, i int) uint8 {
	return uint8(v[(i>>3)&1] >> (8 * uint(i&7)))
}

// Lane returns element i of v viewed as a vector of T.
func Lane[T Elem](v M128, i int) T {
	var x T
	switch any(x).(type) {
	case uint8:
		return T(Get8(v, i))
	case uint16:
		return T(Get16(v, i))
	case uint32:
		return T(Get32(v, i))
	default:
		return T(Get64(v, i))
	}
}

// Bytes returns the 16 bytes of v, little endian.
func (v M128) Bytes() [16]byte {
	var b [16]byte
	Store(b[:], v)
	return b
}

// Words32 returns the four 32-bit elements of v, lowest first.
func (v M128) Words32() [4]uint32 {
	return [4]uint32{uint32(v[0]), uint32(v[0] >> 32), uint32(v[1]), uint32(v[1] >> 32)}
}
