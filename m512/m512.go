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

package m512

import (
	"encoding/binary"

	"github.com/ajroetker/go-simdutils/m128"
	"github.com/ajroetker/go-simdutils/m256"
)

// M512 is a 512-bit vector. Word i holds bits 64i to 64i+63; byte j of the
// vector is bits 8j to 8j+7. Lane j is words 2j and 2j+1.
type M512 [8]uint64

// Elem is the set of element types an M512 can be viewed as.
type Elem interface {
	uint8 | uint16 | uint32 | uint64
}

// Load reads a vector from the first 64 bytes of b, little endian.
func Load(b []byte) M512 {
	_ = b[63]
	var v M512
	for i := range v {
		v[i] = binary.LittleEndian.Uint64(b[8*i:])
	}
	return v
}

// Store writes v to the first 64 bytes of b, little endian.
func Store(b []byte, v M512) {
	_ = b[63]
	for i, w := range v {
		binary.LittleEndian.PutUint64(b[8*i:], w)
	}
}

// Get64 returns 64-bit element i of v.
func Get64(v M512, i int) uint64 {
	return v[i&7]
}

// Get32 returns 32-bit element i of v.
func Get32(v M512, i int) uint32 {
	return uint32(v[(i>>1)&7] >> (32 * uint(i&1)))
}

// Get16 returns 16-bit element i of v.
func Get16(v M512, i int) uint16 {
	return uint16(v[(i>>2)&7] >> (16 * uint(i&3)))
}

// Get8 returns byte i of v.
func Get8(v M512, i int) uint8 {
	return uint8(v[(i>>3)&7] >> (8 * uint(i&7)))
}

// Lane returns element i of v viewed as a vector of T.
func Lane[T Elem](v M512, i int) T {
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

// Extract128 returns 128-bit lane i of v (VEXTRACTI64X2).
func Extract128(v M512, i int) m128.M128 {
	i &= 3
	return m128.M128{v[2*i], v[2*i+1]}
}

// Lo256 returns the low half of v.
func Lo256(v M512) m256.M256 {
	return m256.M256{v[0], v[1], v[2], v[3]}
}

// Hi256 returns the high half of v (VEXTRACTI64X4).
func Hi256(v M512) m256.M256 {
	return m256.M256{v[4], v[5], v[6], v[7]}
}

// Bytes returns the 64 bytes of v, little endian.
func (v M512) Bytes() [64]byte {
	var b [64]byte
	Store(b[:], v)
	return b
}
