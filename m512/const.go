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
	"github.com/ajroetker/go-simdutils/m128"
	"github.com/ajroetker/go-simdutils/m256"
)

// Constants. Only Zero and Neg1 are free; everything else here costs at
// least a move and a broadcast, so a constant used inside a loop belongs in a
// local assigned once before the loop.

// Mov64 returns n in element 0 with the rest of the vector zeroed.
func Mov64(n uint64) M512 { return castsi128(m128.Mov64(n)) }

// Mov32 returns n in element 0 with the rest of the vector zeroed.
func Mov32(n uint32) M512 { return castsi128(m128.Mov32(n)) }

// U64 returns 64-bit element 0 of v.
func U64(v M512) uint64 { return m128.U64(Extract128(v, 0)) }

// U32 returns 32-bit element 0 of v.
func U32(v M512) uint32 { return m128.U32(Extract128(v, 0)) }

// Perm128 shuffles the 128-bit lanes of v: lane i of the result is lane
// c>>(2i)&3 of v.
func Perm128(v M512, c uint8) M512 { return shuffleI64x2(v, v, c) }

// Concat256 returns the vector {hi, lo}.
func Concat256(hi, lo m256.M256) M512 { return insertI64x4(castsi256(lo), hi, 1) }

// Const128 returns the vector whose 128-bit lanes are {v3, v2, v1, v0}.
func Const128(v3, v2, v1, v0 m128.M128) M512 {
	return Concat256(m256.Concat128(v3, v2), m256.Concat128(v1, v0))
}

// Const64 returns the vector with 64-bit elements {i7, ..., i0}. The values
// are assembled in memory and loaded as one vector.
func Const64(i7, i6, i5, i4, i3, i2, i1, i0 uint64) M512 {
	var buf [8]uint64
	buf[0], buf[1], buf[2], buf[3] = i0, i1, i2, i3
	buf[4], buf[5], buf[6], buf[7] = i4, i5, i6, i7
	return M512(buf)
}

// Const1_256 broadcasts v to both 256-bit halves.
func Const1_256(v m256.M256) M512 { return insertI64x4(castsi256(v), v, 1) }

// Const1_128 broadcasts v to all four lanes.
func Const1_128(v m128.M128) M512 { return Perm128(castsi128(v), 0) }

// Const1_I128 broadcasts the 128-bit integer n to all four lanes.
func Const1_I128(n uint64) M512 { return Const1_128(m128.Mov64(n)) }

// Const1_64 broadcasts n to every 64-bit element.
func Const1_64(n uint64) M512 { return broadcastq(m128.Mov64(n)) }

// Const1_32 broadcasts n to every 32-bit element.
func Const1_32(n uint32) M512 { return broadcastd(m128.Mov32(n)) }

// Const1_16 broadcasts n to every 16-bit element.
func Const1_16(n uint16) M512 { return broadcastw(m128.Mov32(uint32(n))) }

// Const1_8 broadcasts n to every byte.
func Const1_8(n uint8) M512 { return broadcastb(m128.Mov32(uint32(n))) }

// Const2_128 returns the vector whose lanes are {v1, v0, v1, v0}.
func Const2_128(v1, v0 m128.M128) M512 {
	return Const1_256(Lo256(insertI64x2(castsi128(v0), v1, 1)))
}

// Const2_64 returns the vector whose 64-bit elements alternate i1, i0 with
// i0 in element 0.
func Const2_64(i1, i0 uint64) M512 { return Const1_128(m128.Const64(i1, i0)) }

// Const4_64 returns the vector whose 64-bit elements repeat {i3, i2, i1, i0}
// in both halves.
func Const4_64(i3, i2, i1, i0 uint64) M512 { return Const1_256(m256.Const4_64(i3, i2, i1, i0)) }

// Broadcast returns x in every element of a vector of T.
func Broadcast[T Elem](x T) M512 {
	switch x := any(x).(type) {
	case uint8:
		return Const1_8(x)
	case uint16:
		return Const1_16(x)
	case uint32:
		return Const1_32(x)
	default:
		return Const1_64(any(x).(uint64))
	}
}

// FromLanes assembles a vector from per-element values, element 0 first,
// through the same memory overlay as Const64. Elements past the end of xs
// are zero; xs must fit in 512 bits.
func FromLanes[T Elem](xs ...T) M512 {
	var buf M512
	var x T
	width := 8 * sizeOf(x)
	per := int(64 / width)
	for i, e := range xs {
		buf[i/per] |= uint64(e) << (uint(i%per) * width)
	}
	return buf
}

func sizeOf[T Elem](x T) uint {
	switch any(x).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

// Zero returns the all-zeros vector.
func Zero() M512 { return M512{} }

// Neg1 returns the all-ones vector.
func Neg1() M512 { return movmEpi64(0xff) }

// One512 returns the 512-bit integer 1.
func One512() M512 { return Mov64(1) }

// One256 returns the 256-bit integer 1 in both halves.
func One256() M512 { return insertI64x4(One512(), m256.One256(), 1) }

// One128 returns the 128-bit integer 1 in every lane.
func One128() M512 { return Const1_I128(1) }

// One64 returns 1 in every 64-bit element.
func One64() M512 { return Const1_64(1) }

// One32 returns 1 in every 32-bit element.
func One32() M512 { return Const1_32(1) }

// One16 returns 1 in every 16-bit element.
func One16() M512 { return Const1_16(1) }

// One8 returns 1 in every byte.
func One8() M512 { return Const1_8(1) }
