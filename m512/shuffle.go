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

import "github.com/ajroetker/go-simdutils/tier"

// Shuffle-rotates. Shuflr moves elements toward element 0 and Shufll away
// from it, wrapping around the span named by the prefix: the whole vector,
// each 256-bit half (Shuflr256_*) or each 128-bit lane (Shuflr128_*).
// Elements are never shifted out; see Shiftr and Shiftl for that.

// Swap256 exchanges the two 256-bit halves of v.
func Swap256(v M512) M512 { return alignrEpi64(v, v, 4) }

// Shuflr256 rotates v right by 256 bits.
func Shuflr256(v M512) M512 { return Swap256(v) }

// Shufll256 rotates v left by 256 bits.
func Shufll256(v M512) M512 { return Swap256(v) }

// Shuflr128 rotates v right by one 128-bit lane.
func Shuflr128(v M512) M512 { return alignrEpi64(v, v, 2) }

// Shufll128 rotates v left by one 128-bit lane.
func Shufll128(v M512) M512 { return alignrEpi64(v, v, 6) }

// Shuflr64 rotates v right by one 64-bit element.
func Shuflr64(v M512) M512 { return alignrEpi64(v, v, 1) }

// Shufll64 rotates v left by one 64-bit element.
func Shufll64(v M512) M512 { return alignrEpi64(v, v, 7) }

// Shuflr32 rotates v right by one 32-bit element.
func Shuflr32(v M512) M512 { return alignrEpi32(v, v, 1) }

// Shufll32 rotates v left by one 32-bit element.
func Shufll32(v M512) M512 { return alignrEpi32(v, v, 15) }

// Shuflr16 rotates v right by one 16-bit element.
func Shuflr16(v M512) M512 { return permutexvarEpi16(shuflr16Index, v) }

// Shufll16 rotates v left by one 16-bit element.
func Shufll16(v M512) M512 { return permutexvarEpi16(shufll16Index, v) }

// Shuflr8 rotates v right by one byte.
func Shuflr8(v M512) M512 {
	if tier.Build >= tier.AVX512VBMI {
		return permutexvarEpi8(shuflr8Index, v)
	}
	return shuflr8_AVX512(v)
}

// Shufll8 rotates v left by one byte.
func Shufll8(v M512) M512 {
	if tier.Build >= tier.AVX512VBMI {
		return permutexvarEpi8(shufll8Index, v)
	}
	return shufll8_AVX512(v)
}

// Without a byte permute, each lane is aligned against its neighbour lane.
func shuflr8_AVX512(v M512) M512 { return alignrEpi8(Shuflr128(v), v, 1) }
func shufll8_AVX512(v M512) M512 { return alignrEpi8(v, Shufll128(v), 15) }

// ShuflrN64 rotates v right by n 64-bit elements, modulo 8.
func ShuflrN64(v M512, n int) M512 { return alignrEpi64(v, v, n&7) }

// ShuflrN32 rotates v right by n 32-bit elements, modulo 16.
func ShuflrN32(v M512, n int) M512 { return alignrEpi32(v, v, n&15) }

// ShuflrN16 rotates v right by n 16-bit elements, modulo 32. Even counts
// are dword rotations; odd ones build a word index.
func ShuflrN16(v M512, n int) M512 {
	n &= 31
	if n&1 == 0 {
		return alignrEpi32(v, v, n/2)
	}
	return permutexvarEpi16(rotateIndex16(n), v)
}

// ShuflrN8 rotates v right by n bytes, modulo 64.
func ShuflrN8(v M512, n int) M512 {
	if tier.Build >= tier.AVX512VBMI {
		return shuflrN8_VBMI(v, n)
	}
	return shuflrN8_AVX512(v, n)
}

// shuflrN8_AVX512 rotates whole lanes by n/16 and then aligns each lane with
// the following one by the remaining n%16 bytes.
func shuflrN8_AVX512(v M512, n int) M512 {
	n &= 63
	q, r := n/16, n%16
	t0 := Perm128(v, laneRotate(q))
	if r == 0 {
		return t0
	}
	return alignrEpi8(Perm128(v, laneRotate(q+1)), t0, r)
}

func shuflrN8_VBMI(v M512, n int) M512 {
	return permutexvarEpi8(rotateIndex8(n&63), v)
}

// laneRotate returns the Perm128 immediate that rotates lanes right by q.
func laneRotate(q int) uint8 {
	var imm uint8
	for i := range 4 {
		imm |= uint8((i+q)&3) << (2 * uint(i))
	}
	return imm
}

func rotateIndex16(n int) M512 {
	var idx M512
	for i := range 32 {
		put16(&idx, i, uint16((i+n)&31))
	}
	return idx
}

func rotateIndex8(n int) M512 {
	var b [64]byte
	for i := range b {
		b[i] = byte((i + n) & 63)
	}
	return Load(b[:])
}

// Zero-filling element shifts: the vacated elements are zero.

// Shiftr256 shifts v right by 256 bits.
func Shiftr256(v M512) M512 { return alignrEpi64(Zero(), v, 4) }

// Shiftl256 shifts v left by 256 bits.
func Shiftl256(v M512) M512 { return alignrEpi64(v, Zero(), 4) }

// Shiftr128 shifts v right by 128 bits.
func Shiftr128(v M512) M512 { return alignrEpi64(Zero(), v, 2) }

// Shiftl128 shifts v left by 128 bits.
func Shiftl128(v M512) M512 { return alignrEpi64(v, Zero(), 6) }

// Shiftr64 shifts v right by one 64-bit element.
func Shiftr64(v M512) M512 { return alignrEpi64(Zero(), v, 1) }

// Shiftl64 shifts v left by one 64-bit element.
func Shiftl64(v M512) M512 { return alignrEpi64(v, Zero(), 7) }

// Shiftr32 shifts v right by one 32-bit element.
func Shiftr32(v M512) M512 { return alignrEpi32(Zero(), v, 1) }

// Shiftl32 shifts v left by one 32-bit element.
func Shiftl32(v M512) M512 { return alignrEpi32(v, Zero(), 15) }

// Rotations within each 256-bit half.

// Swap256_128 exchanges the 128-bit lanes of each 256-bit half.
func Swap256_128(v M512) M512 { return permutexEpi64(v, 0x4e) }

// Shuflr256_128 rotates each 256-bit half right by 128 bits.
func Shuflr256_128(v M512) M512 { return Swap256_128(v) }

// Shufll256_128 rotates each 256-bit half left by 128 bits.
func Shufll256_128(v M512) M512 { return Swap256_128(v) }

// Shuflr256_64 rotates each 256-bit half right by one 64-bit element.
func Shuflr256_64(v M512) M512 { return permutexEpi64(v, 0x39) }

// Shufll256_64 rotates each 256-bit half left by one 64-bit element.
func Shufll256_64(v M512) M512 { return permutexEpi64(v, 0x93) }

// Shuflr256_32 rotates each 256-bit half right by one 32-bit element.
func Shuflr256_32(v M512) M512 { return permutexvarEpi32(shuflr256x32Index, v) }

// Shufll256_32 rotates each 256-bit half left by one 32-bit element.
func Shufll256_32(v M512) M512 { return permutexvarEpi32(shufll256x32Index, v) }

// Shuflr256_16 rotates each 256-bit half right by one 16-bit element.
func Shuflr256_16(v M512) M512 { return permutexvarEpi16(shuflr256x16Index, v) }

// Shufll256_16 rotates each 256-bit half left by one 16-bit element.
func Shufll256_16(v M512) M512 { return permutexvarEpi16(shufll256x16Index, v) }

// Shuflr256_8 rotates each 256-bit half right by one byte.
func Shuflr256_8(v M512) M512 {
	if tier.Build >= tier.AVX512VBMI {
		return permutexvarEpi8(shuflr256x8Index, v)
	}
	return alignrEpi8(Swap256_128(v), v, 1)
}

// Shufll256_8 rotates each 256-bit half left by one byte.
func Shufll256_8(v M512) M512 {
	if tier.Build >= tier.AVX512VBMI {
		return permutexvarEpi8(shufll256x8Index, v)
	}
	return alignrEpi8(v, Swap256_128(v), 15)
}

// Rotations within each 128-bit lane.

// Swap128_64 exchanges the 64-bit halves of each lane.
func Swap128_64(v M512) M512 { return shuffleEpi32(v, 0x4e) }

// Shuflr128_64 rotates each lane right by 64 bits.
func Shuflr128_64(v M512) M512 { return Swap128_64(v) }

// Shufll128_64 rotates each lane left by 64 bits.
func Shufll128_64(v M512) M512 { return Swap128_64(v) }

// Shuflr128_32 rotates each lane right by one 32-bit element.
func Shuflr128_32(v M512) M512 { return shuffleEpi32(v, 0x39) }

// Shufll128_32 rotates each lane left by one 32-bit element.
func Shufll128_32(v M512) M512 { return shuffleEpi32(v, 0x93) }

// Shuflr128_8 rotates each lane right by c bytes. c must be in [0, 15].
func Shuflr128_8(v M512, c int) M512 { return alignrEpi8(v, v, c) }

// Shuffle2_64 selects 64-bit elements from two vectors lane by lane: in lane
// j the low element comes from v1 and the high one from v2, each picked by
// bit 2j and bit 2j+1 of c.
func Shuffle2_64(v1, v2 M512, c uint8) M512 { return shufflePd(v1, v2, c) }

// Shuffle2_32 selects 32-bit elements from two vectors lane by lane: the low
// two elements of each lane come from v1 and the high two from v2, picked by
// the two-bit fields of c.
func Shuffle2_32(v1, v2 M512, c uint8) M512 { return shufflePs(v1, v2, c) }
