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

import "github.com/ajroetker/go-simdutils/tier"

// Element rotations across the whole vector. Shuflr moves every element one
// position toward element 0, with element 0 wrapping to the top; Shufll is
// its inverse.

// Swap64 swaps the two 64-bit halves of v.
func Swap64(v M128) M128 { return shuffleEpi32(v, 0x4e) }

// Shuflr64 rotates v right by one 64-bit element. With two elements this is
// Swap64.
func Shuflr64(v M128) M128 { return Swap64(v) }

// Shufll64 rotates v left by one 64-bit element.
func Shufll64(v M128) M128 { return Swap64(v) }

// Shuflr32 rotates v right by one 32-bit element.
func Shuflr32(v M128) M128 { return shuffleEpi32(v, 0x39) }

// Shufll32 rotates v left by one 32-bit element.
func Shufll32(v M128) M128 { return shuffleEpi32(v, 0x93) }

// Shuflr16 rotates v right by one 16-bit element.
func Shuflr16(v M128) M128 { return rotateBytes(v, 2) }

// Shufll16 rotates v left by one 16-bit element.
func Shufll16(v M128) M128 { return rotateBytes(v, 14) }

// Shuflr8 rotates v right by one byte.
func Shuflr8(v M128) M128 { return rotateBytes(v, 1) }

// Shufll8 rotates v left by one byte.
func Shufll8(v M128) M128 { return rotateBytes(v, 15) }

// rotateBytes rotates v right by n bytes, 0 <= n < 16.
func rotateBytes(v M128, n int) M128 {
	if tier.Build >= tier.SSSE3 {
		return rotateBytes_SSSE3(v, n)
	}
	return rotateBytes_SSE2(v, n)
}

func rotateBytes_SSE2(v M128, n int) M128 {
	return or(srliSi128(v, n), slliSi128(v, 16-n))
}

func rotateBytes_SSSE3(v M128, n int) M128 {
	return alignrEpi8(v, v, n)
}

// ShuflrN64 rotates v right by n 64-bit elements. n is taken modulo 2, so a
// negative n rotates left.
func ShuflrN64(v M128, n int) M128 {
	if n&1 == 0 {
		return v
	}
	return Swap64(v)
}

// ShuflrN32 rotates v right by n 32-bit elements, n modulo 4.
func ShuflrN32(v M128, n int) M128 {
	switch n & 3 {
	case 1:
		return shuffleEpi32(v, 0x39)
	case 2:
		return shuffleEpi32(v, 0x4e)
	case 3:
		return shuffleEpi32(v, 0x93)
	default:
		return v
	}
}

// ShuflrN16 rotates v right by n 16-bit elements, n modulo 8.
func ShuflrN16(v M128, n int) M128 {
	return rotateBytes(v, 2*(n&7))
}

// ShuflrN8 rotates v right by n bytes, n modulo 16.
func ShuflrN8(v M128, n int) M128 {
	return rotateBytes(v, n&15)
}

// Shuffle2_64 is SHUFPD: the low 64-bit element of the result is element
// c&1 of v1 and the high one is element c>>1&1 of v2.
func Shuffle2_64(v1, v2 M128, c uint8) M128 {
	return shufflePd(v1, v2, c)
}

// Shuffle2_32 is SHUFPS: the low two 32-bit elements of the result are
// selected from v1 and the high two from v2, two bits of c each.
func Shuffle2_32(v1, v2 M128, c uint8) M128 {
	return shufflePs(v1, v2, c)
}
