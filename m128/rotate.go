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

// Bit rotations. Every rotation amount is taken modulo the element width,
// so Ror64(v, k) and Rol64(v, 64-k) are the same vector. Below AVX-512 the
// rotations are a shift right ORed with a shift left.

// Ror64 rotates each 64-bit element of v right by c bits.
func Ror64(v M128, c int) M128 {
	if tier.Build >= tier.AVX512 {
		return rorEpi64(v, c)
	}
	return ror64_SSE2(v, c)
}

// Rol64 rotates each 64-bit element of v left by c bits.
func Rol64(v M128, c int) M128 {
	if tier.Build >= tier.AVX512 {
		return rolEpi64(v, c)
	}
	return rol64_SSE2(v, c)
}

// Ror32 rotates each 32-bit element of v right by c bits.
func Ror32(v M128, c int) M128 {
	if tier.Build >= tier.AVX512 {
		return rorEpi32(v, c)
	}
	return ror32_SSE2(v, c)
}

// Rol32 rotates each 32-bit element of v left by c bits.
func Rol32(v M128, c int) M128 {
	if tier.Build >= tier.AVX512 {
		return rolEpi32(v, c)
	}
	return rol32_SSE2(v, c)
}

// Ror16 rotates each 16-bit element of v right by c bits.
func Ror16(v M128, c int) M128 {
	if tier.Build >= tier.AVX512VBMI {
		return ror16_VBMI(v, c)
	}
	return ror16_SSE2(v, c)
}

// Rol16 rotates each 16-bit element of v left by c bits.
func Rol16(v M128, c int) M128 {
	if tier.Build >= tier.AVX512VBMI {
		return rol16_VBMI(v, c)
	}
	return rol16_SSE2(v, c)
}

// Ror8 rotates each byte of v right by c bits. There is no byte shift, so
// this is built from word shifts and byte masks at every tier.
func Ror8(v M128, c int) M128 {
	k := uint(c) & 7
	return or(and(srliEpi16(v, k), Const1_8(0xff>>k)),
		and(slliEpi16(v, 8-k), Const1_8(uint8(0xff<<(8-k)))))
}

// Rol8 rotates each byte of v left by c bits.
func Rol8(v M128, c int) M128 {
	return Ror8(v, 8-int(uint(c)&7))
}

func ror64_SSE2(v M128, c int) M128 {
	k := uint(c) & 63
	return or(srliEpi64(v, k), slliEpi64(v, 64-k))
}

func rol64_SSE2(v M128, c int) M128 {
	k := uint(c) & 63
	return or(slliEpi64(v, k), srliEpi64(v, 64-k))
}

func ror32_SSE2(v M128, c int) M128 {
	k := uint(c) & 31
	return or(srliEpi32(v, k), slliEpi32(v, 32-k))
}

func rol32_SSE2(v M128, c int) M128 {
	k := uint(c) & 31
	return or(slliEpi32(v, k), srliEpi32(v, 32-k))
}

func ror16_SSE2(v M128, c int) M128 {
	k := uint(c) & 15
	return or(srliEpi16(v, k), slliEpi16(v, 16-k))
}

func rol16_SSE2(v M128, c int) M128 {
	k := uint(c) & 15
	return or(slliEpi16(v, k), srliEpi16(v, 16-k))
}

// The VBMI2 funnel shifts rotate when both inputs are the same register.
func ror16_VBMI(v M128, c int) M128 { return shrdiEpi16(v, v, uint(c)) }
func rol16_VBMI(v M128, c int) M128 { return shldiEpi16(v, v, uint(c)) }

// Rotr rotates each element of v, viewed as a vector of T, right by c bits.
func Rotr[T Elem](v M128, c int) M128 {
	var x T
	switch any(x).(type) {
	case uint8:
		return Ror8(v, c)
	case uint16:
		return Ror16(v, c)
	case uint32:
		return Ror32(v, c)
	default:
		return Ror64(v, c)
	}
}

// Rotl rotates each element of v, viewed as a vector of T, left by c bits.
func Rotl[T Elem](v M128, c int) M128 {
	var x T
	switch any(x).(type) {
	case uint8:
		return Rol8(v, c)
	case uint16:
		return Rol16(v, c)
	case uint32:
		return Rol32(v, c)
	default:
		return Rol64(v, c)
	}
}

// RorV64 rotates each 64-bit element of v right by the matching element of
// counts, modulo 64.
func RorV64(v, counts M128) M128 {
	switch {
	case tier.Build >= tier.AVX512:
		return rorvEpi64(v, counts)
	case tier.Build >= tier.AVX2:
		return rorv64_AVX2(v, counts)
	default:
		return rorv64_SSE2(v, counts)
	}
}

// RolV64 rotates each 64-bit element of v left by the matching element of
// counts, modulo 64.
func RolV64(v, counts M128) M128 {
	switch {
	case tier.Build >= tier.AVX512:
		return rolvEpi64(v, counts)
	case tier.Build >= tier.AVX2:
		return rorv64_AVX2(v, subEpi64(Zero(), counts))
	default:
		return rorv64_SSE2(v, subEpi64(Zero(), counts))
	}
}

// RorV32 rotates each 32-bit element of v right by the matching element of
// counts, modulo 32.
func RorV32(v, counts M128) M128 {
	switch {
	case tier.Build >= tier.AVX512:
		return rorvEpi32(v, counts)
	case tier.Build >= tier.AVX2:
		return rorv32_AVX2(v, counts)
	default:
		return rorv32_SSE2(v, counts)
	}
}

// RolV32 rotates each 32-bit element of v left by the matching element of
// counts, modulo 32.
func RolV32(v, counts M128) M128 {
	switch {
	case tier.Build >= tier.AVX512:
		return rolvEpi32(v, counts)
	case tier.Build >= tier.AVX2:
		return rorv32_AVX2(v, subEpi32(Zero(), counts))
	default:
		return rorv32_SSE2(v, subEpi32(Zero(), counts))
	}
}

// SSE2 shifts every element by the same count, so each element is rotated
// on its own and the results are merged.
func rorv64_SSE2(v, counts M128) M128 {
	k0 := Mov64(counts[0] & 63)
	k1 := Mov64(counts[1] & 63)
	r0 := or(srlEpi64(v, k0), sllEpi64(v, subEpi64(Mov64(64), k0)))
	r1 := or(srlEpi64(v, k1), sllEpi64(v, subEpi64(Mov64(64), k1)))
	return shufflePd(r0, r1, 0x2)
}

func rorv32_SSE2(v, counts M128) M128 {
	var r M128
	for i := range 4 {
		k := Mov32(get32(counts, i) & 31)
		rot := or(srlEpi32(v, k), sllEpi32(v, subEpi32(Mov32(32), k)))
		r = or(r, and(rot, dwordMask[i]))
	}
	return r
}

func rorv64_AVX2(v, counts M128) M128 {
	k := and(counts, Const1_64(63))
	return or(srlvEpi64(v, k), sllvEpi64(v, subEpi64(Const1_64(64), k)))
}

func rorv32_AVX2(v, counts M128) M128 {
	k := and(counts, Const1_32(31))
	return or(srlvEpi32(v, k), sllvEpi32(v, subEpi32(Const1_32(32), k)))
}

// dwordMask[i] selects 32-bit element i.
var dwordMask = [4]M128{
	{0x00000000ffffffff, 0},
	{0xffffffff00000000, 0},
	{0, 0x00000000ffffffff},
	{0, 0xffffffff00000000},
}

// RorX2_64 rotates the 64-bit elements of two vectors right by c. The two
// rotations are interleaved so their latencies overlap.
func RorX2_64(v1, v0 M128, c int) (M128, M128) {
	if tier.Build >= tier.AVX512 {
		return rorEpi64(v1, c), rorEpi64(v0, c)
	}
	return rorx2_64_SSE2(v1, v0, c)
}

// RolX2_64 rotates the 64-bit elements of two vectors left by c.
func RolX2_64(v1, v0 M128, c int) (M128, M128) {
	return RorX2_64(v1, v0, 64-int(uint(c)&63))
}

// RorX2_32 rotates the 32-bit elements of two vectors right by c.
func RorX2_32(v1, v0 M128, c int) (M128, M128) {
	if tier.Build >= tier.AVX512 {
		return rorEpi32(v1, c), rorEpi32(v0, c)
	}
	return rorx2_32_SSE2(v1, v0, c)
}

// RolX2_32 rotates the 32-bit elements of two vectors left by c.
func RolX2_32(v1, v0 M128, c int) (M128, M128) {
	return RorX2_32(v1, v0, 32-int(uint(c)&31))
}

func rorx2_64_SSE2(v1, v0 M128, c int) (M128, M128) {
	k := uint(c) & 63
	t0 := srliEpi64(v0, k)
	t1 := srliEpi64(v1, k)
	v0 = slliEpi64(v0, 64-k)
	v1 = slliEpi64(v1, 64-k)
	return or(v1, t1), or(v0, t0)
}

func rorx2_32_SSE2(v1, v0 M128, c int) (M128, M128) {
	k := uint(c) & 31
	t0 := srliEpi32(v0, k)
	t1 := srliEpi32(v1, k)
	v0 = slliEpi32(v0, 32-k)
	v1 = slliEpi32(v1, 32-k)
	return or(v1, t1), or(v0, t0)
}
