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
	"github.com/ajroetker/go-simdutils/ternlog"
	"github.com/ajroetker/go-simdutils/tier"
)

// AVX-512F rotates 64 and 32-bit elements natively, by an immediate or by
// per-element counts. 16-bit rotations need the VBMI2 funnel shifts and fall
// back to a shift pair; byte rotations are always composed.

// Ror64 rotates each 64-bit element of v right by c bits, modulo 64.
func Ror64(v M512, c int) M512 { return rorEpi64(v, c) }

// Rol64 rotates each 64-bit element of v left by c bits, modulo 64.
func Rol64(v M512, c int) M512 { return rolEpi64(v, c) }

// Ror32 rotates each 32-bit element of v right by c bits, modulo 32.
func Ror32(v M512, c int) M512 { return rorEpi32(v, c) }

// Rol32 rotates each 32-bit element of v left by c bits, modulo 32.
func Rol32(v M512, c int) M512 { return rolEpi32(v, c) }

// Ror16 rotates each 16-bit element of v right by c bits, modulo 16.
func Ror16(v M512, c int) M512 {
	if tier.Build >= tier.AVX512VBMI {
		return shrdiEpi16(v, v, uint(c))
	}
	return ror16_AVX512(v, c)
}

// Rol16 rotates each 16-bit element of v left by c bits, modulo 16.
func Rol16(v M512, c int) M512 {
	if tier.Build >= tier.AVX512VBMI {
		return shldiEpi16(v, v, uint(c))
	}
	return rol16_AVX512(v, c)
}

func ror16_AVX512(v M512, c int) M512 {
	k := uint(c) & 15
	return or(srliEpi16(v, k), slliEpi16(v, 16-k))
}

func rol16_AVX512(v M512, c int) M512 {
	k := uint(c) & 15
	return or(slliEpi16(v, k), srliEpi16(v, 16-k))
}

// Ror8 rotates each byte of v right by c bits, modulo 8.
func Ror8(v M512, c int) M512 {
	k := uint(c) & 7
	return TernaryLogic(srliEpi16(v, k), slliEpi16(v, 8-k), Const1_8(0xff>>k), ternlog.SELECT)
}

// Rol8 rotates each byte of v left by c bits, modulo 8.
func Rol8(v M512, c int) M512 { return Ror8(v, 8-int(uint(c)&7)) }

// Rotr rotates each element of v, viewed as a vector of T, right by c bits.
func Rotr[T Elem](v M512, c int) M512 {
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
func Rotl[T Elem](v M512, c int) M512 {
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
func RorV64(v, counts M512) M512 { return rorvEpi64(v, counts) }

// RolV64 rotates each 64-bit element of v left by the matching element of
// counts, modulo 64.
func RolV64(v, counts M512) M512 { return rolvEpi64(v, counts) }

// RorV32 rotates each 32-bit element of v right by the matching element of
// counts, modulo 32.
func RorV32(v, counts M512) M512 { return rorvEpi32(v, counts) }

// RolV32 rotates each 32-bit element of v left by the matching element of
// counts, modulo 32.
func RolV32(v, counts M512) M512 { return rolvEpi32(v, counts) }

// RorX2_64 rotates the 64-bit elements of two vectors right by c.
func RorX2_64(v1, v0 M512, c int) (M512, M512) { return rorEpi64(v1, c), rorEpi64(v0, c) }

// RolX2_64 rotates the 64-bit elements of two vectors left by c.
func RolX2_64(v1, v0 M512, c int) (M512, M512) { return rolEpi64(v1, c), rolEpi64(v0, c) }

// RorX2_32 rotates the 32-bit elements of two vectors right by c.
func RorX2_32(v1, v0 M512, c int) (M512, M512) { return rorEpi32(v1, c), rorEpi32(v0, c) }

// RolX2_32 rotates the 32-bit elements of two vectors left by c.
func RolX2_32(v1, v0 M512, c int) (M512, M512) { return rolEpi32(v1, c), rolEpi32(v0, c) }
