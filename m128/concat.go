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

// Two vectors as one 256-bit value. Throughout, (v1, v2) is the value whose
// high half is v1 and whose low half is v2.

// alignr returns the low half of (a, b) shifted right by n bytes, n in
// [0, 16].
func alignr(a, b M128, n int) M128 {
	if tier.Build >= tier.SSSE3 {
		return alignrEpi8(a, b, n)
	}
	return alignr_SSE2(a, b, n)
}

func alignr_SSE2(a, b M128, n int) M128 {
	return or(srliSi128(b, n), slliSi128(a, 16-n))
}

// Shufl2rBytes rotates (v1, v2) right by k bytes and returns the high half.
// k must be in [0, 16].
func Shufl2rBytes(v1, v2 M128, k int) M128 { return alignr(v2, v1, k) }

// Shufl2lBytes rotates (v1, v2) left by k bytes and returns the high half.
// k must be in [0, 16].
func Shufl2lBytes(v1, v2 M128, k int) M128 { return alignr(v1, v2, 16-k) }

// Shufl2r_64 rotates (v1, v2) right by one 64-bit element and returns the
// high half.
func Shufl2r_64(v1, v2 M128) M128 { return alignr(v2, v1, 8) }

// Shufl2l_64 rotates (v1, v2) left by one 64-bit element and returns the
// high half.
func Shufl2l_64(v1, v2 M128) M128 { return alignr(v1, v2, 8) }

// Shufl2r_32 rotates (v1, v2) right by one 32-bit element and returns the
// high half.
func Shufl2r_32(v1, v2 M128) M128 { return alignr(v2, v1, 4) }

// Shufl2l_32 rotates (v1, v2) left by one 32-bit element and returns the
// high half.
func Shufl2l_32(v1, v2 M128) M128 { return alignr(v1, v2, 12) }

// Shufl2r_16 rotates (v1, v2) right by one 16-bit element and returns the
// high half.
func Shufl2r_16(v1, v2 M128) M128 { return alignr(v2, v1, 2) }

// Shufl2l_16 rotates (v1, v2) left by one 16-bit element and returns the
// high half.
func Shufl2l_16(v1, v2 M128) M128 { return alignr(v1, v2, 14) }

// Shufl2r_8 rotates (v1, v2) right by one byte and returns the high half.
func Shufl2r_8(v1, v2 M128) M128 { return alignr(v2, v1, 1) }

// Shufl2l_8 rotates (v1, v2) left by one byte and returns the high half.
func Shufl2l_8(v1, v2 M128) M128 { return alignr(v1, v2, 15) }

// vror256 rotates (*v1, *v2) right by k bytes in place.
func vror256(v1, v2 *M128, k int) {
	hi := alignr(*v2, *v1, k)
	*v2 = alignr(*v1, *v2, k)
	*v1 = hi
}

// vrol256 rotates (*v1, *v2) left by k bytes in place.
func vrol256(v1, v2 *M128, k int) {
	hi := alignr(*v1, *v2, 16-k)
	*v2 = alignr(*v2, *v1, 16-k)
	*v1 = hi
}

// VRor256_64 rotates (*v1, *v2) right by one 64-bit element in place.
func VRor256_64(v1, v2 *M128) { vror256(v1, v2, 8) }

// VRol256_64 rotates (*v1, *v2) left by one 64-bit element in place.
func VRol256_64(v1, v2 *M128) { vrol256(v1, v2, 8) }

// VRor256_32 rotates (*v1, *v2) right by one 32-bit element in place.
func VRor256_32(v1, v2 *M128) { vror256(v1, v2, 4) }

// VRol256_32 rotates (*v1, *v2) left by one 32-bit element in place.
func VRol256_32(v1, v2 *M128) { vrol256(v1, v2, 4) }

// VRor256_16 rotates (*v1, *v2) right by one 16-bit element in place.
func VRor256_16(v1, v2 *M128) { vror256(v1, v2, 2) }

// VRol256_16 rotates (*v1, *v2) left by one 16-bit element in place.
func VRol256_16(v1, v2 *M128) { vrol256(v1, v2, 2) }

// VRor256_8 rotates (*v1, *v2) right by one byte in place.
func VRor256_8(v1, v2 *M128) { vror256(v1, v2, 1) }

// VRol256_8 rotates (*v1, *v2) left by one byte in place.
func VRol256_8(v1, v2 *M128) { vrol256(v1, v2, 1) }

// Swap256_128 exchanges *v1 and *v2 without a temporary register.
func Swap256_128(v1, v2 *M128) {
	*v1 = xor(*v1, *v2)
	*v2 = xor(*v1, *v2)
	*v1 = xor(*v1, *v2)
}

// Funnel shifts. For each element position, (v1, v2) is the double-width
// value with the element of v1 on top. c must be less than the element
// width.

// Shl2_64 shifts each 64-bit (v1, v2) pair left by c and returns the high
// halves.
func Shl2_64(v1, v2 M128, c uint) M128 {
	if tier.Build >= tier.AVX512VBMI {
		return shldiEpi64(v1, v2, c)
	}
	return shl2_64_SSE2(v1, v2, c)
}

// Shr2_64 shifts each 64-bit (v1, v2) pair right by c and returns the low
// halves.
func Shr2_64(v1, v2 M128, c uint) M128 {
	if tier.Build >= tier.AVX512VBMI {
		return shrdiEpi64(v2, v1, c)
	}
	return shr2_64_SSE2(v1, v2, c)
}

func shl2_64_SSE2(v1, v2 M128, c uint) M128 {
	return or(slliEpi64(v1, c), srliEpi64(v2, 64-c))
}

func shr2_64_SSE2(v1, v2 M128, c uint) M128 {
	return or(srliEpi64(v2, c), slliEpi64(v1, 64-c))
}

// Shl2_32 shifts each 32-bit (v1, v2) pair left by c and returns the high
// halves.
func Shl2_32(v1, v2 M128, c uint) M128 {
	if tier.Build >= tier.AVX512VBMI {
		return shldiEpi32(v1, v2, c)
	}
	return shl2_32_SSE2(v1, v2, c)
}

// Shr2_32 shifts each 32-bit (v1, v2) pair right by c and returns the low
// halves.
func Shr2_32(v1, v2 M128, c uint) M128 {
	if tier.Build >= tier.AVX512VBMI {
		return shrdiEpi32(v2, v1, c)
	}
	return shr2_32_SSE2(v1, v2, c)
}

func shl2_32_SSE2(v1, v2 M128, c uint) M128 {
	return or(slliEpi32(v1, c), srliEpi32(v2, 32-c))
}

func shr2_32_SSE2(v1, v2 M128, c uint) M128 {
	return or(srliEpi32(v2, c), slliEpi32(v1, 32-c))
}

// Shl2_16 shifts each 16-bit (v1, v2) pair left by c and returns the high
// halves.
func Shl2_16(v1, v2 M128, c uint) M128 {
	if tier.Build >= tier.AVX512VBMI {
		return shldiEpi16(v1, v2, c)
	}
	return shl2_16_SSE2(v1, v2, c)
}

// Shr2_16 shifts each 16-bit (v1, v2) pair right by c and returns the low
// halves.
func Shr2_16(v1, v2 M128, c uint) M128 {
	if tier.Build >= tier.AVX512VBMI {
		return shrdiEpi16(v2, v1, c)
	}
	return shr2_16_SSE2(v1, v2, c)
}

func shl2_16_SSE2(v1, v2 M128, c uint) M128 {
	return or(slliEpi16(v1, c), srliEpi16(v2, 16-c))
}

func shr2_16_SSE2(v1, v2 M128, c uint) M128 {
	return or(srliEpi16(v2, c), slliEpi16(v1, 16-c))
}
