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

// Two vectors as one 1024-bit value: (v1, v2) has v1 as its high half. The
// Shufl2 forms rotate the pair by one element and return the high half, so
// Shufl2r puts the low elements of v2 on top of v1 and Shufl2l does the same
// with the high elements of v2 below v1.

// Shufl2r_256 rotates (v1, v2) right by 256 bits and returns the high half.
func Shufl2r_256(v1, v2 M512) M512 { return alignrEpi64(v2, v1, 4) }

// Shufl2l_256 rotates (v1, v2) left by 256 bits and returns the high half.
func Shufl2l_256(v1, v2 M512) M512 { return alignrEpi64(v1, v2, 4) }

// Shufl2r_128 rotates (v1, v2) right by 128 bits and returns the high half.
func Shufl2r_128(v1, v2 M512) M512 { return alignrEpi64(v2, v1, 2) }

// Shufl2l_128 rotates (v1, v2) left by 128 bits and returns the high half.
func Shufl2l_128(v1, v2 M512) M512 { return alignrEpi64(v1, v2, 6) }

// Shufl2r_64 rotates (v1, v2) right by one 64-bit element and returns the
// high half.
func Shufl2r_64(v1, v2 M512) M512 { return alignrEpi64(v2, v1, 1) }

// Shufl2l_64 rotates (v1, v2) left by one 64-bit element and returns the
// high half.
func Shufl2l_64(v1, v2 M512) M512 { return alignrEpi64(v1, v2, 7) }

// Shufl2r_32 rotates (v1, v2) right by one 32-bit element and returns the
// high half.
func Shufl2r_32(v1, v2 M512) M512 { return alignrEpi32(v2, v1, 1) }

// Shufl2l_32 rotates (v1, v2) left by one 32-bit element and returns the
// high half.
func Shufl2l_32(v1, v2 M512) M512 { return alignrEpi32(v1, v2, 15) }

// Funnel shifts of each element pair. c must be less than the element width.

// Shl2_64 shifts each 64-bit (v1, v2) pair left by c and returns the high
// halves.
func Shl2_64(v1, v2 M512, c uint) M512 {
	if tier.Build >= tier.AVX512VBMI {
		return shldiEpi64(v1, v2, c)
	}
	return shl2_64_AVX512(v1, v2, c)
}

// Shr2_64 shifts each 64-bit (v1, v2) pair right by c and returns the low
// halves.
func Shr2_64(v1, v2 M512, c uint) M512 {
	if tier.Build >= tier.AVX512VBMI {
		return shrdiEpi64(v2, v1, c)
	}
	return shr2_64_AVX512(v1, v2, c)
}

// Shl2_32 shifts each 32-bit (v1, v2) pair left by c and returns the high
// halves.
func Shl2_32(v1, v2 M512, c uint) M512 {
	if tier.Build >= tier.AVX512VBMI {
		return shldiEpi32(v1, v2, c)
	}
	return shl2_32_AVX512(v1, v2, c)
}

// Shr2_32 shifts each 32-bit (v1, v2) pair right by c and returns the low
// halves.
func Shr2_32(v1, v2 M512, c uint) M512 {
	if tier.Build >= tier.AVX512VBMI {
		return shrdiEpi32(v2, v1, c)
	}
	return shr2_32_AVX512(v1, v2, c)
}

// Shl2_16 shifts each 16-bit (v1, v2) pair left by c and returns the high
// halves.
func Shl2_16(v1, v2 M512, c uint) M512 {
	if tier.Build >= tier.AVX512VBMI {
		return shldiEpi16(v1, v2, c)
	}
	return shl2_16_AVX512(v1, v2, c)
}

// Shr2_16 shifts each 16-bit (v1, v2) pair right by c and returns the low
// halves.
func Shr2_16(v1, v2 M512, c uint) M512 {
	if tier.Build >= tier.AVX512VBMI {
		return shrdiEpi16(v2, v1, c)
	}
	return shr2_16_AVX512(v1, v2, c)
}

func shl2_64_AVX512(v1, v2 M512, c uint) M512 {
	return or(slliEpi64(v1, c), srliEpi64(v2, 64-c))
}

func shr2_64_AVX512(v1, v2 M512, c uint) M512 {
	return or(srliEpi64(v2, c), slliEpi64(v1, 64-c))
}

func shl2_32_AVX512(v1, v2 M512, c uint) M512 {
	return or(slliEpi32(v1, c), srliEpi32(v2, 32-c))
}

func shr2_32_AVX512(v1, v2 M512, c uint) M512 {
	return or(srliEpi32(v2, c), slliEpi32(v1, 32-c))
}

func shl2_16_AVX512(v1, v2 M512, c uint) M512 {
	return or(slliEpi16(v1, c), srliEpi16(v2, 16-c))
}

func shr2_16_AVX512(v1, v2 M512, c uint) M512 {
	return or(srliEpi16(v2, c), slliEpi16(v1, 16-c))
}
