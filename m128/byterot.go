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

// Rotations of whole bytes inside 64-bit or 32-bit elements. With SSSE3 and
// no native rotate they are a single byte shuffle; otherwise they are the
// bit rotation of the same distance.

// Byte shuffle controls, {lo, hi}. Control byte i names the source byte of
// result byte i.
var (
	shuflr64x24Ctl = M128{0x0201000706050403, 0x0a09080f0e0d0c0b}
	shufll64x24Ctl = M128{0x0403020100070605, 0x0c0b0a09080f0e0d}
	shuflr64x16Ctl = M128{0x0100070605040302, 0x09080f0e0d0c0b0a}
	shufll64x16Ctl = M128{0x0504030201000706, 0x0d0c0b0a09080f0e}
	shuflr64x8Ctl  = M128{0x0007060504030201, 0x080f0e0d0c0b0a09}
	shufll64x8Ctl  = M128{0x0605040302010007, 0x0e0d0c0b0a09080f}
	swap32x16Ctl   = M128{0x0504070601000302, 0x0d0c0f0e09080b0a}
	shuflr32x8Ctl  = M128{0x0407060500030201, 0x0c0f0e0d080b0a09}
	shufll32x8Ctl  = M128{0x0605040702010003, 0x0e0d0c0f0a09080b}
)

// byteRotate picks the implementation of a whole-byte rotation for the
// build tier. rot is the equivalent bit rotation.
func byteRotate(v, ctl M128, rot func(M128, int) M128, c int) M128 {
	if tier.Build >= tier.SSSE3 && tier.Build < tier.AVX512 {
		return shuffleEpi8(v, ctl)
	}
	return rot(v, c)
}

// Swap64_32 swaps the two 32-bit halves of each 64-bit element.
func Swap64_32(v M128) M128 { return shuffleEpi32(v, 0xb1) }

// Shuflr64_32 rotates each 64-bit element right by 32 bits.
func Shuflr64_32(v M128) M128 { return Swap64_32(v) }

// Shufll64_32 rotates each 64-bit element left by 32 bits.
func Shufll64_32(v M128) M128 { return Swap64_32(v) }

// Shuflr64_24 rotates each 64-bit element right by 24 bits.
func Shuflr64_24(v M128) M128 { return byteRotate(v, shuflr64x24Ctl, Ror64, 24) }

// Shufll64_24 rotates each 64-bit element left by 24 bits.
func Shufll64_24(v M128) M128 { return byteRotate(v, shufll64x24Ctl, Rol64, 24) }

// Shuflr64_16 rotates each 64-bit element right by 16 bits.
func Shuflr64_16(v M128) M128 { return byteRotate(v, shuflr64x16Ctl, Ror64, 16) }

// Shufll64_16 rotates each 64-bit element left by 16 bits.
func Shufll64_16(v M128) M128 { return byteRotate(v, shufll64x16Ctl, Rol64, 16) }

// Shuflr64_8 rotates each 64-bit element right by 8 bits.
func Shuflr64_8(v M128) M128 { return byteRotate(v, shuflr64x8Ctl, Ror64, 8) }

// Shufll64_8 rotates each 64-bit element left by 8 bits.
func Shufll64_8(v M128) M128 { return byteRotate(v, shufll64x8Ctl, Rol64, 8) }

// Swap32_16 swaps the two 16-bit halves of each 32-bit element.
func Swap32_16(v M128) M128 { return byteRotate(v, swap32x16Ctl, Ror32, 16) }

// Shuflr32_16 rotates each 32-bit element right by 16 bits.
func Shuflr32_16(v M128) M128 { return Swap32_16(v) }

// Shufll32_16 rotates each 32-bit element left by 16 bits.
func Shufll32_16(v M128) M128 { return Swap32_16(v) }

// Shuflr32_8 rotates each 32-bit element right by 8 bits.
func Shuflr32_8(v M128) M128 { return byteRotate(v, shuflr32x8Ctl, Ror32, 8) }

// Shufll32_8 rotates each 32-bit element left by 8 bits.
func Shufll32_8(v M128) M128 { return byteRotate(v, shufll32x8Ctl, Rol32, 8) }
