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

// Endian byte swaps. Each reverses the bytes of every element and leaves
// element boundaries in place, so applying one twice is the identity.

var (
	bswap64Ctl = M128{0x0001020304050607, 0x08090a0b0c0d0e0f}
	bswap32Ctl = M128{0x0405060700010203, 0x0c0d0e0f08090a0b}
	bswap16Ctl = M128{0x0607040502030001, 0x0e0f0c0d0a0b0809}
)

// Bswap64 reverses the bytes of each 64-bit element.
func Bswap64(v M128) M128 {
	if tier.Build >= tier.SSSE3 {
		return shuffleEpi8(v, bswap64Ctl)
	}
	return bswap64_SSE2(v)
}

// Bswap32 reverses the bytes of each 32-bit element.
func Bswap32(v M128) M128 {
	if tier.Build >= tier.SSSE3 {
		return shuffleEpi8(v, bswap32Ctl)
	}
	return bswap32_SSE2(v)
}

// Bswap16 reverses the bytes of each 16-bit element.
func Bswap16(v M128) M128 {
	if tier.Build >= tier.SSSE3 {
		return shuffleEpi8(v, bswap16Ctl)
	}
	return bswap16_SSE2(v)
}

// Without PSHUFB the bytes of each word are swapped by shifts and the words
// are then reordered with PSHUFLW and PSHUFHW.

func bswap64_SSE2(v M128) M128 {
	v = bswap16_SSE2(v)
	v = shuffleloEpi16(v, 0x1b)
	return shufflehiEpi16(v, 0x1b)
}

func bswap32_SSE2(v M128) M128 {
	v = bswap16_SSE2(v)
	v = shuffleloEpi16(v, 0xb1)
	return shufflehiEpi16(v, 0xb1)
}

func bswap16_SSE2(v M128) M128 {
	return or(slliEpi16(v, 8), srliEpi16(v, 8))
}

// BlockBswap64 stores Bswap64(src[i]) in dst[i] for every element of src.
// The shuffle control is built once for the whole block. dst must be at
// least as long as src and may be src itself.
func BlockBswap64(dst, src []M128) {
	if tier.Build >= tier.SSSE3 {
		ctl := bswap64Ctl
		for i, v := range src {
			dst[i] = shuffleEpi8(v, ctl)
		}
		return
	}
	for i, v := range src {
		dst[i] = bswap64_SSE2(v)
	}
}

// BlockBswap32 stores Bswap32(src[i]) in dst[i] for every element of src.
func BlockBswap32(dst, src []M128) {
	if tier.Build >= tier.SSSE3 {
		ctl := bswap32Ctl
		for i, v := range src {
			dst[i] = shuffleEpi8(v, ctl)
		}
		return
	}
	for i, v := range src {
		dst[i] = bswap32_SSE2(v)
	}
}
