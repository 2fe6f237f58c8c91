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

// Diagonal32 returns the vector whose 32-bit element i is element i of vi.
func Diagonal32(v3, v2, v1, v0 M128) M128 {
	switch {
	case tier.Build >= tier.AVX512:
		return diagonal32_AVX512(v3, v2, v1, v0)
	case tier.Build >= tier.AVX2:
		return diagonal32_AVX2(v3, v2, v1, v0)
	case tier.Build >= tier.SSE41:
		return diagonal32_SSE41(v3, v2, v1, v0)
	default:
		return diagonal32_SSE2(v3, v2, v1, v0)
	}
}

func diagonal32_SSE2(v3, v2, v1, v0 M128) M128 {
	return or(or(and(v3, dwordMask[3]), and(v2, dwordMask[2])),
		or(and(v1, dwordMask[1]), and(v0, dwordMask[0])))
}

// PBLENDW masks are the dword masks of the other tiers widened to words.
func diagonal32_SSE41(v3, v2, v1, v0 M128) M128 {
	return blendEpi16(blendEpi16(v3, v2, 0x30), blendEpi16(v1, v0, 0x03), 0x0f)
}

func diagonal32_AVX2(v3, v2, v1, v0 M128) M128 {
	return blendEpi32(blendEpi32(v3, v2, 0x4), blendEpi32(v1, v0, 0x1), 0x3)
}

func diagonal32_AVX512(v3, v2, v1, v0 M128) M128 {
	return maskBlendEpi32(0x3, maskBlendEpi32(0x4, v3, v2), maskBlendEpi32(0x1, v1, v0))
}
