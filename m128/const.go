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

import (
	"github.com/ajroetker/go-simdutils/internal/words"
	"github.com/ajroetker/go-simdutils/tier"
)

// Mov64 returns n in element 0 with the rest of the vector zeroed (MOVQ).
func Mov64(n uint64) M128 {
	return M128{n, 0}
}

// Mov32 returns n in element 0 with the rest of the vector zeroed (MOVD).
func Mov32(n uint32) M128 {
	return M128{uint64(n), 0}
}

// U64 returns 64-bit element 0 of v.
func U64(v M128) uint64 {
	return v[0]
}

// U32 returns 32-bit element 0 of v.
func U32(v M128) uint32 {
	return uint32(v[0])
}

// ConstI128 returns n zero-extended to 128 bits.
func ConstI128(n uint64) M128 {
	return Mov64(n)
}

// Const1_64 broadcasts n to both 64-bit elements.
func Const1_64(n uint64) M128 {
	return shuffleEpi32(Mov64(n), 0x44)
}

// Const1_32 broadcasts n to all four 32-bit elements.
func Const1_32(n uint32) M128 {
	return shuffleEpi32(Mov32(n), 0x00)
}

// Const1_16 broadcasts n to all eight 16-bit elements.
func Const1_16(n uint16) M128 {
	return Const1_32(uint32(words.Splat16(n)))
}

// Const1_8 broadcasts n to all sixteen bytes.
func Const1_8(n uint8) M128 {
	return Const1_32(uint32(words.Splat8(n)))
}

// Const64 returns the vector {hi, lo}: lo is element 0.
func Const64(hi, lo uint64) M128 {
	if tier.Build >= tier.SSE41 {
		return const64_SSE41(hi, lo)
	}
	return const64_SSE2(hi, lo)
}

func const64_SSE2(hi, lo uint64) M128 {
	return M128{lo, hi}
}

func const64_SSE41(hi, lo uint64) M128 {
	return insertEpi64(Mov64(lo), hi, 1)
}

// Set32 returns the vector with 32-bit elements {e3, e2, e1, e0}.
func Set32(e3, e2, e1, e0 uint32) M128 {
	return set32(e3, e2, e1, e0)
}

// Broadcast returns x in every element of a vector of T.
func Broadcast[T Elem](x T) M128 {
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

// FromLanes assembles a vector from per-element values, element 0 first.
// Elements past the end of xs are zero. xs must not hold more elements than
// fit in 128 bits.
//
// The values are written into a scratch buffer and read back as one vector,
// so the cost does not grow with the number of elements the way a chain of
// inserts does.
func FromLanes[T Elem](xs ...T) M128 {
	var buf M128
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
func Zero() M128 {
	return M128{}
}

// Neg1 returns the all-ones vector (PCMPEQQ of a register with itself).
func Neg1() M128 {
	return M128{^uint64(0), ^uint64(0)}
}

// One128 returns the 128-bit integer 1.
func One128() M128 { return Mov64(1) }

// One64 returns 1 in both 64-bit elements.
func One64() M128 { return Const1_64(1) }

// One32 returns 1 in every 32-bit element.
func One32() M128 { return Const1_32(1) }

// One16 returns 1 in every 16-bit element.
func One16() M128 { return Const1_32(0x00010001) }

// One8 returns 1 in every byte.
func One8() M128 { return Const1_32(0x01010101) }
