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
	"math/bits"

	"github.com/ajroetker/go-simdutils/internal/words"
	"github.com/ajroetker/go-simdutils/ternlog"
)

// This file models the x86 instructions the tier implementations are written
// in. Each function has the semantics of the intrinsic it is named after,
// including the zero results of out-of-range shift counts.

func and(a, b M128) M128    { return M128{a[0] & b[0], a[1] & b[1]} }
func or(a, b M128) M128     { return M128{a[0] | b[0], a[1] | b[1]} }
func xor(a, b M128) M128    { return M128{a[0] ^ b[0], a[1] ^ b[1]} }
func andnot(a, b M128) M128 { return M128{^a[0] & b[0], ^a[1] & b[1]} }

func zipWords(a, b M128, f func(uint64, uint64) uint64) M128 {
	return M128{f(a[0], b[0]), f(a[1], b[1])}
}

func srliEpi64(v M128, c uint) M128 { return M128{v[0] >> c, v[1] >> c} }
func slliEpi64(v M128, c uint) M128 { return M128{v[0] << c, v[1] << c} }

func srliEpi32(v M128, c uint) M128 {
	return M128{words.Srl32(v[0], c), words.Srl32(v[1], c)}
}

func slliEpi32(v M128, c uint) M128 {
	return M128{words.Sll32(v[0], c), words.Sll32(v[1], c)}
}

func srliEpi16(v M128, c uint) M128 {
	return M128{words.Srl16(v[0], c), words.Srl16(v[1], c)}
}

func slliEpi16(v M128, c uint) M128 {
	return M128{words.Sll16(v[0], c), words.Sll16(v[1], c)}
}

// srlEpi64 (PSRLQ xmm, xmm) shifts both elements by the low qword of count.
func srlEpi64(v, count M128) M128 {
	if count[0] > 63 {
		return M128{}
	}
	return srliEpi64(v, uint(count[0]))
}

func sllEpi64(v, count M128) M128 {
	if count[0] > 63 {
		return M128{}
	}
	return slliEpi64(v, uint(count[0]))
}

func srlEpi32(v, count M128) M128 {
	if count[0] > 31 {
		return M128{}
	}
	return srliEpi32(v, uint(count[0]))
}

func sllEpi32(v, count M128) M128 {
	if count[0] > 31 {
		return M128{}
	}
	return slliEpi32(v, uint(count[0]))
}

// srlvEpi64 and friends (AVX2 VPSRLVQ) shift each element by its own count.
func srlvEpi64(v, count M128) M128 {
	return M128{v[0] >> count[0], v[1] >> count[1]}
}

func sllvEpi64(v, count M128) M128 {
	return M128{v[0] << count[0], v[1] << count[1]}
}

func srlvEpi32(v, count M128) M128 { return zipWords(v, count, words.Srlv32) }
func sllvEpi32(v, count M128) M128 { return zipWords(v, count, words.Sllv32) }

// srliSi128 (PSRLDQ) shifts the whole register right by n bytes.
func srliSi128(v M128, n int) M128 {
	switch {
	case n <= 0:
		return v
	case n >= 16:
		return M128{}
	case n >= 8:
		return M128{v[1] >> (8 * uint(n-8)), 0}
	default:
		s := 8 * uint(n)
		return M128{v[0]>>s | v[1]<<(64-s), v[1] >> s}
	}
}

// slliSi128 (PSLLDQ) shifts the whole register left by n bytes.
func slliSi128(v M128, n int) M128 {
	switch {
	case n <= 0:
		return v
	case n >= 16:
		return M128{}
	case n >= 8:
		return M128{0, v[0] << (8 * uint(n-8))}
	default:
		s := 8 * uint(n)
		return M128{v[0] << s, v[1]<<s | v[0]>>(64-s)}
	}
}

// alignrEpi8 (PALIGNR) returns the low 16 bytes of the 32-byte value a:b
// shifted right by n bytes.
func alignrEpi8(a, b M128, n int) M128 {
	if n >= 32 {
		return M128{}
	}
	if n >= 16 {
		return srliSi128(a, n-16)
	}
	return or(srliSi128(b, n), slliSi128(a, 16-n))
}

func get32(v M128, i int) uint32 { return uint32(v[i>>1] >> (32 * uint(i&1))) }

func set32(e3, e2, e1, e0 uint32) M128 {
	return M128{uint64(e1)<<32 | uint64(e0), uint64(e3)<<32 | uint64(e2)}
}

// shuffleEpi32 (PSHUFD) selects each dword of the result from v by a two
// bit field of imm.
func shuffleEpi32(v M128, imm uint8) M128 {
	return set32(get32(v, int(imm>>6&3)), get32(v, int(imm>>4&3)),
		get32(v, int(imm>>2&3)), get32(v, int(imm&3)))
}

func shuffle4x16(w uint64, imm uint8) uint64 {
	var r uint64
	for i := range 4 {
		s := uint(imm>>(2*uint(i))) & 3
		r |= (w >> (16 * s) & 0xffff) << (16 * uint(i))
	}
	return r
}

// shuffleloEpi16 (PSHUFLW) shuffles the four words of the low qword.
func shuffleloEpi16(v M128, imm uint8) M128 {
	return M128{shuffle4x16(v[0], imm), v[1]}
}

// shufflehiEpi16 (PSHUFHW) shuffles the four words of the high qword.
func shufflehiEpi16(v M128, imm uint8) M128 {
	return M128{v[0], shuffle4x16(v[1], imm)}
}

// shuffleEpi8 (PSHUFB) selects each byte of the result from v by the low
// four bits of the matching control byte, or zeroes it when bit 7 is set.
func shuffleEpi8(v, ctl M128) M128 {
	src := v.Bytes()
	c := ctl.Bytes()
	var out [16]byte
	for i, s := range c {
		if s&0x80 == 0 {
			out[i] = src[s&0x0f]
		}
	}
	return Load(out[:])
}

// blendEpi16 (PBLENDW) takes word i from b when bit i of imm is set.
func blendEpi16(a, b M128, imm uint8) M128 {
	var m M128
	for i := range 8 {
		if imm&(1<<uint(i)) != 0 {
			m[i>>2] |= 0xffff << (16 * uint(i&3))
		}
	}
	return or(andnot(m, a), and(m, b))
}

// blendEpi32 (VPBLENDD) takes dword i from b when bit i of imm is set.
func blendEpi32(a, b M128, imm uint8) M128 {
	var m M128
	for i := range 4 {
		if imm&(1<<uint(i)) != 0 {
			m[i>>1] |= 0xffffffff << (32 * uint(i&1))
		}
	}
	return or(andnot(m, a), and(m, b))
}

// maskBlendEpi32 (VPBLENDMD) is blendEpi32 steered by a mask register.
func maskBlendEpi32(k uint8, a, b M128) M128 {
	return blendEpi32(a, b, k&0xf)
}

func rorEpi64(v M128, c int) M128 {
	return M128{bits.RotateLeft64(v[0], -c), bits.RotateLeft64(v[1], -c)}
}

func rolEpi64(v M128, c int) M128 {
	return M128{bits.RotateLeft64(v[0], c), bits.RotateLeft64(v[1], c)}
}

func rorEpi32(v M128, c int) M128 {
	return M128{words.Rotl32(v[0], -c), words.Rotl32(v[1], -c)}
}

func rolEpi32(v M128, c int) M128 {
	return M128{words.Rotl32(v[0], c), words.Rotl32(v[1], c)}
}

// rorvEpi64 (VPRORVQ) rotates each element right by its count modulo 64.
func rorvEpi64(v, count M128) M128 {
	return M128{bits.RotateLeft64(v[0], -int(count[0]%64)), bits.RotateLeft64(v[1], -int(count[1]%64))}
}

func rolvEpi64(v, count M128) M128 {
	return M128{bits.RotateLeft64(v[0], int(count[0]%64)), bits.RotateLeft64(v[1], int(count[1]%64))}
}

func rorvEpi32(v, count M128) M128 { return zipWords(v, count, words.Rotrv32) }
func rolvEpi32(v, count M128) M128 { return zipWords(v, count, words.Rotlv32) }

// shldiEpi64 (VPSHLDQ) returns the high qword of a:b shifted left by c.
func shldiEpi64(a, b M128, c uint) M128 {
	c &= 63
	return M128{a[0]<<c | b[0]>>(64-c), a[1]<<c | b[1]>>(64-c)}
}

// shrdiEpi64 (VPSHRDQ) returns the low qword of b:a shifted right by c.
func shrdiEpi64(a, b M128, c uint) M128 {
	c &= 63
	return M128{a[0]>>c | b[0]<<(64-c), a[1]>>c | b[1]<<(64-c)}
}

func shldiEpi32(a, b M128, c uint) M128 {
	c &= 31
	return or(slliEpi32(a, c), srliEpi32(b, 32-c))
}

func shrdiEpi32(a, b M128, c uint) M128 {
	c &= 31
	return or(srliEpi32(a, c), slliEpi32(b, 32-c))
}

func shldiEpi16(a, b M128, c uint) M128 {
	c &= 15
	return or(slliEpi16(a, c), srliEpi16(b, 16-c))
}

func shrdiEpi16(a, b M128, c uint) M128 {
	c &= 15
	return or(srliEpi16(a, c), slliEpi16(b, 16-c))
}

// ternarylogicEpi64 (VPTERNLOGQ) applies a three-input truth table bitwise.
func ternarylogicEpi64(a, b, c M128, imm uint8) M128 {
	return M128{ternlog.Eval(imm, a[0], b[0], c[0]), ternlog.Eval(imm, a[1], b[1], c[1])}
}

// insertPs (INSERTPS) copies dword imm[7:6] of b into dword imm[5:4] of a,
// then zeroes the dwords selected by imm[3:0].
func insertPs(a, b M128, imm uint8) M128 {
	e := a.Words32()
	e[imm>>4&3] = get32(b, int(imm>>6&3))
	for i := range 4 {
		if imm&(1<<uint(i)) != 0 {
			e[i] = 0
		}
	}
	return set32(e[3], e[2], e[1], e[0])
}

// insertEpi64 (PINSRQ) replaces qword i of v with x.
func insertEpi64(v M128, x uint64, i int) M128 {
	v[i&1] = x
	return v
}

// shufflePd (SHUFPD) takes the low result qword from a and the high one from
// b, each selected by one bit of imm.
func shufflePd(a, b M128, imm uint8) M128 {
	return M128{a[imm&1], b[imm>>1&1]}
}

// shufflePs (SHUFPS) takes the low two result dwords from a and the high two
// from b, each selected by a two bit field of imm.
func shufflePs(a, b M128, imm uint8) M128 {
	return set32(get32(b, int(imm>>6&3)), get32(b, int(imm>>4&3)),
		get32(a, int(imm>>2&3)), get32(a, int(imm&3)))
}

func unpackloEpi64(a, b M128) M128 { return M128{a[0], b[0]} }
func unpackhiEpi64(a, b M128) M128 { return M128{a[1], b[1]} }

// movemaskPd (MOVMSKPD) gathers the sign bit of each qword.
func movemaskPd(v M128) int {
	return int(v[0]>>63) | int(v[1]>>63)<<1
}

// movemaskPs (MOVMSKPS) gathers the sign bit of each dword.
func movemaskPs(v M128) int {
	m := 0
	for i := range 4 {
		m |= int(get32(v, i)>>31) << uint(i)
	}
	return m
}

func addEpi64(a, b M128) M128 { return zipWords(a, b, words.Add64) }
func addEpi32(a, b M128) M128 { return zipWords(a, b, words.Add32) }
func addEpi16(a, b M128) M128 { return zipWords(a, b, words.Add16) }
func addEpi8(a, b M128) M128  { return zipWords(a, b, words.Add8) }
func subEpi64(a, b M128) M128 { return zipWords(a, b, words.Sub64) }
func subEpi32(a, b M128) M128 { return zipWords(a, b, words.Sub32) }
func subEpi16(a, b M128) M128 { return zipWords(a, b, words.Sub16) }
func subEpi8(a, b M128) M128  { return zipWords(a, b, words.Sub8) }
