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
	"math/bits"

	"github.com/ajroetker/go-simdutils/internal/words"
	"github.com/ajroetker/go-simdutils/m128"
	"github.com/ajroetker/go-simdutils/m256"
	"github.com/ajroetker/go-simdutils/ternlog"
)

// Models of the AVX-512 instructions the package is written in. Immediate
// operands are reduced the way the hardware decodes them.

func mapWords(v M512, f func(uint64) uint64) M512 {
	for i := range v {
		v[i] = f(v[i])
	}
	return v
}

func zipWords(a, b M512, f func(uint64, uint64) uint64) M512 {
	for i := range a {
		a[i] = f(a[i], b[i])
	}
	return a
}

func and(a, b M512) M512 {
	return zipWords(a, b, func(x, y uint64) uint64 { return x & y })
}

func or(a, b M512) M512 {
	return zipWords(a, b, func(x, y uint64) uint64 { return x | y })
}

func xor(a, b M512) M512 {
	return zipWords(a, b, func(x, y uint64) uint64 { return x ^ y })
}

func andnot(a, b M512) M512 {
	return zipWords(a, b, func(x, y uint64) uint64 { return ^x & y })
}

func get32(v M512, i int) uint32 { return uint32(v[i>>1] >> (32 * uint(i&1))) }
func get16(v M512, i int) uint16 { return uint16(v[i>>2] >> (16 * uint(i&3))) }

func put32(v *M512, i int, x uint32) {
	s := 32 * uint(i&1)
	v[i>>1] = v[i>>1]&^(0xffffffff<<s) | uint64(x)<<s
}

func put16(v *M512, i int, x uint16) {
	s := 16 * uint(i&3)
	v[i>>2] = v[i>>2]&^(0xffff<<s) | uint64(x)<<s
}

func srliEpi64(v M512, c uint) M512 {
	return mapWords(v, func(w uint64) uint64 { return words.Srl64(w, c) })
}

func slliEpi64(v M512, c uint) M512 {
	return mapWords(v, func(w uint64) uint64 { return words.Sll64(w, c) })
}

func srliEpi32(v M512, c uint) M512 {
	return mapWords(v, func(w uint64) uint64 { return words.Srl32(w, c) })
}

func slliEpi32(v M512, c uint) M512 {
	return mapWords(v, func(w uint64) uint64 { return words.Sll32(w, c) })
}

func srliEpi16(v M512, c uint) M512 {
	return mapWords(v, func(w uint64) uint64 { return words.Srl16(w, c) })
}

func slliEpi16(v M512, c uint) M512 {
	return mapWords(v, func(w uint64) uint64 { return words.Sll16(w, c) })
}

func rorEpi64(v M512, c int) M512 {
	return mapWords(v, func(w uint64) uint64 { return bits.RotateLeft64(w, -c) })
}

func rolEpi64(v M512, c int) M512 {
	return mapWords(v, func(w uint64) uint64 { return bits.RotateLeft64(w, c) })
}

func rorEpi32(v M512, c int) M512 {
	return mapWords(v, func(w uint64) uint64 { return words.Rotl32(w, -c) })
}

func rolEpi32(v M512, c int) M512 {
	return mapWords(v, func(w uint64) uint64 { return words.Rotl32(w, c) })
}

// rorvEpi64 (VPRORVQ) rotates each element right by its count modulo 64.
func rorvEpi64(v, count M512) M512 {
	return zipWords(v, count, func(w, c uint64) uint64 { return bits.RotateLeft64(w, -int(c%64)) })
}

func rolvEpi64(v, count M512) M512 {
	return zipWords(v, count, func(w, c uint64) uint64 { return bits.RotateLeft64(w, int(c%64)) })
}

func rorvEpi32(v, count M512) M512 { return zipWords(v, count, words.Rotrv32) }
func rolvEpi32(v, count M512) M512 { return zipWords(v, count, words.Rotlv32) }

// shldiEpi64 (VPSHLDQ) returns the high qword of a:b shifted left by c.
func shldiEpi64(a, b M512, c uint) M512 {
	c &= 63
	return or(slliEpi64(a, c), srliEpi64(b, 64-c))
}

// shrdiEpi64 (VPSHRDQ) returns the low qword of b:a shifted right by c.
func shrdiEpi64(a, b M512, c uint) M512 {
	c &= 63
	return or(srliEpi64(a, c), slliEpi64(b, 64-c))
}

func shldiEpi32(a, b M512, c uint) M512 {
	c &= 31
	return or(slliEpi32(a, c), srliEpi32(b, 32-c))
}

func shrdiEpi32(a, b M512, c uint) M512 {
	c &= 31
	return or(srliEpi32(a, c), slliEpi32(b, 32-c))
}

func shldiEpi16(a, b M512, c uint) M512 {
	c &= 15
	return or(slliEpi16(a, c), srliEpi16(b, 16-c))
}

func shrdiEpi16(a, b M512, c uint) M512 {
	c &= 15
	return or(srliEpi16(a, c), slliEpi16(b, 16-c))
}

// ternarylogicEpi64 (VPTERNLOGQ) applies a three-input truth table bitwise.
func ternarylogicEpi64(a, b, c M512, imm uint8) M512 {
	var r M512
	for i := range r {
		r[i] = ternlog.Eval(imm, a[i], b[i], c[i])
	}
	return r
}

// alignrEpi64 (VALIGNQ) returns the low eight qwords of the sixteen qword
// value a:b shifted right by imm[2:0] qwords.
func alignrEpi64(a, b M512, imm int) M512 {
	n := imm & 7
	var r M512
	for i := range r {
		if j := i + n; j < 8 {
			r[i] = b[j]
		} else {
			r[i] = a[j-8]
		}
	}
	return r
}

// alignrEpi32 (VALIGND) is alignrEpi64 over dwords, shifting by imm[3:0].
func alignrEpi32(a, b M512, imm int) M512 {
	n := imm & 15
	var r M512
	for i := range 16 {
		if j := i + n; j < 16 {
			put32(&r, i, get32(b, j))
		} else {
			put32(&r, i, get32(a, j-16))
		}
	}
	return r
}

// alignrEpi8 (VPALIGNR) works on each 128-bit lane on its own: the result
// lane is the low 16 bytes of a:b shifted right by n bytes.
func alignrEpi8(a, b M512, n int) M512 {
	if n >= 32 {
		return M512{}
	}
	ab, bb := a.Bytes(), b.Bytes()
	var out [64]byte
	for l := 0; l < 64; l += 16 {
		for k := range 16 {
			switch j := k + n; {
			case j < 16:
				out[l+k] = bb[l+j]
			case j < 32:
				out[l+k] = ab[l+j-16]
			}
		}
	}
	return Load(out[:])
}

// shuffleI64x2 (VSHUFI64X2) fills the low two result lanes from lanes of a
// and the high two from lanes of b, each picked by two bits of imm.
func shuffleI64x2(a, b M512, imm uint8) M512 {
	var r M512
	for i := range 4 {
		src := a
		if i >= 2 {
			src = b
		}
		s := int(imm>>(2*uint(i))) & 3
		r[2*i], r[2*i+1] = src[2*s], src[2*s+1]
	}
	return r
}

// permutexEpi64 (VPERMQ imm) shuffles the qwords of each 256-bit half.
func permutexEpi64(v M512, imm uint8) M512 {
	var r M512
	for h := 0; h < 8; h += 4 {
		for i := range 4 {
			r[h+i] = v[h+int(imm>>(2*uint(i)))&3]
		}
	}
	return r
}

// permutexvarEpi32 (VPERMD) selects dword i of the result from v by the low
// four bits of dword i of idx.
func permutexvarEpi32(idx, v M512) M512 {
	var r M512
	for i := range 16 {
		put32(&r, i, get32(v, int(get32(idx, i)&15)))
	}
	return r
}

// permutexvarEpi16 (VPERMW) is permutexvarEpi32 over words.
func permutexvarEpi16(idx, v M512) M512 {
	var r M512
	for i := range 32 {
		put16(&r, i, get16(v, int(get16(idx, i)&31)))
	}
	return r
}

// permutexvarEpi8 (VPERMB, VBMI) is permutexvarEpi32 over bytes.
func permutexvarEpi8(idx, v M512) M512 {
	src, c := v.Bytes(), idx.Bytes()
	var out [64]byte
	for i, s := range c {
		out[i] = src[s&63]
	}
	return Load(out[:])
}

// shuffleEpi32 (VPSHUFD) shuffles the dwords of each lane by imm.
func shuffleEpi32(v M512, imm uint8) M512 {
	var r M512
	for l := 0; l < 16; l += 4 {
		for k := range 4 {
			put32(&r, l+k, get32(v, l+int(imm>>(2*uint(k)))&3))
		}
	}
	return r
}

// shuffleEpi8 (VPSHUFB) selects each byte from the same lane of v by the low
// four bits of the control byte, or zeroes it when bit 7 is set.
func shuffleEpi8(v, ctl M512) M512 {
	src, c := v.Bytes(), ctl.Bytes()
	var out [64]byte
	for i, s := range c {
		if s&0x80 == 0 {
			out[i] = src[i&^15|int(s&15)]
		}
	}
	return Load(out[:])
}

// maskBlendEpi64 (VPBLENDMQ) takes qword i from b when bit i of k is set.
func maskBlendEpi64(k uint8, a, b M512) M512 {
	for i := range a {
		if k&(1<<uint(i)) != 0 {
			a[i] = b[i]
		}
	}
	return a
}

// maskBlendEpi32 (VPBLENDMD) takes dword i from b when bit i of k is set.
func maskBlendEpi32(k uint16, a, b M512) M512 {
	for i := range 16 {
		if k&(1<<uint(i)) != 0 {
			put32(&a, i, get32(b, i))
		}
	}
	return a
}

// movmEpi64 (VPMOVM2Q) sets qword i to all ones when bit i of k is set.
func movmEpi64(k uint8) M512 {
	var r M512
	for i := range r {
		if k&(1<<uint(i)) != 0 {
			r[i] = ^uint64(0)
		}
	}
	return r
}

func castsi128(x m128.M128) M512 { return M512{x[0], x[1]} }
func castsi256(x m256.M256) M512 { return M512{x[0], x[1], x[2], x[3]} }

// insertI64x4 (VINSERTI64X4) replaces half i of v with x.
func insertI64x4(v M512, x m256.M256, i int) M512 {
	copy(v[4*(i&1):], x[:])
	return v
}

// insertI64x2 (VINSERTI64X2) replaces lane i of v with x.
func insertI64x2(v M512, x m128.M128, i int) M512 {
	copy(v[2*(i&3):], x[:])
	return v
}

// The broadcasts replicate element 0 of x.
func broadcastq(x m128.M128) M512 {
	n := x[0]
	return M512{n, n, n, n, n, n, n, n}
}

func broadcastd(x m128.M128) M512 { return broadcastq(m128.M128{words.Splat32(uint32(x[0]))}) }
func broadcastw(x m128.M128) M512 { return broadcastq(m128.M128{words.Splat16(uint16(x[0]))}) }
func broadcastb(x m128.M128) M512 { return broadcastq(m128.M128{words.Splat8(uint8(x[0]))}) }

// shufflePd (VSHUFPD) takes the even qword of each lane from a and the odd
// one from b, each picked by one bit of imm.
func shufflePd(a, b M512, imm uint8) M512 {
	var r M512
	for j := 0; j < 8; j += 2 {
		r[j] = a[j+int(imm>>uint(j))&1]
		r[j+1] = b[j+int(imm>>uint(j+1))&1]
	}
	return r
}

// shufflePs (VSHUFPS) takes the low two dwords of each lane from a and the
// high two from b, picked by the same imm in every lane.
func shufflePs(a, b M512, imm uint8) M512 {
	var r M512
	for l := 0; l < 16; l += 4 {
		put32(&r, l, get32(a, l+int(imm)&3))
		put32(&r, l+1, get32(a, l+int(imm>>2)&3))
		put32(&r, l+2, get32(b, l+int(imm>>4)&3))
		put32(&r, l+3, get32(b, l+int(imm>>6)&3))
	}
	return r
}

// movepi64Mask (VPMOVQ2M) gathers the sign bit of each qword.
func movepi64Mask(v M512) uint8 {
	var k uint8
	for i, w := range v {
		k |= uint8(w>>63) << uint(i)
	}
	return k
}

// movepi32Mask (VPMOVD2M) gathers the sign bit of each dword.
func movepi32Mask(v M512) uint16 {
	var k uint16
	for i := range 16 {
		k |= uint16(get32(v, i)>>31) << uint(i)
	}
	return k
}

func addEpi64(a, b M512) M512 { return zipWords(a, b, words.Add64) }
func addEpi32(a, b M512) M512 { return zipWords(a, b, words.Add32) }
func addEpi16(a, b M512) M512 { return zipWords(a, b, words.Add16) }
func addEpi8(a, b M512) M512  { return zipWords(a, b, words.Add8) }

func subEpi64(a, b M512) M512 { return zipWords(a, b, words.Sub64) }

func subEpi32(a, b M512) M512 { return zipWords(a, b, words.Sub32) }

func subEpi16(a, b M512) M512 { return zipWords(a, b, words.Sub16) }

func subEpi8(a, b M512) M512 { return zipWords(a, b, words.Sub8) }
