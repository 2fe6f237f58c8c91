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
	"fmt"
	"math/rand/v2"

	"github.com/ajroetker/go-simdutils/internal/words"
	"github.com/ajroetker/go-simdutils/m128"
	"github.com/ajroetker/go-simdutils/ternlog"
	"github.com/ajroetker/go-simdutils/tier"
)

// variant is one way of computing an operation: a tier's instruction
// sequence, named after the tier.Level as in package m128, or an equivalent
// composition that runs at the same tier, named after the instruction or
// scalar form it uses. Most m512 operations have a single tier, so the
// second kind is what most checks compare.
type variant struct {
	name string
	fn   func(in *[8]M512, c int) M512
}

type check struct {
	name     string
	args     []int
	variants []variant
}

func span(lo, hi int) []int {
	s := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		s = append(s, i)
	}
	return s
}

var noArgs = []int{0}

// variants pairs labels, a tier.Level or a string, with functions of any of
// the supported signatures.
func variants(fns ...any) []variant {
	vs := make([]variant, 0, len(fns)/2)
	for i := 0; i < len(fns); i += 2 {
		var name string
		switch l := fns[i].(type) {
		case tier.Level:
			name = l.String()
		case string:
			name = l
		default:
			panic(fmt.Sprintf("m512: unsupported variant label %T", l))
		}
		var fn func(in *[8]M512, c int) M512
		switch f := fns[i+1].(type) {
		case func(M512) M512:
			fn = func(in *[8]M512, _ int) M512 { return f(in[0]) }
		case func(M512, int) M512:
			fn = func(in *[8]M512, c int) M512 { return f(in[0], c) }
		case func(M512, M512) M512:
			fn = func(in *[8]M512, _ int) M512 { return f(in[0], in[1]) }
		case func(M512, M512, uint) M512:
			fn = func(in *[8]M512, c int) M512 { return f(in[0], in[1], uint(c)) }
		case func(M512, M512, M512) M512:
			fn = func(in *[8]M512, _ int) M512 { return f(in[0], in[1], in[2]) }
		case func(M512, M512, M512, M512) M512:
			fn = func(in *[8]M512, _ int) M512 { return f(in[0], in[1], in[2], in[3]) }
		case func(v7, v6, v5, v4, v3, v2, v1, v0 M512) M512:
			fn = func(in *[8]M512, _ int) M512 { return f(in[7], in[6], in[5], in[4], in[3], in[2], in[1], in[0]) }
		default:
			panic(fmt.Sprintf("m512: unsupported variant type %T", f))
		}
		vs = append(vs, variant{name, fn})
	}
	return vs
}

// diagonal64_andor selects each element with a qword mask instead of a mask
// register.
func diagonal64_andor(v7, v6, v5, v4, v3, v2, v1, v0 M512) M512 {
	var r M512
	for i, v := range [8]M512{v0, v1, v2, v3, v4, v5, v6, v7} {
		var m M512
		m[i] = ^uint64(0)
		r = or(r, and(v, m))
	}
	return r
}

func diagonal128x32_andor(v3, v2, v1, v0 M512) M512 {
	var r M512
	for i, v := range [4]M512{v0, v1, v2, v3} {
		r = or(r, and(v, Const1_128(m128Dword(i))))
	}
	return r
}

func scalarWords(f func(uint64) uint64) func(M512) M512 {
	return func(v M512) M512 { return mapWords(v, f) }
}

func checks() []check {
	ternary := func(table uint8) func(M512, M512, M512) M512 {
		return func(a, b, c M512) M512 { return ternarylogicEpi64(a, b, c, table) }
	}
	cs := []check{
		{"Ror16", span(0, 32), variants(tier.AVX512, ror16_AVX512, tier.AVX512VBMI, func(v M512, c int) M512 { return shrdiEpi16(v, v, uint(c)) })},
		{"Rol16", span(0, 32), variants(tier.AVX512, rol16_AVX512, tier.AVX512VBMI, func(v M512, c int) M512 { return shldiEpi16(v, v, uint(c)) })},
		{"Ror8", span(0, 16), variants(
			"ternlog", Ror8,
			"scalar", func(v M512, c int) M512 { return mapWords(v, func(w uint64) uint64 { return words.Rotl8(w, -c) }) })},
		{"RorV32", noArgs, variants(
			tier.AVX512, RorV32,
			"rolv", func(v, c M512) M512 { return rolvEpi32(v, subEpi32(Zero(), c)) })},
		{"RorV64", noArgs, variants(
			tier.AVX512, RorV64,
			"rolv", func(v, c M512) M512 { return rolvEpi64(v, subEpi64(Zero(), c)) })},

		{"Shuflr8", noArgs, variants(tier.AVX512, shuflr8_AVX512, tier.AVX512VBMI, func(v M512) M512 { return permutexvarEpi8(shuflr8Index, v) })},
		{"Shufll8", noArgs, variants(tier.AVX512, shufll8_AVX512, tier.AVX512VBMI, func(v M512) M512 { return permutexvarEpi8(shufll8Index, v) })},
		{"Shuflr16", noArgs, variants("vpermw", Shuflr16, "vpalignr", func(v M512) M512 { return shuflrN8_AVX512(v, 2) })},
		{"Shufll16", noArgs, variants("vpermw", Shufll16, "vpalignr", func(v M512) M512 { return shuflrN8_AVX512(v, 62) })},
		{"ShuflrN8", span(-64, 128), variants(tier.AVX512, shuflrN8_AVX512, tier.AVX512VBMI, shuflrN8_VBMI)},
		{"ShuflrN16", span(0, 64), variants(tier.AVX512, ShuflrN16, "bytes", func(v M512, n int) M512 { return shuflrN8_AVX512(v, 2*n) })},
		{"ShuflrN32", span(0, 32), variants("valignd", ShuflrN32, "bytes", func(v M512, n int) M512 { return shuflrN8_AVX512(v, 4*n) })},
		{"ShuflrN64", span(0, 16), variants("valignq", ShuflrN64, "bytes", func(v M512, n int) M512 { return shuflrN8_AVX512(v, 8*n) })},
		{"Shuflr256_8", noArgs, variants(
			tier.AVX512, func(v M512) M512 { return alignrEpi8(Swap256_128(v), v, 1) },
			tier.AVX512VBMI, func(v M512) M512 { return permutexvarEpi8(shuflr256x8Index, v) })},
		{"Shufll256_8", noArgs, variants(
			tier.AVX512, func(v M512) M512 { return alignrEpi8(v, Swap256_128(v), 15) },
			tier.AVX512VBMI, func(v M512) M512 { return permutexvarEpi8(shufll256x8Index, v) })},
		{"Shufll256_16", noArgs, variants(
			"vpermw", Shufll256_16,
			"vpermb", func(v M512) M512 { return permutexvarEpi8(shufll256x8Index, permutexvarEpi8(shufll256x8Index, v)) })},
		{"Shuflr256_32", noArgs, variants(
			"vpermd", Shuflr256_32,
			"vpermw", func(v M512) M512 { return Shuflr256_16(Shuflr256_16(v)) })},
		{"Shuflr256_64", noArgs, variants(
			"vpermq", Shuflr256_64,
			"vpermd", func(v M512) M512 { return Shuflr256_32(Shuflr256_32(v)) })},
		{"Swap64_32", noArgs, variants("vpshufd", Swap64_32, "vprorq", func(v M512) M512 { return rorEpi64(v, 32) })},
		{"Swap128_64", noArgs, variants("vpshufd", Swap128_64, "vpalignr", func(v M512) M512 { return alignrEpi8(v, v, 8) })},

		{"Bswap64", noArgs, variants("vpshufb", Bswap64, "scalar", scalarWords(words.Bswap64))},
		{"Bswap32", noArgs, variants("vpshufb", Bswap32, "scalar", scalarWords(words.Bswap32))},
		{"Bswap16", noArgs, variants("vpshufb", Bswap16, "scalar", scalarWords(words.Bswap16))},

		{"Diagonal64", noArgs, variants("blend", Diagonal64, "andor", diagonal64_andor)},
		{"Diagonal128_32", noArgs, variants("blend", Diagonal128_32, "andor", diagonal128x32_andor)},

		{"Shl2_64", span(0, 64), variants(tier.AVX512, shl2_64_AVX512, tier.AVX512VBMI, shldiEpi64)},
		{"Shl2_32", span(0, 32), variants(tier.AVX512, shl2_32_AVX512, tier.AVX512VBMI, shldiEpi32)},
		{"Shl2_16", span(0, 16), variants(tier.AVX512, shl2_16_AVX512, tier.AVX512VBMI, shldiEpi16)},
		{"Shr2_64", span(0, 64), variants(tier.AVX512, shr2_64_AVX512, tier.AVX512VBMI, func(a, b M512, c uint) M512 { return shrdiEpi64(b, a, c) })},
		{"Shr2_32", span(0, 32), variants(tier.AVX512, shr2_32_AVX512, tier.AVX512VBMI, func(a, b M512, c uint) M512 { return shrdiEpi32(b, a, c) })},
		{"Shr2_16", span(0, 16), variants(tier.AVX512, shr2_16_AVX512, tier.AVX512VBMI, func(a, b M512, c uint) M512 { return shrdiEpi16(b, a, c) })},

		{"Xor3", noArgs, variants("ternlog", ternary(ternlog.XOR3), "binary", func(a, b, c M512) M512 { return xor(a, xor(b, c)) })},
		{"And3", noArgs, variants("ternlog", ternary(ternlog.AND3), "binary", func(a, b, c M512) M512 { return and(a, and(b, c)) })},
		{"Or3", noArgs, variants("ternlog", ternary(ternlog.OR3), "binary", func(a, b, c M512) M512 { return or(a, or(b, c)) })},
		{"XorAnd", noArgs, variants("ternlog", ternary(ternlog.XORAND), "binary", func(a, b, c M512) M512 { return xor(a, and(b, c)) })},
		{"AndXor", noArgs, variants("ternlog", ternary(ternlog.ANDXOR), "binary", func(a, b, c M512) M512 { return and(a, xor(b, c)) })},
		{"XorOr", noArgs, variants("ternlog", ternary(ternlog.XOROR), "binary", func(a, b, c M512) M512 { return xor(a, or(b, c)) })},
		{"XorAndNot", noArgs, variants("ternlog", ternary(ternlog.XORANDNOT), "binary", func(a, b, c M512) M512 { return xor(a, andnot(b, c)) })},
		{"OrAnd", noArgs, variants("ternlog", ternary(ternlog.ORAND), "binary", func(a, b, c M512) M512 { return or(a, and(b, c)) })},
		{"Nor", noArgs, variants("ternlog", Nor, "binary", func(a, b M512) M512 { return xor(or(a, b), Neg1()) })},
		{"Xnor", noArgs, variants("ternlog", Xnor, "binary", func(a, b M512) M512 { return xor(xor(a, b), Neg1()) })},
		{"Nand", noArgs, variants("ternlog", Nand, "binary", func(a, b M512) M512 { return xor(and(a, b), Neg1()) })},
		{"Not", noArgs, variants("ternlog", Not, "binary", func(v M512) M512 { return xor(v, Neg1()) })},
		{"Xor4", noArgs, variants("ternlog", Xor4, "binary", func(a, b, c, d M512) M512 { return xor(xor(a, b), xor(c, d)) })},
	}
	return cs
}

// m128Dword returns the mask selecting 32-bit element i of a lane.
func m128Dword(i int) m128.M128 {
	var m m128.M128
	m[i>>1] = 0xffffffff << (32 * uint(i&1))
	return m
}

// CrossCheck compares every implementation of every operation on n random
// input sets drawn from r, whatever tier the binary was built for. It
// returns an error describing the first disagreement.
func CrossCheck(r *rand.Rand, n int) error {
	cs := checks()
	for range n {
		var in [8]M512
		for i := range in {
			for j := range in[i] {
				in[i][j] = r.Uint64()
			}
		}
		for _, c := range cs {
			if err := c.run(&in); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c check) run(in *[8]M512) error {
	for _, arg := range c.args {
		want := c.variants[0].fn(in, arg)
		for _, v := range c.variants[1:] {
			if got := v.fn(in, arg); got != want {
				return fmt.Errorf("m512: %s(%d): %s gives %#x, %s gives %#x on inputs %#x",
					c.name, arg, v.name, got, c.variants[0].name, want, in[:4])
			}
		}
	}
	return nil
}

// CheckNames returns the names of the operations CrossCheck covers.
func CheckNames() []string {
	cs := checks()
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.name
	}
	return names
}
