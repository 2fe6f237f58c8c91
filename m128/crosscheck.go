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
	"fmt"
	"math/rand/v2"

	"github.com/ajroetker/go-simdutils/ternlog"
	"github.com/ajroetker/go-simdutils/tier"
)

// variant is one tier's implementation of an operation, adapted to a common
// signature: up to four vector inputs and one integer argument.
type variant struct {
	tier tier.Level
	fn   func(in *[4]M128, c int) M128
}

// check is an operation whose variants must agree for every argument in
// args.
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

func unaryVariants(fns ...any) []variant {
	vs := make([]variant, 0, len(fns)/2)
	for i := 0; i < len(fns); i += 2 {
		l := fns[i].(tier.Level)
		switch f := fns[i+1].(type) {
		case func(M128) M128:
			vs = append(vs, variant{l, func(in *[4]M128, _ int) M128 { return f(in[0]) }})
		case func(M128, int) M128:
			vs = append(vs, variant{l, func(in *[4]M128, c int) M128 { return f(in[0], c) }})
		case func(M128, M128) M128:
			vs = append(vs, variant{l, func(in *[4]M128, _ int) M128 { return f(in[0], in[1]) }})
		case func(M128, M128, int) M128:
			vs = append(vs, variant{l, func(in *[4]M128, c int) M128 { return f(in[0], in[1], c) }})
		case func(M128, M128, uint) M128:
			vs = append(vs, variant{l, func(in *[4]M128, c int) M128 { return f(in[0], in[1], uint(c)) }})
		case func(M128, M128, M128) M128:
			vs = append(vs, variant{l, func(in *[4]M128, _ int) M128 { return f(in[0], in[1], in[2]) }})
		case func(M128, M128, M128, M128) M128:
			vs = append(vs, variant{l, func(in *[4]M128, _ int) M128 { return f(in[0], in[1], in[2], in[3]) }})
		default:
			panic(fmt.Sprintf("m128: unsupported variant type %T", f))
		}
	}
	return vs
}

func byteRotateVariants(ctl M128, bitRot func(M128, int) M128, native func(M128, int) M128, c int) []variant {
	return unaryVariants(
		tier.SSE2, func(v M128) M128 { return bitRot(v, c) },
		tier.SSSE3, func(v M128) M128 { return shuffleEpi8(v, ctl) },
		tier.AVX512, func(v M128) M128 { return native(v, c) },
	)
}

func twoOutputs(f func(M128, M128, int) (M128, M128), hi bool) func(M128, M128, int) M128 {
	return func(a, b M128, c int) M128 {
		r1, r0 := f(a, b, c)
		if hi {
			return r1
		}
		return r0
	}
}

func checks() []check {
	ternaryAVX512 := func(table uint8) func(M128, M128, M128) M128 {
		return func(a, b, c M128) M128 { return ternarylogicEpi64(a, b, c, table) }
	}
	binary := func(f func(a, b, c M128) M128) func(M128, M128) M128 {
		return func(a, b M128) M128 { return f(a, b, b) }
	}
	cs := []check{
		{"Ror64", span(-64, 128), unaryVariants(tier.SSE2, ror64_SSE2, tier.AVX512, rorEpi64)},
		{"Rol64", span(-64, 128), unaryVariants(tier.SSE2, rol64_SSE2, tier.AVX512, rolEpi64)},
		{"Ror32", span(-32, 64), unaryVariants(tier.SSE2, ror32_SSE2, tier.AVX512, rorEpi32)},
		{"Rol32", span(-32, 64), unaryVariants(tier.SSE2, rol32_SSE2, tier.AVX512, rolEpi32)},
		{"Ror16", span(0, 32), unaryVariants(tier.SSE2, ror16_SSE2, tier.AVX512VBMI, ror16_VBMI)},
		{"Rol16", span(0, 32), unaryVariants(tier.SSE2, rol16_SSE2, tier.AVX512VBMI, rol16_VBMI)},
		{"RorV64", noArgs, unaryVariants(tier.SSE2, rorv64_SSE2, tier.AVX2, rorv64_AVX2, tier.AVX512, rorvEpi64)},
		{"RorV32", noArgs, unaryVariants(tier.SSE2, rorv32_SSE2, tier.AVX2, rorv32_AVX2, tier.AVX512, rorvEpi32)},
		{"RolV64", noArgs, unaryVariants(
			tier.SSE2, func(v, c M128) M128 { return rorv64_SSE2(v, subEpi64(Zero(), c)) },
			tier.AVX2, func(v, c M128) M128 { return rorv64_AVX2(v, subEpi64(Zero(), c)) },
			tier.AVX512, rolvEpi64)},
		{"RolV32", noArgs, unaryVariants(
			tier.SSE2, func(v, c M128) M128 { return rorv32_SSE2(v, subEpi32(Zero(), c)) },
			tier.AVX2, func(v, c M128) M128 { return rorv32_AVX2(v, subEpi32(Zero(), c)) },
			tier.AVX512, rolvEpi32)},
		{"RorX2_64/hi", span(0, 64), unaryVariants(
			tier.SSE2, twoOutputs(rorx2_64_SSE2, true),
			tier.AVX512, func(a, _ M128, c int) M128 { return rorEpi64(a, c) })},
		{"RorX2_64/lo", span(0, 64), unaryVariants(
			tier.SSE2, twoOutputs(rorx2_64_SSE2, false),
			tier.AVX512, func(_, b M128, c int) M128 { return rorEpi64(b, c) })},
		{"RorX2_32/hi", span(0, 32), unaryVariants(
			tier.SSE2, twoOutputs(rorx2_32_SSE2, true),
			tier.AVX512, func(a, _ M128, c int) M128 { return rorEpi32(a, c) })},
		{"RorX2_32/lo", span(0, 32), unaryVariants(
			tier.SSE2, twoOutputs(rorx2_32_SSE2, false),
			tier.AVX512, func(_, b M128, c int) M128 { return rorEpi32(b, c) })},

		{"Swap64_32", noArgs, unaryVariants(
			tier.SSE2, Swap64_32,
			tier.AVX512, func(v M128) M128 { return rorEpi64(v, 32) })},
		{"Shuflr64_24", noArgs, byteRotateVariants(shuflr64x24Ctl, ror64_SSE2, rorEpi64, 24)},
		{"Shufll64_24", noArgs, byteRotateVariants(shufll64x24Ctl, rol64_SSE2, rolEpi64, 24)},
		{"Shuflr64_16", noArgs, byteRotateVariants(shuflr64x16Ctl, ror64_SSE2, rorEpi64, 16)},
		{"Shufll64_16", noArgs, byteRotateVariants(shufll64x16Ctl, rol64_SSE2, rolEpi64, 16)},
		{"Shuflr64_8", noArgs, byteRotateVariants(shuflr64x8Ctl, ror64_SSE2, rorEpi64, 8)},
		{"Shufll64_8", noArgs, byteRotateVariants(shufll64x8Ctl, rol64_SSE2, rolEpi64, 8)},
		{"Swap32_16", noArgs, byteRotateVariants(swap32x16Ctl, ror32_SSE2, rorEpi32, 16)},
		{"Shuflr32_8", noArgs, byteRotateVariants(shuflr32x8Ctl, ror32_SSE2, rorEpi32, 8)},
		{"Shufll32_8", noArgs, byteRotateVariants(shufll32x8Ctl, rol32_SSE2, rolEpi32, 8)},

		{"rotateBytes", span(0, 16), unaryVariants(tier.SSE2, rotateBytes_SSE2, tier.SSSE3, rotateBytes_SSSE3)},
		{"alignr", span(0, 17), unaryVariants(tier.SSE2, alignr_SSE2, tier.SSSE3, alignrEpi8)},

		{"Bswap64", noArgs, unaryVariants(tier.SSE2, bswap64_SSE2, tier.SSSE3, func(v M128) M128 { return shuffleEpi8(v, bswap64Ctl) })},
		{"Bswap32", noArgs, unaryVariants(tier.SSE2, bswap32_SSE2, tier.SSSE3, func(v M128) M128 { return shuffleEpi8(v, bswap32Ctl) })},
		{"Bswap16", noArgs, unaryVariants(tier.SSE2, bswap16_SSE2, tier.SSSE3, func(v M128) M128 { return shuffleEpi8(v, bswap16Ctl) })},

		{"Diagonal32", noArgs, unaryVariants(
			tier.SSE2, diagonal32_SSE2,
			tier.SSE41, diagonal32_SSE41,
			tier.AVX2, diagonal32_AVX2,
			tier.AVX512, diagonal32_AVX512)},

		{"Shl2_64", span(0, 64), unaryVariants(tier.SSE2, shl2_64_SSE2, tier.AVX512VBMI, shldiEpi64)},
		{"Shl2_32", span(0, 32), unaryVariants(tier.SSE2, shl2_32_SSE2, tier.AVX512VBMI, shldiEpi32)},
		{"Shl2_16", span(0, 16), unaryVariants(tier.SSE2, shl2_16_SSE2, tier.AVX512VBMI, shldiEpi16)},
		{"Shr2_64", span(0, 64), unaryVariants(tier.SSE2, shr2_64_SSE2, tier.AVX512VBMI, func(a, b M128, c uint) M128 { return shrdiEpi64(b, a, c) })},
		{"Shr2_32", span(0, 32), unaryVariants(tier.SSE2, shr2_32_SSE2, tier.AVX512VBMI, func(a, b M128, c uint) M128 { return shrdiEpi32(b, a, c) })},
		{"Shr2_16", span(0, 16), unaryVariants(tier.SSE2, shr2_16_SSE2, tier.AVX512VBMI, func(a, b M128, c uint) M128 { return shrdiEpi16(b, a, c) })},

		{"Const64", noArgs, unaryVariants(
			tier.SSE2, func(a, b M128) M128 { return const64_SSE2(a[0], b[0]) },
			tier.SSE41, func(a, b M128) M128 { return const64_SSE41(a[0], b[0]) })},

		{"TernaryLogic", span(0, 256), unaryVariants(
			tier.SSE2, func(a, b M128, c int) M128 { return ternaryLogic_SSE2(a, b, in2(a, b), uint8(c)) },
			tier.AVX512, func(a, b M128, c int) M128 { return ternarylogicEpi64(a, b, in2(a, b), uint8(c)) })},
	}

	combinators := []struct {
		name  string
		table uint8
		sse2  func(a, b, c M128) M128
		two   bool
	}{
		{"Xor3", ternlog.XOR3, xor3_SSE2, false},
		{"And3", ternlog.AND3, and3_SSE2, false},
		{"Or3", ternlog.OR3, or3_SSE2, false},
		{"XorAnd", ternlog.XORAND, xorAnd_SSE2, false},
		{"AndXor", ternlog.ANDXOR, andXor_SSE2, false},
		{"XorOr", ternlog.XOROR, xorOr_SSE2, false},
		{"XorAndNot", ternlog.XORANDNOT, xorAndNot_SSE2, false},
		{"OrAnd", ternlog.ORAND, orAnd_SSE2, false},
		{"Nor", ternlog.NOR, nor_SSE2, true},
		{"Xnor", ternlog.XNOR, xnor_SSE2, true},
		{"Nand", ternlog.NAND, nand_SSE2, true},
	}
	for _, cb := range combinators {
		if cb.two {
			cs = append(cs, check{cb.name, noArgs, unaryVariants(
				tier.SSE2, binary(cb.sse2), tier.AVX512, binary(ternaryAVX512(cb.table)))})
			continue
		}
		cs = append(cs, check{cb.name, noArgs, unaryVariants(
			tier.SSE2, cb.sse2, tier.AVX512, ternaryAVX512(cb.table))})
	}
	cs = append(cs, check{"Not", noArgs, unaryVariants(
		tier.SSE2, func(v M128) M128 { return not_SSE2(v, v, v) },
		tier.AVX512, func(v M128) M128 { return ternarylogicEpi64(v, v, v, ternlog.NOT) })})
	return cs
}

// in2 derives a third operand from two so two-input variant signatures can
// exercise three-input truth tables.
func in2(a, b M128) M128 {
	return M128{a[0]*0x9e3779b97f4a7c15 ^ b[1], a[1]*0xc2b2ae3d27d4eb4f ^ b[0]}
}

// CrossCheck compares every tier implementation of every operation on n
// random input sets drawn from r, whatever tier the binary was built for. It
// returns an error describing the first disagreement.
func CrossCheck(r *rand.Rand, n int) error {
	cs := checks()
	for range n {
		var in [4]M128
		for i := range in {
			in[i] = M128{r.Uint64(), r.Uint64()}
		}
		for _, c := range cs {
			if err := c.run(&in); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c check) run(in *[4]M128) error {
	for _, arg := range c.args {
		want := c.variants[0].fn(in, arg)
		for _, v := range c.variants[1:] {
			if got := v.fn(in, arg); got != want {
				return fmt.Errorf("m128: %s(%d): %s gives %#x, %s gives %#x on inputs %#x",
					c.name, arg, v.tier, got, c.variants[0].tier, want, *in)
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
