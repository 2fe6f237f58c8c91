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
	"github.com/ajroetker/go-simdutils/ternlog"
	"github.com/ajroetker/go-simdutils/tier"
)

// And returns a & b.
func And(a, b M128) M128 { return and(a, b) }

// Or returns a | b.
func Or(a, b M128) M128 { return or(a, b) }

// Xor returns a ^ b.
func Xor(a, b M128) M128 { return xor(a, b) }

// AndNot returns ^a & b, the operand order of PANDN.
func AndNot(a, b M128) M128 { return andnot(a, b) }

// Three-input combinators. AVX-512 evaluates each with one VPTERNLOGQ on the
// truth table from package ternlog; lower tiers compose binary operations
// that compute the same table.

func ternary(a, b, c M128, table uint8, f func(a, b, c M128) M128) M128 {
	if tier.Build >= tier.AVX512 {
		return ternarylogicEpi64(a, b, c, table)
	}
	return f(a, b, c)
}

// Xor3 returns a ^ b ^ c.
func Xor3(a, b, c M128) M128 { return ternary(a, b, c, ternlog.XOR3, xor3_SSE2) }

// And3 returns a & b & c.
func And3(a, b, c M128) M128 { return ternary(a, b, c, ternlog.AND3, and3_SSE2) }

// Or3 returns a | b | c.
func Or3(a, b, c M128) M128 { return ternary(a, b, c, ternlog.OR3, or3_SSE2) }

// XorAnd returns a ^ (b & c).
func XorAnd(a, b, c M128) M128 { return ternary(a, b, c, ternlog.XORAND, xorAnd_SSE2) }

// AndXor returns a & (b ^ c).
func AndXor(a, b, c M128) M128 { return ternary(a, b, c, ternlog.ANDXOR, andXor_SSE2) }

// XorOr returns a ^ (b | c).
func XorOr(a, b, c M128) M128 { return ternary(a, b, c, ternlog.XOROR, xorOr_SSE2) }

// XorAndNot returns a ^ (^b & c).
func XorAndNot(a, b, c M128) M128 { return ternary(a, b, c, ternlog.XORANDNOT, xorAndNot_SSE2) }

// OrAnd returns a | (b & c).
func OrAnd(a, b, c M128) M128 { return ternary(a, b, c, ternlog.ORAND, orAnd_SSE2) }

// Nor returns ^(a | b).
func Nor(a, b M128) M128 { return ternary(a, b, b, ternlog.NOR, nor_SSE2) }

// Xnor returns ^(a ^ b).
func Xnor(a, b M128) M128 { return ternary(a, b, b, ternlog.XNOR, xnor_SSE2) }

// Nand returns ^(a & b).
func Nand(a, b M128) M128 { return ternary(a, b, b, ternlog.NAND, nand_SSE2) }

// Not returns ^v.
func Not(v M128) M128 { return ternary(v, v, v, ternlog.NOT, not_SSE2) }

// Xor4 returns a ^ b ^ c ^ d.
func Xor4(a, b, c, d M128) M128 { return xor(a, Xor3(b, c, d)) }

// TernaryLogic applies an arbitrary truth table bitwise: bit a<<2|b<<1|c of
// table is the output for input bits a, b and c.
func TernaryLogic(a, b, c M128, table uint8) M128 {
	if tier.Build >= tier.AVX512 {
		return ternarylogicEpi64(a, b, c, table)
	}
	return ternaryLogic_SSE2(a, b, c, table)
}

func xor3_SSE2(a, b, c M128) M128      { return xor(a, xor(b, c)) }
func and3_SSE2(a, b, c M128) M128      { return and(a, and(b, c)) }
func or3_SSE2(a, b, c M128) M128       { return or(a, or(b, c)) }
func xorAnd_SSE2(a, b, c M128) M128    { return xor(a, and(b, c)) }
func andXor_SSE2(a, b, c M128) M128    { return and(a, xor(b, c)) }
func xorOr_SSE2(a, b, c M128) M128     { return xor(a, or(b, c)) }
func xorAndNot_SSE2(a, b, c M128) M128 { return xor(a, andnot(b, c)) }
func orAnd_SSE2(a, b, c M128) M128     { return or(a, and(b, c)) }
func nor_SSE2(a, b, _ M128) M128       { return xor(or(a, b), Neg1()) }
func xnor_SSE2(a, b, _ M128) M128      { return xor(xor(a, b), Neg1()) }
func nand_SSE2(a, b, _ M128) M128      { return xor(and(a, b), Neg1()) }
func not_SSE2(a, _, _ M128) M128       { return xor(a, Neg1()) }

// ternaryLogic_SSE2 ORs together the minterms selected by table.
func ternaryLogic_SSE2(a, b, c M128, table uint8) M128 {
	var r M128
	for row := range 8 {
		if table&(1<<uint(row)) == 0 {
			continue
		}
		m := Neg1()
		m = minterm(m, a, row&4 != 0)
		m = minterm(m, b, row&2 != 0)
		m = minterm(m, c, row&1 != 0)
		r = or(r, m)
	}
	return r
}

func minterm(m, x M128, set bool) M128 {
	if set {
		return and(m, x)
	}
	return andnot(x, m)
}

// Negate64 returns the two's complement negation of each 64-bit element.
func Negate64(v M128) M128 { return subEpi64(Zero(), v) }

// Negate32 returns the two's complement negation of each 32-bit element.
func Negate32(v M128) M128 { return subEpi32(Zero(), v) }

// Negate16 returns the two's complement negation of each 16-bit element.
func Negate16(v M128) M128 { return subEpi16(Zero(), v) }

// Add64 adds the 64-bit elements of a and b.
func Add64(a, b M128) M128 { return addEpi64(a, b) }

// Add32 adds the 32-bit elements of a and b.
func Add32(a, b M128) M128 { return addEpi32(a, b) }

// Add16 adds the 16-bit elements of a and b.
func Add16(a, b M128) M128 { return addEpi16(a, b) }

// Add8 adds the bytes of a and b.
func Add8(a, b M128) M128 { return addEpi8(a, b) }

// Sub64 subtracts the 64-bit elements of b from a.
func Sub64(a, b M128) M128 { return subEpi64(a, b) }

// Sub32 subtracts the 32-bit elements of b from a.
func Sub32(a, b M128) M128 { return subEpi32(a, b) }

// Add4_64 returns the sum of four vectors of 64-bit elements, added as two
// independent pairs.
func Add4_64(a, b, c, d M128) M128 { return addEpi64(addEpi64(a, b), addEpi64(c, d)) }

// Add4_32 returns the sum of four vectors of 32-bit elements.
func Add4_32(a, b, c, d M128) M128 { return addEpi32(addEpi32(a, b), addEpi32(c, d)) }

// Add4_16 returns the sum of four vectors of 16-bit elements.
func Add4_16(a, b, c, d M128) M128 { return addEpi16(addEpi16(a, b), addEpi16(c, d)) }

// Add4_8 returns the sum of four vectors of bytes.
func Add4_8(a, b, c, d M128) M128 { return addEpi8(addEpi8(a, b), addEpi8(c, d)) }

// Slli64 shifts each 64-bit element left by c bits, filling with zeros.
func Slli64(v M128, c uint) M128 { return slliEpi64(v, c) }

// Srli64 shifts each 64-bit element right by c bits, filling with zeros.
func Srli64(v M128, c uint) M128 { return srliEpi64(v, c) }

// Slli32 shifts each 32-bit element left by c bits, filling with zeros.
func Slli32(v M128, c uint) M128 { return slliEpi32(v, c) }

// Srli32 shifts each 32-bit element right by c bits, filling with zeros.
func Srli32(v M128, c uint) M128 { return srliEpi32(v, c) }

// Slli16 shifts each 16-bit element left by c bits, filling with zeros.
func Slli16(v M128, c uint) M128 { return slliEpi16(v, c) }

// Srli16 shifts each 16-bit element right by c bits, filling with zeros.
func Srli16(v M128, c uint) M128 { return srliEpi16(v, c) }

// Movmask64 returns the sign bits of the two 64-bit elements, element 0 in
// bit 0.
func Movmask64(v M128) int { return movemaskPd(v) }

// Movmask32 returns the sign bits of the four 32-bit elements.
func Movmask32(v M128) int { return movemaskPs(v) }
