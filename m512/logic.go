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

import "github.com/ajroetker/go-simdutils/ternlog"

// And returns a & b.
func And(a, b M512) M512 { return and(a, b) }

// Or returns a | b.
func Or(a, b M512) M512 { return or(a, b) }

// Xor returns a ^ b.
func Xor(a, b M512) M512 { return xor(a, b) }

// AndNot returns ^a & b.
func AndNot(a, b M512) M512 { return andnot(a, b) }

// Every combinator below is a single VPTERNLOGQ on its package ternlog truth
// table.

// Xor3 returns a ^ b ^ c.
func Xor3(a, b, c M512) M512 { return ternarylogicEpi64(a, b, c, ternlog.XOR3) }

// And3 returns a & b & c.
func And3(a, b, c M512) M512 { return ternarylogicEpi64(a, b, c, ternlog.AND3) }

// Or3 returns a | b | c.
func Or3(a, b, c M512) M512 { return ternarylogicEpi64(a, b, c, ternlog.OR3) }

// XorAnd returns a ^ (b & c).
func XorAnd(a, b, c M512) M512 { return ternarylogicEpi64(a, b, c, ternlog.XORAND) }

// AndXor returns a & (b ^ c).
func AndXor(a, b, c M512) M512 { return ternarylogicEpi64(a, b, c, ternlog.ANDXOR) }

// XorOr returns a ^ (b | c).
func XorOr(a, b, c M512) M512 { return ternarylogicEpi64(a, b, c, ternlog.XOROR) }

// XorAndNot returns a ^ (^b & c).
func XorAndNot(a, b, c M512) M512 { return ternarylogicEpi64(a, b, c, ternlog.XORANDNOT) }

// OrAnd returns a | (b & c).
func OrAnd(a, b, c M512) M512 { return ternarylogicEpi64(a, b, c, ternlog.ORAND) }

// Nor returns ^(a | b).
func Nor(a, b M512) M512 { return ternarylogicEpi64(a, b, b, ternlog.NOR) }

// Xnor returns ^(a ^ b).
func Xnor(a, b M512) M512 { return ternarylogicEpi64(a, b, b, ternlog.XNOR) }

// Nand returns ^(a & b).
func Nand(a, b M512) M512 { return ternarylogicEpi64(a, b, b, ternlog.NAND) }

// Not returns ^v.
func Not(v M512) M512 { return ternarylogicEpi64(v, v, v, ternlog.NOT) }

// Xor4 returns a ^ b ^ c ^ d.
func Xor4(a, b, c, d M512) M512 { return Xor3(a, b, xor(c, d)) }

// TernaryLogic applies an arbitrary truth table bitwise: bit a<<2|b<<1|c of
// table is the output for input bits a, b and c.
func TernaryLogic(a, b, c M512, table uint8) M512 { return ternarylogicEpi64(a, b, c, table) }

// Negate64 returns the two's complement negation of each 64-bit element.
func Negate64(v M512) M512 { return subEpi64(Zero(), v) }

// Negate32 returns the two's complement negation of each 32-bit element.
func Negate32(v M512) M512 { return subEpi32(Zero(), v) }

// Negate16 returns the two's complement negation of each 16-bit element.
func Negate16(v M512) M512 { return subEpi16(Zero(), v) }

// Add64 adds the 64-bit elements of a and b.
func Add64(a, b M512) M512 { return addEpi64(a, b) }

// Add32 adds the 32-bit elements of a and b.
func Add32(a, b M512) M512 { return addEpi32(a, b) }

// Add16 adds the 16-bit elements of a and b.
func Add16(a, b M512) M512 { return addEpi16(a, b) }

// Add8 adds the bytes of a and b.
func Add8(a, b M512) M512 { return addEpi8(a, b) }

// Sub64 subtracts the 64-bit elements of b from a.
func Sub64(a, b M512) M512 { return subEpi64(a, b) }

// Sub32 subtracts the 32-bit elements of b from a.
func Sub32(a, b M512) M512 { return subEpi32(a, b) }

// Sub16 subtracts the 16-bit elements of b from a.
func Sub16(a, b M512) M512 { return subEpi16(a, b) }

// Sub8 subtracts the bytes of b from a.
func Sub8(a, b M512) M512 { return subEpi8(a, b) }

// Add4_64 returns the sum of four vectors of 64-bit elements, added as two
// independent pairs.
func Add4_64(a, b, c, d M512) M512 { return addEpi64(addEpi64(a, b), addEpi64(c, d)) }

// Add4_32 returns the sum of four vectors of 32-bit elements.
func Add4_32(a, b, c, d M512) M512 { return addEpi32(addEpi32(a, b), addEpi32(c, d)) }

// Add4_16 returns the sum of four vectors of 16-bit elements.
func Add4_16(a, b, c, d M512) M512 { return addEpi16(addEpi16(a, b), addEpi16(c, d)) }

// Add4_8 returns the sum of four vectors of bytes.
func Add4_8(a, b, c, d M512) M512 { return addEpi8(addEpi8(a, b), addEpi8(c, d)) }

// Slli64 shifts each 64-bit element left by c bits, filling with zeros.
func Slli64(v M512, c uint) M512 { return slliEpi64(v, c) }

// Srli64 shifts each 64-bit element right by c bits, filling with zeros.
func Srli64(v M512, c uint) M512 { return srliEpi64(v, c) }

// Slli32 shifts each 32-bit element left by c bits, filling with zeros.
func Slli32(v M512, c uint) M512 { return slliEpi32(v, c) }

// Srli32 shifts each 32-bit element right by c bits, filling with zeros.
func Srli32(v M512, c uint) M512 { return srliEpi32(v, c) }

// Slli16 shifts each 16-bit element left by c bits, filling with zeros.
func Slli16(v M512, c uint) M512 { return slliEpi16(v, c) }

// Srli16 shifts each 16-bit element right by c bits, filling with zeros.
func Srli16(v M512, c uint) M512 { return srliEpi16(v, c) }

// Movmask64 returns the sign bits of the eight 64-bit elements, element 0
// in bit 0.
func Movmask64(v M512) int { return int(movepi64Mask(v)) }

// Movmask32 returns the sign bits of the sixteen 32-bit elements.
func Movmask32(v M512) int { return int(movepi32Mask(v)) }
