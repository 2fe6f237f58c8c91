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

// Package ternlog holds the truth tables of the named three-input boolean
// combinators and a reference evaluator for them.
//
// A truth table is an 8-bit value. For input bits a, b and c the output bit is
// bit a<<2 | b<<1 | c of the table, the convention of the AVX-512 vpternlog
// instruction. Two-input combinators are expressed by passing the second
// operand twice, so only the rows where b == c matter.
package ternlog

// Truth tables of the named combinators.
const (
	// XOR3 is a ^ b ^ c.
	XOR3 uint8 = 0x96
	// AND3 is a & b & c.
	AND3 uint8 = 0x80
	// OR3 is a | b | c.
	OR3 uint8 = 0xfe
	// XORAND is a ^ (b & c).
	XORAND uint8 = 0x78
	// ANDXOR is a & (b ^ c).
	ANDXOR uint8 = 0x60
	// XOROR is a ^ (b | c).
	XOROR uint8 = 0x1e
	// XORANDNOT is a ^ (^b & c).
	XORANDNOT uint8 = 0xd2
	// ORAND is a | (b & c).
	ORAND uint8 = 0xf8
	// SELECT is c ? a : b, taken bit by bit.
	SELECT uint8 = 0xe4

	// NOR is ^(a | b), evaluated as (a, b, b).
	NOR uint8 = 0x01
	// XNOR is ^(a ^ b), evaluated as (a, b, b).
	XNOR uint8 = 0x81
	// NAND is ^(a & b), evaluated as (a, b, b).
	NAND uint8 = 0x7f
	// NOT is ^a, evaluated as (a, a, a).
	NOT uint8 = 0x01
)

// Eval applies table bitwise to a, b and c.
//
// Every output bit is selected independently from the corresponding bits of
// the inputs, so the result does not depend on how the 64 bits are split into
// lanes.
func Eval(table uint8, a, b, c uint64) uint64 {
	var r uint64
	for row := range 8 {
		if table&(1<<row) == 0 {
			continue
		}
		m := ^uint64(0)
		if row&4 != 0 {
			m &= a
		} else {
			m &^= a
		}
		if row&2 != 0 {
			m &= b
		} else {
			m &^= b
		}
		if row&1 != 0 {
			m &= c
		} else {
			m &^= c
		}
		r |= m
	}
	return r
}

// Bit returns the output of table for single input bits a, b and c.
func Bit(table uint8, a, b, c bool) bool {
	row := 0
	if a {
		row |= 4
	}
	if b {
		row |= 2
	}
	if c {
		row |= 1
	}
	return table&(1<<row) != 0
}

// Table returns the truth table of f.
func Table(f func(a, b, c bool) bool) uint8 {
	var t uint8
	for row := range 8 {
		if f(row&4 != 0, row&2 != 0, row&1 != 0) {
			t |= 1 << row
		}
	}
	return t
}
