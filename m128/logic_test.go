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
	"testing"

	"github.com/ajroetker/go-simdutils/ternlog"
)

// Input vectors whose bits, taken together, run through all eight rows of a
// truth table in every byte: bit j of the result is row j's output.
var (
	rowsA = Const1_8(0xf0)
	rowsB = Const1_8(0xcc)
	rowsC = Const1_8(0xaa)
)

func TestCombinators(t *testing.T) {
	tests := []struct {
		name  string
		table uint8
		got   M128
	}{
		{"Xor3", ternlog.XOR3, Xor3(rowsA, rowsB, rowsC)},
		{"And3", ternlog.AND3, And3(rowsA, rowsB, rowsC)},
		{"Or3", ternlog.OR3, Or3(rowsA, rowsB, rowsC)},
		{"XorAnd", ternlog.XORAND, XorAnd(rowsA, rowsB, rowsC)},
		{"AndXor", ternlog.ANDXOR, AndXor(rowsA, rowsB, rowsC)},
		{"XorOr", ternlog.XOROR, XorOr(rowsA, rowsB, rowsC)},
		{"XorAndNot", ternlog.XORANDNOT, XorAndNot(rowsA, rowsB, rowsC)},
		{"OrAnd", ternlog.ORAND, OrAnd(rowsA, rowsB, rowsC)},
		{"TernaryLogic", 0x5c, TernaryLogic(rowsA, rowsB, rowsC, 0x5c)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range 16 {
				if got := Get8(tt.got, i); got != tt.table {
					t.Fatalf("byte %d: got %#02x, want %#02x", i, got, tt.table)
				}
			}
		})
	}
}

// Two-input combinators see (a, b, b), so only rows 0, 3, 4 and 7 count.
func TestBinaryCombinators(t *testing.T) {
	const rows = 0x99
	tests := []struct {
		name  string
		table uint8
		got   M128
	}{
		{"Nor", ternlog.NOR, Nor(rowsA, rowsB)},
		{"Xnor", ternlog.XNOR, Xnor(rowsA, rowsB)},
		{"Nand", ternlog.NAND, Nand(rowsA, rowsB)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// With c == b, row 1 reads as row 0, row 2 as row 3, and so on,
			// so compare only the rows where b == c.
			for i := range 16 {
				if got := Get8(tt.got, i) & rows; got != tt.table&rows {
					t.Fatalf("byte %d: got %#02x, want %#02x", i, got, tt.table&rows)
				}
			}
		})
	}

	r := newRand(t)
	for range 64 {
		a, b := randVec(r), randVec(r)
		if got, want := Nor(a, b), xor(or(a, b), Neg1()); got != want {
			t.Fatalf("Nor: got %#x, want %#x", got, want)
		}
		if got, want := Nand(a, b), xor(and(a, b), Neg1()); got != want {
			t.Fatalf("Nand: got %#x, want %#x", got, want)
		}
		if got, want := Xnor(a, b), xor(xor(a, b), Neg1()); got != want {
			t.Fatalf("Xnor: got %#x, want %#x", got, want)
		}
		if got, want := Not(a), (M128{^a[0], ^a[1]}); got != want {
			t.Fatalf("Not: got %#x, want %#x", got, want)
		}
	}
}

func TestTernaryLogicAllTables(t *testing.T) {
	r := newRand(t)
	a, b, c := randVec(r), randVec(r), randVec(r)
	for table := range 256 {
		got := TernaryLogic(a, b, c, uint8(table))
		want := M128{
			ternlog.Eval(uint8(table), a[0], b[0], c[0]),
			ternlog.Eval(uint8(table), a[1], b[1], c[1]),
		}
		if got != want {
			t.Fatalf("table %#02x: got %#x, want %#x", table, got, want)
		}
		if sse2 := ternaryLogic_SSE2(a, b, c, uint8(table)); sse2 != want {
			t.Fatalf("table %#02x, SSE2 form: got %#x, want %#x", table, sse2, want)
		}
	}
}

func TestArithmetic(t *testing.T) {
	v := M128{5, 0x0000000700000003}
	tests := []struct {
		name string
		got  M128
		want M128
	}{
		{"Negate64", Negate64(v), M128{0xfffffffffffffffb, 0xfffffff8fffffffd}},
		{"Negate32", Negate32(v), M128{0x00000000fffffffb, 0xfffffff9fffffffd}},
		{"Negate16", Negate16(M128{1, 0}), M128{0x000000000000ffff, 0}},
		{"Add4_64", Add4_64(One64(), One64(), One64(), v), M128{8, 0x0000000700000006}},
		{"Add4_32", Add4_32(One32(), One32(), One32(), One32()), Const1_32(4)},
		{"Add4_16", Add4_16(Const1_16(0xffff), One16(), One16(), One16()), Const1_16(2)},
		{"Add4_8", Add4_8(Const1_8(0x80), Const1_8(0x80), One8(), One8()), Const1_8(2)},
		{"Sub64", Sub64(v, One64()), M128{4, 0x0000000700000002}},
		{"Sub32", Sub32(Zero(), One32()), Neg1()},
		{"AndNot", AndNot(Const1_8(0x0f), Const1_8(0xff)), Const1_8(0xf0)},
		{"Slli32", Slli32(Const1_32(0x80000001), 1), Const1_32(2)},
		{"Srli16", Srli16(Const1_16(0x8001), 15), One16()},
		{"Slli64", Slli64(One64(), 63), Const1_64(1 << 63)},
		{"Srli64", Srli64(Const1_64(1<<63), 64), Zero()},
		{"Slli16", Slli16(One16(), 16), Zero()},
		{"Srli32", Srli32(Neg1(), 31), One32()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %#x, want %#x", tt.got, tt.want)
			}
		})
	}
}

func TestMovmask(t *testing.T) {
	if got := Movmask64(M128{1 << 63, 0}); got != 1 {
		t.Errorf("Movmask64: got %#b, want 1", got)
	}
	if got := Movmask64(Neg1()); got != 3 {
		t.Errorf("Movmask64: got %#b, want 3", got)
	}
	if got := Movmask32(Set32(0x80000000, 0, 0x80000000, 1)); got != 0xa {
		t.Errorf("Movmask32: got %#b, want 0b1010", got)
	}
}
