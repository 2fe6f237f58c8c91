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
	"testing"

	"github.com/ajroetker/go-simdutils/ternlog"
)

func TestCombinators(t *testing.T) {
	tests := []struct {
		name  string
		f     func(a, b, c M512) M512
		table uint8
	}{
		{"Xor3", Xor3, ternlog.XOR3},
		{"And3", And3, ternlog.AND3},
		{"Or3", Or3, ternlog.OR3},
		{"XorAnd", XorAnd, ternlog.XORAND},
		{"AndXor", AndXor, ternlog.ANDXOR},
		{"XorOr", XorOr, ternlog.XOROR},
		{"XorAndNot", XorAndNot, ternlog.XORANDNOT},
		{"OrAnd", OrAnd, ternlog.ORAND},
		{"Nor", func(a, b, _ M512) M512 { return Nor(a, b) }, ternlog.NOR},
		{"Xnor", func(a, b, _ M512) M512 { return Xnor(a, b) }, ternlog.XNOR},
		{"Nand", func(a, b, _ M512) M512 { return Nand(a, b) }, ternlog.NAND},
	}
	// Every byte of rows a, b and c walks the eight rows of a truth table.
	a, b, c := Const1_8(0xf0), Const1_8(0xcc), Const1_8(0xaa)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc := c
			if tt.table == ternlog.NOR || tt.table == ternlog.XNOR || tt.table == ternlog.NAND {
				cc = b
			}
			got := tt.f(a, b, cc)
			want := TernaryLogic(a, b, cc, tt.table)
			if got != want {
				t.Errorf("got %#x, want %#x", got, want)
			}
		})
	}
}

func TestBinaryComposition(t *testing.T) {
	r := newRand(t)
	a, b, c, d := randVec(r), randVec(r), randVec(r), randVec(r)
	tests := []struct {
		name      string
		got, want M512
	}{
		{"Xor3", Xor3(a, b, c), Xor(a, Xor(b, c))},
		{"And3", And3(a, b, c), And(a, And(b, c))},
		{"Or3", Or3(a, b, c), Or(a, Or(b, c))},
		{"XorAnd", XorAnd(a, b, c), Xor(a, And(b, c))},
		{"AndXor", AndXor(a, b, c), And(a, Xor(b, c))},
		{"XorOr", XorOr(a, b, c), Xor(a, Or(b, c))},
		{"XorAndNot", XorAndNot(a, b, c), Xor(a, AndNot(b, c))},
		{"OrAnd", OrAnd(a, b, c), Or(a, And(b, c))},
		{"Nor", Nor(a, b), Xor(Or(a, b), Neg1())},
		{"Xnor", Xnor(a, b), Xor(Xor(a, b), Neg1())},
		{"Nand", Nand(a, b), Xor(And(a, b), Neg1())},
		{"Not", Not(a), Xor(a, Neg1())},
		{"Xor4", Xor4(a, b, c, d), Xor(Xor(a, b), Xor(c, d))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %#x, want %#x", tt.got, tt.want)
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	v := Const1_64(5)
	if got := Negate64(v); got != Const1_64(0xfffffffffffffffb) {
		t.Errorf("Negate64: got %#x", got)
	}
	if got := Negate32(Const1_32(3)); got != Const1_32(0xfffffffd) {
		t.Errorf("Negate32: got %#x", got)
	}
	if got := Negate16(One16()); got != Neg1() {
		t.Errorf("Negate16: got %#x", got)
	}
	tests := []struct {
		name      string
		got, want M512
	}{
		{"Add4_64", Add4_64(One64(), One64(), One64(), v), Const1_64(8)},
		{"Add4_32", Add4_32(One32(), One32(), One32(), Const1_32(0xffffffff)), Const1_32(2)},
		{"Add4_16", Add4_16(One16(), One16(), One16(), One16()), Const1_16(4)},
		{"Add4_8", Add4_8(Const1_8(0x80), Const1_8(0x80), One8(), One8()), Const1_8(2)},
		{"Sub8", Sub8(Zero(), One8()), Neg1()},
		{"Sub16", Sub16(Const1_16(0x100), One16()), Const1_16(0xff)},
		{"Sub32", Sub32(One32(), One32()), Zero()},
		{"Sub64", Sub64(Add64(v, v), v), v},
		{"Add8", Add8(Const1_8(0xff), One8()), Zero()},
		{"Add16", Add16(Const1_16(0xffff), One16()), Zero()},
		{"Add32", Add32(Const1_32(0xffffffff), One32()), Zero()},
		{"Slli64", Slli64(One64(), 63), Const1_64(1 << 63)},
		{"Srli64", Srli64(Neg1(), 60), Const1_64(0xf)},
		{"Slli32", Slli32(One32(), 32), Zero()},
		{"Srli32", Srli32(Neg1(), 28), Const1_32(0xf)},
		{"Slli16", Slli16(One16(), 15), Const1_16(0x8000)},
		{"Srli16", Srli16(Neg1(), 12), Const1_16(0xf)},
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
	v := M512{1 << 63, 0, 1 << 63, 0, 0, 0, 0, 1<<63 | 1<<31}
	if got := Movmask64(v); got != 0x85 {
		t.Errorf("Movmask64 = %#x, want 0x85", got)
	}
	if got := Movmask32(v); got != 0xc022 {
		t.Errorf("Movmask32 = %#x, want 0xc022", got)
	}
	if got := Movmask32(Neg1()); got != 0xffff {
		t.Errorf("Movmask32(Neg1) = %#x", got)
	}
}
