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
	"math/big"
	"testing"
)

// rotate256 rotates (hi, lo) right by k bytes, or left if k is negative, and
// returns both halves.
func rotate256(hi, lo M128, k int) (M128, M128) {
	var in, out [32]byte
	l, h := lo.Bytes(), hi.Bytes()
	copy(in[:16], l[:])
	copy(in[16:], h[:])
	for i := range out {
		out[i] = in[((i+k)%32+32)%32]
	}
	return Load(out[16:]), Load(out[:16])
}

func TestShufl2(t *testing.T) {
	tests := []struct {
		name string
		k    int
		r, l func(v1, v2 M128) M128
	}{
		{"64", 8, Shufl2r_64, Shufl2l_64},
		{"32", 4, Shufl2r_32, Shufl2l_32},
		{"16", 2, Shufl2r_16, Shufl2l_16},
		{"8", 1, Shufl2r_8, Shufl2l_8},
	}
	r := newRand(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 64 {
				v1, v2 := randVec(r), randVec(r)
				wantR, _ := rotate256(v1, v2, tt.k)
				if got := tt.r(v1, v2); got != wantR {
					t.Fatalf("Shufl2r: got %#x, want %#x", got, wantR)
				}
				wantL, _ := rotate256(v1, v2, -tt.k)
				if got := tt.l(v1, v2); got != wantL {
					t.Fatalf("Shufl2l: got %#x, want %#x", got, wantL)
				}
			}
		})
	}
}

func TestShufl2Bytes(t *testing.T) {
	r := newRand(t)
	for range 16 {
		v1, v2 := randVec(r), randVec(r)
		for k := 0; k <= 16; k++ {
			want, _ := rotate256(v1, v2, k)
			if got := Shufl2rBytes(v1, v2, k); got != want {
				t.Fatalf("Shufl2rBytes(%d): got %#x, want %#x", k, got, want)
			}
			if got := alignr_SSE2(v2, v1, k); got != want {
				t.Fatalf("SSE2 align by %d: got %#x, want %#x", k, got, want)
			}
			want, _ = rotate256(v1, v2, -k)
			if got := Shufl2lBytes(v1, v2, k); got != want {
				t.Fatalf("Shufl2lBytes(%d): got %#x, want %#x", k, got, want)
			}
		}
	}
}

func TestVRotate256(t *testing.T) {
	tests := []struct {
		name string
		k    int
		r, l func(v1, v2 *M128)
	}{
		{"64", 8, VRor256_64, VRol256_64},
		{"32", 4, VRor256_32, VRol256_32},
		{"16", 2, VRor256_16, VRol256_16},
		{"8", 1, VRor256_8, VRol256_8},
	}
	r := newRand(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 64 {
				v1, v2 := randVec(r), randVec(r)
				hi, lo := v1, v2
				tt.r(&hi, &lo)
				wantHi, wantLo := rotate256(v1, v2, tt.k)
				if hi != wantHi || lo != wantLo {
					t.Fatalf("VRor256: got (%#x, %#x), want (%#x, %#x)", hi, lo, wantHi, wantLo)
				}
				tt.l(&hi, &lo)
				if hi != v1 || lo != v2 {
					t.Fatalf("VRol256 did not undo VRor256")
				}
				tt.l(&hi, &lo)
				wantHi, wantLo = rotate256(v1, v2, -tt.k)
				if hi != wantHi || lo != wantLo {
					t.Fatalf("VRol256: got (%#x, %#x), want (%#x, %#x)", hi, lo, wantHi, wantLo)
				}
			}
		})
	}
}

func TestSwap256_128(t *testing.T) {
	a, b := M128{1, 2}, M128{3, 4}
	Swap256_128(&a, &b)
	if a != (M128{3, 4}) || b != (M128{1, 2}) {
		t.Errorf("got (%#x, %#x)", a, b)
	}
}

// funnelRef shifts the width-bit pair (hi, lo) left by c (or right if c is
// negative) and returns the high or low width bits.
func funnelRef(hi, lo uint64, width, c int, high bool) uint64 {
	x := new(big.Int).Lsh(new(big.Int).SetUint64(hi), uint(width))
	x.Or(x, new(big.Int).SetUint64(lo))
	if c >= 0 {
		x.Lsh(x, uint(c))
	} else {
		x.Rsh(x, uint(-c))
	}
	if high {
		x.Rsh(x, uint(width))
	}
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(width)), big.NewInt(1))
	return x.And(x, mask).Uint64()
}

func TestFunnelShifts(t *testing.T) {
	tests := []struct {
		name  string
		width int
		shl   func(v1, v2 M128, c uint) M128
		shr   func(v1, v2 M128, c uint) M128
	}{
		{"64", 64, Shl2_64, Shr2_64},
		{"32", 32, Shl2_32, Shr2_32},
		{"16", 16, Shl2_16, Shr2_16},
	}
	r := newRand(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 8 {
				v1, v2 := randVec(r), randVec(r)
				a, b := elems(v1, tt.width), elems(v2, tt.width)
				for c := range tt.width {
					l := elems(tt.shl(v1, v2, uint(c)), tt.width)
					s := elems(tt.shr(v1, v2, uint(c)), tt.width)
					for i := range a {
						if want := funnelRef(a[i], b[i], tt.width, c, true); l[i] != want {
							t.Fatalf("Shl2 by %d, element %d: got %#x, want %#x", c, i, l[i], want)
						}
						if want := funnelRef(a[i], b[i], tt.width, -c, false); s[i] != want {
							t.Fatalf("Shr2 by %d, element %d: got %#x, want %#x", c, i, s[i], want)
						}
					}
				}
			}
		})
	}
}
