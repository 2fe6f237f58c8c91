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

	"github.com/ajroetker/go-simdutils/internal/permgen"
)

func permute(v M512, width int, ix permgen.Index) M512 {
	return fromElems(permgen.Apply(ix, elems(v, width)), width)
}

// shift moves elements toward element 0 by k, or away from it when k is
// negative, filling with zeros.
func shift(v M512, width, k int) M512 {
	src := elems(v, width)
	out := make([]uint64, len(src))
	for i := range out {
		if j := i + k; j >= 0 && j < len(src) {
			out[i] = src[j]
		}
	}
	return fromElems(out, width)
}

func TestShuffleRotate(t *testing.T) {
	tests := []struct {
		name       string
		f          func(M512) M512
		width, seg int
		k          int
	}{
		{"Swap256", Swap256, 64, 8, 4},
		{"Shuflr256", Shuflr256, 64, 8, 4},
		{"Shufll256", Shufll256, 64, 8, -4},
		{"Shuflr128", Shuflr128, 64, 8, 2},
		{"Shufll128", Shufll128, 64, 8, -2},
		{"Shuflr64", Shuflr64, 64, 8, 1},
		{"Shufll64", Shufll64, 64, 8, -1},
		{"Shuflr32", Shuflr32, 32, 16, 1},
		{"Shufll32", Shufll32, 32, 16, -1},
		{"Shuflr16", Shuflr16, 16, 32, 1},
		{"Shufll16", Shufll16, 16, 32, -1},
		{"Shuflr8", Shuflr8, 8, 64, 1},
		{"Shufll8", Shufll8, 8, 64, -1},

		{"Swap256_128", Swap256_128, 64, 4, 2},
		{"Shuflr256_128", Shuflr256_128, 64, 4, 2},
		{"Shufll256_128", Shufll256_128, 64, 4, -2},
		{"Shuflr256_64", Shuflr256_64, 64, 4, 1},
		{"Shufll256_64", Shufll256_64, 64, 4, -1},
		{"Shuflr256_32", Shuflr256_32, 32, 8, 1},
		{"Shufll256_32", Shufll256_32, 32, 8, -1},
		{"Shuflr256_16", Shuflr256_16, 16, 16, 1},
		{"Shufll256_16", Shufll256_16, 16, 16, -1},
		{"Shuflr256_8", Shuflr256_8, 8, 32, 1},
		{"Shufll256_8", Shufll256_8, 8, 32, -1},

		{"Swap128_64", Swap128_64, 64, 2, 1},
		{"Shuflr128_64", Shuflr128_64, 64, 2, 1},
		{"Shufll128_64", Shufll128_64, 64, 2, -1},
		{"Shuflr128_32", Shuflr128_32, 32, 4, 1},
		{"Shufll128_32", Shufll128_32, 32, 4, -1},

		{"Swap64_32", Swap64_32, 8, 8, 4},
		{"Shuflr64_32", Shuflr64_32, 8, 8, 4},
		{"Shufll64_32", Shufll64_32, 8, 8, -4},
		{"Shuflr64_24", Shuflr64_24, 8, 8, 3},
		{"Shufll64_24", Shufll64_24, 8, 8, -3},
		{"Shuflr64_16", Shuflr64_16, 8, 8, 2},
		{"Shufll64_16", Shufll64_16, 8, 8, -2},
		{"Shuflr64_8", Shuflr64_8, 8, 8, 1},
		{"Shufll64_8", Shufll64_8, 8, 8, -1},
		{"Swap32_16", Swap32_16, 8, 4, 2},
		{"Shuflr32_16", Shuflr32_16, 8, 4, 2},
		{"Shufll32_16", Shufll32_16, 8, 4, -2},
		{"Shuflr32_8", Shuflr32_8, 8, 4, 1},
		{"Shufll32_8", Shufll32_8, 8, 4, -1},
	}
	r := newRand(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := permgen.SegmentedRotate(512/tt.width, tt.seg, tt.k)
			for range 32 {
				v := randVec(r)
				if got, want := tt.f(v), permute(v, tt.width, ix); got != want {
					t.Fatalf("got %#x, want %#x", got, want)
				}
			}
		})
	}
}

func TestShuflrN(t *testing.T) {
	tests := []struct {
		name  string
		width int
		f     func(M512, int) M512
	}{
		{"64", 64, ShuflrN64},
		{"32", 32, ShuflrN32},
		{"16", 16, ShuflrN16},
		{"8", 8, ShuflrN8},
		{"8/avx512", 8, shuflrN8_AVX512},
		{"8/vbmi", 8, shuflrN8_VBMI},
	}
	r := newRand(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count := 512 / tt.width
			v := randVec(r)
			for n := -count; n < 2*count; n++ {
				if got, want := tt.f(v, n), permute(v, tt.width, permgen.Rotate(count, n)); got != want {
					t.Fatalf("n=%d: got %#x, want %#x", n, got, want)
				}
			}
		})
	}
}

func TestShuflr128_8(t *testing.T) {
	v := randVec(newRand(t))
	for c := range 16 {
		if got, want := Shuflr128_8(v, c), permute(v, 8, permgen.SegmentedRotate(64, 16, c)); got != want {
			t.Errorf("c=%d: got %#x, want %#x", c, got, want)
		}
	}
}

func TestShift(t *testing.T) {
	tests := []struct {
		name     string
		f        func(M512) M512
		width, k int
	}{
		{"Shiftr256", Shiftr256, 64, 4},
		{"Shiftl256", Shiftl256, 64, -4},
		{"Shiftr128", Shiftr128, 64, 2},
		{"Shiftl128", Shiftl128, 64, -2},
		{"Shiftr64", Shiftr64, 64, 1},
		{"Shiftl64", Shiftl64, 64, -1},
		{"Shiftr32", Shiftr32, 32, 1},
		{"Shiftl32", Shiftl32, 32, -1},
	}
	v := randVec(newRand(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := tt.f(v), shift(v, tt.width, tt.k); got != want {
				t.Errorf("got %#x, want %#x", got, want)
			}
		})
	}
	if Shiftl256(v) == Shiftr256(v) {
		t.Error("Shiftl256 and Shiftr256 agree on a random vector")
	}
}

func TestShuffle2(t *testing.T) {
	seq := func(width, start int) M512 {
		xs := make([]uint64, 512/width)
		for i := range xs {
			xs[i] = uint64(start + i)
		}
		return fromElems(xs, width)
	}
	a64, b64 := seq(64, 0), seq(64, 8)
	a32, b32 := seq(32, 0), seq(32, 16)
	tests := []struct {
		name  string
		got   M512
		width int
		want  []uint64
	}{
		{"64/0x00", Shuffle2_64(a64, b64, 0x00), 64, []uint64{0, 8, 2, 10, 4, 12, 6, 14}},
		{"64/0xff", Shuffle2_64(a64, b64, 0xff), 64, []uint64{1, 9, 3, 11, 5, 13, 7, 15}},
		{"64/0x55", Shuffle2_64(a64, b64, 0x55), 64, []uint64{1, 8, 3, 10, 5, 12, 7, 14}},
		{"32/0x44", Shuffle2_32(a32, b32, 0x44), 32, []uint64{0, 1, 16, 17, 4, 5, 20, 21, 8, 9, 24, 25, 12, 13, 28, 29}},
		{"32/0xee", Shuffle2_32(a32, b32, 0xee), 32, []uint64{2, 3, 18, 19, 6, 7, 22, 23, 10, 11, 26, 27, 14, 15, 30, 31}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if want := fromElems(tt.want, tt.width); tt.got != want {
				t.Errorf("got %v, want %v", elems(tt.got, tt.width), tt.want)
			}
		})
	}
}

func BenchmarkShuflrN8(b *testing.B) {
	v := randVec(newRand(b))
	for i := 0; i < b.N; i++ {
		v = ShuflrN8(v, i)
	}
	_ = v
}
