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

func marked(width, n int) []M512 {
	vs := make([]M512, n)
	count := 512 / width
	for i := range vs {
		xs := make([]uint64, count)
		for j := range xs {
			xs[j] = uint64(i)<<8 | uint64(j)
		}
		vs[i] = fromElems(xs, width)
	}
	return vs
}

func TestDiagonal64(t *testing.T) {
	v := marked(64, 8)
	got := Diagonal64(v[7], v[6], v[5], v[4], v[3], v[2], v[1], v[0])
	for i, e := range elems(got, 64) {
		if want := uint64(i)<<8 | uint64(i); e != want {
			t.Errorf("element %d came from input %d", i, e>>8)
		}
	}
}

func TestDiagonal128_32(t *testing.T) {
	v := marked(32, 4)
	got := Diagonal128_32(v[3], v[2], v[1], v[0])
	for i, e := range elems(got, 32) {
		if src := int(e >> 8); src != i%4 {
			t.Errorf("element %d came from input %d, want %d", i, src, i%4)
		}
		if pos := int(e & 0xff); pos != i {
			t.Errorf("element %d holds element %d of its input", i, pos)
		}
	}
}

// The cascades must partition the elements among the inputs.
func TestDiagonalMasks(t *testing.T) {
	in := permgen.Input
	d64 := permgen.Select(0x0f,
		permgen.Select(0x30, permgen.Select(0x40, in(7), in(6)), permgen.Select(0x10, in(5), in(4))),
		permgen.Select(0x03, permgen.Select(0x04, in(3), in(2)), permgen.Select(0x01, in(1), in(0))))
	if err := permgen.ValidateDiagonal(d64, 8); err != nil {
		t.Errorf("Diagonal64: %v", err)
	}
	d32 := permgen.Select(0x3333, permgen.Select(0x4444, in(3), in(2)), permgen.Select(0x1111, in(1), in(0)))
	for i, s := range d32.Sources(16) {
		if s != i%4 {
			t.Errorf("Diagonal128_32: element %d selected from input %d", i, s)
		}
	}
}
