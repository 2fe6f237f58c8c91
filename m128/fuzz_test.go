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

	fuzz "github.com/trailofbits/go-fuzz-utils"
)

func getVec(tp *fuzz.TypeProvider) (M128, error) {
	lo, err := tp.GetUint64()
	if err != nil {
		return M128{}, err
	}
	hi, err := tp.GetUint64()
	if err != nil {
		return M128{}, err
	}
	return M128{lo, hi}, nil
}

// FuzzRoundTrips decodes a vector and an amount and checks that each
// rotation, shuffle and byte swap is undone by its inverse.
func FuzzRoundTrips(f *testing.F) {
	f.Add([]byte("0123456789abcdef\x05"))
	f.Add(make([]byte, 17))

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}
		v, err := getVec(tp)
		if err != nil {
			t.Skip(err)
		}
		k, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		c := int(k)

		if got := Rol64(Ror64(v, c), c); got != v {
			t.Errorf("Rol64(Ror64(v, %d)): got %#x, want %#x", c, got, v)
		}
		if got := Rol32(Ror32(v, c), c); got != v {
			t.Errorf("Rol32(Ror32(v, %d)): got %#x, want %#x", c, got, v)
		}
		if got := Rol16(Ror16(v, c), c); got != v {
			t.Errorf("Rol16(Ror16(v, %d)): got %#x, want %#x", c, got, v)
		}
		if got := Rol8(Ror8(v, c), c); got != v {
			t.Errorf("Rol8(Ror8(v, %d)): got %#x, want %#x", c, got, v)
		}
		if got := ShuflrN8(ShuflrN8(v, c), -c); got != v {
			t.Errorf("ShuflrN8 by %d and back: got %#x, want %#x", c, got, v)
		}
		if got := Bswap64(Bswap64(v)); got != v {
			t.Errorf("Bswap64 twice: got %#x, want %#x", got, v)
		}
		if got := Bswap32(Bswap32(v)); got != v {
			t.Errorf("Bswap32 twice: got %#x, want %#x", got, v)
		}
		if got := Bswap16(Bswap16(v)); got != v {
			t.Errorf("Bswap16 twice: got %#x, want %#x", got, v)
		}
	})
}

// FuzzTiers decodes three vectors and checks every tier implementation of
// the three-input operations against each other.
func FuzzTiers(f *testing.F) {
	f.Add(make([]byte, 48))
	f.Add([]byte("the quick brown fox jumps over the lazy dog 0123"))

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}
		var in [4]M128
		for i := range 3 {
			if in[i], err = getVec(tp); err != nil {
				t.Skip(err)
			}
		}
		in[3] = xor(in[0], in[1])
		for _, c := range checks() {
			if c.name == "TernaryLogic" {
				continue
			}
			if err := c.run(&in); err != nil {
				t.Error(err)
			}
		}
	})
}
