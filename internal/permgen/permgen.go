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

// Package permgen derives and validates the permutation indexes and blend
// masks used by the vector modules.
//
// The shuffle instructions modelled by m128 and m512 are steered by constant
// index vectors. Those constants are written out as literals in the width
// packages; this package computes them from their definition so the tests
// and the table generator never have to trust a hand-typed table.
package permgen

import (
	"errors"
	"fmt"
)

// Index is a permutation index: destination element i takes source element
// Index[i].
type Index []int

// Rotate returns the index that rotates n elements right by k positions, so
// that element 0 of the result is source element k.
func Rotate(n, k int) Index {
	ix := make(Index, n)
	for i := range ix {
		ix[i] = mod(i+k, n)
	}
	return ix
}

// SegmentedRotate returns the index that rotates every run of seg elements
// right by k positions, independently of the other runs. n must be a
// multiple of seg.
func SegmentedRotate(n, seg, k int) Index {
	ix := make(Index, n)
	for i := range ix {
		base := i - i%seg
		ix[i] = base + mod(i%seg+k, seg)
	}
	return ix
}

// ByteSwap returns the byte index that reverses the order of the bytes of
// every width-byte element of an n-byte vector.
func ByteSwap(n, width int) Index {
	ix := make(Index, n)
	for i := range ix {
		base := i - i%width
		ix[i] = base + width - 1 - i%width
	}
	return ix
}

// Validate reports whether ix is a bijection onto [0, len(ix)).
func (ix Index) Validate() error {
	return ix.ValidateRange(len(ix), true)
}

// ValidateRange reports whether every entry of ix addresses one of nsrc
// source elements and, if bijective is set, whether no source element is
// used twice.
func (ix Index) ValidateRange(nsrc int, bijective bool) error {
	if len(ix) == 0 {
		return errors.New("permgen: empty index")
	}
	seen := make([]bool, nsrc)
	for i, s := range ix {
		if s < 0 || s >= nsrc {
			return fmt.Errorf("permgen: entry %d is %d, out of range [0, %d)", i, s, nsrc)
		}
		if bijective {
			if seen[s] {
				return fmt.Errorf("permgen: entry %d repeats source %d", i, s)
			}
			seen[s] = true
		}
	}
	return nil
}

// Inverse returns the index that undoes ix. ix must be a bijection.
func (ix Index) Inverse() Index {
	inv := make(Index, len(ix))
	for i, s := range ix {
		inv[s] = i
	}
	return inv
}

// Then returns the index equivalent to applying ix and then next.
func (ix Index) Then(next Index) Index {
	out := make(Index, len(next))
	for i, s := range next {
		out[i] = ix[s]
	}
	return out
}

// IsIdentity reports whether ix maps every element to itself.
func (ix Index) IsIdentity() bool {
	for i, s := range ix {
		if i != s {
			return false
		}
	}
	return true
}

// Pack encodes ix as consecutive bits-wide unsigned fields, little endian,
// the layout of an index vector loaded into a register. bits must divide 64.
func Pack(ix Index, bits int) []uint64 {
	per := 64 / bits
	out := make([]uint64, (len(ix)+per-1)/per)
	for i, s := range ix {
		out[i/per] |= uint64(s) << (uint(i%per) * uint(bits))
	}
	return out
}

// Unpack decodes n bits-wide fields from words, the inverse of Pack.
func Unpack(words []uint64, bits, n int) Index {
	per := 64 / bits
	mask := uint64(1)<<uint(bits) - 1
	ix := make(Index, n)
	for i := range ix {
		ix[i] = int(words[i/per] >> (uint(i%per) * uint(bits)) & mask)
	}
	return ix
}

// Apply permutes elements by ix. It is the reference the shuffle models are
// tested against.
func Apply[T any](ix Index, src []T) []T {
	out := make([]T, len(ix))
	for i, s := range ix {
		out[i] = src[s]
	}
	return out
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
