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

package permgen

import "fmt"

// Blend is a node of a masked-blend cascade. A leaf names one input vector;
// an inner node takes element i from B when bit i of Mask is set and from A
// otherwise, the rule of the AVX-512 mask blends and of the immediate blends.
type Blend struct {
	Mask uint64
	A, B *Blend

	input int
}

// Input returns the leaf for input vector i.
func Input(i int) *Blend {
	return &Blend{input: i}
}

// Select returns an inner node blending a and b under mask.
func Select(mask uint64, a, b *Blend) *Blend {
	return &Blend{Mask: mask, A: a, B: b, input: -1}
}

// Sources returns, for each of n elements, the input vector the cascade
// reads it from.
func (b *Blend) Sources(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = b.source(i)
	}
	return out
}

func (b *Blend) source(i int) int {
	if b.A == nil && b.B == nil {
		return b.input
	}
	if b.Mask&(1<<uint(i)) != 0 {
		return b.B.source(i)
	}
	return b.A.source(i)
}

// ValidateDiagonal checks that the cascade selects element i from input i
// for every i < n. This makes the selection a partition: every element comes
// from exactly one input and every input contributes exactly one element.
func ValidateDiagonal(b *Blend, n int) error {
	for i, s := range b.Sources(n) {
		if s != i {
			return fmt.Errorf("permgen: element %d selected from input %d", i, s)
		}
	}
	return nil
}

// Widen converts a mask over elements of some width into the equivalent mask
// over elements factor times narrower. A dword blend mask of 0b0100 becomes
// the word blend mask 0b00110000 with factor 2.
func Widen(mask uint64, n, factor int) uint64 {
	var out uint64
	for i := range n {
		if mask&(1<<uint(i)) != 0 {
			out |= (1<<uint(factor) - 1) << uint(i*factor)
		}
	}
	return out
}
