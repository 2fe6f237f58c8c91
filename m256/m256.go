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

// Package m256 holds the 256-bit building blocks the m512 package
// assembles its constants and halves from: construction from two 128-bit
// lanes, lane broadcast and lane access. It is not a full vector package.
package m256

import "github.com/ajroetker/go-simdutils/m128"

// M256 is a 256-bit vector. Word i holds bits 64i to 64i+63.
type M256 [4]uint64

// Concat128 returns the vector whose high lane is hi and low lane is lo
// (VINSERTI128).
func Concat128(hi, lo m128.M128) M256 {
	return M256{lo[0], lo[1], hi[0], hi[1]}
}

// Const1_128 broadcasts v to both lanes (VBROADCASTI128).
func Const1_128(v m128.M128) M256 {
	return Concat128(v, v)
}

// Const4_64 returns the vector with 64-bit elements {i3, i2, i1, i0}.
func Const4_64(i3, i2, i1, i0 uint64) M256 {
	return M256{i0, i1, i2, i3}
}

// Lo128 returns the low lane of v.
func Lo128(v M256) m128.M128 { return m128.M128{v[0], v[1]} }

// Hi128 returns the high lane of v (VEXTRACTI128).
func Hi128(v M256) m128.M128 { return m128.M128{v[2], v[3]} }

// Get64 returns 64-bit element i of v.
func Get64(v M256, i int) uint64 { return v[i&3] }

// Zero returns the all-zeros vector.
func Zero() M256 { return M256{} }

// Neg1 returns the all-ones vector.
func Neg1() M256 { return M256{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)} }

// One256 returns the 256-bit integer 1.
func One256() M256 { return M256{1} }
