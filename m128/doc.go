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

// Package m128 provides 128-bit vector bit-manipulation primitives.
//
// An M128 is an opaque 128-bit pattern. It carries no element width: each
// operation names the width it interprets the bits under in its suffix, and
// reinterpreting a vector under another width never changes its bits.
//
// Every operation is written for the capability tiers of package tier. The
// exported function compiles to the implementation of the tier the binary is
// built for (tier.Build); the per-tier implementations are unexported, named
// after the tier they model, and all produce bit-identical results. CrossCheck
// runs them against each other.
//
// Operations whose names suggest a bit rotation (Ror, Rol) act within each
// element. The Shuflr and Shufll families move whole elements: a bare width
// suffix (Shuflr32) rotates elements across the full vector, a pair of widths
// (Shuflr64_16) rotates the narrower elements inside each wider one. The
// 128-bit vector is a single lane, so here lane-crossing and lane-bounded
// coincide for full-vector shuffles; the distinction matters in m512.
//
// Constants other than Zero and Neg1 take several instructions to build.
// Build them once, outside the loop that uses them:
//
//	rc := m128.Const1_32(0x9e377900)
//	for i := range rounds {
//		s0 = m128.Xor(s0, rc)
//		...
//	}
package m128
