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

//go:build amd64.v2 || vecbits_ssse3

package m128

// ShuflrX8 rotates v right by c bytes with a single PALIGNR. c must be in
// [0, 16). It has no SSE2 form and exists only in SSSE3 and higher builds.
func ShuflrX8(v M128, c int) M128 {
	return alignrEpi8(v, v, c)
}
