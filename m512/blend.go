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

// Diagonal64 returns the vector whose 64-bit element i is element i of vi.
func Diagonal64(v7, v6, v5, v4, v3, v2, v1, v0 M512) M512 {
	return maskBlendEpi64(0x0f,
		maskBlendEpi64(0x30, maskBlendEpi64(0x40, v7, v6), maskBlendEpi64(0x10, v5, v4)),
		maskBlendEpi64(0x03, maskBlendEpi64(0x04, v3, v2), maskBlendEpi64(0x01, v1, v0)))
}

// Diagonal128_32 returns the vector whose 32-bit element i of every lane is
// element i of the same lane of vi.
func Diagonal128_32(v3, v2, v1, v0 M512) M512 {
	return maskBlendEpi32(0x3333, maskBlendEpi32(0x4444, v3, v2), maskBlendEpi32(0x1111, v1, v0))
}
