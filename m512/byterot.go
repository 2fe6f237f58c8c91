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

// Rotations of the bytes inside each element. With native rotates there is
// no cheaper byte shuffle, so these are named conveniences over Ror and Rol
// that read the same as their m128 counterparts.

// Swap64_32 swaps the 32-bit halves of each 64-bit element.
func Swap64_32(v M512) M512 { return shuffleEpi32(v, 0xb1) }

// Shuflr64_32 rotates each 64-bit element right by 32 bits.
func Shuflr64_32(v M512) M512 { return Swap64_32(v) }

// Shufll64_32 rotates each 64-bit element left by 32 bits.
func Shufll64_32(v M512) M512 { return Swap64_32(v) }

// Shuflr64_24 rotates each 64-bit element right by 24 bits.
func Shuflr64_24(v M512) M512 { return rorEpi64(v, 24) }

// Shufll64_24 rotates each 64-bit element left by 24 bits.
func Shufll64_24(v M512) M512 { return rolEpi64(v, 24) }

// Shuflr64_16 rotates each 64-bit element right by 16 bits.
func Shuflr64_16(v M512) M512 { return rorEpi64(v, 16) }

// Shufll64_16 rotates each 64-bit element left by 16 bits.
func Shufll64_16(v M512) M512 { return rolEpi64(v, 16) }

// Shuflr64_8 rotates each 64-bit element right by 8 bits.
func Shuflr64_8(v M512) M512 { return rorEpi64(v, 8) }

// Shufll64_8 rotates each 64-bit element left by 8 bits.
func Shufll64_8(v M512) M512 { return rolEpi64(v, 8) }

// Swap32_16 swaps the 16-bit halves of each 32-bit element.
func Swap32_16(v M512) M512 { return rorEpi32(v, 16) }

// Shuflr32_16 rotates each 32-bit element right by 16 bits.
func Shuflr32_16(v M512) M512 { return Swap32_16(v) }

// Shufll32_16 rotates each 32-bit element left by 16 bits.
func Shufll32_16(v M512) M512 { return Swap32_16(v) }

// Shuflr32_8 rotates each 32-bit element right by 8 bits.
func Shuflr32_8(v M512) M512 { return rorEpi32(v, 8) }

// Shufll32_8 rotates each 32-bit element left by 8 bits.
func Shufll32_8(v M512) M512 { return rolEpi32(v, 8) }
