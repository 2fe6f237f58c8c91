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

// Package words implements lane-bounded element operations on single 64-bit
// words.
//
// A vector of any width is an array of words, and an element of 8, 16, 32 or
// 64 bits never straddles a word boundary, so every element-wise operation of
// the m128, m256 and m512 packages reduces to applying one of these kernels to
// each word in turn. Shift counts at or above the element width produce zero,
// matching the SSE/AVX shift instructions.
package words

import "math/bits"

// Repeating unit masks: bit 0 of every element.
const (
	ones8  = 0x0101010101010101
	ones16 = 0x0001000100010001
	ones32 = 0x0000000100000001
)

// Srl8 shifts every 8-bit element of w right by c, filling with zeros.
func Srl8(w uint64, c uint) uint64 {
	if c >= 8 {
		return 0
	}
	return (w >> c) & (ones8 * uint64(0xff>>c))
}

// Srl16 shifts every 16-bit element of w right by c, filling with zeros.
func Srl16(w uint64, c uint) uint64 {
	if c >= 16 {
		return 0
	}
	return (w >> c) & (ones16 * uint64(0xffff>>c))
}

// Srl32 shifts every 32-bit element of w right by c, filling with zeros.
func Srl32(w uint64, c uint) uint64 {
	if c >= 32 {
		return 0
	}
	return (w >> c) & (ones32 * uint64(0xffffffff>>c))
}

// Srl64 shifts w right by c, filling with zeros.
func Srl64(w uint64, c uint) uint64 {
	return w >> c
}

// Sll8 shifts every 8-bit element of w left by c, filling with zeros.
func Sll8(w uint64, c uint) uint64 {
	if c >= 8 {
		return 0
	}
	return (w << c) & (ones8 * uint64((0xff<<c)&0xff))
}

// Sll16 shifts every 16-bit element of w left by c, filling with zeros.
func Sll16(w uint64, c uint) uint64 {
	if c >= 16 {
		return 0
	}
	return (w << c) & (ones16 * uint64((0xffff<<c)&0xffff))
}

// Sll32 shifts every 32-bit element of w left by c, filling with zeros.
func Sll32(w uint64, c uint) uint64 {
	if c >= 32 {
		return 0
	}
	return (w << c) & (ones32 * uint64((0xffffffff<<c)&0xffffffff))
}

// Sll64 shifts w left by c, filling with zeros.
func Sll64(w uint64, c uint) uint64 {
	return w << c
}

// Rotl8 rotates every 8-bit element of w left by c modulo 8.
func Rotl8(w uint64, c int) uint64 {
	var r uint64
	for i := 0; i < 64; i += 8 {
		r |= uint64(bits.RotateLeft8(uint8(w>>i), c)) << i
	}
	return r
}

// Rotl16 rotates every 16-bit element of w left by c modulo 16.
func Rotl16(w uint64, c int) uint64 {
	var r uint64
	for i := 0; i < 64; i += 16 {
		r |= uint64(bits.RotateLeft16(uint16(w>>i), c)) << i
	}
	return r
}

// Rotl32 rotates both 32-bit elements of w left by c modulo 32.
func Rotl32(w uint64, c int) uint64 {
	lo := bits.RotateLeft32(uint32(w), c)
	hi := bits.RotateLeft32(uint32(w>>32), c)
	return uint64(lo) | uint64(hi)<<32
}

// Rotl64 rotates w left by c modulo 64.
func Rotl64(w uint64, c int) uint64 {
	return bits.RotateLeft64(w, c)
}

// Srlv32 shifts each 32-bit element of w right by the matching element of c.
// Counts of 32 or more produce zero.
func Srlv32(w, c uint64) uint64 {
	return Srl32(w&0xffffffff, uint(uint32(c))) | Srl32(w&^0xffffffff, uint(c>>32))&^0xffffffff
}

// Sllv32 shifts each 32-bit element of w left by the matching element of c.
// Counts of 32 or more produce zero.
func Sllv32(w, c uint64) uint64 {
	return Sll32(w&0xffffffff, uint(uint32(c)))&0xffffffff | Sll32(w&^0xffffffff, uint(c>>32))
}

// Rotlv32 rotates each 32-bit element of w left by the matching element of c,
// modulo 32.
func Rotlv32(w, c uint64) uint64 {
	lo := bits.RotateLeft32(uint32(w), int(uint32(c)%32))
	hi := bits.RotateLeft32(uint32(w>>32), int((c>>32)%32))
	return uint64(lo) | uint64(hi)<<32
}

// Rotrv32 rotates each 32-bit element of w right by its own count in c.
func Rotrv32(w, c uint64) uint64 {
	lo := bits.RotateLeft32(uint32(w), -int(uint32(c)%32))
	hi := bits.RotateLeft32(uint32(w>>32), -int((c>>32)%32))
	return uint64(lo) | uint64(hi)<<32
}

// Bswap16 reverses the bytes of every 16-bit element of w.
func Bswap16(w uint64) uint64 {
	const m = 0x00ff00ff00ff00ff
	return (w>>8)&m | (w&m)<<8
}

// Bswap32 reverses the bytes of both 32-bit elements of w.
func Bswap32(w uint64) uint64 {
	return bits.RotateLeft64(bits.ReverseBytes64(w), 32)
}

// Bswap64 reverses the bytes of w.
func Bswap64(w uint64) uint64 {
	return bits.ReverseBytes64(w)
}

// High-bit masks of every element.
const (
	high8  = 0x8080808080808080
	high16 = 0x8000800080008000
	high32 = 0x8000000080000000
)

func addSWAR(a, b, h uint64) uint64 {
	return ((a &^ h) + (b &^ h)) ^ ((a ^ b) & h)
}

func subSWAR(a, b, h uint64) uint64 {
	return ((a | h) - (b &^ h)) ^ ((a ^ ^b) & h)
}

// Add8 adds the 8-bit elements of a and b with wraparound.
func Add8(a, b uint64) uint64 { return addSWAR(a, b, high8) }

// Add16 adds the 16-bit elements of a and b with wraparound.
func Add16(a, b uint64) uint64 { return addSWAR(a, b, high16) }

// Add32 adds the 32-bit elements of a and b with wraparound.
func Add32(a, b uint64) uint64 { return addSWAR(a, b, high32) }

// Add64 adds a and b with wraparound.
func Add64(a, b uint64) uint64 { return a + b }

// Sub8 subtracts the 8-bit elements of b from a with wraparound.
func Sub8(a, b uint64) uint64 { return subSWAR(a, b, high8) }

// Sub16 subtracts the 16-bit elements of b from a with wraparound.
func Sub16(a, b uint64) uint64 { return subSWAR(a, b, high16) }

// Sub32 subtracts the 32-bit elements of b from a with wraparound.
func Sub32(a, b uint64) uint64 { return subSWAR(a, b, high32) }

// Sub64 subtracts b from a with wraparound.
func Sub64(a, b uint64) uint64 { return a - b }

// Splat8 replicates x into every 8-bit element of a word.
func Splat8(x uint8) uint64 { return ones8 * uint64(x) }

// Splat16 replicates x into every 16-bit element of a word.
func Splat16(x uint16) uint64 { return ones16 * uint64(x) }

// Splat32 replicates x into both 32-bit elements of a word.
func Splat32(x uint32) uint64 { return ones32 * uint64(x) }
