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

import "unsafe"

// Memory helpers. Counts are in vectors, never bytes, and none of the
// preconditions are checked.
//
// Go aligns an M128 to 8 bytes. Pointers handed to Castp, Casti and Casto
// must be at least that aligned and must address memory that stays live
// while the returned pointer is in use.

// Castp returns p as a pointer to a vector.
func Castp(p unsafe.Pointer) *M128 {
	return (*M128)(p)
}

// Casti returns a pointer to the vector at index i of the array at p.
func Casti(p unsafe.Pointer, i int) *M128 {
	return (*M128)(unsafe.Add(p, i*16))
}

// Casto returns p advanced by o vectors.
func Casto(p unsafe.Pointer, o int) *M128 {
	return (*M128)(unsafe.Add(p, o*16))
}

// AsVectors reinterprets s as a slice of vectors. Trailing elements that do
// not fill a whole vector are not included. The result shares memory with s,
// whose backing array must be 8-byte aligned.
func AsVectors[T Elem](s []T) []M128 {
	var x T
	n := len(s) * int(unsafe.Sizeof(x)) / 16
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*M128)(unsafe.Pointer(unsafe.SliceData(s))), n)
}

// MemsetZero zeroes the first n vectors of dst.
func MemsetZero(dst []M128, n int) {
	clear(dst[:n])
}

// Memset sets the first n vectors of dst to a.
func Memset(dst []M128, a M128, n int) {
	for i := range dst[:n] {
		dst[i] = a
	}
}

// Memcpy copies the first n vectors of src to dst.
func Memcpy(dst, src []M128, n int) {
	copy(dst[:n], src[:n])
}
