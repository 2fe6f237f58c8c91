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

import "unsafe"

// Memory helpers, counted in vectors. Preconditions are not checked; see the
// m128 helpers for the alignment and lifetime rules, which are the same.

// Castp returns p as a pointer to a vector.
func Castp(p unsafe.Pointer) *M512 { return (*M512)(p) }

// Casti returns a pointer to the vector at index i of the array at p.
func Casti(p unsafe.Pointer, i int) *M512 { return (*M512)(unsafe.Add(p, i*64)) }

// Casto returns p advanced by o vectors.
func Casto(p unsafe.Pointer, o int) *M512 { return (*M512)(unsafe.Add(p, o*64)) }

// AsVectors reinterprets s as a slice of vectors, dropping a trailing partial
// vector. The result shares memory with s.
func AsVectors[T Elem](s []T) []M512 {
	var x T
	n := len(s) * int(unsafe.Sizeof(x)) / 64
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*M512)(unsafe.Pointer(unsafe.SliceData(s))), n)
}

// MemsetZero zeroes the first n vectors of dst.
func MemsetZero(dst []M512, n int) { clear(dst[:n]) }

// Memset sets the first n vectors of dst to a.
func Memset(dst []M512, a M512, n int) {
	for i := range dst[:n] {
		dst[i] = a
	}
}

// Memcpy copies the first n vectors of src to dst.
func Memcpy(dst, src []M512, n int) { copy(dst[:n], src[:n]) }
