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

import "testing"

func TestShuflrX8(t *testing.T) {
	r := newRand(t)
	for range 32 {
		v := randVec(r)
		for c := range 16 {
			if got, want := ShuflrX8(v, c), ShuflrN8(v, c); got != want {
				t.Fatalf("ShuflrX8(%d): got %#x, want %#x", c, got, want)
			}
		}
	}
}
