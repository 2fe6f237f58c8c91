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

import (
	"bytes"
	"math/rand/v2"
	"testing"
)

func newRand(t testing.TB) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewPCG(0x5151, uint64(len(t.Name()))))
}

func randVec(r *rand.Rand) M128 {
	return M128{r.Uint64(), r.Uint64()}
}

func TestLoadStore(t *testing.T) {
	b := []byte{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	}
	v := Load(b)
	if v[0] != 0x0706050403020100 || v[1] != 0x0f0e0d0c0b0a0908 {
		t.Fatalf("Load: got %#x", v)
	}
	out := make([]byte, 16)
	Store(out, v)
	if !bytes.Equal(out, b) {
		t.Errorf("Store: got %x, want %x", out, b)
	}
	if got := v.Bytes(); !bytes.Equal(got[:], b) {
		t.Errorf("Bytes: got %x", got)
	}
}

func TestGetters(t *testing.T) {
	v := M128{0x0706050403020100, 0x0f0e0d0c0b0a0908}
	for i := range 16 {
		if got := Get8(v, i); got != uint8(i) {
			t.Errorf("Get8(%d): got %#x", i, got)
		}
		if got := Lane[uint8](v, i); got != uint8(i) {
			t.Errorf("Lane[uint8](%d): got %#x", i, got)
		}
	}
	wants16 := []uint16{0x0100, 0x0302, 0x0504, 0x0706, 0x0908, 0x0b0a, 0x0d0c, 0x0f0e}
	for i, want := range wants16 {
		if got := Get16(v, i); got != want {
			t.Errorf("Get16(%d): got %#x, want %#x", i, got, want)
		}
	}
	wants32 := []uint32{0x03020100, 0x07060504, 0x0b0a0908, 0x0f0e0d0c}
	for i, want := range wants32 {
		if got := Get32(v, i); got != want {
			t.Errorf("Get32(%d): got %#x, want %#x", i, got, want)
		}
		if got := Lane[uint32](v, i); got != want {
			t.Errorf("Lane[uint32](%d): got %#x, want %#x", i, got, want)
		}
	}
	if got := v.Words32(); got != [4]uint32(wants32) {
		t.Errorf("Words32: got %#x", got)
	}
	if Get64(v, 1) != v[1] || Lane[uint64](v, 0) != v[0] {
		t.Errorf("Get64 disagrees with the words of v")
	}
}

func TestBroadcastDeadBeef(t *testing.T) {
	for name, v := range map[string]M128{
		"Const1_32": Const1_32(0xDEADBEEF),
		"Broadcast": Broadcast[uint32](0xDEADBEEF),
	} {
		t.Run(name, func(t *testing.T) {
			for i := range 4 {
				if got := Get32(v, i); got != 0xDEADBEEF {
					t.Errorf("lane %d: got %#x, want 0xdeadbeef", i, got)
				}
			}
		})
	}
}

func TestConstants(t *testing.T) {
	tests := []struct {
		name string
		got  M128
		want M128
	}{
		{"Mov64", Mov64(0x1122334455667788), M128{0x1122334455667788, 0}},
		{"Mov32", Mov32(0x11223344), M128{0x11223344, 0}},
		{"ConstI128", ConstI128(7), M128{7, 0}},
		{"Const1_64", Const1_64(0xabcdef), M128{0xabcdef, 0xabcdef}},
		{"Const1_16", Const1_16(0xbeef), M128{0xbeefbeefbeefbeef, 0xbeefbeefbeefbeef}},
		{"Const1_8", Const1_8(0x5a), M128{0x5a5a5a5a5a5a5a5a, 0x5a5a5a5a5a5a5a5a}},
		{"Broadcast8", Broadcast[uint8](0x5a), M128{0x5a5a5a5a5a5a5a5a, 0x5a5a5a5a5a5a5a5a}},
		{"Broadcast16", Broadcast[uint16](0xbeef), Const1_16(0xbeef)},
		{"Broadcast64", Broadcast[uint64](3), M128{3, 3}},
		{"Const64", Const64(2, 1), M128{1, 2}},
		{"const64_SSE2", const64_SSE2(2, 1), M128{1, 2}},
		{"const64_SSE41", const64_SSE41(2, 1), M128{1, 2}},
		{"Set32", Set32(4, 3, 2, 1), M128{0x0000000200000001, 0x0000000400000003}},
		{"FromLanes32", FromLanes[uint32](1, 2, 3, 4), Set32(4, 3, 2, 1)},
		{"FromLanes16", FromLanes[uint16](1, 2, 3), M128{0x0000000300020001, 0}},
		{"FromLanes64", FromLanes[uint64](9, 8), M128{9, 8}},
		{"FromLanes8", FromLanes[uint8](1, 2, 3, 4, 5, 6, 7, 8, 9), M128{0x0807060504030201, 0x09}},
		{"Zero", Zero(), M128{}},
		{"Neg1", Neg1(), M128{^uint64(0), ^uint64(0)}},
		{"One128", One128(), M128{1, 0}},
		{"One64", One64(), M128{1, 1}},
		{"One32", One32(), M128{0x0000000100000001, 0x0000000100000001}},
		{"One16", One16(), M128{0x0001000100010001, 0x0001000100010001}},
		{"One8", One8(), M128{0x0101010101010101, 0x0101010101010101}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %#x, want %#x", tt.got, tt.want)
			}
		})
	}
	if U64(M128{5, 6}) != 5 || U32(M128{0x100000007, 6}) != 7 {
		t.Errorf("U64/U32 do not read element 0")
	}
}
