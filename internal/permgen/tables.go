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

package permgen

// Table is a named index constant of the m512 package.
type Table struct {
	// Name is the Go identifier of the variable holding the table.
	Name string
	// Doc is the first line of the variable's doc comment, without the name.
	Doc string
	// Bits is the width of one index field.
	Bits int
	// Lane marks a 128-bit pattern that is broadcast to every lane at use.
	Lane bool
	// Index is the permutation the table encodes.
	Index Index
}

// Words returns the table packed into qwords, lowest first.
func (t Table) Words() []uint64 {
	return Pack(t.Index, t.Bits)
}

// Tables512 lists every index table used by the m512 package, in the order
// they are generated.
func Tables512() []Table {
	return []Table{
		{Name: "shuflr16Index", Doc: "rotates 16-bit elements right by one position.", Bits: 16, Index: Rotate(32, 1)},
		{Name: "shufll16Index", Doc: "rotates 16-bit elements left by one position.", Bits: 16, Index: Rotate(32, -1)},
		{Name: "shuflr256x32Index", Doc: "rotates the 32-bit elements of each 256-bit half right by one.", Bits: 32, Index: SegmentedRotate(16, 8, 1)},
		{Name: "shufll256x32Index", Doc: "rotates the 32-bit elements of each 256-bit half left by one.", Bits: 32, Index: SegmentedRotate(16, 8, -1)},
		{Name: "shuflr256x16Index", Doc: "rotates the 16-bit elements of each 256-bit half right by one.", Bits: 16, Index: SegmentedRotate(32, 16, 1)},
		{Name: "shufll256x16Index", Doc: "rotates the 16-bit elements of each 256-bit half left by one.", Bits: 16, Index: SegmentedRotate(32, 16, -1)},
		{Name: "shuflr8Index", Doc: "rotates bytes right by one position (vpermb).", Bits: 8, Index: Rotate(64, 1)},
		{Name: "shufll8Index", Doc: "rotates bytes left by one position (vpermb).", Bits: 8, Index: Rotate(64, -1)},
		{Name: "shuflr256x8Index", Doc: "rotates the bytes of each 256-bit half right by one (vpermb).", Bits: 8, Index: SegmentedRotate(64, 32, 1)},
		{Name: "shufll256x8Index", Doc: "rotates the bytes of each 256-bit half left by one (vpermb).", Bits: 8, Index: SegmentedRotate(64, 32, -1)},
		{Name: "bswap64Lane", Doc: "reverses the bytes of each 64-bit element of a lane.", Bits: 8, Lane: true, Index: ByteSwap(16, 8)},
		{Name: "bswap32Lane", Doc: "reverses the bytes of each 32-bit element of a lane.", Bits: 8, Lane: true, Index: ByteSwap(16, 4)},
		{Name: "bswap16Lane", Doc: "reverses the bytes of each 16-bit element of a lane.", Bits: 8, Lane: true, Index: ByteSwap(16, 2)},
	}
}
