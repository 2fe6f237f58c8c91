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

// Endian byte swaps. VPSHUFB works within lanes, so each control is a 128-bit
// pattern broadcast to all four lanes.

// Bswap64 reverses the bytes of each 64-bit element.
func Bswap64(v M512) M512 { return shuffleEpi8(v, laneCtl(bswap64Lane)) }

// Bswap32 reverses the bytes of each 32-bit element.
func Bswap32(v M512) M512 { return shuffleEpi8(v, laneCtl(bswap32Lane)) }

// Bswap16 reverses the bytes of each 16-bit element.
func Bswap16(v M512) M512 { return shuffleEpi8(v, laneCtl(bswap16Lane)) }

func laneCtl(lane [2]uint64) M512 { return Const2_64(lane[1], lane[0]) }

// BlockBswap64 stores Bswap64(src[i]) in dst[i] for every element of src.
// The control is built once for the block. dst must be at least as long as
// src and may be src itself.
func BlockBswap64(dst, src []M512) { blockShuffle(dst, src, laneCtl(bswap64Lane)) }

// BlockBswap32 stores Bswap32(src[i]) in dst[i] for every element of src.
func BlockBswap32(dst, src []M512) { blockShuffle(dst, src, laneCtl(bswap32Lane)) }

func blockShuffle(dst, src []M512, ctl M512) {
	for i, v := range src {
		dst[i] = shuffleEpi8(v, ctl)
	}
}
