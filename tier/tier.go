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

// Package tier describes the capability tiers the vector modules are written
// against and reports which one was selected for this build.
//
// A tier is fixed when the binary is built. The m128 and m512 packages compare
// against the Build constant, so the compiler drops every branch written for
// another tier; nothing is probed or switched at run time.
//
// Tiers are selected with build tags:
//
//	GOAMD64=v1 (default)             SSE2
//	GOAMD64=v1 -tags vecbits_ssse3   SSSE3
//	GOAMD64=v2                       SSE4.1 (includes SSSE3)
//	GOAMD64=v3                       AVX2
//	GOAMD64=v4                       AVX-512 F/BW/DQ/VL
//	GOAMD64=v4 -tags vecbits_vbmi    AVX-512 plus VBMI and VBMI2
//
// Builds for other architectures use the SSE2 tier.
package tier

import (
	"fmt"
	"strings"
)

// Level is a capability tier. Levels are totally ordered: every feature of a
// level is also present at all higher levels.
type Level int

const (
	// SSE2 is the x86-64 baseline.
	SSE2 Level = iota

	// SSSE3 adds the byte shuffle (pshufb) and byte align (palignr).
	SSSE3

	// SSE41 adds word/dword blends and element insert/extract.
	SSE41

	// AVX2 adds dword blend by immediate and per-lane variable shifts.
	AVX2

	// AVX512 is AVX-512 F, BW, DQ and VL: native rotates, mask blends,
	// ternary logic, lane-crossing align and permute.
	AVX512

	// AVX512VBMI adds VBMI (byte permute) and VBMI2 (funnel shifts).
	AVX512VBMI
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case SSE2:
		return "sse2"
	case SSSE3:
		return "ssse3"
	case SSE41:
		return "sse4.1"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	case AVX512VBMI:
		return "avx512vbmi"
	default:
		return "unknown"
	}
}

// Levels returns every level, lowest first.
func Levels() []Level {
	return []Level{SSE2, SSSE3, SSE41, AVX2, AVX512, AVX512VBMI}
}

// ParseLevel returns the level whose String form is s. Matching ignores case
// and accepts "sse41" for "sse4.1".
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "sse41" {
		name = "sse4.1"
	}
	for _, l := range Levels() {
		if l.String() == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("tier: unknown level %q", s)
}

// Width returns the widest register, in bytes, that has a native
// implementation at this level.
func (l Level) Width() int {
	switch {
	case l >= AVX512:
		return 64
	case l >= AVX2:
		return 32
	default:
		return 16
	}
}
