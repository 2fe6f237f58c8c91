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

package tier

import "golang.org/x/sys/cpu"

// Host returns the highest level the running CPU supports. It is meant for
// diagnostics, such as warning that a binary built for AVX-512 is running on
// an AVX2 machine. The vector modules never consult it.
//
// Hosts that are not x86 report SSE2, the level whose implementation is
// portable.
func Host() Level {
	x := cpu.X86
	switch {
	case x.HasAVX512F && x.HasAVX512BW && x.HasAVX512DQ && x.HasAVX512VL &&
		x.HasAVX512VBMI && x.HasAVX512VBMI2:
		return AVX512VBMI
	case x.HasAVX512F && x.HasAVX512BW && x.HasAVX512DQ && x.HasAVX512VL:
		return AVX512
	case x.HasAVX2:
		return AVX2
	case x.HasSSE41:
		return SSE41
	case x.HasSSSE3:
		return SSSE3
	default:
		return SSE2
	}
}

// HostSupports reports whether the running CPU can execute code built for l.
func HostSupports(l Level) bool {
	return l <= Host()
}

// BuildSupported reports whether the running CPU can execute the tier this
// binary was built for.
func BuildSupported() bool {
	return HostSupports(Build)
}
