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

// Package m512 provides 512-bit vector bit-manipulation primitives for the
// AVX-512 tiers.
//
// The baseline is AVX-512 F, BW, DQ and VL; a build for tier.AVX512VBMI also
// uses the byte permutes of VBMI and the funnel shifts of VBMI2. The package
// compiles at every tier and always computes the same results; tier.Build
// only picks which instruction sequence is modelled.
//
// Naming follows package m128, with lanes added. A 128-bit lane is the
// boundary of VPSHUFB, VPALIGNR and VPSHUFD. Operations with a 128 prefix
// (Shuflr128_32, Swap128_64) and the byte swaps are lane-bounded; those with
// a 256 prefix rotate inside each 256-bit half; all others cross lanes. The
// index tables steering the permutes live in zz_tables.go, which is
// generated by "vecutil tables".
package m512

//go:generate go run ../cmd/vecutil tables -o zz_tables.go
