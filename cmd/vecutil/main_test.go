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

package main

import (
	"bytes"
	"go/format"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-simdutils/internal/permgen"
	"github.com/ajroetker/go-simdutils/tier"
)

// run executes the command tree with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTablesMatchCheckedIn(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("..", "..", "m512", "zz_tables.go"))
	require.NoError(t, err)

	got, err := run(t, "tables")
	require.NoError(t, err)
	require.Equal(t, string(want), got, "m512/zz_tables.go is stale; run go generate ./m512")
}

func TestTablesWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.go")
	out, err := run(t, "tables", "-o", path, "--pkg", "other")
	require.NoError(t, err)
	require.Empty(t, out)

	src, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(src), "// Code generated by vecutil tables. DO NOT EDIT.\n\npackage other\n"))
	for _, tb := range permgen.Tables512() {
		require.Contains(t, string(src), "var "+tb.Name+" = ")
	}
}

func TestRenderTablesRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		table permgen.Table
		err   string
	}{
		{
			name:  "repeated source",
			table: permgen.Table{Name: "bad", Bits: 8, Lane: true, Index: permgen.Index{0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}},
			err:   "table bad",
		},
		{
			name:  "short lane",
			table: permgen.Table{Name: "short", Bits: 8, Lane: true, Index: permgen.Rotate(8, 1)},
			err:   "has 1 words, want 2",
		},
		{
			name:  "short vector",
			table: permgen.Table{Name: "narrow", Bits: 32, Index: permgen.Rotate(4, 1)},
			err:   "has 2 words, want 8",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := renderTables("m512", []permgen.Table{tc.table})
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.err)
		})
	}
}

func TestInfo(t *testing.T) {
	var out bytes.Buffer
	writeInfo(&out, tier.AVX512, tier.AVX2)
	require.Equal(t, "build:     avx512\n"+
		"host:      avx2\n"+
		"width:     64 bytes\n"+
		"supported: false\n"+
		"runnable:  sse2 ssse3 sse4.1 avx2\n", out.String())

	got, err := run(t, "info")
	require.NoError(t, err)
	require.Contains(t, got, "build:     "+tier.Build.String()+"\n")
	require.Contains(t, got, "host:      "+tier.Host().String()+"\n")
}

func TestVerify(t *testing.T) {
	got, err := run(t, "verify", "--seed", "7", "-n", "25")
	require.NoError(t, err)
	require.Contains(t, got, "m128: ")
	require.Contains(t, got, "m512: ")
	require.Contains(t, got, "over 25 rounds")

	_, err = run(t, "verify", "-n", "0")
	require.ErrorContains(t, err, "-n must be positive")
}

func TestVerboseLogging(t *testing.T) {
	_, err := run(t, "--verbose", "verify", "-n", "1")
	require.NoError(t, err)
}

func TestGetEnvUint64(t *testing.T) {
	t.Setenv("VECUTIL_TEST_SEED", "0x2a")
	require.Equal(t, uint64(42), getEnvUint64("VECUTIL_TEST_SEED", 1))
	t.Setenv("VECUTIL_TEST_SEED", "many")
	require.Equal(t, uint64(1), getEnvUint64("VECUTIL_TEST_SEED", 1))
	require.Equal(t, uint64(3), getEnvUint64("VECUTIL_TEST_UNSET", 3))
}

func TestSourcesAreGofmted(t *testing.T) {
	root := filepath.Join("..", "..")
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		formatted, err := format.Source(src)
		if err != nil {
			return err
		}
		require.Equal(t, string(formatted), string(src), "%s is not gofmt-clean", path)
		return nil
	})
	require.NoError(t, err)
}
