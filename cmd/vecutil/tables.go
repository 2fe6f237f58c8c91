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
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-simdutils/internal/permgen"
)

func newTablesCmd(a *app) *cobra.Command {
	var output, pkg string
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Render the m512 permutation index tables as Go source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tables := permgen.Tables512()
			src, err := renderTables(pkg, tables)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.WriteFile(output, src, 0644); err != nil {
				return fmt.Errorf("writing tables: %w", err)
			}
			a.log.Info("wrote tables", zap.String("file", output), zap.Int("tables", len(tables)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&pkg, "pkg", "m512", "Package name of the generated file")
	return cmd
}

// renderTables emits one variable per table: full-width tables as M512
// literals four words to a row, lane tables as [2]uint64 patterns.
func renderTables(pkg string, tables []permgen.Table) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by vecutil tables. DO NOT EDIT.\n\npackage %s\n", pkg)
	for _, t := range tables {
		if err := t.Index.Validate(); err != nil {
			return nil, fmt.Errorf("table %s: %w", t.Name, err)
		}
		words := lo.Map(t.Words(), func(w uint64, _ int) string {
			return fmt.Sprintf("0x%016x", w)
		})
		fmt.Fprintf(&buf, "\n// %s %s\n", t.Name, t.Doc)
		if t.Lane {
			if len(words) != 2 {
				return nil, fmt.Errorf("lane table %s has %d words, want 2", t.Name, len(words))
			}
			fmt.Fprintf(&buf, "var %s = [2]uint64{%s}\n", t.Name, strings.Join(words, ", "))
			continue
		}
		if len(words) != 8 {
			return nil, fmt.Errorf("table %s has %d words, want 8", t.Name, len(words))
		}
		fmt.Fprintf(&buf, "var %s = M512{\n", t.Name)
		for _, row := range lo.Chunk(words, 4) {
			fmt.Fprintf(&buf, "\t%s,\n", strings.Join(row, ", "))
		}
		buf.WriteString("}\n")
	}

	formatted, err := imports.Process("zz_tables.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting tables: %w", err)
	}
	return formatted, nil
}
