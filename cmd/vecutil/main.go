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

// Command vecutil reports the vector tier a binary was built for, renders
// the generated m512 index tables and cross-checks every implementation
// variant of the vector modules.
//
// Usage:
//
//	vecutil info
//	vecutil tables -o m512/zz_tables.go
//	vecutil verify --seed 42 -n 1000
//
// Or via go:generate, from the m512 package:
//
//	//go:generate go run ../cmd/vecutil tables -o zz_tables.go
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the state shared by the subcommands.
type app struct {
	verbose bool
	log     *zap.Logger
}

// newRootCmd builds the command tree. Logging stays silent unless --verbose
// is given.
func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	rootCmd := &cobra.Command{
		Use:           "vecutil",
		Short:         "Inspect and verify the go-simdutils vector modules",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !a.verbose {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			a.log = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log diagnostics to stderr")

	rootCmd.AddCommand(newInfoCmd(a))
	rootCmd.AddCommand(newTablesCmd(a))
	rootCmd.AddCommand(newVerifyCmd(a))
	return rootCmd
}

// getEnvUint64 returns the environment variable as a uint64, or defaultVal
// when it is unset or malformed.
func getEnvUint64(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(key); val != "" {
		if u, err := strconv.ParseUint(val, 0, 64); err == nil {
			return u
		}
	}
	return defaultVal
}
