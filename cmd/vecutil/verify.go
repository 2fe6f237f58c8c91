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
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-simdutils/m128"
	"github.com/ajroetker/go-simdutils/m512"
	"github.com/ajroetker/go-simdutils/tier"
)

// verifier is a module's cross-check entry point.
type verifier struct {
	name  string
	check func(r *rand.Rand, n int) error
	ops   func() []string
}

var verifiers = []verifier{
	{"m128", m128.CrossCheck, m128.CheckNames},
	{"m512", m512.CrossCheck, m512.CheckNames},
}

func newVerifyCmd(a *app) *cobra.Command {
	var seed uint64
	var rounds int
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that every tier's implementation of each operation agrees",
		Long: `Verify runs every implementation variant of every vector operation on
random inputs and reports the first pair of variants that disagree. The
variants of all tiers are compiled into every build, so the check does not
depend on the machine it runs on.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rounds <= 0 {
				return fmt.Errorf("-n must be positive, got %d", rounds)
			}
			a.log.Debug("verifying", zap.Uint64("seed", seed), zap.Int("rounds", rounds),
				zap.Stringer("build", tier.Build))
			return runVerify(cmd.OutOrStdout(), a.log, seed, rounds)
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", getEnvUint64("VECUTIL_SEED", 1), "Random seed (env VECUTIL_SEED)")
	cmd.Flags().IntVarP(&rounds, "rounds", "n", 1000, "Number of random input sets per module")
	return cmd
}

func runVerify(w io.Writer, log *zap.Logger, seed uint64, rounds int) error {
	for i, v := range verifiers {
		r := rand.New(rand.NewPCG(seed, uint64(i)))
		if err := v.check(r, rounds); err != nil {
			return fmt.Errorf("verify %s (seed %d): %w", v.name, seed, err)
		}
		log.Info("module agrees", zap.String("module", v.name), zap.Int("ops", len(v.ops())))
		fmt.Fprintf(w, "%s: %d operations agree over %d rounds\n", v.name, len(v.ops()), rounds)
	}
	return nil
}
