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
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-simdutils/tier"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the build tier and the host's capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			host := tier.Host()
			a.log.Debug("detected host", zap.Stringer("host", host), zap.Stringer("build", tier.Build))
			writeInfo(cmd.OutOrStdout(), tier.Build, host)
			return nil
		},
	}
}

// writeInfo prints one line per property, then the levels the host can run.
func writeInfo(w io.Writer, build, host tier.Level) {
	fmt.Fprintf(w, "build:     %s\n", build)
	fmt.Fprintf(w, "host:      %s\n", host)
	fmt.Fprintf(w, "width:     %d bytes\n", build.Width())
	fmt.Fprintf(w, "supported: %t\n", build <= host)
	runnable := lo.Filter(tier.Levels(), func(l tier.Level, _ int) bool { return l <= host })
	names := lo.Map(runnable, func(l tier.Level, _ int) string { return l.String() })
	fmt.Fprintf(w, "runnable:  %s\n", strings.Join(names, " "))
}
