// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X ...commands.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "pcm8wav %s\n", version)
		if verbose {
			fmt.Fprintf(out, "  go:          %s\n", runtime.Version())
			fmt.Fprintf(out, "  sample rate: %d Hz\n", cfg.SampleRate)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
