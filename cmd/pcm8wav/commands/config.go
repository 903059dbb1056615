// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var forceWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configInitCmd = &cobra.Command{
	Use:   "init <file>",
	Short: "Write the resolved settings to a YAML file",
	Long: `Write the settings in effect, defaults overlaid with --config and any
flags, to a YAML file that can be passed back with --config.

Examples:
  pcm8wav config init pcm8wav.yaml
  pcm8wav --sample-rate 8000 --skip-unknown config init lenient.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if _, err := os.Stat(path); err == nil && !forceWrite {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}

		if err := cfg.Save(path); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&forceWrite, "force", "f", false, "overwrite an existing file")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
