// =============================================================================
// Trade Processor - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which loads the configuration
// (file, environment and flags) and prints the effective values without
// reading any input.
//
// COMMAND USAGE:
//   tradeproc validate [--config FILE]
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration and print the effective values",
	Long: `The validate command loads the configuration file, applies TRADEPROC_*
environment overrides and checks every value. On success the effective
configuration is printed as YAML.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to render config: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Configuration OK (%s)\n", cfgFile)
		fmt.Fprint(out, string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
