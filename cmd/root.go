// =============================================================================
// Trade Processor - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (tradeproc)
//   ├── processCmd (tradeproc process)
//   ├── validateCmd (tradeproc validate)
//   └── versionCmd (tradeproc version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Binding flags and TRADEPROC_* environment variables through viper
//   3. Loading the configuration and setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ginjaninja78/trade-processor/internal/config"
	"github.com/ginjaninja78/trade-processor/internal/logger"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// v holds flag and environment overrides.
var v = viper.New()

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tradeproc",
	Short: "Trade Processor - Convert trade lines to an XML trade document",
	Long: `Trade Processor reads trade lines of the form

  CURRENCYPAIR,AMOUNT,PRICE

validates each one and writes the accepted trades to an XML document.
Every rejected line is reported as a warning; a summary count is printed
at the end.

Example Usage:
  tradeproc process < trades.txt             # Read stdin, write output.xml
  tradeproc process --input trades.txt       # Read a file
  tradeproc process --input trades.xlsx      # Read the first sheet of a workbook
  tradeproc validate --config ./my.yaml      # Check a configuration file`,

	SilenceUsage: true,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (optional)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	v.SetEnvPrefix(config.EnvPrefix)
	for _, key := range config.Keys {
		_ = v.BindEnv(key)
	}
}

// loadConfig loads the configuration file and applies flag and environment
// overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	config.ApplyOverrides(cfg, v)
	if verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newLogger builds the command logger from the configuration.
func newLogger(w io.Writer, cfg *config.Config) zerolog.Logger {
	return logger.New(w, cfg.LogLevel, cfg.LogFormat)
}
