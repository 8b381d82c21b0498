// =============================================================================
// Trade Processor - Process Command
// =============================================================================
//
// This file defines the 'process' command, which runs the trade pipeline.
//
// COMMAND USAGE:
//   tradeproc process [flags]
//
// FLAGS:
//   --input    : Input file ("-" or empty reads stdin; .xlsx reads a workbook)
//   --output   : Output XML path (default from config, "output.xml")
//   --lot-size : Units per lot (default 1000)
//   --delimiter: Field delimiter (default ",")
//   --dry-run  : Parse and report without writing the output file
//
// Bad input lines and output failures are reported but never make the
// command fail. Only configuration errors and an unreadable --input do.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/trade-processor/internal/config"
	"github.com/ginjaninja78/trade-processor/internal/lineparser"
	"github.com/ginjaninja78/trade-processor/internal/processor"
	"github.com/ginjaninja78/trade-processor/internal/xlsxparser"
	"github.com/ginjaninja78/trade-processor/internal/xmlwriter"
	"github.com/ginjaninja78/trade-processor/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// inputPath is the file to read. Empty or "-" means stdin.
var inputPath string

// dryRun skips writing the output file.
var dryRun bool

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Convert trade lines to XML",
	Long: `The process command reads trade lines from stdin or --input, validates
them and writes the accepted trades to the output XML file.

Each rejected line produces a WARN line naming the line number and the
problem. A final INFO line reports how many trades were processed.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVarP(
		&inputPath,
		"input",
		"i",
		"",
		"Input file (default stdin; .xlsx files are read as workbooks)",
	)

	processCmd.Flags().StringP(
		"output",
		"o",
		"",
		"Output XML file; {uuid}, {timestamp}, {date} and {time} are expanded (default output.xml)",
	)
	_ = v.BindPFlag(config.KeyOutputFile, processCmd.Flags().Lookup("output"))

	processCmd.Flags().Int(
		"lot-size",
		0,
		"Units per lot (default 1000)",
	)
	_ = v.BindPFlag(config.KeyLotSize, processCmd.Flags().Lookup("lot-size"))

	processCmd.Flags().String(
		"delimiter",
		"",
		"Field delimiter, a single character (default \",\")",
	)
	_ = v.BindPFlag(config.KeyDelimiter, processCmd.Flags().Lookup("delimiter"))

	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Parse and report without writing the output file",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess loads the configuration, reads the input and runs the pipeline.
func runProcess(stdin io.Reader, stdout io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := newLogger(stdout, cfg)

	opts := processor.Options{
		OutputFile: cfg.OutputFile,
		Parse: lineparser.Options{
			Delimiter: cfg.DelimiterRune(),
			LotSize:   cfg.LotSize,
		},
		XML: xmlwriter.Options{
			Indent:         "\t",
			FloatPrecision: cfg.Precision(),
		},
		DryRun: dryRun,
	}
	proc := processor.New(opts, log)

	switch {
	case inputPath == "" || inputPath == "-":
		proc.Process(stdin)

	case utils.HasExtension(inputPath, ".xlsx"):
		lines, err := xlsxparser.ReadLines(inputPath, cfg.XLSXSheet, cfg.DelimiterRune())
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		log.Debug().Str("path", inputPath).Str("sheet", cfg.XLSXSheet).Int("lines", len(lines)).Msg("Read workbook.")
		proc.ProcessLines(lines)

	default:
		file, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer file.Close()
		proc.Process(file)
	}

	return nil
}
