// =============================================================================
// Trade Processor - Pipeline Driver
// =============================================================================
//
// This module runs the whole pipeline for one input stream.
//
// PIPELINE:
//   1. Read every line of the input into memory
//   2. Parse each line (1-based numbering); rejected lines are logged by
//      the line parser and skipped
//   3. Write the accepted trades to the XML output file
//   4. Log "<n> trades processed"
//
// Bad lines never stop the pipeline. A failure to open the output file is
// logged and reported in the Result; the summary is still logged.
//
// Each call to Process is independent: nothing is kept between calls.
//
// =============================================================================

package processor

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ginjaninja78/trade-processor/internal/lineparser"
	"github.com/ginjaninja78/trade-processor/internal/types"
	"github.com/ginjaninja78/trade-processor/internal/xmlwriter"
	"github.com/ginjaninja78/trade-processor/pkg/utils"
)

// DefaultOutputFile is where the XML document is written by default.
const DefaultOutputFile = "output.xml"

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one Process call.
type Result struct {
	// Trades are the accepted records, in input order.
	Trades []types.TradeRecord

	// OutputFile is the path the document was written to (or would have
	// been, on dry runs and failures).
	OutputFile string

	// Written is true once the document is fully written and closed.
	Written bool

	// OutputErr is set when the output file could not be written.
	OutputErr error

	// ReadErr is set when the input stream failed before EOF. Lines read
	// before the failure are still processed.
	ReadErr error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// LinesRead is the number of input lines.
	LinesRead int

	// TradesAccepted is the number of lines that became trades.
	TradesAccepted int

	// LinesRejected is the number of lines skipped with a warning.
	LinesRejected int

	// ProcessingTime is the time taken by the call.
	ProcessingTime time.Duration
}

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures a Processor.
type Options struct {
	// OutputFile is the output path; placeholders are expanded per call.
	// Default: "output.xml"
	OutputFile string

	// Parse controls line splitting and the lot size.
	Parse lineparser.Options

	// XML controls document rendering.
	XML xmlwriter.Options

	// DryRun parses and logs without writing the output file.
	DryRun bool
}

// DefaultOptions returns the reference options.
func DefaultOptions() Options {
	return Options{
		OutputFile: DefaultOutputFile,
		Parse:      lineparser.DefaultOptions(),
		XML:        xmlwriter.DefaultOptions(),
	}
}

// =============================================================================
// PROCESSOR
// =============================================================================

// Processor runs the trade pipeline.
type Processor struct {
	opts Options
	log  zerolog.Logger
	now  func() time.Time
}

// New creates a Processor.
func New(opts Options, log zerolog.Logger) *Processor {
	if opts.OutputFile == "" {
		opts.OutputFile = DefaultOutputFile
	}
	if opts.XML.Indent == "" {
		opts.XML.Indent = "\t"
	}
	return &Processor{
		opts: opts,
		log:  log,
		now:  time.Now,
	}
}

// Process reads every line from r and runs the pipeline over them.
func (p *Processor) Process(r io.Reader) Result {
	lines, err := ReadLines(r)
	if err != nil {
		p.log.Error().Err(err).Int("lines", len(lines)).Msg("Failed to read input.")
	}

	result := p.ProcessLines(lines)
	result.ReadErr = err
	return result
}

// ProcessLines runs the pipeline over lines that are already in memory.
//
// PROCESSING STEPS:
//   1. Parse each line, numbering from 1
//   2. Write the XML document (unless DryRun)
//   3. Log the summary
func (p *Processor) ProcessLines(lines []string) Result {
	startTime := p.now()
	parser := lineparser.New(p.opts.Parse, p.log)

	result := Result{
		OutputFile: utils.ExpandOutputPath(p.opts.OutputFile, startTime),
		Trades:     make([]types.TradeRecord, 0, len(lines)),
	}

	// =========================================================================
	// STEP 1: PARSE LINES
	// =========================================================================

	for i, line := range lines {
		trade, ok := parser.Parse(line, i+1)
		if !ok {
			result.Stats.LinesRejected++
			continue
		}
		result.Trades = append(result.Trades, trade)
	}

	result.Stats.LinesRead = len(lines)
	result.Stats.TradesAccepted = len(result.Trades)

	// =========================================================================
	// STEP 2: WRITE OUTPUT
	// =========================================================================

	if p.opts.DryRun {
		p.log.Debug().Str("path", result.OutputFile).Bool("dry_run", true).Msg("Skipping output file.")
	} else {
		result.OutputErr = p.writeOutput(result.Trades, result.OutputFile)
		result.Written = result.OutputErr == nil
	}

	// =========================================================================
	// STEP 3: SUMMARY
	// =========================================================================

	result.Stats.ProcessingTime = p.now().Sub(startTime)

	p.log.Info().
		Int("trades", result.Stats.TradesAccepted).
		Msgf("%d trades processed", result.Stats.TradesAccepted)

	p.log.Debug().
		Int("lines", result.Stats.LinesRead).
		Int("rejected", result.Stats.LinesRejected).
		Dur("elapsed", result.Stats.ProcessingTime).
		Str("path", result.OutputFile).
		Msgf("Read %d line(s), rejected %d.", result.Stats.LinesRead, result.Stats.LinesRejected)

	return result
}

// writeOutput writes the document and logs any failure.
func (p *Processor) writeOutput(trades []types.TradeRecord, path string) error {
	if err := utils.EnsureParentDir(path); err != nil {
		p.log.Error().Err(err).Str("path", path).Msg("Unable to open output file.")
		return err
	}

	err := xmlwriter.WriteFile(trades, path, p.opts.XML)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, xmlwriter.ErrOutputOpen):
		p.log.Error().Err(err).Str("path", path).Msg("Unable to open output file.")
	default:
		p.log.Error().Err(err).Str("path", path).Msg("Unable to write output file.")
	}
	return err
}

// =============================================================================
// INPUT
// =============================================================================

// ReadLines reads all lines from r.
//
// Lines are split on "\n"; a trailing "\r" is dropped so CRLF input parses
// the same as LF input. A final line without a terminator is kept; a
// terminator at the very end does not create an extra empty line. There is
// no limit on line length.
//
// On a read error the complete lines read so far are returned with the error.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	reader := bufio.NewReader(r)

	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return lines, err
		}
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
	}
}
