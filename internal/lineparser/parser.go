// =============================================================================
// Trade Processor - Line Parser
// =============================================================================
//
// This module turns one line of input into a TradeRecord. It composes the
// tokenizer with the field validators.
//
// PARSING STEPS (stop at the first failure):
//   1. Split the line on the delimiter; exactly 3 fields are required
//   2. Field 0 is the currency pair; it must be 6 characters long
//   3. Field 1 is the trade amount; it must be an integer
//   4. Field 2 is the trade price; it must be a decimal number
//   5. Build the record: currencies from the pair, lots = amount / lot size
//
// A rejected line is logged as a warning as soon as it is rejected. Nothing
// in this package panics on bad input.
//
// =============================================================================

package lineparser

import (
	"github.com/rs/zerolog"

	"github.com/ginjaninja78/trade-processor/internal/tokenizer"
	"github.com/ginjaninja78/trade-processor/internal/types"
	"github.com/ginjaninja78/trade-processor/internal/validation"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options controls how lines are split and how lots are computed.
type Options struct {
	// Delimiter separates the fields of a line.
	// Default: ','
	Delimiter rune

	// LotSize is the divisor applied to the trade amount.
	// Default: types.DefaultLotSize
	LotSize int
}

// DefaultOptions returns the reference parsing options.
func DefaultOptions() Options {
	return Options{
		Delimiter: tokenizer.DefaultDelimiter,
		LotSize:   types.DefaultLotSize,
	}
}

func (o Options) withDefaults() Options {
	if o.Delimiter == 0 {
		o.Delimiter = tokenizer.DefaultDelimiter
	}
	if o.LotSize <= 0 {
		o.LotSize = types.DefaultLotSize
	}
	return o
}

// =============================================================================
// PARSING
// =============================================================================

// ParseLine parses a single trade line without logging.
//
// PARAMETERS:
//   - line: The raw line, without its line terminator.
//   - lineNumber: The 1-based position of the line in the input.
//   - opts: Delimiter and lot size.
//
// RETURNS:
//   - The parsed TradeRecord.
//   - A *validation.LineError carrying lineNumber if the line is rejected.
func ParseLine(line string, lineNumber int, opts Options) (types.TradeRecord, error) {
	opts = opts.withDefaults()

	fields := tokenizer.Split(line, opts.Delimiter)
	if err := validation.ValidateFieldCount(fields); err != nil {
		return types.TradeRecord{}, atLine(err, lineNumber)
	}

	currencyPair := fields[0]
	if err := validation.ValidateCurrencyPair(currencyPair); err != nil {
		return types.TradeRecord{}, atLine(err, lineNumber)
	}

	amount, err := validation.ParseAmount(fields[1])
	if err != nil {
		return types.TradeRecord{}, atLine(err, lineNumber)
	}

	price, err := validation.ParsePrice(fields[2])
	if err != nil {
		return types.TradeRecord{}, atLine(err, lineNumber)
	}

	return types.TradeRecord{
		SourceCurrency:      currencyPair[:3],
		DestinationCurrency: currencyPair[3:6],
		Lots:                float64(amount) / float64(opts.LotSize),
		Price:               price,
	}, nil
}

func atLine(err error, lineNumber int) error {
	if le, ok := err.(*validation.LineError); ok {
		return le.AtLine(lineNumber)
	}
	return err
}

// =============================================================================
// LOGGING PARSER
// =============================================================================

// Parser parses lines and logs a warning for every rejected one.
type Parser struct {
	opts Options
	log  zerolog.Logger
}

// New creates a Parser that reports rejected lines to log.
func New(opts Options, log zerolog.Logger) *Parser {
	return &Parser{
		opts: opts.withDefaults(),
		log:  log,
	}
}

// Parse parses one line. On rejection the warning is logged before Parse
// returns, and ok is false.
func (p *Parser) Parse(line string, lineNumber int) (types.TradeRecord, bool) {
	record, err := ParseLine(line, lineNumber, p.opts)
	if err != nil {
		p.warn(err, lineNumber)
		return types.TradeRecord{}, false
	}
	return record, true
}

func (p *Parser) warn(err error, lineNumber int) {
	evt := p.log.Warn().Int("line", lineNumber)
	if le, ok := err.(*validation.LineError); ok {
		evt = evt.Str("kind", le.Kind.String())
		if le.Kind == validation.MalformedLine {
			evt = evt.Int("count", le.Count)
		} else {
			evt = evt.Str("value", le.Value)
		}
	}
	evt.Msg(err.Error())
}
