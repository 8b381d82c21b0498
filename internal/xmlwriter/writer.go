// =============================================================================
// Trade Processor - XML Writer Module
// =============================================================================
//
// This module renders accepted trades as an XML document and writes it to a
// file.
//
// XML STRUCTURE:
//
//   <TradeRecords>
//   	<TradeRecord>
//   		<SourceCurrency>EUR</SourceCurrency>
//   		<DestinationCurrency>USD</DestinationCurrency>
//   		<Lots>1</Lots>
//   		<Price>1.5</Price>
//   	</TradeRecord>
//   </TradeRecords>
//
// One tab per nesting level, "\n" line endings, no XML declaration and no
// newline after the closing root tag. An empty trade list still produces the
// root element pair.
//
// =============================================================================

package xmlwriter

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ginjaninja78/trade-processor/internal/types"
)

// Element names.
const (
	RootElement                = "TradeRecords"
	RecordElement              = "TradeRecord"
	SourceCurrencyElement      = "SourceCurrency"
	DestinationCurrencyElement = "DestinationCurrency"
	LotsElement                = "Lots"
	PriceElement               = "Price"
)

// ErrOutputOpen is returned when the output file cannot be created.
var ErrOutputOpen = errors.New("unable to open output file")

// =============================================================================
// OPTIONS
// =============================================================================

// Options controls rendering.
type Options struct {
	// Indent is written once per nesting level.
	// Default: "\t"
	Indent string

	// FloatPrecision is passed to strconv.FormatFloat with the 'g' format.
	// -1 renders the shortest representation that round-trips.
	// Default: -1
	FloatPrecision int
}

// DefaultOptions returns the reference rendering options.
func DefaultOptions() Options {
	return Options{
		Indent:         "\t",
		FloatPrecision: -1,
	}
}

// =============================================================================
// RENDERING
// =============================================================================

// Render builds the XML document for trades, preserving their order.
func Render(trades []types.TradeRecord, opts Options) []byte {
	var buffer bytes.Buffer

	buffer.WriteString("<" + RootElement + ">\n")

	for _, trade := range trades {
		writeIndent(&buffer, opts.Indent, 1)
		buffer.WriteString("<" + RecordElement + ">\n")

		writeElement(&buffer, opts.Indent, 2, SourceCurrencyElement, trade.SourceCurrency)
		writeElement(&buffer, opts.Indent, 2, DestinationCurrencyElement, trade.DestinationCurrency)
		writeElement(&buffer, opts.Indent, 2, LotsElement, FormatNumber(trade.Lots, opts.FloatPrecision))
		writeElement(&buffer, opts.Indent, 2, PriceElement, FormatNumber(trade.Price, opts.FloatPrecision))

		writeIndent(&buffer, opts.Indent, 1)
		buffer.WriteString("</" + RecordElement + ">\n")
	}

	buffer.WriteString("</" + RootElement + ">")

	return buffer.Bytes()
}

// FormatNumber renders a float the way it appears in the document.
func FormatNumber(v float64, precision int) string {
	return strconv.FormatFloat(v, 'g', precision, 64)
}

// writeElement writes a single-line element with a text value.
func writeElement(buffer *bytes.Buffer, indent string, level int, name, value string) {
	writeIndent(buffer, indent, level)
	buffer.WriteString("<")
	buffer.WriteString(name)
	buffer.WriteString(">")
	buffer.WriteString(escapeXML(value))
	buffer.WriteString("</")
	buffer.WriteString(name)
	buffer.WriteString(">\n")
}

func writeIndent(buffer *bytes.Buffer, indent string, level int) {
	for i := 0; i < level; i++ {
		buffer.WriteString(indent)
	}
}

// escapeXML escapes special characters for XML text content.
func escapeXML(s string) string {
	var buffer bytes.Buffer

	for _, r := range s {
		switch r {
		case '&':
			buffer.WriteString("&amp;")
		case '<':
			buffer.WriteString("&lt;")
		case '>':
			buffer.WriteString("&gt;")
		case '"':
			buffer.WriteString("&quot;")
		case '\'':
			buffer.WriteString("&apos;")
		default:
			buffer.WriteRune(r)
		}
	}

	return buffer.String()
}

// =============================================================================
// FILE OUTPUT
// =============================================================================

// WriteFile renders trades and writes the document to filename.
//
// PARAMETERS:
//   - trades: The accepted trades, in input order.
//   - filename: The output path. An existing file is truncated.
//   - opts: Rendering options.
//
// RETURNS:
//   - An error wrapping ErrOutputOpen if the file cannot be created.
//   - A write or close error otherwise. The partial file is removed.
func WriteFile(trades []types.TradeRecord, filename string, opts Options) error {
	doc := Render(trades, opts)

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutputOpen, err)
	}

	if _, err := file.Write(doc); err != nil {
		_ = file.Close()
		_ = os.Remove(filename)
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(filename)
		return fmt.Errorf("failed to close %s: %w", filename, err)
	}

	return nil
}
