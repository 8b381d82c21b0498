// =============================================================================
// Trade Processor - Shared Types
// =============================================================================
//
// This package contains the trade model shared by the parser, the pipeline
// driver and the XML writer. Keeping it here avoids import cycles between:
//   - lineparser
//   - processor
//   - xmlwriter
//
// =============================================================================

package types

// DefaultLotSize is the number of units in one lot.
// A raw trade amount is divided by this value to obtain Lots.
const DefaultLotSize = 1000

// =============================================================================
// TRADE TYPES
// =============================================================================

// TradeRecord is one accepted input line.
type TradeRecord struct {
	// SourceCurrency is the first three characters of the currency pair.
	// No case transformation is applied.
	SourceCurrency string

	// DestinationCurrency is the last three characters of the currency pair.
	DestinationCurrency string

	// Lots is the trade amount divided by the lot size.
	Lots float64

	// Price is the trade price as parsed from the input.
	Price float64
}

// CurrencyPair returns the six-character pair the record was built from.
func (r TradeRecord) CurrencyPair() string {
	return r.SourceCurrency + r.DestinationCurrency
}
