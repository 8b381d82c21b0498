// =============================================================================
// Trade Processor - Field Validators
// =============================================================================
//
// This module validates the individual fields of a trade line:
//   - Currency pair: exactly six characters, no charset restriction
//   - Trade amount: a whole-string base-10 integer
//   - Trade price: a whole-string floating-point number
//
// ERROR HANDLING:
//   - Every failure is returned as a *LineError, never as a panic
//   - A LineError renders the exact warning text logged for the line
//   - LineError unwraps to a sentinel so callers can use errors.Is
//
// =============================================================================

package validation

import (
	"errors"
	"fmt"
	"strconv"
)

// CurrencyPairLength is the required length of the currency pair field.
const CurrencyPairLength = 6

// FieldCount is the number of fields in a well-formed trade line.
const FieldCount = 3

// =============================================================================
// ERROR KINDS
// =============================================================================

// Kind classifies why a line was rejected.
type Kind int

const (
	// MalformedLine means the line does not have exactly FieldCount fields.
	MalformedLine Kind = iota + 1

	// MalformedCurrencyPair means the first field is not six characters long.
	MalformedCurrencyPair

	// InvalidAmount means the second field is not an integer.
	InvalidAmount

	// InvalidPrice means the third field is not a decimal number.
	InvalidPrice
)

// Sentinel errors, one per Kind.
var (
	ErrMalformedLine         = errors.New("malformed line")
	ErrMalformedCurrencyPair = errors.New("malformed currency pair")
	ErrInvalidAmount         = errors.New("invalid trade amount")
	ErrInvalidPrice          = errors.New("invalid trade price")
)

// String returns a short machine-friendly name for the kind.
func (k Kind) String() string {
	switch k {
	case MalformedLine:
		return "malformed_line"
	case MalformedCurrencyPair:
		return "malformed_currency_pair"
	case InvalidAmount:
		return "invalid_amount"
	case InvalidPrice:
		return "invalid_price"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case MalformedLine:
		return ErrMalformedLine
	case MalformedCurrencyPair:
		return ErrMalformedCurrencyPair
	case InvalidAmount:
		return ErrInvalidAmount
	case InvalidPrice:
		return ErrInvalidPrice
	default:
		return nil
	}
}

// =============================================================================
// LINE ERROR
// =============================================================================

// LineError describes a rejected trade line.
type LineError struct {
	// Kind is the reason the line was rejected.
	Kind Kind

	// Line is the 1-based line number. Zero when the error came from a
	// standalone field check that does not know its line yet.
	Line int

	// Value is the offending field value. Empty for MalformedLine.
	Value string

	// Count is the number of fields found. Only set for MalformedLine.
	Count int

	// Err is the underlying parse error, if any.
	Err error
}

// Error implements the error interface.
// The text is exactly the warning logged for the rejected line.
func (e *LineError) Error() string {
	switch e.Kind {
	case MalformedLine:
		return fmt.Sprintf("Line %d malformed. Only %d field(s) found.", e.Line, e.Count)
	case MalformedCurrencyPair:
		return fmt.Sprintf("Trade currencies on line %d malformed: '%s'", e.Line, e.Value)
	case InvalidAmount:
		return fmt.Sprintf("Trade amount on line %d not a valid integer: '%s'", e.Line, e.Value)
	case InvalidPrice:
		return fmt.Sprintf("Trade price on line %d not a valid decimal: '%s'", e.Line, e.Value)
	default:
		return fmt.Sprintf("Line %d rejected", e.Line)
	}
}

// Unwrap returns the sentinel for the error kind.
func (e *LineError) Unwrap() error {
	return e.Kind.sentinel()
}

// AtLine returns a copy of the error with the line number set.
func (e *LineError) AtLine(line int) *LineError {
	c := *e
	c.Line = line
	return &c
}

// =============================================================================
// FIELD VALIDATORS
// =============================================================================

// ValidateFieldCount checks that a line split into exactly FieldCount fields.
func ValidateFieldCount(fields []string) error {
	if len(fields) != FieldCount {
		return &LineError{Kind: MalformedLine, Count: len(fields)}
	}
	return nil
}

// ValidateCurrencyPair checks that the currency pair has exactly six characters.
// Length is measured in bytes, matching the substring split that follows.
func ValidateCurrencyPair(pair string) error {
	if len(pair) != CurrencyPairLength {
		return &LineError{Kind: MalformedCurrencyPair, Value: pair}
	}
	return nil
}

// ParseAmount parses the trade amount as a base-10 integer.
// The whole string must be numeric; "12abc" is rejected, not truncated.
func ParseAmount(value string) (int, error) {
	amount, err := strconv.Atoi(value)
	if err != nil {
		return 0, &LineError{Kind: InvalidAmount, Value: value, Err: err}
	}
	return amount, nil
}

// ParsePrice parses the trade price as a 64-bit float.
//
// Decimal and exponent notation are accepted. Values outside the float64
// range are rejected.
func ParsePrice(value string) (float64, error) {
	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &LineError{Kind: InvalidPrice, Value: value, Err: err}
	}
	return price, nil
}
