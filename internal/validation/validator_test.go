package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFieldCount(t *testing.T) {
	require.NoError(t, ValidateFieldCount([]string{"a", "b", "c"}))

	err := ValidateFieldCount([]string{"EURUSD", "1000"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedLine)

	var le *LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 2, le.Count)
	assert.Equal(t, "Line 7 malformed. Only 2 field(s) found.", le.AtLine(7).Error())
}

func TestValidateCurrencyPair(t *testing.T) {
	cases := []struct {
		pair    string
		wantErr bool
	}{
		{"EURUSD", false},
		{"eurusd", false},
		{"123456", false},
		{"EU$US#", false},
		{"EURU", true},
		{"EURUSDX", true},
		{"", true},
	}
	for _, tc := range cases {
		t.Run(tc.pair, func(t *testing.T) {
			err := ValidateCurrencyPair(tc.pair)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrMalformedCurrencyPair)
		})
	}

	err := ValidateCurrencyPair("EURU")
	var le *LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "Trade currencies on line 3 malformed: 'EURU'", le.AtLine(3).Error())
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "1000", want: 1000},
		{in: "-250", want: -250},
		{in: "+5", want: 5},
		{in: "0", want: 0},
		{in: "abc", wantErr: true},
		{in: "12abc", wantErr: true},
		{in: "1.5", wantErr: true},
		{in: " 10", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAmount(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseAmount("abc")
	var le *LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "Trade amount on line 4 not a valid integer: 'abc'", le.AtLine(4).Error())
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "1.5", want: 1.5},
		{in: "1", want: 1},
		{in: "-0.25", want: -0.25},
		{in: "1e3", want: 1000},
		{in: "2.5E-2", want: 0.025},
		{in: "xyz", wantErr: true},
		{in: "1.5x", wantErr: true},
		{in: "1,5", wantErr: true},
		{in: "1e400", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePrice(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}

	_, err := ParsePrice("xyz")
	var le *LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "Trade price on line 5 not a valid decimal: 'xyz'", le.AtLine(5).Error())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "malformed_line", MalformedLine.String())
	assert.Equal(t, "malformed_currency_pair", MalformedCurrencyPair.String())
	assert.Equal(t, "invalid_amount", InvalidAmount.String())
	assert.Equal(t, "invalid_price", InvalidPrice.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
