package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		delim rune
		want  []string
	}{
		{name: "three fields", line: "EURUSD,1000,1.5", delim: ',', want: []string{"EURUSD", "1000", "1.5"}},
		{name: "trailing delimiter", line: "EURUSD,1000,", delim: ',', want: []string{"EURUSD", "1000", ""}},
		{name: "consecutive delimiters", line: "a,,b", delim: ',', want: []string{"a", "", "b"}},
		{name: "no delimiter", line: "EURUSD", delim: ',', want: []string{"EURUSD"}},
		{name: "whitespace kept", line: " EURUSD , 1000", delim: ',', want: []string{" EURUSD ", " 1000"}},
		{name: "only delimiters", line: ",,", delim: ',', want: []string{"", "", ""}},
		{name: "pipe delimiter", line: "GBPJPY|5|150.2", delim: '|', want: []string{"GBPJPY", "5", "150.2"}},
		{name: "empty line", line: "", delim: ',', want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Split(tc.line, tc.delim)
			assert.Equal(t, tc.want, got)
		})
	}
}
