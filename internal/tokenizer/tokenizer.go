// Package tokenizer splits a single input line into delimited fields.
package tokenizer

import "strings"

// DefaultDelimiter separates the fields of a trade line.
const DefaultDelimiter = ','

// Split returns the fields of line separated by delim, in order.
//
// Empty fields are preserved: "a,,b" yields three fields and "a,b," yields
// a trailing empty field. Fields are not trimmed. An empty line has no
// fields at all.
func Split(line string, delim rune) []string {
	if line == "" {
		return nil
	}
	return strings.Split(line, string(delim))
}
