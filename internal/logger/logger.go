package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// structuredFields are attached to events for JSON consumers and hidden in
// console output so console lines carry only the message.
var structuredFields = []string{"line", "kind", "value", "count", "path", "trades", "rejected", "lines", "elapsed", "dry_run", "sheet", "error"}

// New builds a logger writing to w.
//
// Console output is one line per event: "<LEVEL>: <message>", for example
// "WARN: Line 2 malformed. Only 2 field(s) found.". JSON output carries a
// timestamp and the structured fields.
func New(w io.Writer, level, format string) zerolog.Logger {
	lvl := parseLevel(level)

	if strings.EqualFold(format, FormatJSON) {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		return zerolog.New(w).With().Timestamp().Logger().Level(lvl)
	}

	cw := zerolog.ConsoleWriter{
		Out:           w,
		NoColor:       true,
		PartsOrder:    []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FieldsExclude: structuredFields,
		FormatLevel:   formatLevel,
	}
	return zerolog.New(cw).Level(lvl)
}

// ValidFormat reports whether format names a supported output format.
func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatConsole, FormatJSON:
		return true
	default:
		return false
	}
}

func formatLevel(i interface{}) string {
	s, ok := i.(string)
	if !ok {
		return ""
	}
	switch s {
	case zerolog.LevelWarnValue:
		return "WARN:"
	case zerolog.LevelErrorValue:
		return "ERROR:"
	default:
		return fmt.Sprintf("%s:", strings.ToUpper(s))
	}
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
