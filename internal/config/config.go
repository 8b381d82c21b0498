// =============================================================================
// Trade Processor - Configuration Module
// =============================================================================
//
// This module loads the application configuration.
//
// SOURCES (lowest to highest precedence):
//   1. Built-in defaults (the reference behavior: output.xml, lot size 1000)
//   2. The YAML configuration file (config.yaml by default, optional)
//   3. Environment variables (TRADEPROC_*) and command-line flags, bound
//      through viper in the cmd package
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/trade-processor/internal/logger"
	"github.com/ginjaninja78/trade-processor/internal/types"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "TRADEPROC"

// Configuration keys. They double as YAML keys, viper keys and, upper-cased
// with EnvPrefix, environment variable names.
const (
	KeyOutputFile     = "output_file"
	KeyLotSize        = "lot_size"
	KeyDelimiter      = "delimiter"
	KeyFloatPrecision = "float_precision"
	KeyLogLevel       = "log_level"
	KeyLogFormat      = "log_format"
	KeyXLSXSheet      = "xlsx_sheet"
)

// Keys lists every configuration key.
var Keys = []string{
	KeyOutputFile,
	KeyLotSize,
	KeyDelimiter,
	KeyFloatPrecision,
	KeyLogLevel,
	KeyLogFormat,
	KeyXLSXSheet,
}

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// OutputFile is the path of the generated XML document.
	// Placeholders such as {uuid} and {date} are expanded at write time.
	// Default: "output.xml"
	OutputFile string `yaml:"output_file"`

	// LotSize is the divisor turning a trade amount into lots.
	// Default: 1000
	LotSize int `yaml:"lot_size"`

	// Delimiter separates the fields of an input line. Single character.
	// Default: ","
	Delimiter string `yaml:"delimiter"`

	// FloatPrecision controls how Lots and Price are rendered.
	// -1 renders the shortest representation that round-trips.
	// Default: -1
	FloatPrecision *int `yaml:"float_precision"`

	// LogLevel controls verbosity: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// LogFormat selects "console" or "json" log output.
	// Default: "console"
	LogFormat string `yaml:"log_format"`

	// XLSXSheet is the sheet read from .xlsx input. Empty means the first sheet.
	XLSXSheet string `yaml:"xlsx_sheet"`
}

// Default returns the reference configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration file at path.
//
// PARAMETERS:
//   - path: The YAML file. A missing file is not an error; defaults are used.
//
// RETURNS:
//   - The configuration with defaults applied.
//   - An error if the file exists but cannot be read or parsed.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(cfg)

	return cfg, nil
}

// ApplyOverrides copies every key explicitly set in v (flag or environment)
// onto cfg.
func ApplyOverrides(cfg *Config, v *viper.Viper) {
	if v == nil {
		return
	}
	if v.IsSet(KeyOutputFile) {
		cfg.OutputFile = v.GetString(KeyOutputFile)
	}
	if v.IsSet(KeyLotSize) {
		cfg.LotSize = v.GetInt(KeyLotSize)
	}
	if v.IsSet(KeyDelimiter) {
		cfg.Delimiter = v.GetString(KeyDelimiter)
	}
	if v.IsSet(KeyFloatPrecision) {
		p := v.GetInt(KeyFloatPrecision)
		cfg.FloatPrecision = &p
	}
	if v.IsSet(KeyLogLevel) {
		cfg.LogLevel = v.GetString(KeyLogLevel)
	}
	if v.IsSet(KeyLogFormat) {
		cfg.LogFormat = v.GetString(KeyLogFormat)
	}
	if v.IsSet(KeyXLSXSheet) {
		cfg.XLSXSheet = v.GetString(KeyXLSXSheet)
	}
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.OutputFile == "" {
		cfg.OutputFile = "output.xml"
	}
	if cfg.LotSize == 0 {
		cfg.LotSize = types.DefaultLotSize
	}
	if cfg.Delimiter == "" {
		cfg.Delimiter = ","
	}
	if cfg.FloatPrecision == nil {
		p := -1
		cfg.FloatPrecision = &p
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = logger.FormatConsole
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for values the pipeline cannot use.
func (c *Config) Validate() error {
	var problems []error

	if c.LotSize <= 0 {
		problems = append(problems, fmt.Errorf("lot_size must be positive, got %d", c.LotSize))
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		problems = append(problems, fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter))
	}
	if c.FloatPrecision != nil && *c.FloatPrecision < -1 {
		problems = append(problems, fmt.Errorf("float_precision must be -1 or greater, got %d", *c.FloatPrecision))
	}
	if !logger.ValidFormat(c.LogFormat) {
		problems = append(problems, fmt.Errorf("log_format must be %q or %q, got %q", logger.FormatConsole, logger.FormatJSON, c.LogFormat))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(problems...))
	}
	return nil
}

// DelimiterRune returns the delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// Precision returns the float precision, -1 when unset.
func (c *Config) Precision() int {
	if c.FloatPrecision == nil {
		return -1
	}
	return *c.FloatPrecision
}
