// =============================================================================
// Trade Processor - File Utilities
// =============================================================================
//
// This module provides file helpers for the processor:
//   - Output file name expansion ({uuid}, {timestamp}, {date}, {time})
//   - Output directory creation
//   - Small file predicates
//
// A name without placeholders is returned unchanged, so the default
// "output.xml" is written to the same path on every run.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// ExpandOutputPath replaces placeholders in an output path.
//
// PARAMETERS:
//   - format: The path, optionally containing placeholders:
//               {uuid}      - A random UUID
//               {timestamp} - Timestamp (YYYYMMDD_HHMMSS)
//               {date}      - Date (YYYYMMDD)
//               {time}      - Time (HHMMSS)
//   - now: The time used for date placeholders.
//
// RETURNS:
//   - The expanded path.
//
// EXAMPLE:
//   format: "out/trades_{timestamp}_{uuid}.xml"
//   output: "out/trades_20240115_143022_a1b2c3d4-e5f6-7890-abcd-ef1234567890.xml"
func ExpandOutputPath(format string, now time.Time) string {
	if !strings.Contains(format, "{") {
		return format
	}

	replacer := strings.NewReplacer(
		"{timestamp}", now.Format("20060102_150405"),
		"{date}", now.Format("20060102"),
		"{time}", now.Format("150405"),
	)
	result := replacer.Replace(format)

	// Each {uuid} gets its own value.
	for strings.Contains(result, "{uuid}") {
		result = strings.Replace(result, "{uuid}", uuid.New().String(), 1)
	}

	return result
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// HasExtension reports whether path ends in ext, ignoring case.
func HasExtension(path, ext string) bool {
	return strings.EqualFold(filepath.Ext(path), ext)
}
