// =============================================================================
// Trade Processor - XLSX Input Module
// =============================================================================
//
// This module reads trade rows from an Excel workbook so a spreadsheet can be
// processed exactly like a text stream.
//
// LAYOUT:
//   One trade per row, no header row:
//
//   |   A    |  B   |  C  |
//   | EURUSD | 1000 | 1.5 |
//   | GBPJPY | 2500 | 150 |
//
// Each row becomes one line: its cells joined with the delimiter. Row N of
// the sheet is line N of the input, so warnings point at the right row.
// Empty rows are kept and rejected like any empty line.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// =============================================================================
// READING
// =============================================================================

// ReadLines reads a sheet of an XLSX workbook as delimited lines.
//
// PARAMETERS:
//   - path: The path to the XLSX file.
//   - sheet: The sheet name. Empty selects the first sheet.
//   - delim: The delimiter placed between cells.
//
// RETURNS:
//   - One line per row, in sheet order.
//   - An error if the file or sheet cannot be read.
func ReadLines(path, sheet string, delim rune) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, fmt.Errorf("workbook has no sheets")
		}
	}

	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found in %s", sheet, path)
	}

	// Raw values keep numbers free of display formatting such as "1,000".
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, string(delim))
	}

	return lines, nil
}
