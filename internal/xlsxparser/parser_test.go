package xlsxparser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "trades.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadLines_FirstSheet(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]interface{}{
		{"EURUSD", 1000, 1.5},
		{"GBPJPY", "abc", 150.25},
	})

	lines, err := ReadLines(path, "", ',')
	require.NoError(t, err)
	assert.Equal(t, []string{"EURUSD,1000,1.5", "GBPJPY,abc,150.25"}, lines)
}

func TestReadLines_NamedSheetAndDelimiter(t *testing.T) {
	path := writeWorkbook(t, "Trades", [][]interface{}{
		{"USDCHF", 500, 0.91},
	})

	lines, err := ReadLines(path, "Trades", ';')
	require.NoError(t, err)
	assert.Equal(t, []string{"USDCHF;500;0.91"}, lines)
}

func TestReadLines_Errors(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "missing.xlsx"), "", ',')
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open workbook")

	path := writeWorkbook(t, "Sheet1", [][]interface{}{{"EURUSD", 1, 1}})
	_, err = ReadLines(path, "Nope", ',')
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
