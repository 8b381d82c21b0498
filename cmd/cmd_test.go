package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// useConfig points the command globals at a config file in a temp dir and
// restores them afterwards.
func useConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if body != "" {
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	}

	oldCfg, oldInput, oldDry, oldVerbose := cfgFile, inputPath, dryRun, verbose
	t.Cleanup(func() {
		cfgFile, inputPath, dryRun, verbose = oldCfg, oldInput, oldDry, oldVerbose
	})
	cfgFile, inputPath, dryRun, verbose = path, "", false, false
	return dir
}

func outputLines(buf *bytes.Buffer) []string {
	var lines []string
	for _, l := range strings.Split(buf.String(), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func TestRunProcess_Stdin(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "trades.xml")
	useConfig(t, "output_file: "+out+"\n")

	var buf bytes.Buffer
	err := runProcess(strings.NewReader("EURUSD,1000,1.5\nEURU,1,1\n"), &buf)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"WARN: Trade currencies on line 2 malformed: 'EURU'",
		"INFO: 1 trades processed",
	}, outputLines(&buf))
	assert.FileExists(t, out)
}

func TestRunProcess_InputFile(t *testing.T) {
	dir := useConfig(t, "")
	out := filepath.Join(dir, "result.xml")
	in := filepath.Join(dir, "trades.txt")
	require.NoError(t, os.WriteFile(in, []byte("GBPUSD,2000,1.25\n"), 0o600))

	t.Setenv("TRADEPROC_OUTPUT_FILE", out)
	inputPath = in

	var buf bytes.Buffer
	require.NoError(t, runProcess(strings.NewReader(""), &buf))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<Lots>2</Lots>")
	assert.Contains(t, string(data), "<Price>1.25</Price>")
}

func TestRunProcess_EnvLotSize(t *testing.T) {
	dir := useConfig(t, "")
	out := filepath.Join(dir, "output.xml")
	t.Setenv("TRADEPROC_OUTPUT_FILE", out)
	t.Setenv("TRADEPROC_LOT_SIZE", "100")

	var buf bytes.Buffer
	require.NoError(t, runProcess(strings.NewReader("EURUSD,250,1.5\n"), &buf))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<Lots>2.5</Lots>")
}

func TestRunProcess_Workbook(t *testing.T) {
	dir := useConfig(t, "")
	out := filepath.Join(dir, "output.xml")
	t.Setenv("TRADEPROC_OUTPUT_FILE", out)

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"USDJPY", 3000, 150.5}))
	book := filepath.Join(dir, "trades.xlsx")
	require.NoError(t, f.SaveAs(book))
	require.NoError(t, f.Close())
	inputPath = book

	var buf bytes.Buffer
	require.NoError(t, runProcess(strings.NewReader(""), &buf))
	assert.Equal(t, []string{"INFO: 1 trades processed"}, outputLines(&buf))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<SourceCurrency>USD</SourceCurrency>")
	assert.Contains(t, string(data), "<Lots>3</Lots>")
}

func TestRunProcess_DryRun(t *testing.T) {
	dir := useConfig(t, "")
	out := filepath.Join(dir, "output.xml")
	t.Setenv("TRADEPROC_OUTPUT_FILE", out)
	dryRun = true

	var buf bytes.Buffer
	require.NoError(t, runProcess(strings.NewReader("EURUSD,1000,1.5\n"), &buf))
	assert.NoFileExists(t, out)
	assert.Equal(t, []string{"INFO: 1 trades processed"}, outputLines(&buf))
}

func TestRunProcess_Errors(t *testing.T) {
	t.Run("missing input", func(t *testing.T) {
		dir := useConfig(t, "")
		inputPath = filepath.Join(dir, "nope.txt")

		err := runProcess(strings.NewReader(""), &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open input")
	})

	t.Run("invalid config", func(t *testing.T) {
		useConfig(t, "lot_size: -5\n")

		err := runProcess(strings.NewReader(""), &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lot_size must be positive")
	})

	t.Run("unparseable config", func(t *testing.T) {
		useConfig(t, "lot_size: [\n")

		err := runProcess(strings.NewReader(""), &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
	})
}

func TestValidateCommand(t *testing.T) {
	useConfig(t, "lot_size: 500\ndelimiter: \";\"\n")

	var buf bytes.Buffer
	validateCmd.SetOut(&buf)
	t.Cleanup(func() { validateCmd.SetOut(nil) })

	require.NoError(t, validateCmd.RunE(validateCmd, nil))
	assert.Contains(t, buf.String(), "Configuration OK")
	assert.Contains(t, buf.String(), "lot_size: 500")
	assert.Contains(t, buf.String(), "output_file: output.xml")
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	versionCmd.Run(versionCmd, nil)
	assert.True(t, strings.HasPrefix(buf.String(), "Trade Processor\nVersion:    "+Version+"\n"))
}
