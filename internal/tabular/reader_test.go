package tabular

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cmsenrich/internal/common"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func writeTempXLSX(t *testing.T, sheet string, rows [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.xlsx")

	file := excelize.NewFile()
	defer file.Close()
	_, err := file.NewSheet(sheet)
	require.NoError(t, err)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, file.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, file.SaveAs(path))
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeTempCSV(t, "company,url\nAcme,acme.com\nGlobex,globex.com\n")

	table, err := NewReader(zerolog.Nop()).Read(path, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"company", "url"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Acme", "acme.com"}, table.Rows[0])
	assert.Equal(t, []string{"Globex", "globex.com"}, table.Rows[1])
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := NewReader(zerolog.Nop()).Read(filepath.Join(t.TempDir(), "missing.csv"), "")

	var inputErr *common.InputError
	assert.True(t, errors.As(err, &inputErr))
}

func TestReadCSVEmptyFile(t *testing.T) {
	path := writeTempCSV(t, "")

	_, err := NewReader(zerolog.Nop()).Read(path, "")
	assert.Error(t, err)
}

func TestReadXLSX(t *testing.T) {
	path := writeTempXLSX(t, "WHATCMS INPUT", [][]string{
		{"url", "owner"},
		{"acme.com", "alice"},
	})

	table, err := NewReader(zerolog.Nop()).Read(path, "WHATCMS INPUT")
	require.NoError(t, err)

	assert.Equal(t, []string{"url", "owner"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"acme.com", "alice"}, table.Rows[0])
}

func TestReadXLSXMissingSheetName(t *testing.T) {
	path := writeTempXLSX(t, "WHATCMS INPUT", [][]string{{"url"}})

	_, err := NewReader(zerolog.Nop()).Read(path, "")

	var cfgErr *common.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestReadXLSXSheetNotFound(t *testing.T) {
	path := writeTempXLSX(t, "WHATCMS INPUT", [][]string{{"url"}})

	_, err := NewReader(zerolog.Nop()).Read(path, "OTHER SHEET")

	var cfgErr *common.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestReadUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("url\nacme.com\n"), 0644))

	_, err := NewReader(zerolog.Nop()).Read(path, "")
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
}
