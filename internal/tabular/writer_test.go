package tabular

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"cmsenrich/internal/common"

	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTable() *Table {
	table := NewTable([]string{"url", "whatcms_response"})
	table.AppendRow([]string{"acme.com", "200 - Success"})
	table.AppendRow([]string{"globex.com", "Error: timeout"})
	return table
}

func TestWriteCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "enriched.csv")

	require.NoError(t, NewWriter(zerolog.Nop()).Write(sampleTable(), path))

	table, err := NewReader(zerolog.Nop()).Read(path, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"url", "whatcms_response"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"acme.com", "200 - Success"}, table.Rows[0])
	assert.Equal(t, []string{"globex.com", "Error: timeout"}, table.Rows[1])
}

func TestWriteCSVCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c", "enriched.csv")

	require.NoError(t, NewWriter(zerolog.Nop()).Write(sampleTable(), path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteXLSXRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enriched.xlsx")

	require.NoError(t, NewWriter(zerolog.Nop()).Write(sampleTable(), path))

	file, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows(outputSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"url", "whatcms_response"}, rows[0])
	assert.Equal(t, []string{"acme.com", "200 - Success"}, rows[1])
}

func TestWriteParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enriched.parquet")

	require.NoError(t, NewWriter(zerolog.Nop()).Write(sampleTable(), path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewReader(file)
	defer reader.Close()

	var rows []map[string]any
	for {
		row := map[string]any{}
		if err := reader.Read(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			require.NoError(t, err)
		}
		rows = append(rows, row)
	}

	require.Len(t, rows, 2)
	assert.Equal(t, "acme.com", fmt.Sprintf("%s", rows[0]["url"]))
	assert.Equal(t, "Error: timeout", fmt.Sprintf("%s", rows[1]["whatcms_response"]))
}

func TestWriteUnsupportedExtension(t *testing.T) {
	err := NewWriter(zerolog.Nop()).Write(sampleTable(), filepath.Join(t.TempDir(), "enriched.tsv"))

	var outputErr *common.OutputError
	assert.True(t, errors.As(err, &outputErr))
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
}

func TestWriteUnwritableDestination(t *testing.T) {
	dir := t.TempDir()
	// A directory at the destination path makes os.Create fail
	blocked := filepath.Join(dir, "enriched.csv")
	require.NoError(t, os.Mkdir(blocked, 0755))

	err := NewWriter(zerolog.Nop()).Write(sampleTable(), blocked)

	var outputErr *common.OutputError
	assert.True(t, errors.As(err, &outputErr))
}
