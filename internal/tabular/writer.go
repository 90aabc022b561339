package tabular

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"cmsenrich/internal/common"

	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// outputSheetName is the sheet written to spreadsheet output files
const outputSheetName = "Sheet1"

// Writer persists tables to disk, dispatching on the file extension. Missing
// parent directories are created before writing.
type Writer struct {
	logger      zerolog.Logger
	fileManager *common.FileManager
}

// NewWriter creates a new tabular writer
func NewWriter(logger zerolog.Logger) *Writer {
	componentLogger := logger.With().Str("component", "TabularWriter").Logger()
	return &Writer{
		logger:      componentLogger,
		fileManager: common.NewFileManager(componentLogger),
	}
}

// Write persists the table to path. Any failure resolves to an OutputError.
func (w *Writer) Write(table *Table, path string) error {
	if err := w.fileManager.EnsureParentDirectory(path, 0755); err != nil {
		return common.NewOutputError(path, "failed to create output directory", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return w.writeCSV(table, path)
	case ".xlsx":
		return w.writeXLSX(table, path)
	case ".parquet":
		return w.writeParquet(table, path)
	default:
		return common.NewOutputError(path, "unsupported output format", common.ErrUnsupportedFormat)
	}
}

func (w *Writer) writeCSV(table *Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return common.NewOutputError(path, "failed to create output file", err)
	}
	defer file.Close()

	csvWriter := csv.NewWriter(file)
	if err := csvWriter.Write(table.Headers); err != nil {
		return common.NewOutputError(path, "failed to write header row", err)
	}
	if err := csvWriter.WriteAll(table.Rows); err != nil {
		return common.NewOutputError(path, "failed to write data rows", err)
	}
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return common.NewOutputError(path, "failed to flush output file", err)
	}

	w.logger.Info().Str("file", path).Int("rows", len(table.Rows)).Msg("Wrote CSV output")
	return nil
}

func (w *Writer) writeXLSX(table *Table, path string) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := w.setSheetRow(file, 1, table.Headers); err != nil {
		return common.NewOutputError(path, "failed to write header row", err)
	}
	for i, row := range table.Rows {
		if err := w.setSheetRow(file, i+2, row); err != nil {
			return common.NewOutputError(path, "failed to write data row", err)
		}
	}

	if err := file.SaveAs(path); err != nil {
		return common.NewOutputError(path, "failed to save spreadsheet", err)
	}

	w.logger.Info().Str("file", path).Int("rows", len(table.Rows)).Msg("Wrote spreadsheet output")
	return nil
}

func (w *Writer) setSheetRow(file *excelize.File, rowNumber int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNumber)
	if err != nil {
		return err
	}
	return file.SetSheetRow(outputSheetName, cell, &values)
}

func (w *Writer) writeParquet(table *Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return common.NewOutputError(path, "failed to create output file", err)
	}
	defer file.Close()

	// The column set is only known at runtime, so the schema is built
	// dynamically with one optional string leaf per header.
	group := parquet.Group{}
	for _, header := range table.Headers {
		group[header] = parquet.Optional(parquet.String())
	}
	schema := parquet.NewSchema("enriched_urls", group)

	writer := parquet.NewGenericWriter[map[string]any](file, schema, parquet.Compression(&parquet.Zstd))

	records := make([]map[string]any, 0, len(table.Rows))
	for _, row := range table.Rows {
		record := make(map[string]any, len(table.Headers))
		for i, header := range table.Headers {
			if i < len(row) {
				record[header] = row[i]
			}
		}
		records = append(records, record)
	}

	if _, err := writer.Write(records); err != nil {
		return common.NewOutputError(path, "failed to write parquet records", err)
	}
	if err := writer.Close(); err != nil {
		return common.NewOutputError(path, "failed to finalize parquet file", err)
	}

	w.logger.Info().Str("file", path).Int("rows", len(table.Rows)).Msg("Wrote parquet output")
	return nil
}
