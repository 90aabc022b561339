package tabular

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"strings"

	"cmsenrich/internal/common"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// maxInputFileSize caps how large an input table may be; everything is held
// in memory for the duration of a run.
const maxInputFileSize = 100 * 1024 * 1024

// Reader loads tabular input files, dispatching on the file extension
type Reader struct {
	logger      zerolog.Logger
	fileManager *common.FileManager
}

// NewReader creates a new tabular reader
func NewReader(logger zerolog.Logger) *Reader {
	componentLogger := logger.With().Str("component", "TabularReader").Logger()
	return &Reader{
		logger:      componentLogger,
		fileManager: common.NewFileManager(componentLogger),
	}
}

// Read loads the table at path. Spreadsheet input requires a sheet name;
// delimited input ignores it. A missing or unreadable file resolves to an
// InputError, an unknown extension to an unsupported-format InputError.
func (r *Reader) Read(path string, sheetName string) (*Table, error) {
	if !r.fileManager.FileExists(path) {
		return nil, common.NewInputError(path, "input file does not exist", nil)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return r.readCSV(path)
	case ".xlsx":
		return r.readXLSX(path, sheetName)
	default:
		return nil, common.NewInputError(path, "unsupported input format", common.ErrUnsupportedFormat)
	}
}

func (r *Reader) readCSV(path string) (*Table, error) {
	data, err := r.fileManager.ReadFile(path, common.FileReadOptions{MaxSize: maxInputFileSize})
	if err != nil {
		return nil, common.NewInputError(path, "failed to read input file", err)
	}

	csvReader := csv.NewReader(bytes.NewReader(data))
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, common.NewInputError(path, "failed to parse CSV", err)
	}
	if len(records) == 0 {
		return nil, common.NewInputError(path, "input file has no header row", nil)
	}

	table := NewTable(records[0])
	for _, record := range records[1:] {
		table.AppendRow(record)
	}

	r.logger.Info().Str("file", path).Int("rows", len(table.Rows)).Msg("Loaded CSV input")
	return table, nil
}

func (r *Reader) readXLSX(path string, sheetName string) (*Table, error) {
	if sheetName == "" {
		return nil, common.NewConfigurationError("enrich_config", "sheet_name", "sheet name is required for spreadsheet input")
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, common.NewInputError(path, "failed to open spreadsheet", err)
	}
	defer file.Close()

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, common.NewConfigurationError("enrich_config", "sheet_name", "sheet '"+sheetName+"' not found in "+path)
	}
	if len(rows) == 0 {
		return nil, common.NewInputError(path, "sheet has no header row", nil)
	}

	table := NewTable(rows[0])
	for _, row := range rows[1:] {
		table.AppendRow(row)
	}

	r.logger.Info().Str("file", path).Str("sheet", sheetName).Int("rows", len(table.Rows)).Msg("Loaded spreadsheet input")
	return table, nil
}
