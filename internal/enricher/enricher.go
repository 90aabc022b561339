package enricher

import (
	"context"
	"fmt"
	"time"

	"cmsenrich/internal/common"
	"cmsenrich/internal/config"
	"cmsenrich/internal/models"
	"cmsenrich/internal/tabular"

	"github.com/rs/zerolog"
)

// TechFetcher resolves one URL into a TechResult. The result is never nil:
// lookup failures are resolved into the result's response status instead of
// being returned as errors.
type TechFetcher interface {
	Fetch(ctx context.Context, targetURL string) *models.TechResult
}

// Enricher orchestrates the complete enrichment workflow: reading the input
// table, fetching technology data for every row, and writing the widened
// table back out in a single pass at the end.
type Enricher struct {
	config  config.EnrichConfig
	fetcher TechFetcher
	reader  *tabular.Reader
	writer  *tabular.Writer
	logger  zerolog.Logger
}

// NewEnricher creates an Enricher with all required dependencies.
func NewEnricher(
	cfg config.EnrichConfig,
	fetcher TechFetcher,
	logger zerolog.Logger,
) *Enricher {
	return &Enricher{
		config:  cfg,
		fetcher: fetcher,
		reader:  tabular.NewReader(logger),
		writer:  tabular.NewWriter(logger),
		logger:  logger.With().Str("module", "Enricher").Logger(),
	}
}

// Run executes one enrichment batch. The input table is validated before any
// network call is made, every data row is processed in order, and the output
// file is written exactly once after the last row. A mid-batch cancellation
// aborts the run without producing an output file.
func (e *Enricher) Run(ctx context.Context) (*models.EnrichmentSummary, error) {
	startTime := time.Now()

	table, urlIndex, err := e.loadInput()
	if err != nil {
		return nil, err
	}

	e.logger.Info().
		Str("input_file", e.config.InputFile).
		Int("total_rows", len(table.Rows)).
		Msg("Starting enrichment batch")

	summary := &models.EnrichmentSummary{
		InputFile:  e.config.InputFile,
		OutputFile: e.config.OutputFile,
		TotalRows:  len(table.Rows),
	}

	enrichmentValues := make([][]string, 0, len(table.Rows))
	for rowIndex, row := range table.Rows {
		if ctx.Err() != nil {
			return nil, common.WrapError(ctx.Err(), "enrichment batch cancelled")
		}

		result := e.enrichRow(ctx, rowIndex, len(table.Rows), row[urlIndex])
		if result.Succeeded() {
			summary.SucceededRows++
		} else {
			summary.FailedRows++
		}
		enrichmentValues = append(enrichmentValues, result.Flatten())
	}

	if err := table.AppendColumns(models.EnrichmentColumns, enrichmentValues); err != nil {
		return nil, common.WrapError(err, "failed to append enrichment columns")
	}

	if err := e.writer.Write(table, e.config.OutputFile); err != nil {
		return nil, err
	}

	summary.Duration = time.Since(startTime)
	e.logSummary(summary)
	return summary, nil
}

// loadInput reads the input table and locates the URL column. All failures
// here happen before the first network call.
func (e *Enricher) loadInput() (*tabular.Table, int, error) {
	table, err := e.reader.Read(e.config.InputFile, e.config.SheetName)
	if err != nil {
		return nil, 0, err
	}

	urlIndex, found := table.ColumnIndex(e.config.URLColumn)
	if !found {
		return nil, 0, common.NewConfigurationErrorWithCause(
			"enrich_config",
			"url_column",
			fmt.Sprintf("required column %q not found in input header of %s", e.config.URLColumn, e.config.InputFile),
			common.ErrMissingColumn,
		)
	}

	return table, urlIndex, nil
}

// enrichRow fetches one row's URL and logs the per-row outcome. Empty URL
// cells are still sent to the fetcher so the provider's own error status ends
// up in the output, matching the treatment of any other unresolvable URL.
func (e *Enricher) enrichRow(ctx context.Context, rowIndex, totalRows int, targetURL string) *models.TechResult {
	e.logger.Info().
		Int("row", rowIndex+1).
		Int("total", totalRows).
		Str("url", targetURL).
		Msg("Enriching URL")

	result := e.fetcher.Fetch(ctx, targetURL)

	event := e.logger.Debug()
	if !result.Succeeded() {
		event = e.logger.Warn()
	}
	event.
		Str("url", targetURL).
		Str("status", result.ResponseStatus).
		Bool("has_technologies", result.HasTechnologies()).
		Msg("Row enriched")

	return result
}

func (e *Enricher) logSummary(summary *models.EnrichmentSummary) {
	e.logger.Info().
		Str("output_file", summary.OutputFile).
		Int("total_rows", summary.TotalRows).
		Int("succeeded_rows", summary.SucceededRows).
		Int("failed_rows", summary.FailedRows).
		Dur("duration", summary.Duration).
		Msg("Enrichment batch completed")
}
