package models

import "time"

// EnrichmentSummary aggregates the outcome of one enrichment run
type EnrichmentSummary struct {
	InputFile     string        `json:"input_file"`
	OutputFile    string        `json:"output_file"`
	TotalRows     int           `json:"total_rows"`
	SucceededRows int           `json:"succeeded_rows"`
	FailedRows    int           `json:"failed_rows"`
	Duration      time.Duration `json:"duration"`
}
