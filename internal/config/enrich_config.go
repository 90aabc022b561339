package config

// EnrichConfig defines configuration for the enrichment workflow
type EnrichConfig struct {
	InputFile  string `json:"input_file,omitempty" yaml:"input_file,omitempty"`
	OutputFile string `json:"output_file,omitempty" yaml:"output_file,omitempty"`
	SheetName  string `json:"sheet_name,omitempty" yaml:"sheet_name,omitempty"`
	URLColumn  string `json:"url_column,omitempty" yaml:"url_column,omitempty"`
}

// NewDefaultEnrichConfig creates default enrichment configuration
func NewDefaultEnrichConfig() EnrichConfig {
	return EnrichConfig{
		SheetName: DefaultEnrichSheetName,
		URLColumn: DefaultEnrichURLColumn,
	}
}
