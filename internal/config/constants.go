package config

const (
	// Client Defaults
	DefaultClientBaseURL          = "https://whatcms.org/API/Tech"
	DefaultClientRateLimitSeconds = 10.0
	DefaultClientTimeoutSeconds   = 30
	DefaultClientUserAgent        = "cmsenrich/1.0"

	// Enrich Defaults
	DefaultEnrichSheetName = "WHATCMS INPUT"
	DefaultEnrichURLColumn = "url"

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Environment variables
	EnvConfigPath = "CMSENRICH_CONFIG_PATH"
	EnvAPIKey     = "WHATCMS_API_KEY"
)
