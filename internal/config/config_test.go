package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.Equal(t, DefaultClientBaseURL, cfg.ClientConfig.BaseURL)
	assert.Equal(t, DefaultClientRateLimitSeconds, cfg.ClientConfig.RateLimitSeconds)
	assert.Equal(t, DefaultEnrichSheetName, cfg.EnrichConfig.SheetName)
	assert.Equal(t, DefaultEnrichURLColumn, cfg.EnrichConfig.URLColumn)
	assert.Equal(t, DefaultLogLevel, cfg.LogConfig.LogLevel)
	assert.Empty(t, cfg.ClientConfig.APIKey, "api key must have no default")
}

func TestLoadGlobalConfigYAML(t *testing.T) {
	content := `
client_config:
  api_key: "test-key"
  rate_limit_seconds: 2.5
enrich_config:
  input_file: "urls.csv"
  output_file: "out/enriched.csv"
log_config:
  log_level: "debug"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadGlobalConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.ClientConfig.APIKey)
	assert.Equal(t, 2.5, cfg.ClientConfig.RateLimitSeconds)
	assert.Equal(t, "urls.csv", cfg.EnrichConfig.InputFile)
	assert.Equal(t, "out/enriched.csv", cfg.EnrichConfig.OutputFile)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
	// Unset fields keep their defaults
	assert.Equal(t, DefaultClientBaseURL, cfg.ClientConfig.BaseURL)
	assert.Equal(t, DefaultEnrichSheetName, cfg.EnrichConfig.SheetName)
}

func TestLoadGlobalConfigJSON(t *testing.T) {
	content := `{"client_config": {"api_key": "json-key", "timeout_seconds": 15}}`
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadGlobalConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "json-key", cfg.ClientConfig.APIKey)
	assert.Equal(t, 15, cfg.ClientConfig.TimeoutSeconds)
}

func TestLoadGlobalConfigEnvOverridesAPIKey(t *testing.T) {
	content := `client_config: {api_key: "file-key"}`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv(EnvAPIKey, "env-key")

	cfg, err := LoadGlobalConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.ClientConfig.APIKey)
}

func TestLoadGlobalConfigMissingProvidedPath(t *testing.T) {
	_, err := LoadGlobalConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadGlobalConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("client_config: ["), 0644))

	_, err := LoadGlobalConfig(path)
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(cfg *GlobalConfig)
		expectErr bool
	}{
		{
			name:      "valid config",
			mutate:    func(cfg *GlobalConfig) { cfg.ClientConfig.APIKey = "key" },
			expectErr: false,
		},
		{
			name:      "missing api key",
			mutate:    func(cfg *GlobalConfig) {},
			expectErr: true,
		},
		{
			name: "negative rate limit",
			mutate: func(cfg *GlobalConfig) {
				cfg.ClientConfig.APIKey = "key"
				cfg.ClientConfig.RateLimitSeconds = -1
			},
			expectErr: true,
		},
		{
			name: "bad log level",
			mutate: func(cfg *GlobalConfig) {
				cfg.ClientConfig.APIKey = "key"
				cfg.LogConfig.LogLevel = "verbose"
			},
			expectErr: true,
		},
		{
			name: "bad log format",
			mutate: func(cfg *GlobalConfig) {
				cfg.ClientConfig.APIKey = "key"
				cfg.LogConfig.LogFormat = "xml"
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultGlobalConfig()
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
