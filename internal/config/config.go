package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"cmsenrich/internal/common"

	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	ClientConfig ClientConfig `json:"client_config,omitempty" yaml:"client_config,omitempty"`
	EnrichConfig EnrichConfig `json:"enrich_config,omitempty" yaml:"enrich_config,omitempty"`
	LogConfig    LogConfig    `json:"log_config,omitempty" yaml:"log_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		ClientConfig: NewDefaultClientConfig(),
		EnrichConfig: NewDefaultEnrichConfig(),
		LogConfig:    NewDefaultLogConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath and supports both
// JSON and YAML formats. The WHATCMS_API_KEY environment variable, when set,
// overrides the api_key from the file so the secret can stay out of it.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, common.WrapError(err, "failed to read config file: "+filePath)
		}
		if err := parseConfigContent(data, filePath, cfg); err != nil {
			return nil, err
		}
	} else if providedPath != "" {
		return nil, common.NewValidationError("config_file", providedPath, "config file does not exist")
	}

	if key := os.Getenv(EnvAPIKey); key != "" {
		cfg.ClientConfig.APIKey = key
	}

	return cfg, nil
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := filepath.Ext(filePath)
	if isYAMLFile(ext) {
		return parseYAMLConfig(data, filePath, cfg)
	}
	return parseJSONConfig(data, filePath, cfg)
}

// isYAMLFile checks if the file extension indicates a YAML file
func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

func parseYAMLConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return common.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
	}
	return nil
}

func parseJSONConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := json.Unmarshal(data, cfg); err != nil {
		return common.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}
