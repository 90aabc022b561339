package config

// ClientConfig defines configuration for the WhatCMS API client
type ClientConfig struct {
	APIKey           string  `json:"api_key,omitempty" yaml:"api_key,omitempty" validate:"required"`
	BaseURL          string  `json:"base_url,omitempty" yaml:"base_url,omitempty" validate:"omitempty,url"`
	RateLimitSeconds float64 `json:"rate_limit_seconds,omitempty" yaml:"rate_limit_seconds,omitempty" validate:"gte=0"`
	TimeoutSeconds   int     `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" validate:"gte=0"`
	UserAgent        string  `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
}

// NewDefaultClientConfig creates default client configuration. The API key has
// no default and must come from the config file or the WHATCMS_API_KEY
// environment variable.
func NewDefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL:          DefaultClientBaseURL,
		RateLimitSeconds: DefaultClientRateLimitSeconds,
		TimeoutSeconds:   DefaultClientTimeoutSeconds,
		UserAgent:        DefaultClientUserAgent,
	}
}
