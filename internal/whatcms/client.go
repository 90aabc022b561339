package whatcms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"cmsenrich/internal/config"
	"cmsenrich/internal/httpclient"
	"cmsenrich/internal/models"

	"github.com/rs/zerolog"
)

// Client queries the WhatCMS Tech endpoint for one URL at a time under a
// fixed-delay rate limit. Every outcome, including transport failures,
// resolves into a TechResult; Fetch never returns an error.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *httpclient.HTTPClient
	throttle   *throttle
	logger     zerolog.Logger
}

// NewClient creates a WhatCMS client from the client configuration
func NewClient(cfg config.ClientConfig, logger zerolog.Logger) (*Client, error) {
	componentLogger := logger.With().Str("component", "WhatCMSClient").Logger()

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultClientBaseURL
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if cfg.TimeoutSeconds <= 0 {
		timeout = time.Duration(config.DefaultClientTimeoutSeconds) * time.Second
	}

	httpClient, err := httpclient.NewHTTPClientBuilder(componentLogger).
		WithTimeout(timeout).
		WithUserAgent(cfg.UserAgent).
		Build()
	if err != nil {
		return nil, err
	}

	delay := time.Duration(cfg.RateLimitSeconds * float64(time.Second))

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		throttle:   newThrottle(delay),
		logger:     componentLogger,
	}, nil
}

// Fetch queries the API for one URL. No local validation is performed on the
// target; malformed values are sent as-is and the provider's own status is
// surfaced in the result.
func (c *Client) Fetch(ctx context.Context, targetURL string) *models.TechResult {
	result := models.NewTechResult(targetURL)

	if err := c.throttle.Wait(ctx); err != nil {
		result.ResponseStatus = fmt.Sprintf("Error: %v", err)
		return result
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("url", targetURL)

	resp, err := c.httpClient.Get(ctx, c.baseURL, params)
	if err != nil {
		c.logger.Error().Err(err).Str("url", targetURL).Msg("WhatCMS request failed")
		result.ResponseStatus = fmt.Sprintf("Error: %v", err)
		return result
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status_code", resp.StatusCode).Str("url", targetURL).Msg("WhatCMS returned non-OK status")
		result.ResponseStatus = fmt.Sprintf("Error: %d", resp.StatusCode)
		return result
	}

	return parseResponse(targetURL, resp.Body)
}
