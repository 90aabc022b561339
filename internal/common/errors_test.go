package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name            string
		originalError   error
		message         string
		expectedMessage string
	}{
		{
			name:            "wrap simple error",
			originalError:   errors.New("original error"),
			message:         "wrapper message",
			expectedMessage: "wrapper message: original error",
		},
		{
			name:            "wrap sentinel error",
			originalError:   ErrUnsupportedFormat,
			message:         "reading table",
			expectedMessage: "reading table: unsupported file format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrappedError := WrapError(tt.originalError, tt.message)
			assert.Error(t, wrappedError)
			assert.Equal(t, tt.expectedMessage, wrappedError.Error())
		})
	}
}

func TestWrapErrorNil(t *testing.T) {
	assert.NoError(t, WrapError(nil, "message"))
	assert.NoError(t, WrapErrorf(nil, "message %d", 1))
}

func TestConfigurationError(t *testing.T) {
	tests := []struct {
		name            string
		section         string
		field           string
		reason          string
		expectedMessage string
	}{
		{
			name:            "section and field",
			section:         "enrich_config",
			field:           "url_column",
			reason:          "column not present in input",
			expectedMessage: "configuration error in section 'enrich_config', field 'url_column': column not present in input",
		},
		{
			name:            "section only",
			section:         "client_config",
			reason:          "api key is required",
			expectedMessage: "configuration error in section 'client_config': api key is required",
		},
		{
			name:            "reason only",
			reason:          "sheet name required for spreadsheet input",
			expectedMessage: "configuration error: sheet name required for spreadsheet input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewConfigurationError(tt.section, tt.field, tt.reason)
			assert.Equal(t, tt.expectedMessage, err.Error())
		})
	}
}

func TestConfigurationErrorWithCause(t *testing.T) {
	err := NewConfigurationErrorWithCause("enrich_config", "url_column", "column not present in input", ErrMissingColumn)

	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestInputErrorUnwrap(t *testing.T) {
	cause := errors.New("no such file")
	err := NewInputError("input.csv", "failed to open", cause)

	assert.Contains(t, err.Error(), "input.csv")
	assert.Contains(t, err.Error(), "failed to open")
	assert.ErrorIs(t, err, cause)
}

func TestOutputErrorUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewOutputError("out/result.xlsx", "failed to write", cause)

	assert.Contains(t, err.Error(), "out/result.xlsx")
	assert.ErrorIs(t, err, cause)
}

func TestNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkError("https://example.com", "request failed", cause)

	assert.Contains(t, err.Error(), "https://example.com")
	assert.Contains(t, err.Error(), "request failed")
	assert.ErrorIs(t, err, cause)

	bare := NewNetworkError("https://example.com", "timeout", nil)
	assert.Equal(t, "network error for 'https://example.com': timeout", bare.Error())
}
