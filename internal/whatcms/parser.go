package whatcms

import (
	"encoding/json"
	"fmt"
	"strings"

	"cmsenrich/internal/models"
)

// apiResponse mirrors the WhatCMS Tech endpoint payload
type apiResponse struct {
	Request string          `json:"request"`
	Result  json.RawMessage `json:"result"`
	Results []apiTechnology `json:"results"`
}

// apiResult is the top-level result code and message
type apiResult struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// apiTechnology is one detected-technology entry with its category labels
type apiTechnology struct {
	Name       string   `json:"name"`
	Version    string   `json:"version"`
	Categories []string `json:"categories"`
}

// parseResponse maps a successful HTTP exchange's JSON body into a TechResult.
// A malformed body resolves into a parse-error status rather than an error.
func parseResponse(sourceURL string, body []byte) *models.TechResult {
	result := models.NewTechResult(sourceURL)

	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		result.ResponseStatus = fmt.Sprintf("Parse error: %v", err)
		return result
	}

	result.DetailLink = payload.Request

	if len(payload.Result) == 0 {
		result.ResponseStatus = "Parse error: missing result field"
		return result
	}

	var topLevel apiResult
	if err := json.Unmarshal(payload.Result, &topLevel); err != nil {
		// The provider occasionally returns a bare value here; surface it as-is
		result.ResponseStatus = strings.Trim(string(payload.Result), `"`)
		return result
	}
	result.ResponseStatus = fmt.Sprintf("%d - %s", topLevel.Code, topLevel.Msg)

	for _, entry := range payload.Results {
		if entry.Name == "" {
			continue
		}
		result.AppendTechnology(models.CategoryFromLabels(entry.Categories), technologyString(entry))
	}

	return result
}

// technologyString combines an entry's name and optional version into the
// flattened form "<name> <version>", version omitted when absent.
func technologyString(entry apiTechnology) string {
	if entry.Version == "" {
		return entry.Name
	}
	return entry.Name + " " + entry.Version
}
