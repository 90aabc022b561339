package models

import (
	"fmt"
	"strings"
)

// TechResult holds one URL's enrichment outcome. It is fully populated by the
// WhatCMS client before being handed to the enricher and never mutated
// afterward; the enricher only reads it when flattening to output columns.
type TechResult struct {
	SourceURL  string `json:"source_url"`
	DetailLink string `json:"whatcms_link,omitempty"`

	BlogCMS               []string `json:"blog_cms,omitempty"`
	EcommerceCMS          []string `json:"ecommerce_cms,omitempty"`
	ProgrammingLanguage   []string `json:"programming_language,omitempty"`
	Database              []string `json:"database,omitempty"`
	CDN                   []string `json:"cdn,omitempty"`
	WebServer             []string `json:"web_server,omitempty"`
	LandingPageBuilderCMS []string `json:"landing_page_builder_cms,omitempty"`
	OperatingSystem       []string `json:"operating_system,omitempty"`
	WebFramework          []string `json:"web_framework,omitempty"`
	Other                 []string `json:"other,omitempty"`

	// ResponseStatus is always set, even on local failure. It is the single
	// field a consumer checks to decide whether the category fields are
	// trustworthy.
	ResponseStatus string `json:"whatcms_response"`
}

// NewTechResult creates an empty result for the given source URL
func NewTechResult(sourceURL string) *TechResult {
	return &TechResult{SourceURL: sourceURL}
}

// EnrichmentColumns is the fixed order of the columns a TechResult contributes
// to the output table.
var EnrichmentColumns = []string{
	"whatcms_link",
	"Blog_CMS",
	"E-commerce_CMS",
	"Programming_Language",
	"Database",
	"CDN",
	"Web_Server",
	"Landing_Page_Builder_CMS",
	"Operating_System",
	"Web_Framework",
	"whatcms_response",
}

// AppendTechnology adds a technology string to the list field of the given
// category, preserving provider response order.
func (tr *TechResult) AppendTechnology(category Category, technology string) {
	switch category {
	case CategoryBlogCMS:
		tr.BlogCMS = append(tr.BlogCMS, technology)
	case CategoryEcommerceCMS:
		tr.EcommerceCMS = append(tr.EcommerceCMS, technology)
	case CategoryProgrammingLanguage:
		tr.ProgrammingLanguage = append(tr.ProgrammingLanguage, technology)
	case CategoryDatabase:
		tr.Database = append(tr.Database, technology)
	case CategoryCDN:
		tr.CDN = append(tr.CDN, technology)
	case CategoryWebServer:
		tr.WebServer = append(tr.WebServer, technology)
	case CategoryLandingPageBuilderCMS:
		tr.LandingPageBuilderCMS = append(tr.LandingPageBuilderCMS, technology)
	case CategoryOperatingSystem:
		tr.OperatingSystem = append(tr.OperatingSystem, technology)
	case CategoryWebFramework:
		tr.WebFramework = append(tr.WebFramework, technology)
	default:
		tr.Other = append(tr.Other, technology)
	}
}

// Flatten renders the result as output column values in EnrichmentColumns
// order. List fields become comma-joined strings; an empty list becomes an
// empty string, not a placeholder token.
func (tr *TechResult) Flatten() []string {
	return []string{
		tr.DetailLink,
		flattenList(tr.BlogCMS),
		flattenList(tr.EcommerceCMS),
		flattenList(tr.ProgrammingLanguage),
		flattenList(tr.Database),
		flattenList(tr.CDN),
		flattenList(tr.WebServer),
		flattenList(tr.LandingPageBuilderCMS),
		flattenList(tr.OperatingSystem),
		flattenList(tr.WebFramework),
		tr.ResponseStatus,
	}
}

// flattenList converts an ordered sequence of strings into one comma-joined
// string for tabular export.
func flattenList(values []string) string {
	return strings.Join(values, ", ")
}

// Succeeded reports whether the provider answered with result code 200.
// Local transport and parse failures never carry that prefix.
func (tr *TechResult) Succeeded() bool {
	return strings.HasPrefix(tr.ResponseStatus, "200 -")
}

// HasTechnologies returns true if any technology was detected for the URL
func (tr *TechResult) HasTechnologies() bool {
	if tr == nil {
		return false
	}
	return len(tr.BlogCMS)+len(tr.EcommerceCMS)+len(tr.ProgrammingLanguage)+
		len(tr.Database)+len(tr.CDN)+len(tr.WebServer)+
		len(tr.LandingPageBuilderCMS)+len(tr.OperatingSystem)+
		len(tr.WebFramework)+len(tr.Other) > 0
}

// String returns a human-readable debug representation
func (tr *TechResult) String() string {
	return fmt.Sprintf("TechResult{url=%s, status=%q, technologies=%v}",
		tr.SourceURL, tr.ResponseStatus, tr.Flatten()[1:10])
}
