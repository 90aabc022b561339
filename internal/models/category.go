package models

import "strings"

// Category identifies one of the recognized technology classes plus the
// "Other" catch-all for provider labels outside the fixed lookup.
type Category int

const (
	CategoryBlogCMS Category = iota
	CategoryEcommerceCMS
	CategoryProgrammingLanguage
	CategoryDatabase
	CategoryCDN
	CategoryWebServer
	CategoryLandingPageBuilderCMS
	CategoryOperatingSystem
	CategoryWebFramework
	CategoryOther
)

// String returns the output column name of the category
func (c Category) String() string {
	switch c {
	case CategoryBlogCMS:
		return "Blog_CMS"
	case CategoryEcommerceCMS:
		return "E-commerce_CMS"
	case CategoryProgrammingLanguage:
		return "Programming_Language"
	case CategoryDatabase:
		return "Database"
	case CategoryCDN:
		return "CDN"
	case CategoryWebServer:
		return "Web_Server"
	case CategoryLandingPageBuilderCMS:
		return "Landing_Page_Builder_CMS"
	case CategoryOperatingSystem:
		return "Operating_System"
	case CategoryWebFramework:
		return "Web_Framework"
	default:
		return "Other"
	}
}

// categoryLabels maps cleaned provider category labels onto categories.
// Adding a category is a one-line table edit.
var categoryLabels = map[string]Category{
	"cms":                      CategoryBlogCMS,
	"blog":                     CategoryBlogCMS,
	"blog_cms":                 CategoryBlogCMS,
	"ecommerce":                CategoryEcommerceCMS,
	"ecommerce_cms":            CategoryEcommerceCMS,
	"programming_language":     CategoryProgrammingLanguage,
	"database":                 CategoryDatabase,
	"cdn":                      CategoryCDN,
	"web_server":               CategoryWebServer,
	"landing_page_builder":     CategoryLandingPageBuilderCMS,
	"landing_page_builder_cms": CategoryLandingPageBuilderCMS,
	"operating_system":         CategoryOperatingSystem,
	"web_framework":            CategoryWebFramework,
}

// CleanCategoryLabel normalizes the provider-supplied category labels of one
// technology entry into a single lookup key: labels are joined with
// underscores, lowercased, hyphens are dropped and spaces become underscores.
func CleanCategoryLabel(labels []string) string {
	joined := strings.Join(labels, "_")
	joined = strings.ToLower(joined)
	joined = strings.ReplaceAll(joined, "-", "")
	joined = strings.ReplaceAll(joined, " ", "_")
	return joined
}

// CategoryFromLabels classifies a technology entry by its provider labels.
// Labels outside the fixed lookup fall into the Other bucket.
func CategoryFromLabels(labels []string) Category {
	if category, ok := categoryLabels[CleanCategoryLabel(labels)]; ok {
		return category
	}
	return CategoryOther
}
