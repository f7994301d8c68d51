package models

import "time"

// Result provenance values.
const (
	SourceMock     = "mock"
	SourceDeepSeek = "deepseek"
)

// Entity is a mock named concept used to populate the "entities found" view.
// Entities come from per-category tables, they are never extracted from
// actual page content.
type Entity struct {
	Text       string  `json:"text" yaml:"text"`
	Type       string  `json:"type" yaml:"type"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
	InSchema   bool    `json:"in_schema" yaml:"in_schema"`
}

// AnalysisResult is the complete record handed to the presentation layer.
// Every field is populated at construction; readers never patch in defaults.
// The result is transient and owned by the caller; only the history store
// persists it.
type AnalysisResult struct {
	URL      string          `json:"url" yaml:"url"`
	Domain   string          `json:"domain" yaml:"domain"`
	Category WebsiteCategory `json:"website_type" yaml:"website_type"`
	Depth    string          `json:"depth" yaml:"depth"`

	AIVisibilityScore int `json:"ai_visibility_score" yaml:"ai_visibility_score"`
	EntityScore       int `json:"entity_score" yaml:"entity_score"`
	EntityCount       int `json:"entity_count" yaml:"entity_count"`
	SchemaScore       int `json:"schema_score" yaml:"schema_score"`
	SchemaTypes       int `json:"schema_types" yaml:"schema_types"`
	SGEScore          int `json:"sge_score" yaml:"sge_score"`
	AIConfidence      int `json:"ai_confidence" yaml:"ai_confidence"`

	// ImprovementPotential is drawn independently on the mock path and
	// computed as 100 - AIVisibilityScore on the DeepSeek path.
	ImprovementPotential int `json:"improvement_potential" yaml:"improvement_potential"`

	PlatformScores map[string]int `json:"platform_scores" yaml:"platform_scores"`
	Entities       []Entity       `json:"entities" yaml:"entities"`

	EntityRecommendations     []string `json:"entity_recommendations" yaml:"entity_recommendations"`
	FeaturedSnippets          []string `json:"featured_snippets" yaml:"featured_snippets"`
	GenerativeRecommendations []string `json:"generative_recommendations" yaml:"generative_recommendations"`

	KGPresent []string `json:"kg_present" yaml:"kg_present"`
	KGMissing []string `json:"kg_missing" yaml:"kg_missing"`

	Source     string    `json:"source" yaml:"source"`
	AnalyzedAt time.Time `json:"analyzed_at" yaml:"analyzed_at"`

	// Probe is set only when the optional page probe ran and succeeded.
	Probe *ProbeInfo `json:"probe,omitempty" yaml:"probe,omitempty"`
}

// ProbeInfo carries page-level metadata from the optional probe.
// It is informational only; classification never reads it.
type ProbeInfo struct {
	Title              string   `json:"title" yaml:"title"`
	Description        string   `json:"description" yaml:"description"`
	SiteName           string   `json:"site_name,omitempty" yaml:"site_name,omitempty"`
	Excerpt            string   `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	Author             string   `json:"author,omitempty" yaml:"author,omitempty"`
	Language           string   `json:"language,omitempty" yaml:"language,omitempty"`
	LanguageConfidence float64  `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`
	TopKeywords        []string `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
	StatusCode         int      `json:"status_code" yaml:"status_code"`
}
