// Package models defines data structures shared across the analyzer pipeline.
package models

// CategoryType identifies one of the fixed website archetypes.
type CategoryType string

const (
	CategoryEcommerce CategoryType = "E-commerce / Retail"
	CategoryService   CategoryType = "Service Provider"
	CategoryMedia     CategoryType = "Content / Media"
	CategoryBusiness  CategoryType = "Business Website"
)

// WebsiteCategory bundles the static metadata attached to a category.
// Instances are selected from a compile-time table, never created at runtime.
// List order in EntityFocus and SchemaPriority is significant.
type WebsiteCategory struct {
	Type           CategoryType `json:"type" yaml:"type"`
	Industry       string       `json:"industry" yaml:"industry"`
	Description    string       `json:"description" yaml:"description"`
	EntityFocus    []string     `json:"entity_focus" yaml:"entity_focus"`
	SchemaPriority []string     `json:"schema_priority" yaml:"schema_priority"`
}
