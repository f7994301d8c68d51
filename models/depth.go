package models

import "strings"

// DepthLevel controls the numeric ranges the metrics generator samples from.
type DepthLevel int

const (
	DepthBasic DepthLevel = iota
	DepthAdvanced
	DepthDeep
)

func (d DepthLevel) String() string {
	switch d {
	case DepthAdvanced:
		return "advanced"
	case DepthDeep:
		return "deep"
	default:
		return "basic"
	}
}

// ResolveDepth maps a CLI flag value to a DepthLevel.
// Unknown or empty values fall back to Basic.
func ResolveDepth(s string) DepthLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "advanced":
		return DepthAdvanced
	case "deep":
		return DepthDeep
	default:
		return DepthBasic
	}
}
