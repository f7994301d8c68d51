package models

// AnalyzeConfig holds runtime configuration for analyze operations.
// All values come from CLI flags, not external config files.
type AnalyzeConfig struct {
	URLs        []string
	Depth       DepthLevel
	Platforms   []string
	WorkerCount int
	APIKey      string
	Probe       bool
}

// DefaultPlatforms are the AI surfaces scored when none are requested.
var DefaultPlatforms = []string{"Google SGE", "ChatGPT", "Bard", "Claude"}
