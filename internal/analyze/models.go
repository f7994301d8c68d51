package analyze

import (
	"github.com/Evronai/website-analyzer/models"
)

type Job struct {
	URL string
}

// Result holds the outcome of a processed job.
type Result struct {
	URL        string
	Analysis   *models.AnalysisResult
	ReportPath string
	AnalysisID int64
	Error      error
	ErrorType  string
}

// ResultOutput is the structured output for a single URL.
type ResultOutput struct {
	URL        string                 `json:"url" yaml:"url"`
	Status     string                 `json:"status" yaml:"status"`
	ReportPath string                 `json:"report_path,omitempty" yaml:"report_path,omitempty"`
	AnalysisID int64                  `json:"analysis_id,omitempty" yaml:"analysis_id,omitempty"`
	Error      string                 `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorType  string                 `json:"error_type,omitempty" yaml:"error_type,omitempty"`
	Analysis   *models.AnalysisResult `json:"analysis,omitempty" yaml:"analysis,omitempty"`
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Status  string         `json:"status" yaml:"status"`
	Results []ResultOutput `json:"results" yaml:"results"`
	Stats   Stats          `json:"stats" yaml:"stats"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalURLs        int     `json:"total_urls" yaml:"total_urls"`
	Successful       int     `json:"successful" yaml:"successful"`
	Failed           int     `json:"failed" yaml:"failed"`
	FromDeepSeek     int     `json:"from_deepseek" yaml:"from_deepseek"`
	FromMock         int     `json:"from_mock" yaml:"from_mock"`
	TotalTimeSeconds float64 `json:"total_time_seconds" yaml:"total_time_seconds"`
}
