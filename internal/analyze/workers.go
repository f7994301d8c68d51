package analyze

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/Evronai/website-analyzer/internal/common"
	"github.com/Evronai/website-analyzer/models"
	"github.com/Evronai/website-analyzer/pkg/caching"
	"github.com/Evronai/website-analyzer/pkg/classifier"
	"github.com/Evronai/website-analyzer/pkg/db"
	"github.com/Evronai/website-analyzer/pkg/deepseek"
	"github.com/Evronai/website-analyzer/pkg/mockgen"
	"github.com/Evronai/website-analyzer/pkg/probe"
	"github.com/Evronai/website-analyzer/pkg/report"
)

// pipeline bundles the collaborators each worker needs.
type pipeline struct {
	logger   *slog.Logger
	config   *models.AnalyzeConfig
	gen      *mockgen.Generator
	llm      *deepseek.Client // nil when no usable API key
	prober   *probe.Prober    // nil unless --probe
	cache    *caching.Cache
	database *db.DB
	writer   *report.Writer
	format   string
}

func run(ctx context.Context, p *pipeline) []Result {
	p.logger.Info("Starting analysis phase",
		"url_count", len(p.config.URLs),
		"workers", p.config.WorkerCount,
		"depth", p.config.Depth.String(),
		"deepseek", p.llm != nil,
	)

	var wg sync.WaitGroup
	jobs := make(chan Job, len(p.config.URLs))
	results := make(chan Result, len(p.config.URLs))

	for w := 1; w <= p.config.WorkerCount; w++ {
		wg.Add(1)
		go worker(ctx, w, p, &wg, jobs, results)
	}

	for _, rawURL := range p.config.URLs {
		jobs <- Job{URL: rawURL}
	}
	close(jobs)

	wg.Wait()
	close(results)
	p.logger.Info("All analysis workers finished")

	allResults := make([]Result, 0, len(p.config.URLs))
	for result := range results {
		allResults = append(allResults, result)
	}
	return allResults
}

// worker processes jobs from the jobs channel and sends results to the
// results channel.
func worker(ctx context.Context, id int, p *pipeline, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		p.logger.Info("Worker started job", "worker_id", id, "url", job.URL)
		results <- analyzeOne(ctx, id, p, job.URL)
	}
}

func analyzeOne(ctx context.Context, id int, p *pipeline, rawURL string) Result {
	result := Result{URL: rawURL}
	domain := common.Domain(rawURL)

	analysis := resolveAnalysis(ctx, id, p, rawURL, domain)

	// Page probe is best-effort and never fails the analysis.
	if p.prober != nil {
		info, err := p.prober.Probe(rawURL)
		if err != nil {
			p.logger.Warn("Page probe failed, continuing without it", "worker_id", id, "url", rawURL, "error", err)
		} else {
			analysis.Probe = info
		}
	}

	analysisID, err := p.database.InsertAnalysis(analysis)
	if err != nil {
		p.logger.Error("Error recording analysis history", "worker_id", id, "url", rawURL, "error", err)
		result.Error = err
		result.ErrorType = "history_error"
		result.Analysis = &analysis
		return result
	}

	reportPath, err := p.writer.Write(analysis, p.format)
	if err != nil {
		p.logger.Error("Error saving report", "worker_id", id, "url", rawURL, "error", err)
		result.Error = err
		result.ErrorType = "report_error"
		result.Analysis = &analysis
		result.AnalysisID = analysisID
		return result
	}

	result.Analysis = &analysis
	result.AnalysisID = analysisID
	result.ReportPath = reportPath
	p.logger.Info("Worker finished job", "worker_id", id, "url", rawURL, "source", analysis.Source)
	return result
}

// resolveAnalysis picks the DeepSeek path when a client is configured,
// consulting the response cache first; otherwise it generates mock metrics.
func resolveAnalysis(ctx context.Context, id int, p *pipeline, rawURL, domain string) models.AnalysisResult {
	category := classifier.Classify(rawURL, domain)

	if p.llm == nil {
		return p.gen.Generate(rawURL, domain, category, p.config.Depth, p.config.Platforms)
	}

	depth := p.config.Depth.String()
	if data, ok := p.cache.Get(rawURL, depth); ok {
		var cached models.AnalysisResult
		if err := json.Unmarshal(data, &cached); err == nil {
			p.logger.Info("Using cached analysis", "worker_id", id, "url", rawURL)
			return cached
		}
		p.logger.Warn("Discarding unreadable cache entry", "worker_id", id, "url", rawURL)
	}

	analysis := p.llm.Analyze(ctx, rawURL, domain, p.config.Depth, p.config.Platforms)

	// Only provider-backed results are worth caching; mock output is free.
	if analysis.Source == models.SourceDeepSeek {
		if data, err := json.Marshal(analysis); err == nil {
			if err := p.cache.Set(rawURL, depth, data); err != nil {
				p.logger.Warn("Failed to cache analysis", "worker_id", id, "url", rawURL, "error", err)
			}
		}
	}
	return analysis
}
