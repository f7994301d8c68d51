package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/Evronai/website-analyzer/internal/common"
	"github.com/Evronai/website-analyzer/models"
	"github.com/Evronai/website-analyzer/pkg/caching"
	"github.com/Evronai/website-analyzer/pkg/db"
	"github.com/Evronai/website-analyzer/pkg/deepseek"
	"github.com/Evronai/website-analyzer/pkg/mockgen"
	"github.com/Evronai/website-analyzer/pkg/probe"
	"github.com/Evronai/website-analyzer/pkg/report"
)

func AnalyzeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	urlsStr := c.String("urls")
	if urlsStr == "" {
		return fmt.Errorf("no URLs provided via --urls flag")
	}
	rawURLs := strings.Split(urlsStr, ",")

	urls, invalidURLs := common.SanitizeAndValidateURLs(rawURLs)
	for _, bad := range invalidURLs {
		logger.Warn("Skipping invalid URL", "url", bad)
	}
	if len(urls) == 0 {
		return fmt.Errorf("no valid URLs after sanitization")
	}

	format := c.String("output")
	if format != report.FormatJSON && format != report.FormatYAML {
		return fmt.Errorf("invalid output format %q: use json or yaml", format)
	}

	var maxAge time.Duration
	if !c.Bool("force") {
		var err error
		maxAge, err = time.ParseDuration(c.String("max-age"))
		if err != nil {
			logger.Error("invalid max-age duration", "error", err)
			os.Exit(2)
		}
	}

	config := &models.AnalyzeConfig{
		URLs:        urls,
		Depth:       models.ResolveDepth(c.String("depth")),
		Platforms:   resolvePlatforms(c.String("platforms")),
		WorkerCount: c.Int("workers"),
		APIKey:      c.String("api-key"),
		Probe:       c.Bool("probe"),
	}
	if config.WorkerCount <= 0 {
		config.WorkerCount = 4
	}

	outputDir := c.String("output-dir")
	writer, err := report.NewWriter(outputDir)
	if err != nil {
		logger.Error("failed to initialize report writer", "error", err)
		os.Exit(2)
	}

	cache, err := caching.NewCache(filepath.Join(outputDir, "cache"), maxAge)
	if err != nil {
		logger.Error("failed to initialize cache", "error", err)
		os.Exit(2)
	}

	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	gen := mockgen.New()

	p := &pipeline{
		logger:   logger,
		config:   config,
		gen:      gen,
		cache:    cache,
		database: database,
		writer:   writer,
		format:   format,
	}

	if config.APIKey != "" {
		if deepseek.ValidKeyShape(config.APIKey) {
			p.llm = deepseek.NewClient(config.APIKey, logger, gen)
		} else {
			logger.Warn("Invalid or missing API key shape, using generated metrics")
		}
	}
	if config.Probe {
		p.prober = probe.NewProber()
	}

	allResults := run(context.Background(), p)
	final := buildFinalOutput(allResults, time.Since(startTime))

	var out []byte
	if format == report.FormatYAML {
		out, err = yaml.Marshal(final)
	} else {
		out, err = json.MarshalIndent(final, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(out))

	if final.Stats.Failed > 0 {
		return fmt.Errorf("%d of %d analyses failed", final.Stats.Failed, final.Stats.TotalURLs)
	}
	return nil
}

// resolvePlatforms parses the comma-separated platforms flag, falling back to
// the default platform set.
func resolvePlatforms(flag string) []string {
	if strings.TrimSpace(flag) == "" {
		return append([]string(nil), models.DefaultPlatforms...)
	}
	parts := strings.Split(flag, ",")
	platforms := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			platforms = append(platforms, name)
		}
	}
	if len(platforms) == 0 {
		return append([]string(nil), models.DefaultPlatforms...)
	}
	return platforms
}

func buildFinalOutput(results []Result, elapsed time.Duration) FinalOutput {
	final := FinalOutput{
		Status:  "success",
		Results: make([]ResultOutput, 0, len(results)),
	}
	final.Stats.TotalURLs = len(results)
	final.Stats.TotalTimeSeconds = elapsed.Seconds()

	for _, r := range results {
		out := ResultOutput{
			URL:        r.URL,
			Status:     "success",
			ReportPath: r.ReportPath,
			AnalysisID: r.AnalysisID,
			Analysis:   r.Analysis,
		}
		if r.Error != nil {
			out.Status = "failed"
			out.Error = r.Error.Error()
			out.ErrorType = r.ErrorType
			final.Stats.Failed++
		} else {
			final.Stats.Successful++
		}
		if r.Analysis != nil {
			switch r.Analysis.Source {
			case models.SourceDeepSeek:
				final.Stats.FromDeepSeek++
			case models.SourceMock:
				final.Stats.FromMock++
			}
		}
		final.Results = append(final.Results, out)
	}

	if final.Stats.Failed > 0 {
		final.Status = "partial_failure"
	}
	return final
}
