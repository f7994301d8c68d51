// Package deepseek calls DeepSeek's OpenAI-compatible chat-completions API to
// analyze a website. Any failure along the way (bad key shape, transport
// error, non-200 status, undecodable reply) substitutes the locally generated
// mock metrics unchanged, so callers always get a complete result.
package deepseek

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Evronai/website-analyzer/models"
	"github.com/Evronai/website-analyzer/pkg/classifier"
	"github.com/Evronai/website-analyzer/pkg/mockgen"
)

const (
	defaultBaseURL = "https://api.deepseek.com/v1"
	defaultModel   = "deepseek-chat"
	requestTimeout = 30 * time.Second
)

// ValidKeyShape reports whether the key passes the cheap shape check.
// The key is never verified against the provider before use.
func ValidKeyShape(key string) bool {
	return strings.HasPrefix(key, "sk-") && len(key) >= 20
}

type Client struct {
	api    *openai.Client
	model  string
	logger *slog.Logger
	gen    *mockgen.Generator
}

func NewClient(apiKey string, logger *slog.Logger, gen *mockgen.Generator) *Client {
	return NewClientWithBaseURL(apiKey, defaultBaseURL, logger, gen)
}

// NewClientWithBaseURL points the client at an alternate endpoint. Tests use
// this to target a stub server.
func NewClientWithBaseURL(apiKey, baseURL string, logger *slog.Logger, gen *mockgen.Generator) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Client{
		api:    openai.NewClientWithConfig(cfg),
		model:  defaultModel,
		logger: logger,
		gen:    gen,
	}
}

// apiResult mirrors the JSON object the prompt asks the model to return.
// Pointer fields distinguish "absent" from zero so missing keys can be
// backfilled from the mock result.
type apiResult struct {
	WebsiteType *struct {
		Type        string `json:"type"`
		Industry    string `json:"industry"`
		Description string `json:"description"`
	} `json:"website_type"`
	AIVisibilityScore *int           `json:"ai_visibility_score"`
	EntityScore       *int           `json:"entity_score"`
	EntityCount       *int           `json:"entity_count"`
	SchemaScore       *int           `json:"schema_score"`
	SchemaTypes       *int           `json:"schema_types"`
	SGEScore          *int           `json:"sge_score"`
	AIConfidence      *int           `json:"ai_confidence"`
	PlatformScores    map[string]int `json:"platform_scores"`
}

// Analyze runs the DeepSeek-backed path for a single URL. The returned result
// always carries the local classifier's category verdict: the model's own
// classification is overridden so category selection stays a pure function of
// (url, domain) regardless of which path produced the scores.
func (c *Client) Analyze(ctx context.Context, rawURL, domain string, depth models.DepthLevel, platforms []string) models.AnalysisResult {
	category := classifier.Classify(rawURL, domain)
	fallback := c.gen.Generate(rawURL, domain, category, depth, platforms)

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.1,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(rawURL)},
		},
	})
	if err != nil {
		c.logger.Warn("deepseek request failed, using generated metrics", "url", rawURL, "error", err)
		return fallback
	}
	if len(resp.Choices) == 0 {
		c.logger.Warn("deepseek returned no choices, using generated metrics", "url", rawURL)
		return fallback
	}

	var parsed apiResult
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		c.logger.Warn("deepseek reply was not valid JSON, using generated metrics", "url", rawURL, "error", err)
		return fallback
	}

	return merge(fallback, parsed, category)
}

// merge applies the backfill policy: fields present in the reply override the
// mock values, missing fields keep them. The merge happens here, at
// construction time, so readers never have to patch defaults.
func merge(base models.AnalysisResult, parsed apiResult, category models.WebsiteCategory) models.AnalysisResult {
	out := base
	out.Source = models.SourceDeepSeek
	out.Category = category // local verdict wins over the model's

	if parsed.AIVisibilityScore != nil {
		out.AIVisibilityScore = clamp(*parsed.AIVisibilityScore)
	}
	if parsed.EntityScore != nil {
		out.EntityScore = clamp(*parsed.EntityScore)
	}
	if parsed.EntityCount != nil && *parsed.EntityCount >= 0 {
		out.EntityCount = *parsed.EntityCount
	}
	if parsed.SchemaScore != nil {
		out.SchemaScore = clamp(*parsed.SchemaScore)
	}
	if parsed.SchemaTypes != nil && *parsed.SchemaTypes >= 0 {
		out.SchemaTypes = *parsed.SchemaTypes
	} else {
		out.SchemaTypes = len(category.SchemaPriority)
	}
	if parsed.SGEScore != nil {
		out.SGEScore = clamp(*parsed.SGEScore)
	}
	if parsed.AIConfidence != nil {
		out.AIConfidence = clamp(*parsed.AIConfidence)
	}
	if len(parsed.PlatformScores) > 0 {
		scores := make(map[string]int, len(parsed.PlatformScores))
		for name, score := range parsed.PlatformScores {
			scores[name] = clamp(score)
		}
		out.PlatformScores = scores
	}

	// On this path improvement potential is the visibility gap.
	out.ImprovementPotential = 100 - out.AIVisibilityScore

	return out
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
