// Package mockgen produces plausible-looking AI-visibility metrics when no
// real analysis backend is available. Every score is drawn fresh per call
// from depth-dependent closed intervals; output is intentionally
// non-deterministic unless the caller injects the random source.
package mockgen

import (
	"math/rand"
	"time"

	"github.com/Evronai/website-analyzer/models"
)

// scoreRange is a closed integer interval sampled per depth level.
type scoreRange struct {
	lo, hi int
}

func (r scoreRange) sample(rng *rand.Rand) int {
	return r.lo + rng.Intn(r.hi-r.lo+1)
}

// depthRanges groups the intervals for one depth level. Floors and ceilings
// rise with depth (improvement potential is the one inverse metric: deeper
// analysis leaves less headroom).
type depthRanges struct {
	visibility  scoreRange
	entityScore scoreRange
	entityCount scoreRange
	schemaScore scoreRange
	schemaTypes scoreRange
	sge         scoreRange
	confidence  scoreRange
	improvement scoreRange
	platform    scoreRange
}

var rangesByDepth = map[models.DepthLevel]depthRanges{
	models.DepthBasic: {
		visibility:  scoreRange{35, 65},
		entityScore: scoreRange{30, 60},
		entityCount: scoreRange{8, 20},
		schemaScore: scoreRange{25, 55},
		schemaTypes: scoreRange{1, 3},
		sge:         scoreRange{30, 60},
		confidence:  scoreRange{40, 70},
		improvement: scoreRange{30, 65},
		platform:    scoreRange{30, 70},
	},
	models.DepthAdvanced: {
		visibility:  scoreRange{45, 75},
		entityScore: scoreRange{40, 70},
		entityCount: scoreRange{20, 45},
		schemaScore: scoreRange{35, 65},
		schemaTypes: scoreRange{2, 5},
		sge:         scoreRange{40, 70},
		confidence:  scoreRange{50, 80},
		improvement: scoreRange{25, 55},
		platform:    scoreRange{40, 80},
	},
	models.DepthDeep: {
		visibility:  scoreRange{50, 85},
		entityScore: scoreRange{45, 80},
		entityCount: scoreRange{30, 60},
		schemaScore: scoreRange{40, 75},
		schemaTypes: scoreRange{3, 7},
		sge:         scoreRange{45, 80},
		confidence:  scoreRange{55, 90},
		improvement: scoreRange{15, 50},
		platform:    scoreRange{40, 85},
	},
}

// Generator draws mock metrics from a random source. Use New for the default
// time-seeded source or NewWithRand to inject one for deterministic output.
type Generator struct {
	rng *rand.Rand
}

func New() *Generator {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates a Generator backed by the given source. Callers that
// need reproducible results (tests, fixtures) pass a fixed seed here.
func NewWithRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate assembles a fully populated AnalysisResult for the category at the
// requested depth. It is total: every field is filled at construction and no
// branch can fail. PlatformScores gets exactly one entry per requested
// platform name.
func (g *Generator) Generate(rawURL, domain string, category models.WebsiteCategory, depth models.DepthLevel, platforms []string) models.AnalysisResult {
	r, ok := rangesByDepth[depth]
	if !ok {
		r = rangesByDepth[models.DepthBasic]
	}

	platformScores := make(map[string]int, len(platforms))
	for _, p := range platforms {
		platformScores[p] = r.platform.sample(g.rng)
	}

	return models.AnalysisResult{
		URL:      rawURL,
		Domain:   domain,
		Category: category,
		Depth:    depth.String(),

		AIVisibilityScore:    r.visibility.sample(g.rng),
		EntityScore:          r.entityScore.sample(g.rng),
		EntityCount:          r.entityCount.sample(g.rng),
		SchemaScore:          r.schemaScore.sample(g.rng),
		SchemaTypes:          r.schemaTypes.sample(g.rng),
		SGEScore:             r.sge.sample(g.rng),
		AIConfidence:         r.confidence.sample(g.rng),
		ImprovementPotential: r.improvement.sample(g.rng),

		PlatformScores: platformScores,
		Entities:       g.entities(category, depth),

		EntityRecommendations:     cannedText(entityRecommendations, category.Type),
		FeaturedSnippets:          cannedText(featuredSnippets, category.Type),
		GenerativeRecommendations: cannedText(generativeRecommendations, category.Type),

		KGPresent: firstN(category.EntityFocus, 3),
		KGMissing: firstN(category.SchemaPriority, 3),

		Source:     models.SourceMock,
		AnalyzedAt: time.Now().UTC(),
	}
}

// entities zips the per-category name table with random confidence values.
// The list is capped at the table length regardless of depth.
func (g *Generator) entities(category models.WebsiteCategory, depth models.DepthLevel) []models.Entity {
	table, ok := entityTables[category.Type]
	if !ok {
		table = entityTables[models.CategoryBusiness]
	}

	n := len(table)
	if depth == models.DepthBasic && n > 5 {
		n = 5
	}

	entities := make([]models.Entity, 0, n)
	for _, e := range table[:n] {
		entities = append(entities, models.Entity{
			Text:       e.text,
			Type:       e.entityType,
			Confidence: 0.5 + g.rng.Float64()*0.5, // [0.5, 1.0)
			InSchema:   g.rng.Intn(2) == 0,
		})
	}
	return entities
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		n = len(items)
	}
	out := make([]string, n)
	copy(out, items[:n])
	return out
}

func cannedText(table map[models.CategoryType][]string, ct models.CategoryType) []string {
	if text, ok := table[ct]; ok {
		return append([]string(nil), text...)
	}
	return append([]string(nil), table[models.CategoryBusiness]...)
}
