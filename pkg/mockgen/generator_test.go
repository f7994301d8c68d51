package mockgen

import (
	"math/rand"
	"testing"

	"github.com/Evronai/website-analyzer/models"
	"github.com/Evronai/website-analyzer/pkg/classifier"
)

func testGenerator() *Generator {
	return NewWithRand(rand.New(rand.NewSource(42)))
}

func TestGenerateScoresWithinBounds(t *testing.T) {
	g := testGenerator()
	category := classifier.Categories[models.CategoryEcommerce]
	platforms := []string{"Google SGE", "ChatGPT"}

	for _, depth := range []models.DepthLevel{models.DepthBasic, models.DepthAdvanced, models.DepthDeep} {
		for i := 0; i < 50; i++ {
			res := g.Generate("https://example-shoestore.com", "example-shoestore.com", category, depth, platforms)

			scores := map[string]int{
				"ai_visibility_score":   res.AIVisibilityScore,
				"entity_score":          res.EntityScore,
				"schema_score":          res.SchemaScore,
				"sge_score":             res.SGEScore,
				"ai_confidence":         res.AIConfidence,
				"improvement_potential": res.ImprovementPotential,
			}
			for name, v := range scores {
				if v < 0 || v > 100 {
					t.Fatalf("depth %s: %s = %d, want within [0,100]", depth, name, v)
				}
			}
			for platform, v := range res.PlatformScores {
				if v < 0 || v > 100 {
					t.Fatalf("depth %s: platform %s score = %d, want within [0,100]", depth, platform, v)
				}
			}
			for _, e := range res.Entities {
				if e.Confidence < 0 || e.Confidence > 1 {
					t.Fatalf("depth %s: entity %q confidence = %f, want within [0,1]", depth, e.Text, e.Confidence)
				}
			}
		}
	}
}

func TestGenerateAdvancedEntityCountRange(t *testing.T) {
	g := testGenerator()
	category := classifier.Categories[models.CategoryEcommerce]

	for i := 0; i < 100; i++ {
		res := g.Generate("https://example-shoestore.com", "example-shoestore.com", category, models.DepthAdvanced, nil)
		if res.EntityCount < 20 || res.EntityCount > 45 {
			t.Fatalf("advanced EntityCount = %d, want within [20,45]", res.EntityCount)
		}
	}
}

// Deeper levels must never narrow the sampling intervals relative to Basic,
// and floors/ceilings must not decrease with depth.
func TestRangesMonotonicByDepth(t *testing.T) {
	basic := rangesByDepth[models.DepthBasic]
	advanced := rangesByDepth[models.DepthAdvanced]
	deep := rangesByDepth[models.DepthDeep]

	check := func(name string, b, a, d scoreRange) {
		t.Helper()
		if a.lo < b.lo || d.lo < a.lo {
			t.Errorf("%s: floors not monotonic: basic=%d advanced=%d deep=%d", name, b.lo, a.lo, d.lo)
		}
		if a.hi < b.hi || d.hi < a.hi {
			t.Errorf("%s: ceilings not monotonic: basic=%d advanced=%d deep=%d", name, b.hi, a.hi, d.hi)
		}
		if (d.hi - d.lo) < (b.hi - b.lo) {
			t.Errorf("%s: deep range narrower than basic: basic width=%d deep width=%d", name, b.hi-b.lo, d.hi-d.lo)
		}
	}

	check("visibility", basic.visibility, advanced.visibility, deep.visibility)
	check("entity_score", basic.entityScore, advanced.entityScore, deep.entityScore)
	check("entity_count", basic.entityCount, advanced.entityCount, deep.entityCount)
	check("schema_score", basic.schemaScore, advanced.schemaScore, deep.schemaScore)
	check("schema_types", basic.schemaTypes, advanced.schemaTypes, deep.schemaTypes)
	check("sge", basic.sge, advanced.sge, deep.sge)
	check("confidence", basic.confidence, advanced.confidence, deep.confidence)
	check("platform", basic.platform, advanced.platform, deep.platform)
}

func TestGeneratePlatformScores(t *testing.T) {
	g := testGenerator()
	category := classifier.Categories[models.CategoryService]
	platforms := []string{"Google SGE", "ChatGPT", "Bard", "Claude"}

	res := g.Generate("https://acme-consulting.io", "acme-consulting.io", category, models.DepthBasic, platforms)

	if len(res.PlatformScores) != len(platforms) {
		t.Fatalf("len(PlatformScores) = %d, want %d", len(res.PlatformScores), len(platforms))
	}
	for _, p := range platforms {
		if _, ok := res.PlatformScores[p]; !ok {
			t.Errorf("PlatformScores missing entry for %q", p)
		}
	}
}

func TestGenerateEntitiesCappedAtTableLength(t *testing.T) {
	g := testGenerator()
	category := classifier.Categories[models.CategoryMedia]

	res := g.Generate("https://daily-news.example", "daily-news.example", category, models.DepthDeep, nil)

	if max := len(entityTables[models.CategoryMedia]); len(res.Entities) > max {
		t.Errorf("len(Entities) = %d, want at most %d", len(res.Entities), max)
	}
	if len(res.Entities) == 0 {
		t.Error("Entities is empty")
	}
}

func TestGenerateEveryFieldPopulated(t *testing.T) {
	g := testGenerator()
	category := classifier.Categories[models.CategoryBusiness]

	res := g.Generate("https://quux.example", "quux.example", category, models.DepthBasic, []string{"ChatGPT"})

	if res.URL == "" || res.Domain == "" || res.Depth == "" {
		t.Error("identity fields not populated")
	}
	if res.Source != models.SourceMock {
		t.Errorf("Source = %q, want %q", res.Source, models.SourceMock)
	}
	if res.AnalyzedAt.IsZero() {
		t.Error("AnalyzedAt is zero")
	}
	if len(res.EntityRecommendations) == 0 || len(res.FeaturedSnippets) == 0 || len(res.GenerativeRecommendations) == 0 {
		t.Error("canned text lists not populated")
	}
	if len(res.KGPresent) != 3 || len(res.KGMissing) != 3 {
		t.Errorf("KG lists = %d/%d entries, want 3/3", len(res.KGPresent), len(res.KGMissing))
	}
}

func TestGenerateDeterministicWithInjectedSource(t *testing.T) {
	category := classifier.Categories[models.CategoryEcommerce]
	platforms := []string{"ChatGPT"}

	a := NewWithRand(rand.New(rand.NewSource(7))).
		Generate("https://example-shoestore.com", "example-shoestore.com", category, models.DepthAdvanced, platforms)
	b := NewWithRand(rand.New(rand.NewSource(7))).
		Generate("https://example-shoestore.com", "example-shoestore.com", category, models.DepthAdvanced, platforms)

	if a.AIVisibilityScore != b.AIVisibilityScore || a.EntityCount != b.EntityCount {
		t.Errorf("same seed produced different scores: %d/%d vs %d/%d",
			a.AIVisibilityScore, a.EntityCount, b.AIVisibilityScore, b.EntityCount)
	}
	if a.PlatformScores["ChatGPT"] != b.PlatformScores["ChatGPT"] {
		t.Errorf("same seed produced different platform scores: %d vs %d",
			a.PlatformScores["ChatGPT"], b.PlatformScores["ChatGPT"])
	}
}
