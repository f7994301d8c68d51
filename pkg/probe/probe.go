// Package probe fetches a page and extracts lightweight display metadata:
// title, description, readability fields, language and top keywords. Probe
// output never feeds classification; the category is decided from the URL
// alone.
package probe

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"

	"github.com/Evronai/website-analyzer/models"
	"github.com/Evronai/website-analyzer/pkg/analytics"
)

const topKeywordCount = 10

type Prober struct {
	client   *http.Client
	detector lingua.LanguageDetector
	a        *analytics.Analytics
}

func NewProber() *Prober {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.German, lingua.French, lingua.Spanish, lingua.Portuguese).
		Build()
	return &Prober{
		client:   &http.Client{Timeout: 20 * time.Second},
		detector: detector,
		a:        &analytics.Analytics{},
	}
}

// Probe fetches the page and assembles ProbeInfo. Errors here are expected to
// be non-fatal for callers: the analysis proceeds without probe data.
func (p *Prober) Probe(rawURL string) (*models.ProbeInfo, error) {
	resp, err := p.client.Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch page, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	info := &models.ProbeInfo{
		StatusCode: resp.StatusCode,
		Title:      strings.TrimSpace(doc.Find("title").First().Text()),
	}
	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		info.Description = strings.TrimSpace(desc)
	}

	// Readability enrichment is best-effort; pages without a main article
	// simply skip these fields.
	if parsedURL, err := url.Parse(rawURL); err == nil {
		readabilityParser := readability.NewParser()
		if article, err := readabilityParser.Parse(strings.NewReader(string(body)), parsedURL); err == nil {
			info.SiteName = article.SiteName
			info.Excerpt = article.Excerpt
			info.Author = article.Byline
		}
	}

	text := strings.TrimSpace(doc.Find("body").Text())
	if text != "" {
		if lang, ok := p.detector.DetectLanguageOf(text); ok {
			info.Language = strings.ToLower(lang.IsoCode639_1().String())
			info.LanguageConfidence = p.detector.ComputeLanguageConfidence(text, lang)
		}
		info.TopKeywords = p.a.TopNWords(text, topKeywordCount)
	}

	return info, nil
}
