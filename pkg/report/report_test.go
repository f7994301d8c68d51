package report

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Evronai/website-analyzer/models"
	"github.com/Evronai/website-analyzer/pkg/classifier"
)

func sampleResult(url string) models.AnalysisResult {
	return models.AnalysisResult{
		URL:               url,
		Domain:            strings.TrimPrefix(url, "https://"),
		Category:          classifier.Classify(url, url),
		Depth:             "basic",
		AIVisibilityScore: 50,
		PlatformScores:    map[string]int{"ChatGPT": 55},
		Source:            models.SourceMock,
		AnalyzedAt:        time.Now().UTC(),
	}
}

func TestWriteJSONReport(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	path, err := w.Write(sampleResult("https://example-shoestore.com"), FormatJSON)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report file: %v", err)
	}
	if !strings.Contains(string(data), `"ai_visibility_score": 50`) {
		t.Error("report file missing ai_visibility_score field")
	}
	if !strings.HasSuffix(path, ".json") {
		t.Errorf("report path = %q, want .json extension", path)
	}
}

func TestWriteYAMLReport(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	path, err := w.Write(sampleResult("https://example-shoestore.com"), FormatYAML)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.HasSuffix(path, ".yaml") {
		t.Errorf("report path = %q, want .yaml extension", path)
	}
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	if _, err := w.Write(sampleResult("https://example.com"), "xml"); err == nil {
		t.Error("Write() error = nil, want unsupported-format error")
	}
}

func TestIndexUpdated(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	if _, err := w.Write(sampleResult("https://example-shoestore.com"), FormatJSON); err != nil {
		t.Fatalf("Write() first error = %v", err)
	}
	if _, err := w.Write(sampleResult("https://acme-consulting.io"), FormatJSON); err != nil {
		t.Fatalf("Write() second error = %v", err)
	}

	data, err := os.ReadFile(w.IndexPath())
	if err != nil {
		t.Fatalf("failed to read index: %v", err)
	}

	var index Index
	if err := yaml.Unmarshal(data, &index); err != nil {
		t.Fatalf("failed to parse index: %v", err)
	}
	if len(index.Reports) != 2 {
		t.Fatalf("len(index.Reports) = %d, want 2", len(index.Reports))
	}
	for _, e := range index.Reports {
		if e.ReportID == "" || e.URL == "" || e.Category == "" {
			t.Errorf("index entry incomplete: %+v", e)
		}
	}
}

func TestIndexKeepsEveryEntryUnderConcurrentWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}

	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			url := fmt.Sprintf("https://site-%d.example", i)
			if _, err := w.Write(sampleResult(url), FormatJSON); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(w.IndexPath())
	if err != nil {
		t.Fatalf("failed to read index: %v", err)
	}
	var index Index
	if err := yaml.Unmarshal(data, &index); err != nil {
		t.Fatalf("failed to parse index: %v", err)
	}
	if len(index.Reports) != n {
		t.Fatalf("len(index.Reports) = %d after %d concurrent writes, want %d", len(index.Reports), n, n)
	}
}

func TestReportIDStableForSameURLAndMinute(t *testing.T) {
	a := ReportID("https://example.com")
	b := ReportID("https://example.com")
	if a != b {
		t.Errorf("ReportID() differs within the same minute: %q vs %q", a, b)
	}
	if c := ReportID("https://other.example"); c == a {
		t.Error("ReportID() identical for different URLs")
	}
}
