// Package report writes per-analysis report files under the results
// directory and maintains the run index at index.yaml.
package report

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Evronai/website-analyzer/models"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// IndexEntry is one line of the report index.
type IndexEntry struct {
	ReportID string    `yaml:"report_id"`
	URL      string    `yaml:"url"`
	Category string    `yaml:"category"`
	Source   string    `yaml:"source"`
	Created  time.Time `yaml:"created"`
	File     string    `yaml:"file"`
}

// Index is the structure of index.yaml at the results root.
type Index struct {
	Reports []IndexEntry `yaml:"reports"`
}

type Writer struct {
	baseDir string

	// mu serializes index.yaml read-modify-write cycles: Write is called
	// from concurrent analysis workers sharing one Writer.
	mu sync.Mutex
}

// NewWriter creates the results directory structure if needed.
func NewWriter(baseDir string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Join(baseDir, "reports"), 0755); err != nil {
		return nil, fmt.Errorf("failed to create reports directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// ReportID builds a timestamp-first ID from the URL.
// Format: YYYY-MM-DDTHH-MM-{hash}; timestamp-first keeps the reports
// directory in chronological order.
func ReportID(rawURL string) string {
	h := sha256.Sum256([]byte(rawURL))
	shortHash := hex.EncodeToString(h[:6])
	timestamp := time.Now().Format("2006-01-02T15-04")
	return fmt.Sprintf("%s-%s", timestamp, shortHash)
}

// Write marshals the result in the requested format, saves it under
// reports/, and upserts the index entry. Returns the report file path.
func (w *Writer) Write(res models.AnalysisResult, format string) (string, error) {
	var data []byte
	var err error
	ext := format
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(res)
	case FormatJSON:
		data, err = json.MarshalIndent(res, "", "  ")
	default:
		return "", fmt.Errorf("unsupported report format: %s", format)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	id := ReportID(res.URL)
	filePath := filepath.Join(w.baseDir, "reports", fmt.Sprintf("%s.%s", id, ext))
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}

	entry := IndexEntry{
		ReportID: id,
		URL:      res.URL,
		Category: string(res.Category.Type),
		Source:   res.Source,
		Created:  res.AnalyzedAt,
		File:     filePath,
	}
	if err := w.updateIndex(entry); err != nil {
		return "", err
	}

	return filePath, nil
}

// IndexPath returns the path to index.yaml at the results root.
func (w *Writer) IndexPath() string {
	return filepath.Join(w.baseDir, "index.yaml")
}

// updateIndex adds or updates a report entry in index.yaml.
func (w *Writer) updateIndex(entry IndexEntry) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	indexPath := w.IndexPath()

	var index Index
	data, err := os.ReadFile(indexPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read report index: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &index); err != nil {
			return fmt.Errorf("failed to parse report index: %w", err)
		}
	}

	found := false
	for i, e := range index.Reports {
		if e.ReportID == entry.ReportID {
			index.Reports[i] = entry
			found = true
			break
		}
	}
	if !found {
		index.Reports = append(index.Reports, entry)
	}

	// Timestamp-first IDs sort chronologically
	sort.Slice(index.Reports, func(i, j int) bool {
		return index.Reports[i].ReportID < index.Reports[j].ReportID
	})

	out, err := yaml.Marshal(&index)
	if err != nil {
		return fmt.Errorf("failed to marshal report index: %w", err)
	}
	if err := os.WriteFile(indexPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write report index: %w", err)
	}
	return nil
}
