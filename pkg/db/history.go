package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Evronai/website-analyzer/models"
)

// AnalysisRow is one persisted analysis as read back from the database.
type AnalysisRow struct {
	AnalysisID           int64
	URL                  string
	Domain               string
	Category             string
	Industry             string
	Depth                string
	Source               string
	AIVisibilityScore    int
	EntityScore          int
	EntityCount          int
	SchemaScore          int
	SchemaTypes          int
	SGEScore             int
	AIConfidence         int
	ImprovementPotential int
	PlatformScores       map[string]int
	CreatedAt            time.Time
}

// InsertAnalysis records a finished analysis and returns its row ID.
func (db *DB) InsertAnalysis(res models.AnalysisResult) (int64, error) {
	platformJSON, err := json.Marshal(res.PlatformScores)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal platform scores: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO analyses (
			url, domain, category, industry, depth, source,
			ai_visibility_score, entity_score, entity_count,
			schema_score, schema_types, sge_score, ai_confidence,
			improvement_potential, platform_scores
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.URL, res.Domain, string(res.Category.Type), res.Category.Industry,
		res.Depth, res.Source,
		res.AIVisibilityScore, res.EntityScore, res.EntityCount,
		res.SchemaScore, res.SchemaTypes, res.SGEScore, res.AIConfidence,
		res.ImprovementPotential, string(platformJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert analysis: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get analysis ID: %w", err)
	}
	return id, nil
}

const analysisColumns = `
	analysis_id, url, domain, category, industry, depth, source,
	ai_visibility_score, entity_score, entity_count,
	schema_score, schema_types, sge_score, ai_confidence,
	improvement_potential, platform_scores, created_at`

func scanAnalysis(row interface{ Scan(...any) error }) (*AnalysisRow, error) {
	var a AnalysisRow
	var platformJSON sql.NullString
	err := row.Scan(
		&a.AnalysisID, &a.URL, &a.Domain, &a.Category, &a.Industry,
		&a.Depth, &a.Source,
		&a.AIVisibilityScore, &a.EntityScore, &a.EntityCount,
		&a.SchemaScore, &a.SchemaTypes, &a.SGEScore, &a.AIConfidence,
		&a.ImprovementPotential, &platformJSON, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if platformJSON.Valid && platformJSON.String != "" {
		if err := json.Unmarshal([]byte(platformJSON.String), &a.PlatformScores); err != nil {
			return nil, fmt.Errorf("failed to unmarshal platform scores: %w", err)
		}
	}
	return &a, nil
}

// GetAnalysis fetches a single analysis by ID.
func (db *DB) GetAnalysis(id int64) (*AnalysisRow, error) {
	row := db.QueryRow("SELECT"+analysisColumns+" FROM analyses WHERE analysis_id = ?", id)
	a, err := scanAnalysis(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("analysis %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return a, nil
}

// ListAnalyses returns the most recent analyses, newest first.
// limit <= 0 means no limit.
func (db *DB) ListAnalyses(limit int) ([]AnalysisRow, error) {
	query := "SELECT" + analysisColumns + " FROM analyses ORDER BY created_at DESC, analysis_id DESC"
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = db.Query(query+" LIMIT ?", limit)
	} else {
		rows, err = db.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	return collectAnalyses(rows)
}

// ListAnalysesByDomain returns analyses whose domain contains the pattern,
// newest first.
func (db *DB) ListAnalysesByDomain(pattern string) ([]AnalysisRow, error) {
	rows, err := db.Query(
		"SELECT"+analysisColumns+" FROM analyses WHERE domain LIKE ? ORDER BY created_at DESC, analysis_id DESC",
		"%"+pattern+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses by domain: %w", err)
	}
	defer rows.Close()

	return collectAnalyses(rows)
}

func collectAnalyses(rows *sql.Rows) ([]AnalysisRow, error) {
	var analyses []AnalysisRow
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}
	return analyses, nil
}
