package repositories

import (
	"context"

	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
)

// AnalysisSearchHit is one search result over analyzed sessions.
type AnalysisSearchHit struct {
	SessionID       string  `json:"session_id"`
	PrimaryIssueKey string  `json:"primary_issue_key"`
	EvidenceQuote   string  `json:"evidence_quote,omitempty"`
	Snippet         string  `json:"snippet,omitempty"`
	CreatedAt       int64   `json:"created_at"`
	Score           float64 `json:"score"`
}

// AnalysisSearchRepository indexes and searches analyzed sessions by
// transcript text and primary issue.
type AnalysisSearchRepository interface {
	InitSchema(ctx context.Context) error
	Index(ctx context.Context, analysis *entities.SessionAnalysis) error
	Delete(ctx context.Context, sessionID string) error
	Search(ctx context.Context, query string, limit int) ([]*AnalysisSearchHit, error)
}
