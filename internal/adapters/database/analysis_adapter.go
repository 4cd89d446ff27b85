package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
	"github.com/pitchflow-app/pitchflow/backend/internal/domain/repositories"
	"github.com/pitchflow-app/pitchflow/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/pitchflow-app/pitchflow/backend/pkg/errors"
)

const analysesTable = "session_analyses"

var analysisColumns = []interface{}{
	"session_id",
	"duration_seconds",
	"transcript",
	"events",
	"primary_issue",
	"improvement",
	"coaching_message",
	"created_at",
}

// AnalysisAdapter implements analysis persistence in Postgres. Results are
// stored as one row per session; re-analyzing a session overwrites the row
// in a single upsert.
type AnalysisAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewAnalysisAdapter creates a new analysis adapter.
func NewAnalysisAdapter(client *postgres.Client) repositories.AnalysisRepository {
	return &AnalysisAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Save upserts the complete analysis record for a session.
func (a *AnalysisAdapter) Save(ctx context.Context, analysis *entities.SessionAnalysis) error {
	if analysis == nil || analysis.SessionID == "" {
		return apperrors.NewValidationError("analysis with session id is required")
	}

	events, err := json.Marshal(analysis.Events)
	if err != nil {
		return apperrors.NewInternalError("failed to encode events", err)
	}
	primaryIssue, err := json.Marshal(analysis.PrimaryIssue)
	if err != nil {
		return apperrors.NewInternalError("failed to encode primary issue", err)
	}

	improvement := sql.NullString{}
	if analysis.Improvement != nil {
		data, err := json.Marshal(analysis.Improvement)
		if err != nil {
			return apperrors.NewInternalError("failed to encode improvement summary", err)
		}
		improvement = sql.NullString{String: string(data), Valid: true}
	}

	record := goqu.Record{
		"session_id":       analysis.SessionID,
		"duration_seconds": analysis.DurationSeconds,
		"transcript":       analysis.Transcript,
		"events":           string(events),
		"primary_issue":    string(primaryIssue),
		"improvement":      improvement,
		"coaching_message": analysis.CoachingMessage,
		"created_at":       analysis.CreatedAt,
	}

	query, args, err := a.db.Insert(analysesTable).
		Rows(record).
		OnConflict(goqu.DoUpdate("session_id", record)).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build analysis upsert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to save analysis", err)
	}
	return nil
}

// GetBySessionID fetches the stored analysis for a session.
func (a *AnalysisAdapter) GetBySessionID(ctx context.Context, sessionID string) (*entities.SessionAnalysis, error) {
	query, args, err := a.db.From(analysesTable).
		Select(analysisColumns...).
		Where(goqu.Ex{"session_id": sessionID}).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build analysis select query", err)
	}

	row := a.client.DB().QueryRowContext(ctx, query, args...)
	analysis, err := scanAnalysis(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("analysis not found for session " + sessionID)
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to read analysis", err)
	}
	return analysis, nil
}

// List pages stored analyses, newest first.
func (a *AnalysisAdapter) List(ctx context.Context, limit, offset int) ([]*entities.SessionAnalysis, error) {
	if limit <= 0 {
		limit = 50
	}

	query, args, err := a.db.From(analysesTable).
		Select(analysisColumns...).
		Order(goqu.I("created_at").Desc()).
		Limit(uint(limit)).
		Offset(uint(offset)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build analysis list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list analyses", err)
	}
	defer rows.Close()

	var analyses []*entities.SessionAnalysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to read analysis row", err)
		}
		analyses = append(analyses, analysis)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate analyses", err)
	}
	return analyses, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAnalysis(row rowScanner) (*entities.SessionAnalysis, error) {
	var (
		analysis    entities.SessionAnalysis
		events      []byte
		primary     []byte
		improvement sql.NullString
		createdAt   time.Time
	)

	if err := row.Scan(
		&analysis.SessionID,
		&analysis.DurationSeconds,
		&analysis.Transcript,
		&events,
		&primary,
		&improvement,
		&analysis.CoachingMessage,
		&createdAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(events, &analysis.Events); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(primary, &analysis.PrimaryIssue); err != nil {
		return nil, err
	}
	if improvement.Valid {
		var summary entities.ImprovementSummary
		if err := json.Unmarshal([]byte(improvement.String), &summary); err != nil {
			return nil, err
		}
		analysis.Improvement = &summary
	}
	analysis.CreatedAt = createdAt
	return &analysis, nil
}
