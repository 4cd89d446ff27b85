package database

import (
	"context"
	"database/sql"

	"github.com/doug-martin/goqu/v9"
	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
	"github.com/pitchflow-app/pitchflow/backend/internal/domain/repositories"
	"github.com/pitchflow-app/pitchflow/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/pitchflow-app/pitchflow/backend/pkg/errors"
)

const sessionsTable = "practice_sessions"

// SessionAdapter implements practice session persistence in Postgres.
type SessionAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewSessionAdapter creates a new session adapter.
func NewSessionAdapter(client *postgres.Client) repositories.SessionRepository {
	return &SessionAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a practice session.
func (a *SessionAdapter) Create(ctx context.Context, session *entities.PracticeSession) error {
	if session == nil || session.ID == "" {
		return apperrors.NewValidationError("session with id is required")
	}

	record := goqu.Record{
		"id":               session.ID,
		"user_id":          session.UserID,
		"title":            session.Title,
		"duration_seconds": session.DurationSeconds,
		"created_at":       session.CreatedAt,
	}

	query, args, err := a.db.Insert(sessionsTable).Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build session insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create session", err)
	}
	return nil
}

// GetByID fetches one practice session.
func (a *SessionAdapter) GetByID(ctx context.Context, id string) (*entities.PracticeSession, error) {
	query, args, err := a.db.From(sessionsTable).
		Select("id", "user_id", "title", "duration_seconds", "created_at").
		Where(goqu.Ex{"id": id}).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build session select query", err)
	}

	var session entities.PracticeSession
	row := a.client.DB().QueryRowContext(ctx, query, args...)
	err = row.Scan(&session.ID, &session.UserID, &session.Title, &session.DurationSeconds, &session.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError("session not found: " + id)
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to read session", err)
	}
	return &session, nil
}

// ListByUser pages a user's sessions, newest first.
func (a *SessionAdapter) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entities.PracticeSession, error) {
	if limit <= 0 {
		limit = 50
	}

	query, args, err := a.db.From(sessionsTable).
		Select("id", "user_id", "title", "duration_seconds", "created_at").
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("created_at").Desc()).
		Limit(uint(limit)).
		Offset(uint(offset)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build session list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list sessions", err)
	}
	defer rows.Close()

	var sessions []*entities.PracticeSession
	for rows.Next() {
		var session entities.PracticeSession
		if err := rows.Scan(&session.ID, &session.UserID, &session.Title, &session.DurationSeconds, &session.CreatedAt); err != nil {
			return nil, apperrors.NewInternalError("failed to read session row", err)
		}
		sessions = append(sessions, &session)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate sessions", err)
	}
	return sessions, nil
}

// Delete removes a practice session.
func (a *SessionAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete(sessionsTable).Where(goqu.Ex{"id": id}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build session delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete session", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return apperrors.NewNotFoundError("session not found: " + id)
	}
	return nil
}
