package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
	"github.com/pitchflow-app/pitchflow/backend/internal/domain/repositories"
	apperrors "github.com/pitchflow-app/pitchflow/backend/pkg/errors"
)

// SessionService handles business logic for practice sessions
type SessionService struct {
	repo repositories.SessionRepository
}

// NewSessionService creates a new session service
func NewSessionService(repo repositories.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

// Create registers a new practice session, assigning an id and creation time
// when the caller left them empty.
func (s *SessionService) Create(ctx context.Context, session *entities.PracticeSession) error {
	if session == nil {
		return apperrors.NewValidationError("session is required")
	}
	if session.UserID == "" {
		return apperrors.NewValidationError("user_id is required")
	}
	if session.DurationSeconds < 0 {
		return apperrors.NewValidationError("duration_seconds must not be negative")
	}

	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}

	return s.repo.Create(ctx, session)
}

// GetByID retrieves a practice session by ID
func (s *SessionService) GetByID(ctx context.Context, id string) (*entities.PracticeSession, error) {
	if id == "" {
		return nil, apperrors.NewValidationError("session id is required")
	}
	return s.repo.GetByID(ctx, id)
}

// ListByUser pages a user's sessions, newest first.
func (s *SessionService) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entities.PracticeSession, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("user_id is required")
	}
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

// Delete removes a practice session.
func (s *SessionService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.NewValidationError("session id is required")
	}
	return s.repo.Delete(ctx, id)
}
