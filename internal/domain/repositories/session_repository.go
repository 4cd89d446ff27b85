package repositories

import (
	"context"

	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
)

// SessionRepository defines practice session persistence.
type SessionRepository interface {
	Create(ctx context.Context, session *entities.PracticeSession) error
	GetByID(ctx context.Context, id string) (*entities.PracticeSession, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entities.PracticeSession, error)
	Delete(ctx context.Context, id string) error
}
