package repositories

import (
	"context"

	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
)

// AnalysisRepository persists analyzer results. Save overwrites any prior
// record for the same session id in a single atomic update.
type AnalysisRepository interface {
	Save(ctx context.Context, analysis *entities.SessionAnalysis) error
	GetBySessionID(ctx context.Context, sessionID string) (*entities.SessionAnalysis, error)
	List(ctx context.Context, limit, offset int) ([]*entities.SessionAnalysis, error)
}
