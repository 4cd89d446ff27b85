package providers

import (
	"context"
	"errors"

	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
)

// ErrCoachingUnavailable is returned when the coaching collaborator cannot be
// reached. Callers degrade gracefully: the analysis result is still returned,
// just without a coaching message.
var ErrCoachingUnavailable = errors.New("coaching message provider unavailable")

// CoachingMessageProvider turns the selected primary issue into a short
// free-text encouragement for the speaker.
type CoachingMessageProvider interface {
	GenerateMessage(ctx context.Context, issue *entities.PrimaryIssue, durationSeconds float64) (string, error)
}
