package providers

import (
	"context"

	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
)

// TranscriptionProvider supplies the timestamped transcript of a recording.
// The analyzer never calls speech-to-text itself; it consumes whatever
// segments this collaborator produced.
type TranscriptionProvider interface {
	// Transcribe returns ordered segments with non-decreasing start times.
	Transcribe(ctx context.Context, recordingURL string) ([]entities.Segment, error)
}
