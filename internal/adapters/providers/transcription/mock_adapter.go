package transcription

import (
	"context"

	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
	"github.com/pitchflow-app/pitchflow/backend/internal/domain/providers"
)

// MockTranscriptionProvider implements a mock transcription provider for
// local development, where no speech-to-text backend is configured.
type MockTranscriptionProvider struct{}

// NewMockTranscriptionProvider creates a new mock transcription provider
func NewMockTranscriptionProvider() providers.TranscriptionProvider {
	return &MockTranscriptionProvider{}
}

// Transcribe returns a canned pitch transcript regardless of the recording.
func (m *MockTranscriptionProvider) Transcribe(ctx context.Context, recordingURL string) ([]entities.Segment, error) {
	return []entities.Segment{
		{Start: 0, End: 8, Text: "Hi everyone, thanks for having me today."},
		{Start: 8, End: 18, Text: "Small restaurant owners struggle to predict how much food to order each week."},
		{Start: 18, End: 30, Text: "Our solution is a forecasting tool that learns from their past sales. Unlike existing tools it needs no setup."},
		{Start: 30, End: 42, Text: "We charge a monthly subscription per location. Our architecture runs entirely on commodity hardware."},
	}, nil
}
