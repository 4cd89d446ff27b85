package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pitchflow-app/pitchflow/backend/internal/analysis"
	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
	"github.com/pitchflow-app/pitchflow/backend/internal/domain/providers"
	"github.com/pitchflow-app/pitchflow/backend/internal/domain/repositories"
	"github.com/pitchflow-app/pitchflow/backend/internal/infrastructure/observability"
	apperrors "github.com/pitchflow-app/pitchflow/backend/pkg/errors"
)

// AnalyzeRequest describes one analysis run. Either Segments or RecordingURL
// must be set; when both are present the segments win and no transcription
// happens.
type AnalyzeRequest struct {
	SessionID         string             `json:"session_id"`
	Segments          []entities.Segment `json:"segments,omitempty"`
	RecordingURL      string             `json:"recording_url,omitempty"`
	BaselineSessionID string             `json:"baseline_session_id,omitempty"`
	DurationSeconds   float64            `json:"duration_seconds,omitempty"`
}

// AnalysisService orchestrates a full analyzer run: transcript in, persisted
// structure report out. Persistence is the only hard dependency; search,
// coaching and the event bus all degrade gracefully.
type AnalysisService struct {
	repo        repositories.AnalysisRepository
	searchRepo  repositories.AnalysisSearchRepository
	transcriber providers.TranscriptionProvider
	coach       providers.CoachingMessageProvider
	eventBus    providers.EventBus
	metrics     *observability.Metrics
}

// NewAnalysisService creates a new analysis service. Every dependency except
// the repository may be nil.
func NewAnalysisService(
	repo repositories.AnalysisRepository,
	searchRepo repositories.AnalysisSearchRepository,
	transcriber providers.TranscriptionProvider,
	coach providers.CoachingMessageProvider,
	eventBus providers.EventBus,
	metrics *observability.Metrics,
) *AnalysisService {
	return &AnalysisService{
		repo:        repo,
		searchRepo:  searchRepo,
		transcriber: transcriber,
		coach:       coach,
		eventBus:    eventBus,
		metrics:     metrics,
	}
}

// Analyze runs the deterministic pipeline for one session and stores the
// result, overwriting any prior analysis of the same session.
func (s *AnalysisService) Analyze(ctx context.Context, req *AnalyzeRequest) (*entities.SessionAnalysis, error) {
	started := time.Now()

	if req == nil || req.SessionID == "" {
		return nil, apperrors.NewValidationError("session_id is required")
	}

	// An explicitly empty segment list is a valid (silent) transcript; only a
	// fully absent one falls back to transcription.
	segments := req.Segments
	if segments == nil {
		if req.RecordingURL == "" || s.transcriber == nil {
			return nil, apperrors.NewValidationError("segments or recording_url is required")
		}
		transcribed, err := s.transcriber.Transcribe(ctx, req.RecordingURL)
		if err != nil {
			return nil, apperrors.NewExternalError("failed to transcribe recording", err)
		}
		segments = transcribed
	}

	if err := analysis.ValidateSegments(segments); err != nil {
		return nil, apperrors.NewValidationErrorWithCause("invalid transcript segments", err)
	}

	sentences := analysis.SplitSentences(segments)
	events := analysis.Detect(sentences)
	issue := analysis.SelectPrimaryIssue(events)

	result := &entities.SessionAnalysis{
		SessionID:       req.SessionID,
		DurationSeconds: s.resolveDuration(req, segments),
		Transcript:      joinTranscript(segments),
		Events:          events,
		PrimaryIssue:    issue,
		CreatedAt:       time.Now().UTC(),
	}

	result.Improvement = s.compareWithBaseline(ctx, req.BaselineSessionID, events)
	result.CoachingMessage = s.generateCoaching(ctx, &issue, result.DurationSeconds)

	if err := s.repo.Save(ctx, result); err != nil {
		return nil, err
	}

	s.indexAndPublish(ctx, result)
	observability.RecordAnalysisMetric(ctx, s.metrics, issue.Key, result.Improvement != nil, time.Since(started))

	return result, nil
}

// compareWithBaseline loads the baseline analysis and builds the improvement
// summary. A missing or unreadable baseline never fails the run.
func (s *AnalysisService) compareWithBaseline(
	ctx context.Context,
	baselineSessionID string,
	events map[entities.EventType]entities.DetectedEvent,
) *entities.ImprovementSummary {
	if baselineSessionID == "" {
		return nil
	}

	baseline, err := s.repo.GetBySessionID(ctx, baselineSessionID)
	if err != nil {
		log.Printf("Warning: baseline %s unavailable, skipping comparison: %v", baselineSessionID, err)
		return nil
	}

	return analysis.CompareWithBaseline(baseline.Events, baseline.PrimaryIssue.Key, events)
}

// generateCoaching asks the coaching collaborator for a message. An
// unavailable collaborator degrades to an empty message.
func (s *AnalysisService) generateCoaching(ctx context.Context, issue *entities.PrimaryIssue, durationSeconds float64) string {
	if s.coach == nil {
		return ""
	}

	message, err := s.coach.GenerateMessage(ctx, issue, durationSeconds)
	if err != nil {
		if errors.Is(err, providers.ErrCoachingUnavailable) {
			log.Printf("Warning: coaching provider unavailable, returning analysis without message: %v", err)
		} else {
			log.Printf("Warning: coaching generation failed: %v", err)
		}
		return ""
	}
	return message
}

// indexAndPublish is best-effort fan-out after the result is durable.
func (s *AnalysisService) indexAndPublish(ctx context.Context, result *entities.SessionAnalysis) {
	if s.searchRepo != nil {
		if err := s.searchRepo.Index(ctx, result); err != nil {
			log.Printf("Warning: failed to index analysis %s: %v", result.SessionID, err)
		}
	}

	if s.eventBus == nil {
		return
	}

	event := &entities.AnalysisEvent{
		ID:              uuid.New().String(),
		Type:            entities.AnalysisEventCompleted,
		SessionID:       result.SessionID,
		PrimaryIssueKey: result.PrimaryIssue.Key,
		Timestamp:       time.Now().UTC(),
	}
	if result.Improvement != nil {
		improved := result.Improvement.Improved
		event.Improved = &improved
	}

	for _, channel := range []string{
		providers.EventChannelAnalyses,
		providers.GetSessionChannel(result.SessionID),
	} {
		if err := s.eventBus.Publish(ctx, channel, event); err != nil {
			log.Printf("Warning: failed to publish analysis event to %s: %v", channel, err)
		}
	}
}

func (s *AnalysisService) resolveDuration(req *AnalyzeRequest, segments []entities.Segment) float64 {
	if req.DurationSeconds > 0 {
		return req.DurationSeconds
	}
	if len(segments) > 0 {
		return segments[len(segments)-1].End
	}
	return 0
}

// GetBySessionID returns the stored analysis for a session.
func (s *AnalysisService) GetBySessionID(ctx context.Context, sessionID string) (*entities.SessionAnalysis, error) {
	if sessionID == "" {
		return nil, apperrors.NewValidationError("session_id is required")
	}
	return s.repo.GetBySessionID(ctx, sessionID)
}

// List pages stored analyses, newest first.
func (s *AnalysisService) List(ctx context.Context, limit, offset int) ([]*entities.SessionAnalysis, error) {
	return s.repo.List(ctx, limit, offset)
}

// Search queries indexed transcripts. Unavailable when no search backend is
// configured.
func (s *AnalysisService) Search(ctx context.Context, query string, limit int) ([]*repositories.AnalysisSearchHit, error) {
	if s.searchRepo == nil {
		return nil, apperrors.NewUnavailableError("transcript search is not configured", nil)
	}
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.NewValidationError("query is required")
	}
	return s.searchRepo.Search(ctx, query, limit)
}

func joinTranscript(segments []entities.Segment) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		text := strings.TrimSpace(segment.Text)
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
