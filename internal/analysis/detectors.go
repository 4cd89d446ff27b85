package analysis

import (
	"strings"

	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
)

// Detector scoring constants.
const (
	problemPainWeight   = 0.55
	problemWhoWeight    = 0.30
	problemImpactWeight = 0.15
	problemThreshold    = 0.55

	// A problem statement arriving after this many seconds is late.
	problemLateAfterSeconds = 20.0

	// Sentences longer than this many words are penalized: rambling problem
	// statements score lower than crisp ones.
	longSentenceWords   = 30
	longSentencePenalty = 0.1

	innovationLongSentenceChars  = 50
	innovationWithComparisonConf = 0.9
	innovationBaseConf           = 0.7

	technicalConf = 0.85

	businessBaseConf     = 0.5
	businessPerTokenConf = 0.15
	businessMaxConf      = 0.95
	businessMinTokens    = 2

	solutionConf = 0.9
)

// Detect runs all five structure detectors over the sentence sequence and
// returns exactly one DetectedEvent per category. Detection is deterministic
// and side-effect-free; an empty sentence list yields five missing events.
func Detect(sentences []entities.Sentence) map[entities.EventType]entities.DetectedEvent {
	return map[entities.EventType]entities.DetectedEvent{
		entities.EventProblem:       DetectProblem(sentences),
		entities.EventInnovation:    DetectInnovation(sentences),
		entities.EventTechnical:     DetectTechnical(sentences),
		entities.EventBusinessModel: DetectBusinessModel(sentences),
		entities.EventSolution:      DetectSolution(sentences),
	}
}

// DetectProblem scores every sentence on pain/who/impact vocabulary hits and
// returns the chronologically earliest sentence clearing the confidence
// threshold. Sentences are already sorted by start with input order breaking
// exact ties, so the first qualifying sentence is the selection. A problem
// stated after the late threshold is found but flagged late.
func DetectProblem(sentences []entities.Sentence) entities.DetectedEvent {
	for _, s := range sentences {
		confidence := 0.0
		if containsAny(s.Normalized, painTokens) {
			confidence += problemPainWeight
		}
		if containsAny(s.Normalized, whoTokens) {
			confidence += problemWhoWeight
		}
		if containsAny(s.Normalized, impactTokens) {
			confidence += problemImpactWeight
		}
		if len(strings.Fields(s.Normalized)) > longSentenceWords {
			confidence -= longSentencePenalty
		}
		if confidence < problemThreshold {
			continue
		}

		status := entities.StatusFound
		if s.Start > problemLateAfterSeconds {
			status = entities.StatusLate
		}
		return entities.DetectedEvent{
			Type:       entities.EventProblem,
			Timestamp:  s.Start,
			Quote:      s.Text,
			Confidence: clamp01(confidence),
			Status:     status,
		}
	}
	return missingEvent(entities.EventProblem)
}

// DetectInnovation returns the first sentence pairing an innovation token
// with either a comparison token or enough length to carry a real novelty
// claim. First match wins.
func DetectInnovation(sentences []entities.Sentence) entities.DetectedEvent {
	for _, s := range sentences {
		if !containsAny(s.Normalized, innovationTokens) {
			continue
		}
		hasComparison := containsAny(s.Normalized, comparisonTokens)
		if !hasComparison && len(s.Text) <= innovationLongSentenceChars {
			continue
		}

		confidence := innovationBaseConf
		if hasComparison {
			confidence = innovationWithComparisonConf
		}
		return entities.DetectedEvent{
			Type:       entities.EventInnovation,
			Timestamp:  s.Start,
			Quote:      s.Text,
			Confidence: confidence,
			Status:     entities.StatusFound,
		}
	}
	return missingEvent(entities.EventInnovation)
}

// DetectTechnical returns the first sentence containing any technical
// feasibility token.
func DetectTechnical(sentences []entities.Sentence) entities.DetectedEvent {
	for _, s := range sentences {
		if !containsAny(s.Normalized, technicalTokens) {
			continue
		}
		return entities.DetectedEvent{
			Type:       entities.EventTechnical,
			Timestamp:  s.Start,
			Quote:      s.Text,
			Confidence: technicalConf,
			Status:     entities.StatusFound,
		}
	}
	return missingEvent(entities.EventTechnical)
}

// DetectBusinessModel requires two or more distinct business tokens in one
// sentence; confidence grows with the match count up to a cap.
func DetectBusinessModel(sentences []entities.Sentence) entities.DetectedEvent {
	for _, s := range sentences {
		matches := countMatches(s.Normalized, businessTokens)
		if matches < businessMinTokens {
			continue
		}

		confidence := businessBaseConf + businessPerTokenConf*float64(matches)
		if confidence > businessMaxConf {
			confidence = businessMaxConf
		}
		return entities.DetectedEvent{
			Type:       entities.EventBusinessModel,
			Timestamp:  s.Start,
			Quote:      s.Text,
			Confidence: confidence,
			Status:     entities.StatusFound,
		}
	}
	return missingEvent(entities.EventBusinessModel)
}

// DetectSolution returns the first sentence containing a solution-intro
// token.
func DetectSolution(sentences []entities.Sentence) entities.DetectedEvent {
	for _, s := range sentences {
		if !containsAny(s.Normalized, solutionIntroTokens) {
			continue
		}
		return entities.DetectedEvent{
			Type:       entities.EventSolution,
			Timestamp:  s.Start,
			Quote:      s.Text,
			Confidence: solutionConf,
			Status:     entities.StatusFound,
		}
	}
	return missingEvent(entities.EventSolution)
}

func missingEvent(t entities.EventType) entities.DetectedEvent {
	return entities.DetectedEvent{
		Type:      t,
		Timestamp: entities.TimestampNotFound,
		Status:    entities.StatusMissing,
	}
}

func containsAny(normalized string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(normalized, token) {
			return true
		}
	}
	return false
}

func countMatches(normalized string, tokens []string) int {
	count := 0
	for _, token := range tokens {
		if strings.Contains(normalized, token) {
			count++
		}
	}
	return count
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
