package analysis

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
)

func sentence(start float64, text string) entities.Sentence {
	return entities.Sentence{
		Start:      start,
		End:        start + 2,
		Text:       text,
		Normalized: strings.ToLower(strings.TrimSpace(text)),
	}
}

func TestDetectProblem_PainAndWhoTokens(t *testing.T) {
	// pain "struggle" (0.55) + who "users" (0.30) = 0.85, no impact token.
	sentences := []entities.Sentence{
		sentence(10, "Users struggle to find parking"),
	}

	ev := DetectProblem(sentences)
	if ev.Status != entities.StatusFound {
		t.Fatalf("status = %s, want found", ev.Status)
	}
	if !closeTo(ev.Confidence, 0.85) {
		t.Errorf("confidence = %f, want 0.85", ev.Confidence)
	}
	if !closeTo(ev.Timestamp, 10) {
		t.Errorf("timestamp = %f, want 10", ev.Timestamp)
	}
	if ev.Quote != "Users struggle to find parking" {
		t.Errorf("quote = %q", ev.Quote)
	}
}

func TestDetectProblem_LateAfterTwentySeconds(t *testing.T) {
	sentences := []entities.Sentence{
		sentence(25, "Users struggle to find parking"),
	}

	ev := DetectProblem(sentences)
	if ev.Status != entities.StatusLate {
		t.Errorf("status = %s, want late", ev.Status)
	}
	if !closeTo(ev.Confidence, 0.85) {
		t.Errorf("confidence = %f, want 0.85", ev.Confidence)
	}
}

func TestDetectProblem_ExactlyTwentySecondsIsFound(t *testing.T) {
	sentences := []entities.Sentence{
		sentence(20, "Users struggle to find parking"),
	}

	if ev := DetectProblem(sentences); ev.Status != entities.StatusFound {
		t.Errorf("status at t=20 = %s, want found", ev.Status)
	}
}

func TestDetectProblem_LengthPenaltyDropsBelowThreshold(t *testing.T) {
	// Only a pain token (0.55); 31+ words subtracts 0.1 -> 0.45 < threshold.
	long := "there is a real struggle involved when anyone at all attempts over and over again " +
		"to locate even one single open spot anywhere near the crowded downtown core each morning without any success"
	sentences := []entities.Sentence{
		sentence(5, long),
	}

	ev := DetectProblem(sentences)
	if ev.Status != entities.StatusMissing {
		t.Errorf("status = %s, want missing (length penalty)", ev.Status)
	}
	if !closeTo(ev.Timestamp, entities.TimestampNotFound) {
		t.Errorf("timestamp = %f, want -1", ev.Timestamp)
	}
}

func TestDetectProblem_EarliestQualifyingSentenceWins(t *testing.T) {
	sentences := []entities.Sentence{
		sentence(3, "Good morning everyone"),
		sentence(6, "Drivers struggle with parking daily"),
		sentence(12, "Customers struggle with this problem too"),
	}

	ev := DetectProblem(sentences)
	if !closeTo(ev.Timestamp, 6) {
		t.Errorf("timestamp = %f, want 6 (earliest qualifying)", ev.Timestamp)
	}
}

func TestDetectProblem_NoQualifyingSentence(t *testing.T) {
	sentences := []entities.Sentence{
		sentence(1, "The weather is lovely today"),
	}

	ev := DetectProblem(sentences)
	if ev.Status != entities.StatusMissing {
		t.Errorf("status = %s, want missing", ev.Status)
	}
	if ev.Quote != "" {
		t.Errorf("quote should be empty for missing, got %q", ev.Quote)
	}
}

func TestDetectInnovation_WithComparisonToken(t *testing.T) {
	sentences := []entities.Sentence{
		sentence(30, "Unlike competitors, we use a proprietary routing engine"),
	}

	ev := DetectInnovation(sentences)
	if ev.Status != entities.StatusFound {
		t.Fatalf("status = %s, want found", ev.Status)
	}
	if !closeTo(ev.Confidence, 0.9) {
		t.Errorf("confidence = %f, want 0.9", ev.Confidence)
	}
}

func TestDetectInnovation_LongSentenceWithoutComparison(t *testing.T) {
	text := "We developed a truly novel way of predicting open parking spots ahead of time"
	if len(text) <= 50 {
		t.Fatalf("test sentence must exceed 50 chars, has %d", len(text))
	}
	sentences := []entities.Sentence{
		sentence(30, text),
	}

	ev := DetectInnovation(sentences)
	if ev.Status != entities.StatusFound {
		t.Fatalf("status = %s, want found", ev.Status)
	}
	if !closeTo(ev.Confidence, 0.7) {
		t.Errorf("confidence = %f, want 0.7", ev.Confidence)
	}
}

func TestDetectInnovation_ShortSentenceWithoutComparisonMisses(t *testing.T) {
	text := "It is a novel idea"
	if len(text) > 50 {
		t.Fatalf("test sentence must be short, has %d chars", len(text))
	}
	sentences := []entities.Sentence{
		sentence(30, text),
	}

	if ev := DetectInnovation(sentences); ev.Status != entities.StatusMissing {
		t.Errorf("status = %s, want missing", ev.Status)
	}
}

func TestDetectInnovation_FirstMatchWins(t *testing.T) {
	sentences := []entities.Sentence{
		sentence(10, "Unlike competitors, our unique model learns per city"),
		sentence(40, "Unlike everyone else, our proprietary sensors are cheaper"),
	}

	ev := DetectInnovation(sentences)
	if !closeTo(ev.Timestamp, 10) {
		t.Errorf("timestamp = %f, want 10 (first match wins)", ev.Timestamp)
	}
}

func TestDetectTechnical_FixedConfidence(t *testing.T) {
	sentences := []entities.Sentence{
		sentence(45, "Our prototype has been running for three months"),
	}

	ev := DetectTechnical(sentences)
	if ev.Status != entities.StatusFound {
		t.Fatalf("status = %s, want found", ev.Status)
	}
	if !closeTo(ev.Confidence, 0.85) {
		t.Errorf("confidence = %f, want 0.85", ev.Confidence)
	}
}

func TestDetectBusinessModel_RequiresTwoDistinctTokens(t *testing.T) {
	sentences := []entities.Sentence{
		sentence(50, "Our revenue comes in monthly"),
	}

	if ev := DetectBusinessModel(sentences); ev.Status != entities.StatusMissing {
		t.Errorf("one token should not be enough, got %s", ev.Status)
	}
}

func TestDetectBusinessModel_ConfidenceScalesWithMatches(t *testing.T) {
	// "we charge" + "subscription" = 2 matches -> 0.5 + 0.15*2 = 0.8.
	sentences := []entities.Sentence{
		sentence(50, "We charge a monthly subscription"),
	}

	ev := DetectBusinessModel(sentences)
	if ev.Status != entities.StatusFound {
		t.Fatalf("status = %s, want found", ev.Status)
	}
	if !closeTo(ev.Confidence, 0.8) {
		t.Errorf("confidence = %f, want 0.8", ev.Confidence)
	}
}

func TestDetectBusinessModel_ConfidenceCapped(t *testing.T) {
	// "revenue", "pricing", "price" (substring of pricing), "subscription",
	// "b2b" all match: capped at 0.95.
	sentences := []entities.Sentence{
		sentence(50, "Our b2b revenue model uses tiered subscription pricing"),
	}

	ev := DetectBusinessModel(sentences)
	if ev.Status != entities.StatusFound {
		t.Fatalf("status = %s, want found", ev.Status)
	}
	if !closeTo(ev.Confidence, 0.95) {
		t.Errorf("confidence = %f, want 0.95 cap", ev.Confidence)
	}
}

func TestDetectSolution_FixedConfidence(t *testing.T) {
	sentences := []entities.Sentence{
		sentence(15, "Our solution finds a spot before you arrive"),
	}

	ev := DetectSolution(sentences)
	if ev.Status != entities.StatusFound {
		t.Fatalf("status = %s, want found", ev.Status)
	}
	if !closeTo(ev.Confidence, 0.9) {
		t.Errorf("confidence = %f, want 0.9", ev.Confidence)
	}
}

func TestDetect_AlwaysFiveEvents(t *testing.T) {
	cases := map[string][]entities.Sentence{
		"empty":     nil,
		"unrelated": {sentence(0, "Hello and welcome")},
		"rich": {
			sentence(2, "Drivers struggle to park"),
			sentence(10, "Our solution predicts free spots"),
			sentence(20, "Unlike competitors we use a proprietary model"),
			sentence(30, "The prototype works today"),
			sentence(40, "We charge a subscription"),
		},
	}

	for name, sentences := range cases {
		t.Run(name, func(t *testing.T) {
			events := Detect(sentences)
			if len(events) != len(entities.AllEventTypes) {
				t.Fatalf("got %d events, want %d", len(events), len(entities.AllEventTypes))
			}
			for _, et := range entities.AllEventTypes {
				ev, ok := events[et]
				if !ok {
					t.Fatalf("missing event for category %s", et)
				}
				if ev.Type != et {
					t.Errorf("event type mismatch: %s vs %s", ev.Type, et)
				}
				missing := ev.Status == entities.StatusMissing
				sentinel := closeTo(ev.Timestamp, entities.TimestampNotFound)
				if missing != sentinel {
					t.Errorf("%s: missing=%v but timestamp=%f", et, missing, ev.Timestamp)
				}
				if ev.Confidence < 0 || ev.Confidence > 1 {
					t.Errorf("%s: confidence %f outside [0,1]", et, ev.Confidence)
				}
			}
		})
	}
}

func TestDetect_Idempotent(t *testing.T) {
	segments := []entities.Segment{
		{Start: 0, End: 8, Text: "Drivers struggle to find parking every day. It wastes hours."},
		{Start: 8, End: 16, Text: "Our solution predicts open spots. Unlike competitors we use a proprietary model."},
		{Start: 16, End: 24, Text: "The prototype is live in two cities. We charge a monthly subscription."},
	}

	first := Detect(SplitSentences(segments))
	second := Detect(SplitSentences(segments))
	if !reflect.DeepEqual(first, second) {
		t.Error("detection is not deterministic across identical runs")
	}

	firstIssue := SelectPrimaryIssue(first)
	secondIssue := SelectPrimaryIssue(second)
	if !reflect.DeepEqual(firstIssue, secondIssue) {
		t.Error("issue selection is not deterministic across identical runs")
	}
}
