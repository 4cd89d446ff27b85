package analysis

import (
	"math"
	"testing"

	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
)

const timeTolerance = 1e-9

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < timeTolerance
}

func TestValidateSegments_RejectsEndBeforeStart(t *testing.T) {
	segments := []entities.Segment{
		{Start: 5, End: 4, Text: "backwards"},
	}
	err := ValidateSegments(segments)
	if err == nil {
		t.Fatal("expected error for end <= start")
	}
}

func TestValidateSegments_RejectsNegativeStart(t *testing.T) {
	segments := []entities.Segment{
		{Start: -1, End: 4, Text: "negative"},
	}
	if err := ValidateSegments(segments); err == nil {
		t.Fatal("expected error for negative start")
	}
}

func TestValidateSegments_AcceptsEmptyList(t *testing.T) {
	if err := ValidateSegments(nil); err != nil {
		t.Fatalf("empty list should be valid, got %v", err)
	}
}

func TestSplitSentences_ProportionalDurations(t *testing.T) {
	// 3 words : 7 words inside a 10 second segment -> 3s and 7s.
	segments := []entities.Segment{
		{
			Start: 10,
			End:   20,
			Text:  "We hate parking. It wastes twenty minutes for every driver.",
		},
	}

	sentences := SplitSentences(segments)
	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(sentences))
	}

	first, second := sentences[0], sentences[1]
	if !closeTo(first.Start, 10) || !closeTo(first.End, 13) {
		t.Errorf("first sentence timing = [%f, %f], want [10, 13]", first.Start, first.End)
	}
	if !closeTo(second.Start, 13) || !closeTo(second.End, 20) {
		t.Errorf("second sentence timing = [%f, %f], want [13, 20]", second.Start, second.End)
	}
	// Contiguous, no overlap, inside the segment bounds.
	if !closeTo(first.End, second.Start) {
		t.Errorf("sentences not contiguous: %f vs %f", first.End, second.Start)
	}
}

func TestSplitSentences_NoTerminalPunctuation(t *testing.T) {
	segments := []entities.Segment{
		{Start: 0, End: 4, Text: "so we kept talking without a pause"},
	}

	sentences := SplitSentences(segments)
	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(sentences))
	}
	if !closeTo(sentences[0].Start, 0) || !closeTo(sentences[0].End, 4) {
		t.Errorf("sentence should span full segment, got [%f, %f]", sentences[0].Start, sentences[0].End)
	}
}

func TestSplitSentences_SkipsEmptySegments(t *testing.T) {
	segments := []entities.Segment{
		{Start: 0, End: 2, Text: "   "},
		{Start: 2, End: 4, Text: "Real words here."},
	}

	sentences := SplitSentences(segments)
	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(sentences))
	}
	if sentences[0].Text != "Real words here." {
		t.Errorf("unexpected sentence text %q", sentences[0].Text)
	}
}

func TestSplitSentences_NormalizesText(t *testing.T) {
	segments := []entities.Segment{
		{Start: 0, End: 2, Text: "Users STRUGGLE Here!"},
	}

	sentences := SplitSentences(segments)
	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(sentences))
	}
	if sentences[0].Text != "Users STRUGGLE Here!" {
		t.Errorf("original casing must be preserved, got %q", sentences[0].Text)
	}
	if sentences[0].Normalized != "users struggle here!" {
		t.Errorf("normalized = %q", sentences[0].Normalized)
	}
}

func TestSplitSentences_DiscardsEmptyFragments(t *testing.T) {
	segments := []entities.Segment{
		{Start: 0, End: 6, Text: "First thought.   Second thought.  "},
	}

	sentences := SplitSentences(segments)
	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(sentences))
	}
	if sentences[0].Text != "First thought." || sentences[1].Text != "Second thought." {
		t.Errorf("got %q and %q", sentences[0].Text, sentences[1].Text)
	}
}

func TestSplitSentences_StableOrderForEqualStarts(t *testing.T) {
	// Overlapping segments with the same start must keep input order.
	segments := []entities.Segment{
		{Start: 5, End: 7, Text: "Spoken first."},
		{Start: 5, End: 7, Text: "Spoken second."},
	}

	sentences := SplitSentences(segments)
	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(sentences))
	}
	if sentences[0].Text != "Spoken first." || sentences[1].Text != "Spoken second." {
		t.Errorf("input order not preserved for equal starts: %q then %q", sentences[0].Text, sentences[1].Text)
	}
}

func TestSplitSentences_LastSentenceClosesSegment(t *testing.T) {
	segments := []entities.Segment{
		{Start: 0, End: 10, Text: "One two three. Four five. Six seven eight nine."},
	}

	sentences := SplitSentences(segments)
	if len(sentences) != 3 {
		t.Fatalf("expected 3 sentences, got %d", len(sentences))
	}
	last := sentences[len(sentences)-1]
	if !closeTo(last.End, 10) {
		t.Errorf("last sentence end = %f, want 10", last.End)
	}
	for i := 1; i < len(sentences); i++ {
		if !closeTo(sentences[i-1].End, sentences[i].Start) {
			t.Errorf("gap between sentence %d and %d", i-1, i)
		}
	}
}
