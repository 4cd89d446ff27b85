package analysis

import (
	"testing"

	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
)

func TestCompareWithBaseline_MissingToFound(t *testing.T) {
	baseline := allMissing()
	current := allMissing()
	current[entities.EventProblem] = found(entities.EventProblem, 8, 0.85)

	summary := CompareWithBaseline(baseline, IssueProblemMissing, current)
	if summary == nil {
		t.Fatal("expected a summary")
	}
	if !summary.Improved {
		t.Error("missing -> found must be an improvement")
	}
	if summary.Before != "Problem statement was missing" {
		t.Errorf("before = %q", summary.Before)
	}
	if summary.After != "Problem statement explained at 00:08" {
		t.Errorf("after = %q", summary.After)
	}
	if summary.BeforeTimestamp != nil {
		t.Error("before timestamp should be nil for a missing baseline event")
	}
	if summary.AfterTimestamp == nil || !closeTo(*summary.AfterTimestamp, 8) {
		t.Errorf("after timestamp = %v, want 8", summary.AfterTimestamp)
	}
}

func TestCompareWithBaseline_FoundToMissingRegresses(t *testing.T) {
	baseline := allMissing()
	baseline[entities.EventInnovation] = found(entities.EventInnovation, 30, 0.9)
	current := allMissing()

	summary := CompareWithBaseline(baseline, IssueInnovationMissing, current)
	if summary == nil {
		t.Fatal("expected a summary")
	}
	if summary.Improved {
		t.Error("found -> missing is a regression")
	}
	if summary.After != "Innovation was missing" {
		t.Errorf("after = %q", summary.After)
	}
}

func TestCompareWithBaseline_LateToFound(t *testing.T) {
	baseline := allMissing()
	baseline[entities.EventProblem] = late(entities.EventProblem, 35, 0.85)
	current := allMissing()
	current[entities.EventProblem] = found(entities.EventProblem, 5, 0.85)

	summary := CompareWithBaseline(baseline, IssueProblemLate, current)
	if summary == nil {
		t.Fatal("expected a summary")
	}
	if !summary.Improved {
		t.Error("late -> found must be an improvement")
	}
	if summary.Before != "Problem statement came late at 00:35" {
		t.Errorf("before = %q", summary.Before)
	}
}

func TestCompareWithBaseline_EarlierTimestampImproves(t *testing.T) {
	baseline := allMissing()
	baseline[entities.EventProblem] = late(entities.EventProblem, 25, 0.85)
	current := allMissing()
	current[entities.EventProblem] = late(entities.EventProblem, 22, 0.85)

	summary := CompareWithBaseline(baseline, IssueProblemLate, current)
	if summary == nil {
		t.Fatal("expected a summary")
	}
	if !summary.Improved {
		t.Error("earlier timestamp must count as improvement")
	}
}

func TestCompareWithBaseline_EqualTimestampImproves(t *testing.T) {
	baseline := allMissing()
	baseline[entities.EventProblem] = found(entities.EventProblem, 10, 0.85)
	current := allMissing()
	current[entities.EventProblem] = found(entities.EventProblem, 10, 0.85)

	summary := CompareWithBaseline(baseline, IssueProblemMissing, current)
	if summary == nil {
		t.Fatal("expected a summary")
	}
	if !summary.Improved {
		t.Error("equal timestamp counts as improved")
	}
}

func TestCompareWithBaseline_LaterTimestampRegresses(t *testing.T) {
	baseline := allMissing()
	baseline[entities.EventSolution] = found(entities.EventSolution, 10, 0.9)
	current := allMissing()
	current[entities.EventSolution] = found(entities.EventSolution, 30, 0.9)

	summary := CompareWithBaseline(baseline, IssueSolutionBeforeProblem, current)
	if summary == nil {
		t.Fatal("expected a summary")
	}
	if summary.Improved {
		t.Error("later timestamp is a regression")
	}
}

func TestCompareWithBaseline_BothMissingYieldsNoSummary(t *testing.T) {
	if summary := CompareWithBaseline(allMissing(), IssueProblemMissing, allMissing()); summary != nil {
		t.Errorf("expected nil summary, got %+v", summary)
	}
}

func TestCompareWithBaseline_UnknownIssueKey(t *testing.T) {
	if summary := CompareWithBaseline(allMissing(), IssueNone, allFound()); summary != nil {
		t.Errorf("the sentinel issue tracks no category, got %+v", summary)
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{8, "00:08"},
		{65, "01:05"},
		{600, "10:00"},
		{entities.TimestampNotFound, "not mentioned"},
	}

	for _, tt := range tests {
		if got := FormatTimestamp(tt.seconds); got != tt.want {
			t.Errorf("FormatTimestamp(%f) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
