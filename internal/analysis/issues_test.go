package analysis

import (
	"testing"

	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
)

func found(t entities.EventType, at float64, confidence float64) entities.DetectedEvent {
	return entities.DetectedEvent{
		Type:       t,
		Timestamp:  at,
		Quote:      "quote for " + string(t),
		Confidence: confidence,
		Status:     entities.StatusFound,
	}
}

func late(t entities.EventType, at float64, confidence float64) entities.DetectedEvent {
	ev := found(t, at, confidence)
	ev.Status = entities.StatusLate
	return ev
}

func missing(t entities.EventType) entities.DetectedEvent {
	return entities.DetectedEvent{
		Type:      t,
		Timestamp: entities.TimestampNotFound,
		Status:    entities.StatusMissing,
	}
}

func allMissing() map[entities.EventType]entities.DetectedEvent {
	events := make(map[entities.EventType]entities.DetectedEvent, len(entities.AllEventTypes))
	for _, t := range entities.AllEventTypes {
		events[t] = missing(t)
	}
	return events
}

func allFound() map[entities.EventType]entities.DetectedEvent {
	return map[entities.EventType]entities.DetectedEvent{
		entities.EventProblem:       found(entities.EventProblem, 3, 0.85),
		entities.EventSolution:      found(entities.EventSolution, 12, 0.9),
		entities.EventInnovation:    found(entities.EventInnovation, 25, 0.9),
		entities.EventTechnical:     found(entities.EventTechnical, 40, 0.85),
		entities.EventBusinessModel: found(entities.EventBusinessModel, 55, 0.8),
	}
}

func TestSelectPrimaryIssue_AllMissingPicksProblemFirst(t *testing.T) {
	issue := SelectPrimaryIssue(allMissing())
	if issue.Key != IssueProblemMissing {
		t.Fatalf("key = %s, want %s", issue.Key, IssueProblemMissing)
	}
	if !closeTo(issue.Severity, 1.0) {
		t.Errorf("severity = %f, want 1.0", issue.Severity)
	}
	if issue.EvidenceTimestamp != nil || issue.EvidenceQuote != nil {
		t.Error("a missing-element issue must not carry evidence")
	}
}

func TestSelectPrimaryIssue_LateProblemSeverityScalesLinearly(t *testing.T) {
	tests := []struct {
		name     string
		at       float64
		severity float64
	}{
		{"just late", 20.1, (20.1 - 20) / 40},
		{"half window", 40, 0.5},
		{"at ceiling", 60, 1.0},
		{"past ceiling clamps", 90, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := allFound()
			events[entities.EventProblem] = late(entities.EventProblem, tt.at, 0.85)

			issue := SelectPrimaryIssue(events)
			if issue.Key != IssueProblemLate {
				t.Fatalf("key = %s, want %s", issue.Key, IssueProblemLate)
			}
			if !closeTo(issue.Severity, tt.severity) {
				t.Errorf("severity = %f, want %f", issue.Severity, tt.severity)
			}
			if issue.EvidenceTimestamp == nil || !closeTo(*issue.EvidenceTimestamp, tt.at) {
				t.Errorf("evidence timestamp = %v, want %f", issue.EvidenceTimestamp, tt.at)
			}
		})
	}
}

func TestSelectPrimaryIssue_InnovationMissingBeatsLowerPriorities(t *testing.T) {
	events := allFound()
	events[entities.EventInnovation] = missing(entities.EventInnovation)
	events[entities.EventBusinessModel] = missing(entities.EventBusinessModel)
	events[entities.EventTechnical] = missing(entities.EventTechnical)

	issue := SelectPrimaryIssue(events)
	if issue.Key != IssueInnovationMissing {
		t.Fatalf("key = %s, want %s", issue.Key, IssueInnovationMissing)
	}
	if !closeTo(issue.Severity, 0.8) {
		t.Errorf("severity = %f, want 0.8", issue.Severity)
	}
}

func TestSelectPrimaryIssue_ProblemFoundInnovationMissing(t *testing.T) {
	events := allFound()
	events[entities.EventInnovation] = missing(entities.EventInnovation)

	issue := SelectPrimaryIssue(events)
	if issue.Key != IssueInnovationMissing {
		t.Fatalf("key = %s, want %s (not a problem issue)", issue.Key, IssueInnovationMissing)
	}
}

func TestSelectPrimaryIssue_SolutionBeforeProblem(t *testing.T) {
	events := allFound()
	events[entities.EventSolution] = found(entities.EventSolution, 2, 0.9)
	events[entities.EventProblem] = found(entities.EventProblem, 10, 0.85)

	issue := SelectPrimaryIssue(events)
	if issue.Key != IssueSolutionBeforeProblem {
		t.Fatalf("key = %s, want %s", issue.Key, IssueSolutionBeforeProblem)
	}
	if !closeTo(issue.Severity, 0.5) {
		t.Errorf("severity = %f, want 0.5", issue.Severity)
	}
	if issue.EvidenceTimestamp == nil || !closeTo(*issue.EvidenceTimestamp, 2) {
		t.Errorf("evidence should point at the early solution, got %v", issue.EvidenceTimestamp)
	}
}

func TestSelectPrimaryIssue_SolutionAtSameTimeAsProblemIsFine(t *testing.T) {
	events := allFound()
	events[entities.EventSolution] = found(entities.EventSolution, 10, 0.9)
	events[entities.EventProblem] = found(entities.EventProblem, 10, 0.85)

	issue := SelectPrimaryIssue(events)
	if issue.Key == IssueSolutionBeforeProblem {
		t.Error("equal timestamps must not count as out of order")
	}
}

func TestSelectPrimaryIssue_NothingWrongReturnsSentinel(t *testing.T) {
	issue := SelectPrimaryIssue(allFound())
	if issue.Key != IssueNone {
		t.Fatalf("key = %s, want %s", issue.Key, IssueNone)
	}
	if issue.Title != "Great pitch structure!" {
		t.Errorf("title = %q", issue.Title)
	}
	if !closeTo(issue.Severity, 0) {
		t.Errorf("severity = %f, want 0", issue.Severity)
	}
	if issue.EvidenceTimestamp != nil || issue.EvidenceQuote != nil {
		t.Error("sentinel issue must carry no evidence")
	}
}

func TestSelectPrimaryIssue_PriorityOrderOverSeverity(t *testing.T) {
	// A barely-late problem (low severity) still outranks a missing
	// innovation (severity 0.8): priority order is absolute.
	events := allFound()
	events[entities.EventProblem] = late(entities.EventProblem, 21, 0.85)
	events[entities.EventInnovation] = missing(entities.EventInnovation)

	issue := SelectPrimaryIssue(events)
	if issue.Key != IssueProblemLate {
		t.Fatalf("key = %s, want %s", issue.Key, IssueProblemLate)
	}
}

func TestGuidanceFor_UnknownKeyFallsBack(t *testing.T) {
	g := GuidanceFor("definitely_not_an_issue")
	if g.Title != issueCatalog[IssueNone].Title {
		t.Errorf("unknown key should fall back to sentinel, got %q", g.Title)
	}
}

func TestIssueCatalog_CoversAllRuleKeys(t *testing.T) {
	for _, rule := range issueRules {
		if _, ok := issueCatalog[rule.key]; !ok {
			t.Errorf("rule key %s has no catalog entry", rule.key)
		}
	}
}
