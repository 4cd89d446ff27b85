package analysis

import (
	"fmt"

	"github.com/pitchflow-app/pitchflow/backend/internal/domain/entities"
)

// issueCategory maps an issue key to the single event category the baseline
// comparison tracks. Keys without an entry (including "none") produce no
// comparison.
var issueCategory = map[string]entities.EventType{
	IssueProblemMissing:        entities.EventProblem,
	IssueProblemLate:           entities.EventProblem,
	IssueInnovationMissing:     entities.EventInnovation,
	IssueBusinessModelMissing:  entities.EventBusinessModel,
	IssueTechnicalMissing:      entities.EventTechnical,
	IssueSolutionBeforeProblem: entities.EventSolution,
}

// categoryLabels are the human-readable names used in before/after strings.
var categoryLabels = map[entities.EventType]string{
	entities.EventProblem:       "Problem statement",
	entities.EventInnovation:    "Innovation",
	entities.EventTechnical:     "Technical feasibility",
	entities.EventBusinessModel: "Business model",
	entities.EventSolution:      "Solution",
}

// CompareWithBaseline builds a before/after summary for the one event
// category tracked by the baseline session's primary issue. It returns nil
// when no comparison is possible: unknown issue key, category absent from
// either event set, or neither attempt produced a usable timestamp.
func CompareWithBaseline(
	baselineEvents map[entities.EventType]entities.DetectedEvent,
	baselineIssueKey string,
	currentEvents map[entities.EventType]entities.DetectedEvent,
) *entities.ImprovementSummary {
	category, ok := issueCategory[baselineIssueKey]
	if !ok {
		return nil
	}
	before, ok := baselineEvents[category]
	if !ok {
		return nil
	}
	after, ok := currentEvents[category]
	if !ok {
		return nil
	}
	if !before.Detected() && !after.Detected() {
		return nil
	}

	var improved bool
	switch {
	case !before.Detected() && after.Detected():
		improved = true
	case before.Detected() && !after.Detected():
		improved = false
	case before.Status == entities.StatusLate && after.Status == entities.StatusFound:
		improved = true
	default:
		// Both present: earlier (or equal) is better.
		improved = after.Timestamp <= before.Timestamp
	}

	label := categoryLabels[category]
	summary := &entities.ImprovementSummary{
		IssueKey: baselineIssueKey,
		Before:   describeEvent(label, before),
		After:    describeEvent(label, after),
		Improved: improved,
	}
	if before.Detected() {
		ts := before.Timestamp
		summary.BeforeTimestamp = &ts
	}
	if after.Detected() {
		ts := after.Timestamp
		summary.AfterTimestamp = &ts
	}
	return summary
}

func describeEvent(label string, event entities.DetectedEvent) string {
	switch event.Status {
	case entities.StatusMissing:
		return fmt.Sprintf("%s was missing", label)
	case entities.StatusLate:
		return fmt.Sprintf("%s came late at %s", label, FormatTimestamp(event.Timestamp))
	default:
		return fmt.Sprintf("%s explained at %s", label, FormatTimestamp(event.Timestamp))
	}
}

// FormatTimestamp renders seconds as mm:ss, or "not mentioned" for the
// missing sentinel.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		return "not mentioned"
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// CategoryLabel exposes the display label for an event category.
func CategoryLabel(t entities.EventType) string {
	return categoryLabels[t]
}
