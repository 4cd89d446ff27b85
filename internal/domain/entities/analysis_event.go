package entities

import "time"

// AnalysisEventType identifies bus event kinds.
type AnalysisEventType string

const (
	AnalysisEventCompleted AnalysisEventType = "analysis.completed"
)

// AnalysisEvent is published on the event bus whenever an analysis run
// finishes, so dashboards can refresh without polling.
type AnalysisEvent struct {
	ID              string            `json:"id"`
	Type            AnalysisEventType `json:"type"`
	SessionID       string            `json:"session_id"`
	PrimaryIssueKey string            `json:"primary_issue_key"`
	Improved        *bool             `json:"improved,omitempty"`
	Timestamp       time.Time         `json:"timestamp"`
}
