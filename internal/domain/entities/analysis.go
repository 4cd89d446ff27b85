package entities

import "time"

// EventType identifies one of the five canonical pitch elements.
type EventType string

const (
	EventProblem       EventType = "problem"
	EventInnovation    EventType = "innovation"
	EventTechnical     EventType = "technical"
	EventBusinessModel EventType = "business_model"
	EventSolution      EventType = "solution"
)

// AllEventTypes lists every detector category in canonical order.
var AllEventTypes = []EventType{
	EventProblem,
	EventInnovation,
	EventTechnical,
	EventBusinessModel,
	EventSolution,
}

// EventStatus describes whether and how a pitch element was detected.
type EventStatus string

const (
	StatusFound   EventStatus = "found"
	StatusMissing EventStatus = "missing"
	StatusLate    EventStatus = "late"
)

// TimestampNotFound is the sentinel timestamp for events with StatusMissing.
const TimestampNotFound = -1.0

// DetectedEvent is the outcome of running one category detector against the
// full sentence sequence. Every analysis run produces exactly one per
// category.
type DetectedEvent struct {
	Type       EventType   `json:"type"`
	Timestamp  float64     `json:"timestamp"`
	Quote      string      `json:"quote"`
	Confidence float64     `json:"confidence"`
	Status     EventStatus `json:"status"`
}

// Detected reports whether the element was present in the pitch at all.
func (e DetectedEvent) Detected() bool {
	return e.Status != StatusMissing
}

// PrimaryIssue is the single most important coaching point selected from all
// detected events for a session. The sentinel key "none" is used when the
// structure has nothing to fix.
type PrimaryIssue struct {
	Key               string   `json:"key"`
	Title             string   `json:"title"`
	Guideline         string   `json:"guideline"`
	NextAction        string   `json:"next_action"`
	Severity          float64  `json:"severity"`
	EvidenceTimestamp *float64 `json:"evidence_timestamp,omitempty"`
	EvidenceQuote     *string  `json:"evidence_quote,omitempty"`
}

// ImprovementSummary compares the tracked issue of a baseline session with
// the current attempt.
type ImprovementSummary struct {
	IssueKey        string   `json:"issue_key"`
	Before          string   `json:"before"`
	After           string   `json:"after"`
	Improved        bool     `json:"improved"`
	BeforeTimestamp *float64 `json:"before_timestamp,omitempty"`
	AfterTimestamp  *float64 `json:"after_timestamp,omitempty"`
}

// SessionAnalysis is the complete persisted result of one analyzer run.
// Saving a SessionAnalysis overwrites any prior record for the session.
type SessionAnalysis struct {
	SessionID       string                      `json:"session_id" db:"session_id"`
	DurationSeconds float64                     `json:"duration_seconds" db:"duration_seconds"`
	Transcript      string                      `json:"transcript" db:"transcript"`
	Events          map[EventType]DetectedEvent `json:"events" db:"events"`
	PrimaryIssue    PrimaryIssue                `json:"primary_issue" db:"primary_issue"`
	Improvement     *ImprovementSummary         `json:"improvement,omitempty" db:"improvement"`
	CoachingMessage string                      `json:"coaching_message,omitempty" db:"coaching_message"`
	CreatedAt       time.Time                   `json:"created_at" db:"created_at"`
}
