package entities

import "time"

// PracticeSession is one recorded pitch attempt. The analysis for a session
// is stored separately, keyed by the session id.
type PracticeSession struct {
	ID              string    `json:"id" db:"id"`
	UserID          string    `json:"user_id" db:"user_id"`
	Title           string    `json:"title" db:"title"`
	DurationSeconds float64   `json:"duration_seconds" db:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
