package domain

import "time"

const (
	// WordLength is the length of every answer and every accepted guess.
	WordLength = 5
	// MaxAttempts is how many guesses a session allows before it fails.
	MaxAttempts = 5
	// MaxDailySessions is how many sessions a user may finish per calendar day.
	MaxDailySessions = 3
	// PauseToken suspends a session without consuming an attempt.
	PauseToken = "OK"
)

// SessionStatus represents the lifecycle state of a session
type SessionStatus string

const (
	StatusOngoing   SessionStatus = "ONGOING"
	StatusPaused    SessionStatus = "PAUSED"
	StatusCompleted SessionStatus = "COMPLETED"
	StatusFailed    SessionStatus = "FAILED"
)

// Terminal reports whether the status is final
func (s SessionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Session is one user's attempt to guess one word
type Session struct {
	ID           int64
	UserID       int64
	WordID       int
	StartedAt    time.Time
	AttemptsUsed int
	Solved       bool
	Status       SessionStatus
}

// Guess is a single recorded attempt within a session.
// Verdicts are never stored with it; they are re-derived from the
// guess text and the target word.
type Guess struct {
	SessionID int64
	AttemptNo int
	Text      string
}
