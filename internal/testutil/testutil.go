package testutil

import (
	"time"

	"wordguess/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test word
func NewTestWord(id int, text string) domain.Word {
	return domain.Word{ID: id, Text: text}
}

// NewTestSession creates a test session
func NewTestSession(id, userID int64, wordID int, status domain.SessionStatus) *domain.Session {
	return &domain.Session{
		ID:        id,
		UserID:    userID,
		WordID:    wordID,
		StartedAt: time.Now(),
		Status:    status,
	}
}

// NewTestGuess creates a test guess
func NewTestGuess(sessionID int64, attemptNo int, text string) domain.Guess {
	return domain.Guess{
		SessionID: sessionID,
		AttemptNo: attemptNo,
		Text:      text,
	}
}
