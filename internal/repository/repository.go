package repository

import (
	"time"

	"wordguess/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64, username string) error
}

// WordRepository defines word catalog operations
type WordRepository interface {
	AllWords() ([]domain.Word, error)
	GetWordByID(id int) (*domain.Word, error)
}

// SessionRepository defines session and guess data operations.
// Every mutation is durable before the call returns, so a crash between
// calls leaves the store consistent with the last completed operation.
type SessionRepository interface {
	CreateSession(userID int64, wordID int, startedAt time.Time) (int64, error)
	AppendGuess(sessionID int64, attemptNo int, text string) error
	UpdateSessionStatus(sessionID int64, status domain.SessionStatus, attemptsUsed int, solved bool) error
	FindPausedSession(userID int64) (*domain.Session, error)
	ListGuesses(sessionID int64) ([]domain.Guess, error)
	CountSessionsOnDate(userID int64, date time.Time, excluding domain.SessionStatus) (int, error)
	DailyResults(date time.Time) ([]domain.DailyResult, error)
	ListUserSessions(userID int64) ([]domain.Session, error)
	CleanOldSessions(days int) error
}
