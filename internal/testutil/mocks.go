package testutil

import (
	"time"

	"wordguess/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64, username string) error {
	args := m.Called(userID, username)
	return args.Error(0)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) AllWords() ([]domain.Word, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) GetWordByID(id int) (*domain.Word, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

// MockSessionRepository is a mock for SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) CreateSession(userID int64, wordID int, startedAt time.Time) (int64, error) {
	args := m.Called(userID, wordID, startedAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepository) AppendGuess(sessionID int64, attemptNo int, text string) error {
	args := m.Called(sessionID, attemptNo, text)
	return args.Error(0)
}

func (m *MockSessionRepository) UpdateSessionStatus(sessionID int64, status domain.SessionStatus, attemptsUsed int, solved bool) error {
	args := m.Called(sessionID, status, attemptsUsed, solved)
	return args.Error(0)
}

func (m *MockSessionRepository) FindPausedSession(userID int64) (*domain.Session, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) ListGuesses(sessionID int64) ([]domain.Guess, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Guess), args.Error(1)
}

func (m *MockSessionRepository) CountSessionsOnDate(userID int64, date time.Time, excluding domain.SessionStatus) (int, error) {
	args := m.Called(userID, date, excluding)
	return args.Int(0), args.Error(1)
}

func (m *MockSessionRepository) DailyResults(date time.Time) ([]domain.DailyResult, error) {
	args := m.Called(date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyResult), args.Error(1)
}

func (m *MockSessionRepository) ListUserSessions(userID int64) ([]domain.Session, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Session), args.Error(1)
}

func (m *MockSessionRepository) CleanOldSessions(days int) error {
	args := m.Called(days)
	return args.Error(0)
}
