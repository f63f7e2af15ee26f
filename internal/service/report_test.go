package service

import (
	"fmt"
	"testing"
	"time"

	"wordguess/internal/domain"
	"wordguess/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestReportService_DailyReport(t *testing.T) {
	date := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	expected := []domain.DailyResult{
		{UserID: 123, Username: "alice", Solved: 2, Failed: 1},
		{UserID: 456, Username: "bob", Solved: 0, Failed: 3},
	}

	mockSessions := new(testutil.MockSessionRepository)
	mockWords := new(testutil.MockWordRepository)
	mockSessions.On("DailyResults", date).Return(expected, nil)

	svc := NewReportService(mockSessions, mockWords, testutil.NewTestLogger())

	results, err := svc.DailyReport(date)

	assert.NoError(t, err)
	assert.Equal(t, expected, results)
	mockSessions.AssertExpectations(t)
}

func TestReportService_DailyReport_Error(t *testing.T) {
	date := time.Now()

	mockSessions := new(testutil.MockSessionRepository)
	mockWords := new(testutil.MockWordRepository)
	mockSessions.On("DailyResults", date).Return(nil, fmt.Errorf("db error"))

	svc := NewReportService(mockSessions, mockWords, testutil.NewTestLogger())

	results, err := svc.DailyReport(date)

	assert.Error(t, err)
	assert.Nil(t, results)
	mockSessions.AssertExpectations(t)
}

func TestReportService_UserReport(t *testing.T) {
	sess := testutil.NewTestSession(9, 123, 4, domain.StatusCompleted)
	sess.Solved = true
	sess.AttemptsUsed = 2

	mockSessions := new(testutil.MockSessionRepository)
	mockWords := new(testutil.MockWordRepository)
	mockSessions.On("ListUserSessions", int64(123)).Return([]domain.Session{*sess}, nil)
	mockWords.On("GetWordByID", 4).Return(&domain.Word{ID: 4, Text: "APPLE"}, nil)
	mockSessions.On("ListGuesses", int64(9)).Return([]domain.Guess{
		testutil.NewTestGuess(9, 1, "AXXXX"),
		testutil.NewTestGuess(9, 2, "APPLE"),
	}, nil)

	svc := NewReportService(mockSessions, mockWords, testutil.NewTestLogger())

	reports, err := svc.UserReport(123)

	assert.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.Equal(t, "APPLE", reports[0].Word)
	assert.Len(t, reports[0].Rows, 2)
	assert.Equal(t,
		[]domain.Verdict{domain.VerdictExact, domain.VerdictAbsent, domain.VerdictAbsent, domain.VerdictAbsent, domain.VerdictAbsent},
		reports[0].Rows[0].Verdicts,
	)
	mockSessions.AssertExpectations(t)
	mockWords.AssertExpectations(t)
}

func TestReportService_UserReport_WordMissing(t *testing.T) {
	sess := testutil.NewTestSession(9, 123, 4, domain.StatusCompleted)

	mockSessions := new(testutil.MockSessionRepository)
	mockWords := new(testutil.MockWordRepository)
	mockSessions.On("ListUserSessions", int64(123)).Return([]domain.Session{*sess}, nil)
	mockWords.On("GetWordByID", 4).Return(nil, nil)

	svc := NewReportService(mockSessions, mockWords, testutil.NewTestLogger())

	reports, err := svc.UserReport(123)

	assert.Error(t, err)
	assert.Nil(t, reports)
}

func TestReportService_UserReport_NoSessions(t *testing.T) {
	mockSessions := new(testutil.MockSessionRepository)
	mockWords := new(testutil.MockWordRepository)
	mockSessions.On("ListUserSessions", int64(123)).Return([]domain.Session{}, nil)

	svc := NewReportService(mockSessions, mockWords, testutil.NewTestLogger())

	reports, err := svc.UserReport(123)

	assert.NoError(t, err)
	assert.Empty(t, reports)
	mockSessions.AssertExpectations(t)
}

func TestReportService_CleanupOldSessions(t *testing.T) {
	tests := []struct {
		name          string
		mockError     error
		expectedError bool
	}{
		{
			name:          "successful cleanup",
			mockError:     nil,
			expectedError: false,
		},
		{
			name:          "database error",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSessions := new(testutil.MockSessionRepository)
			mockWords := new(testutil.MockWordRepository)
			mockSessions.On("CleanOldSessions", 60).Return(tt.mockError)

			svc := NewReportService(mockSessions, mockWords, testutil.NewTestLogger())

			err := svc.CleanupOldSessions()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			mockSessions.AssertExpectations(t)
		})
	}
}
