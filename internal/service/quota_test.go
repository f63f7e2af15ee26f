package service

import (
	"fmt"
	"testing"
	"time"

	"wordguess/internal/domain"
	"wordguess/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestQuotaService_Evaluate(t *testing.T) {
	today := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name              string
		playedToday       int
		expectedRemaining int
	}{
		{
			name:              "nothing played yet",
			playedToday:       0,
			expectedRemaining: domain.MaxDailySessions,
		},
		{
			name:              "one session left",
			playedToday:       2,
			expectedRemaining: 1,
		},
		{
			name:              "quota exhausted",
			playedToday:       3,
			expectedRemaining: 0,
		},
		{
			name:              "over quota still floors at zero",
			playedToday:       5,
			expectedRemaining: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockSessionRepository)
			mockRepo.On("FindPausedSession", int64(123)).Return(nil, nil)
			mockRepo.On("CountSessionsOnDate", int64(123), today, domain.StatusPaused).
				Return(tt.playedToday, nil)

			svc := NewQuotaService(mockRepo)

			decision, err := svc.Evaluate(123, today)

			assert.NoError(t, err)
			assert.Nil(t, decision.Paused)
			assert.Equal(t, tt.expectedRemaining, decision.Remaining)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestQuotaService_Evaluate_PausedBlocksEverything(t *testing.T) {
	today := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	// Paused session from a prior day still takes precedence
	paused := testutil.NewTestSession(9, 123, 4, domain.StatusPaused)
	paused.StartedAt = today.AddDate(0, 0, -3)

	mockRepo := new(testutil.MockSessionRepository)
	mockRepo.On("FindPausedSession", int64(123)).Return(paused, nil)

	svc := NewQuotaService(mockRepo)

	decision, err := svc.Evaluate(123, today)

	assert.NoError(t, err)
	assert.Equal(t, paused, decision.Paused)
	// The daily count is never consulted while a paused session exists
	mockRepo.AssertNotCalled(t, "CountSessionsOnDate")
	mockRepo.AssertExpectations(t)
}

func TestQuotaService_Evaluate_PersistenceError(t *testing.T) {
	today := time.Now()

	mockRepo := new(testutil.MockSessionRepository)
	mockRepo.On("FindPausedSession", int64(123)).Return(nil, fmt.Errorf("db error"))

	svc := NewQuotaService(mockRepo)

	decision, err := svc.Evaluate(123, today)

	assert.Error(t, err)
	assert.Nil(t, decision)
	mockRepo.AssertExpectations(t)
}

func TestQuotaService_Evaluate_CountError(t *testing.T) {
	today := time.Now()

	mockRepo := new(testutil.MockSessionRepository)
	mockRepo.On("FindPausedSession", int64(123)).Return(nil, nil)
	mockRepo.On("CountSessionsOnDate", int64(123), today, domain.StatusPaused).
		Return(0, fmt.Errorf("db error"))

	svc := NewQuotaService(mockRepo)

	decision, err := svc.Evaluate(123, today)

	assert.Error(t, err)
	assert.Nil(t, decision)
	mockRepo.AssertExpectations(t)
}
