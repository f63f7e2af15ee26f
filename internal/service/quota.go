package service

import (
	"fmt"
	"time"

	"wordguess/internal/domain"
	"wordguess/internal/repository"
)

// QuotaDecision is the daily quota policy's answer for one user
type QuotaDecision struct {
	// Paused is the session that must be resumed before anything else,
	// nil if the user has none. A paused session from any prior day still
	// blocks new rounds.
	Paused *domain.Session
	// Remaining is how many new sessions the user may still start today.
	// Meaningful only when Paused is nil.
	Remaining int
}

// QuotaService decides how many sessions a user may start per calendar day
type QuotaService struct {
	sessions repository.SessionRepository
}

// NewQuotaService creates a new quota service
func NewQuotaService(sessions repository.SessionRepository) *QuotaService {
	return &QuotaService{sessions: sessions}
}

// Evaluate checks the user's paused session and today's play count.
// Paused sessions are excluded from the count regardless of their date.
func (s *QuotaService) Evaluate(userID int64, today time.Time) (*QuotaDecision, error) {
	paused, err := s.sessions.FindPausedSession(userID)
	if err != nil {
		return nil, fmt.Errorf("find paused session: %w", err)
	}
	if paused != nil {
		return &QuotaDecision{Paused: paused}, nil
	}

	played, err := s.sessions.CountSessionsOnDate(userID, today, domain.StatusPaused)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}

	remaining := domain.MaxDailySessions - played
	if remaining < 0 {
		remaining = 0
	}
	return &QuotaDecision{Remaining: remaining}, nil
}
