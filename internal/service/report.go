package service

import (
	"fmt"
	"time"

	"wordguess/internal/domain"
	"wordguess/internal/repository"

	"go.uber.org/zap"
)

// SessionReport is one historical session with its guesses re-scored
type SessionReport struct {
	Session domain.Session
	Word    string
	Rows    []GuessRow
}

// ReportService builds the admin reports and handles data retention
type ReportService struct {
	sessions repository.SessionRepository
	words    repository.WordRepository
	logger   *zap.Logger
}

// NewReportService creates a new report service
func NewReportService(sessions repository.SessionRepository, words repository.WordRepository, logger *zap.Logger) *ReportService {
	return &ReportService{
		sessions: sessions,
		words:    words,
		logger:   logger,
	}
}

// DailyReport returns per-user solved/failed counts for the given day
func (s *ReportService) DailyReport(date time.Time) ([]domain.DailyResult, error) {
	results, err := s.sessions.DailyResults(date)
	if err != nil {
		return nil, fmt.Errorf("daily results: %w", err)
	}
	return results, nil
}

// UserReport returns every session a user has played, with verdicts
// re-derived from the stored guess text
func (s *ReportService) UserReport(userID int64) ([]SessionReport, error) {
	sessions, err := s.sessions.ListUserSessions(userID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	reports := make([]SessionReport, 0, len(sessions))
	for _, sess := range sessions {
		word, err := s.words.GetWordByID(sess.WordID)
		if err != nil {
			return nil, fmt.Errorf("load word: %w", err)
		}
		if word == nil {
			return nil, fmt.Errorf("word %d not found for session %d", sess.WordID, sess.ID)
		}

		guesses, err := s.sessions.ListGuesses(sess.ID)
		if err != nil {
			return nil, fmt.Errorf("list guesses: %w", err)
		}

		rows := make([]GuessRow, 0, len(guesses))
		for _, g := range guesses {
			verdicts, err := domain.Classify(g.Text, word.Text)
			if err != nil {
				return nil, err
			}
			rows = append(rows, GuessRow{Text: g.Text, Verdicts: verdicts})
		}

		reports = append(reports, SessionReport{Session: sess, Word: word.Text, Rows: rows})
	}

	return reports, nil
}

// CleanupOldSessions removes sessions older than 60 days
func (s *ReportService) CleanupOldSessions() error {
	const retentionDays = 60

	s.logger.Info("Starting cleanup of old sessions", zap.Int("retention_days", retentionDays))

	if err := s.sessions.CleanOldSessions(retentionDays); err != nil {
		s.logger.Error("Failed to cleanup old sessions", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}
