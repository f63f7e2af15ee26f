package service

import (
	"fmt"
	"strings"
	"time"

	"wordguess/internal/domain"
	"wordguess/internal/repository"

	"go.uber.org/zap"
)

// TurnOutcome classifies what one submitted guess produced
type TurnOutcome string

const (
	OutcomeContinue  TurnOutcome = "continue"
	OutcomeSolved    TurnOutcome = "solved"
	OutcomeExhausted TurnOutcome = "exhausted"
	OutcomePaused    TurnOutcome = "paused"
)

// GuessRow is one recorded guess with its derived verdicts
type GuessRow struct {
	Text     string
	Verdicts []domain.Verdict
}

// TurnResult is the outcome of a single submitted guess together with
// the full guess history of the round
type TurnResult struct {
	Outcome TurnOutcome
	Rows    []GuessRow
	// Target is revealed only when the session has failed
	Target string
}

// ActiveSession is a session being played: the persisted record, the
// target word and the history with verdicts re-derived in memory
type ActiveSession struct {
	Session *domain.Session
	Target  string
	Rows    []GuessRow
}

// SessionService owns the lifecycle of a single session: attempt
// counting, pause, resume and termination
type SessionService struct {
	sessions repository.SessionRepository
	logger   *zap.Logger
}

// NewSessionService creates a new session service
func NewSessionService(sessions repository.SessionRepository, logger *zap.Logger) *SessionService {
	return &SessionService{
		sessions: sessions,
		logger:   logger,
	}
}

// Start creates and persists a new ongoing session for the given word
func (s *SessionService) Start(userID int64, word domain.Word, startedAt time.Time) (*ActiveSession, error) {
	id, err := s.sessions.CreateSession(userID, word.ID, startedAt)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("Session started",
		zap.Int64("session_id", id),
		zap.Int64("user_id", userID),
		zap.Int("word_id", word.ID),
	)

	sess := &domain.Session{
		ID:        id,
		UserID:    userID,
		WordID:    word.ID,
		StartedAt: startedAt,
		Status:    domain.StatusOngoing,
	}
	return &ActiveSession{Session: sess, Target: word.Text}, nil
}

// SubmitGuess applies one raw guess to an ongoing session.
// The pause token suspends the session without consuming an attempt.
// Malformed input returns domain.ErrInvalidInput and changes nothing,
// so the same attempt index stays open for a re-prompt.
func (s *SessionService) SubmitGuess(as *ActiveSession, raw string) (*TurnResult, error) {
	if as.Session.Status != domain.StatusOngoing {
		return nil, fmt.Errorf("%w: cannot submit guess to %s session", domain.ErrInvalidState, as.Session.Status)
	}

	guess := strings.ToUpper(strings.TrimSpace(raw))

	if guess == domain.PauseToken {
		used := len(as.Rows)
		if err := s.sessions.UpdateSessionStatus(as.Session.ID, domain.StatusPaused, used, false); err != nil {
			return nil, fmt.Errorf("pause session: %w", err)
		}
		as.Session.Status = domain.StatusPaused
		as.Session.AttemptsUsed = used

		s.logger.Info("Session paused",
			zap.Int64("session_id", as.Session.ID),
			zap.Int("attempts_used", used),
		)
		return &TurnResult{Outcome: OutcomePaused, Rows: as.Rows}, nil
	}

	if len(guess) != domain.WordLength || !isLetters(guess) {
		return nil, fmt.Errorf("%w: guess must be %d letters", domain.ErrInvalidInput, domain.WordLength)
	}

	attempt := len(as.Rows) + 1
	if err := s.sessions.AppendGuess(as.Session.ID, attempt, guess); err != nil {
		return nil, fmt.Errorf("append guess: %w", err)
	}

	verdicts, err := domain.Classify(guess, as.Target)
	if err != nil {
		return nil, err
	}
	as.Rows = append(as.Rows, GuessRow{Text: guess, Verdicts: verdicts})

	switch {
	case guess == as.Target:
		if err := s.sessions.UpdateSessionStatus(as.Session.ID, domain.StatusCompleted, attempt, true); err != nil {
			return nil, fmt.Errorf("complete session: %w", err)
		}
		as.Session.Status = domain.StatusCompleted
		as.Session.AttemptsUsed = attempt
		as.Session.Solved = true

		s.logger.Info("Session completed",
			zap.Int64("session_id", as.Session.ID),
			zap.Int("attempts_used", attempt),
		)
		return &TurnResult{Outcome: OutcomeSolved, Rows: as.Rows}, nil

	case attempt == domain.MaxAttempts:
		if err := s.sessions.UpdateSessionStatus(as.Session.ID, domain.StatusFailed, domain.MaxAttempts, false); err != nil {
			return nil, fmt.Errorf("fail session: %w", err)
		}
		as.Session.Status = domain.StatusFailed
		as.Session.AttemptsUsed = domain.MaxAttempts

		s.logger.Info("Session failed",
			zap.Int64("session_id", as.Session.ID),
			zap.String("target", as.Target),
		)
		return &TurnResult{Outcome: OutcomeExhausted, Rows: as.Rows, Target: as.Target}, nil

	default:
		return &TurnResult{Outcome: OutcomeContinue, Rows: as.Rows}, nil
	}
}

// Resume reopens a paused session, re-deriving verdicts for every stored
// guess. The attempt index continues from the recorded history.
func (s *SessionService) Resume(sess *domain.Session, target string) (*ActiveSession, error) {
	if sess.Status != domain.StatusPaused {
		return nil, fmt.Errorf("%w: cannot resume %s session", domain.ErrInvalidState, sess.Status)
	}

	guesses, err := s.sessions.ListGuesses(sess.ID)
	if err != nil {
		return nil, fmt.Errorf("list guesses: %w", err)
	}

	rows := make([]GuessRow, 0, len(guesses))
	for _, g := range guesses {
		verdicts, err := domain.Classify(g.Text, target)
		if err != nil {
			return nil, err
		}
		rows = append(rows, GuessRow{Text: g.Text, Verdicts: verdicts})
	}

	sess.Status = domain.StatusOngoing
	sess.AttemptsUsed = len(rows)

	s.logger.Info("Session resumed",
		zap.Int64("session_id", sess.ID),
		zap.Int("attempts_used", len(rows)),
	)
	return &ActiveSession{Session: sess, Target: target, Rows: rows}, nil
}

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
