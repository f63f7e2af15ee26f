package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"wordguess/internal/domain"
	"wordguess/internal/repository"

	"go.uber.org/zap"
)

// PlayOutcome classifies the state of the day's play loop after a turn
type PlayOutcome string

const (
	// PlayContinue means the current round keeps going
	PlayContinue PlayOutcome = "continue"
	// PlayRoundOver means the round ended and the next one has started
	PlayRoundOver PlayOutcome = "round_over"
	// PlayPaused means the session was paused and the day stops here
	PlayPaused PlayOutcome = "paused"
	// PlayDayOver means the last round ended and the quota is spent
	PlayDayOver PlayOutcome = "day_over"
	// PlayQuotaExhausted means there was nothing left to play today
	PlayQuotaExhausted PlayOutcome = "quota_exhausted"
)

// TurnState is what the caller renders after BeginDay or Submit
type TurnState struct {
	Outcome PlayOutcome
	// Resumed is set when BeginDay reopened a paused session
	Resumed bool
	// Turn is the result of the guess just applied, nil on BeginDay
	Turn *TurnResult
	// Rows is the current round's history
	Rows []GuessRow
	// Attempt is the next 1-based attempt number in the current round
	Attempt int
	// Remaining is how many rounds are still available today after the
	// current one
	Remaining int
}

// PlayService drives a user's daily play loop: resume-if-paused, then up
// to the daily quota of new rounds, one guess at a time. It keeps at most
// one active session per user.
type PlayService struct {
	sessions *SessionService
	quota    *QuotaService
	words    repository.WordRepository
	rng      *rand.Rand
	logger   *zap.Logger

	mu     sync.Mutex
	active map[int64]*ActiveSession
}

// NewPlayService creates a new play service. The random source is
// injected so word selection is deterministic in tests.
func NewPlayService(
	sessions *SessionService,
	quota *QuotaService,
	words repository.WordRepository,
	rng *rand.Rand,
	logger *zap.Logger,
) *PlayService {
	return &PlayService{
		sessions: sessions,
		quota:    quota,
		words:    words,
		rng:      rng,
		logger:   logger,
		active:   make(map[int64]*ActiveSession),
	}
}

// Words returns the full word catalog, for showing players what they
// are guessing from
func (s *PlayService) Words() ([]domain.Word, error) {
	return s.words.AllWords()
}

// BeginDay opens the user's play loop: resumes the paused session if one
// exists, otherwise starts the first of today's remaining rounds
func (s *PlayService) BeginDay(userID int64, today time.Time) (*TurnState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if as, ok := s.active[userID]; ok && as.Session.Status == domain.StatusOngoing {
		// Already mid-round, show the board as-is
		return &TurnState{Outcome: PlayContinue, Rows: as.Rows, Attempt: len(as.Rows) + 1}, nil
	}

	decision, err := s.quota.Evaluate(userID, today)
	if err != nil {
		return nil, err
	}

	if decision.Paused != nil {
		word, err := s.words.GetWordByID(decision.Paused.WordID)
		if err != nil {
			return nil, fmt.Errorf("load word: %w", err)
		}
		if word == nil {
			return nil, fmt.Errorf("word %d not found for session %d", decision.Paused.WordID, decision.Paused.ID)
		}

		as, err := s.sessions.Resume(decision.Paused, word.Text)
		if err != nil {
			return nil, err
		}
		s.active[userID] = as
		return &TurnState{
			Outcome: PlayContinue,
			Resumed: true,
			Rows:    as.Rows,
			Attempt: len(as.Rows) + 1,
		}, nil
	}

	if decision.Remaining == 0 {
		return &TurnState{Outcome: PlayQuotaExhausted}, nil
	}

	as, err := s.startRound(userID, today)
	if err != nil {
		return nil, err
	}
	s.active[userID] = as
	return &TurnState{Outcome: PlayContinue, Attempt: 1, Remaining: decision.Remaining - 1}, nil
}

// Submit applies one guess to the user's current round. When the round
// reaches a terminal state and quota remains, the next round is started
// before returning; a pause stops the whole day immediately.
func (s *PlayService) Submit(userID int64, today time.Time, raw string) (*TurnState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	as, ok := s.active[userID]
	if !ok {
		return nil, fmt.Errorf("%w: no active session", domain.ErrInvalidState)
	}

	turn, err := s.sessions.SubmitGuess(as, raw)
	if err != nil {
		return nil, err
	}

	switch turn.Outcome {
	case OutcomeContinue:
		return &TurnState{Outcome: PlayContinue, Turn: turn, Rows: as.Rows, Attempt: len(as.Rows) + 1}, nil

	case OutcomePaused:
		delete(s.active, userID)
		return &TurnState{Outcome: PlayPaused, Turn: turn, Rows: as.Rows}, nil

	default: // solved or exhausted
		delete(s.active, userID)

		decision, err := s.quota.Evaluate(userID, today)
		if err != nil {
			return nil, err
		}
		if decision.Remaining == 0 {
			return &TurnState{Outcome: PlayDayOver, Turn: turn}, nil
		}

		next, err := s.startRound(userID, today)
		if err != nil {
			return nil, err
		}
		s.active[userID] = next
		return &TurnState{Outcome: PlayRoundOver, Turn: turn, Attempt: 1, Remaining: decision.Remaining - 1}, nil
	}
}

// startRound draws a word uniformly from the catalog, with replacement,
// and opens a new session for it
func (s *PlayService) startRound(userID int64, today time.Time) (*ActiveSession, error) {
	words, err := s.words.AllWords()
	if err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}

	word := words[s.rng.Intn(len(words))]

	s.logger.Debug("Word drawn for new round",
		zap.Int64("user_id", userID),
		zap.Int("word_id", word.ID),
	)
	return s.sessions.Start(userID, word, today)
}
