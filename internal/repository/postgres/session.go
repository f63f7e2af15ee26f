package postgres

import (
	"database/sql"
	"time"

	"wordguess/internal/domain"
)

// SessionRepo implements repository.SessionRepository
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// CreateSession inserts a new ongoing session and returns its id
func (r *SessionRepo) CreateSession(userID int64, wordID int, startedAt time.Time) (int64, error) {
	var id int64
	query := `
		INSERT INTO sessions (user_id, word_id, started_at, status)
		VALUES ($1, $2, $3, 'ONGOING')
		RETURNING id
	`
	err := r.db.QueryRow(query, userID, wordID, startedAt).Scan(&id)
	return id, err
}

// AppendGuess records one attempt for a session
func (r *SessionRepo) AppendGuess(sessionID int64, attemptNo int, text string) error {
	query := `
		INSERT INTO guesses (session_id, attempt_no, guess_text)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(query, sessionID, attemptNo, text)
	return err
}

// UpdateSessionStatus moves a session to a new status in one statement,
// keeping status, attempts and outcome consistent with each other
func (r *SessionRepo) UpdateSessionStatus(sessionID int64, status domain.SessionStatus, attemptsUsed int, solved bool) error {
	query := `
		UPDATE sessions
		SET status = $2, attempts_used = $3, solved = $4
		WHERE id = $1
	`
	_, err := r.db.Exec(query, sessionID, status, attemptsUsed, solved)
	return err
}

// FindPausedSession returns the user's paused session, or nil if none exists.
// The oldest one wins, though the engine never leaves more than one.
func (r *SessionRepo) FindPausedSession(userID int64) (*domain.Session, error) {
	var s domain.Session
	query := `
		SELECT id, user_id, word_id, started_at, attempts_used, solved, status
		FROM sessions
		WHERE user_id = $1 AND status = 'PAUSED'
		ORDER BY id
		LIMIT 1
	`
	err := r.db.QueryRow(query, userID).Scan(
		&s.ID, &s.UserID, &s.WordID, &s.StartedAt, &s.AttemptsUsed, &s.Solved, &s.Status,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// ListGuesses returns a session's guesses in attempt order
func (r *SessionRepo) ListGuesses(sessionID int64) ([]domain.Guess, error) {
	query := `
		SELECT session_id, attempt_no, guess_text
		FROM guesses
		WHERE session_id = $1
		ORDER BY attempt_no
	`

	rows, err := r.db.Query(query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guesses []domain.Guess
	for rows.Next() {
		var g domain.Guess
		if err := rows.Scan(&g.SessionID, &g.AttemptNo, &g.Text); err != nil {
			return nil, err
		}
		guesses = append(guesses, g)
	}

	return guesses, rows.Err()
}

// CountSessionsOnDate counts the user's sessions started on the given
// calendar day, excluding the given status
func (r *SessionRepo) CountSessionsOnDate(userID int64, date time.Time, excluding domain.SessionStatus) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM sessions
		WHERE user_id = $1 AND DATE(started_at) = DATE($2) AND status <> $3
	`

	var count int
	err := r.db.QueryRow(query, userID, date, excluding).Scan(&count)
	return count, err
}

// DailyResults aggregates solved and failed counts per user for one day
func (r *SessionRepo) DailyResults(date time.Time) ([]domain.DailyResult, error) {
	query := `
		SELECT s.user_id, u.username,
			COUNT(*) FILTER (WHERE s.solved) AS solved,
			COUNT(*) FILTER (WHERE NOT s.solved) AS failed
		FROM sessions s
		JOIN users u ON u.user_id = s.user_id
		WHERE DATE(s.started_at) = DATE($1) AND s.status IN ('COMPLETED', 'FAILED')
		GROUP BY s.user_id, u.username
		ORDER BY u.username
	`

	rows, err := r.db.Query(query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.DailyResult
	for rows.Next() {
		var res domain.DailyResult
		if err := rows.Scan(&res.UserID, &res.Username, &res.Solved, &res.Failed); err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, rows.Err()
}

// ListUserSessions returns every session a user has played, oldest first
func (r *SessionRepo) ListUserSessions(userID int64) ([]domain.Session, error) {
	query := `
		SELECT id, user_id, word_id, started_at, attempts_used, solved, status
		FROM sessions
		WHERE user_id = $1
		ORDER BY started_at, id
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.WordID, &s.StartedAt, &s.AttemptsUsed, &s.Solved, &s.Status); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// CleanOldSessions deletes sessions older than specified days.
// Guesses go with them via ON DELETE CASCADE.
func (r *SessionRepo) CleanOldSessions(days int) error {
	query := `
		DELETE FROM sessions
		WHERE started_at < NOW() - INTERVAL '1 day' * $1
	`
	_, err := r.db.Exec(query, days)
	return err
}
