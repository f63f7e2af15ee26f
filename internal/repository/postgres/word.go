package postgres

import (
	"database/sql"

	"wordguess/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// AllWords returns the full seeded word list
func (r *WordRepo) AllWords() ([]domain.Word, error) {
	query := `SELECT id, word_text FROM words ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.ID, &w.Text); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// GetWordByID returns a single word, or nil if it does not exist
func (r *WordRepo) GetWordByID(id int) (*domain.Word, error) {
	var w domain.Word
	query := `SELECT id, word_text FROM words WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&w.ID, &w.Text)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &w, nil
}
