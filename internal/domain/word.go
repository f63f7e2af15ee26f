package domain

// Word is a seeded answer candidate. Words are created once at seed time
// and read-only afterwards; sessions reference them by id.
type Word struct {
	ID   int
	Text string
}
