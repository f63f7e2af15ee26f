package domain

// DailyResult aggregates one user's finished sessions for a single day
type DailyResult struct {
	UserID   int64
	Username string
	Solved   int
	Failed   int
}
