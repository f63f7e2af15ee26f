package domain

import "time"

// DateString returns the date in YYYY-MM-DD format, the key used for
// daily quota counting and reports.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
