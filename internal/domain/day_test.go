package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateString(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			name:     "date 2024-12-12",
			date:     time.Date(2024, 12, 12, 10, 0, 0, 0, time.UTC),
			expected: "2024-12-12",
		},
		{
			name:     "date 2024-01-01",
			date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: "2024-01-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DateString(tt.date))
		})
	}
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2024, 6, 15, 17, 42, 3, 500, time.UTC)

	start := StartOfDay(ts)

	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), start)
}

func TestSameDay(t *testing.T) {
	tests := []struct {
		name     string
		a        time.Time
		b        time.Time
		expected bool
	}{
		{
			name:     "same day different hours",
			a:        time.Date(2024, 6, 15, 1, 0, 0, 0, time.UTC),
			b:        time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "consecutive days",
			a:        time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC),
			b:        time.Date(2024, 6, 16, 0, 1, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "same day different years",
			a:        time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC),
			b:        time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SameDay(tt.a, tt.b))
		})
	}
}
