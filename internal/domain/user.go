package domain

import "time"

// User represents a bot user
type User struct {
	UserID     int64
	Username   string
	Authorized bool
	CreatedAt  time.Time
}

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle    UserState = "idle"
	StatePlaying UserState = "playing"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State UserState
}
