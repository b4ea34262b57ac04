package model

import "time"

// Session is the single active-token slot of a user. Issuing a new token
// overwrites it and logging out clears it, so at most one token per user
// verifies at any time.
type Session struct {
	UserID   int
	Token    string
	IssuedAt time.Time
}
