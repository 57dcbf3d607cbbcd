package domain

import "time"

// Session binds an opaque bearer token to a user for a bounded window.
// An expired session is indistinguishable from a missing one: every reader
// filters on expires_at > now instead of relying on background deletion.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
