package models

import "time"

// Session represents the single live login session on the device.
// Creating a new session replaces the old one in durable storage.
type Session struct {
	// User is a copy of the user the session was issued for.
	User User `json:"user"`

	// Token is an opaque credential: 32 cryptographically random bytes,
	// base64-encoded. It is generated locally and never verified against
	// anything exogenous.
	Token string `json:"token"`

	// LoginAt is when the session was opened.
	LoginAt time.Time `json:"login_at"`

	// ExpiresAt is LoginAt plus a fixed validity window (not sliding).
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session's validity window has passed.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// RemainingDays returns the number of whole days until expiry, never negative.
func (s *Session) RemainingDays() int {
	d := int(time.Until(s.ExpiresAt).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// Equal reports whether two sessions are the same session.
// Equality is defined by token equality alone.
func (s *Session) Equal(other *Session) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Token == other.Token
}
