// Package entity contains the core business objects of the project.
package entity

import "time"

// LoginAttempt is the append-only audit record of one authentication
// attempt, successful or not. Rows are never mutated or deleted.
type LoginAttempt struct {
	ID uint

	// Email is the address as submitted, which may not match any account.
	Email string

	// UserID is the matched account, or nil when no account was resolved.
	// A nil pointer stands in for "no applicable user" so the absent case
	// can never collide with a real identifier.
	UserID *uint

	// IP is the best-effort origin address, "unknown" when no proxy header
	// carried one.
	IP string

	// UserAgent is nil when the request did not send one.
	UserAgent *string

	Success   bool
	CreatedAt time.Time
}
