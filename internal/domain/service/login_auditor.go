package service

import "context"

// AttemptMeta carries the request metadata the auditor derives the origin
// from. Fields hold the raw header values; precedence is applied by the
// auditor, not the transport.
type AttemptMeta struct {
	// ForwardedFor is the X-Forwarded-For header as received; the first
	// entry wins.
	ForwardedFor string
	// RealIP is the X-Real-IP header, used when no forwarded list exists.
	RealIP string
	// UserAgent is the request user agent, empty when absent.
	UserAgent string
}

// LoginAuditor appends one audit record per authentication attempt that
// reached credential evaluation. Recording is best-effort: the returned
// error exists so the boundary can be observed and tested, but callers in
// the login flow log it and move on — auditing must never fail the
// authentication it observes.
type LoginAuditor interface {
	Record(ctx context.Context, email string, success bool, userID *uint, meta AttemptMeta) error
}
