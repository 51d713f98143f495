package service

import (
	"time"

	"portfolio/internal/domain/entity"
)

// TokenService signs and verifies the stateless session token.
// There is no revocation mechanism: a compromised token stays valid until
// natural expiry. That is an accepted tradeoff of statelessness.
type TokenService interface {
	// Issue serializes the claims into a signed token with a fixed
	// validity window counted from issuance.
	Issue(claims *entity.SessionClaims) (string, error)

	// Verify checks signature and expiry. Any failure — unknown signature,
	// corrupted payload, expiry — yields (nil, false). Callers treat false
	// as "unauthenticated" and must not distinguish the causes.
	Verify(token string) (*entity.SessionClaims, bool)

	// TokenTTL returns the validity window applied at issuance.
	TokenTTL() time.Duration
}
