// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"portfolio/config"
	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/service"
)

// sessionTTL is the fixed validity window of a session token.
const sessionTTL = 7 * 24 * time.Hour

// insecureDevSecret is the fallback signing secret used when none is
// configured. It is public knowledge by definition and unsafe for any real
// deployment; the constructor logs loudly whenever it is in effect.
const insecureDevSecret = "portfolio-dev-secret-do-not-use-in-production"

// sessionTokenClaims is the wire shape of the session token payload.
type sessionTokenClaims struct {
	UserID uint   `json:"uid"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService. A missing secret never
// aborts startup: the service falls back to the insecure development
// default so local environments keep working, and flags the condition at
// Error level when it happens in production.
func NewJWTService(cfg *config.Config, logger *slog.Logger) service.TokenService {
	secret := cfg.SecretKey.Session
	if secret == "" {
		secret = insecureDevSecret
		if cfg.IsProduction() {
			logger.Error("session secret is not configured, using the insecure built-in default; tokens are forgeable")
		} else {
			logger.Warn("session secret is not configured, using the insecure development default")
		}
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    sessionTTL,
	}
}

// Issue serializes the claims into a signed HS256 token expiring sessionTTL
// from now.
func (s *jwtService) Issue(claims *entity.SessionClaims) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &sessionTokenClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
		Role:   claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	return token.SignedString(s.secret)
}

// Verify checks signature and expiry. Every failure collapses to
// (nil, false): callers cannot tell a forged token from an expired one,
// and no error ever escapes to them.
func (s *jwtService) Verify(tokenString string) (*entity.SessionClaims, bool) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionTokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(*sessionTokenClaims)
	if !ok {
		return nil, false
	}

	return &entity.SessionClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
		Role:   claims.Role,
	}, true
}

// TokenTTL returns the validity window applied at issuance.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}
