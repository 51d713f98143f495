package impl

import (
	"context"
	"strings"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"

	"github.com/pkg/errors"
)

// unknownIP is recorded when no proxy header carried an origin address.
const unknownIP = "unknown"

// loginAuditor implements service.LoginAuditor over the attempt repository.
type loginAuditor struct {
	attempts repository.LoginAttemptRepository
}

// NewLoginAuditor is the constructor for loginAuditor.
func NewLoginAuditor(attempts repository.LoginAttemptRepository) service.LoginAuditor {
	return &loginAuditor{attempts: attempts}
}

// Record appends one attempt row. The origin IP is derived here with a
// fixed precedence; the transport passes raw header values only.
func (a *loginAuditor) Record(ctx context.Context, email string, success bool, userID *uint, meta service.AttemptMeta) error {
	attempt := &entity.LoginAttempt{
		Email:     email,
		UserID:    userID,
		IP:        originIP(meta),
		UserAgent: userAgentOrNil(meta),
		Success:   success,
	}

	if err := a.attempts.Create(ctx, attempt); err != nil {
		return errors.Wrap(err, "failed to persist login attempt")
	}

	return nil
}

// originIP applies the header precedence: first X-Forwarded-For entry,
// then X-Real-IP, then the unknown marker.
func originIP(meta service.AttemptMeta) string {
	if meta.ForwardedFor != "" {
		first, _, _ := strings.Cut(meta.ForwardedFor, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if meta.RealIP != "" {
		return meta.RealIP
	}

	return unknownIP
}

func userAgentOrNil(meta service.AttemptMeta) *string {
	if meta.UserAgent == "" {
		return nil
	}
	ua := meta.UserAgent

	return &ua
}
