// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface. It is the state
// machine behind the login endpoint: validate input, look up the account,
// verify the password, issue the session token, and record the attempt.
type authService struct {
	users   repository.UserRepository
	hasher  service.PasswordHasher
	tokens  service.TokenService
	auditor service.LoginAuditor
	logger  *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	users repository.UserRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	auditor service.LoginAuditor,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		auditor: auditor,
		logger:  logger,
	}
}

// Login runs the full authentication flow. Exactly one audit record is
// written per request that reaches credential evaluation; missing input
// short-circuits before that stage and is never audited. The unknown-account
// and wrong-password branches share one error value, so their responses are
// indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingCredentials
	}

	srv.logger.Debug("Starting login", "email", input.Email)

	user, err := srv.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.audit(ctx, input.Email, false, nil, input.Meta)

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		// Unexpected lookup failure: audit best-effort with what is known,
		// surface a generic failure upward.
		srv.audit(ctx, input.Email, false, nil, input.Meta)

		return nil, errors.Wrap(err, "failed to look up user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		userID := user.ID
		srv.audit(ctx, input.Email, false, &userID, input.Meta)

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokens.Issue(entity.ClaimsFromUser(user))
	if err != nil {
		userID := user.ID
		srv.audit(ctx, input.Email, false, &userID, input.Meta)

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	userID := user.ID
	srv.audit(ctx, input.Email, true, &userID, input.Meta)

	srv.logger.Debug("Login succeeded", "userID", user.ID)

	return &usecase.LoginOutput{
		Token:  token,
		MaxAge: int(srv.tokens.TokenTTL().Seconds()),
		User:   user.Public(),
	}, nil
}

// audit is the never-propagate boundary around attempt recording: a failed
// write is logged and dropped, and the login outcome already decided by the
// credential check stands.
func (srv *authService) audit(ctx context.Context, email string, success bool, userID *uint, meta service.AttemptMeta) {
	if err := srv.auditor.Record(ctx, email, success, userID, meta); err != nil {
		srv.logger.Warn("Login audit write failed", "email", email, "error", err.Error())
	}
}
