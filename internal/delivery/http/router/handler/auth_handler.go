// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"portfolio/config"
	"portfolio/internal/delivery/http/middleware"
	"portfolio/internal/delivery/http/response"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the authentication endpoints.
type AuthHandler struct {
	uc      usecase.AuthUsecase
	session *middleware.SessionMiddleware
	cfg     *config.Config
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(
	uc usecase.AuthUsecase,
	session *middleware.SessionMiddleware,
	cfg *config.Config,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		uc:      uc,
		session: session,
		cfg:     cfg,
		logger:  logger,
	}
}

// loginResponse is the success body of the login endpoint.
type loginResponse struct {
	Message string `json:"message"`
	User    any    `json:"user"`
}

// Login handles the login request: credentials in, session cookie out.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		// An unreadable body carries no credentials; same contract as
		// missing fields, and nothing to audit.
		return domainerrors.ErrMissingCredentials
	}

	req := c.Request()
	input.Meta = service.AttemptMeta{
		ForwardedFor: req.Header.Get(echo.HeaderXForwardedFor),
		RealIP:       req.Header.Get(echo.HeaderXRealIP),
		UserAgent:    req.UserAgent(),
	}

	output, err := h.uc.Login(req.Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token, output.MaxAge)

	return response.JSON(c, http.StatusOK, loginResponse{
		Message: "Login realizado com sucesso",
		User:    output.User,
	})
}

// Me returns the identity resolved from the caller's session. It sits
// behind RequireSession.
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := middleware.SessionFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	return response.JSON(c, http.StatusOK, claims)
}

// setSessionCookie scopes the token cookie to the token's own lifetime.
// The Secure flag is only set in production so local HTTP development keeps
// working.
func (h *AuthHandler) setSessionCookie(c echo.Context, token string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cfg.IsProduction(),
	})
}
