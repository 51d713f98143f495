// Package usecase declares the application's use case contracts and their
// input/output shapes.
package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/service"
)

// LoginInput carries the submitted credentials plus the request metadata
// consumed by the audit trail. Meta never participates in credential
// evaluation.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	Meta service.AttemptMeta `json:"-"`
}

// LoginOutput is the successful login result. Token is handed to the
// delivery layer to be set as a cookie; MaxAge is the cookie lifetime in
// seconds, matching the token validity.
type LoginOutput struct {
	Token  string
	MaxAge int
	User   *entity.PublicUser
}

// AuthUsecase is the login orchestrator: credential check, token issuance
// and audit recording behind a single operation.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
