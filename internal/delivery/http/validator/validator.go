// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "portfolio/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playground.Validate
}

// New creates the request payload validator installed on the echo server.
func New() echo.Validator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags; failures surface as the generic validation
// AppError so the boundary maps them to a 400 without leaking tag detail.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
