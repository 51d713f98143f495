// Package errors defines the application error taxonomy. Every error that
// reaches the HTTP boundary carries an HTTP status, a business code and a
// user-facing message; everything else is mapped to a generic 500.
package errors

import (
	"net/http"

	"portfolio/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types. Messages are the exact strings served to clients.
var (
	// ErrMissingCredentials is returned when the login request lacks the
	// email or the password. It is never audited: the input never reached
	// credential evaluation.
	ErrMissingCredentials = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CREDENTIALS",
		"Email e senha são obrigatórios",
	)

	// ErrInvalidCredentials covers both the unknown-account and the
	// wrong-password cases with identical wording, so responses leak no
	// account-enumeration signal.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Credenciais inválidas",
	)

	// ErrUnauthorized is returned by session-protected endpoints when no
	// valid session could be resolved from the request.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Não autorizado. Faça login para continuar.",
	)

	// ErrFooterNotFound is returned when the footer configuration row is absent.
	ErrFooterNotFound = NewBaseError(
		http.StatusNotFound,
		"FOOTER_NOT_FOUND",
		"Configuração de rodapé não encontrada",
	)

	// ErrValidationFailed covers malformed request payloads outside the
	// login flow.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados de entrada inválidos",
	)

	// ErrInternalError is the generic fallback; internal detail never
	// reaches the caller.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do servidor",
	)
)
