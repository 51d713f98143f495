// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"portfolio/internal/domain/entity"
)

// LoginAttemptRepository persists the append-only audit trail of
// authentication attempts. There are no update or delete operations.
type LoginAttemptRepository interface {
	// Create appends one attempt record.
	Create(ctx context.Context, attempt *entity.LoginAttempt) error
}
