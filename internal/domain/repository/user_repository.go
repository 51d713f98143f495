// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"portfolio/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the read operations the authentication core needs.
// Account creation and maintenance belong to the account-management
// collaborator and are deliberately absent here.
type UserRepository interface {
	// FindByEmail retrieves a single user by exact email match.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}
