// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/internal/infra/persistence/model"

	"github.com/pkg/errors"
)

// loginAttemptRepository implements the append-only audit store.
type loginAttemptRepository struct {
	provider *Provider
}

// NewLoginAttemptRepository is the constructor for loginAttemptRepository.
func NewLoginAttemptRepository(provider *Provider) repository.LoginAttemptRepository {
	return &loginAttemptRepository{provider: provider}
}

// Create appends one attempt record. The attempt's generated ID and
// timestamp are written back to the entity.
func (repo *loginAttemptRepository) Create(ctx context.Context, attempt *entity.LoginAttempt) error {
	db, err := repo.provider.Get()
	if err != nil {
		return err
	}

	attemptM := &model.LoginAttemptModel{
		UserID:    attempt.UserID,
		Email:     attempt.Email,
		IP:        attempt.IP,
		UserAgent: attempt.UserAgent,
		Success:   attempt.Success,
	}

	if err := db.WithContext(ctx).Create(attemptM).Error; err != nil {
		return errors.Wrap(err, "failed to create login attempt record")
	}

	attempt.ID = attemptM.ID
	attempt.CreatedAt = attemptM.CreatedAt

	return nil
}
