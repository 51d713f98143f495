// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"
	"portfolio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
// It resolves the database handle lazily through the client provider, so
// the connection variant in effect is invisible at this layer.
type userRepository struct {
	provider *Provider
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(provider *Provider) repository.UserRepository {
	return &userRepository{provider: provider}
}

// FindByEmail retrieves a single user by exact email match.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	db, err := repo.provider.Get()
	if err != nil {
		return nil, err
	}

	var userM model.UserModel
	if err := db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	db, err := repo.provider.Get()
	if err != nil {
		return nil, err
	}

	var userM model.UserModel
	if err := db.WithContext(ctx).First(&userM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Name:         data.Name,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
