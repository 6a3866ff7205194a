package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// AccountUsecase defines the interface for user account management use cases
type AccountUsecase interface {
	// ListUsers returns all users, newest first
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// CreateUser creates a user, generating an id when none is given
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)

	// UpdateUser merges the patch into the user and returns the result
	UpdateUser(ctx context.Context, id string, patch *repository.UserPatch) (*entity.User, error)

	// DeleteUser removes a user; unknown ids succeed
	DeleteUser(ctx context.Context, id string) error
}
