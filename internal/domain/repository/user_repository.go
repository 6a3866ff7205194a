package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when creating a user whose email is taken.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserPatch carries a partial user update. Nil fields are left
// untouched by Update.
type UserPatch struct {
	Email    *string
	Name     *string
	Phone    *string
	Role     *entity.Role
	IsActive *bool
}

// UserRepository defines user CRUD against one backing store.
type UserRepository interface {
	// ListUsers returns all users, newest first.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// CreateUser persists the user, generating an id when none is set.
	// Returns ErrDuplicateUser when the email is already registered.
	CreateUser(ctx context.Context, user *entity.User) error

	// UpdateUser merges the patch into the stored user and returns
	// the merged record. Returns ErrUserNotFound for an unknown id.
	UpdateUser(ctx context.Context, id string, patch *UserPatch) (*entity.User, error)

	// DeleteUser removes the user. Deleting an unknown id succeeds.
	DeleteUser(ctx context.Context, id string) error
}
