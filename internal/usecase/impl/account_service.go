package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrInvalidRole is returned when the submitted role is not one of the
// enumerated values
var ErrInvalidRole = errors.New("invalid role")

type accountService struct {
	remote   *postgres.Repositories
	local    *memory.Repositories
	notifier service.ChangeNotifier
	logger   *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Remote   *postgres.Repositories `optional:"true"`
	Local    *memory.Repositories
	Notifier service.ChangeNotifier
	Logger   *slog.Logger
}

// NewAccountService creates a new account service instance
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		remote:   params.Remote,
		local:    params.Local,
		notifier: params.Notifier,
		logger:   params.Logger,
	}
}

// ListUsers returns all users, newest first
func (s *accountService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return remoteFirst(s.logger, "list users",
		remoteOp(s.remote, func(r *postgres.Repositories) ([]*entity.User, error) {
			return r.Users.ListUsers(ctx)
		}),
		func() ([]*entity.User, error) {
			return s.local.Users.ListUsers(ctx)
		})
}

// CreateUser creates a user, generating an id when none is given
func (s *accountService) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user.Role != "" && !user.Role.Valid() {
		return nil, errors.Wrapf(ErrInvalidRole, "role %q", user.Role)
	}

	created, err := remoteFirst(s.logger, "create user",
		remoteOp(s.remote, func(r *postgres.Repositories) (*entity.User, error) {
			return user, r.Users.CreateUser(ctx, user)
		}),
		func() (*entity.User, error) {
			return user, s.local.Users.CreateUser(ctx, user)
		})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.notifier, s.logger, "user.created", created)

	return created, nil
}

// UpdateUser merges the patch into the user and returns the result
func (s *accountService) UpdateUser(ctx context.Context, id string, patch *repository.UserPatch) (*entity.User, error) {
	if patch.Role != nil && !patch.Role.Valid() {
		return nil, errors.Wrapf(ErrInvalidRole, "role %q", *patch.Role)
	}

	updated, err := remoteFirst(s.logger, "update user",
		remoteOp(s.remote, func(r *postgres.Repositories) (*entity.User, error) {
			return r.Users.UpdateUser(ctx, id, patch)
		}),
		func() (*entity.User, error) {
			return s.local.Users.UpdateUser(ctx, id, patch)
		})
	if err != nil {
		return nil, err
	}

	publishEvent(ctx, s.notifier, s.logger, "user.updated", updated)

	return updated, nil
}

// DeleteUser removes a user; unknown ids succeed
func (s *accountService) DeleteUser(ctx context.Context, id string) error {
	_, err := remoteFirst(s.logger, "delete user",
		remoteOp(s.remote, func(r *postgres.Repositories) (struct{}, error) {
			return struct{}{}, r.Users.DeleteUser(ctx, id)
		}),
		func() (struct{}, error) {
			return struct{}{}, s.local.Users.DeleteUser(ctx, id)
		})
	if err != nil {
		return err
	}

	publishEvent(ctx, s.notifier, s.logger, "user.deleted", deletedPayload[string]{ID: id})

	return nil
}
