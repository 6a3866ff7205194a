package memory

import (
	"context"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	store *Store
}

// NewUserRepository is the constructor for the in-memory user repository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (repo *userRepository) ListUsers(_ context.Context) ([]*entity.User, error) {
	s := repo.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*entity.User, 0, len(s.users))
	for i := len(s.users) - 1; i >= 0; i-- {
		cp := s.users[i]
		users = append(users, &cp)
	}

	return users, nil
}

// CreateUser keeps a provided identity-provider id and generates a uuid when
// the id is empty. Emails are unique within the store.
func (repo *userRepository) CreateUser(_ context.Context, user *entity.User) error {
	s := repo.store
	s.mu.Lock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			s.mu.Unlock()

			return repository.ErrDuplicateUser
		}
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Role == "" {
		user.Role = entity.RoleCustomer
	}
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	s.users = append(s.users, *user)

	s.mu.Unlock()
	s.snapshot(keyUsers, s.copyUsers())

	return nil
}

func (repo *userRepository) UpdateUser(_ context.Context, id string, patch *repository.UserPatch) (*entity.User, error) {
	s := repo.store
	s.mu.Lock()

	idx := -1
	for i := range s.users {
		if s.users[i].ID == id {
			idx = i

			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()

		return nil, repository.ErrUserNotFound
	}

	u := &s.users[idx]
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Phone != nil {
		u.Phone = *patch.Phone
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.IsActive != nil {
		u.IsActive = *patch.IsActive
	}
	u.UpdatedAt = time.Now().UTC()
	merged := *u

	s.mu.Unlock()
	s.snapshot(keyUsers, s.copyUsers())

	return &merged, nil
}

func (repo *userRepository) DeleteUser(_ context.Context, id string) error {
	s := repo.store
	s.mu.Lock()

	kept := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.users = kept

	s.mu.Unlock()
	s.snapshot(keyUsers, s.copyUsers())

	return nil
}

func (s *Store) copyUsers() []entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := make([]entity.User, len(s.users))
	copy(cp, s.users)

	return cp
}
