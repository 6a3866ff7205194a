package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// ListUsers returns all users, newest first.
func (repo *userRepository) ListUsers(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// CreateUser persists a new user, generating an id when none is set. A
// unique violation on the email column surfaces as ErrDuplicateUser rather
// than the generic constraint sentinel.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Role == "" {
		user.Role = entity.RoleCustomer
	}

	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrapf(repository.ErrDuplicateUser, "email %s", user.Email)
		}
		if constraintErr := classifyConstraint(err, "user"); constraintErr != nil {
			return constraintErr
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateUser merges patch fields into the stored row and returns the
// merged record.
func (repo *userRepository) UpdateUser(ctx context.Context, id string, patch *repository.UserPatch) (*entity.User, error) {
	fields := map[string]any{}
	if patch.Email != nil {
		fields["email"] = *patch.Email
	}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Phone != nil {
		fields["phone"] = *patch.Phone
	}
	if patch.Role != nil {
		fields["role"] = string(*patch.Role)
	}
	if patch.IsActive != nil {
		fields["is_active"] = *patch.IsActive
	}

	if len(fields) > 0 {
		tx := repo.db.WithContext(ctx).
			Model(&model.UserModel{}).
			Where("id = ?", id).
			Updates(fields)
		if tx.Error != nil {
			if isUniqueConstraintViolation(tx.Error) {
				return nil, errors.Wrap(repository.ErrDuplicateUser, "email already registered")
			}
			if constraintErr := classifyConstraint(tx.Error, "user"); constraintErr != nil {
				return nil, constraintErr
			}

			return nil, errors.Wrap(tx.Error, "failed to update user")
		}
		if tx.RowsAffected == 0 {
			return nil, repository.ErrUserNotFound
		}
	}

	var userM model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to reload user")
	}

	return toUserDomain(&userM), nil
}

// DeleteUser removes a user. Deleting an unknown id succeeds.
func (repo *userRepository) DeleteUser(ctx context.Context, id string) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	return nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	return &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Name:      data.Name,
		Phone:     data.Phone,
		Role:      entity.Role(data.Role),
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:        data.ID,
		Email:     data.Email,
		Name:      data.Name,
		Phone:     data.Phone,
		Role:      string(data.Role),
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
