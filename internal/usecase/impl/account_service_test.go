package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountForTest(t *testing.T, notifier *recordingNotifier) usecase.AccountUsecase {
	t.Helper()

	return NewAccountService(AccountServiceParams{
		Local:    testLocal(t),
		Notifier: notifier,
		Logger:   testLogger(),
	})
}

func TestAccountService_CreateUser(t *testing.T) {
	notifier := &recordingNotifier{}
	accounts := newAccountForTest(t, notifier)

	created, err := accounts.CreateUser(context.Background(), &entity.User{Email: "staff@storefront.local", Name: "Staff", Role: entity.RoleStaff})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, []string{"user.created"}, notifier.kinds())
}

func TestAccountService_CreateUserRejectsUnknownRole(t *testing.T) {
	accounts := newAccountForTest(t, &recordingNotifier{})

	_, err := accounts.CreateUser(context.Background(), &entity.User{Email: "x@storefront.local", Role: "superuser"})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestAccountService_DuplicateEmailPassesThrough(t *testing.T) {
	notifier := &recordingNotifier{}
	accounts := newAccountForTest(t, notifier)

	_, err := accounts.CreateUser(context.Background(), &entity.User{Email: "admin@storefront.local", Name: "Clone"})
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)
	assert.Empty(t, notifier.events)
}

func TestAccountService_UpdateUserRejectsUnknownRole(t *testing.T) {
	accounts := newAccountForTest(t, &recordingNotifier{})

	role := entity.Role("superuser")
	_, err := accounts.UpdateUser(context.Background(), "seed-admin", &repository.UserPatch{Role: &role})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestAccountService_DeleteUserPublishesStringID(t *testing.T) {
	notifier := &recordingNotifier{}
	accounts := newAccountForTest(t, notifier)

	require.NoError(t, accounts.DeleteUser(context.Background(), "seed-admin"))
	require.Len(t, notifier.events, 1)
	assert.Equal(t, "user.deleted", notifier.events[0].kind)
	assert.Equal(t, deletedPayload[string]{ID: "seed-admin"}, notifier.events[0].payload)
}
