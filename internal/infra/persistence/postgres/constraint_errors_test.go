package postgres

import (
	"testing"

	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassifyConstraint(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint bool
	}{
		{
			name:       "gorm duplicated key",
			err:        gorm.ErrDuplicatedKey,
			constraint: true,
		},
		{
			name:       "postgres unique violation message",
			err:        errors.New(`ERROR: duplicate key value violates unique constraint "users_email_key" (SQLSTATE 23505)`),
			constraint: true,
		},
		{
			name:       "postgres check violation message",
			err:        errors.New(`ERROR: new row for relation "reviews" violates check constraint "reviews_rating_check" (SQLSTATE 23514)`),
			constraint: true,
		},
		{
			name:       "postgres not null violation message",
			err:        errors.New(`ERROR: null value in column "name" violates not-null constraint (SQLSTATE 23502)`),
			constraint: true,
		},
		{
			name:       "connection refused is not a data error",
			err:        errors.New("dial tcp 10.0.0.1:5432: connection refused"),
			constraint: false,
		},
		{
			name:       "generic sql error is not a data error",
			err:        errors.New(`ERROR: relation "products" does not exist (SQLSTATE 42P01)`),
			constraint: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := classifyConstraint(tt.err, "product")
			if !tt.constraint {
				assert.NoError(t, classified)

				return
			}
			assert.ErrorIs(t, classified, repository.ErrConstraintViolated)
		})
	}
}
