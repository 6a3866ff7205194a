package postgres

import (
	"strings"

	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// classifyConstraint maps a write error onto repository.ErrConstraintViolated
// when the database rejected the data itself. It returns nil for everything
// else so the caller can treat the error as a transport failure.
func classifyConstraint(err error, subject string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return errors.Wrapf(repository.ErrConstraintViolated, "%s violates a unique constraint", subject)
	case isCheckConstraintViolation(err):
		return errors.Wrapf(repository.ErrConstraintViolated, "%s violates a check constraint", subject)
	case isNotNullConstraintViolation(err):
		return errors.Wrapf(repository.ErrConstraintViolated, "%s is missing a required field", subject)
	default:
		return nil
	}
}

// Helper functions for PostgreSQL error classification. Constraint
// violations are data errors the façade returns verbatim; anything else is
// treated as a transport failure and triggers local-store fallback.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "23514") // PostgreSQL check_violation error code
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
