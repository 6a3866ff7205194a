// Package impl implements the use case interfaces as a dual-backend façade.
// Every operation first tries the remote backend when one is configured and
// serves from the local store when the backend cannot be reached. Data
// errors, a not-found id or a constraint rejection, come back verbatim and
// never trigger the fallback: the backend answered, it just said no.
package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
)

// dataErrors are the sentinels a backend uses to reject a request on its
// merits. They pass through the façade untouched.
var dataErrors = []error{
	repository.ErrConstraintViolated,
	repository.ErrCategoryNotFound,
	repository.ErrProductNotFound,
	repository.ErrOrderNotFound,
	repository.ErrReviewNotFound,
	repository.ErrPostNotFound,
	repository.ErrUserNotFound,
	repository.ErrDuplicateUser,
	repository.ErrSettingsNotFound,
}

func isDataError(err error) bool {
	for _, sentinel := range dataErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}

// remoteOp lifts a per-call closure over the remote bundle into the nilable
// form remoteFirst expects. A nil bundle yields a nil closure, which
// remoteFirst reads as "no remote configured".
func remoteOp[T any](remote *postgres.Repositories, fn func(*postgres.Repositories) (T, error)) func() (T, error) {
	if remote == nil {
		return nil
	}

	return func() (T, error) {
		return fn(remote)
	}
}

// remoteFirst runs the remote closure when one exists and falls back to the
// local closure only on transport failures. The decision repeats on every
// call; a backend that comes back is used again immediately.
func remoteFirst[T any](logger *slog.Logger, op string, remote, local func() (T, error)) (T, error) {
	if remote != nil {
		value, err := remote()
		if err == nil {
			return value, nil
		}
		if isDataError(err) {
			var zero T

			return zero, err
		}

		logger.Warn("Remote backend unreachable, serving from local store",
			slog.String("operation", op),
			slog.Any("error", err),
		)
	}

	return local()
}

// publishEvent broadcasts a change event after a successful mutation. The
// mutation already happened, so a broadcast failure is logged and swallowed
// rather than turned into a caller-visible error.
func publishEvent(ctx context.Context, notifier service.ChangeNotifier, logger *slog.Logger, kind string, payload any) {
	if err := notifier.Publish(ctx, kind, payload); err != nil {
		logger.Warn("Change event broadcast failed",
			slog.String("kind", kind),
			slog.Any("error", err),
		)
	}
}

// deletedPayload is the envelope payload for deletion events, which carry
// only the removed id.
type deletedPayload[ID int64 | string] struct {
	ID ID `json:"id"`
}
