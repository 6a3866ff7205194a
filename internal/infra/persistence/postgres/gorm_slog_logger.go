package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// slowQueryThreshold flags queries that would make the admin console feel
// sluggish well before the façade decides to fall back.
const slowQueryThreshold = 200 * time.Millisecond

// queryLogger adapts gorm's logging onto the service slog handler. Record
// misses are a data signal the repositories translate into not-found errors,
// and a backend that errors routes the call to the local store anyway, so
// failed queries land at warn rather than error.
type queryLogger struct {
	logger  *slog.Logger
	verbose bool
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	if base == nil {
		base = slog.Default()
	}

	return &queryLogger{
		logger:  base,
		verbose: cfg != nil && cfg.Env.Debug,
	}
}

// LogMode is required by logger.Interface. Verbosity follows the service
// debug flag instead, so the requested level is ignored.
func (l *queryLogger) LogMode(logger.LogLevel) logger.Interface { return l }

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.verbose {
		l.logger.InfoContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, fmt.Sprintf(msg, args...))
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, fmt.Sprintf(msg, args...))
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		l.logger.LogAttrs(ctx, slog.LevelWarn, "backend query failed",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
			slog.Any("error", err),
		)
	case elapsed > slowQueryThreshold:
		sql, rows := fc()
		l.logger.LogAttrs(ctx, slog.LevelWarn, "slow backend query",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
			slog.Duration("threshold", slowQueryThreshold),
		)
	case l.verbose:
		sql, rows := fc()
		l.logger.LogAttrs(ctx, slog.LevelInfo, "backend query",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
		)
	}
}
