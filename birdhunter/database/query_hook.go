package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/birdwatchers/birdhunter/birdhunter/logger"
	"github.com/uptrace/bun"
)

const slowQueryThreshold = 250 * time.Millisecond

// queryHook logs every bun query at debug level, slow ones as warnings and failures as errors.
// sql.ErrNoRows is an answer, not a failure.
type queryHook struct {
	slow time.Duration
}

var _ bun.QueryHook = (*queryHook)(nil)

func (h *queryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *queryHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	took := time.Since(event.StartTime)
	err := event.Err
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
	}

	if err == nil && h.slow > 0 && took >= h.slow {
		slog.Warn("Slow query",
			slog.String("type", "db"),
			slog.String("operation", event.Operation()),
			slog.String("query", event.Query),
			slog.Duration("took", took))
		return
	}
	logger.LogQuery(event.Operation(), event.Query, took, err)
}
