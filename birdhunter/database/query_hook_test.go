package database

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestQueryHook(t *testing.T) {
	tests := []struct {
		name    string
		slow    time.Duration
		age     time.Duration
		err     error
		want    string
		notWant string
	}{
		{name: "fast query", slow: time.Hour, want: "Query executed"},
		{name: "no rows is not a failure", slow: time.Hour, err: sql.ErrNoRows, want: "Query executed", notWant: "Query failed"},
		{name: "failure", slow: time.Hour, err: errors.New("disk I/O error"), want: "Query failed"},
		{name: "slow query", slow: time.Millisecond, age: time.Second, want: "Slow query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			h := &queryHook{slow: tt.slow}
			ctx := h.BeforeQuery(context.Background(), nil)
			h.AfterQuery(ctx, &bun.QueryEvent{
				Query:     "SELECT * FROM users WHERE user_id = '1'",
				StartTime: time.Now().Add(-tt.age),
				Err:       tt.err,
			})

			assert.Contains(t, buf.String(), tt.want)
			if tt.notWant != "" {
				assert.NotContains(t, buf.String(), tt.notWant)
			}
		})
	}
}
