package metrics

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct{ err error }

func (f fakeDB) Ping(context.Context) error { return f.err }

func TestHealthz(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"healthy", nil, http.StatusOK, `"status":"ok"`},
		{"database down", errors.New("disk full"), http.StatusServiceUnavailable, "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewServer(":0", fakeDB{err: tt.err})
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}

func TestMetricsEndpointExposesCollectors(t *testing.T) {
	ObserveCommand("hunt", StatusSuccess, 120*time.Millisecond)
	BirdCaptured("rare")

	srv := NewServer(":0", fakeDB{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `birdhunter_commands_total{command="hunt",status="success"}`))
	assert.True(t, strings.Contains(body, `birdhunter_birds_captured_total{rarity="rare"}`))
}

func TestCoinCounters(t *testing.T) {
	before := testutil.ToFloat64(CoinsTotal.WithLabelValues("earned"))
	CoinsEarned(40)
	CoinsEarned(-5)
	assert.Equal(t, before+40, testutil.ToFloat64(CoinsTotal.WithLabelValues("earned")))

	spent := testutil.ToFloat64(CoinsTotal.WithLabelValues("spent"))
	CoinsSpent(10)
	assert.Equal(t, spent+10, testutil.ToFloat64(CoinsTotal.WithLabelValues("spent")))
}

func TestRequestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	srv := NewServer(":0", fakeDB{err: errors.New("down")})
	srv.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Empty(t, buf.String(), "scrapes log at debug")

	srv.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), `"status":503`)
}
