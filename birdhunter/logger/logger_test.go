package logger

import (
	"bytes"
	"log/slog"
	"regexp"
	"strings"
	"testing"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string { return ansi.ReplaceAllString(s, "") }

func TestCustomHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, slog.LevelInfo))

	log.Info("Command completed",
		slog.String("type", "cmd"),
		slog.String("name", "hunt"),
		slog.String("user_name", "alice"),
		slog.String("status", "success"),
	)

	out := plain(buf.String())
	for _, want := range []string{"[BirdHunter]", "[INFO] [CMD]", "Command completed [hunt by alice] [Status: success]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestCustomHandlerLevelAndSkip(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, slog.LevelWarn))

	log.Info("below threshold")
	log.Warn("sending heartbeat")
	if buf.Len() != 0 {
		t.Fatalf("expected nothing logged, got %q", buf.String())
	}

	log.Error("Hunt failed", slog.String("type", "game"), slog.String("error", "boom"))
	out := plain(buf.String())
	if !strings.Contains(out, "[ERROR] [GAME]") || !strings.Contains(out, ": boom") {
		t.Errorf("unexpected error line %q", out)
	}
}

func TestNewSelectsJSON(t *testing.T) {
	var buf bytes.Buffer
	slog.New(New(&buf, Options{Level: slog.LevelInfo, Format: "json"})).Info("ready", slog.String("type", "sys"))

	if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), `"msg":"ready"`) {
		t.Errorf("expected json output, got %q", buf.String())
	}
}

func TestWithAttrsDoesNotShareBacking(t *testing.T) {
	var buf bytes.Buffer
	base := NewHandler(&buf, slog.LevelInfo).WithAttrs([]slog.Attr{slog.String("shard", "0")})

	a := slog.New(base.WithAttrs([]slog.Attr{slog.String("job", "a")}))
	b := slog.New(base.WithAttrs([]slog.Attr{slog.String("job", "b")}))

	a.Info("one")
	b.Info("two")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "job=a") || !strings.Contains(lines[1], "job=b") {
		t.Errorf("unexpected lines %q", lines)
	}
}
