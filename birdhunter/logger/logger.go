package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
)

type LogType string

const (
	TypeCommand LogType = "CMD"
	TypeDB      LogType = "DB"
	TypeSystem  LogType = "SYS"
	TypeError   LogType = "ERR"
	TypeGame    LogType = "GAME"
)

// Options configures the process-wide handler.
type Options struct {
	Level     slog.Level
	Format    string
	AddSource bool
}

// New builds the handler selected by opts: "json" gives slog's JSON handler,
// anything else the colored console handler.
func New(w io.Writer, opts Options) slog.Handler {
	if strings.EqualFold(opts.Format, "json") {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: opts.Level, AddSource: opts.AddSource})
	}
	return NewHandler(w, opts.Level)
}

// CustomHandler prints one colored line per record:
// [BirdHunter] [15:04:05] [LEVEL] [TYPE] message.
type CustomHandler struct {
	mu     *sync.Mutex
	out    io.Writer
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

func NewHandler(w io.Writer, level slog.Leveler) *CustomHandler {
	if w == nil {
		w = os.Stdout
	}
	if level == nil {
		level = slog.LevelInfo
	}
	return &CustomHandler{
		mu:     &sync.Mutex{},
		out:    w,
		level:  level,
		attrs:  make([]slog.Attr, 0),
		groups: make([]string, 0),
	}
}

func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

func (h *CustomHandler) WithGroup(name string) slog.Handler {
	next := *h
	next.groups = append(append([]string{}, h.groups...), name)
	return &next
}

func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	if shouldSkipLog(&r) {
		return nil
	}

	var levelColor, levelText string
	switch {
	case r.Level >= slog.LevelError:
		levelColor, levelText = colorRed, "ERROR"
	case r.Level >= slog.LevelWarn:
		levelColor, levelText = colorYellow, "WARN"
	case r.Level >= slog.LevelInfo:
		levelColor, levelText = colorGreen, "INFO"
	default:
		levelColor, levelText = colorPurple, "DEBUG"
	}

	logType := getLogType(&r)
	cmdName := attrString(&r, "name")
	userName := attrString(&r, "user_name")
	status := attrString(&r, "status")

	message := r.Message
	if r.Level >= slog.LevelError {
		if loc := getErrorLocation(&r); loc != "" {
			message = fmt.Sprintf("%s (%s)", message, loc)
		}
		if details := attrString(&r, "error"); details != "" {
			message = fmt.Sprintf("%s: %s", message, details)
		}
	}
	if cmdName != "" && userName != "" {
		message = fmt.Sprintf("%s [%s by %s]", message, cmdName, userName)
	}
	if status != "" {
		message = fmt.Sprintf("%s [Status: %s]", message, status)
	}
	if took := attrString(&r, "took"); took != "" {
		message = fmt.Sprintf("%s (took %s)", message, took)
	}

	var attrsStr strings.Builder
	prefix := strings.Join(h.groups, ".")
	for _, attr := range h.attrs {
		if !isInternalAttr(attr.Key) {
			key := attr.Key
			if prefix != "" {
				key = prefix + "." + key
			}
			fmt.Fprintf(&attrsStr, " %s=%v", key, attr.Value)
		}
	}

	typeColor := colorWhite
	if logType == TypeGame {
		typeColor = colorCyan
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.out, "%s[BirdHunter] [%s] [%s%s%s] [%s%s%s] %s%s%s\n",
		colorWhite,
		r.Time.Format("15:04:05"),
		levelColor,
		levelText,
		colorWhite,
		typeColor,
		logType,
		colorWhite,
		message,
		attrsStr.String(),
		colorReset,
	)
	return err
}

// gateway and rest chatter from disgo
var skippedMessages = []string{
	"locking buckets",
	"unlocking buckets",
	"gateway event",
	"cleaning up bucket",
	"cleaned up rate limit buckets",
	"binary message received",
	"received gateway message",
	"opening gateway connection",
	"locking gateway rate limiter",
	"unlocking gateway rate limiter",
	"sending gateway command",
	"new request",
	"new response",
	"locking rest bucket",
	"unlocking rest bucket",
	"rate limit response headers",
	"sending heartbeat",
}

func shouldSkipLog(r *slog.Record) bool {
	msg := strings.ToLower(r.Message)
	for _, skip := range skippedMessages {
		if strings.Contains(msg, skip) {
			return true
		}
	}
	return false
}

func getLogType(r *slog.Record) LogType {
	switch attrString(r, "type") {
	case "cmd", "component", "modal":
		return TypeCommand
	case "db":
		return TypeDB
	case "error":
		return TypeError
	case "game":
		return TypeGame
	default:
		return TypeSystem
	}
}

func isInternalAttr(key string) bool {
	switch key {
	case "type", "name", "user_name", "status":
		return true
	}
	return false
}

func attrString(r *slog.Record, key string) string {
	var out string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			out = a.Value.String()
			return false
		}
		return true
	})
	return out
}

func getErrorLocation(r *slog.Record) string {
	if loc := attrString(r, "error_location"); loc != "" {
		return loc
	}
	if r.PC == 0 {
		return ""
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	f, _ := frames.Next()
	if f.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
}

// Since is shorthand for the "took" attribute used throughout the bot.
func Since(start time.Time) slog.Attr {
	return slog.Duration("took", time.Since(start))
}
