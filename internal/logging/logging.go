package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Config selects where and how log records are written
type Config struct {
	Version string

	// Path is the log file. Empty means discard everything.
	Path string

	Level slog.Level
	JSON  bool
}

// New creates a logger and a close func for the underlying file.
// The TUI owns stdout, so records only ever go to a file.
func New(cfg Config) (*slog.Logger, func() error, error) {
	if cfg.Path == "" {
		return NewNop(), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return NewWithWriter(f, cfg), f.Close, nil
}

// NewWithWriter builds a logger writing to out
func NewWithWriter(out io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler).With(
		slog.String("version", cfg.Version),
		slog.Int("pid", os.Getpid()),
	)
}

// NewNop returns a logger that discards all records
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel maps debug/info/warn/error to a slog level
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

type ctxKeyType struct{}

var ctxKey ctxKeyType

// WithLogger stores lg on ctx
func WithLogger(ctx context.Context, lg *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey, lg)
}

// FromContext returns the logger stored on ctx, or a no-op logger
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if lg, ok := ctx.Value(ctxKey).(*slog.Logger); ok && lg != nil {
			return lg
		}
	}
	return NewNop()
}

// Entry is a captured log record
type Entry struct {
	Level slog.Level
	Msg   string
	Attrs map[string]any
}

// RecordingHandler keeps every record in memory, for tests
type RecordingHandler struct {
	mu      sync.Mutex
	entries []Entry
}

func (h *RecordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *RecordingHandler) Handle(_ context.Context, r slog.Record) error {
	e := Entry{Level: r.Level, Msg: r.Message, Attrs: map[string]any{}}
	r.Attrs(func(a slog.Attr) bool {
		e.Attrs[a.Key] = a.Value.Any()
		return true
	})
	h.mu.Lock()
	h.entries = append(h.entries, e)
	h.mu.Unlock()
	return nil
}

func (h *RecordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *RecordingHandler) WithGroup(string) slog.Handler      { return h }

// Entries returns a copy of the captured records
func (h *RecordingHandler) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Entry(nil), h.entries...)
}

// Messages returns the captured messages in order
func (h *RecordingHandler) Messages() []string {
	var msgs []string
	for _, e := range h.Entries() {
		msgs = append(msgs, e.Msg)
	}
	return msgs
}

// NewRecorder returns a logger backed by a RecordingHandler
func NewRecorder() (*slog.Logger, *RecordingHandler) {
	h := &RecordingHandler{}
	return slog.New(h), h
}

var _ slog.Handler = (*RecordingHandler)(nil)
