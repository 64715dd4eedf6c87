package handler

import (
	"bytes"
	"context"
	"log/slog"
	"regexp"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/flaglog/core"
	"github.com/philipp01105/flaglog/facade"
	"github.com/philipp01105/flaglog/logger"
)

func newTestLogger(buf *bytes.Buffer, level core.Level, flags core.Flags) *logger.Logger {
	return logger.NewBuilder().
		WithLevel(level).
		WithFlags(flags).
		WithOutput(buf).
		Build()
}

func TestSlogHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewSlogHandler(newTestLogger(&buf, core.DebugLevel, 0)))

	l.Info("hello", "user", "alice", "n", 3)
	l.Warn("spaced", "msg", "hello world")
	l.Error("failed", slog.Group("req", "id", 7, "path", "/x"))

	want := "INFO  hello user=alice n=3\n" +
		"WARN  spaced msg=\"hello world\"\n" +
		"ERROR failed req.id=7 req.path=/x\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewSlogHandler(newTestLogger(&buf, core.DebugLevel, 0)))

	l.With("a", 1).WithGroup("g").Info("m", "b", 2)

	if buf.String() != "INFO  m a=1 g.b=2\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestSlogHandler_Levels(t *testing.T) {
	var buf bytes.Buffer
	h := NewSlogHandler(newTestLogger(&buf, core.WarnLevel, 0))
	ctx := context.Background()

	tests := []struct {
		level slog.Level
		want  bool
	}{
		{slog.LevelDebug - 4, false},
		{slog.LevelDebug, false},
		{slog.LevelInfo, false},
		{slog.LevelWarn, true},
		{slog.LevelError, true},
		{slog.LevelError + 4, true},
	}
	for _, tt := range tests {
		if got := h.Enabled(ctx, tt.level); got != tt.want {
			t.Errorf("Enabled(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}

	slog.New(h).Info("filtered")
	if buf.Len() != 0 {
		t.Errorf("filtered record written: %q", buf.String())
	}
}

func TestSlogHandler_Source(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewSlogHandler(newTestLogger(&buf, core.DebugLevel, core.Lshortfile)))

	l.Info("located")

	if !regexp.MustCompile(`^INFO  handler_test\.go:\d+: located\n$`).MatchString(buf.String()) {
		t.Errorf("got %q", buf.String())
	}
}

func TestZapCore(t *testing.T) {
	var buf bytes.Buffer
	z := zap.New(NewZapCore(newTestLogger(&buf, core.InfoLevel, 0)))

	z.Debug("filtered")
	z.Info("hello", zap.String("user", "alice"), zap.Int("n", 3))
	z.With(zap.String("svc", "api")).Warn("slow", zap.Bool("retry", true))
	z.Error("failed")

	want := "INFO  hello n=3 user=alice\n" +
		"WARN  slow retry=true svc=api\n" +
		"ERROR failed\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
	if err := z.Sync(); err != nil {
		t.Errorf("Sync() error = %v", err)
	}
}

func TestZapCore_Caller(t *testing.T) {
	var buf bytes.Buffer
	z := zap.New(NewZapCore(newTestLogger(&buf, core.DebugLevel, core.Lshortfile)), zap.AddCaller())

	z.Info("located")

	if !regexp.MustCompile(`^INFO  handler_test\.go:\d+: located\n$`).MatchString(buf.String()) {
		t.Errorf("got %q", buf.String())
	}
}

func TestZapLevelToCore(t *testing.T) {
	tests := []struct {
		in   zapcore.Level
		want core.Level
	}{
		{zapcore.DebugLevel, core.DebugLevel},
		{zapcore.InfoLevel, core.InfoLevel},
		{zapcore.WarnLevel, core.WarnLevel},
		{zapcore.ErrorLevel, core.ErrorLevel},
		{zapcore.DPanicLevel, core.ErrorLevel},
		{zapcore.FatalLevel, core.ErrorLevel},
	}
	for _, tt := range tests {
		if got := zapLevelToCore(tt.in); got != tt.want {
			t.Errorf("zapLevelToCore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestNilRoutesToFacade is the only test in this package that registers
// a logger with the facade.
func TestNilRoutesToFacade(t *testing.T) {
	var buf bytes.Buffer
	h := NewSlogHandler(nil)
	zc := NewZapCore(nil)

	// nothing installed yet: everything is discarded
	if h.Enabled(context.Background(), slog.LevelError) || zc.Enabled(zap.ErrorLevel) {
		t.Fatal("bridges enabled before registration")
	}

	if err := logger.Init(newTestLogger(&buf, core.DebugLevel, 0)); err != nil {
		t.Fatal(err)
	}
	if !facade.Initialized() {
		t.Fatal("facade not initialized")
	}

	slog.New(h).Info("via slog")
	zap.New(zc).Info("via zap")

	if buf.String() != "INFO  via slog\nINFO  via zap\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestNeedsQuoting(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"plain", false},
		{"", true},
		{"two words", true},
		{"a=b", true},
		{`say "hi"`, true},
		{"tab\there", true},
	}
	for _, tt := range tests {
		if got := needsQuoting(tt.in); got != tt.want {
			t.Errorf("needsQuoting(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
