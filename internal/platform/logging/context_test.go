package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTraceIDFromContext(t *testing.T) {
	if got := TraceIDFromContext(context.Background()); got != nil {
		t.Fatalf("expected nil trace ID, got %v", got)
	}
	if got := TraceIDFromContext(nil); got != nil {
		t.Fatalf("expected nil trace ID for nil context, got %v", got)
	}
	ctx := contextWithTraceID(context.Background(), "trace-abc")
	got := TraceIDFromContext(ctx)
	if got == nil || *got != "trace-abc" {
		t.Fatalf("expected trace-abc, got %v", got)
	}
}

func TestContextWithEmptyTraceIDIsNoop(t *testing.T) {
	ctx := context.Background()
	if contextWithTraceID(ctx, "") != ctx {
		t.Fatal("expected the same context for an empty trace ID")
	}
}

func TestLoggerFromContextFallsBackToGlobal(t *testing.T) {
	if LoggerFromContext(context.Background()) != Logger() {
		t.Fatal("expected global logger without a request logger in context")
	}
}

func TestLogHelpersUseContextLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	ctx := contextWithLogger(context.Background(), zap.New(core))

	LogDebug(ctx, "debug message")
	LogInfo(ctx, "info message", zap.String("foo", "bar"))
	LogWarn(ctx, "warn message")
	LogError(ctx, "error message", errors.New("boom"))
	LogError(ctx, "error without cause", nil)

	entries := recorded.All()
	if len(entries) != 5 {
		t.Fatalf("expected 5 log entries, got %d", len(entries))
	}
	wantLevels := []zapcore.Level{
		zapcore.DebugLevel,
		zapcore.InfoLevel,
		zapcore.WarnLevel,
		zapcore.ErrorLevel,
		zapcore.ErrorLevel,
	}
	for i, lvl := range wantLevels {
		if entries[i].Level != lvl {
			t.Fatalf("entry %d: expected level %s, got %s", i, lvl, entries[i].Level)
		}
	}

	if f := entries[1].Context; len(f) != 1 || f[0].Key != "foo" || f[0].String != "bar" {
		t.Fatalf("unexpected info fields: %+v", f)
	}
	if f := entries[3].Context; len(f) != 1 || f[0].Key != "error" || f[0].Type != zapcore.ErrorType {
		t.Fatalf("expected error field, got %+v", f)
	}
	if f := entries[4].Context; len(f) != 0 {
		t.Fatalf("expected no fields for nil error, got %+v", f)
	}
}
