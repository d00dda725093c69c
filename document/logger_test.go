package document

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

// contextKey is a custom type for context keys to satisfy staticcheck SA1029
type contextKey string

func TestNopLogger(t *testing.T) {
	t.Run("implements Logger interface", func(t *testing.T) {
		var _ Logger = NopLogger{}
	})

	t.Run("Debug does nothing", func(t *testing.T) {
		l := NopLogger{}
		// Should not panic
		l.Debug("test message", "key", "value")
	})

	t.Run("Info does nothing", func(t *testing.T) {
		l := NopLogger{}
		l.Info("test message", "key", "value")
	})

	t.Run("Warn does nothing", func(t *testing.T) {
		l := NopLogger{}
		l.Warn("test message", "key", "value")
	})

	t.Run("Error does nothing", func(t *testing.T) {
		l := NopLogger{}
		l.Error("test message", "key", "value")
	})

	t.Run("With returns same NopLogger", func(t *testing.T) {
		l := NopLogger{}
		l2 := l.With("key", "value")
		_, ok := l2.(NopLogger)
		if !ok {
			t.Error("With should return NopLogger")
		}
	})
}

func TestSlogAdapter(t *testing.T) {
	t.Run("implements Logger interface", func(t *testing.T) {
		var _ Logger = (*SlogAdapter)(nil)
	})

	t.Run("NewSlogAdapter with nil uses default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		if adapter.logger == nil {
			t.Error("adapter.logger should not be nil")
		}
	})

	t.Run("Debug logs at debug level", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		adapter := NewSlogAdapter(slog.New(handler))

		adapter.Debug("test debug", "foo", "bar")
		output := buf.String()
		if !strings.Contains(output, "DEBUG") {
			t.Errorf("expected DEBUG level, got: %s", output)
		}
		if !strings.Contains(output, "foo=bar") {
			t.Errorf("expected foo=bar attribute, got: %s", output)
		}
	})

	t.Run("Info logs at info level", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
		adapter := NewSlogAdapter(slog.New(handler))

		adapter.Info("test info", "count", 42)
		output := buf.String()
		if !strings.Contains(output, "INFO") {
			t.Errorf("expected INFO level, got: %s", output)
		}
		if !strings.Contains(output, "count=42") {
			t.Errorf("expected count=42 attribute, got: %s", output)
		}
	})

	t.Run("Warn logs at warn level", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
		adapter := NewSlogAdapter(slog.New(handler))

		adapter.Warn("test warn", "problem", "something")
		if !strings.Contains(buf.String(), "WARN") {
			t.Errorf("expected WARN level, got: %s", buf.String())
		}
	})

	t.Run("Error logs at error level", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError})
		adapter := NewSlogAdapter(slog.New(handler))

		adapter.Error("test error", "err", "failed")
		if !strings.Contains(buf.String(), "ERROR") {
			t.Errorf("expected ERROR level, got: %s", buf.String())
		}
	})

	t.Run("With adds attributes", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		adapter := NewSlogAdapter(slog.New(handler))

		withAdapter := adapter.With("component", "applier")
		withAdapter.Debug("test with", "extra", "data")
		output := buf.String()
		if !strings.Contains(output, "component=applier") {
			t.Errorf("expected component=applier attribute, got: %s", output)
		}
		if !strings.Contains(output, "extra=data") {
			t.Errorf("expected extra=data attribute, got: %s", output)
		}
	})

	t.Run("With returns new SlogAdapter", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		withAdapter := adapter.With("key", "value")
		_, ok := withAdapter.(*SlogAdapter)
		if !ok {
			t.Error("With should return *SlogAdapter")
		}
	})
}

func TestContextLogger(t *testing.T) {
	t.Run("implements Logger interface", func(t *testing.T) {
		var _ Logger = (*ContextLogger)(nil)
	})

	t.Run("NewContextLogger stores context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), contextKey("test"), "value")
		logger := NewContextLogger(NopLogger{}, ctx)
		if logger.Context() != ctx {
			t.Error("Context() should return the stored context")
		}
	})

	t.Run("delegates to wrapped logger", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		adapter := NewSlogAdapter(slog.New(handler))
		ctxLogger := NewContextLogger(adapter, context.Background())

		ctxLogger.Debug("debug via context", "key", "val")
		ctxLogger.Info("info via context")
		ctxLogger.Warn("warn via context")
		ctxLogger.Error("error via context")

		output := buf.String()
		for _, msg := range []string{"debug via context", "info via context", "warn via context", "error via context"} {
			if !strings.Contains(output, msg) {
				t.Errorf("expected %q in output, got: %s", msg, output)
			}
		}
	})

	t.Run("With preserves context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), contextKey("req_id"), "123")
		ctxLogger := NewContextLogger(NopLogger{}, ctx)

		withLogger := ctxLogger.With("key", "value")
		ctxLogger2, ok := withLogger.(*ContextLogger)
		if !ok {
			t.Fatal("With should return *ContextLogger")
		}
		if ctxLogger2.Context() != ctx {
			t.Error("With should preserve context")
		}
	})
}

func TestLoggerUsagePatterns(t *testing.T) {
	t.Run("chained With calls", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		adapter := NewSlogAdapter(slog.New(handler))

		l := adapter.
			With("package", "edit").
			With("operation", "apply")
		l.Debug("applying entry", "path", "spec.replicas")

		output := buf.String()
		if !strings.Contains(output, "package=edit") {
			t.Errorf("expected package=edit, got: %s", output)
		}
		if !strings.Contains(output, "operation=apply") {
			t.Errorf("expected operation=apply, got: %s", output)
		}
		if !strings.Contains(output, "path=spec.replicas") {
			t.Errorf("expected path=spec.replicas, got: %s", output)
		}
	})

	t.Run("multiple loggers from same base", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		adapter := NewSlogAdapter(slog.New(handler))

		applyLogger := adapter.With("component", "applier")
		walkLogger := adapter.With("component", "walker")

		applyLogger.Debug("applying")
		walkLogger.Debug("walking")

		output := buf.String()
		if !strings.Contains(output, "component=applier") {
			t.Errorf("expected component=applier, got: %s", output)
		}
		if !strings.Contains(output, "component=walker") {
			t.Errorf("expected component=walker, got: %s", output)
		}
	})
}
