// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/erraggy/lenstools/document"
)

// NewSimpleDocument creates a small mixed document for testing:
//
//	{"one": 1, "nest": {"two": 2}, "items": [{"name": "a"}, {"name": "b"}]}
func NewSimpleDocument() *document.Value {
	return document.FromNative(map[string]any{
		"one":  1,
		"nest": map[string]any{"two": 2},
		"items": []any{
			map[string]any{"name": "a"},
			map[string]any{"name": "b"},
		},
	})
}

// NewDetailedDocument creates a document exercising every value kind.
// Includes nested mappings, sequences of mappings, and each scalar kind
// plus null.
func NewDetailedDocument() *document.Value {
	return document.FromNative(map[string]any{
		"title":   "inventory",
		"count":   3,
		"ratio":   0.5,
		"active":  true,
		"comment": nil,
		"tags":    []any{"a", "b", "c"},
		"warehouses": []any{
			map[string]any{"name": "east", "slots": 10},
			map[string]any{"name": "west", "slots": 20},
		},
		"meta": map[string]any{
			"owner": map[string]any{"team": "core"},
		},
	})
}

// MustDecode decodes src in the given format, failing the test on error.
func MustDecode(t *testing.T, format document.SourceFormat, src string) *document.Value {
	t.Helper()

	doc, err := document.Decode([]byte(src), format)
	if err != nil {
		t.Fatalf("Failed to decode %s document: %v", format, err)
	}
	return doc
}

// WriteTempDoc encodes a document in the given format and writes it to
// a temporary file. Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempDoc(t *testing.T, doc *document.Value, format document.SourceFormat) string {
	t.Helper()

	data, err := document.Encode(doc, format)
	if err != nil {
		t.Fatalf("Failed to encode document to %s: %v", format, err)
	}

	name := "test.yaml"
	if format == document.FormatJSON {
		name = "test.json"
	}
	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary document file: %v", err)
	}

	return tmpFile
}

// LogEntry records a single call to a RecordingLogger.
type LogEntry struct {
	Level   string
	Message string
	Attrs   []any
}

// RecordingLogger implements document.Logger and records every call
// for later inspection. Safe for concurrent use.
type RecordingLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// Debug implements document.Logger.
func (l *RecordingLogger) Debug(msg string, attrs ...any) { l.record("debug", msg, attrs) }

// Info implements document.Logger.
func (l *RecordingLogger) Info(msg string, attrs ...any) { l.record("info", msg, attrs) }

// Warn implements document.Logger.
func (l *RecordingLogger) Warn(msg string, attrs ...any) { l.record("warn", msg, attrs) }

// Error implements document.Logger.
func (l *RecordingLogger) Error(msg string, attrs ...any) { l.record("error", msg, attrs) }

// With implements document.Logger. Attributes are not folded into
// recorded entries; the receiver is returned unchanged.
func (l *RecordingLogger) With(_ ...any) document.Logger { return l }

func (l *RecordingLogger) record(level, msg string, attrs []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Message: msg, Attrs: attrs})
}

// Entries returns a copy of all recorded log entries.
func (l *RecordingLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Messages returns the recorded messages at the given level, or all
// messages when level is empty.
func (l *RecordingLogger) Messages(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, e := range l.entries {
		if level == "" || e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}
