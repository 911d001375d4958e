// Package testingx provides test helpers shared by the apigen packages.
//
// Overview:
//   - Responsibility: Recording logger and coded-error assertions
//   - Key Types: MockLogger, LogEntry
//   - Concurrency Model: MockLogger is safe for concurrent use
//   - Error Semantics: Test failures via testing.T
//
// Usage:
//
//	logger := testingx.NewMockLogger(t)
//	gen := scaffold.NewGenerator(fs, scaffold.WithLogger(logger))
//	logger.AssertLogged("DEBUG", "route ensured")
package testingx

import (
	"fmt"
	"sync"
	"testing"

	"go.eggybyte.com/egg/apigen/internal/errors"
	"go.eggybyte.com/egg/apigen/internal/log"
)

// LogEntry is one recorded log call. Fields holds the logger's bound
// fields followed by the call's own key/value pairs.
type LogEntry struct {
	Level   string
	Message string
	Fields  []any
	Error   error
}

// Field returns the value recorded for key and whether it was present.
// The last occurrence wins.
func (e LogEntry) Field(key string) (any, bool) {
	var (
		value any
		found bool
	)
	for i := 0; i+1 < len(e.Fields); i += 2 {
		if k, ok := e.Fields[i].(string); ok && k == key {
			value, found = e.Fields[i+1], true
		}
	}
	return value, found
}

type store struct {
	mu      sync.Mutex
	entries []LogEntry
}

// MockLogger records log calls. Loggers derived with With share the
// same record.
type MockLogger struct {
	t      *testing.T
	store  *store
	fields []any
}

// NewMockLogger creates a recording logger.
func NewMockLogger(t *testing.T) *MockLogger {
	return &MockLogger{t: t, store: &store{}}
}

// With returns a logger that prefixes kv to every entry.
func (m *MockLogger) With(kv ...any) log.Logger {
	fields := append(append([]any{}, m.fields...), kv...)
	return &MockLogger{t: m.t, store: m.store, fields: fields}
}

// Debug records a debug entry.
func (m *MockLogger) Debug(msg string, kv ...any) {
	m.log("DEBUG", msg, nil, kv)
}

// Info records an info entry.
func (m *MockLogger) Info(msg string, kv ...any) {
	m.log("INFO", msg, nil, kv)
}

// Warn records a warning entry.
func (m *MockLogger) Warn(msg string, kv ...any) {
	m.log("WARN", msg, nil, kv)
}

// Error records an error entry.
func (m *MockLogger) Error(err error, msg string, kv ...any) {
	m.log("ERROR", msg, err, kv)
}

func (m *MockLogger) log(level, msg string, err error, kv []any) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.store.entries = append(m.store.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  append(append([]any{}, m.fields...), kv...),
		Error:   err,
	})
}

// Entries returns a copy of all recorded entries.
func (m *MockLogger) Entries() []LogEntry {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	entries := make([]LogEntry, len(m.store.entries))
	copy(entries, m.store.entries)
	return entries
}

// Find returns the first entry with the given level and message.
func (m *MockLogger) Find(level, msg string) (LogEntry, bool) {
	for _, entry := range m.Entries() {
		if entry.Level == level && entry.Message == msg {
			return entry, true
		}
	}
	return LogEntry{}, false
}

// AssertLogged fails the test unless an entry with level and msg was recorded.
func (m *MockLogger) AssertLogged(level, msg string) LogEntry {
	m.t.Helper()
	entry, ok := m.Find(level, msg)
	if !ok {
		m.t.Errorf("Expected log message not found: level=%s msg=%q", level, msg)
	}
	return entry
}

// Clear drops all recorded entries.
func (m *MockLogger) Clear() {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.store.entries = nil
}

// String renders the entries one per line, for failure messages.
func (m *MockLogger) String() string {
	var out string
	for _, entry := range m.Entries() {
		out += fmt.Sprintf("%s %s %v\n", entry.Level, entry.Message, entry.Fields)
	}
	return out
}

// AssertError fails the test unless err carries expectedCode.
func AssertError(t *testing.T, err error, expectedCode errors.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error with code %s, got nil", expectedCode)
	}
	if code := errors.CodeOf(err); code != expectedCode {
		t.Errorf("Expected error code %s, got %s (%v)", expectedCode, code, err)
	}
}
