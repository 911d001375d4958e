// Package log defines the structured logging interface used across apigen.
//
// Overview:
//   - Responsibility: Stable logging contract between the scaffolder and its backends
//   - Key Types: Logger interface with structured key-value logging
//   - Concurrency Model: Implementations must be safe for concurrent use
//   - Error Semantics: Error takes the error as its first parameter
//
// Usage:
//
//	logger.Info("artifact written", log.Str("artifact", "billing/app.py"))
package log

// Logger is a structured logger compatible with slog key-value conventions.
type Logger interface {
	// With returns a Logger that attaches kv to every record.
	With(kv ...any) Logger

	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)

	// Error logs err under the "error" key followed by kv.
	Error(err error, msg string, kv ...any)
}

// Str creates a string key-value pair.
func Str(k, v string) any {
	return []any{k, v}
}

// Int creates an integer key-value pair.
func Int(k string, v int) any {
	return []any{k, v}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nop{}
}

type nop struct{}

func (n nop) With(...any) Logger        { return n }
func (nop) Debug(string, ...any)        {}
func (nop) Info(string, ...any)         {}
func (nop) Warn(string, ...any)         {}
func (nop) Error(error, string, ...any) {}
