// Package ui provides console output and prompts for the apigen CLI.
//
// Overview:
//   - Responsibility: Human-readable notices, JSON notices, interactive input
//   - Key Types: Message, OutputLevel, Prompter
//   - Concurrency Model: Output functions are safe for concurrent use
//   - Error Semantics: Output never fails the caller; prompt errors are returned
//
// Usage:
//
//	ui.Info("Generating %s", service)
//	ui.Skip("Operation ID '%s' already exists in %s. Skipping...", op, path)
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	verbose        bool
	nonInteractive bool
	jsonOutput     bool
	stdout         io.Writer = os.Stdout
	stderr         io.Writer = os.Stderr
	mu             sync.RWMutex
)

// OutputLevel is the severity of a message.
type OutputLevel string

const (
	LevelDebug   OutputLevel = "debug"
	LevelInfo    OutputLevel = "info"
	LevelSkip    OutputLevel = "skip"
	LevelWarning OutputLevel = "warning"
	LevelError   OutputLevel = "error"
	LevelSuccess OutputLevel = "success"
)

// Message is the JSON form of a notice.
type Message struct {
	Level     OutputLevel `json:"level"`
	Text      string      `json:"text"`
	Data      any         `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// SetVerbose enables or disables debug notices.
func SetVerbose(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = enabled
}

// Verbose reports whether debug notices are shown.
func Verbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetNonInteractive disables prompts.
func SetNonInteractive(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	nonInteractive = enabled
}

// NonInteractive reports whether prompts are disabled.
func NonInteractive() bool {
	mu.RLock()
	defer mu.RUnlock()
	return nonInteractive
}

// SetJSONOutput switches notices to one JSON object per message.
func SetJSONOutput(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	jsonOutput = enabled
}

// SetOutput redirects notices. Nil writers leave the current one in place.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

// Stdout returns the writer used for regular notices.
func Stdout() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return stdout
}

func output(level OutputLevel, data any, format string, args ...any) {
	mu.RLock()
	useJSON := jsonOutput
	useVerbose := verbose
	out, errOut := stdout, stderr
	mu.RUnlock()

	if level == LevelDebug && !useVerbose {
		return
	}

	text := fmt.Sprintf(format, args...)

	if useJSON {
		encoder := json.NewEncoder(out)
		if err := encoder.Encode(Message{Level: level, Text: text, Data: data, Timestamp: time.Now()}); err != nil {
			fmt.Fprintf(errOut, "Failed to encode JSON output: %v\n", err)
		}
		return
	}

	writer := out
	if level == LevelError {
		writer = errOut
	}

	var prefix string
	switch level {
	case LevelDebug:
		prefix = "🔍 DEBUG:"
	case LevelInfo:
		prefix = "ℹ️  INFO:"
	case LevelSkip:
		prefix = "⏭️  SKIP:"
	case LevelWarning:
		prefix = "⚠️  WARN:"
	case LevelError:
		prefix = "❌ ERROR:"
	case LevelSuccess:
		prefix = "✅ SUCCESS:"
	}

	fmt.Fprintf(writer, "%s %s\n", prefix, text)
}

// Debug outputs a notice shown only in verbose mode.
func Debug(format string, args ...any) {
	output(LevelDebug, nil, format, args...)
}

// Info outputs an informational notice.
func Info(format string, args ...any) {
	output(LevelInfo, nil, format, args...)
}

// Skip outputs a notice that an entry already exists and nothing was written.
func Skip(format string, args ...any) {
	output(LevelSkip, nil, format, args...)
}

// Warning outputs a warning notice.
func Warning(format string, args ...any) {
	output(LevelWarning, nil, format, args...)
}

// Error outputs an error notice on stderr.
func Error(format string, args ...any) {
	output(LevelError, nil, format, args...)
}

// Success outputs a completion notice.
func Success(format string, args ...any) {
	output(LevelSuccess, nil, format, args...)
}

// Data outputs an informational notice carrying structured data for JSON mode.
// In text mode only the formatted text is printed.
func Data(data any, format string, args ...any) {
	output(LevelInfo, data, format, args...)
}

// Println writes a line without a prefix. JSON mode turns it into an info message.
func Println(format string, args ...any) {
	mu.RLock()
	useJSON := jsonOutput
	out := stdout
	mu.RUnlock()

	if useJSON {
		Info(format, args...)
		return
	}
	fmt.Fprintf(out, format+"\n", args...)
}
