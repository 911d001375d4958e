package internal

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestHandler_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		level    slog.Level
		minLevel slog.Level
		want     bool
	}{
		{"debug below info", slog.LevelDebug, slog.LevelInfo, false},
		{"info at info", slog.LevelInfo, slog.LevelInfo, true},
		{"error above info", slog.LevelError, slog.LevelInfo, true},
		{"debug at debug", slog.LevelDebug, slog.LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(Options{Level: tt.minLevel}, &bytes.Buffer{})
			if got := handler.Enabled(context.Background(), tt.level); got != tt.want {
				t.Errorf("Enabled(%v) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestHandler_Handle(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := NewHandler(Options{Level: slog.LevelInfo, DisableTimestamp: true}, buf)

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "test message", 0)
	record.AddAttrs(slog.String("key", "value"), slog.Int("count", 2))

	if err := handler.Handle(context.Background(), record); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	want := "level=INFO msg=\"test message\" count=2 key=\"value\"\n"
	if buf.String() != want {
		t.Errorf("Handle() output = %q, want %q", buf.String(), want)
	}
}

func TestHandler_WithAttrsAndGroup(t *testing.T) {
	buf := &bytes.Buffer{}
	base := NewHandler(Options{Level: slog.LevelInfo, DisableTimestamp: true}, buf)

	h := base.WithAttrs([]slog.Attr{slog.String("service", "billing")}).WithGroup("op")

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "msg", 0)
	record.AddAttrs(slog.String("id", "list_invoices"))
	if err := h.Handle(context.Background(), record); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, `service="billing"`) {
		t.Errorf("expected handler attrs in output: %q", output)
	}
	if !strings.Contains(output, `op.id="list_invoices"`) {
		t.Errorf("expected grouped key in output: %q", output)
	}
}

func TestKVToAttrs(t *testing.T) {
	attrs := KVToAttrs([]any{[]any{"a", "1"}, "b", 2, "dangling"})
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attrs, got %d", len(attrs))
	}
	if attrs[0].Key != "a" || attrs[1].Key != "b" {
		t.Errorf("unexpected keys: %v", attrs)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		v    slog.Value
		want string
	}{
		{"string", slog.StringValue("x"), `"x"`},
		{"int", slog.IntValue(3), "3"},
		{"bool", slog.BoolValue(true), "true"},
		{"duration", slog.DurationValue(1500 * time.Millisecond), "1500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatValue(tt.v); got != tt.want {
				t.Errorf("FormatValue() = %s, want %s", got, tt.want)
			}
		})
	}
}
