package testingx

import (
	"fmt"
	"sync"
	"testing"

	"go.eggybyte.com/egg/apigen/internal/errors"
)

func TestMockLoggerRecords(t *testing.T) {
	logger := NewMockLogger(t)

	logger.Debug("debug message", "key", "value")
	logger.Error(fmt.Errorf("boom"), "failed")

	entries := logger.Entries()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Level != "DEBUG" || entries[1].Error == nil {
		t.Errorf("Unexpected entries: %+v", entries)
	}
	logger.AssertLogged("ERROR", "failed")
}

func TestMockLoggerWithSharesRecord(t *testing.T) {
	logger := NewMockLogger(t)
	child := logger.With("run_id", "r-1").With("service", "billing")

	child.Info("done", "service", "orders")

	entry := logger.AssertLogged("INFO", "done")
	if v, ok := entry.Field("run_id"); !ok || v != "r-1" {
		t.Errorf("Expected run_id r-1, got %v", v)
	}
	if v, _ := entry.Field("service"); v != "orders" {
		t.Errorf("Expected last service value to win, got %v", v)
	}
	if _, ok := entry.Field("missing"); ok {
		t.Error("Expected missing field to be absent")
	}
}

func TestMockLoggerClear(t *testing.T) {
	logger := NewMockLogger(t)
	logger.Warn("warn")
	logger.Clear()

	if len(logger.Entries()) != 0 {
		t.Error("Expected no entries after Clear")
	}
}

func TestMockLoggerConcurrency(t *testing.T) {
	logger := NewMockLogger(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			logger.With("i", i).Info("message")
		}(i)
	}
	wg.Wait()

	if len(logger.Entries()) != 10 {
		t.Errorf("Expected 10 entries, got %d", len(logger.Entries()))
	}
}

func TestAssertError(t *testing.T) {
	AssertError(t, errors.New(errors.CodeNotFound, "missing"), errors.CodeNotFound)
	AssertError(t, errors.Wrap(errors.CodeInternal, "write", fmt.Errorf("disk full")), errors.CodeInternal)
}
