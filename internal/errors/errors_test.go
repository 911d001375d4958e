package errors

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeInvalidArgument, "service name is required")
	if err == nil {
		t.Fatal("New should return non-nil error")
	}

	var customErr *E
	if !errors.As(err, &customErr) {
		t.Fatal("Error should be of type *E")
	}

	if customErr.Code != CodeInvalidArgument {
		t.Errorf("Expected code %s, got %s", CodeInvalidArgument, customErr.Code)
	}

	if got, want := err.Error(), "INVALID_ARGUMENT: service name is required"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(CodeInternal, "billing/app.py", fs.ErrPermission)

	if !errors.Is(wrapped, fs.ErrPermission) {
		t.Error("Wrapped error should unwrap to the original error")
	}

	if CodeOf(wrapped) != CodeInternal {
		t.Errorf("Expected code %s, got %s", CodeInternal, CodeOf(wrapped))
	}

	if !strings.Contains(wrapped.Error(), "billing/app.py") {
		t.Errorf("Expected op in message, got %q", wrapped.Error())
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(CodeInternal, "op", nil); err != nil {
		t.Errorf("Wrap(nil) should be nil, got %v", err)
	}
	if err := Wrapf(CodeInternal, "op", nil, "msg"); err != nil {
		t.Errorf("Wrapf(nil) should be nil, got %v", err)
	}
}

func TestWrapf(t *testing.T) {
	original := errors.New("no such file")
	err := Wrapf(CodeNotFound, "openapi.yaml", original, "load document")

	want := "NOT_FOUND: openapi.yaml: load document: no such file"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, ""},
		{"plain", errors.New("x"), ""},
		{"coded", New(CodeNotFound, "x"), CodeNotFound},
		{"nested", Wrap(CodeInternal, "outer", New(CodeInvalidArgument, "inner")), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	err := Newf(CodeInvalidArgument, "bad %s", "input")
	if !IsCode(err, CodeInvalidArgument) {
		t.Error("IsCode should match")
	}
	if IsCode(err, CodeInternal) {
		t.Error("IsCode should not match a different code")
	}
}
