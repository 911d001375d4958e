package ui

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() {
		SetOutput(os.Stdout, os.Stderr)
		SetJSONOutput(false)
		SetVerbose(false)
		SetNonInteractive(false)
	})
	return &out, &errOut
}

func TestNoticesTextMode(t *testing.T) {
	out, errOut := captureOutput(t)

	Info("generating %s", "billing")
	Skip("already present")
	Success("done")
	Error("boom")
	Debug("hidden")

	assert.Contains(t, out.String(), "INFO: generating billing")
	assert.Contains(t, out.String(), "SKIP: already present")
	assert.Contains(t, out.String(), "SUCCESS: done")
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, errOut.String(), "ERROR: boom")
}

func TestDebugVerbose(t *testing.T) {
	out, _ := captureOutput(t)
	SetVerbose(true)

	Debug("shown %d", 1)

	assert.Contains(t, out.String(), "DEBUG: shown 1")
}

func TestNoticesJSONMode(t *testing.T) {
	out, _ := captureOutput(t)
	SetJSONOutput(true)

	Data(map[string]string{"service": "billing"}, "listed")
	Println("plain %s", "line")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var msg Message
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &msg))
	assert.Equal(t, LevelInfo, msg.Level)
	assert.Equal(t, "listed", msg.Text)
	assert.NotNil(t, msg.Data)

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &msg))
	assert.Equal(t, "plain line", msg.Text)
}

func TestPrintlnTextMode(t *testing.T) {
	out, _ := captureOutput(t)

	Println("Welcome %s", "there")

	assert.Equal(t, "Welcome there\n", out.String())
}

func TestLinePrompter(t *testing.T) {
	in := strings.NewReader("billing\r\nget\nlist_invoices")
	var out bytes.Buffer
	p := NewLinePrompter(in, &out)

	first, err := p.Prompt("Enter the service name (e.g., service1): ")
	require.NoError(t, err)
	assert.Equal(t, "billing", first)

	second, err := p.Prompt("method: ")
	require.NoError(t, err)
	assert.Equal(t, "get", second)

	third, err := p.Prompt("op: ")
	require.NoError(t, err)
	assert.Equal(t, "list_invoices", third)

	_, err = p.Prompt("more: ")
	require.Error(t, err)

	assert.True(t, strings.HasPrefix(out.String(), "Enter the service name (e.g., service1): method: op: "))
}

func TestNewPrompterNonInteractive(t *testing.T) {
	captureOutput(t)
	SetNonInteractive(true)

	_, err := NewPrompter(nil, &bytes.Buffer{}).Prompt("x: ")
	assert.ErrorIs(t, err, ErrNonInteractive)
}
