package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"golang.org/x/term"
)

// ErrNonInteractive is returned when input is requested with prompts disabled.
var ErrNonInteractive = errors.New("interactive input disabled (--non-interactive)")

// Prompter reads one line of free-text input after showing label.
type Prompter interface {
	Prompt(label string) (string, error)
}

// NewPrompter returns a terminal prompter when in is a TTY and a plain
// line reader otherwise, so input can be piped.
func NewPrompter(in *os.File, out io.Writer) Prompter {
	if NonInteractive() {
		return disabledPrompter{}
	}
	if in != nil && term.IsTerminal(int(in.Fd())) {
		return &TerminalPrompter{}
	}
	return NewLinePrompter(in, out)
}

// LinePrompter writes the label and reads a line from a reader.
type LinePrompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewLinePrompter creates a LinePrompter.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{r: bufio.NewReader(r), w: w}
}

// Prompt writes label and returns the line read, without the line ending.
// A final line without a newline is accepted; EOF before any input is an error.
func (p *LinePrompter) Prompt(label string) (string, error) {
	if _, err := io.WriteString(p.w, label); err != nil {
		return "", err
	}
	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("read input for %q: %w", strings.TrimSpace(label), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// TerminalPrompter prompts through promptui with the label rendered verbatim.
type TerminalPrompter struct{}

// Prompt runs a promptui prompt for label.
func (TerminalPrompter) Prompt(label string) (string, error) {
	p := promptui.Prompt{
		Label: label,
		Templates: &promptui.PromptTemplates{
			Prompt:  "{{ . }}",
			Valid:   "{{ . }}",
			Invalid: "{{ . }}",
			Success: "{{ . }}",
		},
	}

	result, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}
	return result, nil
}

type disabledPrompter struct{}

func (disabledPrompter) Prompt(string) (string, error) {
	return "", ErrNonInteractive
}
