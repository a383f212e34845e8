package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// formPrompter asks through an interactive huh input with name suggestions.
type formPrompter struct {
	out         io.Writer
	suggestions []string
}

// newFormPrompter returns a prompter suggesting names while typing.
func newFormPrompter(out io.Writer, names []string) *formPrompter {
	return &formPrompter{out: out, suggestions: names}
}

// Ask runs a one-field form. Ctrl+C ends input like EOF on a pipe.
func (p *formPrompter) Ask(ctx context.Context, message string) (string, error) {
	var answer string
	input := huh.NewInput().
		Title(strings.TrimSuffix(strings.TrimSpace(message), ":")).
		Suggestions(p.suggestions).
		Value(&answer)

	err := huh.NewForm(huh.NewGroup(input)).RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return "", io.EOF
	}
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}

	return answer, nil
}

// Warn prints message below the form.
func (p *formPrompter) Warn(message string) {
	fmt.Fprintln(p.out, message)
}
