package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

var (
	// ErrAborted is returned when the user interrupts a prompt.
	ErrAborted = errors.New("prompt aborted")
	// ErrInvalidAnswer is returned when an answer does not fit the question.
	ErrInvalidAnswer = errors.New("invalid answer")
	// ErrScriptExhausted is returned when a scripted driver runs out of answers.
	ErrScriptExhausted = errors.New("answer script exhausted")
)

// InputConfig configures a free-text prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// SelectConfig configures a fixed-choice prompt.
type SelectConfig struct {
	Message string
	Options []string
	Default string
	Help    string
}

// Driver abstracts the prompt transport so generation logic can be tested
// without a real terminal.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (string, error)
	Info(ctx context.Context, msg string) error
}

// parseYesNo accepts the usual spellings of a yes/no answer. An empty answer
// yields def.
func parseYesNo(answer string, def bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "":
		return def, nil
	case "y", "yes", "true":
		return true, nil
	case "n", "no", "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q is not yes or no", ErrInvalidAnswer, answer)
}

// matchOption resolves answer to one of options, accepting the option text or
// its 1-based position.
func matchOption(answer string, options []string) (string, error) {
	answer = strings.TrimSpace(answer)
	for _, o := range options {
		if o == answer {
			return o, nil
		}
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], nil
	}
	return "", fmt.Errorf("%w: %q is not one of %s", ErrInvalidAnswer, answer, strings.Join(options, ", "))
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
