package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

type lineDriver struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewLine returns a Driver that prints plain prompts to w and reads one
// answer per line from r. Choice prompts are shown as numbered menus.
func NewLine(r io.Reader, w io.Writer) Driver {
	return &lineDriver{reader: bufio.NewReader(r), w: w}
}

func (d *lineDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if cfg.Default != "" {
		fmt.Fprintf(d.w, "\n%s [%s]: ", cfg.Message, cfg.Default)
	} else {
		fmt.Fprintf(d.w, "\n%s: ", cfg.Message)
	}

	answer, err := d.readLine()
	if err != nil {
		return "", fmt.Errorf("reading answer to %q: %w", cfg.Message, err)
	}
	if answer == "" {
		answer = cfg.Default
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(answer); err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidAnswer, err)
		}
	}
	return answer, nil
}

func (d *lineDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	hint := "y/N"
	if cfg.Default {
		hint = "Y/n"
	}
	fmt.Fprintf(d.w, "\n%s [%s]: ", cfg.Message, hint)

	answer, err := d.readLine()
	if err != nil {
		return false, fmt.Errorf("reading answer to %q: %w", cfg.Message, err)
	}
	return parseYesNo(answer, cfg.Default)
}

// Select presents a numbered list and returns the chosen option. The answer
// may be the number or the option text.
func (d *lineDriver) Select(ctx context.Context, cfg SelectConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprintf(d.w, "\n%s\n", cfg.Message)
	for i, item := range cfg.Options {
		fmt.Fprintf(d.w, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintf(d.w, "Enter number [1-%d]: ", len(cfg.Options))

	answer, err := d.readLine()
	if err != nil {
		return "", fmt.Errorf("reading selection: %w", err)
	}
	if answer == "" && cfg.Default != "" {
		return cfg.Default, nil
	}
	return matchOption(answer, cfg.Options)
}

func (d *lineDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.w, msg)
	return err
}

// readLine returns the next line without its terminator. A final line without
// a trailing newline is still accepted.
func (d *lineDriver) readLine() (string, error) {
	line, err := d.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
