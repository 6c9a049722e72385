package prompt

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"
)

// Script is the on-disk form of a recorded answer stream.
//
//	name: order
//	answers: [no, yes, "'status'", yes, custom, findByStatus, status, none]
type Script struct {
	Name    string   `yaml:"name,omitempty"`
	Answers []string `yaml:"answers"`
}

// LoadScript reads an answer script from a YAML file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answer script: %w", err)
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing answer script %s: %w", path, err)
	}
	return &s, nil
}

type scriptDriver struct {
	answers []string
	next    int
	w       io.Writer
}

// NewScript returns a Driver that answers each prompt with the next entry of
// answers, in order. Informational messages go to w; a nil w discards them.
func NewScript(answers []string, w io.Writer) Driver {
	if w == nil {
		w = io.Discard
	}
	return &scriptDriver{answers: answers, w: w}
}

func (d *scriptDriver) pop(message string) (string, error) {
	if d.next >= len(d.answers) {
		return "", fmt.Errorf("%w: no answer left for %q", ErrScriptExhausted, message)
	}
	a := d.answers[d.next]
	d.next++
	return a, nil
}

func (d *scriptDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	answer, err := d.pop(cfg.Message)
	if err != nil {
		return "", err
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

func (d *scriptDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	answer, err := d.pop(cfg.Message)
	if err != nil {
		return false, err
	}
	return parseYesNo(answer, cfg.Default)
}

func (d *scriptDriver) Select(ctx context.Context, cfg SelectConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	answer, err := d.pop(cfg.Message)
	if err != nil {
		return "", err
	}
	if answer == "" && cfg.Default != "" {
		return cfg.Default, nil
	}
	return matchOption(answer, cfg.Options)
}

func (d *scriptDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.w, msg)
	return err
}
