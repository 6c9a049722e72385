package prompt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseYesNo(t *testing.T) {
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"y", false, true},
		{"YES", false, true},
		{"true", false, true},
		{"n", true, false},
		{"No", true, false},
		{"", true, true},
		{"", false, false},
	}
	for _, tt := range tests {
		got, err := parseYesNo(tt.in, tt.def)
		if err != nil {
			t.Errorf("parseYesNo(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseYesNo(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}

	if _, err := parseYesNo("maybe", false); !errors.Is(err, ErrInvalidAnswer) {
		t.Errorf("parseYesNo(maybe) error = %v, want ErrInvalidAnswer", err)
	}
}

func TestMatchOption(t *testing.T) {
	options := []string{"invoke", "custom", "none"}

	for _, tc := range []struct{ in, want string }{
		{"custom", "custom"},
		{"1", "invoke"},
		{" 3 ", "none"},
	} {
		got, err := matchOption(tc.in, options)
		if err != nil {
			t.Fatalf("matchOption(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("matchOption(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"0", "4", "Custom", ""} {
		if _, err := matchOption(bad, options); !errors.Is(err, ErrInvalidAnswer) {
			t.Errorf("matchOption(%q) error = %v, want ErrInvalidAnswer", bad, err)
		}
	}
}

func TestLineDriver(t *testing.T) {
	ctx := context.Background()
	input := "billing\ny\n2\n\n"
	var out bytes.Buffer
	d := NewLine(strings.NewReader(input), &out)

	name, err := d.Input(ctx, InputConfig{Message: "Add the group name"})
	if err != nil {
		t.Fatalf("Input() error: %v", err)
	}
	if name != "billing" {
		t.Errorf("Input() = %q, want %q", name, "billing")
	}

	ok, err := d.Confirm(ctx, ConfirmConfig{Message: "Do you want a Controller?"})
	if err != nil {
		t.Fatalf("Confirm() error: %v", err)
	}
	if !ok {
		t.Error("Confirm() = false, want true")
	}

	choice, err := d.Select(ctx, SelectConfig{Message: "Controller content", Options: []string{"invoke", "custom", "none"}})
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	if choice != "custom" {
		t.Errorf("Select() = %q, want %q", choice, "custom")
	}

	fields, err := d.Input(ctx, InputConfig{Message: "Fillable fields"})
	if err != nil {
		t.Fatalf("Input() error: %v", err)
	}
	if fields != "" {
		t.Errorf("Input() = %q, want empty", fields)
	}

	printed := out.String()
	for _, want := range []string{"Add the group name: ", "[y/N]", "  1) invoke", "  2) custom", "Enter number [1-3]"} {
		if !strings.Contains(printed, want) {
			t.Errorf("output missing %q:\n%s", want, printed)
		}
	}
}

func TestLineDriverFinalLineWithoutNewline(t *testing.T) {
	d := NewLine(strings.NewReader("order"), &bytes.Buffer{})
	got, err := d.Input(context.Background(), InputConfig{Message: "name"})
	if err != nil {
		t.Fatalf("Input() error: %v", err)
	}
	if got != "order" {
		t.Errorf("Input() = %q, want %q", got, "order")
	}

	if _, err := d.Input(context.Background(), InputConfig{Message: "name"}); err == nil {
		t.Fatal("expected error at end of input")
	}
}

func TestLineDriverValidator(t *testing.T) {
	d := NewLine(strings.NewReader("9lives\n"), &bytes.Buffer{})
	_, err := d.Input(context.Background(), InputConfig{
		Message: "name",
		Validator: func(s string) error {
			if s[0] >= '0' && s[0] <= '9' {
				return fmt.Errorf("must not start with a digit")
			}
			return nil
		},
	})
	if !errors.Is(err, ErrInvalidAnswer) {
		t.Fatalf("Input() error = %v, want ErrInvalidAnswer", err)
	}
}

func TestScriptDriver(t *testing.T) {
	ctx := context.Background()
	d := NewScript([]string{"yes", "invoke", "'a','b'"}, nil)

	ok, err := d.Confirm(ctx, ConfirmConfig{Message: "q"})
	if err != nil || !ok {
		t.Fatalf("Confirm() = %v, %v", ok, err)
	}
	choice, err := d.Select(ctx, SelectConfig{Message: "kind", Options: []string{"invoke", "none"}})
	if err != nil || choice != "invoke" {
		t.Fatalf("Select() = %q, %v", choice, err)
	}
	text, err := d.Input(ctx, InputConfig{Message: "fields"})
	if err != nil || text != "'a','b'" {
		t.Fatalf("Input() = %q, %v", text, err)
	}

	if _, err := d.Input(ctx, InputConfig{Message: "one more"}); !errors.Is(err, ErrScriptExhausted) {
		t.Fatalf("Input() error = %v, want ErrScriptExhausted", err)
	}
}

func TestScriptDriverRejectsUnknownChoice(t *testing.T) {
	d := NewScript([]string{"sometimes"}, nil)
	_, err := d.Select(context.Background(), SelectConfig{Message: "kind", Options: []string{"custom", "none"}})
	if !errors.Is(err, ErrInvalidAnswer) {
		t.Fatalf("Select() error = %v, want ErrInvalidAnswer", err)
	}
}

func TestScriptDriverHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := NewScript([]string{"yes"}, nil)
	if _, err := d.Confirm(ctx, ConfirmConfig{Message: "q"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Confirm() error = %v, want context.Canceled", err)
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	content := `name: order
answers:
  - no
  - yes
  - "'status'"
  - true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript() error: %v", err)
	}
	if s.Name != "order" {
		t.Errorf("Name = %q, want %q", s.Name, "order")
	}
	want := []string{"no", "yes", "'status'", "true"}
	if strings.Join(s.Answers, "|") != strings.Join(want, "|") {
		t.Errorf("Answers = %v, want %v", s.Answers, want)
	}
}

func TestLoadScriptMissingFile(t *testing.T) {
	if _, err := LoadScript(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing script")
	}
}

func TestInfoWritesLine(t *testing.T) {
	var lineOut, scriptOut bytes.Buffer
	drivers := map[string]Driver{
		"line":   NewLine(strings.NewReader(""), &lineOut),
		"script": NewScript(nil, &scriptOut),
	}
	outputs := map[string]*bytes.Buffer{"line": &lineOut, "script": &scriptOut}

	for name, d := range drivers {
		t.Run(name, func(t *testing.T) {
			if err := d.Info(context.Background(), "  1. Register the provider"); err != nil {
				t.Fatalf("Info() error: %v", err)
			}
			if got := outputs[name].String(); got != "  1. Register the provider\n" {
				t.Errorf("Info() wrote %q", got)
			}

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			if err := d.Info(ctx, "late"); !errors.Is(err, context.Canceled) {
				t.Errorf("Info(cancelled) error = %v, want context.Canceled", err)
			}
		})
	}
}
