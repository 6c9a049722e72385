package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	var quiet bytes.Buffer
	l := New(&quiet, false)
	l.Debug().Msg("hidden")
	l.Warn().Msg("shown")
	if strings.Contains(quiet.String(), "hidden") {
		t.Error("debug message written without verbose")
	}
	if !strings.Contains(quiet.String(), "shown") {
		t.Error("warning missing")
	}

	var loud bytes.Buffer
	v := New(&loud, true)
	v.Debug().Str("state", "NameResolved").Msg("transition")
	if !strings.Contains(loud.String(), "transition") || !strings.Contains(loud.String(), "NameResolved") {
		t.Errorf("debug output missing fields: %q", loud.String())
	}
}
