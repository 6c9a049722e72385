//go:build integration

package integration_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/groupgen/groupgen/internal/branding"
	"github.com/groupgen/groupgen/internal/config"
	"github.com/groupgen/groupgen/internal/generator"
	"github.com/groupgen/groupgen/internal/prompt"
	"github.com/groupgen/groupgen/internal/stubs"
	"github.com/groupgen/groupgen/internal/workspace"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	ProjectDir string // project root groups are generated into
	StubsDir   string // published stub overrides, empty for the defaults
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv(branding.EnvVar(config.KeyStrict), "")
	t.Setenv(branding.EnvVar(config.KeyPersistProvider), "")
	return &testEnv{ProjectDir: t.TempDir()}
}

// runGroup generates a group the way `groupgen make` does, answering every
// prompt from answers, and writes the plan into the project.
func runGroup(t *testing.T, env *testEnv, name string, answers []string, force bool) (*generator.Plan, *workspace.Result, error) {
	t.Helper()

	store, err := config.Load(env.ProjectDir)
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	settings, err := store.Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}

	set, err := stubs.Open(env.StubsDir, "dev")
	if err != nil {
		t.Fatalf("stubs.Open: %v", err)
	}

	ws := workspace.New(env.ProjectDir, force, zerolog.Nop())
	gen := generator.New(prompt.NewScript(answers, nil), set, generator.LayoutFrom(settings), ws,
		generator.Options{Strict: settings.Strict, PersistProvider: settings.PersistProvider}, zerolog.Nop())

	plan, err := gen.Run(context.Background(), name)
	if err != nil {
		return nil, nil, err
	}
	result, err := ws.Apply(plan.Artifacts)
	return plan, result, err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
