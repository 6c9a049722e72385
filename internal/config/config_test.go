package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/groupgen/groupgen/internal/branding"
)

func TestLoadDefaults(t *testing.T) {
	store, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	s, err := store.Settings()
	if err != nil {
		t.Fatalf("Settings() error: %v", err)
	}

	if s.GroupsDir != "app/Groups" {
		t.Errorf("GroupsDir = %q, want app/Groups", s.GroupsDir)
	}
	if s.Extension != "php" {
		t.Errorf("Extension = %q, want php", s.Extension)
	}
	if s.PersistProvider || s.Strict {
		t.Errorf("PersistProvider/Strict should default to false: %+v", s)
	}
	if got := s.GroupsBaseNamespace(); got != `App\Groups` {
		t.Errorf("GroupsBaseNamespace() = %q", got)
	}
	if got := s.ProvidersBaseNamespace(); got != `App\Providers` {
		t.Errorf("ProvidersBaseNamespace() = %q", got)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	content := "groups_dir: src/Domain\nroot_namespace: Acme\ngroups_namespace: Domain\nstrict: true\n"
	if err := os.WriteFile(FilePath(dir), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	s, err := store.Settings()
	if err != nil {
		t.Fatalf("Settings() error: %v", err)
	}
	if s.GroupsDir != "src/Domain" || !s.Strict {
		t.Errorf("file values not applied: %+v", s)
	}
	if got := s.GroupsBaseNamespace(); got != `Acme\Domain` {
		t.Errorf("GroupsBaseNamespace() = %q", got)
	}
	if s.ProvidersDir != "app/Providers" {
		t.Errorf("ProvidersDir = %q, want default", s.ProvidersDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GROUPGEN_EXTENSION", "inc")
	t.Setenv("GROUPGEN_PERSIST_PROVIDER", "true")

	store, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	s, err := store.Settings()
	if err != nil {
		t.Fatalf("Settings() error: %v", err)
	}
	if s.Extension != "inc" {
		t.Errorf("Extension = %q, want inc", s.Extension)
	}
	if !s.PersistProvider {
		t.Error("PersistProvider should be true from env")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(FilePath(dir), []byte("groups_dir: [unterminated\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestSetPersists(t *testing.T) {
	dir := t.TempDir()
	store, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if err := store.Set(KeyGroupsDir, "modules"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := store.Set(KeyStrict, "true"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	reloaded, err := Load(dir)
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if got := reloaded.Get(KeyGroupsDir); got != "modules" {
		t.Errorf("Get(groups_dir) = %q, want modules", got)
	}
	s, err := reloaded.Settings()
	if err != nil {
		t.Fatalf("Settings() error: %v", err)
	}
	if !s.Strict {
		t.Error("Strict should persist as true")
	}
	if _, err := os.Stat(filepath.Join(dir, ".groupgen.yaml")); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestSetRejectsBadInput(t *testing.T) {
	store, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	err = store.Set("colour", "blue")
	if err == nil || !strings.Contains(err.Error(), "unknown config key") {
		t.Errorf("Set(unknown) error = %v", err)
	}
	if err := store.Set(KeyStrict, "sometimes"); err == nil {
		t.Error("Set(strict, sometimes) should fail")
	}
}

func TestSetWritesOnlyFileKeys(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(FilePath(dir), []byte("root_namespace: Acme\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(branding.EnvVar(KeyStrict), "true")
	t.Setenv(branding.EnvVar(KeyGroupsDir), "/tmp/elsewhere")

	store, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if err := store.Set(KeyExtension, "inc"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := store.Set(KeyPersistProvider, "true"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if got := store.Get(KeyExtension); got != "inc" {
		t.Errorf("Get(extension) after Set = %q, want inc", got)
	}

	data, err := os.ReadFile(FilePath(dir))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	content := string(data)
	for _, leaked := range []string{KeyGroupsDir, KeyStrict, KeyProvidersDir, KeyStubsDir} {
		if strings.Contains(content, leaked+":") {
			t.Errorf("config file contains %s:\n%s", leaked, content)
		}
	}
	for _, want := range []string{"root_namespace: Acme", "extension: inc", "persist_provider: true"} {
		if !strings.Contains(content, want) {
			t.Errorf("config file missing %q:\n%s", want, content)
		}
	}

	os.Unsetenv(branding.EnvVar(KeyStrict))
	os.Unsetenv(branding.EnvVar(KeyGroupsDir))

	reloaded, err := Load(dir)
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	s, err := reloaded.Settings()
	if err != nil {
		t.Fatalf("Settings() error: %v", err)
	}
	if s.Strict {
		t.Error("Strict = true after the env override was cleared")
	}
	if s.GroupsDir != "app/Groups" {
		t.Errorf("GroupsDir = %q, want app/Groups", s.GroupsDir)
	}
	if s.Extension != "inc" || !s.PersistProvider || s.RootNamespace != "Acme" {
		t.Errorf("file values not kept: %+v", s)
	}
}
