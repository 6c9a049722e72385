package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/groupgen/groupgen/internal/branding"
)

const fileType = "yaml"

// Setting keys.
const (
	KeyStubsDir           = "stubs_dir"
	KeyGroupsDir          = "groups_dir"
	KeyRootNamespace      = "root_namespace"
	KeyGroupsNamespace    = "groups_namespace"
	KeyProvidersDir       = "providers_dir"
	KeyProvidersNamespace = "providers_namespace"
	KeyExtension          = "extension"
	KeyPersistProvider    = "persist_provider"
	KeyStrict             = "strict"
)

var defaults = map[string]interface{}{
	KeyStubsDir:           "",
	KeyGroupsDir:          "app/Groups",
	KeyRootNamespace:      "App",
	KeyGroupsNamespace:    "Groups",
	KeyProvidersDir:       "app/Providers",
	KeyProvidersNamespace: "Providers",
	KeyExtension:          "php",
	KeyPersistProvider:    false,
	KeyStrict:             false,
}

// Settings is the resolved configuration of one project.
type Settings struct {
	StubsDir           string `mapstructure:"stubs_dir"`
	GroupsDir          string `mapstructure:"groups_dir"`
	RootNamespace      string `mapstructure:"root_namespace"`
	GroupsNamespace    string `mapstructure:"groups_namespace"`
	ProvidersDir       string `mapstructure:"providers_dir"`
	ProvidersNamespace string `mapstructure:"providers_namespace"`
	Extension          string `mapstructure:"extension"`
	PersistProvider    bool   `mapstructure:"persist_provider"`
	Strict             bool   `mapstructure:"strict"`
}

// GroupsBaseNamespace returns the namespace groups live under, e.g. `App\Groups`.
func (s Settings) GroupsBaseNamespace() string {
	return joinNamespace(s.RootNamespace, s.GroupsNamespace)
}

// ProvidersBaseNamespace returns the providers namespace, e.g. `App\Providers`.
func (s Settings) ProvidersBaseNamespace() string {
	return joinNamespace(s.RootNamespace, s.ProvidersNamespace)
}

func joinNamespace(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.Trim(p, `\`); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, `\`)
}

// Store reads and writes one project's config file.
type Store struct {
	v    *viper.Viper
	path string
}

// FilePath returns the config file path for a project directory.
func FilePath(projectDir string) string {
	return filepath.Join(projectDir, branding.ConfigFile())
}

// Keys returns every known setting key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load reads the project's config file, if any, layered over the defaults and
// under GROUPGEN_* environment variables.
func Load(projectDir string) (*Store, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	path := FilePath(projectDir)
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	return &Store{v: v, path: path}, nil
}

// Path returns the config file path.
func (s *Store) Path() string {
	return s.path
}

// Settings decodes the effective configuration.
func (s *Store) Settings() (Settings, error) {
	var out Settings
	if err := s.v.Unmarshal(&out); err != nil {
		return Settings{}, fmt.Errorf("decoding config: %w", err)
	}
	return out, nil
}

// Get returns a config value by key. Returns empty string if not set.
func (s *Store) Get(key string) string {
	return s.v.GetString(key)
}

// Set validates and writes a config key-value pair and saves the config file.
func (s *Store) Set(key, value string) error {
	def, ok := defaults[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}

	var typed interface{} = value
	if _, isBool := def.(bool); isBool {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config key %q expects true or false, got %q", key, value)
		}
		typed = b
	}

	// Write from a file-only instance so defaults and env overrides stay out
	// of the project file.
	file := viper.New()
	file.SetConfigFile(s.path)
	file.SetConfigType(fileType)
	if _, err := os.Stat(s.path); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", s.path, err)
		}
	}
	file.Set(key, typed)

	if err := file.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	s.v.Set(key, typed)
	return nil
}
