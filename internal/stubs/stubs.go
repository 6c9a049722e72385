package stubs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/groupgen/groupgen/internal/placeholder"
)

//go:embed defaults/*.stub defaults/stubs.yaml
var defaultFS embed.FS

// ManifestFile is the manifest file name inside a stub directory.
const ManifestFile = "stubs.yaml"

// Names of the stubs the generator renders.
const (
	Controller          = "controller"
	ControllerInvoke    = "controller_invoke"
	ClassMethod         = "class_method"
	InterfaceMethod     = "interface_method"
	Model               = "model"
	Repository          = "repository"
	RepositoryInterface = "repository_interface"
	Provider            = "provider"
)

// ErrNotFound is returned when a stub is not declared or its file cannot be read.
var ErrNotFound = errors.New("stub not found")

// Stub is one loaded template with its declared placeholder keys.
type Stub struct {
	Name     string
	File     string
	Template placeholder.Template
	Schema   placeholder.Schema
}

// Fragment returns the template without trailing newlines, for stubs that
// are spliced into another template rather than written as a file.
func (s *Stub) Fragment() placeholder.Template {
	return placeholder.Template(strings.TrimRight(string(s.Template), "\n"))
}

// Set is an opened stub set.
type Set struct {
	dir      string
	manifest *Manifest
}

// Open returns the stub set rooted at dir overlaid on the embedded defaults.
// An empty dir selects the defaults alone. cliVersion is checked against the
// manifest's "requires" constraint.
func Open(dir, cliVersion string) (*Set, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("opening stub directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("stub directory %s is not a directory", dir)
		}
	}

	s := &Set{dir: dir}

	data, err := s.read(ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("reading stub manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}
	if err := m.CheckVersion(cliVersion); err != nil {
		return nil, err
	}
	s.manifest = m
	return s, nil
}

// Dir returns the overlay directory, or "" for the embedded defaults.
func (s *Set) Dir() string {
	return s.dir
}

// Names returns the declared stub names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.manifest.Stubs))
	for name := range s.manifest.Stubs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Source reports where the named stub's file is read from: the overlay
// directory or "embedded".
func (s *Set) Source(name string) string {
	entry, ok := s.manifest.Stubs[name]
	if !ok {
		return ""
	}
	if s.dir != "" {
		if _, err := os.Stat(filepath.Join(s.dir, entry.File)); err == nil {
			return s.dir
		}
	}
	return "embedded"
}

// Load reads the named stub. Unknown names and unreadable files fail with an
// error wrapping ErrNotFound.
func (s *Set) Load(name string) (*Stub, error) {
	entry, ok := s.manifest.Stubs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not declared in %s", ErrNotFound, name, ManifestFile)
	}

	data, err := s.read(entry.File)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (%s): %v", ErrNotFound, name, entry.File, err)
	}

	return &Stub{
		Name:     name,
		File:     entry.File,
		Template: placeholder.Template(data),
		Schema: placeholder.Schema{
			Required: entry.Required,
			Optional: entry.Optional,
		},
	}, nil
}

// read returns the overlay copy of file when present, else the embedded one.
func (s *Set) read(file string) ([]byte, error) {
	if s.dir != "" {
		data, err := os.ReadFile(filepath.Join(s.dir, file))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return fs.ReadFile(defaultFS, "defaults/"+file)
}

// Publish copies the embedded default stubs into dir so a project can edit
// them. Existing files are skipped unless force is set. It returns the names
// of the files written.
func Publish(dir string, force bool) ([]string, error) {
	entries, err := fs.ReadDir(defaultFS, "defaults")
	if err != nil {
		return nil, fmt.Errorf("reading embedded stubs: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating stub directory: %w", err)
	}

	var written []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		outPath := filepath.Join(dir, entry.Name())
		if !force {
			if _, err := os.Stat(outPath); err == nil {
				continue
			}
		}

		data, err := fs.ReadFile(defaultFS, "defaults/"+entry.Name())
		if err != nil {
			return written, fmt.Errorf("reading embedded %s: %w", entry.Name(), err)
		}
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return written, fmt.Errorf("writing %s: %w", outPath, err)
		}
		written = append(written, entry.Name())
	}
	return written, nil
}
