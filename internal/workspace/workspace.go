package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/groupgen/groupgen/internal/artifact"
)

// ErrExists is returned when an artifact's target file already exists.
var ErrExists = errors.New("file already exists")

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Workspace is a project root that artifacts are written under.
type Workspace struct {
	root  string
	force bool
	log   zerolog.Logger
}

// Result lists the files written by Apply, relative to the root, in order.
type Result struct {
	Root  string
	Files []string
}

// New returns a Workspace rooted at root. With force set, existing files are
// overwritten.
func New(root string, force bool, log zerolog.Logger) *Workspace {
	return &Workspace{root: root, force: force, log: log}
}

// Root returns the project root.
func (w *Workspace) Root() string {
	return w.root
}

// Exists reports whether rel exists under the root.
func (w *Workspace) Exists(rel string) bool {
	_, err := os.Stat(filepath.Join(w.root, rel))
	return err == nil
}

// Apply writes every artifact. It stops at the first failure and returns the
// files written so far alongside the error.
func (w *Workspace) Apply(artifacts []artifact.Artifact) (*Result, error) {
	result := &Result{Root: w.root}

	for _, a := range artifacts {
		if err := w.write(a); err != nil {
			return result, err
		}
		result.Files = append(result.Files, a.Path)
	}
	return result, nil
}

func (w *Workspace) write(a artifact.Artifact) error {
	target := filepath.Join(w.root, a.Path)

	if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", a.Name, err)
	}

	if !w.force {
		if _, err := os.Stat(target); err == nil {
			return fmt.Errorf("writing %s: %s: %w (use --force to overwrite)", a.Name, a.Path, ErrExists)
		}
	}

	if err := os.WriteFile(target, []byte(a.Content), filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}

	w.log.Debug().Str("kind", string(a.Kind)).Str("path", a.Path).Int("bytes", len(a.Content)).Msg("wrote artifact")
	return nil
}
