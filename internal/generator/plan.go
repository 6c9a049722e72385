package generator

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/groupgen/groupgen/internal/artifact"
	"github.com/groupgen/groupgen/internal/config"
)

var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Layout decides where a group's artifacts go and which namespaces they get.
type Layout struct {
	GroupsDir          string
	GroupsNamespace    string
	ProvidersDir       string
	ProvidersNamespace string
	Extension          string
}

// LayoutFrom derives a Layout from project settings.
func LayoutFrom(s config.Settings) Layout {
	return Layout{
		GroupsDir:          s.GroupsDir,
		GroupsNamespace:    s.GroupsBaseNamespace(),
		ProvidersDir:       s.ProvidersDir,
		ProvidersNamespace: s.ProvidersBaseNamespace(),
		Extension:          strings.TrimPrefix(s.Extension, "."),
	}
}

// GroupDir returns the directory a group's artifacts are written to.
func (l Layout) GroupDir(group string) string {
	return filepath.Join(l.GroupsDir, group)
}

// GroupNamespace returns the namespace of a group's artifacts.
func (l Layout) GroupNamespace(group string) string {
	if l.GroupsNamespace == "" {
		return group
	}
	return l.GroupsNamespace + `\` + group
}

// FileName returns the file name for a class or interface name.
func (l Layout) FileName(name string) string {
	return name + "." + l.Extension
}

// ProviderPath returns the path of the shared repository service provider.
func (l Layout) ProviderPath() string {
	return filepath.Join(l.ProvidersDir, l.FileName(artifact.ProviderName))
}

// Plan is the outcome of one run: the artifacts to write and the manual
// steps to print afterwards.
type Plan struct {
	Group     string
	Dir       string
	Namespace string
	Artifacts []artifact.Artifact

	// Provider holds the rendered service provider scaffold when the project
	// does not have one yet. It is only listed in Artifacts when persisting
	// providers is enabled.
	Provider *artifact.Artifact

	Instructions []string
}

// Names returns the artifact names in plan order.
func (p *Plan) Names() []string {
	names := make([]string, len(p.Artifacts))
	for i, a := range p.Artifacts {
		names[i] = a.Name
	}
	return names
}

// Find returns the artifact of kind k, if planned.
func (p *Plan) Find(k artifact.Kind) (artifact.Artifact, bool) {
	for _, a := range p.Artifacts {
		if a.Kind == k {
			return a, true
		}
	}
	return artifact.Artifact{}, false
}

// ValidateName checks that name can be used as a group name.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid group name %q: must match pattern [A-Za-z][A-Za-z0-9_]*", name)
	}
	return nil
}

// NormalizeName validates a group name and upper-cases its first letter.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if err := ValidateName(name); err != nil {
		return "", err
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:], nil
}
