package artifact

import (
	"fmt"
	"strings"

	"github.com/groupgen/groupgen/internal/placeholder"
	"github.com/groupgen/groupgen/internal/stubs"
)

// Kind identifies what an artifact is.
type Kind string

const (
	Controller          Kind = "controller"
	Model               Kind = "model"
	Repository          Kind = "repository"
	RepositoryInterface Kind = "repository-interface"
	Provider            Kind = "provider"
)

// ProviderName is the class name of the shared repository service provider.
const ProviderName = "RepositoryServiceProvider"

// Title returns the human-readable name of the kind, e.g. "Repository Interface".
func (k Kind) Title() string {
	switch k {
	case Controller:
		return "Controller"
	case Model:
		return "Model"
	case Repository:
		return "Repository"
	case RepositoryInterface:
		return "Repository Interface"
	case Provider:
		return "Service Provider"
	}
	return string(k)
}

// NameFor returns the artifact's class or interface name for a group.
func (k Kind) NameFor(group string) string {
	switch k {
	case Controller:
		return group + "Controller"
	case Model:
		return group + "Model"
	case Repository:
		return group + "Repository"
	case RepositoryInterface:
		return group + "RepositoryInterface"
	case Provider:
		return ProviderName
	}
	return group
}

// Stub returns the name of the outer stub the kind is rendered from.
func (k Kind) Stub() string {
	switch k {
	case Controller:
		return stubs.Controller
	case Model:
		return stubs.Model
	case Repository:
		return stubs.Repository
	case RepositoryInterface:
		return stubs.RepositoryInterface
	case Provider:
		return stubs.Provider
	}
	return ""
}

// Artifact is one rendered output file. Path is relative to the project root.
type Artifact struct {
	Kind    Kind
	Name    string
	Path    string
	Content string
}

// Shell is an outer template together with the keys it takes the artifact
// name and body under. An empty BodyKey means the shell has no body slot.
// A nil Schema renders in pass-through mode.
type Shell struct {
	Template placeholder.Template
	Schema   *placeholder.Schema
	NameKey  string
	BodyKey  string
}

// ShellFor describes how artifacts of kind k fill stub. With strict set the
// stub's schema is enforced when assembling.
func ShellFor(k Kind, stub *stubs.Stub, strict bool) (Shell, error) {
	shell := Shell{Template: stub.Template}
	if strict {
		schema := stub.Schema
		shell.Schema = &schema
	}

	switch k {
	case Controller:
		shell.NameKey, shell.BodyKey = "class", "controllerContent"
	case Model:
		shell.NameKey, shell.BodyKey = "class", "fillable"
	case Repository, RepositoryInterface:
		shell.NameKey, shell.BodyKey = "name", "content"
	case Provider:
		shell.NameKey = "class"
	default:
		return Shell{}, fmt.Errorf("unknown artifact kind %q", k)
	}
	return shell, nil
}

// Assemble renders shell with the namespace, the artifact name and the body.
// It fails only when the shell carries a schema the values do not satisfy.
func Assemble(shell Shell, namespace, name, body string) (string, error) {
	values := placeholder.Values{
		"namespace":   namespace,
		shell.NameKey: name,
	}
	if shell.BodyKey != "" {
		values[shell.BodyKey] = body
	}
	return placeholder.Execute(shell.Template, values, shell.Schema)
}

// FillableDeclaration wraps a comma-separated field list into a model's
// mass-assignment declaration. Blank input yields the empty string.
func FillableDeclaration(fields string) string {
	fields = strings.TrimSpace(fields)
	if fields == "" {
		return ""
	}
	return "protected $fillable = [" + fields + "];"
}
