package generator

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/groupgen/groupgen/internal/accumulate"
	"github.com/groupgen/groupgen/internal/artifact"
	"github.com/groupgen/groupgen/internal/placeholder"
	"github.com/groupgen/groupgen/internal/prompt"
	"github.com/groupgen/groupgen/internal/stubs"
)

// Choices offered by the accumulation loops.
const (
	ChoiceInvoke = "invoke"
	ChoiceCustom = "custom"
	ChoiceNone   = "none"
)

// controllerArguments is the fixed parameter list of custom controller methods.
const controllerArguments = "Request $request"

// FileChecker reports whether a project-relative path exists.
type FileChecker interface {
	Exists(rel string) bool
}

// Options tunes a run.
type Options struct {
	// Strict enforces each stub's placeholder schema instead of passing
	// unknown slots through.
	Strict bool
	// PersistProvider writes the service provider scaffold when the project
	// has none, instead of only printing registration instructions.
	PersistProvider bool
}

// Generator runs the decision flow for one group.
type Generator struct {
	driver prompt.Driver
	stubs  *stubs.Set
	layout Layout
	files  FileChecker
	opts   Options
	log    zerolog.Logger
	state  State
}

// New returns a Generator asking questions through driver and rendering stubs
// from set.
func New(driver prompt.Driver, set *stubs.Set, layout Layout, files FileChecker, opts Options, log zerolog.Logger) *Generator {
	return &Generator{
		driver: driver,
		stubs:  set,
		layout: layout,
		files:  files,
		opts:   opts,
		log:    log,
		state:  Start,
	}
}

// State returns the step the generator last reached.
func (g *Generator) State() State {
	return g.state
}

// Run walks every decision and returns the resulting plan. An empty name is
// asked for interactively.
func (g *Generator) Run(ctx context.Context, name string) (*Plan, error) {
	group, err := g.resolveName(ctx, name)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Group:     group,
		Dir:       g.layout.GroupDir(group),
		Namespace: g.layout.GroupNamespace(group),
	}
	g.enter(NameResolved, zerolog.Dict().Str("group", group).Str("dir", plan.Dir))

	g.enter(ControllerDecision, nil)
	if err := g.decideController(ctx, plan); err != nil {
		return nil, err
	}

	g.enter(ModelDecision, nil)
	modelCreated, err := g.decideModel(ctx, plan)
	if err != nil {
		return nil, err
	}

	if modelCreated {
		g.enter(RepositoryDecision, nil)
		if err := g.decideRepository(ctx, plan); err != nil {
			return nil, err
		}
	}

	g.enter(Done, zerolog.Dict().Strs("artifacts", plan.Names()))
	return plan, nil
}

func (g *Generator) enter(s State, fields *zerolog.Event) {
	ev := g.log.Debug().Str("from", g.state.String()).Str("to", s.String())
	if fields != nil {
		ev = ev.Dict("data", fields)
	}
	ev.Msg("state transition")
	g.state = s
}

func (g *Generator) resolveName(ctx context.Context, name string) (string, error) {
	if name == "" {
		var err error
		name, err = g.driver.Input(ctx, prompt.InputConfig{
			Message: "Add the group name",
			Validator: func(s string) error {
				return ValidateName(strings.TrimSpace(s))
			},
		})
		if err != nil {
			return "", fmt.Errorf("asking group name: %w", err)
		}
	}
	return NormalizeName(name)
}

// confirmArtifact asks whether to produce an artifact of kind k.
func (g *Generator) confirmArtifact(ctx context.Context, k artifact.Kind) (bool, error) {
	ok, err := g.driver.Confirm(ctx, prompt.ConfirmConfig{
		Message: fmt.Sprintf("Do you want a %s?", k.Title()),
	})
	if err != nil {
		return false, fmt.Errorf("asking for %s: %w", k, err)
	}
	return ok, nil
}

func (g *Generator) decideController(ctx context.Context, plan *Plan) error {
	ok, err := g.confirmArtifact(ctx, artifact.Controller)
	if err != nil || !ok {
		return err
	}

	withContent, err := g.driver.Confirm(ctx, prompt.ConfirmConfig{
		Message: "Do you want to create controller content?",
		Help:    "Choose none to stop adding methods.",
	})
	if err != nil {
		return fmt.Errorf("asking for controller content: %w", err)
	}

	body := ""
	if withContent {
		method, err := g.stubs.Load(stubs.ClassMethod)
		if err != nil {
			return err
		}
		invoke, err := g.stubs.Load(stubs.ControllerInvoke)
		if err != nil {
			return err
		}

		loop := accumulate.Loop{
			Message:  "Controller content",
			Choices:  []string{ChoiceInvoke, ChoiceCustom, ChoiceNone},
			Sentinel: ChoiceNone,
			Fields:   []accumulate.Field{{Key: "name", Message: "Method name"}},
			Lanes: []accumulate.Lane{{
				Template: method.Fragment(),
				Schema:   g.schema(method),
				Fixed:    placeholder.Values{"arguments": controllerArguments},
			}},
			Verbatim: map[string]string{ChoiceInvoke: string(invoke.Fragment())},
		}
		blocks, err := loop.Run(ctx, g.driver)
		if err != nil {
			return fmt.Errorf("collecting controller content: %w", err)
		}
		body = blocks[0].String()
	}

	return g.add(plan, artifact.Controller, body)
}

func (g *Generator) decideModel(ctx context.Context, plan *Plan) (bool, error) {
	ok, err := g.confirmArtifact(ctx, artifact.Model)
	if err != nil || !ok {
		return false, err
	}

	fields, err := g.driver.Input(ctx, prompt.InputConfig{
		Message: "Fillable fields",
		Help:    "Comma separated, e.g. 'name','email'. Leave empty for none.",
	})
	if err != nil {
		return false, fmt.Errorf("asking fillable fields: %w", err)
	}

	if err := g.add(plan, artifact.Model, artifact.FillableDeclaration(fields)); err != nil {
		return false, err
	}
	return true, nil
}

func (g *Generator) decideRepository(ctx context.Context, plan *Plan) error {
	ok, err := g.confirmArtifact(ctx, artifact.Repository)
	if err != nil || !ok {
		return err
	}

	method, err := g.stubs.Load(stubs.ClassMethod)
	if err != nil {
		return err
	}
	signature, err := g.stubs.Load(stubs.InterfaceMethod)
	if err != nil {
		return err
	}

	loop := accumulate.Loop{
		Message:  "Repository content",
		Choices:  []string{ChoiceCustom, ChoiceNone},
		Sentinel: ChoiceNone,
		Fields: []accumulate.Field{
			{Key: "name", Message: "Method name"},
			{Key: "arguments", Message: "Arguments"},
		},
		Lanes: []accumulate.Lane{
			{Template: method.Fragment(), Schema: g.schema(method)},
			{Template: signature.Fragment(), Schema: g.schema(signature)},
		},
	}
	blocks, err := loop.Run(ctx, g.driver)
	if err != nil {
		return fmt.Errorf("collecting repository content: %w", err)
	}

	if err := g.add(plan, artifact.Repository, blocks[0].String()); err != nil {
		return err
	}
	if err := g.add(plan, artifact.RepositoryInterface, blocks[1].String()); err != nil {
		return err
	}

	return g.planProvider(plan)
}

// planProvider renders the service provider scaffold when the project lacks
// one and records the manual registration steps.
func (g *Generator) planProvider(plan *Plan) error {
	providerPath := g.layout.ProviderPath()

	if !g.files.Exists(providerPath) {
		provider, err := g.render(artifact.Provider, g.layout.ProvidersNamespace, artifact.ProviderName, "")
		if err != nil {
			return err
		}
		provider.Path = providerPath
		plan.Provider = &provider

		if g.opts.PersistProvider {
			plan.Artifacts = append(plan.Artifacts, provider)
		}
		plan.Instructions = append(plan.Instructions, fmt.Sprintf(
			`Please add %s\%s::class to the providers in config/app.php.`,
			g.layout.ProvidersNamespace, artifact.ProviderName,
		))
	}

	repo := artifact.Repository.NameFor(plan.Group)
	iface := artifact.RepositoryInterface.NameFor(plan.Group)
	plan.Instructions = append(plan.Instructions, fmt.Sprintf(
		`Add $this->app->bind(%s\%s::class, %s\%s::class); to the %s`,
		plan.Namespace, iface, plan.Namespace, repo, filepath.ToSlash(providerPath),
	))
	return nil
}

// add renders a group artifact of kind k and appends it to the plan.
func (g *Generator) add(plan *Plan, k artifact.Kind, body string) error {
	a, err := g.render(k, plan.Namespace, k.NameFor(plan.Group), body)
	if err != nil {
		return err
	}
	a.Path = filepath.Join(plan.Dir, g.layout.FileName(a.Name))
	plan.Artifacts = append(plan.Artifacts, a)
	g.log.Debug().Str("kind", string(k)).Str("name", a.Name).Msg("rendered artifact")
	return nil
}

func (g *Generator) render(k artifact.Kind, namespace, name, body string) (artifact.Artifact, error) {
	stub, err := g.stubs.Load(k.Stub())
	if err != nil {
		return artifact.Artifact{}, err
	}
	shell, err := artifact.ShellFor(k, stub, g.opts.Strict)
	if err != nil {
		return artifact.Artifact{}, err
	}
	content, err := artifact.Assemble(shell, namespace, name, body)
	if err != nil {
		return artifact.Artifact{}, fmt.Errorf("rendering %s %s: %w", k, name, err)
	}
	return artifact.Artifact{Kind: k, Name: name, Content: content}, nil
}

func (g *Generator) schema(s *stubs.Stub) *placeholder.Schema {
	if !g.opts.Strict {
		return nil
	}
	schema := s.Schema
	return &schema
}
