package workspace

import (
	"github.com/arthur-debert/wslaunch/pkg/launch"
	"github.com/arthur-debert/wslaunch/pkg/logging"
	"github.com/arthur-debert/wslaunch/pkg/materialize"
	"github.com/arthur-debert/wslaunch/pkg/paths"
	"github.com/arthur-debert/wslaunch/pkg/registry"
	"github.com/arthur-debert/wslaunch/pkg/template"
	"github.com/arthur-debert/wslaunch/pkg/types"
	"github.com/rs/zerolog"
)

// Options describe one workspace template request
type Options struct {
	WorkspaceID string
	Structure   []types.Node
	Server      string
	OwnerID     string
	Token       string
}

// Result reports what a request did
type Result struct {
	Spec        *types.Spec
	Fingerprint string
	// Materialized is true when the backing store was written.
	Materialized bool
	// Location is the identifier's subtree; empty without a backing store.
	Location string
	Link     string
}

// Engine runs workspace template requests
type Engine struct {
	store    types.FS
	registry *registry.Registry
	paths    paths.Paths
	logger   zerolog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithStore sets the backing store. nil means none is reachable.
func WithStore(store types.FS) Option {
	return func(e *Engine) { e.store = store }
}

// WithRegistry sets the fingerprint registry
func WithRegistry(r *registry.Registry) Option {
	return func(e *Engine) { e.registry = r }
}

// WithPaths sets the storage layout
func WithPaths(p paths.Paths) Option {
	return func(e *Engine) { e.paths = p }
}

// WithLogger sets the engine's logger
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine creates an Engine. Without options it has no backing store,
// a private registry and a layout rooted at the working directory.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{logger: logging.GetLogger("workspace")}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = registry.New()
	}
	if e.paths == nil {
		p, err := paths.New("")
		if err != nil {
			return nil, err
		}
		e.paths = p
	}
	return e, nil
}

// HasStore reports whether the engine can materialize
func (e *Engine) HasStore() bool {
	return e.store != nil
}

// Store returns the backing store, nil when there is none
func (e *Engine) Store() types.FS {
	return e.store
}

// Paths returns the engine's storage layout
func (e *Engine) Paths() paths.Paths {
	return e.paths
}

// Prepare normalizes nodes into a spec without touching the store.
func (e *Engine) Prepare(id string, nodes []types.Node) (*types.Spec, error) {
	spec, err := template.Build(id, nodes)
	if err != nil {
		return nil, err
	}
	if spec.IsEmpty() {
		e.logger.Debug().Str("identifier", id).Msg("Template is empty")
	}
	if dups := spec.DuplicatePaths(); len(dups) > 0 {
		e.logger.Warn().
			Str("identifier", id).
			Strs("paths", dups).
			Msg("Duplicate file paths; the last declared entry is written")
	}
	return spec, nil
}

// Ensure materializes spec unless the registry already holds its
// fingerprint for spec.ID. A failed write is forgotten by the registry so
// the next call retries it.
func (e *Engine) Ensure(spec *types.Spec) (Result, error) {
	result := Result{
		Spec:        spec,
		Fingerprint: template.Fingerprint(spec),
	}

	if e.store == nil {
		e.logger.Debug().Str("identifier", spec.ID).Msg("No backing store, skipping materialization")
		return result, nil
	}

	result.Location = e.paths.TemplateDir(spec.ID)
	if !e.registry.Record(spec.ID, result.Fingerprint) {
		e.logger.Debug().
			Str("identifier", spec.ID).
			Str("fingerprint", result.Fingerprint).
			Msg("Template unchanged, skipping materialization")
		return result, nil
	}

	if _, err := materialize.New(e.store, e.paths).WithLogger(e.logger).Materialize(spec); err != nil {
		e.registry.Forget(spec.ID)
		return result, err
	}
	result.Materialized = true
	return result, nil
}

// Create runs the whole request: normalize, ensure, link.
func (e *Engine) Create(opts Options) (Result, error) {
	spec, err := e.Prepare(opts.WorkspaceID, opts.Structure)
	if err != nil {
		return Result{}, err
	}

	result, err := e.Ensure(spec)
	if err != nil {
		return result, err
	}

	result.Link = launch.BuildLink(launch.LinkOptions{
		Server:      launch.ResolveServer(opts.Server),
		WorkspaceID: opts.WorkspaceID,
		OwnerID:     opts.OwnerID,
		Token:       opts.Token,
	})
	return result, nil
}
