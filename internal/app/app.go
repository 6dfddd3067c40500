// Package app implements the application layer for modgraph.
package app

import (
	"context"
	"path/filepath"

	"go.trai.ch/modgraph/internal/adapters/cas"
	"go.trai.ch/modgraph/internal/adapters/filebased"
	"go.trai.ch/modgraph/internal/adapters/gradle"
	"go.trai.ch/modgraph/internal/core/domain"
	"go.trai.ch/modgraph/internal/core/ports"
	"go.trai.ch/modgraph/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	codec         ports.ModuleCodec
	fingerprinter ports.Fingerprinter
	telemetry     ports.Telemetry
	logger        ports.Logger
	cacheBase     string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	codec ports.ModuleCodec,
	fingerprinter ports.Fingerprinter,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader:  loader,
		codec:         codec,
		fingerprinter: fingerprinter,
		telemetry:     telemetry,
		logger:        log,
		cacheBase:     domain.DefaultCacheBase(),
	}
}

// WithCacheBase overrides the directory per-root caches are created under
// when the project configuration does not set one.
// This is primarily used for testing.
func (a *App) WithCacheBase(dir string) *App {
	a.cacheBase = dir
	return a
}

// WithTelemetry replaces the progress sink.
func (a *App) WithTelemetry(t ports.Telemetry) *App {
	a.telemetry = t
	return a
}

// project is everything resolved from a root before any backend runs.
type project struct {
	pctx     domain.ProjectContext
	config   *domain.Config
	cacheDir string
}

func (a *App) loadProject(root string) (*project, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	cfg, err := a.configLoader.Load(absRoot)
	if err != nil {
		return nil, err
	}

	base := a.cacheBase
	if cfg.CacheDir != "" {
		base = cfg.CacheDir
	}

	return &project{
		pctx:     domain.ProjectContext{Root: absRoot, JDKHome: cfg.JDKHome},
		config:   cfg,
		cacheDir: domain.CachePath(base, absRoot),
	}, nil
}

// Resolve returns the module graph of the project at root, reusing the
// persisted graph when the selected backend reports no changes.
func (a *App) Resolve(ctx context.Context, root string) (_ domain.ModuleGraph, err error) {
	p, err := a.loadProject(root)
	if err != nil {
		return nil, err
	}

	backends, err := a.backends(p)
	if err != nil {
		return nil, err
	}

	ctx, vertex := a.telemetry.Record(ctx, "resolve "+p.pctx.Root)
	defer func() { vertex.Complete(err) }()

	r := resolver.New(
		backends,
		cas.NewVersionStore(p.cacheDir),
		cas.NewModuleStore(p.cacheDir, a.codec, p.pctx),
		a.logger,
	)
	graph, err := r.Resolve(ctx)
	if err != nil {
		return nil, zerr.With(err, "root", p.pctx.Root)
	}
	return graph, nil
}

// Clean removes the persisted version record and module graph of the project at root.
func (a *App) Clean(_ context.Context, root string) error {
	p, err := a.loadProject(root)
	if err != nil {
		return err
	}

	if err := cas.NewVersionStore(p.cacheDir).Clear(); err != nil {
		return err
	}
	if err := cas.NewModuleStore(p.cacheDir, a.codec, p.pctx).Clear(); err != nil {
		return err
	}

	a.logger.Info("removed cached modules for " + p.pctx.Root)
	return nil
}

// CachePath returns the directory persisted state of the project at root lives in.
func (a *App) CachePath(root string) (string, error) {
	p, err := a.loadProject(root)
	if err != nil {
		return "", err
	}
	return p.cacheDir, nil
}

// backends instantiates the configured backends in priority order.
func (a *App) backends(p *project) ([]ports.Backend, error) {
	order := p.config.Backends
	if len(order) == 0 {
		order = domain.DefaultBackendOrder()
	}

	backends := make([]ports.Backend, 0, len(order))
	for _, name := range order {
		switch name {
		case domain.BackendFileBased:
			backends = append(backends, filebased.New(p.pctx, a.fingerprinter))
		case domain.BackendGradle:
			backends = append(backends, gradle.New(p.pctx, a.fingerprinter, a.telemetry, p.config.Ignore))
		default:
			return nil, zerr.With(domain.ErrUnknownBackend, "backend", name)
		}
	}
	return backends, nil
}
