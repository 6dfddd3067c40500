// Package resolver implements the build-system selection and module cache controller.
package resolver

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/modgraph/internal/core/domain"
	"go.trai.ch/modgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver picks the first applicable backend for a project root and decides
// whether its persisted module graph can be reused.
type Resolver struct {
	backends []ports.Backend
	versions ports.VersionStore
	modules  ports.ModuleStore
	logger   ports.Logger
}

// New creates a Resolver. backends are tried in the given order.
func New(
	backends []ports.Backend,
	versions ports.VersionStore,
	modules ports.ModuleStore,
	logger ports.Logger,
) *Resolver {
	return &Resolver{
		backends: backends,
		versions: versions,
		modules:  modules,
		logger:   logger,
	}
}

// Resolve returns the module graph of the project root.
// Backend errors are returned unmodified.
func (r *Resolver) Resolve(ctx context.Context) (domain.ModuleGraph, error) {
	record := r.versions.Read()

	for _, backend := range r.backends {
		if !anyExists(backend.MarkerFiles()) {
			continue
		}

		cachedGraph := r.modules.Read()

		// A version without a usable graph would let the backend report
		// "unchanged" with nothing to serve.
		cachedVersion := ""
		if cachedGraph != nil {
			cachedVersion = record.VersionFor(backend.Name())
		}

		result, err := backend.ResolveIfNeeded(ctx, cachedVersion)
		if err != nil {
			return nil, err
		}

		if result == nil {
			if cachedGraph != nil {
				r.logger.Info(fmt.Sprintf("retrieved cached modules for %s build system", backend.Name()))
				return cachedGraph, nil
			}
			continue
		}

		if result.Cacheable() {
			if err := r.persist(backend.Name(), result); err != nil {
				return nil, err
			}
		}
		return result.Modules, nil
	}

	return nil, domain.ErrNoSuitableBuildSystem
}

// persist replaces the stored state with a fresh result. Both files are
// removed before either is written, so a record never outlives its graph.
func (r *Resolver) persist(backendName string, result *domain.ResolveResult) error {
	if err := r.versions.Clear(); err != nil {
		return zerr.With(err, "backend", backendName)
	}
	if err := r.modules.Clear(); err != nil {
		return zerr.With(err, "backend", backendName)
	}
	if err := r.modules.Write(result.Modules); err != nil {
		return zerr.With(err, "backend", backendName)
	}
	record := domain.VersionRecord{Version: result.Metadata, BackendName: backendName}
	if err := r.versions.Write(record); err != nil {
		return zerr.With(err, "backend", backendName)
	}
	return nil
}

func anyExists(paths []string) bool {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return true
		}
	}
	return false
}
