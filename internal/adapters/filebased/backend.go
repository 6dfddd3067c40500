// Package filebased implements the backend that reads modules from a manifest in the project root.
package filebased

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/modgraph/internal/core/domain"
	"go.trai.ch/modgraph/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// ManifestJSON is the JSON manifest file name.
	ManifestJSON = ".kotlinlsp-modules.json"
	// ManifestYAML is the YAML manifest file name.
	ManifestYAML = ".kotlinlsp-modules.yaml"
)

var _ ports.Backend = (*Backend)(nil)

// Backend resolves modules declared in a manifest file.
type Backend struct {
	pctx          domain.ProjectContext
	fingerprinter ports.Fingerprinter
}

// New creates a Backend for the project in pctx.
func New(pctx domain.ProjectContext, fingerprinter ports.Fingerprinter) *Backend {
	return &Backend{pctx: pctx, fingerprinter: fingerprinter}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return domain.BackendFileBased
}

// MarkerFiles returns the manifest locations, JSON first.
func (b *Backend) MarkerFiles() []string {
	return []string{
		filepath.Join(b.pctx.Root, ManifestJSON),
		filepath.Join(b.pctx.Root, ManifestYAML),
	}
}

// ResolveIfNeeded reads the manifest unless its version equals cachedVersion.
func (b *Backend) ResolveIfNeeded(_ context.Context, cachedVersion string) (*domain.ResolveResult, error) {
	path, ok := b.manifestPath()
	if !ok {
		return nil, zerr.With(domain.ErrManifestReadFailed, "root", b.pctx.Root)
	}

	fingerprint, err := b.fingerprinter.FingerprintFiles([]string{path})
	if err != nil {
		return nil, err
	}
	// The JDK home fills the roots of jdk modules, so it is part of the version.
	version := b.pctx.Version(fingerprint)
	if cachedVersion != "" && cachedVersion == version {
		return nil, nil
	}

	modules, err := b.readManifest(path)
	if err != nil {
		return nil, err
	}
	return &domain.ResolveResult{Modules: modules, Metadata: version}, nil
}

func (b *Backend) manifestPath() (string, bool) {
	for _, path := range b.MarkerFiles() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// manifestEntry is one module of the manifest. JSON manifests decode through
// the YAML parser, so the field names match the JSON keys.
type manifestEntry struct {
	ID            string   `yaml:"id"`
	Kind          string   `yaml:"kind"`
	IsSource      *bool    `yaml:"isSource"`
	ContentRoots  []string `yaml:"contentRoots"`
	Dependencies  []string `yaml:"dependencies"`
	JavaVersion   string   `yaml:"javaVersion"`
	KotlinVersion string   `yaml:"kotlinVersion"`
}

func (b *Backend) readManifest(path string) (domain.ModuleGraph, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is one of the marker files
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var entries []manifestEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	graph := make(domain.ModuleGraph, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			return nil, zerr.With(domain.ErrMissingModuleID, "path", path)
		}
		if seen[e.ID] {
			return nil, zerr.With(domain.ErrDuplicateModule, "module", e.ID)
		}
		seen[e.ID] = true
		graph = append(graph, b.toModule(e))
	}

	for _, m := range graph {
		for _, dep := range m.Dependencies {
			if !seen[dep] {
				return nil, zerr.With(zerr.With(domain.ErrUnknownDependency, "module", m.ID), "dependency", dep)
			}
		}
	}
	return graph, nil
}

func (b *Backend) toModule(e manifestEntry) domain.Module {
	kind := domain.NormalizeModuleKind(e.Kind)
	if e.Kind == "" && e.IsSource != nil && !*e.IsSource {
		kind = domain.ModuleKindLibrary
	}

	roots := make([]string, 0, len(e.ContentRoots))
	for _, r := range e.ContentRoots {
		if !filepath.IsAbs(r) {
			r = filepath.Join(b.pctx.Root, r)
		}
		roots = append(roots, filepath.Clean(r))
	}
	if kind == domain.ModuleKindJDK && len(roots) == 0 && b.pctx.JDKHome != "" {
		roots = append(roots, b.pctx.JDKHome)
	}

	return domain.Module{
		ID:            e.ID,
		Kind:          kind,
		ContentRoots:  roots,
		Dependencies:  e.Dependencies,
		JavaVersion:   e.JavaVersion,
		KotlinVersion: e.KotlinVersion,
	}
}
