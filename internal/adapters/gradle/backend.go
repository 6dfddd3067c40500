// Package gradle implements the backend that derives modules from Gradle build scripts.
package gradle

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/modgraph/internal/core/domain"
	"go.trai.ch/modgraph/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// JDKModuleID is the ID of the module representing the project JDK.
const JDKModuleID = "jdk"

var (
	settingsScripts = []string{"settings.gradle.kts", "settings.gradle"}
	buildScripts    = []string{"build.gradle.kts", "build.gradle"}

	// sourceDirs are the conventional source set directories, relative to a project directory.
	sourceDirs = []string{
		filepath.Join("src", "main", "kotlin"),
		filepath.Join("src", "main", "java"),
		filepath.Join("src", "test", "kotlin"),
		filepath.Join("src", "test", "java"),
	}

	// scanIgnores are directories that never hold build configuration.
	scanIgnores = []string{"build", "out", "node_modules"}
)

var _ ports.Backend = (*Backend)(nil)

// Backend resolves modules from a Gradle settings script and per-project build scripts.
type Backend struct {
	pctx          domain.ProjectContext
	fingerprinter ports.Fingerprinter
	progress      ports.Telemetry
	ignores       []string
}

// New creates a Backend for the project in pctx.
// ignores are extra file name patterns skipped while fingerprinting the build.
func New(
	pctx domain.ProjectContext,
	fingerprinter ports.Fingerprinter,
	progress ports.Telemetry,
	ignores []string,
) *Backend {
	return &Backend{
		pctx:          pctx,
		fingerprinter: fingerprinter,
		progress:      progress,
		ignores:       append(slices.Clone(scanIgnores), ignores...),
	}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return domain.BackendGradle
}

// MarkerFiles returns the root settings and build scripts.
func (b *Backend) MarkerFiles() []string {
	markers := make([]string, 0, len(settingsScripts)+len(buildScripts))
	for _, name := range slices.Concat(settingsScripts, buildScripts) {
		markers = append(markers, filepath.Join(b.pctx.Root, name))
	}
	return markers
}

// ResolveIfNeeded rescans the build unless its version equals cachedVersion.
// The version covers every Gradle file, the source directories present in
// each project and the JDK home.
func (b *Backend) ResolveIfNeeded(ctx context.Context, cachedVersion string) (_ *domain.ResolveResult, err error) {
	ctx, vertex := b.progress.Record(ctx, "gradle: "+b.pctx.Root)
	defer func() { vertex.Complete(err) }()

	scripts, err := b.fingerprinter.FingerprintTree(b.pctx.Root, b.ignores, isGradleFile)
	if err != nil {
		return nil, err
	}

	set, err := b.readSettings()
	if err != nil {
		return nil, err
	}
	projects := b.projects(set)

	version := b.pctx.Version(append([]string{scripts}, b.layout(projects)...)...)
	if cachedVersion != "" && cachedVersion == version {
		vertex.Log(domain.LogLevelInfo, "build unchanged")
		vertex.Cached()
		return nil, nil
	}

	modules, err := b.scan(ctx, vertex, set, projects)
	if err != nil {
		return nil, err
	}

	result := &domain.ResolveResult{Modules: modules, Metadata: version}
	if set.dynamic {
		vertex.Log(domain.LogLevelWarn, "settings script includes projects dynamically, result is not cached")
		result.Metadata = ""
	}
	return result, nil
}

func (b *Backend) readSettings() (settings, error) {
	for _, name := range settingsScripts {
		src, ok, err := readScript(filepath.Join(b.pctx.Root, name))
		if err != nil {
			return settings{}, err
		}
		if ok {
			return parseSettings(src), nil
		}
	}
	return settings{}, nil
}

// project is one Gradle project to inspect.
type project struct {
	path  string
	dir   string
	roots []string
}

// projects lists the root project followed by every included project, with
// the source directories present in each.
func (b *Backend) projects(set settings) []project {
	projects := []project{{path: ":", dir: b.pctx.Root}}
	for _, path := range set.includes {
		projects = append(projects, project{path: path, dir: filepath.Join(b.pctx.Root, filepath.FromSlash(projectDir(path)))})
	}
	for i := range projects {
		projects[i].roots = sourceRoots(projects[i].dir)
	}
	return projects
}

// layout returns the root-relative source directories of all projects.
func (b *Backend) layout(projects []project) []string {
	var dirs []string
	for _, p := range projects {
		for _, dir := range p.roots {
			rel, err := filepath.Rel(b.pctx.Root, dir)
			if err != nil {
				rel = dir
			}
			dirs = append(dirs, filepath.ToSlash(rel))
		}
	}
	return dirs
}

func sourceRoots(dir string) []string {
	var roots []string
	for _, rel := range sourceDirs {
		path := filepath.Join(dir, rel)
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			roots = append(roots, path)
		}
	}
	return roots
}

// scan inspects the projects concurrently and returns the modules in
// declaration order, root first.
func (b *Backend) scan(ctx context.Context, vertex ports.Vertex, set settings, projects []project) (domain.ModuleGraph, error) {
	rootID := set.rootName
	if rootID == "" {
		rootID = filepath.Base(b.pctx.Root)
	}

	results := make([]*domain.Module, len(projects))
	deps := make([][]string, len(projects))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, p := range projects {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, projectDeps, err := b.inspect(p, i == 0)
			if err != nil {
				return err
			}
			results[i] = m
			deps[i] = projectDeps
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ids := make(map[string]string, len(projects))
	for i, p := range projects {
		if results[i] == nil {
			continue
		}
		if p.path == ":" {
			results[i].ID = rootID
		}
		ids[p.path] = results[i].ID
	}

	var graph domain.ModuleGraph
	for i, m := range results {
		if m == nil {
			continue
		}
		for _, dep := range deps[i] {
			id, ok := ids[dep]
			if !ok {
				vertex.Log(domain.LogLevelWarn, m.ID+" references unknown project "+dep)
				continue
			}
			m.Dependencies = append(m.Dependencies, id)
		}
		if b.pctx.JDKHome != "" {
			m.Dependencies = append(m.Dependencies, JDKModuleID)
		}
		graph = append(graph, *m)
	}

	if b.pctx.JDKHome != "" {
		graph = append(graph, domain.Module{
			ID:           JDKModuleID,
			Kind:         domain.ModuleKindJDK,
			ContentRoots: []string{b.pctx.JDKHome},
		})
	}

	vertex.Log(domain.LogLevelInfo, "resolved "+strings.Join(graph.IDs(), ", "))
	return graph, nil
}

// inspect reads one project directory. The root project is only a module
// when it has its own build script or source directories.
func (b *Backend) inspect(p project, isRoot bool) (*domain.Module, []string, error) {
	var script buildScript
	hasScript := false
	for _, name := range buildScripts {
		src, ok, err := readScript(filepath.Join(p.dir, name))
		if err != nil {
			return nil, nil, err
		}
		if ok {
			script = parseBuildScript(src)
			hasScript = true
			break
		}
	}

	if isRoot && !hasScript && len(p.roots) == 0 {
		return nil, nil, nil
	}

	m := &domain.Module{
		ID:            p.path,
		Kind:          domain.ModuleKindSource,
		ContentRoots:  p.roots,
		JavaVersion:   script.javaVersion,
		KotlinVersion: script.kotlinVersion,
	}
	return m, script.projectDeps, nil
}

// readScript returns the content of a script and whether it exists.
func readScript(path string) (string, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is built from the project root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, zerr.With(zerr.Wrap(err, domain.ErrGradleScriptReadFailed.Error()), "path", path)
	}
	return string(data), true, nil
}

func isGradleFile(path string) bool {
	name := filepath.Base(path)
	switch {
	case strings.HasSuffix(name, ".gradle"), strings.HasSuffix(name, ".gradle.kts"):
		return true
	case name == "gradle.properties", name == "libs.versions.toml":
		return true
	default:
		return false
	}
}
