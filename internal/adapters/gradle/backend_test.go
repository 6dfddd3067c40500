package gradle_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modgraph/internal/adapters/fs"
	"go.trai.ch/modgraph/internal/adapters/gradle"
	"go.trai.ch/modgraph/internal/adapters/telemetry"
	"go.trai.ch/modgraph/internal/core/domain"
	"go.trai.ch/modgraph/internal/core/ports"
	"go.trai.ch/modgraph/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o750))
}

// newProject lays out a three-project build: a root project with sources,
// an application and a nested library.
func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "settings.gradle.kts"), `
rootProject.name = "shop"
include(":app", ":lib:core")
`)
	writeFile(t, filepath.Join(root, "build.gradle.kts"), `
plugins { kotlin("jvm") version "2.0.0" }
`)
	writeFile(t, filepath.Join(root, "app", "build.gradle.kts"), `
kotlin { jvmToolchain(21) }
dependencies {
    implementation(project(":lib:core"))
    implementation(project(":missing"))
}
`)
	writeFile(t, filepath.Join(root, "lib", "core", "build.gradle.kts"), "")
	mkdir(t, filepath.Join(root, "src", "main", "kotlin"))
	mkdir(t, filepath.Join(root, "app", "src", "main", "kotlin"))
	mkdir(t, filepath.Join(root, "app", "src", "test", "kotlin"))
	mkdir(t, filepath.Join(root, "lib", "core", "src", "main", "java"))
	return root
}

func newBackend(root, jdkHome string) *gradle.Backend {
	return gradle.New(
		domain.ProjectContext{Root: root, JDKHome: jdkHome},
		fs.NewFingerprinter(fs.NewWalker()),
		telemetry.NewNoOp(),
		nil,
	)
}

func TestBackend_Identity(t *testing.T) {
	b := newBackend("/p", "")

	assert.Equal(t, domain.BackendGradle, b.Name())
	assert.Equal(t, []string{
		"/p/settings.gradle.kts",
		"/p/settings.gradle",
		"/p/build.gradle.kts",
		"/p/build.gradle",
	}, b.MarkerFiles())
}

func TestBackend_ResolveIfNeeded(t *testing.T) {
	root := newProject(t)

	res, err := newBackend(root, "").ResolveIfNeeded(context.Background(), "")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.Cacheable())

	assert.Equal(t, domain.ModuleGraph{
		{
			ID:            "shop",
			Kind:          domain.ModuleKindSource,
			ContentRoots:  []string{filepath.Join(root, "src", "main", "kotlin")},
			KotlinVersion: "2.0.0",
		},
		{
			ID:   ":app",
			Kind: domain.ModuleKindSource,
			ContentRoots: []string{
				filepath.Join(root, "app", "src", "main", "kotlin"),
				filepath.Join(root, "app", "src", "test", "kotlin"),
			},
			Dependencies: []string{":lib:core"},
			JavaVersion:  "21",
		},
		{
			ID:           ":lib:core",
			Kind:         domain.ModuleKindSource,
			ContentRoots: []string{filepath.Join(root, "lib", "core", "src", "main", "java")},
		},
	}, res.Modules)
}

func TestBackend_ResolveIfNeeded_JDK(t *testing.T) {
	root := newProject(t)

	res, err := newBackend(root, "/usr/lib/jvm/21").ResolveIfNeeded(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"shop", ":app", ":lib:core", gradle.JDKModuleID}, res.Modules.IDs())
	app, ok := res.Modules.Find(":app")
	require.True(t, ok)
	assert.Equal(t, []string{":lib:core", gradle.JDKModuleID}, app.Dependencies)

	jdk, ok := res.Modules.Find(gradle.JDKModuleID)
	require.True(t, ok)
	assert.Equal(t, domain.ModuleKindJDK, jdk.Kind)
	assert.Equal(t, []string{"/usr/lib/jvm/21"}, jdk.ContentRoots)
}

func TestBackend_ResolveIfNeeded_Unchanged(t *testing.T) {
	root := newProject(t)
	b := newBackend(root, "")

	first, err := b.ResolveIfNeeded(context.Background(), "")
	require.NoError(t, err)

	// Source edits and build outputs do not invalidate the scan.
	writeFile(t, filepath.Join(root, "app", "src", "main", "kotlin", "Main.kt"), "fun main() {}")
	writeFile(t, filepath.Join(root, "build", "generated.gradle"), "")

	second, err := b.ResolveIfNeeded(context.Background(), first.Metadata)
	require.NoError(t, err)
	assert.Nil(t, second)

	writeFile(t, filepath.Join(root, "lib", "core", "build.gradle.kts"), `
dependencies { api(project(":app")) }
`)
	third, err := b.ResolveIfNeeded(context.Background(), first.Metadata)
	require.NoError(t, err)
	require.NotNil(t, third)
	core, ok := third.Modules.Find(":lib:core")
	require.True(t, ok)
	assert.Equal(t, []string{":app"}, core.Dependencies)
}

func TestBackend_ResolveIfNeeded_SourceDirAdded(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "settings.gradle.kts"), `include(":app")`)
	writeFile(t, filepath.Join(root, "app", "build.gradle.kts"), "")
	b := newBackend(root, "")

	first, err := b.ResolveIfNeeded(context.Background(), "")
	require.NoError(t, err)
	app, ok := first.Modules.Find(":app")
	require.True(t, ok)
	assert.Empty(t, app.ContentRoots)

	mkdir(t, filepath.Join(root, "app", "src", "main", "kotlin"))

	second, err := b.ResolveIfNeeded(context.Background(), first.Metadata)
	require.NoError(t, err)
	require.NotNil(t, second, "a new source directory invalidates the cached graph")
	app, ok = second.Modules.Find(":app")
	require.True(t, ok)
	assert.Equal(t, []string{filepath.Join(root, "app", "src", "main", "kotlin")}, app.ContentRoots)

	// The root project becomes a module once it has sources of its own.
	mkdir(t, filepath.Join(root, "src", "test", "java"))
	third, err := b.ResolveIfNeeded(context.Background(), second.Metadata)
	require.NoError(t, err)
	require.NotNil(t, third)
	assert.Equal(t, []string{filepath.Base(root), ":app"}, third.Modules.IDs())
}

func TestBackend_ResolveIfNeeded_JDKHomeChange(t *testing.T) {
	root := newProject(t)

	first, err := newBackend(root, "").ResolveIfNeeded(context.Background(), "")
	require.NoError(t, err)

	second, err := newBackend(root, "/usr/lib/jvm/21").ResolveIfNeeded(context.Background(), first.Metadata)
	require.NoError(t, err)
	require.NotNil(t, second, "setting a JDK home invalidates the cached graph")
	_, ok := second.Modules.Find(gradle.JDKModuleID)
	assert.True(t, ok)

	third, err := newBackend(root, "/usr/lib/jvm/17").ResolveIfNeeded(context.Background(), second.Metadata)
	require.NoError(t, err)
	require.NotNil(t, third)
	assert.NotEqual(t, second.Metadata, third.Metadata)
}

func TestBackend_ResolveIfNeeded_RootWithoutBuild(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "settings.gradle"), "include 'a'\n")
	writeFile(t, filepath.Join(root, "a", "build.gradle"), "")

	res, err := newBackend(root, "").ResolveIfNeeded(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{":a"}, res.Modules.IDs())
}

func TestBackend_ResolveIfNeeded_SingleProject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "build.gradle"), "")

	res, err := newBackend(root, "").ResolveIfNeeded(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Base(root)}, res.Modules.IDs())
}

func TestBackend_ResolveIfNeeded_DynamicSettings(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "settings.gradle.kts"), `
file(".").listFiles().filter { it.isDirectory }.forEach {
    include(it.name)
}
include(":fixed")
`)
	writeFile(t, filepath.Join(root, "fixed", "build.gradle.kts"), "")

	res, err := newBackend(root, "").ResolveIfNeeded(context.Background(), "")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, res.Cacheable(), "a partially understood build must not be cached")
	assert.Equal(t, []string{":fixed"}, res.Modules.IDs())
}

func TestBackend_ResolveIfNeeded_Progress(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := newProject(t)

	vertex := mocks.NewMockVertex(ctrl)
	progress := mocks.NewMockTelemetry(ctrl)
	progress.EXPECT().Record(gomock.Any(), "gradle: "+root).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).Times(2)

	vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
	vertex.EXPECT().Complete(nil).Times(2)
	vertex.EXPECT().Cached().Times(1)

	b := gradle.New(domain.ProjectContext{Root: root}, fs.NewFingerprinter(fs.NewWalker()), progress, nil)

	first, err := b.ResolveIfNeeded(context.Background(), "")
	require.NoError(t, err)

	second, err := b.ResolveIfNeeded(context.Background(), first.Metadata)
	require.NoError(t, err)
	assert.Nil(t, second)
}

func TestBackend_ResolveIfNeeded_WarningsReachLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := newProject(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn("gradle: " + root + ": :app references unknown project :missing").Times(1)

	progress := telemetry.New(log)
	b := gradle.New(domain.ProjectContext{Root: root}, fs.NewFingerprinter(fs.NewWalker()), progress, nil)

	_, err := b.ResolveIfNeeded(context.Background(), "")
	require.NoError(t, err)
	require.NoError(t, progress.Close())
}

func TestBackend_ResolveIfNeeded_FingerprintError(t *testing.T) {
	ctrl := gomock.NewController(t)
	fp := mocks.NewMockFingerprinter(ctrl)
	fp.EXPECT().FingerprintTree("/p", gomock.Any(), gomock.Any()).Return("", assert.AnError)

	b := gradle.New(domain.ProjectContext{Root: "/p"}, fp, telemetry.NewNoOp(), []string{"out"})
	_, err := b.ResolveIfNeeded(context.Background(), "")
	require.ErrorIs(t, err, assert.AnError)
}
