package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modgraph/internal/adapters/cas"
	"go.trai.ch/modgraph/internal/adapters/codec"
	"go.trai.ch/modgraph/internal/core/domain"
	"go.trai.ch/modgraph/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestVersionStore(t *testing.T) {
	t.Parallel()

	t.Run("write and read", func(t *testing.T) {
		t.Parallel()
		store := cas.NewVersionStore(filepath.Join(t.TempDir(), "nested", "cache"))

		record := domain.VersionRecord{Version: "v1", BackendName: domain.BackendFileBased}
		require.NoError(t, store.Write(record))

		got := store.Read()
		require.NotNil(t, got)
		assert.Equal(t, record, *got)
	})

	t.Run("on-disk layout", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		store := cas.NewVersionStore(dir)

		require.NoError(t, store.Write(domain.VersionRecord{Version: "abc", BackendName: "Gradle"}))

		data, err := os.ReadFile(filepath.Join(dir, domain.VersionFileName))
		require.NoError(t, err)
		assert.JSONEq(t, `{"version":"abc","buildSystemName":"Gradle"}`, string(data))
	})

	t.Run("read missing", func(t *testing.T) {
		t.Parallel()
		store := cas.NewVersionStore(t.TempDir())
		assert.Nil(t, store.Read())
	})

	t.Run("read corrupt", func(t *testing.T) {
		t.Parallel()
		store := cas.NewVersionStore(t.TempDir())
		require.NoError(t, os.WriteFile(store.Path(), []byte("{ invalid json"), 0o600))
		assert.Nil(t, store.Read())
	})

	t.Run("write replaces", func(t *testing.T) {
		t.Parallel()
		store := cas.NewVersionStore(t.TempDir())
		require.NoError(t, store.Write(domain.VersionRecord{Version: "v1", BackendName: "FileBased"}))
		require.NoError(t, store.Write(domain.VersionRecord{Version: "v2", BackendName: "Gradle"}))

		assert.Equal(t, &domain.VersionRecord{Version: "v2", BackendName: "Gradle"}, store.Read())

		entries, err := os.ReadDir(filepath.Dir(store.Path()))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "no temp files may be left behind")
	})

	t.Run("clear", func(t *testing.T) {
		t.Parallel()
		store := cas.NewVersionStore(t.TempDir())
		require.NoError(t, store.Write(domain.VersionRecord{Version: "v1", BackendName: "FileBased"}))

		require.NoError(t, store.Clear())
		assert.NoFileExists(t, store.Path())
		assert.Nil(t, store.Read())

		require.NoError(t, store.Clear(), "clearing an absent record is a no-op")
	})
}

func TestModuleStore(t *testing.T) {
	t.Parallel()

	pctx := domain.ProjectContext{Root: "/work/project", JDKHome: "/jdk"}
	graph := domain.ModuleGraph{
		{ID: "app", Kind: domain.ModuleKindSource, ContentRoots: []string{"/work/project/app"}, Dependencies: []string{"jdk"}},
		{ID: "jdk", Kind: domain.ModuleKindJDK, ContentRoots: []string{"/jdk"}},
	}

	t.Run("write and read", func(t *testing.T) {
		t.Parallel()
		store := cas.NewModuleStore(t.TempDir(), codec.NewJSONCodec(), pctx)

		require.NoError(t, store.Write(graph))
		assert.Equal(t, graph, store.Read())
	})

	t.Run("empty graph is a hit", func(t *testing.T) {
		t.Parallel()
		store := cas.NewModuleStore(t.TempDir(), codec.NewJSONCodec(), pctx)

		require.NoError(t, store.Write(domain.ModuleGraph{}))
		got := store.Read()
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("read missing", func(t *testing.T) {
		t.Parallel()
		store := cas.NewModuleStore(t.TempDir(), codec.NewJSONCodec(), pctx)
		assert.Nil(t, store.Read())
	})

	t.Run("read corrupt", func(t *testing.T) {
		t.Parallel()
		store := cas.NewModuleStore(t.TempDir(), codec.NewJSONCodec(), pctx)
		require.NoError(t, store.Write(graph))
		require.NoError(t, os.WriteFile(store.Path(), []byte{0x00, 0x01, 0x02}, 0o600))

		assert.Nil(t, store.Read())
	})

	t.Run("context is passed to the codec", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		mockCodec := mocks.NewMockModuleCodec(ctrl)
		store := cas.NewModuleStore(t.TempDir(), mockCodec, pctx)

		mockCodec.EXPECT().Encode(graph).Return([]byte("blob"), nil)
		mockCodec.EXPECT().Decode([]byte("blob"), pctx).Return(graph, nil)

		require.NoError(t, store.Write(graph))
		assert.Equal(t, graph, store.Read())
	})

	t.Run("encode failure", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		mockCodec := mocks.NewMockModuleCodec(ctrl)
		store := cas.NewModuleStore(t.TempDir(), mockCodec, pctx)

		mockCodec.EXPECT().Encode(gomock.Any()).Return(nil, assert.AnError)

		require.Error(t, store.Write(graph))
		assert.NoFileExists(t, store.Path())
	})

	t.Run("clear", func(t *testing.T) {
		t.Parallel()
		store := cas.NewModuleStore(t.TempDir(), codec.NewJSONCodec(), pctx)
		require.NoError(t, store.Write(graph))

		require.NoError(t, store.Clear())
		assert.Nil(t, store.Read())
		require.NoError(t, store.Clear())
	})
}
