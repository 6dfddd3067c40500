package cas

import (
	"path/filepath"

	"go.trai.ch/modgraph/internal/core/domain"
	"go.trai.ch/modgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModuleStore = (*ModuleStore)(nil)

// ModuleStore implements ports.ModuleStore, delegating the blob format to a ports.ModuleCodec.
type ModuleStore struct {
	path  string
	codec ports.ModuleCodec
	pctx  domain.ProjectContext
}

// NewModuleStore creates a ModuleStore for the graph inside cacheDir.
// pctx is handed to the codec when decoding and is not interpreted by the store.
func NewModuleStore(cacheDir string, codec ports.ModuleCodec, pctx domain.ProjectContext) *ModuleStore {
	return &ModuleStore{
		path:  domain.ModulesFilePath(filepath.Clean(cacheDir)),
		codec: codec,
		pctx:  pctx,
	}
}

// Path returns the location of the graph file.
func (s *ModuleStore) Path() string {
	return s.path
}

// Read returns the stored graph, or nil if it is absent or cannot be decoded.
func (s *ModuleStore) Read() domain.ModuleGraph {
	data := readFile(s.path)
	if data == nil {
		return nil
	}

	graph, err := s.codec.Decode(data, s.pctx)
	if err != nil {
		return nil
	}
	if graph == nil {
		// A decodable blob is a hit even when it holds no modules.
		graph = domain.ModuleGraph{}
	}
	return graph
}

// Write replaces the stored graph.
func (s *ModuleStore) Write(graph domain.ModuleGraph) error {
	data, err := s.codec.Encode(graph)
	if err != nil {
		return zerr.Wrap(err, domain.ErrModuleCacheEncodeFailed.Error())
	}

	if err := atomicWriteFile(s.path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrModuleCacheWriteFailed.Error()), "path", s.path)
	}
	return nil
}

// Clear removes the stored graph.
func (s *ModuleStore) Clear() error {
	if err := removeFile(s.path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheClearFailed.Error()), "path", s.path)
	}
	return nil
}
