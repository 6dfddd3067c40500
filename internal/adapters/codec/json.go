// Package codec implements the module graph serialization used by the module cache.
package codec

import (
	"encoding/json"
	"path/filepath"

	"go.trai.ch/modgraph/internal/core/domain"
	"go.trai.ch/modgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// FormatVersion is the version of the serialized graph layout.
// Blobs written with any other version fail to decode.
const FormatVersion = 1

var _ ports.ModuleCodec = (*JSONCodec)(nil)

// JSONCodec implements ports.ModuleCodec as indented JSON.
type JSONCodec struct{}

// NewJSONCodec creates a new JSONCodec.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

type graphDTO struct {
	Format  int         `json:"format"`
	Modules []moduleDTO `json:"modules"`
}

type moduleDTO struct {
	ID            string   `json:"id"`
	Kind          string   `json:"kind,omitzero"`
	ContentRoots  []string `json:"contentRoots,omitzero"`
	Dependencies  []string `json:"dependencies,omitzero"`
	JavaVersion   string   `json:"javaVersion,omitzero"`
	KotlinVersion string   `json:"kotlinVersion,omitzero"`
}

// Encode serializes the graph.
func (c *JSONCodec) Encode(graph domain.ModuleGraph) ([]byte, error) {
	dto := graphDTO{
		Format:  FormatVersion,
		Modules: make([]moduleDTO, len(graph)),
	}
	for i, m := range graph {
		dto.Modules[i] = moduleDTO{
			ID:            m.ID,
			Kind:          string(m.Kind),
			ContentRoots:  m.ContentRoots,
			Dependencies:  m.Dependencies,
			JavaVersion:   m.JavaVersion,
			KotlinVersion: m.KotlinVersion,
		}
	}

	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrModuleCacheEncodeFailed.Error())
	}
	return data, nil
}

// Decode deserializes a graph.
// Relative content roots are resolved against the project root of pctx, and
// JDK modules without content roots point at the project's JDK home.
func (c *JSONCodec) Decode(data []byte, pctx domain.ProjectContext) (domain.ModuleGraph, error) {
	var dto graphDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, domain.ErrModuleCacheDecodeFailed.Error())
	}
	if dto.Format != FormatVersion {
		return nil, zerr.With(domain.ErrModuleCacheDecodeFailed, "format", dto.Format)
	}

	graph := make(domain.ModuleGraph, 0, len(dto.Modules))
	for _, m := range dto.Modules {
		if m.ID == "" {
			return nil, zerr.Wrap(domain.ErrMissingModuleID, domain.ErrModuleCacheDecodeFailed.Error())
		}
		module := domain.Module{
			ID:            m.ID,
			Kind:          domain.NormalizeModuleKind(m.Kind),
			ContentRoots:  resolveRoots(m.ContentRoots, pctx.Root),
			Dependencies:  m.Dependencies,
			JavaVersion:   m.JavaVersion,
			KotlinVersion: m.KotlinVersion,
		}
		if module.Kind == domain.ModuleKindJDK && len(module.ContentRoots) == 0 && pctx.JDKHome != "" {
			module.ContentRoots = []string{pctx.JDKHome}
		}
		graph = append(graph, module)
	}
	return graph, nil
}

func resolveRoots(roots []string, base string) []string {
	if len(roots) == 0 {
		return nil
	}
	res := make([]string, len(roots))
	for i, r := range roots {
		if base != "" && !filepath.IsAbs(r) {
			r = filepath.Join(base, r)
		}
		res[i] = r
	}
	return res
}
