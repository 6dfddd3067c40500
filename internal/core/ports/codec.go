package ports

import "go.trai.ch/modgraph/internal/core/domain"

// ModuleCodec serializes module graphs for the module cache.
//
//go:generate go run go.uber.org/mock/mockgen -source=codec.go -destination=mocks/mock_codec.go -package=mocks
type ModuleCodec interface {
	// Encode serializes the graph.
	Encode(graph domain.ModuleGraph) ([]byte, error)

	// Decode deserializes a graph. It fails on malformed input.
	Decode(data []byte, pctx domain.ProjectContext) (domain.ModuleGraph, error)
}
