package ports

import "go.trai.ch/modgraph/internal/core/domain"

// VersionStore persists the version record of a project root.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type VersionStore interface {
	// Read returns the stored record.
	// Returns nil if the record is absent, unreadable or corrupt.
	Read() *domain.VersionRecord

	// Write replaces the stored record.
	Write(record domain.VersionRecord) error

	// Clear removes the stored record. It is a no-op if nothing is stored.
	Clear() error
}

// ModuleStore persists the module graph of a project root.
type ModuleStore interface {
	// Read returns the stored graph.
	// Returns nil if the graph is absent or cannot be decoded.
	Read() domain.ModuleGraph

	// Write replaces the stored graph.
	Write(graph domain.ModuleGraph) error

	// Clear removes the stored graph. It is a no-op if nothing is stored.
	Clear() error
}
