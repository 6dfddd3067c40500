// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/modgraph/internal/core/domain"
)

// Backend is a build-system strategy that can resolve a project's module graph.
//
//go:generate go run go.uber.org/mock/mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks
type Backend interface {
	// Name returns the stable identifier used to tag persisted cache entries.
	Name() string

	// MarkerFiles returns the paths whose existence (any one) signals that
	// this backend applies to the project root.
	MarkerFiles() []string

	// ResolveIfNeeded computes the module graph.
	//
	// cachedVersion is the fingerprint persisted for this backend, or empty
	// when there is no usable cache. A nil result with a nil error means
	// "nothing changed since cachedVersion" and is only legal when
	// cachedVersion is non-empty.
	ResolveIfNeeded(ctx context.Context, cachedVersion string) (*domain.ResolveResult, error)
}
