// Package domain contains the core domain models for module resolution.
package domain

// ModuleKind classifies a module in the resolved graph.
type ModuleKind string

const (
	// ModuleKindSource is a module whose sources live in the project.
	ModuleKindSource ModuleKind = "source"
	// ModuleKindLibrary is a binary dependency such as a jar.
	ModuleKindLibrary ModuleKind = "library"
	// ModuleKindJDK is the JDK the project compiles against.
	ModuleKindJDK ModuleKind = "jdk"
)

// NormalizeModuleKind converts a string to a ModuleKind, defaulting to source if unknown.
func NormalizeModuleKind(s string) ModuleKind {
	switch ModuleKind(s) {
	case ModuleKindLibrary:
		return ModuleKindLibrary
	case ModuleKindJDK:
		return ModuleKindJDK
	default:
		return ModuleKindSource
	}
}

// Module is a single build unit of a project.
type Module struct {
	ID            string
	Kind          ModuleKind
	ContentRoots  []string
	Dependencies  []string
	JavaVersion   string
	KotlinVersion string
}

// ModuleGraph is the ordered set of modules resolved for a project root.
// A nil graph means "no graph"; an empty non-nil graph is a valid result.
type ModuleGraph []Module

// Find returns the module with the given ID.
func (g ModuleGraph) Find(id string) (Module, bool) {
	for _, m := range g {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

// IDs returns the module IDs in graph order.
func (g ModuleGraph) IDs() []string {
	ids := make([]string, len(g))
	for i, m := range g {
		ids[i] = m.ID
	}
	return ids
}
