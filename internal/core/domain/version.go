package domain

// VersionRecord describes what the cached module graph was computed from,
// and by which backend.
type VersionRecord struct {
	Version     string `json:"version"`
	BackendName string `json:"buildSystemName"`
}

// VersionFor returns the recorded version if the record belongs to the named backend.
// It returns an empty string for a nil record or a record written by another backend.
func (r *VersionRecord) VersionFor(backendName string) string {
	if r == nil || r.BackendName != backendName {
		return ""
	}
	return r.Version
}

// ResolveResult is a freshly computed module graph.
type ResolveResult struct {
	// Modules is the computed graph.
	Modules ModuleGraph
	// Metadata is the version fingerprint to persist with the graph.
	// An empty value marks the result as not cacheable.
	Metadata string
}

// Cacheable reports whether the result carries a version fingerprint.
func (r *ResolveResult) Cacheable() bool {
	return r.Metadata != ""
}
