package domain

const (
	// BackendFileBased is the name of the manifest-driven backend.
	BackendFileBased = "FileBased"
	// BackendGradle is the name of the Gradle backend.
	BackendGradle = "Gradle"
)

// DefaultBackendOrder is the backend priority used when the configuration does not set one.
// An explicit manifest is the user's own description of the project, so it wins over Gradle.
func DefaultBackendOrder() []string {
	return []string{BackendFileBased, BackendGradle}
}

// Config holds the per-project settings read from modgraph.yaml.
type Config struct {
	// CacheDir overrides the base directory persisted state lives under.
	CacheDir string
	// Backends is the backend priority order.
	Backends []string
	// Ignore lists file name patterns skipped while fingerprinting.
	Ignore []string
	// JDKHome is threaded into the ProjectContext.
	JDKHome string
}

// DefaultConfig returns the configuration used when no modgraph.yaml exists.
func DefaultConfig() *Config {
	return &Config{
		Backends: DefaultBackendOrder(),
	}
}
