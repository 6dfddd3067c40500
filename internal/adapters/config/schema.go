package config

// SchemaVersion is the modgraph.yaml schema version this loader reads.
const SchemaVersion = "1"

// Configfile represents the structure of the modgraph.yaml configuration file.
type Configfile struct {
	Version  string   `yaml:"version"`
	CacheDir string   `yaml:"cacheDir"`
	Backends []string `yaml:"backends"`
	Ignore   []string `yaml:"ignore"`
	JDKHome  string   `yaml:"jdkHome"`
}
