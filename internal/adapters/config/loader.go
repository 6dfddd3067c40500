// Package config provides the project configuration loader.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/modgraph/internal/core/domain"
	"go.trai.ch/modgraph/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file in the project root.
type Loader struct {
	Filename string
	Logger   ports.Logger
}

// NewLoader creates a new Loader reading modgraph.yaml.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Filename: domain.ConfigFileName, Logger: log}
}

// Load reads the configuration of the given project root.
// A missing file yields domain.DefaultConfig.
func (l *Loader) Load(root string) (*domain.Config, error) {
	path := filepath.Join(root, l.Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the project root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Configfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if file.Version != "" && file.Version != SchemaVersion {
		return nil, zerr.With(zerr.With(domain.ErrUnsupportedConfigVersion, "version", file.Version), "path", path)
	}

	cfg := domain.DefaultConfig()
	cfg.Ignore = file.Ignore
	cfg.JDKHome = file.JDKHome

	if file.CacheDir != "" {
		cfg.CacheDir = file.CacheDir
		if !filepath.IsAbs(cfg.CacheDir) {
			cfg.CacheDir = filepath.Join(root, cfg.CacheDir)
		}
	}

	if len(file.Backends) > 0 {
		backends, err := validateBackends(file.Backends)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		cfg.Backends = backends
	}

	if l.Logger != nil {
		l.Logger.Info("loaded configuration from " + path)
	}
	return cfg, nil
}

func validateBackends(names []string) ([]string, error) {
	known := domain.DefaultBackendOrder()
	res := make([]string, 0, len(names))
	for _, name := range names {
		if !slices.Contains(known, name) {
			return nil, zerr.With(domain.ErrUnknownBackend, "backend", name)
		}
		if slices.Contains(res, name) {
			return nil, zerr.With(domain.ErrDuplicateBackend, "backend", name)
		}
		res = append(res, name)
	}
	return res, nil
}
