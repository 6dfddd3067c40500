package domain

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
)

const (
	// AppDirName is the name of the per-user cache directory.
	AppDirName = "modgraph"

	// VersionFileName is the name of the persisted version record.
	VersionFileName = "buildsystem-version.json"

	// ModulesFileName is the name of the persisted module graph.
	ModulesFileName = "buildsystem.json"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "modgraph.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCacheBase returns the base directory holding one cache directory per project root.
// It falls back to the system temp directory when no user cache directory is available.
func DefaultCacheBase() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, AppDirName)
}

// CachePath derives the cache directory for a project root under base.
// The directory name keeps the root's base name for readability and appends
// a hash of the full root path so distinct roots never collide.
func CachePath(base, root string) string {
	clean := filepath.Clean(root)
	name := filepath.Base(clean)
	if name == string(filepath.Separator) || name == "." {
		name = "root"
	}
	return filepath.Join(base, fmt.Sprintf("%s-%016x", name, xxhash.Sum64String(clean)))
}

// VersionFilePath returns the path of the version record inside a cache directory.
func VersionFilePath(cacheDir string) string {
	return filepath.Join(cacheDir, VersionFileName)
}

// ModulesFilePath returns the path of the module graph inside a cache directory.
func ModulesFilePath(cacheDir string) string {
	return filepath.Join(cacheDir, ModulesFileName)
}
