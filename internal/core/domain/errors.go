package domain

import "go.trai.ch/zerr"

var (
	// ErrNoSuitableBuildSystem is returned when no backend could produce modules for a project root.
	ErrNoSuitableBuildSystem = zerr.New("no suitable build system found")

	// ErrVersionRecordMarshalFailed is returned when the version record cannot be serialized.
	ErrVersionRecordMarshalFailed = zerr.New("failed to marshal version record")

	// ErrVersionRecordWriteFailed is returned when the version record cannot be written.
	ErrVersionRecordWriteFailed = zerr.New("failed to write version record")

	// ErrModuleCacheEncodeFailed is returned when the module graph cannot be encoded.
	ErrModuleCacheEncodeFailed = zerr.New("failed to encode module graph")

	// ErrModuleCacheDecodeFailed is returned when the module graph cannot be decoded.
	ErrModuleCacheDecodeFailed = zerr.New("failed to decode module graph")

	// ErrModuleCacheWriteFailed is returned when the module graph cannot be written.
	ErrModuleCacheWriteFailed = zerr.New("failed to write module cache")

	// ErrCacheClearFailed is returned when a persisted cache file cannot be removed.
	ErrCacheClearFailed = zerr.New("failed to clear cache file")

	// ErrCacheDirCreateFailed is returned when the cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned when the config file declares a schema version this build cannot read.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")
	// ErrUnknownBackend is returned when the configuration names a backend that does not exist.
	ErrUnknownBackend = zerr.New("unknown build system backend")

	// ErrDuplicateBackend is returned when the configuration lists a backend more than once.
	ErrDuplicateBackend = zerr.New("duplicate build system backend")

	// ErrManifestReadFailed is returned when a module manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read module manifest")

	// ErrManifestParseFailed is returned when a module manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse module manifest")

	// ErrDuplicateModule is returned when two modules share the same ID.
	ErrDuplicateModule = zerr.New("duplicate module id")

	// ErrMissingModuleID is returned when a module is declared without an ID.
	ErrMissingModuleID = zerr.New("missing module id")

	// ErrUnknownDependency is returned when a module depends on a module that is not declared.
	ErrUnknownDependency = zerr.New("unknown module dependency")

	// ErrGradleScriptReadFailed is returned when a Gradle script cannot be read.
	ErrGradleScriptReadFailed = zerr.New("failed to read gradle script")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrWriteHashFailed is returned when writing the hash to the digest fails.
	ErrWriteHashFailed = zerr.New("failed to write hash to digest")
)
