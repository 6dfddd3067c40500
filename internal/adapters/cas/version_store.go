package cas

import (
	"encoding/json"
	"path/filepath"

	"go.trai.ch/modgraph/internal/core/domain"
	"go.trai.ch/modgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VersionStore = (*VersionStore)(nil)

// VersionStore implements ports.VersionStore using a small JSON file.
type VersionStore struct {
	path string
}

// NewVersionStore creates a VersionStore for the record inside cacheDir.
func NewVersionStore(cacheDir string) *VersionStore {
	return &VersionStore{path: domain.VersionFilePath(filepath.Clean(cacheDir))}
}

// Path returns the location of the record file.
func (s *VersionStore) Path() string {
	return s.path
}

// Read returns the stored record, or nil if it is absent or corrupt.
func (s *VersionStore) Read() *domain.VersionRecord {
	data := readFile(s.path)
	if data == nil {
		return nil
	}

	var record domain.VersionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil
	}
	return &record
}

// Write replaces the stored record.
func (s *VersionStore) Write(record domain.VersionRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return zerr.Wrap(err, domain.ErrVersionRecordMarshalFailed.Error())
	}

	if err := atomicWriteFile(s.path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrVersionRecordWriteFailed.Error()), "path", s.path)
	}
	return nil
}

// Clear removes the stored record.
func (s *VersionStore) Clear() error {
	if err := removeFile(s.path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheClearFailed.Error()), "path", s.path)
	}
	return nil
}
