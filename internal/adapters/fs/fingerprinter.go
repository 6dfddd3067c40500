package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/modgraph/internal/core/domain"
	"go.trai.ch/modgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Fingerprinter = (*Fingerprinter)(nil)

// Fingerprinter computes XXHash based version strings over file contents.
type Fingerprinter struct {
	walker *Walker
}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter(walker *Walker) *Fingerprinter {
	return &Fingerprinter{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (f *Fingerprinter) ComputeFileHash(path string) (uint64, error) {
	file, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}

// FingerprintFiles hashes the path and content of each file, in the given order.
func (f *Fingerprinter) FingerprintFiles(paths []string) (string, error) {
	hasher := xxhash.New()
	for _, path := range paths {
		if err := f.hashFile(path, "", hasher); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// FingerprintTree hashes every file under root accepted by match.
// Files are visited in sorted order and identified by their path relative to
// root, so the result does not depend on where the project is checked out.
func (f *Fingerprinter) FingerprintTree(root string, ignores []string, match func(path string) bool) (string, error) {
	var files []string
	for path := range f.walker.WalkFiles(root, ignores) {
		if match == nil || match(path) {
			files = append(files, path)
		}
	}
	slices.Sort(files)

	hasher := xxhash.New()
	for _, path := range files {
		if err := f.hashFile(path, root, hasher); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func (f *Fingerprinter) hashFile(path, root string, mainHasher io.Writer) error {
	name := path
	if root != "" {
		if rel, err := filepath.Rel(root, path); err == nil {
			name = filepath.ToSlash(rel)
		}
	}
	_, _ = mainHasher.Write([]byte(name))
	_, _ = mainHasher.Write([]byte{0})

	hash, err := f.ComputeFileHash(path)
	if err != nil {
		return err
	}

	if err := binary.Write(mainHasher, binary.LittleEndian, hash); err != nil {
		return zerr.Wrap(err, domain.ErrWriteHashFailed.Error())
	}
	return nil
}
