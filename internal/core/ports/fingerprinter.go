package ports

// Fingerprinter computes content fingerprints used as backend versions.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// FingerprintFiles hashes the given files, in order, into a single version string.
	FingerprintFiles(paths []string) (string, error)

	// FingerprintTree hashes every file under root accepted by match.
	// Directories whose names match ignores are skipped.
	FingerprintTree(root string, ignores []string, match func(path string) bool) (string, error)
}
