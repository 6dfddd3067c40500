package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ProjectContext carries the project handles needed by backends and the module codec.
// Stores pass it through without interpreting it.
type ProjectContext struct {
	// Root is the absolute project root directory.
	Root string
	// JDKHome is the JDK installation modules compile against, if known.
	JDKHome string
}

// Version combines backend fingerprints with the project settings that shape
// a resolved graph. A change to any of them yields a different version.
func (p ProjectContext) Version(fingerprints ...string) string {
	h := xxhash.New()
	for _, f := range fingerprints {
		_, _ = h.WriteString(f)
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.WriteString("jdk=" + p.JDKHome)
	return fmt.Sprintf("%016x", h.Sum64())
}
