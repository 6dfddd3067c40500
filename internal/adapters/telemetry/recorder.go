// Package telemetry provides the progress sink backends report to, built on Progrock.
package telemetry

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/modgraph/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry using the progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder whose progress messages are written through logger.
func New(logger ports.Logger) *Recorder {
	return NewRecorder(NewConsole(logger))
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a new vertex.
// Vertices are keyed by name and by the vertex already in ctx, so nested
// operations with the same name stay distinct.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	key := name
	if parent, ok := ports.VertexFromContext(ctx); ok {
		if pv, ok := parent.(*Vertex); ok {
			key = pv.id.String() + "/" + name
		}
	}
	d := digest.FromString(key)
	vertex := &Vertex{id: d, vertex: r.rec.Vertex(d, name)}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
