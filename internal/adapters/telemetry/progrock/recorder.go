// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"errors"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/tabicons/internal/core/domain"
	"go.trai.ch/tabicons/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry using the progrock library. Each icon
// becomes one vertex keyed by the digest of its name. Status updates fan out
// to every attached writer.
type Recorder struct {
	sinks *fanout
	rec   *progrock.Recorder
}

// New creates a new Recorder with no attached writers.
func New() *Recorder {
	return NewRecorder()
}

// NewRecorder creates a new Recorder writing to the given writers.
func NewRecorder(writers ...progrock.Writer) *Recorder {
	sinks := &fanout{writers: writers}
	return &Recorder{
		sinks: sinks,
		rec:   progrock.NewRecorder(sinks),
	}
}

// Journal attaches a JSON lines journal at path. Updates recorded from now on
// are appended to it until Close.
func (r *Recorder) Journal(path string) error {
	w, err := progrock.CreateJournal(path)
	if err != nil {
		return errors.Join(domain.ErrJournalCreateFailed, zerr.With(err, "path", path))
	}
	r.sinks.add(w)
	return nil
}

// Record starts recording a new vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := &Vertex{vertex: r.rec.Vertex(digest.FromString(name), name)}
	return ports.ContextWithVertex(ctx, v), v
}

// Close flushes and closes every attached writer.
func (r *Recorder) Close() error {
	return r.rec.Close()
}

// fanout is a progrock.Writer whose set of writers can grow after the
// recorder has been created.
type fanout struct {
	mu      sync.Mutex
	writers progrock.MultiWriter
}

func (f *fanout) add(w progrock.Writer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writers = append(f.writers, w)
}

func (f *fanout) WriteStatus(update *progrock.StatusUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writers.WriteStatus(update)
}

func (f *fanout) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	err := f.writers.Close()
	f.writers = nil
	return err
}
