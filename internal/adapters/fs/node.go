package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tabicons/internal/core/ports"
)

const (
	// WriterNodeID is the unique identifier for the image writer Graft node.
	WriterNodeID graft.ID = "adapter.image_writer"
	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.hasher"
	// VerifierNodeID is the unique identifier for the output verifier Graft node.
	VerifierNodeID graft.ID = "adapter.output_verifier"
)

func init() {
	graft.Register(graft.Node[ports.ImageWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ImageWriter, error) {
			return NewPNGWriter(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.OutputVerifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OutputVerifier, error) {
			return NewVerifier(), nil
		},
	})
}
