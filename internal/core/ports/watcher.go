package ports

import (
	"context"
	"iter"
)

//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks

// Watcher defines the interface for watching a directory for file changes.
type Watcher interface {
	// Start begins watching dir. Watching ends when ctx is done or Stop is called.
	Start(ctx context.Context, dir string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Changes returns an iterator of debounced batches of changed paths.
	// Each batch is sorted and holds every path written or created within one
	// debounce window.
	Changes() iter.Seq[[]string]
}
