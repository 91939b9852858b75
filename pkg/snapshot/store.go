package snapshot

import (
	"context"

	"github.com/loom-ui/loom/internal/errors"
)

// ErrNotFound is returned when a snapshot ID has no stored entry.
var ErrNotFound = errors.New("E060")

// Store persists snapshots. Implementations must be safe for
// concurrent use.
type Store interface {
	// Save persists the snapshot under its ID, overwriting any
	// previous entry with the same ID.
	Save(ctx context.Context, snap *Snapshot) error

	// Load returns the snapshot stored under id, or ErrNotFound.
	Load(ctx context.Context, id string) (*Snapshot, error)

	// List returns stored snapshots ordered by creation time,
	// newest first.
	List(ctx context.Context) ([]*Snapshot, error)

	// Delete removes the snapshot stored under id. Missing IDs are
	// not an error.
	Delete(ctx context.Context, id string) error
}
