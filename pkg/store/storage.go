package store

import (
	"context"

	"github.com/patternkit/lattice/pkg/common"
)

// CatalogStorage is the read path to the component catalog. The core never
// writes: entities, tags and free text are created by the ingestion
// collaborator, and this interface only materializes an immutable snapshot
// of them for one query.
//
// Implementations must be safe for concurrent use; the core performs no
// locking of its own around storage reads.
type CatalogStorage interface {
	LoadSnapshot(ctx context.Context) (*common.Snapshot, error)
}
