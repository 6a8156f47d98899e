// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// SnapshotStore persists the full ledger state under a fixed namespace key.
// Implementations treat the snapshot as an opaque whole: there is no partial
// write, which makes every engine operation a scoped transaction against the
// store.
type SnapshotStore interface {
	// Load retrieves the last saved snapshot. It returns
	// domainerror.ErrSnapshotNotFound when nothing was ever saved.
	Load(ctx context.Context) (*entity.Snapshot, error)

	// Save durably writes the snapshot, replacing any previous one.
	Save(ctx context.Context, snapshot *entity.Snapshot) error

	// Clear removes the persisted snapshot entirely (factory reset).
	Clear(ctx context.Context) error
}
