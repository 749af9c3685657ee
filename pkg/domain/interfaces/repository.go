package interfaces

import (
	"context"

	"github.com/audit-lab/imsaudit/pkg/domain/model"
)

// SnapshotRepository defines the persistence port for the audit state.
// One snapshot is kept under a single fixed key; Save overwrites it on
// every state change.
type SnapshotRepository interface {
	// Load reads the persisted snapshot. It returns (nil, nil) when no
	// snapshot has been saved yet.
	Load(ctx context.Context) (*model.Snapshot, error)

	// Save serializes and overwrites the persisted snapshot
	Save(ctx context.Context, snapshot *model.Snapshot) error

	// Close releases any resources held by the repository
	Close() error
}
