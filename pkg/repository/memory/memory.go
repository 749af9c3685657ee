package memory

import (
	"context"
	"sync"

	"github.com/audit-lab/imsaudit/pkg/domain/interfaces"
	"github.com/audit-lab/imsaudit/pkg/domain/model"
)

// Memory is an in-memory snapshot repository for development and tests
type Memory struct {
	mu   sync.RWMutex
	snap *model.Snapshot
}

var _ interfaces.SnapshotRepository = &Memory{}

func New() *Memory {
	return &Memory{}
}

func (m *Memory) Load(ctx context.Context) (*model.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	return m.snap.Clone(), nil
}

func (m *Memory) Save(ctx context.Context, snapshot *model.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snap = snapshot.Clone()
	return nil
}

func (m *Memory) Close() error {
	return nil
}
