package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/audit-lab/imsaudit/pkg/domain/model"
	"github.com/audit-lab/imsaudit/pkg/domain/types"
)

// UpdateRoadmapStatus replaces the status of the roadmap action at the
// given position. Roadmap changes do not affect the KPI set but are
// persisted like any other state change.
func (uc *UseCases) UpdateRoadmapStatus(ctx context.Context, index int, status types.RoadmapStatus) error {
	if !status.IsValid() {
		return goerr.New("invalid roadmap status", goerr.V("status", status))
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if index < 0 || index >= len(uc.roadmap) {
		return goerr.Wrap(ErrRoadmapOutOfRange, "no roadmap action at index",
			goerr.V("index", index), goerr.V("size", len(uc.roadmap)))
	}

	updated := model.CloneRoadmap(uc.roadmap)
	updated[index].Status = status

	uc.roadmap = updated
	uc.commitLocked(ctx, false)
	return nil
}

// GetRoadmap returns the improvement roadmap
func (uc *UseCases) GetRoadmap() []model.RoadmapAction {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return model.CloneRoadmap(uc.roadmap)
}
