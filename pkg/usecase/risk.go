package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/audit-lab/imsaudit/pkg/domain/model"
	"github.com/audit-lab/imsaudit/pkg/domain/types"
	"github.com/audit-lab/imsaudit/pkg/service/report"
)

// AddRisk appends a risk to the register. Risks without an id or
// description are rejected and the store is left unchanged. Duplicate ids
// are accepted; uniqueness is not enforced on insert.
func (uc *UseCases) AddRisk(ctx context.Context, risk model.Risk) error {
	if risk.ID == "" {
		return goerr.Wrap(ErrInvalidRisk, "risk id is required")
	}
	if risk.Description == "" {
		return goerr.Wrap(ErrInvalidRisk, "risk description is required")
	}
	risk.Area = risk.Area.Normalize()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.risks = append(model.CloneRisks(uc.risks), risk)
	uc.commitLocked(ctx, true)
	return nil
}

// RemoveRisk deletes every risk with the given id. Removal is by key, not
// identity, so duplicate ids are all removed together.
func (uc *UseCases) RemoveRisk(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	kept := make([]model.Risk, 0, len(uc.risks))
	for _, r := range uc.risks {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(uc.risks) {
		return goerr.Wrap(ErrRiskNotFound, "no risk with given id", goerr.V("id", id))
	}

	uc.risks = kept
	uc.commitLocked(ctx, true)
	return nil
}

// GetRisks returns the risk register, optionally filtered by area. An empty
// area returns every risk.
func (uc *UseCases) GetRisks(area types.Area) []model.Risk {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if area == "" {
		return model.CloneRisks(uc.risks)
	}
	var filtered []model.Risk
	for _, r := range uc.risks {
		if r.Area == area {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// RiskStats returns the severity and area histograms of the register
func (uc *UseCases) RiskStats() report.RiskStats {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return report.BuildRiskStats(uc.risks)
}

// HighPriorityRisks returns risks with a high score, sorted descending
func (uc *UseCases) HighPriorityRisks() []model.Risk {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return report.HighPriorityRisks(uc.risks)
}

// AreaBreakdowns returns the per-area severity summary
func (uc *UseCases) AreaBreakdowns() []report.AreaBreakdown {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return report.AreaBreakdowns(uc.risks)
}
