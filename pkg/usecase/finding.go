package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/audit-lab/imsaudit/pkg/domain/model"
	"github.com/audit-lab/imsaudit/pkg/domain/types"
	"github.com/audit-lab/imsaudit/pkg/service/report"
)

// UpdateFindingStatus replaces the status of the first finding with the
// given id, leaving every other field untouched.
func (uc *UseCases) UpdateFindingStatus(ctx context.Context, id string, status types.FindingStatus) error {
	if !status.IsValid() {
		return goerr.New("invalid finding status", goerr.V("status", status))
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	updated := model.CloneFindings(uc.findings)
	found := false
	for i := range updated {
		if updated[i].ID == id {
			updated[i].Status = status
			found = true
			break
		}
	}
	if !found {
		return goerr.Wrap(ErrFindingNotFound, "no finding with given id", goerr.V("id", id))
	}

	uc.findings = updated
	uc.commitLocked(ctx, true)
	return nil
}

// GetFindings returns the findings list, optionally filtered by status. An
// empty status returns every finding.
func (uc *UseCases) GetFindings(status types.FindingStatus) []model.Finding {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if status == "" {
		return model.CloneFindings(uc.findings)
	}
	var filtered []model.Finding
	for _, f := range uc.findings {
		if f.Status == status {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// FindingStats returns the type and status histograms of the findings list
func (uc *UseCases) FindingStats() report.FindingStats {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return report.BuildFindingStats(uc.findings)
}
