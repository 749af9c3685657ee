package usecase

import (
	"github.com/audit-lab/imsaudit/pkg/domain/model"
	"github.com/audit-lab/imsaudit/pkg/service/report"
)

// GetKPIs returns the current auto-generated KPI set
func (uc *UseCases) GetKPIs() []model.KPI {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return model.CloneKPIs(uc.kpis)
}

// KPIStats returns target attainment over the KPI set
func (uc *UseCases) KPIStats() report.KPIStats {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return report.BuildKPIStats(uc.kpis)
}
