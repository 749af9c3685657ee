package report_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/audit-lab/imsaudit/pkg/domain/model"
	"github.com/audit-lab/imsaudit/pkg/domain/types"
	"github.com/audit-lab/imsaudit/pkg/service/report"
)

func testRisks() []model.Risk {
	return []model.Risk{
		{ID: "R1", Area: types.AreaQuality, Description: "a", Likelihood: 4, Severity: 4},     // 16 high
		{ID: "R2", Area: types.AreaQuality, Description: "b", Likelihood: 3, Severity: 3},     // 9 medium
		{ID: "R3", Area: types.AreaEnvironment, Description: "c", Likelihood: 2, Severity: 2}, // 4 low
		{ID: "R4", Area: types.AreaOHS, Description: "d", Likelihood: 5, Severity: 3},         // 15 high
		{ID: "R5", Area: types.AreaIMS, Description: "e", Likelihood: 1, Severity: 5},         // 5 low
	}
}

func TestBuildRiskStats(t *testing.T) {
	stats := report.BuildRiskStats(testRisks())

	gt.Value(t, stats.Total).Equal(5)
	gt.Value(t, stats.High).Equal(2)
	gt.Value(t, stats.Medium).Equal(1)
	gt.Value(t, stats.Low).Equal(2)
	gt.Value(t, stats.ByArea.Quality).Equal(2)
	gt.Value(t, stats.ByArea.Environment).Equal(1)
	gt.Value(t, stats.ByArea.OHS).Equal(1)
	gt.Value(t, stats.ByArea.IMS).Equal(1)

	empty := report.BuildRiskStats(nil)
	gt.Value(t, empty.Total).Equal(0)
	gt.Value(t, empty.High).Equal(0)
}

func TestBuildFindingStats(t *testing.T) {
	findings := []model.Finding{
		{ID: "F1", Type: types.FindingTypeNC, Status: types.FindingStatusOpen},
		{ID: "F2", Type: types.FindingTypeNC, Status: types.FindingStatusClosed},
		{ID: "F3", Type: types.FindingTypeOBS, Status: types.FindingStatusInProgress},
		{ID: "F4", Type: types.FindingTypeOFI, Status: types.FindingStatusOpen},
	}

	stats := report.BuildFindingStats(findings)
	gt.Value(t, stats.Total).Equal(4)
	gt.Value(t, stats.NC).Equal(2)
	gt.Value(t, stats.OBS).Equal(1)
	gt.Value(t, stats.OFI).Equal(1)
	gt.Value(t, stats.Open).Equal(2)
	gt.Value(t, stats.InProgress).Equal(1)
	gt.Value(t, stats.Closed).Equal(1)
}

func TestBuildKPIStats(t *testing.T) {
	t.Run("counts attainment with one decimal average", func(t *testing.T) {
		kpis := []model.KPI{
			{Name: "a", Value: 90, Target: 85},
			{Name: "b", Value: 50, Target: 90},
			{Name: "c", Value: 5, Target: 5},
		}

		stats := report.BuildKPIStats(kpis)
		gt.Value(t, stats.Total).Equal(3)
		gt.Value(t, stats.OnTarget).Equal(2)
		gt.Value(t, stats.BelowTarget).Equal(1)
		gt.Value(t, stats.AvgPerformance).Equal(66.7)
	})

	t.Run("empty collection is zero, not NaN", func(t *testing.T) {
		stats := report.BuildKPIStats(nil)
		gt.Value(t, stats.Total).Equal(0)
		gt.Value(t, stats.AvgPerformance).Equal(0.0)
	})
}

func TestHighPriorityRisks(t *testing.T) {
	high := report.HighPriorityRisks(testRisks())

	gt.Array(t, high).Length(2).Required()
	gt.Value(t, high[0].ID).Equal("R1") // score 16 before 15
	gt.Value(t, high[1].ID).Equal("R4")

	t.Run("ties keep register order", func(t *testing.T) {
		risks := []model.Risk{
			{ID: "A", Likelihood: 4, Severity: 4},
			{ID: "B", Likelihood: 4, Severity: 4},
			{ID: "C", Likelihood: 5, Severity: 5},
		}
		high := report.HighPriorityRisks(risks)
		gt.Array(t, high).Length(3).Required()
		gt.Value(t, high[0].ID).Equal("C")
		gt.Value(t, high[1].ID).Equal("A")
		gt.Value(t, high[2].ID).Equal("B")
	})
}

func TestAreaBreakdowns(t *testing.T) {
	breakdowns := report.AreaBreakdowns(testRisks())
	gt.Array(t, breakdowns).Length(4).Required()

	quality := breakdowns[0]
	gt.Value(t, quality.Area).Equal(types.AreaQuality)
	gt.Value(t, quality.Total).Equal(2)
	gt.Value(t, quality.High).Equal(1)
	gt.Value(t, quality.Medium).Equal(1)
	gt.Value(t, quality.AvgScore).Equal(12.5)

	t.Run("empty area has zero average", func(t *testing.T) {
		breakdowns := report.AreaBreakdowns(nil)
		gt.Array(t, breakdowns).Length(4).Required()
		for _, b := range breakdowns {
			gt.Value(t, b.Total).Equal(0)
			gt.Value(t, b.AvgScore).Equal(0.0)
		}
	})
}

func TestAverageScore(t *testing.T) {
	gt.Value(t, report.AverageScore(testRisks())).Equal(9.8) // (16+9+4+15+5)/5
	gt.Value(t, report.AverageScore(nil)).Equal(0.0)
}
