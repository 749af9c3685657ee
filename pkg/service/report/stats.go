// Package report provides read-only aggregate queries over current audit
// state and the export formats consumed by presentation layers. Nothing in
// this package mutates or persists state.
package report

import (
	"math"
	"sort"

	"github.com/audit-lab/imsaudit/pkg/domain/model"
	"github.com/audit-lab/imsaudit/pkg/domain/types"
	"github.com/audit-lab/imsaudit/pkg/service/metrics"
)

// RiskStats is the severity and area histogram of the risk register
type RiskStats struct {
	Total  int        `json:"total"`
	High   int        `json:"high"`
	Medium int        `json:"medium"`
	Low    int        `json:"low"`
	ByArea AreaCounts `json:"byArea"`
}

// AreaCounts holds per-area risk counts for the four fixed areas
type AreaCounts struct {
	Quality     int `json:"quality"`
	Environment int `json:"environment"`
	OHS         int `json:"ohs"`
	IMS         int `json:"ims"`
}

// FindingStats is the type and status histogram of the findings list
type FindingStats struct {
	Total      int `json:"total"`
	NC         int `json:"nc"`
	OBS        int `json:"obs"`
	OFI        int `json:"ofi"`
	Open       int `json:"open"`
	InProgress int `json:"inProgress"`
	Closed     int `json:"closed"`
}

// KPIStats summarizes KPI target attainment
type KPIStats struct {
	Total       int `json:"total"`
	OnTarget    int `json:"onTarget"`
	BelowTarget int `json:"belowTarget"`

	// AvgPerformance is the on-target share in percent, one decimal place.
	// Zero when there are no KPIs.
	AvgPerformance float64 `json:"avgPerformance"`
}

// AreaBreakdown is the per-area severity summary used by the area report
type AreaBreakdown struct {
	Area     types.Area `json:"area"`
	Total    int        `json:"total"`
	High     int        `json:"high"`
	Medium   int        `json:"medium"`
	Low      int        `json:"low"`
	AvgScore float64    `json:"avgScore"`
}

// BuildRiskStats computes the severity and area histograms
func BuildRiskStats(risks []model.Risk) RiskStats {
	stats := RiskStats{Total: len(risks)}
	for _, r := range risks {
		switch metrics.Classify(r.Score()) {
		case types.RiskLevelHigh:
			stats.High++
		case types.RiskLevelMedium:
			stats.Medium++
		default:
			stats.Low++
		}

		switch r.Area {
		case types.AreaQuality:
			stats.ByArea.Quality++
		case types.AreaEnvironment:
			stats.ByArea.Environment++
		case types.AreaOHS:
			stats.ByArea.OHS++
		case types.AreaIMS:
			stats.ByArea.IMS++
		}
	}
	return stats
}

// BuildFindingStats computes the type and status histograms
func BuildFindingStats(findings []model.Finding) FindingStats {
	stats := FindingStats{Total: len(findings)}
	for _, f := range findings {
		switch f.Type {
		case types.FindingTypeNC:
			stats.NC++
		case types.FindingTypeOBS:
			stats.OBS++
		case types.FindingTypeOFI:
			stats.OFI++
		}

		switch f.Status {
		case types.FindingStatusOpen:
			stats.Open++
		case types.FindingStatusInProgress:
			stats.InProgress++
		case types.FindingStatusClosed:
			stats.Closed++
		}
	}
	return stats
}

// BuildKPIStats computes target attainment over the KPI collection. An empty
// collection yields zero performance rather than a division by zero.
func BuildKPIStats(kpis []model.KPI) KPIStats {
	stats := KPIStats{Total: len(kpis)}
	for _, k := range kpis {
		if k.OnTarget() {
			stats.OnTarget++
		} else {
			stats.BelowTarget++
		}
	}
	if stats.Total > 0 {
		stats.AvgPerformance = round1(float64(stats.OnTarget) / float64(stats.Total) * 100)
	}
	return stats
}

// HighPriorityRisks returns all risks with a high score, sorted descending
// by score. Ties keep their original order.
func HighPriorityRisks(risks []model.Risk) []model.Risk {
	var high []model.Risk
	for _, r := range risks {
		if r.Score() >= metrics.HighRiskThreshold {
			high = append(high, r)
		}
	}
	sort.SliceStable(high, func(i, j int) bool {
		return high[i].Score() > high[j].Score()
	})
	return high
}

// AreaBreakdowns returns the per-area severity summary for the four fixed
// areas. Areas without risks report a zero average score.
func AreaBreakdowns(risks []model.Risk) []AreaBreakdown {
	breakdowns := make([]AreaBreakdown, 0, len(types.AllAreas()))
	for _, area := range types.AllAreas() {
		b := AreaBreakdown{Area: area}
		var sum int
		for _, r := range risks {
			if r.Area != area {
				continue
			}
			b.Total++
			sum += r.Score()
			switch metrics.Classify(r.Score()) {
			case types.RiskLevelHigh:
				b.High++
			case types.RiskLevelMedium:
				b.Medium++
			default:
				b.Low++
			}
		}
		if b.Total > 0 {
			b.AvgScore = round1(float64(sum) / float64(b.Total))
		}
		breakdowns = append(breakdowns, b)
	}
	return breakdowns
}

// AverageScore returns the mean score over the whole register, zero when
// the register is empty
func AverageScore(risks []model.Risk) float64 {
	if len(risks) == 0 {
		return 0
	}
	var sum int
	for _, r := range risks {
		sum += r.Score()
	}
	return round1(float64(sum) / float64(len(risks)))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
