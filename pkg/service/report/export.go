package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/audit-lab/imsaudit/pkg/domain/model"
)

// Summary is the executive summary block of the analytics report
type Summary struct {
	TotalRisks     int    `json:"totalRisks"`
	HighRisks      int    `json:"highRisks"`
	TotalFindings  int    `json:"totalFindings"`
	OpenFindings   int    `json:"openFindings"`
	TotalAudits    int    `json:"totalAudits"`
	KPIPerformance string `json:"kpiPerformance"`
}

// Report is the full analytics report aggregate
type Report struct {
	GeneratedAt       time.Time              `json:"generatedAt"`
	Summary           Summary                `json:"summary"`
	RiskStatistics    RiskStats              `json:"riskStatistics"`
	FindingStatistics FindingStats           `json:"findingStatistics"`
	KPIStatistics     KPIStats               `json:"kpiStatistics"`
	DetailedRisks     []model.Risk           `json:"detailedRisks"`
	DetailedFindings  []model.Finding        `json:"detailedFindings"`
	AuditPlan         []model.AuditPlanEntry `json:"auditPlan"`
	KPIs              []KPIDetail            `json:"kpis"`
}

// KPIDetail is a KPI with its formatted performance percentage
type KPIDetail struct {
	model.KPI
	Performance string `json:"performance"`
}

// FormatPerformance renders value over target as a percentage, or "N/A"
// when the target is zero
func FormatPerformance(k model.KPI) string {
	perf, ok := k.Performance()
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", perf)
}

func kpiDetails(kpis []model.KPI) []KPIDetail {
	details := make([]KPIDetail, 0, len(kpis))
	for _, k := range kpis {
		details = append(details, KPIDetail{KPI: k, Performance: FormatPerformance(k)})
	}
	return details
}

// Build assembles the full analytics report from current state
func Build(snap *model.Snapshot, auditPlan []model.AuditPlanEntry, now time.Time) *Report {
	riskStats := BuildRiskStats(snap.Risks)
	findingStats := BuildFindingStats(snap.Findings)
	kpiStats := BuildKPIStats(snap.KPIs)

	return &Report{
		GeneratedAt: now,
		Summary: Summary{
			TotalRisks:     riskStats.Total,
			HighRisks:      riskStats.High,
			TotalFindings:  findingStats.Total,
			OpenFindings:   findingStats.Open,
			TotalAudits:    len(auditPlan),
			KPIPerformance: fmt.Sprintf("%.1f%%", kpiStats.AvgPerformance),
		},
		RiskStatistics:    riskStats,
		FindingStatistics: findingStats,
		KPIStatistics:     kpiStats,
		DetailedRisks:     snap.Risks,
		DetailedFindings:  snap.Findings,
		AuditPlan:         auditPlan,
		KPIs:              kpiDetails(snap.KPIs),
	}
}

// WriteJSON writes a value as indented JSON
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to encode JSON")
	}
	return nil
}

// riskCSVHeader is the fixed column set of the risk CSV export
var riskCSVHeader = []string{
	"ID", "Area", "Description", "Cause", "Impact",
	"Likelihood", "Impact Score", "Risk Score", "Owner", "Controls",
}

// WriteRisksCSV writes the risk register in the fixed 10-column export
// schema. The risk score column is derived at write time.
func WriteRisksCSV(w io.Writer, risks []model.Risk) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(riskCSVHeader); err != nil {
		return goerr.Wrap(err, "failed to write CSV header")
	}
	for _, r := range risks {
		record := []string{
			r.ID,
			r.Area.String(),
			r.Description,
			r.Cause,
			r.Impact,
			strconv.Itoa(r.Likelihood),
			strconv.Itoa(r.Severity),
			strconv.Itoa(r.Score()),
			r.Owner,
			r.Controls,
		}
		if err := cw.Write(record); err != nil {
			return goerr.Wrap(err, "failed to write CSV row", goerr.V("id", r.ID))
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush CSV")
	}
	return nil
}
