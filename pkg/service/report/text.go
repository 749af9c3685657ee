package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/audit-lab/imsaudit/pkg/domain/model"
)

// WriteText writes the plain-text formatted summary report
func WriteText(w io.Writer, snap *model.Snapshot, auditPlan []model.AuditPlanEntry, now time.Time) error {
	riskStats := BuildRiskStats(snap.Risks)
	findingStats := BuildFindingStats(snap.Findings)
	kpiStats := BuildKPIStats(snap.KPIs)

	var b strings.Builder

	b.WriteString("IMS AUDIT MANAGEMENT SYSTEM - COMPREHENSIVE REPORT\n")
	fmt.Fprintf(&b, "Generated: %s\n", now.Format("2006-01-02 15:04:05"))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	b.WriteString("EXECUTIVE SUMMARY\n")
	b.WriteString("-----------------\n")
	fmt.Fprintf(&b, "Total Risks: %d (%d High, %d Medium, %d Low)\n",
		riskStats.Total, riskStats.High, riskStats.Medium, riskStats.Low)
	fmt.Fprintf(&b, "Total Findings: %d (%d Open, %d In Progress, %d Closed)\n",
		findingStats.Total, findingStats.Open, findingStats.InProgress, findingStats.Closed)
	fmt.Fprintf(&b, "Scheduled Audits: %d\n", len(auditPlan))
	fmt.Fprintf(&b, "KPI Performance: %.1f%% (%d/%d targets met)\n\n",
		kpiStats.AvgPerformance, kpiStats.OnTarget, kpiStats.Total)

	b.WriteString("RISK DETAILS\n")
	b.WriteString("------------\n")
	for i, r := range snap.Risks {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, r.Area, r.Description)
		fmt.Fprintf(&b, "   Risk Score: %d (L:%d x I:%d)\n", r.Score(), r.Likelihood, r.Severity)
		fmt.Fprintf(&b, "   Owner: %s\n", r.Owner)
		fmt.Fprintf(&b, "   Controls: %s\n", r.Controls)
	}
	b.WriteString("\n")

	b.WriteString("FINDINGS DETAILS\n")
	b.WriteString("----------------\n")
	for i, f := range snap.Findings {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, f.Type, f.Description)
		fmt.Fprintf(&b, "   Status: %s\n", f.Status)
		fmt.Fprintf(&b, "   Responsible: %s\n", f.Responsible)
		if f.Action != "" {
			fmt.Fprintf(&b, "   Action: %s\n", f.Action)
		}
	}
	b.WriteString("\n")

	b.WriteString("AUDIT PLAN\n")
	b.WriteString("----------\n")
	for i, a := range auditPlan {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, a.Process, a.PlannedDate)
		fmt.Fprintf(&b, "   Auditor: %s\n", a.Auditor)
		fmt.Fprintf(&b, "   Scope: %s\n", a.RiskFocus)
	}
	b.WriteString("\n")

	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString("End of Report\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return goerr.Wrap(err, "failed to write text report")
	}
	return nil
}
