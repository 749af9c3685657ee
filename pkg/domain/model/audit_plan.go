package model

// AuditPlanEntry represents one scheduled audit in the risk-based audit plan.
// The audit plan is read-only seed data and is not part of the persisted
// snapshot.
type AuditPlanEntry struct {
	Process     string `json:"process"`
	Standards   string `json:"standards"`
	Method      string `json:"method"`
	PlannedDate string `json:"plannedDate"`
	Auditor     string `json:"auditor"`
	RiskFocus   string `json:"riskFocus"`
	Docs        string `json:"docs"`
}

// CloneAuditPlan returns a copy of an audit plan slice
func CloneAuditPlan(plan []AuditPlanEntry) []AuditPlanEntry {
	if plan == nil {
		return nil
	}
	cloned := make([]AuditPlanEntry, len(plan))
	copy(cloned, plan)
	return cloned
}
