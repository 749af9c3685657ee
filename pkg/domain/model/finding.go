package model

import "github.com/audit-lab/imsaudit/pkg/domain/types"

// Finding represents an audit finding and its corrective action tracking.
// RiskLink is a soft reference to a Risk.ID and is not validated.
type Finding struct {
	ID          string              `json:"id"`
	Type        types.FindingType   `json:"type"`
	Standard    string              `json:"standard"`
	Description string              `json:"description"`
	Area        types.Area          `json:"area"`
	RiskLink    string              `json:"riskLink"`
	Action      string              `json:"action"`
	Status      types.FindingStatus `json:"status"`
	Responsible string              `json:"responsible"`
	DueDate     string              `json:"dueDate"`
}

// CloneFindings returns a copy of a finding slice
func CloneFindings(findings []Finding) []Finding {
	if findings == nil {
		return nil
	}
	cloned := make([]Finding, len(findings))
	copy(cloned, findings)
	return cloned
}
