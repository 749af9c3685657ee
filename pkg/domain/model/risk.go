package model

import "github.com/audit-lab/imsaudit/pkg/domain/types"

// Risk represents an assessed risk in the risk register.
// The JSON field names match the persisted snapshot schema, including the
// upper-case L and I rating keys carried over from the CSV import format.
type Risk struct {
	ID          string     `json:"id"`
	Area        types.Area `json:"area"`
	Description string     `json:"description"`
	Cause       string     `json:"cause"`
	Impact      string     `json:"impact"`
	Likelihood  int        `json:"L"`
	Severity    int        `json:"I"`
	Owner       string     `json:"owner"`
	Controls    string     `json:"controls"`
}

// Score returns the risk score (likelihood x impact severity).
// The score is always derived, never stored.
func (r Risk) Score() int {
	return r.Likelihood * r.Severity
}

// CloneRisks returns a copy of a risk slice
func CloneRisks(risks []Risk) []Risk {
	if risks == nil {
		return nil
	}
	cloned := make([]Risk, len(risks))
	copy(cloned, risks)
	return cloned
}
