package types

// RiskLevel represents the classification of a risk score
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "Low"
	RiskLevelMedium RiskLevel = "Medium"
	RiskLevelHigh   RiskLevel = "High"
)

// String returns the string representation of the risk level
func (l RiskLevel) String() string {
	return string(l)
}
