package types

// FindingType represents the classification of an audit finding
type FindingType string

const (
	FindingTypeNC  FindingType = "NC"  // Non-Conformity
	FindingTypeOBS FindingType = "OBS" // Observation
	FindingTypeOFI FindingType = "OFI" // Opportunity for Improvement
)

// AllFindingTypes returns all valid finding types
func AllFindingTypes() []FindingType {
	return []FindingType{
		FindingTypeNC,
		FindingTypeOBS,
		FindingTypeOFI,
	}
}

// IsValid checks if the finding type is valid
func (t FindingType) IsValid() bool {
	switch t {
	case FindingTypeNC, FindingTypeOBS, FindingTypeOFI:
		return true
	default:
		return false
	}
}

// String returns the string representation of the finding type
func (t FindingType) String() string {
	return string(t)
}
