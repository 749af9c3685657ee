package types

import "github.com/m-mizutani/goerr/v2"

// FindingStatus represents the corrective action status of a finding
type FindingStatus string

const (
	FindingStatusOpen       FindingStatus = "Open"
	FindingStatusInProgress FindingStatus = "In Progress"
	FindingStatusPlanned    FindingStatus = "Planned"
	FindingStatusClosed     FindingStatus = "Closed"
)

// AllFindingStatuses returns all valid finding statuses
func AllFindingStatuses() []FindingStatus {
	return []FindingStatus{
		FindingStatusOpen,
		FindingStatusInProgress,
		FindingStatusPlanned,
		FindingStatusClosed,
	}
}

// IsValid checks if the finding status is valid
func (s FindingStatus) IsValid() bool {
	switch s {
	case FindingStatusOpen,
		FindingStatusInProgress,
		FindingStatusPlanned,
		FindingStatusClosed:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as FindingStatusOpen
func (s FindingStatus) Normalize() FindingStatus {
	if s == "" {
		return FindingStatusOpen
	}
	return s
}

// String returns the string representation of the finding status
func (s FindingStatus) String() string {
	return string(s)
}

// ParseFindingStatus parses a string into a FindingStatus
func ParseFindingStatus(s string) (FindingStatus, error) {
	status := FindingStatus(s)
	if !status.IsValid() {
		return "", goerr.New("invalid finding status", goerr.V("status", s))
	}
	return status, nil
}
