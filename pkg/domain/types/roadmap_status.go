package types

import "github.com/m-mizutani/goerr/v2"

// RoadmapStatus represents the PDCA progress of a roadmap action
type RoadmapStatus string

const (
	RoadmapStatusPlanned    RoadmapStatus = "Planned"
	RoadmapStatusInProgress RoadmapStatus = "In Progress"
	RoadmapStatusDone       RoadmapStatus = "Done"
	RoadmapStatusBlocked    RoadmapStatus = "Blocked"
)

// AllRoadmapStatuses returns all valid roadmap statuses
func AllRoadmapStatuses() []RoadmapStatus {
	return []RoadmapStatus{
		RoadmapStatusPlanned,
		RoadmapStatusInProgress,
		RoadmapStatusDone,
		RoadmapStatusBlocked,
	}
}

// IsValid checks if the roadmap status is valid
func (s RoadmapStatus) IsValid() bool {
	switch s {
	case RoadmapStatusPlanned,
		RoadmapStatusInProgress,
		RoadmapStatusDone,
		RoadmapStatusBlocked:
		return true
	default:
		return false
	}
}

// String returns the string representation of the roadmap status
func (s RoadmapStatus) String() string {
	return string(s)
}

// ParseRoadmapStatus parses a string into a RoadmapStatus
func ParseRoadmapStatus(s string) (RoadmapStatus, error) {
	status := RoadmapStatus(s)
	if !status.IsValid() {
		return "", goerr.New("invalid roadmap status", goerr.V("status", s))
	}
	return status, nil
}
