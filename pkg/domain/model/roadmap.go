package model

import "github.com/audit-lab/imsaudit/pkg/domain/types"

// RoadmapAction represents one PDCA improvement action on the roadmap.
// Roadmap actions have no identifier; they are addressed by position.
type RoadmapAction struct {
	Action   string              `json:"action"`
	Link     string              `json:"link"`
	Owner    string              `json:"owner"`
	Timeline string              `json:"timeline"`
	Metric   string              `json:"metric"`
	Status   types.RoadmapStatus `json:"status"`
}

// CloneRoadmap returns a copy of a roadmap slice
func CloneRoadmap(roadmap []RoadmapAction) []RoadmapAction {
	if roadmap == nil {
		return nil
	}
	cloned := make([]RoadmapAction, len(roadmap))
	copy(cloned, roadmap)
	return cloned
}
