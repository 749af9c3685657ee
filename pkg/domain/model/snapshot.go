package model

// Snapshot is the persisted aggregate of all mutable collections.
// A nil slice means the collection was absent from the serialized form;
// load keeps the corresponding default in that case.
type Snapshot struct {
	Risks    []Risk          `json:"risks"`
	Findings []Finding       `json:"findings"`
	Roadmap  []RoadmapAction `json:"roadmap"`
	KPIs     []KPI           `json:"kpis"`
}

// Clone returns a deep copy of the snapshot
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	return &Snapshot{
		Risks:    CloneRisks(s.Risks),
		Findings: CloneFindings(s.Findings),
		Roadmap:  CloneRoadmap(s.Roadmap),
		KPIs:     CloneKPIs(s.KPIs),
	}
}
