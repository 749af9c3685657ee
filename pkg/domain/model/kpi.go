package model

// KPI represents a key performance indicator with its target.
// A fixed subset of KPIs is regenerated from risk/finding state after every
// mutation; the regeneration replaces the whole collection.
type KPI struct {
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Target   float64 `json:"target"`
	Unit     string  `json:"unit"`
	Domain   string  `json:"domain"`
	Baseline float64 `json:"baseline"`
}

// OnTarget reports whether the KPI meets or exceeds its target
func (k KPI) OnTarget() bool {
	return k.Value >= k.Target
}

// Performance returns value over target as a percentage. The second return
// is false when the target is zero and no percentage can be computed.
func (k KPI) Performance() (float64, bool) {
	if k.Target == 0 {
		return 0, false
	}
	return k.Value / k.Target * 100, true
}

// CloneKPIs returns a copy of a KPI slice
func CloneKPIs(kpis []KPI) []KPI {
	if kpis == nil {
		return nil
	}
	cloned := make([]KPI, len(kpis))
	copy(cloned, kpis)
	return cloned
}
