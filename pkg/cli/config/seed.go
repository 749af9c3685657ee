package config

import (
	_ "embed"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/audit-lab/imsaudit/pkg/domain/model"
	"github.com/audit-lab/imsaudit/pkg/domain/types"
)

//go:embed seed.toml
var defaultSeed []byte

// Seed holds CLI flags for the seed data file. The seed provides the
// default collections used when the persisted snapshot is absent or
// partial, plus the read-only audit plan.
type Seed struct {
	path string
}

// Flags returns CLI flags for seed configuration
func (s *Seed) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "seed-file",
			Usage:       "Seed data TOML file (built-in sample data when omitted)",
			Sources:     cli.EnvVars("IMSAUDIT_SEED_FILE"),
			Destination: &s.path,
		},
	}
}

type seedRisk struct {
	ID          string `toml:"id"`
	Area        string `toml:"area"`
	Description string `toml:"description"`
	Cause       string `toml:"cause"`
	Impact      string `toml:"impact"`
	Likelihood  int    `toml:"likelihood"`
	Severity    int    `toml:"severity"`
	Owner       string `toml:"owner"`
	Controls    string `toml:"controls"`
}

// Validate checks if the seed risk is valid
func (r *seedRisk) Validate() error {
	if r.ID == "" {
		return goerr.New("risk id is required")
	}
	if r.Description == "" {
		return goerr.New("risk description is required", goerr.V("id", r.ID))
	}
	if r.Likelihood < 1 || r.Likelihood > 5 {
		return goerr.New("risk likelihood must be between 1 and 5",
			goerr.V("id", r.ID), goerr.V("likelihood", r.Likelihood))
	}
	if r.Severity < 1 || r.Severity > 5 {
		return goerr.New("risk severity must be between 1 and 5",
			goerr.V("id", r.ID), goerr.V("severity", r.Severity))
	}
	return nil
}

type seedFinding struct {
	ID          string `toml:"id"`
	Type        string `toml:"type"`
	Standard    string `toml:"standard"`
	Description string `toml:"description"`
	Area        string `toml:"area"`
	RiskLink    string `toml:"risk_link"`
	Action      string `toml:"action"`
	Status      string `toml:"status"`
	Responsible string `toml:"responsible"`
	DueDate     string `toml:"due_date"`
}

// Validate checks if the seed finding is valid
func (f *seedFinding) Validate() error {
	if f.ID == "" {
		return goerr.New("finding id is required")
	}
	if f.Description == "" {
		return goerr.New("finding description is required", goerr.V("id", f.ID))
	}
	if !types.FindingType(f.Type).IsValid() {
		return goerr.New("invalid finding type", goerr.V("id", f.ID), goerr.V("type", f.Type))
	}
	if !types.FindingStatus(f.Status).Normalize().IsValid() {
		return goerr.New("invalid finding status", goerr.V("id", f.ID), goerr.V("status", f.Status))
	}
	return nil
}

type seedRoadmapAction struct {
	Action   string `toml:"action"`
	Link     string `toml:"link"`
	Owner    string `toml:"owner"`
	Timeline string `toml:"timeline"`
	Metric   string `toml:"metric"`
	Status   string `toml:"status"`
}

// Validate checks if the seed roadmap action is valid
func (a *seedRoadmapAction) Validate() error {
	if a.Action == "" {
		return goerr.New("roadmap action is required")
	}
	if a.Status != "" && !types.RoadmapStatus(a.Status).IsValid() {
		return goerr.New("invalid roadmap status",
			goerr.V("action", a.Action), goerr.V("status", a.Status))
	}
	return nil
}

type seedAudit struct {
	Process     string `toml:"process"`
	Standards   string `toml:"standards"`
	Method      string `toml:"method"`
	PlannedDate string `toml:"planned_date"`
	Auditor     string `toml:"auditor"`
	RiskFocus   string `toml:"risk_focus"`
	Docs        string `toml:"docs"`
}

type seedFile struct {
	Risks    []seedRisk          `toml:"risk"`
	Findings []seedFinding       `toml:"finding"`
	Roadmap  []seedRoadmapAction `toml:"roadmap"`
	Audits   []seedAudit         `toml:"audit"`
}

// Configure loads and validates the seed data, returning the default
// snapshot and the audit plan. KPIs are never seeded: the KPI collection is
// always derived from risk and finding state.
func (s *Seed) Configure() (*model.Snapshot, []model.AuditPlanEntry, error) {
	raw := defaultSeed
	if s.path != "" {
		data, err := os.ReadFile(s.path)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to read seed file", goerr.V("path", s.path))
		}
		raw = data
	}

	var seed seedFile
	if err := toml.Unmarshal(raw, &seed); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to parse seed file", goerr.V("path", s.path))
	}

	snap := &model.Snapshot{
		Risks:    make([]model.Risk, 0, len(seed.Risks)),
		Findings: make([]model.Finding, 0, len(seed.Findings)),
		Roadmap:  make([]model.RoadmapAction, 0, len(seed.Roadmap)),
	}

	for i := range seed.Risks {
		r := &seed.Risks[i]
		if err := r.Validate(); err != nil {
			return nil, nil, goerr.Wrap(err, "invalid seed risk")
		}
		snap.Risks = append(snap.Risks, model.Risk{
			ID:          r.ID,
			Area:        types.Area(r.Area).Normalize(),
			Description: r.Description,
			Cause:       r.Cause,
			Impact:      r.Impact,
			Likelihood:  r.Likelihood,
			Severity:    r.Severity,
			Owner:       r.Owner,
			Controls:    r.Controls,
		})
	}

	for i := range seed.Findings {
		f := &seed.Findings[i]
		if err := f.Validate(); err != nil {
			return nil, nil, goerr.Wrap(err, "invalid seed finding")
		}
		snap.Findings = append(snap.Findings, model.Finding{
			ID:          f.ID,
			Type:        types.FindingType(f.Type),
			Standard:    f.Standard,
			Description: f.Description,
			Area:        types.Area(f.Area).Normalize(),
			RiskLink:    f.RiskLink,
			Action:      f.Action,
			Status:      types.FindingStatus(f.Status).Normalize(),
			Responsible: f.Responsible,
			DueDate:     f.DueDate,
		})
	}

	for i := range seed.Roadmap {
		a := &seed.Roadmap[i]
		if err := a.Validate(); err != nil {
			return nil, nil, goerr.Wrap(err, "invalid seed roadmap action")
		}
		status := types.RoadmapStatus(a.Status)
		if status == "" {
			status = types.RoadmapStatusPlanned
		}
		snap.Roadmap = append(snap.Roadmap, model.RoadmapAction{
			Action:   a.Action,
			Link:     a.Link,
			Owner:    a.Owner,
			Timeline: a.Timeline,
			Metric:   a.Metric,
			Status:   status,
		})
	}

	plan := make([]model.AuditPlanEntry, 0, len(seed.Audits))
	for _, a := range seed.Audits {
		plan = append(plan, model.AuditPlanEntry{
			Process:     a.Process,
			Standards:   a.Standards,
			Method:      a.Method,
			PlannedDate: a.PlannedDate,
			Auditor:     a.Auditor,
			RiskFocus:   a.RiskFocus,
			Docs:        a.Docs,
		})
	}

	return snap, plan, nil
}
