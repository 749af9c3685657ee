// Package usecase owns the application state: the four entity collections
// and every operation that mutates them. Each risk/finding mutation ends
// with a synchronous KPI recomputation and snapshot save, so an observer
// never sees a store whose derived state is stale.
package usecase

import (
	"context"
	"sync"

	"github.com/audit-lab/imsaudit/pkg/domain/interfaces"
	"github.com/audit-lab/imsaudit/pkg/domain/model"
	"github.com/audit-lab/imsaudit/pkg/service/metrics"
	"github.com/audit-lab/imsaudit/pkg/utils/logging"
)

// UseCases holds the audit state and its persistence port. All operations
// are serialized by a single mutex, the Go rendition of the original
// single-writer event loop.
type UseCases struct {
	mu   sync.Mutex
	repo interfaces.SnapshotRepository

	risks     []model.Risk
	findings  []model.Finding
	roadmap   []model.RoadmapAction
	kpis      []model.KPI
	auditPlan []model.AuditPlanEntry
}

type Option func(*UseCases)

// WithDefaults seeds the initial collections used when no snapshot exists
// or when the snapshot lacks a collection
func WithDefaults(snap *model.Snapshot) Option {
	return func(uc *UseCases) {
		if snap == nil {
			return
		}
		uc.risks = model.CloneRisks(snap.Risks)
		uc.findings = model.CloneFindings(snap.Findings)
		uc.roadmap = model.CloneRoadmap(snap.Roadmap)
		uc.kpis = model.CloneKPIs(snap.KPIs)
	}
}

// WithAuditPlan sets the read-only audit plan
func WithAuditPlan(plan []model.AuditPlanEntry) Option {
	return func(uc *UseCases) {
		uc.auditPlan = model.CloneAuditPlan(plan)
	}
}

func New(repo interfaces.SnapshotRepository, opts ...Option) *UseCases {
	uc := &UseCases{repo: repo}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Init overlays the persisted snapshot onto the defaults and recomputes the
// KPI set. A missing snapshot leaves the defaults standing; an unreadable
// one is logged and treated as missing. Collections absent from the
// snapshot keep their default value.
func (uc *UseCases) Init(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	snap, err := uc.repo.Load(ctx)
	if err != nil {
		logging.From(ctx).Warn("failed to load snapshot, using defaults", "error", err)
		snap = nil
	}

	if snap != nil {
		if snap.Risks != nil {
			uc.risks = snap.Risks
		}
		if snap.Findings != nil {
			uc.findings = snap.Findings
		}
		if snap.Roadmap != nil {
			uc.roadmap = snap.Roadmap
		}
		if snap.KPIs != nil {
			uc.kpis = snap.KPIs
		}
	}

	uc.kpis = metrics.ComputeKPIs(uc.risks, uc.findings)
	return nil
}

// snapshotLocked builds a copy of the current aggregate. Caller must hold
// the mutex.
func (uc *UseCases) snapshotLocked() *model.Snapshot {
	return &model.Snapshot{
		Risks:    model.CloneRisks(uc.risks),
		Findings: model.CloneFindings(uc.findings),
		Roadmap:  model.CloneRoadmap(uc.roadmap),
		KPIs:     model.CloneKPIs(uc.kpis),
	}
}

// commitLocked runs the mutation tail: recompute the KPI set when risk or
// finding state changed, then persist the full aggregate. Write failures
// are logged and swallowed; the in-memory state is already consistent and
// must not be corrupted by a persistence error. Caller must hold the mutex.
func (uc *UseCases) commitLocked(ctx context.Context, recompute bool) {
	if recompute {
		uc.kpis = metrics.ComputeKPIs(uc.risks, uc.findings)
	}
	if err := uc.repo.Save(ctx, uc.snapshotLocked()); err != nil {
		logging.From(ctx).Error("failed to persist snapshot", "error", err)
	}
}

// Snapshot returns a copy of the current aggregate
func (uc *UseCases) Snapshot() *model.Snapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshotLocked()
}

// AuditPlan returns the read-only audit plan
func (uc *UseCases) AuditPlan() []model.AuditPlanEntry {
	return model.CloneAuditPlan(uc.auditPlan)
}
