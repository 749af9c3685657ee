package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/audit-lab/imsaudit/pkg/domain/model"
	"github.com/audit-lab/imsaudit/pkg/domain/types"
	"github.com/audit-lab/imsaudit/pkg/repository/memory"
	"github.com/audit-lab/imsaudit/pkg/service/ingest"
	"github.com/audit-lab/imsaudit/pkg/usecase"
)

func newUseCases(t *testing.T, opts ...usecase.Option) *usecase.UseCases {
	t.Helper()

	uc := usecase.New(memory.New(), opts...)
	gt.NoError(t, uc.Init(context.Background())).Required()
	return uc
}

func validRisk(id string) model.Risk {
	return model.Risk{
		ID:          id,
		Area:        types.AreaQuality,
		Description: "test risk",
		Likelihood:  4,
		Severity:    4,
		Owner:       "QM",
	}
}

func TestInit(t *testing.T) {
	ctx := context.Background()

	t.Run("empty repository keeps defaults", func(t *testing.T) {
		defaults := &model.Snapshot{
			Risks:    []model.Risk{validRisk("R1")},
			Findings: []model.Finding{{ID: "F1", Description: "f", Status: types.FindingStatusOpen}},
		}
		uc := newUseCases(t, usecase.WithDefaults(defaults))

		gt.Array(t, uc.GetRisks("")).Length(1)
		gt.Array(t, uc.GetFindings("")).Length(1)
		gt.Array(t, uc.GetKPIs()).Length(6)
	})

	t.Run("persisted snapshot overrides defaults per collection", func(t *testing.T) {
		repo := memory.New()
		gt.NoError(t, repo.Save(ctx, &model.Snapshot{
			Risks: []model.Risk{validRisk("R-persisted")},
			// Findings absent, defaults must survive
		})).Required()

		defaults := &model.Snapshot{
			Risks:    []model.Risk{validRisk("R-default")},
			Findings: []model.Finding{{ID: "F-default", Description: "f"}},
		}
		uc := usecase.New(repo, usecase.WithDefaults(defaults))
		gt.NoError(t, uc.Init(ctx)).Required()

		risks := uc.GetRisks("")
		gt.Array(t, risks).Length(1).Required()
		gt.Value(t, risks[0].ID).Equal("R-persisted")

		findings := uc.GetFindings("")
		gt.Array(t, findings).Length(1).Required()
		gt.Value(t, findings[0].ID).Equal("F-default")
	})

	t.Run("KPIs are recomputed on load", func(t *testing.T) {
		repo := memory.New()
		gt.NoError(t, repo.Save(ctx, &model.Snapshot{
			Risks: []model.Risk{validRisk("R1")},
			KPIs:  []model.KPI{{Name: "stale", Value: 1}},
		})).Required()

		uc := usecase.New(repo)
		gt.NoError(t, uc.Init(ctx)).Required()

		kpis := uc.GetKPIs()
		gt.Array(t, kpis).Length(6).Required()
		gt.Value(t, kpis[0].Name).Equal("Risk Mitigation Rate")
	})
}

func TestAddRisk(t *testing.T) {
	ctx := context.Background()

	t.Run("appends and persists", func(t *testing.T) {
		repo := memory.New()
		uc := usecase.New(repo)
		gt.NoError(t, uc.Init(ctx)).Required()

		gt.NoError(t, uc.AddRisk(ctx, validRisk("R1"))).Required()

		gt.Array(t, uc.GetRisks("")).Length(1)

		persisted, err := repo.Load(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, persisted).NotNil().Required()
		gt.Array(t, persisted.Risks).Length(1)
		gt.Array(t, persisted.KPIs).Length(6)
	})

	t.Run("rejects missing id or description", func(t *testing.T) {
		uc := newUseCases(t)

		err := uc.AddRisk(ctx, model.Risk{Description: "no id"})
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidRisk)).True()

		err = uc.AddRisk(ctx, model.Risk{ID: "R1"})
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidRisk)).True()

		gt.Array(t, uc.GetRisks("")).Length(0)
	})

	t.Run("duplicate ids are accepted", func(t *testing.T) {
		uc := newUseCases(t)

		gt.NoError(t, uc.AddRisk(ctx, validRisk("R1")))
		gt.NoError(t, uc.AddRisk(ctx, validRisk("R1")))
		gt.NoError(t, uc.AddRisk(ctx, validRisk("R1")))

		gt.Array(t, uc.GetRisks("")).Length(3)
	})

	t.Run("empty area defaults to Quality", func(t *testing.T) {
		uc := newUseCases(t)

		risk := validRisk("R1")
		risk.Area = ""
		gt.NoError(t, uc.AddRisk(ctx, risk)).Required()

		risks := uc.GetRisks("")
		gt.Value(t, risks[0].Area).Equal(types.AreaQuality)
	})
}

func TestRemoveRisk(t *testing.T) {
	ctx := context.Background()

	t.Run("removes every match", func(t *testing.T) {
		uc := newUseCases(t)
		gt.NoError(t, uc.AddRisk(ctx, validRisk("R1")))
		gt.NoError(t, uc.AddRisk(ctx, validRisk("R2")))
		gt.NoError(t, uc.AddRisk(ctx, validRisk("R1")))

		gt.NoError(t, uc.RemoveRisk(ctx, "R1")).Required()

		risks := uc.GetRisks("")
		gt.Array(t, risks).Length(1).Required()
		gt.Value(t, risks[0].ID).Equal("R2")
	})

	t.Run("unknown id fails", func(t *testing.T) {
		uc := newUseCases(t)

		err := uc.RemoveRisk(ctx, "missing")
		gt.Bool(t, errors.Is(err, usecase.ErrRiskNotFound)).True()
	})
}

func TestGetRisks(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(t)

	r1 := validRisk("R1")
	r2 := validRisk("R2")
	r2.Area = types.AreaOHS
	gt.NoError(t, uc.AddRisk(ctx, r1))
	gt.NoError(t, uc.AddRisk(ctx, r2))

	gt.Array(t, uc.GetRisks("")).Length(2)

	filtered := uc.GetRisks(types.AreaOHS)
	gt.Array(t, filtered).Length(1).Required()
	gt.Value(t, filtered[0].ID).Equal("R2")
}

func TestUpdateFindingStatus(t *testing.T) {
	ctx := context.Background()

	defaults := &model.Snapshot{
		Findings: []model.Finding{
			{ID: "F1", Description: "first", Status: types.FindingStatusOpen},
			{ID: "F1", Description: "duplicate", Status: types.FindingStatusOpen},
			{ID: "F2", Description: "second", Status: types.FindingStatusOpen},
		},
	}

	t.Run("updates first match only", func(t *testing.T) {
		uc := newUseCases(t, usecase.WithDefaults(defaults))

		gt.NoError(t, uc.UpdateFindingStatus(ctx, "F1", types.FindingStatusClosed)).Required()

		findings := uc.GetFindings("")
		gt.Value(t, findings[0].Status).Equal(types.FindingStatusClosed)
		gt.Value(t, findings[1].Status).Equal(types.FindingStatusOpen)
	})

	t.Run("unknown id fails", func(t *testing.T) {
		uc := newUseCases(t, usecase.WithDefaults(defaults))

		err := uc.UpdateFindingStatus(ctx, "missing", types.FindingStatusClosed)
		gt.Bool(t, errors.Is(err, usecase.ErrFindingNotFound)).True()
	})

	t.Run("status filter", func(t *testing.T) {
		uc := newUseCases(t, usecase.WithDefaults(defaults))
		gt.NoError(t, uc.UpdateFindingStatus(ctx, "F2", types.FindingStatusClosed)).Required()

		closed := uc.GetFindings(types.FindingStatusClosed)
		gt.Array(t, closed).Length(1).Required()
		gt.Value(t, closed[0].ID).Equal("F2")
	})
}

func TestUpdateRoadmapStatus(t *testing.T) {
	ctx := context.Background()

	defaults := &model.Snapshot{
		Roadmap: []model.RoadmapAction{
			{Action: "first", Status: types.RoadmapStatusPlanned},
			{Action: "second", Status: types.RoadmapStatusPlanned},
		},
	}

	t.Run("updates by index", func(t *testing.T) {
		uc := newUseCases(t, usecase.WithDefaults(defaults))

		gt.NoError(t, uc.UpdateRoadmapStatus(ctx, 1, types.RoadmapStatusDone)).Required()

		roadmap := uc.GetRoadmap()
		gt.Value(t, roadmap[0].Status).Equal(types.RoadmapStatusPlanned)
		gt.Value(t, roadmap[1].Status).Equal(types.RoadmapStatusDone)
	})

	t.Run("out of range fails", func(t *testing.T) {
		uc := newUseCases(t, usecase.WithDefaults(defaults))

		err := uc.UpdateRoadmapStatus(ctx, 2, types.RoadmapStatusDone)
		gt.Bool(t, errors.Is(err, usecase.ErrRoadmapOutOfRange)).True()

		err = uc.UpdateRoadmapStatus(ctx, -1, types.RoadmapStatusDone)
		gt.Bool(t, errors.Is(err, usecase.ErrRoadmapOutOfRange)).True()
	})
}

func TestImportCSV(t *testing.T) {
	ctx := context.Background()

	t.Run("risk batch appends without dedup", func(t *testing.T) {
		uc := newUseCases(t)
		gt.NoError(t, uc.AddRisk(ctx, validRisk("R1")))

		raw := "id,description,L,I\nR1,duplicate id,2,2\nR1,another duplicate,3,4\n"
		result, err := uc.ImportCSV(ctx, types.ImportKindRisks, raw)
		gt.NoError(t, err).Required()
		gt.Value(t, result.Imported).Equal(2)
		gt.Value(t, result.Kind).Equal(types.ImportKindRisks)
		gt.String(t, result.BatchID).NotEqual("")

		// Three entries now share the id R1
		risks := uc.GetRisks("")
		gt.Array(t, risks).Length(3).Required()
		for _, r := range risks {
			gt.Value(t, r.ID).Equal("R1")
		}
	})

	t.Run("finding batch", func(t *testing.T) {
		uc := newUseCases(t)

		raw := "id,type,description,status\nF1,NC,imported finding,Open\n"
		result, err := uc.ImportCSV(ctx, types.ImportKindFindings, raw)
		gt.NoError(t, err).Required()
		gt.Value(t, result.Imported).Equal(1)
		gt.Array(t, uc.GetFindings("")).Length(1)
	})

	t.Run("rejected batch leaves store unchanged", func(t *testing.T) {
		uc := newUseCases(t)
		gt.NoError(t, uc.AddRisk(ctx, validRisk("R1")))

		_, err := uc.ImportCSV(ctx, types.ImportKindRisks, "id,description\n")
		gt.Bool(t, errors.Is(err, ingest.ErrEmptyOrInvalid)).True()

		_, err = uc.ImportCSV(ctx, types.ImportKindRisks, "id,description\n,no id\n")
		gt.Bool(t, errors.Is(err, ingest.ErrNoValidRows)).True()

		gt.Array(t, uc.GetRisks("")).Length(1)
	})

	t.Run("import refreshes KPIs", func(t *testing.T) {
		uc := newUseCases(t)

		raw := "id,description,L,I\nR1,high risk,5,5\n"
		_, err := uc.ImportCSV(ctx, types.ImportKindRisks, raw)
		gt.NoError(t, err).Required()

		kpis := uc.GetKPIs()
		gt.Value(t, kpis[3].Name).Equal("High Risk Count")
		gt.Value(t, kpis[3].Value).Equal(1.0)
	})
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	uc := usecase.New(repo)
	gt.NoError(t, uc.Init(ctx)).Required()
	gt.NoError(t, uc.AddRisk(ctx, validRisk("R1")))
	gt.NoError(t, uc.AddRisk(ctx, validRisk("R2")))
	gt.NoError(t, uc.RemoveRisk(ctx, "R1"))

	// A second instance over the same repository sees the committed state
	uc2 := usecase.New(repo)
	gt.NoError(t, uc2.Init(ctx)).Required()

	risks := uc2.GetRisks("")
	gt.Array(t, risks).Length(1).Required()
	gt.Value(t, risks[0].ID).Equal("R2")
	gt.Array(t, uc2.GetKPIs()).Length(6)
}

func TestSnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(t)
	gt.NoError(t, uc.AddRisk(ctx, validRisk("R1")))

	snap := uc.Snapshot()
	snap.Risks[0].Description = "mutated copy"

	risks := uc.GetRisks("")
	gt.Value(t, risks[0].Description).Equal("test risk")
}
