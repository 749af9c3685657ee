package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/audit-lab/imsaudit/pkg/domain/model"
	"github.com/audit-lab/imsaudit/pkg/domain/types"
	"github.com/audit-lab/imsaudit/pkg/service/ingest"
	"github.com/audit-lab/imsaudit/pkg/utils/logging"
)

// ImportResult describes a committed CSV import batch
type ImportResult struct {
	BatchID  string           `json:"batchId"`
	Kind     types.ImportKind `json:"kind"`
	Imported int              `json:"imported"`
}

// ImportCSV parses raw CSV text and appends the resulting records to the
// target collection. The batch is atomic: on any parse failure the store is
// left unchanged. Import never deduplicates against existing ids.
func (uc *UseCases) ImportCSV(ctx context.Context, kind types.ImportKind, raw string) (*ImportResult, error) {
	result := &ImportResult{
		BatchID: uuid.NewString(),
		Kind:    kind,
	}

	switch kind {
	case types.ImportKindRisks:
		risks, err := ingest.ParseRisks(raw)
		if err != nil {
			return nil, err
		}

		uc.mu.Lock()
		defer uc.mu.Unlock()
		uc.risks = append(model.CloneRisks(uc.risks), risks...)
		uc.commitLocked(ctx, true)
		result.Imported = len(risks)

	case types.ImportKindFindings:
		findings, err := ingest.ParseFindings(raw)
		if err != nil {
			return nil, err
		}

		uc.mu.Lock()
		defer uc.mu.Unlock()
		uc.findings = append(model.CloneFindings(uc.findings), findings...)
		uc.commitLocked(ctx, true)
		result.Imported = len(findings)

	default:
		return nil, goerr.New("invalid import kind", goerr.V("kind", kind))
	}

	logging.From(ctx).Info("CSV import committed",
		"batch_id", result.BatchID,
		"kind", result.Kind,
		"imported", result.Imported,
	)
	return result, nil
}
