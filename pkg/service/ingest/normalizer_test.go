package ingest_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/audit-lab/imsaudit/pkg/domain/types"
	"github.com/audit-lab/imsaudit/pkg/service/ingest"
)

func TestParseRisks(t *testing.T) {
	t.Run("parses well formed CSV", func(t *testing.T) {
		raw := "id,area,description,cause,impact,L,I,owner,controls\n" +
			"R1,Quality,Supplier escapes,Weak inspection,Rework cost,4,4,QM,Inspection plan\n" +
			"R2,OH&S,Forklift collision,Shared routes,Injury,3,5,Site Manager,Walkways\n"

		risks, err := ingest.ParseRisks(raw)
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(2)

		gt.Value(t, risks[0].ID).Equal("R1")
		gt.Value(t, risks[0].Area).Equal(types.AreaQuality)
		gt.Value(t, risks[0].Likelihood).Equal(4)
		gt.Value(t, risks[0].Severity).Equal(4)
		gt.Value(t, risks[1].Area).Equal(types.AreaOHS)
		gt.Value(t, risks[1].Score()).Equal(15)
	})

	t.Run("keeps separator inside quoted field", func(t *testing.T) {
		raw := "id,area,description,cause,impact,L,I,owner,controls\n" +
			`R1,Quality,"Delay, then defect",Cause,Impact,2,3,QM,Controls` + "\n"

		risks, err := ingest.ParseRisks(raw)
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(1)
		gt.Value(t, risks[0].Description).Equal("Delay, then defect")
	})

	t.Run("headers are case insensitive", func(t *testing.T) {
		raw := "ID,Area,Description,Cause,Impact,L,I,Owner,Controls\n" +
			"R1,IMS,Doc control gap,Legacy systems,Audit NC,3,3,Coordinator,Register\n"

		risks, err := ingest.ParseRisks(raw)
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(1)
		gt.Value(t, risks[0].ID).Equal("R1")
		gt.Value(t, risks[0].Area).Equal(types.AreaIMS)
	})

	t.Run("missing ratings default to 3", func(t *testing.T) {
		raw := "id,description\nR1,Missing everything else\n"

		risks, err := ingest.ParseRisks(raw)
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(1)
		gt.Value(t, risks[0].Likelihood).Equal(3)
		gt.Value(t, risks[0].Severity).Equal(3)
		gt.Value(t, risks[0].Area).Equal(types.AreaQuality)
	})

	t.Run("unparsable ratings default to 3", func(t *testing.T) {
		raw := "id,description,L,I\nR1,Bad ratings,high,n/a\n"

		risks, err := ingest.ParseRisks(raw)
		gt.NoError(t, err).Required()
		gt.Value(t, risks[0].Likelihood).Equal(3)
		gt.Value(t, risks[0].Severity).Equal(3)
	})

	t.Run("blank lines are skipped", func(t *testing.T) {
		raw := "\nid,description\n\nR1,First\n\nR2,Second\n\n"

		risks, err := ingest.ParseRisks(raw)
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(2)
	})

	t.Run("header only input fails", func(t *testing.T) {
		_, err := ingest.ParseRisks("id,description\n")
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, ingest.ErrEmptyOrInvalid)).True()
	})

	t.Run("empty input fails", func(t *testing.T) {
		_, err := ingest.ParseRisks("")
		gt.Bool(t, errors.Is(err, ingest.ErrEmptyOrInvalid)).True()
	})

	t.Run("rows without id or description are dropped", func(t *testing.T) {
		raw := "id,description\n" +
			",No identifier\n" +
			"R2,\n" +
			"R3,Kept\n"

		risks, err := ingest.ParseRisks(raw)
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(1)
		gt.Value(t, risks[0].ID).Equal("R3")
	})

	t.Run("all rows invalid fails", func(t *testing.T) {
		raw := "id,description\n,missing id\nR2,\n"

		_, err := ingest.ParseRisks(raw)
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, ingest.ErrNoValidRows)).True()
	})

	t.Run("CRLF input is accepted", func(t *testing.T) {
		raw := "id,description,L,I\r\nR1,Windows export,2,2\r\n"

		risks, err := ingest.ParseRisks(raw)
		gt.NoError(t, err).Required()
		gt.Array(t, risks).Length(1)
		gt.Value(t, risks[0].Likelihood).Equal(2)
	})
}

func TestParseFindings(t *testing.T) {
	t.Run("parses well formed CSV", func(t *testing.T) {
		raw := "id,type,standard,description,area,riskLink,action,status,responsible,dueDate\n" +
			"F1,NC,ISO 9001:2015 8.4,Supplier records missing,Quality,R1,Complete evaluations,In Progress,Purchasing,2026-10-15\n"

		findings, err := ingest.ParseFindings(raw)
		gt.NoError(t, err).Required()
		gt.Array(t, findings).Length(1)

		f := findings[0]
		gt.Value(t, f.ID).Equal("F1")
		gt.Value(t, f.Type).Equal(types.FindingTypeNC)
		gt.Value(t, f.RiskLink).Equal("R1")
		gt.Value(t, f.Status).Equal(types.FindingStatusInProgress)
		gt.Value(t, f.DueDate).Equal("2026-10-15")
	})

	t.Run("missing status defaults to Open", func(t *testing.T) {
		raw := "id,description\nF1,No status column\n"

		findings, err := ingest.ParseFindings(raw)
		gt.NoError(t, err).Required()
		gt.Value(t, findings[0].Status).Equal(types.FindingStatusOpen)
	})

	t.Run("header only input fails", func(t *testing.T) {
		_, err := ingest.ParseFindings("id,description")
		gt.Bool(t, errors.Is(err, ingest.ErrEmptyOrInvalid)).True()
	})
}

func TestTemplate(t *testing.T) {
	risks, err := ingest.ParseRisks(ingest.Template(types.ImportKindRisks))
	gt.NoError(t, err).Required()
	gt.Array(t, risks).Length(1)

	findings, err := ingest.ParseFindings(ingest.Template(types.ImportKindFindings))
	gt.NoError(t, err).Required()
	gt.Array(t, findings).Length(1)
}
