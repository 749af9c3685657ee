package ingest

import "github.com/audit-lab/imsaudit/pkg/domain/types"

const riskTemplate = `id,area,description,cause,impact,L,I,owner,controls
R99,Quality,Sample Risk,Sample cause,Sample impact,3,3,Owner Name,Sample controls
`

const findingTemplate = `id,type,standard,description,area,riskLink,action,status,responsible,dueDate
F99,OBS,ISO 9001,Sample finding,Quality,R99,Sample corrective action,Open,Owner Name,2026-12-31
`

// Template returns the sample CSV content for the given import kind
func Template(kind types.ImportKind) string {
	switch kind {
	case types.ImportKindFindings:
		return findingTemplate
	default:
		return riskTemplate
	}
}
