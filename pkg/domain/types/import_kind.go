package types

import "github.com/m-mizutani/goerr/v2"

// ImportKind identifies the target collection of a CSV import
type ImportKind string

const (
	ImportKindRisks    ImportKind = "risks"
	ImportKindFindings ImportKind = "findings"
)

// IsValid checks if the import kind is valid
func (k ImportKind) IsValid() bool {
	switch k {
	case ImportKindRisks, ImportKindFindings:
		return true
	default:
		return false
	}
}

// String returns the string representation of the import kind
func (k ImportKind) String() string {
	return string(k)
}

// ParseImportKind parses a string into an ImportKind
func ParseImportKind(s string) (ImportKind, error) {
	kind := ImportKind(s)
	if !kind.IsValid() {
		return "", goerr.New("invalid import kind", goerr.V("kind", s))
	}
	return kind, nil
}
