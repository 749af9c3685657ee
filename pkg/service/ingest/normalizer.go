// Package ingest parses raw delimited text into typed records for bulk
// import. A batch is all-or-nothing: either every valid row is returned, or
// the whole batch fails and the caller leaves its state untouched.
package ingest

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/audit-lab/imsaudit/pkg/domain/model"
	"github.com/audit-lab/imsaudit/pkg/domain/types"
)

// Import failure sentinels. Wrapped errors keep these reachable via
// errors.Is so callers can map them to user-facing codes.
var (
	ErrEmptyOrInvalid = goerr.New("CSV input is empty or has no data rows")
	ErrNoValidRows    = goerr.New("CSV input contains no valid rows")
	ErrParseFailure   = goerr.New("CSV input could not be parsed")
)

// defaultRating is substituted for missing or unparsable L/I values
const defaultRating = 3

// row is a positional record zipped against the lower-cased header
type row map[string]string

// parseTable splits raw CSV text into header keys and rows. Header tokens
// are lower-cased and trimmed; value positions past the end of a line map to
// the empty string.
func parseTable(raw string) ([]row, error) {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil, goerr.Wrap(ErrEmptyOrInvalid, "need a header row and at least one data row",
			goerr.V("lines", len(lines)))
	}

	headers := splitLine(lines[0])
	for i, h := range headers {
		headers[i] = strings.ToLower(h)
	}

	rows := make([]row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := splitLine(line)
		rec := make(row, len(headers))
		for i, key := range headers {
			if i < len(values) {
				rec[key] = values[i]
			} else {
				rec[key] = ""
			}
		}
		rows = append(rows, rec)
	}

	return rows, nil
}

// splitLine parses one CSV line honoring double-quote-delimited fields.
// A quote toggles the in-quote state, so a separator inside quotes is
// literal. Each field is trimmed and one pair of surrounding quotes is
// stripped.
func splitLine(line string) []string {
	line = strings.TrimSuffix(line, "\r")

	var fields []string
	var buf strings.Builder
	inQuotes := false

	for _, c := range line {
		switch {
		case c == '"':
			inQuotes = !inQuotes
			buf.WriteRune(c)
		case c == ',' && !inQuotes:
			fields = append(fields, buf.String())
			buf.Reset()
		default:
			buf.WriteRune(c)
		}
	}
	fields = append(fields, buf.String())

	for i, f := range fields {
		f = strings.TrimSpace(f)
		if len(f) >= 2 && strings.HasPrefix(f, `"`) && strings.HasSuffix(f, `"`) {
			f = f[1 : len(f)-1]
		}
		fields[i] = f
	}

	return fields
}

// coerceRating parses a 1-5 rating value, falling back to the default when
// the value is missing or unparsable
func coerceRating(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return defaultRating
	}
	return n
}

// ParseRisks normalizes raw CSV text into risk records. Rows without a
// non-empty id and description are dropped; L and I fall back to the default
// rating. Fails atomically with an import sentinel on bad input.
func ParseRisks(raw string) (risks []model.Risk, err error) {
	defer func() {
		if r := recover(); r != nil {
			risks = nil
			err = goerr.Wrap(ErrParseFailure, "panic while parsing risk CSV", goerr.V("panic", r))
		}
	}()

	rows, err := parseTable(raw)
	if err != nil {
		return nil, err
	}

	for _, rec := range rows {
		risk := model.Risk{
			ID:          rec["id"],
			Area:        types.Area(rec["area"]).Normalize(),
			Description: rec["description"],
			Cause:       rec["cause"],
			Impact:      rec["impact"],
			Likelihood:  coerceRating(rec["l"]),
			Severity:    coerceRating(rec["i"]),
			Owner:       rec["owner"],
			Controls:    rec["controls"],
		}
		if risk.ID == "" || risk.Description == "" {
			continue
		}
		risks = append(risks, risk)
	}

	if len(risks) == 0 {
		return nil, goerr.Wrap(ErrNoValidRows, "every row is missing id or description",
			goerr.V("rows", len(rows)))
	}

	return risks, nil
}

// ParseFindings normalizes raw CSV text into finding records. Rows without a
// non-empty id and description are dropped. Fails atomically with an import
// sentinel on bad input.
func ParseFindings(raw string) (findings []model.Finding, err error) {
	defer func() {
		if r := recover(); r != nil {
			findings = nil
			err = goerr.Wrap(ErrParseFailure, "panic while parsing finding CSV", goerr.V("panic", r))
		}
	}()

	rows, err := parseTable(raw)
	if err != nil {
		return nil, err
	}

	for _, rec := range rows {
		finding := model.Finding{
			ID:          rec["id"],
			Type:        types.FindingType(rec["type"]),
			Standard:    rec["standard"],
			Description: rec["description"],
			Area:        types.Area(rec["area"]).Normalize(),
			RiskLink:    rec["risklink"],
			Action:      rec["action"],
			Status:      types.FindingStatus(rec["status"]).Normalize(),
			Responsible: rec["responsible"],
			DueDate:     rec["duedate"],
		}
		if finding.ID == "" || finding.Description == "" {
			continue
		}
		findings = append(findings, finding)
	}

	if len(findings) == 0 {
		return nil, goerr.Wrap(ErrNoValidRows, "every row is missing id or description",
			goerr.V("rows", len(rows)))
	}

	return findings, nil
}
