package extractor

import "github.com/coder-gabrielsantos/sigecon-extractor/constants"

// Issue kinds. A record carries at most one issue.
const (
	IssueMissingFields  = "missing_fields"
	IssueUnexpectedUnit = "unexpected_unit"
)

// RowSnapshot copies the non-item fields of a record into an issue so the
// caller can inspect the offending row without re-joining on item number.
type RowSnapshot struct {
	Description string   `json:"descricao"`
	Unit        string   `json:"unid"`
	Quantity    *int     `json:"quant"`
	UnitPrice   *float64 `json:"valor_unit"`
	TotalPrice  *float64 `json:"valor_total"`
}

// Issue is a non-fatal data-quality report: a record with missing required
// fields, a unit code outside the allowlist, or the document-level error form
// used when no rows could be read at all.
type Issue struct {
	Item    *int         `json:"item,omitempty"`
	Kind    string       `json:"kind,omitempty"`
	Missing []string     `json:"missing,omitempty"`
	Unit    string       `json:"unit,omitempty"`
	Row     *RowSnapshot `json:"row,omitempty"`
	Error   string       `json:"error,omitempty"`
}

func errorIssue(msg string) Issue { return Issue{Error: msg} }

func snapshot(rec Record) *RowSnapshot {
	return &RowSnapshot{
		Description: rec.Description,
		Unit:        rec.Unit,
		Quantity:    rec.Quantity,
		UnitPrice:   rec.UnitPrice,
		TotalPrice:  rec.TotalPrice,
	}
}

// buildIssue reports missing required fields or, failing that, an unexpected
// unit code. It never reports both for the same record and never blocks the
// record from the output.
func buildIssue(rec Record, requireTotal bool) *Issue {
	var missing []string
	if rec.Item == nil {
		missing = append(missing, "item")
	}
	if rec.Description == "" {
		missing = append(missing, "descricao")
	}
	if rec.Unit == "" {
		missing = append(missing, "unid")
	}
	if rec.Quantity == nil {
		missing = append(missing, "quant")
	}
	if rec.UnitPrice == nil {
		missing = append(missing, "valor_unit")
	}
	if rec.TotalPrice == nil && requireTotal {
		missing = append(missing, "valor_total")
	}
	if len(missing) > 0 {
		return &Issue{Item: rec.Item, Kind: IssueMissingFields, Missing: missing, Row: snapshot(rec)}
	}
	if rec.Unit != "" && !constants.IsKnownUnit(rec.Unit) {
		return &Issue{Item: rec.Item, Kind: IssueUnexpectedUnit, Unit: rec.Unit, Row: snapshot(rec)}
	}
	return nil
}
