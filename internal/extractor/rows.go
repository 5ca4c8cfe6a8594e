package extractor

import (
	"strings"

	"github.com/coder-gabrielsantos/sigecon-extractor/constants"
)

// Record is one extracted procurement line item. The JSON names follow the
// original SIGECON wire contract.
type Record struct {
	Item        *int     `json:"item"`
	Description string   `json:"descricao"`
	Unit        string   `json:"unid"`
	Quantity    *int     `json:"quant"`
	UnitPrice   *float64 `json:"valor_unit"`
	TotalPrice  *float64 `json:"valor_total"`
}

// parseRow extracts one record through the mapped columns only. An index past
// the end of a short row reads as an absent cell. No cross-field inference.
func parseRow(row Row, cols map[constants.Field]int) Record {
	at := func(field constants.Field) Cell {
		idx, ok := cols[field]
		if !ok || idx < 0 || idx >= len(row) {
			return Cell{}
		}
		return row[idx]
	}
	return Record{
		Item:        CoerceInt(at(constants.FieldItem)),
		Description: CleanDescription(at(constants.FieldDescription).normalized()),
		Unit:        CleanUnit(at(constants.FieldUnit).normalized()),
		Quantity:    CoerceInt(at(constants.FieldQuantity)),
		UnitPrice:   CoerceMoney(at(constants.FieldUnitPrice)),
		TotalPrice:  CoerceMoney(at(constants.FieldTotalPrice)),
	}
}

// isEmptyRow reports whether every cell normalizes to empty text.
func isEmptyRow(row Row) bool {
	for _, c := range row {
		if c.normalized() != "" {
			return false
		}
	}
	return true
}

// isGrandTotalRow detects the document's closing totals line: the full
// normalized, space-joined, upper-cased row text carries the grand-total label
// and itself parses as a money value. Such a row ends the line items.
func isGrandTotalRow(row Row) bool {
	parts := make([]string, 0, len(row))
	for _, c := range row {
		parts = append(parts, c.normalized())
	}
	joined := strings.ToUpper(strings.Join(parts, " "))
	return strings.Contains(joined, constants.GrandTotalLabel) && CoerceMoney(TextCell(joined)) != nil
}
