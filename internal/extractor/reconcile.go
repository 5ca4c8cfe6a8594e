package extractor

import "math"

// reconcileTotal recomputes the row total from unit price × quantity, rounded
// to cents. Policy: tolerant — the recomputed value replaces the extracted one
// only when the extracted one is absent or within tolerance of it; a total
// that disagrees by more is left as extracted and surfaces through the
// consistency of the data itself.
func reconcileTotal(rec *Record, tolerance float64) {
	if rec.UnitPrice == nil || rec.Quantity == nil {
		return
	}
	calc := math.Round(*rec.UnitPrice*float64(*rec.Quantity)*100) / 100
	if rec.TotalPrice == nil || math.Abs(calc-*rec.TotalPrice) <= tolerance {
		rec.TotalPrice = &calc
	}
}
