// Package extractor infers table structure from noisy cell grids and
// normalizes them into canonical procurement line items. It consumes rows of
// cells produced upstream (PDF table detector, workbook iterator) and performs
// no I/O and no geometry reasoning of its own.
package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

// CellKind discriminates the three shapes a cell arrives in: absent, text, or
// a native number.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell is a single value handed over by an upstream reader. The zero value is
// an absent cell.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// TextCell wraps a raw string as a text cell.
func TextCell(s string) Cell { return Cell{Kind: CellText, Text: s} }

// NumberCell wraps a native numeric value. Numeric coercers use it directly
// instead of going through the text path.
func NumberCell(f float64) Cell { return Cell{Kind: CellNumber, Number: f} }

// Row is one ordered line of cells. Rows need not share a column count; a
// short row simply reads as absent past its end.
type Row []Cell

// String renders the cell for the text path. Numbers are stringified with
// their shortest round-trip representation.
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// inchGlyph is the canonical inch mark every quote-like variant collapses to.
const inchGlyph = "″"

var (
	spacesRx          = regexp.MustCompile(`\s+`)
	inchVariantRx     = regexp.MustCompile("[\"“”]")
	spaceBeforeInchRx = regexp.MustCompile(`\s+` + inchGlyph)
)

// NormalizeText canonicalizes raw cell text: non-breaking spaces become plain
// spaces, internal whitespace runs collapse to one space, the string is
// trimmed, and inch-mark variants (straight and curly quotes) unify into ″
// with no space left before it. Idempotent.
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.TrimSpace(spacesRx.ReplaceAllString(s, " "))
	s = inchVariantRx.ReplaceAllString(s, inchGlyph)
	s = spaceBeforeInchRx.ReplaceAllString(s, inchGlyph)
	return s
}

func (c Cell) normalized() string { return NormalizeText(c.String()) }
