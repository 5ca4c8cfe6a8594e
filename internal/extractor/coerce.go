package extractor

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	currencyRx       = regexp.MustCompile(`R\$\s*`)
	decimalRemnantRx = regexp.MustCompile(`^(-?\d+)[.,]0+$`)
	nonDigitRx       = regexp.MustCompile(`\D`)
	totalSuffixRx    = regexp.MustCompile(`(?i)VALOR\s+TOTAL\s*R\$\s*[\d.,]+$`)
	trailingMoneyRx  = regexp.MustCompile(`(?i)R\$\s*[\d.,]+$`)
)

// CoerceInt turns an item or quantity cell into an integer. Native numbers are
// kept (floats round to nearest); text goes through a tolerant parse that
// drops a trailing ".0"/",0" decimal remnant, then falls back to keeping only
// the digits. Returns nil when nothing numeric remains.
func CoerceInt(c Cell) *int {
	if c.Kind == CellNumber {
		n := int(math.Round(c.Number))
		return &n
	}
	s := c.normalized()
	if s == "" {
		return nil
	}
	if m := decimalRemnantRx.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	digits := nonDigitRx.ReplaceAllString(s, "")
	if digits == "" {
		return nil
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	return &n
}

// CoerceMoney turns a price cell into a float. Native numbers are kept; text
// is normalized, stripped of the currency prefix and reduced to digits,
// separators and a leading minus. Separator disambiguation: with both present,
// "." is thousands and "," is decimal; a lone "," is the decimal mark; a lone
// "." is already standard. Returns nil for an empty remainder or a bare
// currency symbol.
func CoerceMoney(c Cell) *float64 {
	if c.Kind == CellNumber {
		f := c.Number
		return &f
	}
	s := currencyRx.ReplaceAllString(c.normalized(), "")
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	s = b.String()
	if s == "" || s == "-" {
		return nil
	}
	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// CleanDescription strips trailing grand-total fragments ("VALOR TOTAL R$ ..."
// or a bare "R$ ..." amount) that leak into the description when the upstream
// table detector merges the neighbouring column.
func CleanDescription(s string) string {
	s = strings.TrimSpace(totalSuffixRx.ReplaceAllString(s, ""))
	s = strings.TrimSpace(trailingMoneyRx.ReplaceAllString(s, ""))
	return s
}

// CleanUnit uppercases the unit code and strips trailing punctuation
// ("un." -> "UN"). The unit comes from its own column only; it is never
// inferred from the description.
func CleanUnit(s string) string {
	return strings.TrimRight(strings.ToUpper(s), ".,")
}
