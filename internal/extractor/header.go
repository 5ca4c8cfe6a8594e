package extractor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coder-gabrielsantos/sigecon-extractor/constants"
)

// Fatal extraction failures. Everything else degrades into nil fields and
// per-row issues.
var (
	ErrHeaderNotFound = errors.New("table header not found with enough confidence")
	ErrColumnMapping  = errors.New("could not map all required columns")
)

// cellMatches reports whether the cell's normalized upper-cased text contains
// one of the field's header aliases.
func cellMatches(c Cell, field constants.Field) bool {
	u := strings.ToUpper(c.normalized())
	if u == "" {
		return false
	}
	for _, alias := range constants.HeaderAliases[field] {
		if strings.Contains(u, alias) {
			return true
		}
	}
	return false
}

// scoreHeaderRow counts how many canonical fields have at least one matching
// cell in the row.
func scoreHeaderRow(row Row) int {
	score := 0
	for _, field := range constants.Fields {
		for _, c := range row {
			if cellMatches(c, field) {
				score++
				break
			}
		}
	}
	return score
}

// locateHeader picks the best-scoring candidate row. The first row reaching
// the maximum wins: later rows with equal or lower scores never replace it.
func locateHeader(rows []Row, minScore int) (int, error) {
	bestIdx, bestScore := -1, -1
	for i, row := range rows {
		if score := scoreHeaderRow(row); score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	if bestIdx < 0 || bestScore < minScore {
		return -1, fmt.Errorf("%w: best score %d, need %d", ErrHeaderNotFound, bestScore, minScore)
	}
	return bestIdx, nil
}

// mapColumns resolves each canonical field to the first column, left to right,
// whose header text matches one of its aliases. Every required field must
// resolve; the total column may be configured optional.
func mapColumns(header Row, optionalTotal bool) (map[constants.Field]int, error) {
	cols := make(map[constants.Field]int, len(constants.Fields))
	for _, field := range constants.Fields {
		for j, c := range header {
			if cellMatches(c, field) {
				cols[field] = j
				break
			}
		}
	}
	var missing []string
	for _, field := range constants.Fields {
		if _, ok := cols[field]; !ok {
			if field == constants.FieldTotalPrice && optionalTotal {
				continue
			}
			missing = append(missing, string(field))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrColumnMapping, strings.Join(missing, ", "))
	}
	return cols, nil
}
