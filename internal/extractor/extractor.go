package extractor

import (
	"log/slog"
	"sort"
)

// Config selects the extraction behavior along the three axes the parser
// generations diverged on: the confidence floor for the header search, whether
// the total column must resolve, and the reconciliation tolerance.
type Config struct {
	MinHeaderScore int     // minimum alias-match score to accept a header row; default 4
	OptionalTotal  bool    // when true, VALOR TOTAL is computed instead of required
	TotalTolerance float64 // max |computed - extracted| for the computed total to win; default 0.05
}

// Result is the full outcome of one extraction pass.
type Result struct {
	Rows   []Record `json:"rows"`
	Issues []Issue  `json:"issues"`
}

// Extractor runs the table-structure inference and field normalization over a
// materialized row collection. It holds no state across calls and is safe for
// concurrent use.
type Extractor struct {
	logger *slog.Logger
	cfg    Config
}

// New applies defaults for unset config values.
func New(logger *slog.Logger, cfg Config) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinHeaderScore <= 0 {
		cfg.MinHeaderScore = 4
	}
	if cfg.TotalTolerance <= 0 {
		cfg.TotalTolerance = 0.05
	}
	return &Extractor{logger: logger, cfg: cfg}
}

// Extract locates the header row, maps columns, parses every data row up to
// the grand-total line, reconciles totals, reports per-row issues and orders
// the output by item number. The only fatal failures are ErrHeaderNotFound and
// ErrColumnMapping; malformed cells degrade into nil fields plus issues, and
// an empty input yields an empty result with a single error issue.
func (e *Extractor) Extract(rows []Row) (*Result, error) {
	if len(rows) == 0 {
		return &Result{
			Rows:   []Record{},
			Issues: []Issue{errorIssue("Nenhuma tabela encontrada no documento.")},
		}, nil
	}

	headerIdx, err := locateHeader(rows, e.cfg.MinHeaderScore)
	if err != nil {
		return nil, err
	}
	cols, err := mapColumns(rows[headerIdx], e.cfg.OptionalTotal)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("extract.header", "row", headerIdx, "columns", len(cols))

	result := &Result{Rows: []Record{}, Issues: []Issue{}}
	for _, row := range rows[headerIdx+1:] {
		if isEmptyRow(row) {
			continue
		}
		if isGrandTotalRow(row) {
			break
		}
		rec := parseRow(row, cols)
		reconcileTotal(&rec, e.cfg.TotalTolerance)
		if issue := buildIssue(rec, !e.cfg.OptionalTotal); issue != nil {
			result.Issues = append(result.Issues, *issue)
		}
		result.Rows = append(result.Rows, rec)
	}

	// Ascending by item number; rows without one go last, otherwise stable.
	sort.SliceStable(result.Rows, func(i, j int) bool {
		a, b := result.Rows[i].Item, result.Rows[j].Item
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})

	e.logger.Info("extract.done", "rows", len(result.Rows), "issues", len(result.Issues))
	return result, nil
}
