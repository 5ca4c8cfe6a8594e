package ingest

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/coder-gabrielsantos/sigecon-extractor/internal/extractor"
)

// Text placement tolerances, in PDF points.
const (
	rowYTolerance = 2.0 // fragments within this vertical distance share a row
	wordXGap      = 1.0 // a wider horizontal gap separates words inside a cell
	cellXGap      = 6.0 // a wider horizontal gap starts a new cell
)

// ReadPDF extracts every page's text and rebuilds the grid the upstream
// detector hands over: fragments clustered into rows by vertical position,
// ordered left to right, split into cells at horizontal gaps. The extractor
// itself never sees page geometry.
func ReadPDF(data []byte) ([]extractor.Row, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	var rows []extractor.Row
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		rows = append(rows, groupTexts(page.Content().Text)...)
	}
	return rows, nil
}

// groupTexts clusters one page's text fragments into cell rows.
func groupTexts(texts []pdf.Text) []extractor.Row {
	type line struct {
		y     float64
		parts []pdf.Text
	}
	var lines []line
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		placed := false
		for i := range lines {
			if math.Abs(lines[i].y-t.Y) < rowYTolerance {
				lines[i].parts = append(lines[i].parts, t)
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, line{y: t.Y, parts: []pdf.Text{t}})
		}
	}

	// PDF y grows upward; read top-down.
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].y > lines[j].y })

	rows := make([]extractor.Row, 0, len(lines))
	for _, ln := range lines {
		sort.SliceStable(ln.parts, func(i, j int) bool { return ln.parts[i].X < ln.parts[j].X })
		if row := splitCells(ln.parts); len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}

// splitCells joins adjacent fragments left to right, inserting a space at word
// gaps and starting a new cell when the horizontal gap exceeds cellXGap.
func splitCells(parts []pdf.Text) extractor.Row {
	var row extractor.Row
	var cell strings.Builder
	var endX float64

	flush := func() {
		if s := strings.TrimSpace(cell.String()); s != "" {
			row = append(row, extractor.TextCell(s))
		}
		cell.Reset()
	}

	for i, t := range parts {
		if i > 0 {
			gap := t.X - endX
			if gap > cellXGap {
				flush()
			} else if gap > wordXGap {
				cell.WriteByte(' ')
			}
		}
		cell.WriteString(t.S)
		if right := t.X + t.W; right > endX {
			endX = right
		}
	}
	flush()
	return row
}
