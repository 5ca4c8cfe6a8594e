package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/coder-gabrielsantos/sigecon-extractor/internal/extractor"
)

// ReadCSV parses a delimited export into cell rows. Brazilian spreadsheet
// exports commonly use ";", so the delimiter is sniffed from the first line.
// Rows may have differing field counts.
func ReadCSV(data []byte) ([]extractor.Row, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffDelimiter(data)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	rows := make([]extractor.Row, 0, len(records))
	for _, fields := range records {
		row := make(extractor.Row, 0, len(fields))
		for _, v := range fields {
			if strings.TrimSpace(v) == "" {
				row = append(row, extractor.Cell{})
			} else {
				row = append(row, extractor.TextCell(v))
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}
