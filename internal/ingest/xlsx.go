package ingest

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/coder-gabrielsantos/sigecon-extractor/internal/extractor"
)

// ReadXLSX reads the first sheet of a workbook into cell rows. Raw cell values
// are requested so numeric cells keep their native value; a raw value that
// does not parse as a number stays text. Other sheets are ignored.
func ReadXLSX(data []byte) ([]extractor.Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	raw, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	rows := make([]extractor.Row, 0, len(raw))
	for _, cells := range raw {
		row := make(extractor.Row, 0, len(cells))
		for _, v := range cells {
			row = append(row, workbookCell(v))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// workbookCell classifies a raw workbook value as absent, native number, or
// text.
func workbookCell(v string) extractor.Cell {
	if v == "" {
		return extractor.Cell{}
	}
	if n, err := strconv.ParseFloat(v, 64); err == nil {
		return extractor.NumberCell(n)
	}
	return extractor.TextCell(v)
}
