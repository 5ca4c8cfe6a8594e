// Package ingest turns uploaded documents into the ordered cell rows the
// extractor consumes. Readers handle container formats only; all table
// semantics stay in the extractor.
package ingest

import (
	"fmt"

	"github.com/coder-gabrielsantos/sigecon-extractor/constants"
	"github.com/coder-gabrielsantos/sigecon-extractor/internal/extractor"
)

// ReadRows dispatches on the normalized file extension and parses the document
// bytes into rows of cells.
func ReadRows(ext string, data []byte) ([]extractor.Row, error) {
	switch constants.NormalizeExt(ext) {
	case "pdf":
		return ReadPDF(data)
	case "xlsx":
		return ReadXLSX(data)
	case "csv":
		return ReadCSV(data)
	default:
		return nil, fmt.Errorf("unsupported file extension %q", ext)
	}
}
