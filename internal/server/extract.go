package server

import (
	"fmt"
	"io"
	"math"
	"net/http"
	"path/filepath"

	"github.com/coder-gabrielsantos/sigecon-extractor/constants"
	"github.com/coder-gabrielsantos/sigecon-extractor/internal/extractor"
	"github.com/coder-gabrielsantos/sigecon-extractor/internal/ingest"
)

// extractResponse is the summary envelope of the original API: aggregate
// counts and sums alongside the raw rows and issues.
type extractResponse struct {
	Count          int                `json:"count"`
	CountComItem   int                `json:"count_com_item"`
	SomaValorTotal float64            `json:"soma_valor_total"`
	SomaValorUnit  float64            `json:"soma_valor_unit"`
	Moeda          string             `json:"moeda"`
	Columns        []string           `json:"columns"`
	Rows           []extractor.Record `json:"rows"`
	Issues         []extractor.Issue  `json:"issues"`
}

var resultColumns = []string{"item", "descricao", "unid", "quant", "valor_unit", "valor_total"}

func (s *Service) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}
	defer file.Close()

	ext := constants.NormalizeExt(filepath.Ext(header.Filename))
	if !constants.IsAllowedExt(ext) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("file extension %q is not accepted", ext))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read upload")
		return
	}
	if len(data) == 0 {
		writeError(w, http.StatusBadRequest, "empty file")
		return
	}

	rows, err := ingest.ReadRows(ext, data)
	if err != nil {
		s.logger.Error("extract.read_failed", "filename", header.Filename, "err", err)
		writeError(w, http.StatusInternalServerError, "error processing document")
		return
	}

	result, err := s.extractor.Extract(rows)
	if err != nil {
		s.logger.Error("extract.failed", "filename", header.Filename, "err", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := extractResponse{
		Count:   len(result.Rows),
		Moeda:   "BRL",
		Columns: resultColumns,
		Rows:    result.Rows,
		Issues:  result.Issues,
	}
	for _, rec := range result.Rows {
		if rec.Item != nil {
			resp.CountComItem++
		}
		if rec.TotalPrice != nil {
			resp.SomaValorTotal += *rec.TotalPrice
		}
		if rec.UnitPrice != nil {
			resp.SomaValorUnit += *rec.UnitPrice
		}
	}
	resp.SomaValorTotal = math.Round(resp.SomaValorTotal*100) / 100
	resp.SomaValorUnit = math.Round(resp.SomaValorUnit*100) / 100

	writeJSON(w, http.StatusOK, resp)
}
