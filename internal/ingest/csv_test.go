package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coder-gabrielsantos/sigecon-extractor/internal/extractor"
)

func TestReadCSVSemicolon(t *testing.T) {
	data := []byte("ITEM;DESCRIÇÃO;UNID.;QUANT.;VALOR UNIT.;VALOR TOTAL\n" +
		"1;PARAFUSO SEXTAVADO;UN;100;R$ 5,00;R$ 500,00\n" +
		"2;TUBO PVC 100MM;UN;;R$ 21,50;\n")

	rows, err := ReadCSV(data)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Len(t, rows[0], 6)
	assert.Equal(t, extractor.TextCell("DESCRIÇÃO"), rows[0][1])
	assert.Equal(t, extractor.TextCell("R$ 5,00"), rows[1][4])
	assert.Equal(t, extractor.Cell{}, rows[2][3], "blank field reads as absent")
	assert.Equal(t, extractor.Cell{}, rows[2][5])
}

func TestReadCSVComma(t *testing.T) {
	data := []byte("ITEM,DESCRIÇÃO,UNID.\n1,PARAFUSO,UN\n")

	rows, err := ReadCSV(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, extractor.TextCell("PARAFUSO"), rows[1][1])
}

func TestReadCSVRaggedRows(t *testing.T) {
	data := []byte("a;b;c\nd;e\n")

	rows, err := ReadCSV(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Len(t, rows[0], 3)
	assert.Len(t, rows[1], 2)
}

func TestReadRowsUnsupportedExtension(t *testing.T) {
	_, err := ReadRows("docx", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docx")
}
