package extractor

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExtractor(cfg Config) *Extractor {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)
}

func TestExtractFullDocument(t *testing.T) {
	rows := []Row{
		row("PREFEITURA MUNICIPAL DE SÃO JOÃO"),
		row("ANEXO I", "TERMO DE REFERÊNCIA"),
		headerRow(),
		row("2", "TUBO PVC 1/2\"", "UN", "5", "R$ 3,00", "R$ 15,00"),
		row("", "", "", "", "", ""),
		row("1", "PARAFUSO SEXTAVADO", "UN", "100", "R$ 5,00", "R$ 500,00"),
		row("", "VALOR TOTAL", "", "", "", "R$ 515,00"),
		row("3", "NUNCA LIDO", "UN", "1", "R$ 1,00", "R$ 1,00"),
	}

	res, err := testExtractor(Config{}).Extract(rows)
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)
	assert.Empty(t, res.Issues)

	first, second := res.Rows[0], res.Rows[1]
	assert.Equal(t, intPtr(1), first.Item)
	assert.Equal(t, "PARAFUSO SEXTAVADO", first.Description)
	assert.Equal(t, intPtr(100), first.Quantity)
	assert.Equal(t, floatPtr(500), first.TotalPrice)

	assert.Equal(t, intPtr(2), second.Item)
	assert.Equal(t, "TUBO PVC 1/2″", second.Description)
	assert.Equal(t, "UN", second.Unit)
}

func TestExtractReconcilesTotal(t *testing.T) {
	extract := func(total string) *Record {
		rows := []Row{
			headerRow(),
			row("1", "CABO FLEXÍVEL 2,5MM", "M", "10", "R$ 3,00", total),
		}
		res, err := testExtractor(Config{}).Extract(rows)
		require.NoError(t, err)
		require.Len(t, res.Rows, 1)
		return &res.Rows[0]
	}

	assert.Equal(t, floatPtr(30), extract("").TotalPrice, "missing total is computed")
	assert.Equal(t, floatPtr(30), extract("R$ 30,04").TotalPrice, "within tolerance the computed total wins")
	assert.Equal(t, floatPtr(31), extract("R$ 31,00").TotalPrice, "past tolerance the extracted total stays")
}

func TestExtractMissingFieldsIssue(t *testing.T) {
	rows := []Row{
		headerRow(),
		row("1", "PARAFUSO SEXTAVADO", "UN", "", "", "R$ 30,00"),
	}
	res, err := testExtractor(Config{}).Extract(rows)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	require.Len(t, res.Issues, 1)

	issue := res.Issues[0]
	assert.Equal(t, IssueMissingFields, issue.Kind)
	assert.Equal(t, intPtr(1), issue.Item)
	assert.Equal(t, []string{"quant", "valor_unit"}, issue.Missing)
	require.NotNil(t, issue.Row)
	assert.Equal(t, "PARAFUSO SEXTAVADO", issue.Row.Description)
}

func TestExtractUnexpectedUnitIssue(t *testing.T) {
	rows := []Row{
		headerRow(),
		row("1", "PARAFUSO SEXTAVADO", "XYZ", "10", "R$ 3,00", "R$ 30,00"),
	}
	res, err := testExtractor(Config{}).Extract(rows)
	require.NoError(t, err)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, IssueUnexpectedUnit, res.Issues[0].Kind)
	assert.Equal(t, "XYZ", res.Issues[0].Unit)
}

func TestExtractIssueNeverBothKinds(t *testing.T) {
	rows := []Row{
		headerRow(),
		row("1", "", "XYZ", "10", "R$ 3,00", "R$ 30,00"),
	}
	res, err := testExtractor(Config{}).Extract(rows)
	require.NoError(t, err)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, IssueMissingFields, res.Issues[0].Kind)
	assert.Empty(t, res.Issues[0].Unit)
}

func TestExtractEmptyInput(t *testing.T) {
	res, err := testExtractor(Config{}).Extract(nil)
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
	require.Len(t, res.Issues, 1)
	assert.NotEmpty(t, res.Issues[0].Error)
}

func TestExtractSortsNilItemsLast(t *testing.T) {
	rows := []Row{
		headerRow(),
		row("", "SEM NUMERO", "UN", "1", "R$ 1,00", "R$ 1,00"),
		row("2", "SEGUNDO", "UN", "1", "R$ 1,00", "R$ 1,00"),
		row("1", "PRIMEIRO", "UN", "1", "R$ 1,00", "R$ 1,00"),
	}
	res, err := testExtractor(Config{}).Extract(rows)
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)
	assert.Equal(t, "PRIMEIRO", res.Rows[0].Description)
	assert.Equal(t, "SEGUNDO", res.Rows[1].Description)
	assert.Nil(t, res.Rows[2].Item)
}

func TestExtractShortRow(t *testing.T) {
	rows := []Row{
		headerRow(),
		row("1", "PARAFUSO SEXTAVADO"),
	}
	res, err := testExtractor(Config{}).Extract(rows)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, intPtr(1), res.Rows[0].Item)
	assert.Nil(t, res.Rows[0].Quantity)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, IssueMissingFields, res.Issues[0].Kind)
}

func TestExtractNumberCells(t *testing.T) {
	rows := []Row{
		headerRow(),
		{NumberCell(1), TextCell("LUMINÁRIA LED"), TextCell("UN"), NumberCell(2), NumberCell(49.52), Cell{}},
	}
	res, err := testExtractor(Config{}).Extract(rows)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, intPtr(1), res.Rows[0].Item)
	assert.Equal(t, intPtr(2), res.Rows[0].Quantity)
	assert.Equal(t, floatPtr(49.52), res.Rows[0].UnitPrice)
	assert.Equal(t, floatPtr(99.04), res.Rows[0].TotalPrice)
}

func TestExtractHeaderNotFound(t *testing.T) {
	rows := []Row{
		row("PREFEITURA MUNICIPAL DE SÃO JOÃO"),
		row("ATA DE REGISTRO DE PREÇOS"),
	}
	_, err := testExtractor(Config{}).Extract(rows)
	assert.ErrorIs(t, err, ErrHeaderNotFound)
}

func TestExtractOptionalTotal(t *testing.T) {
	rows := []Row{
		row("ITEM", "DESCRIÇÃO", "UNID.", "QUANT.", "VALOR UNIT."),
		row("1", "PARAFUSO SEXTAVADO", "UN", "10", "R$ 3,00"),
	}

	_, err := testExtractor(Config{}).Extract(rows)
	assert.ErrorIs(t, err, ErrColumnMapping)

	res, err := testExtractor(Config{OptionalTotal: true}).Extract(rows)
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, floatPtr(30), res.Rows[0].TotalPrice)
	assert.Empty(t, res.Issues)
}
