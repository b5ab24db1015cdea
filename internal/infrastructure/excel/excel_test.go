package excel_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/stock-manager-pro/internal/application/batch"
	"github.com/tu-usuario/stock-manager-pro/internal/domain"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/reconcile"
	"github.com/tu-usuario/stock-manager-pro/internal/infrastructure/excel"
)

// buildWorkbook arma un libro .xlsx en memoria con las hojas indicadas.
func buildWorkbook(t *testing.T, sheets map[string][][]string) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for i, row := range rows {
			cells := make([]interface{}, len(row))
			for j, c := range row {
				cells[j] = c
			}
			addr, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, addr, &cells))
		}
	}
	require.NoError(t, f.DeleteSheet("Sheet1"))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

var productHeader = []string{
	excel.ColProductName, excel.ColProductCode, excel.ColInitialStock, excel.ColMinLimit,
}

var movementHeader = []string{
	excel.ColNameAuto, excel.ColNameManual, excel.ColCodeAuto, excel.ColCodeManual,
	excel.ColIn, excel.ColOut,
}

// ── Reader ────────────────────────────────────────────────────────────────────

func TestReader_LibroCompleto(t *testing.T) {
	src := buildWorkbook(t, map[string][][]string{
		excel.SheetProducts: {
			productHeader,
			{"Harina", "H-01", "50", "10"},
			{"Azúcar", "", "20,5", "5"},
		},
		excel.SheetMovements: {
			movementHeader,
			{"Harina", "", "", "", "10", ""},
			{"", "", "H-01", "", "", "4"},
			{"", "", "", "", "abc", "3"},
		},
	})

	wb, err := excel.NewReader().Read(src)
	require.NoError(t, err)

	require.Len(t, wb.Catalog, 2)
	assert.Equal(t, "Harina", wb.Catalog[0].Name)
	assert.Equal(t, "H-01", wb.Catalog[0].Code)
	assert.Equal(t, "50", wb.Catalog[0].InitialStock.String())
	assert.Equal(t, "20.5", wb.Catalog[1].InitialStock.String(), "la coma decimal se acepta")

	require.Len(t, wb.Rows, 3)
	assert.Equal(t, 1, wb.Rows[0].Index, "los índices de datos son 1-based")
	assert.Equal(t, "Harina", wb.Rows[0].NameAuto)
	require.NotNil(t, wb.Rows[0].In)
	assert.Equal(t, "10", wb.Rows[0].In.String())
	assert.Equal(t, "H-01", wb.Rows[1].CodeAuto)
	assert.Nil(t, wb.Rows[2].In, "una celda no numérica aporta nil (cero)")
	require.NotNil(t, wb.Rows[2].Out)

	// Eco para el libro de salida
	assert.Len(t, wb.ProductCells, 3)
	assert.Len(t, wb.MovementCells, 4)
}

func TestReader_ColumnaRequeridaAusenteEsFatal(t *testing.T) {
	src := buildWorkbook(t, map[string][][]string{
		excel.SheetProducts: {
			{excel.ColProductName, excel.ColProductCode, excel.ColInitialStock}, // sin MIN LIMIT
			{"Harina", "H-01", "50"},
		},
		excel.SheetMovements: {movementHeader},
	})

	_, err := excel.NewReader().Read(src)
	assert.ErrorIs(t, err, domain.ErrMissingColumns)
}

func TestReader_HojaAusente(t *testing.T) {
	src := buildWorkbook(t, map[string][][]string{
		excel.SheetProducts: {productHeader},
	})
	_, err := excel.NewReader().Read(src)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReader_FilasSinNombreSeOmiten(t *testing.T) {
	src := buildWorkbook(t, map[string][][]string{
		excel.SheetProducts: {
			productHeader,
			{"", "X-1", "5", "1"},
			{"Harina", "", "50", "10"},
		},
		excel.SheetMovements: {movementHeader},
	})
	wb, err := excel.NewReader().Read(src)
	require.NoError(t, err)
	require.Len(t, wb.Catalog, 1)
	assert.Equal(t, "Harina", wb.Catalog[0].Name)
}

// ── Writer ────────────────────────────────────────────────────────────────────

func reconcileResult(t *testing.T, src *bytes.Reader) *batch.Result {
	t.Helper()
	wb, err := excel.NewReader().Read(src)
	require.NoError(t, err)
	agg, errs := reconcile.Aggregate(wb.Rows, wb.Catalog)
	return &batch.Result{
		RunID:    "test-run",
		Workbook: wb,
		Report:   reconcile.BuildReport(wb.Catalog, agg),
		Errors:   errs,
	}
}

func TestWriter_HojasDeSalida(t *testing.T) {
	src := buildWorkbook(t, map[string][][]string{
		excel.SheetProducts: {
			productHeader,
			{"Harina", "H-01", "50", "10"},
		},
		excel.SheetMovements: {
			movementHeader,
			{"Harina", "", "", "", "10", "45"},
		},
	})
	res := reconcileResult(t, src)
	require.Empty(t, res.Errors)

	data, err := excel.NewWriter().Write(res)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, excel.SheetProducts)
	assert.Contains(t, sheets, excel.SheetMovements)
	assert.Contains(t, sheets, excel.SheetStock)
	assert.NotContains(t, sheets, excel.SheetErrors, "sin errores no hay hoja ERRORS")

	stockRows, err := f.GetRows(excel.SheetStock)
	require.NoError(t, err)
	require.Len(t, stockRows, 2)
	assert.Equal(t, "Harina", stockRows[1][0])
	assert.Equal(t, "15", stockRows[1][5], "50 + 10 - 45 = 15")
	assert.Equal(t, "OK", stockRows[1][7])
}

func TestWriter_HojaDeErroresSoloSiHayErrores(t *testing.T) {
	src := buildWorkbook(t, map[string][][]string{
		excel.SheetProducts: {
			productHeader,
			{"Harina", "H-01", "50", "10"},
		},
		excel.SheetMovements: {
			movementHeader,
			{"", "", "ZZZ", "", "5", ""},
		},
	})
	res := reconcileResult(t, src)
	require.Len(t, res.Errors, 1)

	data, err := excel.NewWriter().Write(res)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.Contains(t, f.GetSheetList(), excel.SheetErrors)
	errRows, err := f.GetRows(excel.SheetErrors)
	require.NoError(t, err)
	require.Len(t, errRows, 2)
	assert.Equal(t, "2", errRows[1][0], "fila de datos 1 + cabecera = fila 2")
	assert.Contains(t, errRows[1][1], "no se encontró producto ni código")
}
