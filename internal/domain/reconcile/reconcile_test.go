package reconcile_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-manager-pro/internal/domain/reconcile"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/stock"
)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }
func dp(n int64) *decimal.Decimal {
	v := decimal.NewFromInt(n)
	return &v
}

var catalog = []reconcile.CatalogProduct{
	{Name: "Harina", Code: "H-01", InitialStock: d(50), MinLimit: d(10)},
	{Name: "Azúcar", Code: "", InitialStock: d(20), MinLimit: d(5)},
	{Name: "Sal", Code: "S-03", InitialStock: d(5), MinLimit: d(8)},
}

// ── NoCode ────────────────────────────────────────────────────────────────────

func TestNoCode_ValoresAusentes(t *testing.T) {
	for _, c := range []string{"", "  ", "0", "0.0", "nan", "NaN", "NAN"} {
		assert.True(t, reconcile.NoCode(c), "el código %q debe tratarse como ausente", c)
	}
	for _, c := range []string{"H-01", "7", "0.5", "abc"} {
		assert.False(t, reconcile.NoCode(c), "el código %q es válido", c)
	}
}

// ── Resolve: orden de la cadena ───────────────────────────────────────────────

func TestResolve_NombrePrimarioGana(t *testing.T) {
	index := reconcile.BuildCodeIndex(catalog)
	row := reconcile.Row{NameAuto: "Harina", NameManual: "Azúcar", CodeAuto: "S-03"}
	assert.Equal(t, "Harina", reconcile.Resolve(row, index),
		"la columna primaria de nombre prevalece sobre todo lo demás")
}

func TestResolve_NombreAlternativoSegundo(t *testing.T) {
	index := reconcile.BuildCodeIndex(catalog)
	row := reconcile.Row{NameManual: "Azúcar", CodeAuto: "S-03"}
	assert.Equal(t, "Azúcar", reconcile.Resolve(row, index))
}

func TestResolve_CodigoPrimarioTercero(t *testing.T) {
	index := reconcile.BuildCodeIndex(catalog)
	row := reconcile.Row{CodeAuto: "S-03", CodeManual: "H-01"}
	assert.Equal(t, "Sal", reconcile.Resolve(row, index))
}

func TestResolve_CodigoAlternativoUltimo(t *testing.T) {
	index := reconcile.BuildCodeIndex(catalog)
	row := reconcile.Row{CodeManual: "H-01"}
	assert.Equal(t, "Harina", reconcile.Resolve(row, index))
}

func TestResolve_CodigoCeroNoResuelve(t *testing.T) {
	index := reconcile.BuildCodeIndex(catalog)
	row := reconcile.Row{CodeAuto: "0", CodeManual: "nan"}
	assert.Equal(t, "", reconcile.Resolve(row, index), "códigos ausentes no resuelven")
}

func TestResolve_SinIdentidad(t *testing.T) {
	index := reconcile.BuildCodeIndex(catalog)
	assert.Equal(t, "", reconcile.Resolve(reconcile.Row{}, index))
}

func TestBuildCodeIndex_UltimoDuplicadoGana(t *testing.T) {
	dup := []reconcile.CatalogProduct{
		{Name: "Primero", Code: "X-1"},
		{Name: "Segundo", Code: "X-1"},
	}
	index := reconcile.BuildCodeIndex(dup)
	assert.Equal(t, "Segundo", index["X-1"])
}

// ── Aggregate ─────────────────────────────────────────────────────────────────

func TestAggregate_TodoElCatalogoPresente(t *testing.T) {
	agg, errs := reconcile.Aggregate(nil, catalog)
	require.Empty(t, errs)
	require.Len(t, agg, 3, "cada producto del catálogo tiene entrada, aun sin movimientos")
	assert.True(t, agg["Sal"].In.IsZero())
}

func TestAggregate_AcumulaEntradasYSalidas(t *testing.T) {
	rows := []reconcile.Row{
		{Index: 1, NameAuto: "Harina", In: dp(10)},
		{Index: 2, NameAuto: "Harina", Out: dp(4)},
		{Index: 3, CodeAuto: "H-01", In: dp(2)},
	}
	agg, errs := reconcile.Aggregate(rows, catalog)
	require.Empty(t, errs)
	assert.True(t, d(12).Equal(agg["Harina"].In))
	assert.True(t, d(4).Equal(agg["Harina"].Out))
}

func TestAggregate_FilaConAmbasPatas(t *testing.T) {
	rows := []reconcile.Row{{Index: 1, NameAuto: "Azúcar", In: dp(6), Out: dp(2)}}
	agg, errs := reconcile.Aggregate(rows, catalog)
	require.Empty(t, errs)
	assert.True(t, d(6).Equal(agg["Azúcar"].In), "una fila puede aportar a entradas y salidas")
	assert.True(t, d(2).Equal(agg["Azúcar"].Out))
}

func TestAggregate_FilaIrresolubleVaAErrores(t *testing.T) {
	rows := []reconcile.Row{
		{Index: 1, NameAuto: "Harina", In: dp(1)},
		{Index: 2, CodeAuto: "NO-EXISTE", In: dp(5), Raw: []string{"", "", "NO-EXISTE"}},
	}
	agg, errs := reconcile.Aggregate(rows, catalog)

	require.Len(t, errs, 1)
	assert.Equal(t, 3, errs[0].RowIndex, "índice de datos 2 + cabecera = fila 3 de la hoja")
	assert.Contains(t, errs[0].Message, "no se encontró producto ni código")
	assert.Equal(t, []string{"", "", "NO-EXISTE"}, errs[0].Raw)
	assert.True(t, d(1).Equal(agg["Harina"].In), "las filas válidas siguen agregándose")
}

func TestAggregate_ProductoFueraDelCatalogo(t *testing.T) {
	rows := []reconcile.Row{{Index: 1, NameAuto: "Pimienta", In: dp(3)}}
	_, errs := reconcile.Aggregate(rows, catalog)

	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].RowIndex)
	assert.Contains(t, errs[0].Message, `"Pimienta"`)
}

// ── BuildReport ───────────────────────────────────────────────────────────────

func TestBuildReport_OrdenDelCatalogoYEstado(t *testing.T) {
	rows := []reconcile.Row{
		{Index: 1, NameAuto: "Harina", Out: dp(45)},
	}
	agg, _ := reconcile.Aggregate(rows, catalog)
	report := reconcile.BuildReport(catalog, agg)

	require.Len(t, report, 3)
	assert.Equal(t, "Harina", report[0].Name, "se preserva el orden del catálogo")
	assert.True(t, d(5).Equal(report[0].Current), "50 - 45 = 5")
	assert.Equal(t, stock.StatusLow, report[0].Status, "5 < 10 es LOW")

	assert.Equal(t, "Azúcar", report[1].Name)
	assert.True(t, d(20).Equal(report[1].Current), "sin movimientos conserva el inicial")
	assert.Equal(t, stock.StatusOK, report[1].Status)

	assert.Equal(t, "Sal", report[2].Name)
	assert.Equal(t, stock.StatusLow, report[2].Status, "5 < 8 aun sin movimientos")
}
