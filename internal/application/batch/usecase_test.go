package batch_test

import (
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-manager-pro/internal/application/batch"
	"github.com/tu-usuario/stock-manager-pro/internal/domain"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/reconcile"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/stock"
	"github.com/tu-usuario/stock-manager-pro/pkg/logger"
)

// fakeReader devuelve un workbook fijo o un error.
type fakeReader struct {
	wb  *batch.Workbook
	err error
}

func (f *fakeReader) Read(io.Reader) (*batch.Workbook, error) { return f.wb, f.err }

// fakeWriter captura el resultado que recibe.
type fakeWriter struct {
	got *batch.Result
}

func (f *fakeWriter) Write(res *batch.Result) ([]byte, error) {
	f.got = res
	return []byte("xlsx-bytes"), nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func dp(n int64) *decimal.Decimal {
	v := decimal.NewFromInt(n)
	return &v
}

func TestReconcileUC_PipelineCompleto(t *testing.T) {
	wb := &batch.Workbook{
		Catalog: []reconcile.CatalogProduct{
			{Name: "Harina", Code: "H-01", InitialStock: decimal.NewFromInt(50), MinLimit: decimal.NewFromInt(10)},
		},
		Rows: []reconcile.Row{
			{Index: 1, NameAuto: "Harina", In: dp(10)},
			{Index: 2, NameAuto: "Inexistente", Out: dp(1)},
		},
	}
	writer := &fakeWriter{}
	uc := batch.NewReconcileUseCase(&fakeReader{wb: wb}, writer, testLogger())

	res, out, err := uc.Run(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx-bytes"), out)
	assert.NotEmpty(t, res.RunID, "cada ejecución recibe un RunID")
	assert.Same(t, res, writer.got, "el escritor recibe el resultado completo")

	require.Len(t, res.Report, 1)
	assert.Equal(t, "60", res.Report[0].Current.String(), "50 + 10")
	assert.Equal(t, stock.StatusOK, res.Report[0].Status)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 3, res.Errors[0].RowIndex)
}

func TestReconcileUC_LibroIlegibleAborta(t *testing.T) {
	uc := batch.NewReconcileUseCase(&fakeReader{err: domain.ErrMissingColumns}, &fakeWriter{}, testLogger())

	_, _, err := uc.Run(strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrMissingColumns, "el error del lector se propaga sin salida")
}

func TestResult_Summary(t *testing.T) {
	res := &batch.Result{
		RunID: "run-1",
		Workbook: &batch.Workbook{
			Catalog: make([]reconcile.CatalogProduct, 2),
			Rows:    make([]reconcile.Row, 5),
		},
		Errors: []reconcile.RowError{
			{RowIndex: 4, Message: "no se encontró producto ni código", Raw: []string{"a", "b"}},
		},
	}
	s := res.Summary()
	assert.Equal(t, "run-1", s.RunID)
	assert.Equal(t, 2, s.ProductRows)
	assert.Equal(t, 5, s.MovementRows)
	assert.Equal(t, 1, s.ErrorCount)
	require.Len(t, s.Errors, 1)
	assert.Equal(t, 4, s.Errors[0].Row)
}

func TestReconcileUC_RunIDsDistintos(t *testing.T) {
	wb := &batch.Workbook{}
	uc := batch.NewReconcileUseCase(&fakeReader{wb: wb}, &fakeWriter{}, testLogger())

	res1, _, err := uc.Run(strings.NewReader(""))
	require.NoError(t, err)
	res2, _, err := uc.Run(strings.NewReader(""))
	require.NoError(t, err)
	assert.NotEqual(t, res1.RunID, res2.RunID)
}
