package batch

import (
	"io"

	"github.com/google/uuid"

	"github.com/tu-usuario/stock-manager-pro/internal/application/dto"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/reconcile"
	"github.com/tu-usuario/stock-manager-pro/pkg/logger"
)

// ReconcileUseCase pipeline de conciliación de un libro completo. Cada
// ejecución recibe un RunID que etiqueta sus líneas de log; el pipeline
// nunca se detiene por filas inválidas, solo por un libro ilegible o una
// hoja de productos incompleta.
type ReconcileUseCase struct {
	reader WorkbookReader
	writer WorkbookWriter
	log    *logger.Logger
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(reader WorkbookReader, writer WorkbookWriter, log *logger.Logger) *ReconcileUseCase {
	return &ReconcileUseCase{reader: reader, writer: writer, log: log.Component("reconcile")}
}

// Run ejecuta la conciliación: leer, resolver y agregar, reportar, escribir.
// Devuelve el resultado y los bytes del libro de salida.
func (uc *ReconcileUseCase) Run(input io.Reader) (*Result, []byte, error) {
	runID := uuid.New().String()
	log := uc.log.With().Str("run_id", runID).Logger()

	wb, err := uc.reader.Read(input)
	if err != nil {
		log.Error().Err(err).Msg("libro de entrada ilegible")
		return nil, nil, err
	}
	log.Info().
		Int("products", len(wb.Catalog)).
		Int("movement_rows", len(wb.Rows)).
		Msg("libro de entrada leído")

	agg, rowErrs := reconcile.Aggregate(wb.Rows, wb.Catalog)
	report := reconcile.BuildReport(wb.Catalog, agg)

	res := &Result{
		RunID:    runID,
		Workbook: wb,
		Report:   report,
		Errors:   rowErrs,
	}
	out, err := uc.writer.Write(res)
	if err != nil {
		log.Error().Err(err).Msg("no se pudo escribir el libro de salida")
		return nil, nil, err
	}
	log.Info().
		Int("report_rows", len(report)).
		Int("errors", len(rowErrs)).
		Msg("conciliación completada")
	return res, out, nil
}

// Summary resumen serializable de un resultado (cabecera HTTP y log del run).
func (res *Result) Summary() dto.BatchSummaryResponse {
	summary := dto.BatchSummaryResponse{
		RunID:        res.RunID,
		ProductRows:  len(res.Workbook.Catalog),
		MovementRows: len(res.Workbook.Rows),
		ErrorCount:   len(res.Errors),
	}
	for _, e := range res.Errors {
		summary.Errors = append(summary.Errors, dto.BatchRowError{
			Row:     e.RowIndex,
			Message: e.Message,
			Raw:     e.Raw,
		})
	}
	return summary
}
