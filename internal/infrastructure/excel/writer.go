package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/stock-manager-pro/internal/application/batch"
)

var _ batch.WorkbookWriter = (*Writer)(nil)

// Writer generación del libro de salida de una conciliación: eco de las dos
// hojas de entrada, la hoja STOCK computada y, solo si hubo errores, ERRORS.
type Writer struct{}

// NewWriter construye el escritor.
func NewWriter() *Writer {
	return &Writer{}
}

// Write serializa el libro de salida a bytes .xlsx.
func (w *Writer) Write(res *batch.Result) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeCells(f, SheetProducts, res.Workbook.ProductCells); err != nil {
		return nil, err
	}
	if err := writeCells(f, SheetMovements, res.Workbook.MovementCells); err != nil {
		return nil, err
	}

	stockCells := [][]string{{"NAME", "CODE", "INITIAL STOCK", "TOTAL IN", "TOTAL OUT", "CURRENT STOCK", "MIN LIMIT", "STATUS"}}
	for _, row := range res.Report {
		stockCells = append(stockCells, []string{
			row.Name,
			row.Code,
			row.Initial.String(),
			row.TotalIn.String(),
			row.TotalOut.String(),
			row.Current.String(),
			row.MinLimit.String(),
			string(row.Status),
		})
	}
	if err := writeCells(f, SheetStock, stockCells); err != nil {
		return nil, err
	}

	if len(res.Errors) > 0 {
		errorCells := [][]string{{"ROW", "ERROR", "RAW"}}
		for _, e := range res.Errors {
			cells := []string{fmt.Sprintf("%d", e.RowIndex), e.Message}
			cells = append(cells, e.Raw...)
			errorCells = append(errorCells, cells)
		}
		if err := writeCells(f, SheetErrors, errorCells); err != nil {
			return nil, err
		}
	}

	// La hoja por defecto de excelize no forma parte del formato
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: eliminar hoja por defecto: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

// writeCells crea la hoja y vuelca la matriz celda a celda, fila por fila.
func writeCells(f *excelize.File, sheet string, cells [][]string) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("excel: crear hoja %s: %w", sheet, err)
	}
	for i, row := range cells {
		values := make([]interface{}, len(row))
		for j, cell := range row {
			values[j] = cell
		}
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("excel: coordenadas fila %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, addr, &values); err != nil {
			return fmt.Errorf("excel: escribir hoja %s: %w", sheet, err)
		}
	}
	return nil
}
