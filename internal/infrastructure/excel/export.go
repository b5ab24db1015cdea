package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/stock-manager-pro/internal/application/dto"
)

// StockWorkbook export XLSX de la vista de stock derivado (una hoja).
func StockWorkbook(rows []dto.StockRowResponse) ([]byte, error) {
	cells := [][]string{{"Producto", "Código", "Categoría", "Stock inicial", "Entradas", "Salidas", "Stock actual", "Límite mínimo", "Estado"}}
	for _, r := range rows {
		cells = append(cells, []string{
			r.Name,
			r.Code,
			r.Category,
			fmt.Sprintf("%d", r.InitialStock),
			r.TotalIn.String(),
			r.TotalOut.String(),
			r.CurrentStock.String(),
			fmt.Sprintf("%d", r.MinLimit),
			r.Status,
		})
	}
	return singleSheet("Stock", cells)
}

// HistoryWorkbook export XLSX del historial por rango, con fila de totales.
func HistoryWorkbook(h *dto.HistoryResponse) ([]byte, error) {
	cells := [][]string{{"Fecha", "Producto", "Tipo", "Cantidad", "Notas"}}
	for _, m := range h.Items {
		cells = append(cells, []string{m.Date, m.ProductName, m.Type, fmt.Sprintf("%d", m.Quantity), m.Notes})
	}
	cells = append(cells,
		[]string{},
		[]string{"Total entradas", h.TotalIn.String()},
		[]string{"Total salidas", h.TotalOut.String()},
	)
	return singleSheet("Historial", cells)
}

func singleSheet(sheet string, cells [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := writeCells(f, sheet, cells); err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: eliminar hoja por defecto: %w", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
