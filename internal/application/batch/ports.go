// Package batch orquesta la conciliación por lotes: lee un libro de cálculo
// externo, resuelve y agrega sus movimientos con el motor de
// internal/domain/reconcile y produce el libro de salida con el reporte de
// stock y, si las hubo, las filas con error.
package batch

import (
	"io"

	"github.com/tu-usuario/stock-manager-pro/internal/domain/reconcile"
)

// Workbook contenido leído del libro de entrada: el catálogo y las filas de
// movimiento ya tipados, más el eco celda a celda de ambas hojas para
// reproducirlas en el libro de salida.
type Workbook struct {
	Catalog []reconcile.CatalogProduct
	Rows    []reconcile.Row

	ProductCells  [][]string // cabecera + datos, tal cual la hoja de entrada
	MovementCells [][]string
}

// WorkbookReader puerto de ingestión del libro de entrada.
// Una hoja de productos sin alguna columna requerida es fatal: se devuelve
// domain.ErrMissingColumns y no se produce salida alguna.
type WorkbookReader interface {
	Read(r io.Reader) (*Workbook, error)
}

// WorkbookWriter puerto de generación del libro de salida.
type WorkbookWriter interface {
	Write(res *Result) ([]byte, error)
}

// Result resultado completo de una conciliación.
type Result struct {
	RunID    string
	Workbook *Workbook
	Report   []reconcile.ReportRow
	Errors   []reconcile.RowError
}
