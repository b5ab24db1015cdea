package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/stock-manager-pro/internal/application/batch"
	"github.com/tu-usuario/stock-manager-pro/internal/domain"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/reconcile"
)

var _ batch.WorkbookReader = (*Reader)(nil)

// Reader ingestión del libro de conciliación (.xlsx).
type Reader struct{}

// NewReader construye el lector.
func NewReader() *Reader {
	return &Reader{}
}

// Read abre el libro y tipifica las hojas PRODUCTS y MOVEMENTS. La hoja de
// productos sin alguna columna requerida devuelve domain.ErrMissingColumns;
// una hoja ausente o un libro ilegible son errores duros igualmente.
func (rd *Reader) Read(r io.Reader) (*batch.Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("excel: abrir libro: %w", err)
	}
	defer f.Close()

	productCells, err := sheetRows(f, SheetProducts)
	if err != nil {
		return nil, err
	}
	movementCells, err := sheetRows(f, SheetMovements)
	if err != nil {
		return nil, err
	}

	catalog, err := parseCatalog(productCells)
	if err != nil {
		return nil, err
	}
	rows := parseMovementRows(movementCells)

	return &batch.Workbook{
		Catalog:       catalog,
		Rows:          rows,
		ProductCells:  productCells,
		MovementCells: movementCells,
	}, nil
}

func sheetRows(f *excelize.File, name string) ([][]string, error) {
	for _, sheet := range f.GetSheetList() {
		if strings.EqualFold(strings.TrimSpace(sheet), name) {
			rows, err := f.GetRows(sheet)
			if err != nil {
				return nil, fmt.Errorf("excel: leer hoja %s: %w", name, err)
			}
			return rows, nil
		}
	}
	return nil, fmt.Errorf("excel: hoja %s no encontrada: %w", name, domain.ErrInvalidInput)
}

// columnIndex posición de cada cabecera, normalizada a mayúsculas sin
// espacios sobrantes. -1 = columna ausente.
func columnIndex(header []string, want string) int {
	for i, cell := range header {
		if strings.EqualFold(strings.TrimSpace(cell), want) {
			return i
		}
	}
	return -1
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseDecimal celda numérica tolerante: vacía o ilegible → nil. Acepta coma
// decimal, habitual en hojas en locale europeo.
func parseDecimal(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

func parseCatalog(cells [][]string) ([]reconcile.CatalogProduct, error) {
	if len(cells) == 0 {
		return nil, domain.ErrMissingColumns
	}
	header := cells[0]
	nameIdx := columnIndex(header, ColProductName)
	codeIdx := columnIndex(header, ColProductCode)
	initialIdx := columnIndex(header, ColInitialStock)
	minIdx := columnIndex(header, ColMinLimit)
	if nameIdx < 0 || codeIdx < 0 || initialIdx < 0 || minIdx < 0 {
		return nil, domain.ErrMissingColumns
	}

	catalog := make([]reconcile.CatalogProduct, 0, len(cells)-1)
	for _, row := range cells[1:] {
		name := cellAt(row, nameIdx)
		if name == "" {
			continue
		}
		p := reconcile.CatalogProduct{
			Name: name,
			Code: cellAt(row, codeIdx),
		}
		if d := parseDecimal(cellAt(row, initialIdx)); d != nil {
			p.InitialStock = *d
		}
		if d := parseDecimal(cellAt(row, minIdx)); d != nil {
			p.MinLimit = *d
		}
		catalog = append(catalog, p)
	}
	return catalog, nil
}

// parseMovementRows tipifica las filas de movimiento. Ninguna columna es
// obligatoria aquí: una fila sin identidad resoluble termina en la hoja de
// errores, no detiene la lectura.
func parseMovementRows(cells [][]string) []reconcile.Row {
	if len(cells) == 0 {
		return nil
	}
	header := cells[0]
	nameAutoIdx := columnIndex(header, ColNameAuto)
	nameManualIdx := columnIndex(header, ColNameManual)
	codeAutoIdx := columnIndex(header, ColCodeAuto)
	codeManualIdx := columnIndex(header, ColCodeManual)
	inIdx := columnIndex(header, ColIn)
	outIdx := columnIndex(header, ColOut)

	rows := make([]reconcile.Row, 0, len(cells)-1)
	for i, row := range cells[1:] {
		rows = append(rows, reconcile.Row{
			Index:      i + 1,
			NameAuto:   cellAt(row, nameAutoIdx),
			NameManual: cellAt(row, nameManualIdx),
			CodeAuto:   cellAt(row, codeAutoIdx),
			CodeManual: cellAt(row, codeManualIdx),
			In:         parseDecimal(cellAt(row, inIdx)),
			Out:        parseDecimal(cellAt(row, outIdx)),
			Raw:        append([]string{}, row...),
		})
	}
	return rows
}
