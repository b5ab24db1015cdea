package reconcile

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-manager-pro/internal/domain/stock"
)

// ReportRow fila del reporte de stock conciliado.
type ReportRow struct {
	Name     string
	Code     string
	Initial  decimal.Decimal
	TotalIn  decimal.Decimal
	TotalOut decimal.Decimal
	Current  decimal.Decimal
	MinLimit decimal.Decimal
	Status   stock.Status
}

// BuildReport genera una fila por producto del catálogo, en el orden del
// catálogo (la vista interactiva ordena por nombre; aquí se preserva el
// orden de entrada a propósito, cada llamador reproduce el suyo).
// Los productos sin movimientos aparecen con totales en cero.
func BuildReport(catalog []CatalogProduct, agg map[string]stock.Totals) []ReportRow {
	rows := make([]ReportRow, 0, len(catalog))
	for _, p := range catalog {
		totals := agg[p.Name]
		current := stock.Level(p.InitialStock, totals.In, totals.Out)
		rows = append(rows, ReportRow{
			Name:     p.Name,
			Code:     p.Code,
			Initial:  p.InitialStock,
			TotalIn:  totals.In,
			TotalOut: totals.Out,
			Current:  current,
			MinLimit: p.MinLimit,
			Status:   stock.StatusOf(current, p.MinLimit),
		})
	}
	return rows
}
