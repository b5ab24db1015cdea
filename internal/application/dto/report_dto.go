package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActivityEntry actividad acumulada de un producto (entradas + salidas).
type ActivityEntry struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	TotalIn   decimal.Decimal `json:"total_in"`
	TotalOut  decimal.Decimal `json:"total_out"`
	Activity  decimal.Decimal `json:"activity"`
}

// ActivityReportResponse los 5 productos más y menos activos, ambos en orden
// descendente de actividad.
type ActivityReportResponse struct {
	MostActive  []ActivityEntry `json:"most_active"`
	LeastActive []ActivityEntry `json:"least_active"`
}

// MonthlyBucket resumen de un mes calendario.
type MonthlyBucket struct {
	Month     string          `json:"month"` // "2006-01"
	TotalIn   decimal.Decimal `json:"total_in"`
	TotalOut  decimal.Decimal `json:"total_out"`
	Movements int             `json:"movements"`
}

// MonthlySummaryResponse hasta 12 meses, del más reciente al más antiguo.
type MonthlySummaryResponse struct {
	Items []MonthlyBucket `json:"items"`
}

// DashboardSummary resumen general que refresca el ciclo periódico.
type DashboardSummary struct {
	TotalProducts  int                `json:"total_products"`
	LowStockCount  int                `json:"low_stock_count"`
	TotalMovements int                `json:"total_movements"`
	MovementsToday int                `json:"movements_today"`
	TotalStock     decimal.Decimal    `json:"total_stock"`
	StockValue     decimal.Decimal    `json:"stock_value"` // Σ current × price (solo con precio)
	LastMovements  []MovementResponse `json:"last_movements"`
	RefreshedAt    time.Time          `json:"refreshed_at"`
}
