package dto

import "github.com/shopspring/decimal"

// StockRowResponse estado de stock derivado de un producto:
// current = initial + Σ entradas − Σ salidas.
type StockRowResponse struct {
	ProductID    int64           `json:"product_id"`
	Name         string          `json:"name"`
	Code         string          `json:"code,omitempty"`
	Category     string          `json:"category"`
	InitialStock int64           `json:"initial_stock"`
	TotalIn      decimal.Decimal `json:"total_in"`
	TotalOut     decimal.Decimal `json:"total_out"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinLimit     int64           `json:"min_limit"`
	Status       string          `json:"status"` // OK | LOW
}

// StockViewResponse vista de stock filtrada (all|low|ok), ordenada por nombre.
type StockViewResponse struct {
	Filter string             `json:"filter"`
	Items  []StockRowResponse `json:"items"`
	Total  int                `json:"total"`
}
