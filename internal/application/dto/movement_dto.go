package dto

import "github.com/shopspring/decimal"

// CreateMovementRequest body para POST /api/movements. La fecha la asigna el
// servidor en el momento del registro; no se acepta del cliente.
type CreateMovementRequest struct {
	ProductID int64  `json:"product_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=in out"`
	Quantity  int64  `json:"quantity" validate:"min=0"`
	Notes     string `json:"notes"`
}

// MovementResponse salida de un movimiento. ProductName se resuelve en el
// momento de la consulta; un producto ya borrado aparece como "Desconocido".
type MovementResponse struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Type        string `json:"type"`
	Quantity    int64  `json:"quantity"`
	Date        string `json:"date"` // "2006-01-02 15:04:05"; vacía si ilegible
	Notes       string `json:"notes,omitempty"`
}

// MovementListResponse listado filtrado de movimientos, del más reciente al
// más antiguo.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// HistoryResponse historial por rango de fechas con totales agregados.
type HistoryResponse struct {
	From     string             `json:"from"`
	To       string             `json:"to"`
	Items    []MovementResponse `json:"items"`
	TotalIn  decimal.Decimal    `json:"total_in"`
	TotalOut decimal.Decimal    `json:"total_out"`
}
