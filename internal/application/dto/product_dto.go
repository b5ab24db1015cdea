package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto.
// Category vacía cae en la categoría por defecto; Price nulo = sin precio.
type CreateProductRequest struct {
	Name         string           `json:"name" validate:"required,min=1,max=200"`
	Code         string           `json:"code"`
	Category     string           `json:"category"`
	InitialStock int64            `json:"initial_stock" validate:"min=0"`
	MinLimit     int64            `json:"min_limit" validate:"min=0"`
	Price        *decimal.Decimal `json:"price"`
}

// UpdateProductRequest entrada para actualizar un producto. Reemplazo
// completo: los campos ausentes quedan en su valor cero (Price nulo borra el
// precio), igual que el formulario de edición original.
type UpdateProductRequest struct {
	Name         string           `json:"name" validate:"required,min=1,max=200"`
	Code         string           `json:"code"`
	Category     string           `json:"category"`
	InitialStock int64            `json:"initial_stock" validate:"min=0"`
	MinLimit     int64            `json:"min_limit" validate:"min=0"`
	Price        *decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto con su stock derivado.
type ProductResponse struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Code         string           `json:"code,omitempty"`
	Category     string           `json:"category"`
	InitialStock int64            `json:"initial_stock"`
	MinLimit     int64            `json:"min_limit"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	CurrentStock decimal.Decimal  `json:"current_stock"`
	Status       string           `json:"status"` // OK | LOW
}

// ProductListResponse listado filtrado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
