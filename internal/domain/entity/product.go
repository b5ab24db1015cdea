package entity

import "github.com/shopspring/decimal"

// DefaultCategory categoría centinela asignada cuando el producto no declara una.
const DefaultCategory = "Otros"

// DefaultCategories lista inicial de categorías cuando no existe categories.json.
var DefaultCategories = []string{
	"Alimentos",
	"Bebidas",
	"Limpieza",
	"Embalaje",
	"Herramientas",
	"Papelería",
	"Farmacia",
	"Cosmética",
	"Hogar",
	DefaultCategory,
}

// Product representa un producto del catálogo.
// El stock actual nunca se almacena: se deriva siempre de InitialStock
// más los movimientos registrados, lo que elimina bugs de obsolescencia.
type Product struct {
	ID           int64
	Name         string // único en el catálogo
	Code         string // identificador opcional, puede estar vacío
	Category     string // texto libre contra la lista de categorías
	InitialStock int64
	MinLimit     int64            // umbral por debajo del cual el estado es LOW
	Price        *decimal.Decimal // nil = sin precio asignado (no se sobrecarga el cero)
}

// HasPrice indica si el producto tiene precio asignado.
func (p *Product) HasPrice() bool {
	return p.Price != nil
}
