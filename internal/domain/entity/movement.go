package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// DateLayout formato persistido de la fecha de un movimiento (fecha + hora).
const DateLayout = "2006-01-02 15:04:05"

// Movement representa una entrada o salida de cantidad contra un producto.
// ProductID puede apuntar a un producto ya eliminado: la fila se muestra como
// "Desconocido" en las vistas y no aporta a los agregados por producto.
type Movement struct {
	ID        int64
	ProductID int64
	Type      string // in, out
	Quantity  int64
	Date      time.Time // asignada al crear, nunca se edita; cero = fecha ilegible en disco
	Notes     string
}

// IsValidMovementType valida el enum de tipo de movimiento.
func IsValidMovementType(t string) bool {
	return t == MovementTypeIn || t == MovementTypeOut
}
