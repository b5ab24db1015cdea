// Package stock implementa la aritmética pura de inventario: stock actual
// derivado y clasificación frente al límite mínimo. Todas las funciones son
// puras y recorren la colección completa en cada llamada; no hay memoización
// (a la escala prevista el O(n) por consulta es despreciable y recomputar
// siempre elimina toda una clase de bugs de datos obsoletos).
package stock

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-manager-pro/internal/domain/entity"
)

// Status clasificación del stock actual frente al límite mínimo.
type Status string

const (
	StatusOK  Status = "OK"
	StatusLow Status = "LOW"
)

// Totals entradas y salidas acumuladas de un producto.
type Totals struct {
	In  decimal.Decimal
	Out decimal.Decimal
}

// Level calcula el stock actual: inicial + entradas − salidas.
// Puede ser negativo (más salidas registradas que entradas); eso no es un
// error sino una señal visible de calidad de datos que se refleja como LOW.
func Level(initial, totalIn, totalOut decimal.Decimal) decimal.Decimal {
	return initial.Add(totalIn).Sub(totalOut)
}

// StatusOf aplica la regla de negocio central del sistema: LOW si y solo si
// current < min. La desigualdad es estricta: un stock exactamente en el
// límite es OK.
func StatusOf(current, minLimit decimal.Decimal) Status {
	if current.LessThan(minLimit) {
		return StatusLow
	}
	return StatusOK
}

// TotalsByProduct acumula entradas y salidas por producto sobre la colección
// completa de movimientos. Movimientos de productos eliminados acumulan bajo
// su ID huérfano y simplemente nadie los consulta.
func TotalsByProduct(movements []*entity.Movement) map[int64]Totals {
	acc := make(map[int64]Totals)
	for _, m := range movements {
		t := acc[m.ProductID]
		q := decimal.NewFromInt(m.Quantity)
		switch m.Type {
		case entity.MovementTypeIn:
			t.In = t.In.Add(q)
		case entity.MovementTypeOut:
			t.Out = t.Out.Add(q)
		}
		acc[m.ProductID] = t
	}
	return acc
}

// CurrentLevel stock actual de un producto concreto. Equivale a
// Level sobre los totales del producto; útil para consultas puntuales.
func CurrentLevel(p *entity.Product, movements []*entity.Movement) decimal.Decimal {
	var in, out decimal.Decimal
	for _, m := range movements {
		if m.ProductID != p.ID {
			continue
		}
		q := decimal.NewFromInt(m.Quantity)
		switch m.Type {
		case entity.MovementTypeIn:
			in = in.Add(q)
		case entity.MovementTypeOut:
			out = out.Add(q)
		}
	}
	return Level(decimal.NewFromInt(p.InitialStock), in, out)
}
