package reconcile

import (
	"fmt"

	"github.com/tu-usuario/stock-manager-pro/internal/domain/stock"
)

// headerOffset desplaza los índices de error para contar la fila de cabecera
// del libro: la fila de datos 1 es la fila 2 de la hoja.
const headerOffset = 1

// Aggregate resuelve cada fila contra el catálogo y acumula entradas y
// salidas por nombre de producto. Las filas irresolubles o ajenas al catálogo
// se registran como errores y se omiten; el proceso nunca se detiene por una
// fila inválida. Una misma fila puede aportar a entradas Y salidas a la vez:
// el formato de origen permite registrar ambas patas en una sola línea
// (una transferencia, por ejemplo).
//
// El mapa resultante contiene una entrada por cada producto del catálogo,
// incluidos los que no registraron movimiento alguno.
func Aggregate(rows []Row, catalog []CatalogProduct) (map[string]stock.Totals, []RowError) {
	codeIndex := BuildCodeIndex(catalog)

	agg := make(map[string]stock.Totals, len(catalog))
	for _, p := range catalog {
		agg[p.Name] = stock.Totals{}
	}

	var errs []RowError
	for _, row := range rows {
		name := Resolve(row, codeIndex)
		if name == "" {
			errs = append(errs, RowError{
				RowIndex: row.Index + headerOffset,
				Message:  "no se encontró producto ni código",
				Raw:      row.Raw,
			})
			continue
		}
		totals, ok := agg[name]
		if !ok {
			errs = append(errs, RowError{
				RowIndex: row.Index + headerOffset,
				Message:  fmt.Sprintf("el producto %q no existe en el catálogo", name),
				Raw:      row.Raw,
			})
			continue
		}
		if row.In != nil {
			totals.In = totals.In.Add(*row.In)
		}
		if row.Out != nil {
			totals.Out = totals.Out.Add(*row.Out)
		}
		agg[name] = totals
	}
	return agg, errs
}
