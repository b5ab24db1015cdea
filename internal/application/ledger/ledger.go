// Package ledger contiene los casos de uso del inventario interactivo:
// catálogo, movimientos, categorías, vistas de stock, reportes y backups.
// Cada caso de uso recibe sus puertos de persistencia y devuelve DTOs; la
// aritmética de stock vive en internal/domain/stock y se comparte con la
// conciliación por lotes.
package ledger

import (
	"sort"
	"time"

	"github.com/tu-usuario/stock-manager-pro/internal/application/dto"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/entity"
)

// unknownProductName etiqueta de los movimientos cuyo producto ya no existe.
const unknownProductName = "Desconocido"

// productNameIndex índice ID → nombre para resolver movimientos en vistas.
func productNameIndex(products []*entity.Product) map[int64]string {
	idx := make(map[int64]string, len(products))
	for _, p := range products {
		idx[p.ID] = p.Name
	}
	return idx
}

func formatMovementDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(entity.DateLayout)
}

func toMovementResponse(m *entity.Movement, names map[int64]string) dto.MovementResponse {
	name, ok := names[m.ProductID]
	if !ok {
		name = unknownProductName
	}
	return dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: name,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Date:        formatMovementDate(m.Date),
		Notes:       m.Notes,
	}
}

// sortNewestFirst ordena movimientos del más reciente al más antiguo; las
// fechas ilegibles (cero) quedan al final. Desempate por ID descendente para
// que dos movimientos del mismo instante conserven el orden de registro.
func sortNewestFirst(movements []*entity.Movement) {
	sort.SliceStable(movements, func(i, j int) bool {
		if movements[i].Date.Equal(movements[j].Date) {
			return movements[i].ID > movements[j].ID
		}
		return movements[i].Date.After(movements[j].Date)
	})
}
