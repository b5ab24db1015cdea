package repository

import "github.com/tu-usuario/stock-manager-pro/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el libro de movimientos.
type MovementRepository interface {
	List() ([]*entity.Movement, error)
	Create(m *entity.Movement) error // asigna ID = max(IDs existentes) + 1
	Delete(id int64) error
	// DeleteByProduct elimina todos los movimientos del producto indicado y
	// devuelve cuántos eliminó. Lo usa la cascada del borrado de producto.
	DeleteByProduct(productID int64) (int, error)
}
