package jsonstore

import (
	"github.com/tu-usuario/stock-manager-pro/internal/domain"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/entity"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre el Store JSON.
type MovementRepo struct {
	s *Store
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(s *Store) *MovementRepo {
	return &MovementRepo{s: s}
}

// List devuelve copias del libro de movimientos en orden de inserción.
func (r *MovementRepo) List() ([]*entity.Movement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Movement, 0, len(r.s.movements))
	for _, m := range r.s.movements {
		out = append(out, cloneMovement(m))
	}
	return out, nil
}

// Create asigna ID = max(IDs existentes) + 1 y persiste el libro.
func (r *MovementRepo) Create(m *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var maxID int64
	for _, existing := range r.s.movements {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	m.ID = maxID + 1
	r.s.movements = append(r.s.movements, cloneMovement(m))
	return r.s.saveMovements()
}

// Delete elimina un movimiento por ID.
func (r *MovementRepo) Delete(id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, existing := range r.s.movements {
		if existing.ID == id {
			r.s.movements = append(r.s.movements[:i], r.s.movements[i+1:]...)
			return r.s.saveMovements()
		}
	}
	return domain.ErrNotFound
}

// DeleteByProduct elimina exactamente los movimientos del producto indicado
// y devuelve cuántos eliminó. Con cero eliminados no reescribe el archivo.
func (r *MovementRepo) DeleteByProduct(productID int64) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.movements[:0]
	removed := 0
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	r.s.movements = kept
	if removed == 0 {
		return 0, nil
	}
	return removed, r.s.saveMovements()
}
