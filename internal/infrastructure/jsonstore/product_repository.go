package jsonstore

import (
	"github.com/tu-usuario/stock-manager-pro/internal/domain"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/entity"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre el Store JSON.
type ProductRepo struct {
	s *Store
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

// List devuelve copias del catálogo en orden de inserción.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

// GetByID busca por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.ID == id {
			return cloneProduct(p), nil
		}
	}
	return nil, nil
}

// GetByName busca por nombre exacto; (nil, nil) si no existe.
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.Name == name {
			return cloneProduct(p), nil
		}
	}
	return nil, nil
}

// Create asigna ID = max(IDs existentes) + 1 y persiste el catálogo.
// Tras borrar el producto de ID más alto, su ID puede reutilizarse.
func (r *ProductRepo) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var maxID int64
	for _, existing := range r.s.products {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1
	r.s.products = append(r.s.products, cloneProduct(p))
	return r.s.saveProducts()
}

// Update sobreescribe el producto con el mismo ID.
func (r *ProductRepo) Update(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, existing := range r.s.products {
		if existing.ID == p.ID {
			r.s.products[i] = cloneProduct(p)
			return r.s.saveProducts()
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el producto. La cascada de movimientos la orquesta el caso de uso.
func (r *ProductRepo) Delete(id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, existing := range r.s.products {
		if existing.ID == id {
			r.s.products = append(r.s.products[:i], r.s.products[i+1:]...)
			return r.s.saveProducts()
		}
	}
	return domain.ErrNotFound
}
