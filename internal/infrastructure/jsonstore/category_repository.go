package jsonstore

import (
	"github.com/tu-usuario/stock-manager-pro/internal/domain"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre el Store JSON.
type CategoryRepo struct {
	s *Store
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(s *Store) *CategoryRepo {
	return &CategoryRepo{s: s}
}

// List devuelve una copia de la lista ordenada de categorías.
func (r *CategoryRepo) List() ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]string{}, r.s.categories...), nil
}

// Add añade al final de la lista; nombre duplicado es rechazado.
func (r *CategoryRepo) Add(name string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.categories {
		if c == name {
			return domain.ErrDuplicate
		}
	}
	r.s.categories = append(r.s.categories, name)
	return r.s.saveCategories()
}

// Rename renombra conservando la posición. Los productos que referencian el
// nombre antiguo no se tocan: la categoría del producto es texto libre.
func (r *CategoryRepo) Rename(oldName, newName string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	idx := -1
	for i, c := range r.s.categories {
		if c == newName && oldName != newName {
			return domain.ErrDuplicate
		}
		if c == oldName {
			idx = i
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}
	r.s.categories[idx] = newName
	return r.s.saveCategories()
}

// Remove elimina de la lista; las referencias huérfanas en productos permanecen.
func (r *CategoryRepo) Remove(name string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, c := range r.s.categories {
		if c == name {
			r.s.categories = append(r.s.categories[:i], r.s.categories[i+1:]...)
			return r.s.saveCategories()
		}
	}
	return domain.ErrNotFound
}

// Replace sustituye la lista completa (restauración, edición masiva).
func (r *CategoryRepo) Replace(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			return domain.ErrDuplicate
		}
		seen[n] = struct{}{}
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.categories = append([]string{}, names...)
	return r.s.saveCategories()
}
