package repository

import "github.com/tu-usuario/stock-manager-pro/internal/domain/entity"

// ProductRepository define el puerto de persistencia para el catálogo (DIP).
// List devuelve copias: los llamadores tratan el resultado como snapshot
// inmutable sobre el que aplicar filtros puros.
type ProductRepository interface {
	List() ([]*entity.Product, error)
	GetByID(id int64) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	Create(p *entity.Product) error // asigna ID = max(IDs existentes) + 1
	Update(p *entity.Product) error
	Delete(id int64) error
}
