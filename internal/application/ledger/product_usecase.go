package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-manager-pro/internal/application/dto"
	"github.com/tu-usuario/stock-manager-pro/internal/domain"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/entity"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/repository"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/stock"
	"github.com/tu-usuario/stock-manager-pro/pkg/logger"
)

// ProductUseCase casos de uso CRUD del catálogo. El stock actual de cada
// respuesta se deriva siempre de los movimientos; nunca se almacena.
type ProductUseCase struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	log       *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, movements repository.MovementRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{products: products, movements: movements, log: log.Component("products")}
}

// Create crea un producto. El nombre es único en el catálogo: la conciliación
// por lotes agrega por nombre, así que un duplicado la dejaría ambigua.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.InitialStock < 0 || in.MinLimit < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.products.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = entity.DefaultCategory
	}
	p := &entity.Product{
		Name:         name,
		Code:         strings.TrimSpace(in.Code),
		Category:     category,
		InitialStock: in.InitialStock,
		MinLimit:     in.MinLimit,
		Price:        in.Price,
	}
	if err := uc.products.Create(p); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("id", p.ID).Str("name", p.Name).Msg("producto creado")
	resp := uc.toResponse(p, stock.Totals{})
	return &resp, nil
}

// GetByID obtiene un producto con su stock derivado.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movements.List()
	if err != nil {
		return nil, err
	}
	resp := uc.toResponse(p, stock.TotalsByProduct(movements)[p.ID])
	return &resp, nil
}

// Update reemplaza el producto completo (semántica de formulario de edición:
// Price nulo borra el precio, Category vacía cae en la categoría por defecto).
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.InitialStock < 0 || in.MinLimit < 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if other, err := uc.products.GetByName(name); err != nil {
		return nil, err
	} else if other != nil && other.ID != id {
		return nil, domain.ErrDuplicate
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = entity.DefaultCategory
	}
	p.Name = name
	p.Code = strings.TrimSpace(in.Code)
	p.Category = category
	p.InitialStock = in.InitialStock
	p.MinLimit = in.MinLimit
	p.Price = in.Price
	if err := uc.products.Update(p); err != nil {
		return nil, err
	}
	movements, err := uc.movements.List()
	if err != nil {
		return nil, err
	}
	resp := uc.toResponse(p, stock.TotalsByProduct(movements)[p.ID])
	return &resp, nil
}

// Delete elimina el producto y, en cascada, todos sus movimientos. Los IDs no
// se reservan: tras borrar el producto de ID más alto, su ID puede reaparecer.
func (uc *ProductUseCase) Delete(id int64) error {
	if err := uc.products.Delete(id); err != nil {
		return err
	}
	removed, err := uc.movements.DeleteByProduct(id)
	if err != nil {
		return err
	}
	uc.log.Info().Int64("id", id).Int("movements_removed", removed).Msg("producto eliminado")
	return nil
}

// List vista filtrada del catálogo: subcadena fold-insensible sobre nombre o
// código, más filtro exacto de categoría ("" = todas). Ordenada por nombre.
func (uc *ProductUseCase) List(search, category string) (*dto.ProductListResponse, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movements.List()
	if err != nil {
		return nil, err
	}
	totals := stock.TotalsByProduct(movements)

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if !matchesSearch(p.Name, p.Code, search) {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		items = append(items, uc.toResponse(p, totals[p.ID]))
	}
	sort.Slice(items, func(i, j int) bool {
		return normalizeSearch(items[i].Name) < normalizeSearch(items[j].Name)
	})
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

func (uc *ProductUseCase) toResponse(p *entity.Product, t stock.Totals) dto.ProductResponse {
	current := stock.Level(decimal.NewFromInt(p.InitialStock), t.In, t.Out)
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Code:         p.Code,
		Category:     p.Category,
		InitialStock: p.InitialStock,
		MinLimit:     p.MinLimit,
		Price:        p.Price,
		CurrentStock: current,
		Status:       string(stock.StatusOf(current, decimal.NewFromInt(p.MinLimit))),
	}
}
