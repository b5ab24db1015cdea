package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-manager-pro/internal/application/dto"
	"github.com/tu-usuario/stock-manager-pro/internal/domain"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/repository"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/stock"
)

// Filtros de la vista de stock.
const (
	StockFilterAll = "all"
	StockFilterLow = "low"
	StockFilterOK  = "ok"
)

// StockUseCase vista derivada del estado de stock. No hay nada que mutar:
// cada consulta recalcula los niveles desde el catálogo y el libro.
type StockUseCase struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(products repository.ProductRepository, movements repository.MovementRepository) *StockUseCase {
	return &StockUseCase{products: products, movements: movements}
}

// View vista de stock filtrada (all|low|ok), ordenada por nombre.
func (uc *StockUseCase) View(filter string) (*dto.StockViewResponse, error) {
	if filter == "" {
		filter = StockFilterAll
	}
	switch filter {
	case StockFilterAll, StockFilterLow, StockFilterOK:
	default:
		return nil, domain.ErrInvalidInput
	}

	rows, err := uc.Rows()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockRowResponse, 0, len(rows))
	for _, row := range rows {
		switch filter {
		case StockFilterLow:
			if row.Status != string(stock.StatusLow) {
				continue
			}
		case StockFilterOK:
			if row.Status != string(stock.StatusOK) {
				continue
			}
		}
		items = append(items, row)
	}
	return &dto.StockViewResponse{Filter: filter, Items: items, Total: len(items)}, nil
}

// Rows todas las filas de stock derivado ordenadas por nombre. Las usan la
// vista filtrada y los exports a Excel y PDF.
func (uc *StockUseCase) Rows() ([]dto.StockRowResponse, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movements.List()
	if err != nil {
		return nil, err
	}
	totals := stock.TotalsByProduct(movements)

	rows := make([]dto.StockRowResponse, 0, len(products))
	for _, p := range products {
		t := totals[p.ID]
		current := stock.Level(decimal.NewFromInt(p.InitialStock), t.In, t.Out)
		rows = append(rows, dto.StockRowResponse{
			ProductID:    p.ID,
			Name:         p.Name,
			Code:         p.Code,
			Category:     p.Category,
			InitialStock: p.InitialStock,
			TotalIn:      t.In,
			TotalOut:     t.Out,
			CurrentStock: current,
			MinLimit:     p.MinLimit,
			Status:       string(stock.StatusOf(current, decimal.NewFromInt(p.MinLimit))),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return normalizeSearch(rows[i].Name) < normalizeSearch(rows[j].Name)
	})
	return rows, nil
}
