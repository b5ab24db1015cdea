package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-manager-pro/internal/application/dto"
	"github.com/tu-usuario/stock-manager-pro/internal/domain"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/entity"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/repository"
	"github.com/tu-usuario/stock-manager-pro/pkg/logger"
)

// Filtros del listado de movimientos.
const (
	FilterAll   = "all"
	FilterIn    = "in"
	FilterOut   = "out"
	FilterToday = "today"
	FilterWeek  = "week" // últimos 7 días calendario, inclusive
)

// dateOnlyLayout formato de los parámetros from/to del historial.
const dateOnlyLayout = "2006-01-02"

// MovementUseCase registro y consulta del libro de movimientos.
type MovementUseCase struct {
	movements repository.MovementRepository
	products  repository.ProductRepository
	log       *logger.Logger
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(movements repository.MovementRepository, products repository.ProductRepository, log *logger.Logger) *MovementUseCase {
	return &MovementUseCase{movements: movements, products: products, log: log.Component("movements")}
}

// Create registra un movimiento contra un producto existente. La fecha la
// asigna el servidor ahora mismo y no se edita nunca después.
func (uc *MovementUseCase) Create(in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if !entity.IsValidMovementType(in.Type) || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	m := &entity.Movement{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Date:      time.Now(),
		Notes:     in.Notes,
	}
	if err := uc.movements.Create(m); err != nil {
		return nil, err
	}
	uc.log.Info().
		Int64("id", m.ID).
		Int64("product_id", m.ProductID).
		Str("type", m.Type).
		Int64("quantity", m.Quantity).
		Msg("movimiento registrado")
	resp := toMovementResponse(m, map[int64]string{p.ID: p.Name})
	return &resp, nil
}

// Delete elimina un movimiento puntual (corrección de un registro erróneo).
func (uc *MovementUseCase) Delete(id int64) error {
	return uc.movements.Delete(id)
}

// List vista filtrada del libro, del más reciente al más antiguo. Los filtros
// de fecha comparan días calendario: "today" es el día en curso completo y
// "week" cubre desde hace 7 días a las 00:00.
func (uc *MovementUseCase) List(filter string) (*dto.MovementListResponse, error) {
	if filter == "" {
		filter = FilterAll
	}
	switch filter {
	case FilterAll, FilterIn, FilterOut, FilterToday, FilterWeek:
	default:
		return nil, domain.ErrInvalidInput
	}

	movements, err := uc.movements.List()
	if err != nil {
		return nil, err
	}
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	names := productNameIndex(products)

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := todayStart.AddDate(0, 0, -7)

	kept := make([]*entity.Movement, 0, len(movements))
	for _, m := range movements {
		switch filter {
		case FilterIn, FilterOut:
			if m.Type != filter {
				continue
			}
		case FilterToday:
			if m.Date.IsZero() || m.Date.Before(todayStart) || !m.Date.Before(todayStart.AddDate(0, 0, 1)) {
				continue
			}
		case FilterWeek:
			if m.Date.IsZero() || m.Date.Before(weekStart) {
				continue
			}
		}
		kept = append(kept, m)
	}
	sortNewestFirst(kept)

	items := make([]dto.MovementResponse, 0, len(kept))
	for _, m := range kept {
		items = append(items, toMovementResponse(m, names))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

// History historial dentro del rango [from 00:00:00, to 23:59:59]. Fechas
// malformadas son un error duro; los movimientos de productos ya eliminados
// se omiten del historial (a diferencia del listado general, que los marca
// como desconocidos).
func (uc *MovementUseCase) History(fromStr, toStr string) (*dto.HistoryResponse, error) {
	from, err := time.ParseInLocation(dateOnlyLayout, fromStr, time.Local)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	to, err := time.ParseInLocation(dateOnlyLayout, toStr, time.Local)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	end := to.Add(24*time.Hour - time.Second) // hasta las 23:59:59 inclusive

	movements, err := uc.movements.List()
	if err != nil {
		return nil, err
	}
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	names := productNameIndex(products)

	kept := make([]*entity.Movement, 0, len(movements))
	var totalIn, totalOut decimal.Decimal
	for _, m := range movements {
		if m.Date.IsZero() || m.Date.Before(from) || m.Date.After(end) {
			continue
		}
		if _, ok := names[m.ProductID]; !ok {
			continue
		}
		kept = append(kept, m)
		q := decimal.NewFromInt(m.Quantity)
		switch m.Type {
		case entity.MovementTypeIn:
			totalIn = totalIn.Add(q)
		case entity.MovementTypeOut:
			totalOut = totalOut.Add(q)
		}
	}
	sortNewestFirst(kept)

	items := make([]dto.MovementResponse, 0, len(kept))
	for _, m := range kept {
		items = append(items, toMovementResponse(m, names))
	}
	return &dto.HistoryResponse{
		From:     fromStr,
		To:       toStr,
		Items:    items,
		TotalIn:  totalIn,
		TotalOut: totalOut,
	}, nil
}
