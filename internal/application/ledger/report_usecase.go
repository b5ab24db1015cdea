package ledger

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-manager-pro/internal/application/dto"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/entity"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/repository"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/stock"
	"github.com/tu-usuario/stock-manager-pro/pkg/logger"
)

const (
	activityTopN      = 5  // productos en cada mitad del reporte de actividad
	monthlyMaxBuckets = 12 // meses retenidos en el resumen mensual
	summaryLastN      = 10 // movimientos recientes en el resumen general
)

// monthLayout clave de agrupación del resumen mensual.
const monthLayout = "2006-01"

// ReportUseCase analítica derivada del libro: actividad por producto, resumen
// mensual y el resumen general del dashboard. El resumen general se cachea y
// lo recalcula el ciclo periódico de cmd/api; el resto se computa por consulta.
type ReportUseCase struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	log       *logger.Logger

	mu     sync.RWMutex
	cached *dto.DashboardSummary
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(products repository.ProductRepository, movements repository.MovementRepository, log *logger.Logger) *ReportUseCase {
	return &ReportUseCase{products: products, movements: movements, log: log.Component("reports")}
}

// Activity los 5 productos más y menos activos por volumen total movido
// (entradas + salidas). Ambas listas van en orden descendente de actividad;
// con menos de 10 productos pueden solaparse.
func (uc *ReportUseCase) Activity() (*dto.ActivityReportResponse, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movements.List()
	if err != nil {
		return nil, err
	}
	totals := stock.TotalsByProduct(movements)

	entries := make([]dto.ActivityEntry, 0, len(products))
	for _, p := range products {
		t := totals[p.ID]
		entries = append(entries, dto.ActivityEntry{
			ProductID: p.ID,
			Name:      p.Name,
			TotalIn:   t.In,
			TotalOut:  t.Out,
			Activity:  t.In.Add(t.Out),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Activity.Equal(entries[j].Activity) {
			return normalizeSearch(entries[i].Name) < normalizeSearch(entries[j].Name)
		}
		return entries[i].Activity.GreaterThan(entries[j].Activity)
	})

	most := entries
	if len(most) > activityTopN {
		most = most[:activityTopN]
	}
	least := entries
	if len(least) > activityTopN {
		least = least[len(least)-activityTopN:]
	}
	resp := &dto.ActivityReportResponse{
		MostActive:  append([]dto.ActivityEntry{}, most...),
		LeastActive: append([]dto.ActivityEntry{}, least...),
	}
	return resp, nil
}

// Monthly resumen por mes calendario: sumas de entradas y salidas y número de
// movimientos, hasta 12 meses del más reciente al más antiguo. Los
// movimientos con fecha ilegible se excluyen solo de este reporte.
func (uc *ReportUseCase) Monthly() (*dto.MonthlySummaryResponse, error) {
	movements, err := uc.movements.List()
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*dto.MonthlyBucket)
	for _, m := range movements {
		if m.Date.IsZero() {
			continue
		}
		key := m.Date.Format(monthLayout)
		b, ok := buckets[key]
		if !ok {
			b = &dto.MonthlyBucket{Month: key}
			buckets[key] = b
		}
		q := decimal.NewFromInt(m.Quantity)
		switch m.Type {
		case entity.MovementTypeIn:
			b.TotalIn = b.TotalIn.Add(q)
		case entity.MovementTypeOut:
			b.TotalOut = b.TotalOut.Add(q)
		}
		b.Movements++
	}

	months := make([]string, 0, len(buckets))
	for key := range buckets {
		months = append(months, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	if len(months) > monthlyMaxBuckets {
		months = months[:monthlyMaxBuckets]
	}

	items := make([]dto.MonthlyBucket, 0, len(months))
	for _, key := range months {
		items = append(items, *buckets[key])
	}
	return &dto.MonthlySummaryResponse{Items: items}, nil
}

// Summary resumen general cacheado. Si el ciclo de refresco aún no corrió,
// computa uno al vuelo.
func (uc *ReportUseCase) Summary() (*dto.DashboardSummary, error) {
	uc.mu.RLock()
	cached := uc.cached
	uc.mu.RUnlock()
	if cached != nil {
		out := *cached
		return &out, nil
	}
	return uc.Refresh()
}

// Refresh recalcula el resumen general y lo deja cacheado. Lo invoca el ciclo
// periódico de cmd/api; los errores son del llamador (el ciclo los loguea y
// sigue).
func (uc *ReportUseCase) Refresh() (*dto.DashboardSummary, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movements.List()
	if err != nil {
		return nil, err
	}
	totals := stock.TotalsByProduct(movements)
	names := productNameIndex(products)

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	summary := &dto.DashboardSummary{
		TotalProducts:  len(products),
		TotalMovements: len(movements),
		RefreshedAt:    now,
	}
	for _, p := range products {
		t := totals[p.ID]
		current := stock.Level(decimal.NewFromInt(p.InitialStock), t.In, t.Out)
		if stock.StatusOf(current, decimal.NewFromInt(p.MinLimit)) == stock.StatusLow {
			summary.LowStockCount++
		}
		summary.TotalStock = summary.TotalStock.Add(current)
		if p.HasPrice() {
			summary.StockValue = summary.StockValue.Add(current.Mul(*p.Price))
		}
	}
	for _, m := range movements {
		if !m.Date.IsZero() && !m.Date.Before(todayStart) && m.Date.Before(todayStart.AddDate(0, 0, 1)) {
			summary.MovementsToday++
		}
	}

	sortNewestFirst(movements)
	last := movements
	if len(last) > summaryLastN {
		last = last[:summaryLastN]
	}
	summary.LastMovements = make([]dto.MovementResponse, 0, len(last))
	for _, m := range last {
		summary.LastMovements = append(summary.LastMovements, toMovementResponse(m, names))
	}

	uc.mu.Lock()
	uc.cached = summary
	uc.mu.Unlock()
	uc.log.Debug().Int("products", summary.TotalProducts).Int("low", summary.LowStockCount).Msg("resumen recalculado")

	out := *summary
	return &out, nil
}
