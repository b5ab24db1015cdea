package jsonstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-manager-pro/internal/domain/entity"
)

// Registros de persistencia: forma exacta de los archivos JSON en disco.
// El round-trip debe ser sin pérdidas, incluidos los opcionales ausentes
// (code y price se omiten cuando no existen).

type productRecord struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Code         string           `json:"code,omitempty"`
	Category     string           `json:"category"`
	InitialStock int64            `json:"initial_stock"`
	MinLimit     int64            `json:"min_limit"`
	Price        *decimal.Decimal `json:"price,omitempty"`
}

type movementRecord struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Type      string `json:"type"`
	Quantity  int64  `json:"quantity"`
	Date      string `json:"date"` // "2006-01-02 15:04:05"
	Notes     string `json:"notes,omitempty"`
}

// snapshotRecord paquete completo de un backup en disco.
type snapshotRecord struct {
	Timestamp  string           `json:"timestamp"` // "20060102_150405"
	Products   []productRecord  `json:"products"`
	Movements  []movementRecord `json:"movements"`
	Categories []string         `json:"categories"`
}

func toProductRecord(p *entity.Product) productRecord {
	return productRecord{
		ID:           p.ID,
		Name:         p.Name,
		Code:         p.Code,
		Category:     p.Category,
		InitialStock: p.InitialStock,
		MinLimit:     p.MinLimit,
		Price:        p.Price,
	}
}

func fromProductRecord(r productRecord) *entity.Product {
	return &entity.Product{
		ID:           r.ID,
		Name:         r.Name,
		Code:         r.Code,
		Category:     r.Category,
		InitialStock: r.InitialStock,
		MinLimit:     r.MinLimit,
		Price:        r.Price,
	}
}

func toMovementRecord(m *entity.Movement) movementRecord {
	date := ""
	if !m.Date.IsZero() {
		date = m.Date.Format(entity.DateLayout)
	}
	return movementRecord{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Date:      date,
		Notes:     m.Notes,
	}
}

// fromMovementRecord tolera fechas ilegibles: quedan en cero y las vistas por
// fecha las excluyen, pero el movimiento no se pierde.
func fromMovementRecord(r movementRecord) *entity.Movement {
	return &entity.Movement{
		ID:        r.ID,
		ProductID: r.ProductID,
		Type:      r.Type,
		Quantity:  r.Quantity,
		Date:      parseMovementDate(r.Date),
		Notes:     r.Notes,
	}
}

func parseMovementDate(s string) time.Time {
	if t, err := time.ParseInLocation(entity.DateLayout, s, time.Local); err == nil {
		return t
	}
	// Archivos antiguos pueden traer solo la fecha
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t
	}
	return time.Time{}
}

func cloneProduct(p *entity.Product) *entity.Product {
	c := *p
	if p.Price != nil {
		price := *p.Price
		c.Price = &price
	}
	return &c
}

func cloneMovement(m *entity.Movement) *entity.Movement {
	c := *m
	return &c
}
