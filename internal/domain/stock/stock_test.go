package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-manager-pro/internal/domain/entity"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/stock"
)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestLevel_InicialMasEntradasMenosSalidas(t *testing.T) {
	assert.True(t, d(7).Equal(stock.Level(d(10), d(5), d(8))),
		"10 inicial + 5 entradas - 8 salidas = 7")
}

func TestLevel_PuedeSerNegativo(t *testing.T) {
	nivel := stock.Level(d(2), d(0), d(5))
	assert.True(t, nivel.IsNegative(), "más salidas que existencias produce nivel negativo")
	assert.True(t, d(-3).Equal(nivel))
}

// La regla central: LOW si y solo si current < min. El límite exacto es OK.
func TestStatusOf_LimiteEstricto(t *testing.T) {
	tests := []struct {
		name    string
		current int64
		min     int64
		want    stock.Status
	}{
		{"por debajo del límite", 4, 5, stock.StatusLow},
		{"exactamente en el límite", 5, 5, stock.StatusOK},
		{"por encima del límite", 6, 5, stock.StatusOK},
		{"negativo siempre LOW", -1, 0, stock.StatusLow},
		{"cero con límite cero", 0, 0, stock.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stock.StatusOf(d(tt.current), d(tt.min)))
		})
	}
}

func TestTotalsByProduct_AcumulaPorProductoYTipo(t *testing.T) {
	movements := []*entity.Movement{
		{ID: 1, ProductID: 1, Type: entity.MovementTypeIn, Quantity: 10},
		{ID: 2, ProductID: 1, Type: entity.MovementTypeOut, Quantity: 3},
		{ID: 3, ProductID: 1, Type: entity.MovementTypeIn, Quantity: 2},
		{ID: 4, ProductID: 2, Type: entity.MovementTypeOut, Quantity: 7},
	}
	totals := stock.TotalsByProduct(movements)

	require.Len(t, totals, 2)
	assert.True(t, d(12).Equal(totals[1].In), "producto 1 acumula 10+2 entradas")
	assert.True(t, d(3).Equal(totals[1].Out))
	assert.True(t, d(0).Equal(totals[2].In))
	assert.True(t, d(7).Equal(totals[2].Out))
}

func TestTotalsByProduct_TipoDesconocidoNoAporta(t *testing.T) {
	totals := stock.TotalsByProduct([]*entity.Movement{
		{ID: 1, ProductID: 1, Type: "ajuste", Quantity: 99},
	})
	assert.True(t, totals[1].In.IsZero())
	assert.True(t, totals[1].Out.IsZero())
}

func TestCurrentLevel_SoloMovimientosDelProducto(t *testing.T) {
	p := &entity.Product{ID: 1, InitialStock: 5}
	movements := []*entity.Movement{
		{ID: 1, ProductID: 1, Type: entity.MovementTypeIn, Quantity: 4},
		{ID: 2, ProductID: 2, Type: entity.MovementTypeIn, Quantity: 100},
		{ID: 3, ProductID: 1, Type: entity.MovementTypeOut, Quantity: 2},
	}
	assert.True(t, d(7).Equal(stock.CurrentLevel(p, movements)),
		"los movimientos de otros productos no cuentan")
}
