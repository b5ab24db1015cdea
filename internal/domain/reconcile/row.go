// Package reconcile implementa el motor de conciliación por lotes: resuelve
// la identidad de filas de movimiento provenientes de una hoja de cálculo
// externa, agrega entradas y salidas por producto y construye el reporte de
// stock final. Todas las funciones son puras; la lectura y escritura del
// libro quedan en infraestructura.
package reconcile

import "github.com/shopspring/decimal"

// Row fila de movimiento proveniente de la hoja de cálculo externa.
// Las cuatro columnas de identidad son opcionales: el flujo de origen permite
// que una fórmula pre-resuelva el nombre o el código del producto en
// cualquiera de sus dos variantes (escrito a mano o elegido de la lista).
// Cada campo se modela como columna nominal explícita, no como lookup
// dinámico de claves.
type Row struct {
	Index      int    // número de fila 1-based dentro de los datos (sin contar la cabecera)
	NameAuto   string // columna primaria de nombre resuelto
	NameManual string // columna alternativa de nombre
	CodeAuto   string // columna primaria de código
	CodeManual string // columna alternativa de código

	// Cantidades; nil = celda vacía o no numérica (aporta 0).
	In  *decimal.Decimal
	Out *decimal.Decimal

	Raw []string // celdas originales, para eco en la hoja de errores
}

// CatalogProduct entrada del catálogo del lote.
type CatalogProduct struct {
	Name         string
	Code         string // vacío = sin código
	InitialStock decimal.Decimal
	MinLimit     decimal.Decimal
}

// RowError error de resolución o validación de una fila del lote.
// RowIndex es 1-based y cuenta la fila de cabecera, de modo que coincide con
// el número de fila que el usuario ve en su hoja de cálculo.
type RowError struct {
	RowIndex int
	Message  string
	Raw      []string
}
