// Package excel adaptadores excelize: ingestión del libro de conciliación,
// generación del libro de salida y exports XLSX de la vista de stock y el
// historial.
package excel

// Hojas del libro de conciliación (entrada y salida).
const (
	SheetProducts  = "PRODUCTS"
	SheetMovements = "MOVEMENTS"
	SheetStock     = "STOCK"
	SheetErrors    = "ERRORS" // solo se crea si hubo filas con error
)

// Cabeceras de la hoja de productos. Las cuatro son obligatorias: la
// ausencia de cualquiera aborta la conciliación sin producir salida.
const (
	ColProductName  = "PRODUCT NAME (unique)"
	ColProductCode  = "CODE (optional)"
	ColInitialStock = "INITIAL STOCK"
	ColMinLimit     = "MIN LIMIT"
)

// Cabeceras de la hoja de movimientos. Las cuatro columnas de identidad son
// opcionales (el flujo de origen rellena unas u otras); IN y OUT vacíos o no
// numéricos aportan cero.
const (
	ColNameAuto   = "PRODUCT (auto)"
	ColNameManual = "PRODUCT (manual)"
	ColCodeAuto   = "CODE (auto)"
	ColCodeManual = "CODE (manual)"
	ColIn         = "IN"
	ColOut        = "OUT"
)
