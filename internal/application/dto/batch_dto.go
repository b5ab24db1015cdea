package dto

// BatchRowError fila de movimiento no resuelta en una conciliación.
// Row es el índice 1-based contando la cabecera, igual que en la hoja ERRORS.
type BatchRowError struct {
	Row     int      `json:"row"`
	Message string   `json:"message"`
	Raw     []string `json:"raw"`
}

// BatchSummaryResponse resultado de una conciliación (viaja en la cabecera
// X-Reconcile-Summary del workbook de salida y en el log del run).
type BatchSummaryResponse struct {
	RunID        string          `json:"run_id"`
	ProductRows  int             `json:"product_rows"`
	MovementRows int             `json:"movement_rows"`
	ErrorCount   int             `json:"error_count"`
	Errors       []BatchRowError `json:"errors,omitempty"`
}
