package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-manager-pro/internal/application/dto"
	"github.com/tu-usuario/stock-manager-pro/internal/application/ledger"
	"github.com/tu-usuario/stock-manager-pro/internal/infrastructure/excel"
	"github.com/tu-usuario/stock-manager-pro/internal/infrastructure/pdf"
)

// Content types de los exports.
const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

// sendFile responde un archivo descargable.
func sendFile(c *fiber.Ctx, data []byte, filename, contentType string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}

// StockHandler maneja las peticiones HTTP de la vista de stock derivado.
type StockHandler struct {
	uc *ledger.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *ledger.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// View godoc
// @Summary      Vista de stock derivado filtrada, ordenada por nombre
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        filter  query  string  false  "all | low | ok"  default(all)
// @Success      200     {object}  dto.StockViewResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) View(c *fiber.Ctx) error {
	out, err := h.uc.View(c.Query("filter"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar el estado de stock completo a XLSX o PDF
// @Tags         stock
// @Security     Bearer
// @Produce      application/octet-stream
// @Param        format  query  string  false  "xlsx | pdf"  default(xlsx)
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/export [get]
func (h *StockHandler) Export(c *fiber.Ctx) error {
	rows, err := h.uc.Rows()
	if err != nil {
		return respondError(c, err)
	}
	stamp := time.Now().Format("20060102")
	format := c.Query("format", "xlsx")
	switch format {
	case "xlsx":
		data, err := excel.StockWorkbook(rows)
		if err != nil {
			return respondError(c, err)
		}
		return sendFile(c, data, "stock_"+stamp+".xlsx", xlsxContentType)
	case "pdf":
		data, err := pdf.StockReportPDF(rows)
		if err != nil {
			return respondError(c, err)
		}
		return sendFile(c, data, "stock_"+stamp+".pdf", pdfContentType)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "format debe ser xlsx o pdf"})
	}
}
