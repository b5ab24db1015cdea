package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-manager-pro/internal/application/dto"
	"github.com/tu-usuario/stock-manager-pro/internal/application/ledger"
	"github.com/tu-usuario/stock-manager-pro/internal/infrastructure/excel"
	"github.com/tu-usuario/stock-manager-pro/internal/infrastructure/pdf"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos y del
// historial por rango de fechas, incluidos sus exports.
type MovementHandler struct {
	uc *ledger.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *ledger.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimiento (la fecha la asigna el servidor)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos filtrados, del más reciente al más antiguo
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        filter  query  string  false  "all | in | out | today | week"  default(all)
// @Success      200     {object}  dto.MovementListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("filter"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un movimiento (corrección de un registro erróneo)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "movimiento eliminado"})
}

// History godoc
// @Summary      Historial por rango de fechas con totales
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  true  "Fecha inicial YYYY-MM-DD (desde las 00:00:00)"
// @Param        to    query  string  true  "Fecha final YYYY-MM-DD (hasta las 23:59:59)"
// @Success      200   {object}  dto.HistoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/history [get]
func (h *MovementHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// HistoryExport godoc
// @Summary      Exportar el historial del rango a XLSX o PDF
// @Tags         movements
// @Security     Bearer
// @Produce      application/octet-stream
// @Param        from    query  string  true   "Fecha inicial YYYY-MM-DD"
// @Param        to      query  string  true   "Fecha final YYYY-MM-DD"
// @Param        format  query  string  false  "xlsx | pdf"  default(xlsx)
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/history/export [get]
func (h *MovementHandler) HistoryExport(c *fiber.Ctx) error {
	history, err := h.uc.History(c.Query("from"), c.Query("to"))
	if err != nil {
		return respondError(c, err)
	}
	format := c.Query("format", "xlsx")
	switch format {
	case "xlsx":
		data, err := excel.HistoryWorkbook(history)
		if err != nil {
			return respondError(c, err)
		}
		return sendFile(c, data, fmt.Sprintf("historial_%s_%s.xlsx", history.From, history.To), xlsxContentType)
	case "pdf":
		data, err := pdf.HistoryPDF(history)
		if err != nil {
			return respondError(c, err)
		}
		return sendFile(c, data, fmt.Sprintf("historial_%s_%s.pdf", history.From, history.To), pdfContentType)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "format debe ser xlsx o pdf"})
	}
}
