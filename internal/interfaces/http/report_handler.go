package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-manager-pro/internal/application/ledger"
)

// ReportHandler maneja las peticiones HTTP de los reportes analíticos.
type ReportHandler struct {
	uc *ledger.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *ledger.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Activity godoc
// @Summary      Productos más y menos activos (top 5 de cada lado)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ActivityReportResponse
// @Router       /api/reports/activity [get]
func (h *ReportHandler) Activity(c *fiber.Ctx) error {
	out, err := h.uc.Activity()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Monthly godoc
// @Summary      Resumen mensual de entradas y salidas (hasta 12 meses)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MonthlySummaryResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	out, err := h.uc.Monthly()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen general del inventario (cacheado, se refresca cada 30s)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummary
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
