package http

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-manager-pro/internal/application/batch"
	"github.com/tu-usuario/stock-manager-pro/internal/application/dto"
)

// BatchHandler maneja la conciliación por lotes vía HTTP.
type BatchHandler struct {
	uc *batch.ReconcileUseCase
}

// NewBatchHandler construye el handler.
func NewBatchHandler(uc *batch.ReconcileUseCase) *BatchHandler {
	return &BatchHandler{uc: uc}
}

// Reconcile godoc
// @Summary      Conciliar un libro de cálculo (.xlsx)
// @Description  Sube un libro con hojas PRODUCTS y MOVEMENTS; devuelve el libro
// @Description  conciliado con la hoja STOCK y, si hubo filas irresolubles, ERRORS.
// @Description  El resumen del run viaja en la cabecera X-Reconcile-Summary.
// @Tags         batch
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      application/octet-stream
// @Param        file  formData  file  true  "Libro .xlsx de entrada"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/batch/reconcile [post]
func (h *BatchHandler) Reconcile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el campo file con el libro .xlsx"})
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "solo se aceptan archivos .xlsx"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer file.Close()

	res, out, err := h.uc.Run(file)
	if err != nil {
		return respondError(c, err)
	}

	if summary, err := json.Marshal(res.Summary()); err == nil {
		c.Set("X-Reconcile-Summary", string(summary))
	}
	filename := "conciliacion_" + time.Now().Format("20060102_150405") + ".xlsx"
	return sendFile(c, out, filename, xlsxContentType)
}
