package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-manager-pro/internal/application/dto"
	"github.com/tu-usuario/stock-manager-pro/internal/application/ledger"
)

// BackupHandler maneja las peticiones HTTP de snapshots y restauración.
type BackupHandler struct {
	uc *ledger.BackupUseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *ledger.BackupUseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// List godoc
// @Summary      Listar backups, del más reciente al más antiguo
// @Tags         backups
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BackupListResponse
// @Router       /api/backups [get]
func (h *BackupHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear un backup manual del estado actual
// @Tags         backups
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.BackupResponse
// @Router       /api/backups [post]
func (h *BackupHandler) Create(c *fiber.Ctx) error {
	out, err := h.uc.Create()
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Restore godoc
// @Summary      Restaurar un backup ("latest" restaura el más reciente)
// @Description  Reemplaza productos, movimientos y categorías por el contenido del snapshot.
// @Tags         backups
// @Security     Bearer
// @Produce      json
// @Param        name  path  string  true  "Nombre del backup o latest"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/backups/{name}/restore [post]
func (h *BackupHandler) Restore(c *fiber.Ctx) error {
	if err := h.uc.Restore(c.Params("name")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "backup restaurado"})
}
