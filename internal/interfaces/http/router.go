package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-manager-pro/internal/application/batch"
	"github.com/tu-usuario/stock-manager-pro/internal/application/ledger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *ledger.ProductUseCase
	MovementUC  *ledger.MovementUseCase
	CategoryUC  *ledger.CategoryUseCase
	StockUC     *ledger.StockUseCase
	ReportUC    *ledger.ReportUseCase
	BackupUC    *ledger.BackupUseCase
	ReconcileUC *batch.ReconcileUseCase
	JWTSecret   string // vacío = API abierta
}

// Router registra las rutas de la API. Todo /api pasa por el middleware de
// auth, que con secret vacío es un pass-through.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Catálogo
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categorías
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/rename", categoryHandler.Rename)
	categories.Delete("/:name", categoryHandler.Delete)

	// Movimientos e historial
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements := api.Group("/movements")
	movements.Post("/", movementHandler.Create)
	movements.Get("/", movementHandler.List)
	movements.Delete("/:id", movementHandler.Delete)
	history := api.Group("/history")
	history.Get("/", movementHandler.History)
	history.Get("/export", movementHandler.HistoryExport)

	// Stock derivado
	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Get("/", stockHandler.View)
	stockGroup.Get("/export", stockHandler.Export)

	// Reportes
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/activity", reportHandler.Activity)
	reports.Get("/monthly", reportHandler.Monthly)
	reports.Get("/summary", reportHandler.Summary)

	// Backups
	backups := api.Group("/backups")
	backupHandler := NewBackupHandler(deps.BackupUC)
	backups.Get("/", backupHandler.List)
	backups.Post("/", backupHandler.Create)
	backups.Post("/:name/restore", backupHandler.Restore)

	// Conciliación por lotes
	batchGroup := api.Group("/batch")
	batchHandler := NewBatchHandler(deps.ReconcileUC)
	batchGroup.Post("/reconcile", batchHandler.Reconcile)
}
