package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/stock-manager-pro/internal/application/batch"
	"github.com/tu-usuario/stock-manager-pro/internal/application/ledger"
	"github.com/tu-usuario/stock-manager-pro/internal/infrastructure/excel"
	"github.com/tu-usuario/stock-manager-pro/internal/infrastructure/jsonstore"
	httpRouter "github.com/tu-usuario/stock-manager-pro/internal/interfaces/http"
	"github.com/tu-usuario/stock-manager-pro/pkg/config"
	"github.com/tu-usuario/stock-manager-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	store, err := jsonstore.Open(jsonstore.Config{
		DataDir:         cfg.Storage.DataDir,
		BackupDir:       cfg.Storage.BackupDir,
		BackupRetention: cfg.Storage.BackupRetention,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén de datos")
	}

	productRepo := jsonstore.NewProductRepository(store)
	movementRepo := jsonstore.NewMovementRepository(store)
	categoryRepo := jsonstore.NewCategoryRepository(store)
	backupRepo := jsonstore.NewBackupRepository(store)

	productUC := ledger.NewProductUseCase(productRepo, movementRepo, log)
	movementUC := ledger.NewMovementUseCase(movementRepo, productRepo, log)
	categoryUC := ledger.NewCategoryUseCase(categoryRepo)
	stockUC := ledger.NewStockUseCase(productRepo, movementRepo)
	reportUC := ledger.NewReportUseCase(productRepo, movementRepo, log)
	backupUC := ledger.NewBackupUseCase(backupRepo, log)
	reconcileUC := batch.NewReconcileUseCase(excel.NewReader(), excel.NewWriter(), log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Manager Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		MovementUC:  movementUC,
		CategoryUC:  categoryUC,
		StockUC:     stockUC,
		ReportUC:    reportUC,
		BackupUC:    backupUC,
		ReconcileUC: reconcileUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	// Ciclo de refresco del resumen general: dispara y olvida, los errores se
	// loguean y el ciclo sigue.
	refreshDone := make(chan struct{})
	go func() {
		interval := time.Duration(cfg.Dashboard.RefreshSeconds) * time.Second
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		refreshLog := log.Component("dashboard")
		for {
			select {
			case <-ticker.C:
				if _, err := reportUC.Refresh(); err != nil {
					refreshLog.Warn().Err(err).Msg("refresco del resumen fallido")
				}
			case <-refreshDone:
				return
			}
		}
	}()

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	close(refreshDone)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	// Persistencia final: estado completo a disco con su snapshot.
	if err := store.Flush(); err != nil {
		log.Error().Err(err).Msg("persistencia final fallida, datos en riesgo")
	}

	log.Info().Msg("aplicación detenida")
}
