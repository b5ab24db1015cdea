// Package jsonstore implementa los puertos de persistencia sobre archivos
// JSON locales: data/products.json, data/movements.json, data/categories.json.
//
// El estado canónico vive en memoria; cada mutación reescribe el archivo
// completo afectado y corta un snapshot de backup. Las escrituras son
// sobreescrituras del archivo entero, no transaccionales: si la escritura
// falla, la memoria NO se revierte y el error significa "datos en riesgo",
// no "operación fallida". El snapshot retenido es el camino de recuperación.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tu-usuario/stock-manager-pro/internal/domain/entity"
	"github.com/tu-usuario/stock-manager-pro/pkg/logger"
)

const (
	productsFile   = "products.json"
	movementsFile  = "movements.json"
	categoriesFile = "categories.json"
)

// Config ubicación y retención del almacén.
type Config struct {
	DataDir         string
	BackupDir       string
	BackupRetention int
}

// Store estado compartido del almacén: las tres colecciones en memoria y su
// persistencia. Los adaptadores de repositorio (ProductRepo, MovementRepo,
// CategoryRepo, BackupRepo) operan sobre un mismo Store.
//
// El RWMutex protege las colecciones frente a lectores HTTP concurrentes;
// no hay más semántica de bloqueo que esa (sistema monousuario).
type Store struct {
	mu  sync.RWMutex
	cfg Config
	log *logger.Logger

	products   []*entity.Product
	movements  []*entity.Movement
	categories []string
}

// Open crea los directorios, carga las tres colecciones (o sus valores por
// defecto si los archivos no existen) y corta el backup automático de arranque.
func Open(cfg Config, log *logger.Logger) (*Store, error) {
	if cfg.BackupRetention <= 0 {
		cfg.BackupRetention = 20
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("jsonstore: crear directorio de datos: %w", err)
	}
	if err := os.MkdirAll(cfg.BackupDir, 0o755); err != nil {
		return nil, fmt.Errorf("jsonstore: crear directorio de backups: %w", err)
	}

	s := &Store{cfg: cfg, log: log.Component("store")}
	if err := s.load(); err != nil {
		return nil, err
	}

	// Backup de arranque, igual que tras cada mutación; fallo no bloquea el inicio.
	if _, err := s.autoBackup(); err != nil {
		s.log.Warn().Err(err).Msg("backup de arranque fallido")
	}

	s.log.Info().
		Int("products", len(s.products)).
		Int("movements", len(s.movements)).
		Int("categories", len(s.categories)).
		Msg("datos cargados")
	return s, nil
}

func (s *Store) load() error {
	var productRecs []productRecord
	if err := readJSON(filepath.Join(s.cfg.DataDir, productsFile), &productRecs); err != nil {
		return fmt.Errorf("jsonstore: cargar productos: %w", err)
	}
	s.products = make([]*entity.Product, 0, len(productRecs))
	for _, r := range productRecs {
		s.products = append(s.products, fromProductRecord(r))
	}

	var movementRecs []movementRecord
	if err := readJSON(filepath.Join(s.cfg.DataDir, movementsFile), &movementRecs); err != nil {
		return fmt.Errorf("jsonstore: cargar movimientos: %w", err)
	}
	s.movements = make([]*entity.Movement, 0, len(movementRecs))
	for _, r := range movementRecs {
		m := fromMovementRecord(r)
		if m.Date.IsZero() && r.Date != "" {
			s.log.Warn().Int64("movement_id", m.ID).Str("date", r.Date).Msg("fecha de movimiento ilegible")
		}
		s.movements = append(s.movements, m)
	}

	categories := []string{}
	if err := readJSON(filepath.Join(s.cfg.DataDir, categoriesFile), &categories); err != nil {
		return fmt.Errorf("jsonstore: cargar categorías: %w", err)
	}
	if len(categories) == 0 {
		categories = append([]string{}, entity.DefaultCategories...)
	}
	s.categories = categories
	return nil
}

// readJSON decodifica el archivo en dst; archivo inexistente deja dst intacto.
func readJSON(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, dst)
}

func writeJSON(path string, src any) error {
	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ── Persistencia por colección (llamar con el lock de escritura tomado) ──────

func (s *Store) saveProducts() error {
	recs := make([]productRecord, 0, len(s.products))
	for _, p := range s.products {
		recs = append(recs, toProductRecord(p))
	}
	if err := writeJSON(filepath.Join(s.cfg.DataDir, productsFile), recs); err != nil {
		return fmt.Errorf("jsonstore: guardar productos: %w", err)
	}
	_, err := s.autoBackup()
	return err
}

func (s *Store) saveMovements() error {
	recs := make([]movementRecord, 0, len(s.movements))
	for _, m := range s.movements {
		recs = append(recs, toMovementRecord(m))
	}
	if err := writeJSON(filepath.Join(s.cfg.DataDir, movementsFile), recs); err != nil {
		return fmt.Errorf("jsonstore: guardar movimientos: %w", err)
	}
	_, err := s.autoBackup()
	return err
}

func (s *Store) saveCategories() error {
	if err := writeJSON(filepath.Join(s.cfg.DataDir, categoriesFile), s.categories); err != nil {
		return fmt.Errorf("jsonstore: guardar categorías: %w", err)
	}
	_, err := s.autoBackup()
	return err
}

// saveAll reescribe las tres colecciones (restauración y apagado ordenado).
func (s *Store) saveAll() error {
	if err := s.saveProducts(); err != nil {
		return err
	}
	if err := s.saveMovements(); err != nil {
		return err
	}
	return s.saveCategories()
}

// Flush persiste el estado completo. Se usa en el apagado ordenado.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveAll()
}
