package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tu-usuario/stock-manager-pro/internal/domain"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/entity"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/repository"
)

const (
	backupPrefix    = "backup_"
	backupExt       = ".json"
	backupTimestamp = "20060102_150405"
)

var _ repository.BackupRepository = (*BackupRepo)(nil)

// BackupRepo implementación del puerto BackupRepository sobre el Store JSON.
type BackupRepo struct {
	s *Store
}

// NewBackupRepository construye el adaptador de snapshots.
func NewBackupRepository(s *Store) *BackupRepo {
	return &BackupRepo{s: s}
}

// Create corta un snapshot manual del estado actual y aplica la retención.
func (r *BackupRepo) Create() (*entity.SnapshotInfo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.autoBackup()
}

// List devuelve los snapshots disponibles, del más reciente al más antiguo.
// El timestamp viaja en el nombre del archivo, así que el orden lexicográfico
// inverso es el orden cronológico inverso.
func (r *BackupRepo) List() ([]entity.SnapshotInfo, error) {
	names, err := r.s.backupNames()
	if err != nil {
		return nil, err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	infos := make([]entity.SnapshotInfo, 0, len(names))
	for _, name := range names {
		info := entity.SnapshotInfo{Name: name}
		if fi, err := os.Stat(filepath.Join(r.s.cfg.BackupDir, name)); err == nil {
			info.SizeBytes = fi.Size()
		}
		ts := strings.TrimSuffix(strings.TrimPrefix(name, backupPrefix), backupExt)
		if t, err := time.ParseInLocation(backupTimestamp, ts, time.Local); err == nil {
			info.Timestamp = t
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Restore reemplaza las tres colecciones desde el snapshot indicado y las
// persiste. El estado previo queda solo en los demás snapshots retenidos.
func (r *BackupRepo) Restore(name string) error {
	// El nombre viene de la API: nunca se acepta como ruta.
	if name != filepath.Base(name) || !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupExt) {
		return domain.ErrInvalidInput
	}

	var snap snapshotRecord
	data, err := os.ReadFile(filepath.Join(r.s.cfg.BackupDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("jsonstore: leer backup %s: %w", name, err)
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("jsonstore: backup %s corrupto: %w", name, err)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.products = make([]*entity.Product, 0, len(snap.Products))
	for _, rec := range snap.Products {
		r.s.products = append(r.s.products, fromProductRecord(rec))
	}
	r.s.movements = make([]*entity.Movement, 0, len(snap.Movements))
	for _, rec := range snap.Movements {
		r.s.movements = append(r.s.movements, fromMovementRecord(rec))
	}
	r.s.categories = append([]string{}, snap.Categories...)
	if len(r.s.categories) == 0 {
		r.s.categories = append([]string{}, entity.DefaultCategories...)
	}

	r.s.log.Info().Str("backup", name).
		Int("products", len(r.s.products)).
		Int("movements", len(r.s.movements)).
		Msg("backup restaurado")
	return r.s.saveAll()
}

// ── Interno del Store ────────────────────────────────────────────────────────

// autoBackup escribe backup_<ts>.json con el estado completo y poda los
// snapshots antiguos. Llamar con el lock tomado (basta el de lectura: solo
// lee las colecciones y toca el directorio de backups).
func (s *Store) autoBackup() (*entity.SnapshotInfo, error) {
	now := time.Now()
	snap := snapshotRecord{
		Timestamp:  now.Format(backupTimestamp),
		Products:   make([]productRecord, 0, len(s.products)),
		Movements:  make([]movementRecord, 0, len(s.movements)),
		Categories: append([]string{}, s.categories...),
	}
	for _, p := range s.products {
		snap.Products = append(snap.Products, toProductRecord(p))
	}
	for _, m := range s.movements {
		snap.Movements = append(snap.Movements, toMovementRecord(m))
	}

	name := backupPrefix + snap.Timestamp + backupExt
	path := filepath.Join(s.cfg.BackupDir, name)
	if err := writeJSON(path, snap); err != nil {
		return nil, fmt.Errorf("jsonstore: escribir backup: %w", err)
	}
	if err := s.pruneBackups(); err != nil {
		s.log.Warn().Err(err).Msg("poda de backups fallida")
	}

	info := &entity.SnapshotInfo{Name: name, Timestamp: now}
	if fi, err := os.Stat(path); err == nil {
		info.SizeBytes = fi.Size()
	}
	return info, nil
}

// pruneBackups conserva los cfg.BackupRetention snapshots más recientes.
func (s *Store) pruneBackups() error {
	names, err := s.backupNames()
	if err != nil {
		return err
	}
	if len(names) <= s.cfg.BackupRetention {
		return nil
	}
	sort.Strings(names)
	for _, name := range names[:len(names)-s.cfg.BackupRetention] {
		if err := os.Remove(filepath.Join(s.cfg.BackupDir, name)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) backupNames() ([]string, error) {
	entries, err := os.ReadDir(s.cfg.BackupDir)
	if err != nil {
		return nil, fmt.Errorf("jsonstore: listar backups: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, backupPrefix) && strings.HasSuffix(name, backupExt) {
			names = append(names, name)
		}
	}
	return names, nil
}
