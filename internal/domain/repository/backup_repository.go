package repository

import "github.com/tu-usuario/stock-manager-pro/internal/domain/entity"

// BackupRepository gestiona los snapshots inmutables de recuperación.
// La retención conserva solo los más recientes (orden por nombre de archivo,
// que incorpora el timestamp).
type BackupRepository interface {
	// Create corta un snapshot del estado actual completo y aplica la retención.
	Create() (*entity.SnapshotInfo, error)
	// List devuelve los snapshots disponibles, del más reciente al más antiguo.
	List() ([]entity.SnapshotInfo, error)
	// Restore reemplaza las tres colecciones desde el snapshot indicado y las
	// persiste. Atómico desde el punto de vista del llamador.
	Restore(name string) error
}
