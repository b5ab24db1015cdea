package entity

import "time"

// SnapshotInfo metadatos de un backup en disco. El contenido del snapshot es
// el estado completo (productos, movimientos y categorías) fechado al momento
// de su creación; es el único mecanismo de recuperación porque las escrituras
// a disco sobreescriben el archivo entero.
type SnapshotInfo struct {
	Name      string // backup_YYYYMMDD_HHMMSS.json
	Timestamp time.Time
	SizeBytes int64
}
