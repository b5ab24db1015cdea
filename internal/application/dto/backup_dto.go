package dto

import "time"

// BackupResponse un snapshot disponible en disco.
type BackupResponse struct {
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
	SizeBytes int64     `json:"size_bytes"`
}

// BackupListResponse snapshots del más reciente al más antiguo.
type BackupListResponse struct {
	Items []BackupResponse `json:"items"`
}
