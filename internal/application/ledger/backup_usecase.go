package ledger

import (
	"github.com/tu-usuario/stock-manager-pro/internal/application/dto"
	"github.com/tu-usuario/stock-manager-pro/internal/domain"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/entity"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/repository"
	"github.com/tu-usuario/stock-manager-pro/pkg/logger"
)

// RestoreLatest nombre especial que restaura el snapshot más reciente.
const RestoreLatest = "latest"

// BackupUseCase snapshots manuales y restauración.
type BackupUseCase struct {
	backups repository.BackupRepository
	log     *logger.Logger
}

// NewBackupUseCase construye el caso de uso.
func NewBackupUseCase(backups repository.BackupRepository, log *logger.Logger) *BackupUseCase {
	return &BackupUseCase{backups: backups, log: log.Component("backups")}
}

// List snapshots disponibles, del más reciente al más antiguo.
func (uc *BackupUseCase) List() (*dto.BackupListResponse, error) {
	infos, err := uc.backups.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.BackupResponse, 0, len(infos))
	for _, info := range infos {
		items = append(items, toBackupResponse(info))
	}
	return &dto.BackupListResponse{Items: items}, nil
}

// Create corta un snapshot manual del estado actual.
func (uc *BackupUseCase) Create() (*dto.BackupResponse, error) {
	info, err := uc.backups.Create()
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("backup", info.Name).Msg("backup manual creado")
	resp := toBackupResponse(*info)
	return &resp, nil
}

// Restore restaura el snapshot indicado; "latest" elige el más reciente.
func (uc *BackupUseCase) Restore(name string) error {
	if name == RestoreLatest {
		infos, err := uc.backups.List()
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			return domain.ErrNoBackups
		}
		name = infos[0].Name
	}
	if err := uc.backups.Restore(name); err != nil {
		return err
	}
	uc.log.Info().Str("backup", name).Msg("backup restaurado")
	return nil
}

func toBackupResponse(info entity.SnapshotInfo) dto.BackupResponse {
	return dto.BackupResponse{
		Name:      info.Name,
		Timestamp: info.Timestamp,
		SizeBytes: info.SizeBytes,
	}
}
