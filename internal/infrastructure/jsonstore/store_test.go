package jsonstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-manager-pro/internal/domain"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/entity"
	"github.com/tu-usuario/stock-manager-pro/internal/infrastructure/jsonstore"
	"github.com/tu-usuario/stock-manager-pro/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func openStore(t *testing.T, dir string) *jsonstore.Store {
	t.Helper()
	s, err := jsonstore.Open(jsonstore.Config{
		DataDir:         dir,
		BackupDir:       filepath.Join(dir, "backups"),
		BackupRetention: 20,
	}, testLogger())
	require.NoError(t, err)
	return s
}

// ── Round-trip ────────────────────────────────────────────────────────────────

func TestStore_RoundTripSinPerdidas(t *testing.T) {
	dir := t.TempDir()
	s := openStore(t, dir)
	products := jsonstore.NewProductRepository(s)
	movements := jsonstore.NewMovementRepository(s)

	price := decimal.NewFromFloat(2.50)
	require.NoError(t, products.Create(&entity.Product{
		Name: "Harina", Code: "H-01", Category: "Alimentos",
		InitialStock: 50, MinLimit: 10, Price: &price,
	}))
	require.NoError(t, products.Create(&entity.Product{
		Name: "Azúcar", Category: "Alimentos", InitialStock: 20, MinLimit: 5,
	}))
	require.NoError(t, movements.Create(&entity.Movement{
		ProductID: 1, Type: entity.MovementTypeIn, Quantity: 5, Notes: "reposición",
	}))

	// Reabrir desde disco y comparar
	s2 := openStore(t, dir)
	got, err := jsonstore.NewProductRepository(s2).List()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Harina", got[0].Name)
	assert.Equal(t, "H-01", got[0].Code)
	require.NotNil(t, got[0].Price, "el precio debe sobrevivir al round-trip")
	assert.True(t, price.Equal(*got[0].Price))
	assert.Nil(t, got[1].Price, "sin precio sigue sin precio tras recargar")
	assert.Empty(t, got[1].Code)

	ms, err := jsonstore.NewMovementRepository(s2).List()
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, int64(1), ms[0].ProductID)
	assert.Equal(t, "reposición", ms[0].Notes)
	assert.False(t, ms[0].Date.IsZero(), "la fecha asignada debe persistirse")
}

func TestStore_CategoriasPorDefectoSiNoHayArchivo(t *testing.T) {
	s := openStore(t, t.TempDir())
	cats, err := jsonstore.NewCategoryRepository(s).List()
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultCategories, cats)
}

// ── Asignación de IDs ─────────────────────────────────────────────────────────

func TestProductRepo_IDMaxMasUno(t *testing.T) {
	s := openStore(t, t.TempDir())
	products := jsonstore.NewProductRepository(s)

	a := &entity.Product{Name: "A", Category: "Otros"}
	b := &entity.Product{Name: "B", Category: "Otros"}
	c := &entity.Product{Name: "C", Category: "Otros"}
	require.NoError(t, products.Create(a))
	require.NoError(t, products.Create(b))
	require.NoError(t, products.Create(c))
	assert.Equal(t, []int64{1, 2, 3}, []int64{a.ID, b.ID, c.ID})

	// Borrar el ID más alto permite su reutilización; un hueco intermedio no.
	require.NoError(t, products.Delete(c.ID))
	d := &entity.Product{Name: "D", Category: "Otros"}
	require.NoError(t, products.Create(d))
	assert.Equal(t, int64(3), d.ID, "max+1 reutiliza el tope liberado")

	require.NoError(t, products.Delete(a.ID))
	e := &entity.Product{Name: "E", Category: "Otros"}
	require.NoError(t, products.Create(e))
	assert.Equal(t, int64(4), e.ID, "un hueco intermedio no se rellena")
}

// ── Cascada ───────────────────────────────────────────────────────────────────

func TestMovementRepo_DeleteByProductSoloLosSuyos(t *testing.T) {
	s := openStore(t, t.TempDir())
	movements := jsonstore.NewMovementRepository(s)

	require.NoError(t, movements.Create(&entity.Movement{ProductID: 1, Type: "in", Quantity: 1}))
	require.NoError(t, movements.Create(&entity.Movement{ProductID: 2, Type: "in", Quantity: 2}))
	require.NoError(t, movements.Create(&entity.Movement{ProductID: 1, Type: "out", Quantity: 3}))

	removed, err := movements.DeleteByProduct(1)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	rest, err := movements.List()
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, int64(2), rest[0].ProductID, "los movimientos ajenos sobreviven")
}

// ── Categorías ────────────────────────────────────────────────────────────────

func TestCategoryRepo_DuplicadoYRename(t *testing.T) {
	s := openStore(t, t.TempDir())
	categories := jsonstore.NewCategoryRepository(s)

	require.NoError(t, categories.Add("Congelados"))
	assert.ErrorIs(t, categories.Add("Congelados"), domain.ErrDuplicate)

	require.NoError(t, categories.Rename("Congelados", "Frescos"))
	cats, err := categories.List()
	require.NoError(t, err)
	assert.Contains(t, cats, "Frescos")
	assert.NotContains(t, cats, "Congelados")

	assert.ErrorIs(t, categories.Rename("NoExiste", "X"), domain.ErrNotFound)
	assert.ErrorIs(t, categories.Rename("Frescos", "Alimentos"), domain.ErrDuplicate,
		"renombrar hacia un nombre existente es un duplicado")
}

// ── Backups ───────────────────────────────────────────────────────────────────

func TestBackupRepo_RetencionConservaLosMasRecientes(t *testing.T) {
	dir := t.TempDir()
	s, err := jsonstore.Open(jsonstore.Config{
		DataDir:         dir,
		BackupDir:       filepath.Join(dir, "backups"),
		BackupRetention: 3,
	}, testLogger())
	require.NoError(t, err)
	backups := jsonstore.NewBackupRepository(s)

	// Nombres de backup con resolución de segundo: forzamos archivos viejos a mano
	for _, name := range []string{
		"backup_20200101_000001.json",
		"backup_20200101_000002.json",
		"backup_20200101_000003.json",
		"backup_20200101_000004.json",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "backups", name), []byte("{}"), 0o644))
	}

	_, err = backups.Create()
	require.NoError(t, err)

	infos, err := backups.List()
	require.NoError(t, err)
	require.Len(t, infos, 3, "la retención conserva solo los 3 más recientes")
	for _, info := range infos {
		assert.NotEqual(t, "backup_20200101_000001.json", info.Name)
		assert.NotEqual(t, "backup_20200101_000002.json", info.Name)
	}
	// Orden: del más reciente al más antiguo
	assert.True(t, infos[0].Name > infos[1].Name)
}

func TestBackupRepo_RestoreReemplazaLasTresColecciones(t *testing.T) {
	dir := t.TempDir()
	s := openStore(t, dir)
	products := jsonstore.NewProductRepository(s)
	movements := jsonstore.NewMovementRepository(s)
	categories := jsonstore.NewCategoryRepository(s)
	backups := jsonstore.NewBackupRepository(s)

	require.NoError(t, products.Create(&entity.Product{Name: "Original", Category: "Otros"}))
	require.NoError(t, movements.Create(&entity.Movement{ProductID: 1, Type: "in", Quantity: 9}))
	require.NoError(t, categories.Add("Solo en el backup"))

	info, err := backups.Create()
	require.NoError(t, err)

	// Mutar el estado después del snapshot
	require.NoError(t, products.Create(&entity.Product{Name: "Posterior", Category: "Otros"}))
	require.NoError(t, categories.Remove("Solo en el backup"))

	require.NoError(t, backups.Restore(info.Name))

	got, err := products.List()
	require.NoError(t, err)
	require.Len(t, got, 1, "la restauración descarta el producto posterior")
	assert.Equal(t, "Original", got[0].Name)

	ms, err := movements.List()
	require.NoError(t, err)
	require.Len(t, ms, 1)

	cats, err := categories.List()
	require.NoError(t, err)
	assert.Contains(t, cats, "Solo en el backup")

	// Y queda persistido: reabrir mantiene el estado restaurado
	s2 := openStore(t, dir)
	got2, err := jsonstore.NewProductRepository(s2).List()
	require.NoError(t, err)
	require.Len(t, got2, 1)
	assert.Equal(t, "Original", got2[0].Name)
}

func TestBackupRepo_RestoreNombreInvalido(t *testing.T) {
	s := openStore(t, t.TempDir())
	backups := jsonstore.NewBackupRepository(s)

	assert.ErrorIs(t, backups.Restore("../../etc/passwd"), domain.ErrInvalidInput)
	assert.ErrorIs(t, backups.Restore("backup_29990101_000000.json"), domain.ErrNotFound)
}
