package ledger

import (
	"strings"

	"github.com/tu-usuario/stock-manager-pro/internal/application/dto"
	"github.com/tu-usuario/stock-manager-pro/internal/domain"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/repository"
)

// CategoryUseCase mantenimiento de la lista ordenada de categorías. Eliminar
// o renombrar una categoría no toca los productos que la referencian: su
// categoría es texto libre y queda huérfana a propósito.
type CategoryUseCase struct {
	categories repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories}
}

// List lista las categorías en su orden definido.
func (uc *CategoryUseCase) List() (*dto.CategoryListResponse, error) {
	items, err := uc.categories.List()
	if err != nil {
		return nil, err
	}
	return &dto.CategoryListResponse{Items: items}, nil
}

// Create añade una categoría al final de la lista.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.categories.Add(name)
}

// Rename renombra una categoría conservando su posición.
func (uc *CategoryUseCase) Rename(in dto.RenameCategoryRequest) error {
	oldName := strings.TrimSpace(in.OldName)
	newName := strings.TrimSpace(in.NewName)
	if oldName == "" || newName == "" {
		return domain.ErrInvalidInput
	}
	return uc.categories.Rename(oldName, newName)
}

// Delete elimina la categoría de la lista.
func (uc *CategoryUseCase) Delete(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.categories.Remove(name)
}
